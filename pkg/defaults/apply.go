package defaults

import (
	"github.com/kairos-io/provider-clustertemplate/pkg/domain"
	"github.com/sirupsen/logrus"
)

// Apply fills every key of the table that data leaves unset and returns the
// keys it filled.
func Apply(data domain.TemplateData) []string {
	var applied []string
	for _, group := range Table {
		for _, d := range group.Defaults {
			if data.SetDefault(d.Key, clone(d.Value)) {
				applied = append(applied, d.Key)
			}
		}
	}
	logrus.Debugf("applied %d of %d table defaults", len(applied), len(Keys()))
	return applied
}

// Keys lists every key of the table in table order.
func Keys() []string {
	var keys []string
	for _, group := range Table {
		for _, d := range group.Defaults {
			keys = append(keys, d.Key)
		}
	}
	return keys
}

// Lookup returns the default for key.
func Lookup(key string) (any, bool) {
	for _, group := range Table {
		for _, d := range group.Defaults {
			if d.Key == key {
				return clone(d.Value), true
			}
		}
	}
	return nil, false
}

// clone keeps list defaults from sharing a backing array between runs.
func clone(v any) any {
	switch t := v.(type) {
	case []string:
		return append([]string{}, t...)
	case []any:
		return append([]any{}, t...)
	}
	return v
}
