package domain

import "reflect"

// TemplateData is the mapping handed to the template renderer. It is loaded
// from the user's data files, enriched in place and discarded after rendering.
type TemplateData map[string]any

// ClusterInputs is the typed view of the keys that drive derived values.
// Nodes is kept untyped since users write it as a list or a mapping.
type ClusterInputs struct {
	CloudflareDomain string   `json:"cloudflareDomain" yaml:"cloudflareDomain" mapstructure:"cloudflare_domain"`
	NodeCIDR         string   `json:"nodeCidr" yaml:"nodeCidr" mapstructure:"node_cidr"`
	NodeDNSServers   []string `json:"nodeDnsServers" yaml:"nodeDnsServers" mapstructure:"node_dns_servers"`
	Nodes            any      `json:"nodes" yaml:"nodes" mapstructure:"nodes"`
}

// IsSet reports whether key holds a non-nil value.
func (d TemplateData) IsSet(key string) bool {
	v, ok := d[key]
	return ok && v != nil
}

// SetDefault stores value under key unless the key is already set.
// It reports whether the value was stored.
func (d TemplateData) SetDefault(key string, value any) bool {
	if d.IsSet(key) {
		return false
	}
	d[key] = value
	return true
}

// Truthy reports whether every key holds a truthy value.
func (d TemplateData) Truthy(keys ...string) bool {
	for _, key := range keys {
		if !Truthy(d[key]) {
			return false
		}
	}
	return true
}

// Truthy follows template truthiness: nil, false, zero numbers and empty
// strings, slices and maps are false.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// Len returns the number of elements of a list or mapping, and zero for
// anything else.
func Len(v any) int {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len()
	}
	return 0
}
