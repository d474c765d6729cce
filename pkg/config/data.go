package config

import (
	iofs "io/fs"

	"github.com/kairos-io/provider-clustertemplate/pkg/domain"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-vfs/v4"
)

// Data keys can hold dotted label names, so merge on a delimiter that does
// not show up in YAML keys.
const dataDelim = "\x1f"

// LoadData merges the YAML data files in order. Missing files are skipped
// with a warning; files that fail to parse are an error.
func LoadData(fsys vfs.FS, paths []string) (domain.TemplateData, error) {
	k := koanf.New(dataDelim)

	for _, path := range paths {
		if _, err := fsys.Stat(path); err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				logrus.Warnf("data file %s does not exist, skipping", path)
				continue
			}
			return nil, errors.Wrapf(err, "failed to stat data file %s", path)
		}
		if err := k.Load(&vfsProvider{fs: fsys, path: path}, kyaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load data file %s", path)
		}
		logrus.Debugf("loaded data file %s", path)
	}

	return domain.TemplateData(k.Raw()), nil
}
