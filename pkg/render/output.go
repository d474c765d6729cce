package render

import (
	"path/filepath"

	"github.com/kairos-io/provider-clustertemplate/pkg/utils"
	yip "github.com/mudler/yip/pkg/schema"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-vfs/v4"
)

// WriteFiles writes the rendered files below output, creating parent
// directories as needed.
func WriteFiles(fsys vfs.FS, output string, files []File) error {
	for _, f := range files {
		path := filepath.Join(output, f.Path)
		if err := vfs.MkdirAll(fsys, filepath.Dir(path), 0o755); err != nil {
			return errors.Wrapf(err, "failed to create directory for %s", path)
		}
		if err := fsys.WriteFile(path, f.Content, f.Mode); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
		logrus.Debugf("wrote %s", path)
	}
	return nil
}

// YipConfig describes the rendered files as a yip config with a single
// stage, so they can be applied by any yip runner.
func YipConfig(stage, output string, files []File) yip.YipConfig {
	stages := make([]yip.Stage, 0, 1)
	if len(files) > 0 {
		stages = append(stages, utils.GetFilesStage("Write rendered cluster templates", yipFiles(output, files)))
	}
	return yip.YipConfig{
		Name: "Cluster Template Provider",
		Stages: map[string][]yip.Stage{
			stage: stages,
		},
	}
}

func yipFiles(output string, files []File) []yip.File {
	out := make([]yip.File, 0, len(files))
	for _, f := range files {
		out = append(out, yip.File{
			Path:        filepath.Join(output, f.Path),
			Permissions: uint32(f.Mode),
			Content:     string(f.Content),
		})
	}
	return out
}
