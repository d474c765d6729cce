package commands

import (
	"context"
	"io"

	"github.com/kairos-io/provider-clustertemplate/pkg/config"
	"github.com/kairos-io/provider-clustertemplate/pkg/functions"
	"github.com/kairos-io/provider-clustertemplate/pkg/provider"
	"github.com/kairos-io/provider-clustertemplate/pkg/render"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-vfs/v4"
	"gopkg.in/yaml.v3"
)

// Render returns the command that renders the template tree.
func Render(fsys vfs.FS, load configLoader) *cobra.Command {
	var output string
	var asYip bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render cluster templates",
		Long: `Load the cluster data files, enrich them and render every template
below the configured input directories.

Files ending in .j2 are rendered and written without the suffix. Other files
are copied unchanged. With --yip the result is printed as a yip config instead
of being written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides := map[string]any{}
			if output != "" {
				overrides["output"] = output
			}
			cfg, err := load(overrides)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), fsys, cfg, asYip, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (overrides the configured one)")
	cmd.Flags().BoolVar(&asYip, "yip", false, "Print a yip config instead of writing files")

	return cmd
}

func runRender(ctx context.Context, fsys vfs.FS, cfg *config.Config, asYip bool, out io.Writer) error {
	logrus.Info("rendering cluster templates")

	data, err := config.LoadData(fsys, cfg.Data)
	if err != nil {
		return err
	}
	provider.Enrich(data)

	reg := functions.NewRegistry(fsys, cfg.FunctionOptions())
	files, err := render.New(fsys, cfg, reg.FuncMap()).Render(ctx, data)
	if err != nil {
		return err
	}

	if asYip {
		b, err := yaml.Marshal(render.YipConfig(cfg.YipStage, cfg.Output, files))
		if err != nil {
			return errors.Wrap(err, "failed to encode yip config")
		}
		_, err = out.Write(b)
		return err
	}

	if err := render.WriteFiles(fsys, cfg.Output, files); err != nil {
		return err
	}
	logrus.Infof("rendered %d files to %s", len(files), cfg.Output)
	return nil
}
