package commands

import (
	"encoding/json"
	"io"

	"github.com/kairos-io/provider-clustertemplate/pkg/config"
	"github.com/kairos-io/provider-clustertemplate/pkg/domain"
	"github.com/kairos-io/provider-clustertemplate/pkg/provider"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-vfs/v4"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// Data returns the command that prints the enriched template data.
func Data(fsys vfs.FS, load configLoader) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "data",
		Short: "Print the enriched template data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(nil)
			if err != nil {
				return err
			}
			data, err := config.LoadData(fsys, cfg.Data)
			if err != nil {
				return err
			}
			return writeData(cmd.OutOrStdout(), provider.Enrich(data), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "Output format (yaml or json)")

	return cmd
}

func writeData(out io.Writer, data domain.TemplateData, format string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any(data)); err != nil {
			return errors.Wrap(err, "failed to encode data")
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return errors.Wrap(enc.Encode(data), "failed to encode data")
	}
	return errors.Errorf("unknown format %q", format)
}
