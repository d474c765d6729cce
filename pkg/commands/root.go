// Package commands defines the provider-clustertemplate CLI.
package commands

import (
	"github.com/kairos-io/provider-clustertemplate/pkg/config"
	"github.com/kairos-io/provider-clustertemplate/pkg/fs"
	"github.com/kairos-io/provider-clustertemplate/pkg/log"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-vfs/v4"
)

// Root returns the root command, operating on the host filesystem.
func Root() *cobra.Command {
	return NewRoot(fs.OSFS)
}

// NewRoot returns the root command with every file access going through fsys.
func NewRoot(fsys vfs.FS) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "provider-clustertemplate",
		Short:         "Enrich cluster data and render cluster templates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: clustertemplate.toml if present)")

	load := func(overrides map[string]any) (*config.Config, error) {
		return loadConfig(fsys, configPath, overrides)
	}

	cmd.AddCommand(Render(fsys, load))
	cmd.AddCommand(Data(fsys, load))
	cmd.AddCommand(Fn(fsys, load))
	cmd.AddCommand(Plugin(fsys, load))

	return cmd
}

// configLoader loads the configuration selected by the persistent flags,
// with overrides from command flags applied last.
type configLoader func(overrides map[string]any) (*config.Config, error)

func loadConfig(fsys vfs.FS, path string, overrides map[string]any) (*config.Config, error) {
	cfg, err := config.Load(fsys, path, overrides)
	if err != nil {
		return nil, err
	}
	if err := log.SetLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	if cfg.Log.File != "" {
		log.InitLogger(cfg.Log.File)
	}
	return cfg, nil
}
