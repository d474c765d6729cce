package commands

import (
	"github.com/kairos-io/provider-clustertemplate/pkg/domain"
	"github.com/kairos-io/provider-clustertemplate/pkg/functions"
	"github.com/kairos-io/provider-clustertemplate/pkg/provider"
	"github.com/mudler/go-pluggable"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-vfs/v4"
)

// Plugin returns the command a plugin host invokes with the event name. The
// event is read from stdin and the response written to stdout.
func Plugin(fsys vfs.FS, load configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "plugin <event>",
		Short:     "Handle a plugin event from stdin",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.EventData), string(domain.EventFunction)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(nil)
			if err != nil {
				return err
			}
			factory := provider.Factory(functions.NewRegistry(fsys, cfg.FunctionOptions()))
			return factory.Run(pluggable.EventType(args[0]), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	return cmd
}
