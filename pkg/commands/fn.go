package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kairos-io/provider-clustertemplate/pkg/functions"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-vfs/v4"
)

// Fn returns the command that calls a single template helper.
func Fn(fsys vfs.FS, load configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fn <name> [args...]",
		Short: "Call a template helper",
		Long: fmt.Sprintf(`Call one template helper and print its result.

Available helpers: %s

nthhost takes the network first: fn nthhost 10.0.0.0/24 1`, strings.Join(functions.Names(), ", ")),
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: functions.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(nil)
			if err != nil {
				return err
			}
			reg := functions.NewRegistry(fsys, cfg.FunctionOptions())
			result, err := reg.Call(args[0], args[1:])
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), result)
		},
	}

	return cmd
}

func writeResult(out io.Writer, result any) error {
	if s, ok := result.(string); ok {
		_, err := fmt.Fprintln(out, s)
		return err
	}
	b, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "failed to encode result")
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
