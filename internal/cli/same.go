package cli

import (
	"fmt"

	"github.com/arthur-debert/futils/pkg/logging"
	"github.com/spf13/cobra"
)

func newSameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "same <a> <b>",
		Short: MsgSameShort,
		Long:  MsgSameLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.hasher(a.cfg)
			if err != nil {
				return err
			}

			same, err := h.Same(args[0], args[1])
			if err != nil {
				return err
			}
			logger := logging.GetLogger("cmd.same")
			logger.Debug().
				Strs("files", args).
				Bool("same", same).
				Msg("Compared")

			if same {
				fmt.Fprintln(cmd.OutOrStdout(), MsgSame)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgDifferent)
			return &ExitError{Code: 1}
		},
	}
}
