package cli

import (
	"fmt"

	"github.com/arthur-debert/futils/pkg/fileutil"
	"github.com/arthur-debert/futils/pkg/logging"
	"github.com/spf13/cobra"
)

func newProbeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "probe <file>...",
		Short: MsgProbeShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.probe")
			out := cmd.OutOrStdout()

			unreadable := 0
			for _, path := range args {
				status := MsgReadable
				if !fileutil.CanRead(a.fs, path) {
					status = MsgUnreadable
					unreadable++
				}
				logger.Debug().Str("path", path).Str("status", status).Msg("Probed")
				fmt.Fprintf(out, MsgProbeLine, status, path)
			}

			if unreadable > 0 {
				logger.Info().Int("unreadable", unreadable).Msgf(MsgErrUnreadable, unreadable, len(args))
				return &ExitError{Code: 1}
			}
			return nil
		},
	}
}
