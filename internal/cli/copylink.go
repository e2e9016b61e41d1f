package cli

import (
	"fmt"

	"github.com/arthur-debert/futils/pkg/fileutil"
	"github.com/spf13/cobra"
)

func newCopyLinkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copylink <src> <dst>",
		Short: MsgCopyLinkShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := fileutil.CopyLink(a.fs, args[0], args[1]); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgLinkCopied, render(out, "FilePath", args[0]), render(out, "FilePath", args[1]))
			return nil
		},
	}
}
