package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/futils/pkg/errors"
	"github.com/arthur-debert/futils/pkg/logging"
	"github.com/arthur-debert/futils/pkg/restore"
	"github.com/arthur-debert/futils/pkg/ui/confirmations"
	"github.com/spf13/cobra"
)

func newRestoreCmd(a *app) *cobra.Command {
	var (
		params restore.Params
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "restore --source <dir> --destination <dir>",
		Short: MsgRestoreShort,
		Long:  MsgRestoreLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.restore")

			if !yes && a.cfg.Restore.Confirm {
				if err := a.confirmRestore(cmd, params); err != nil {
					return err
				}
			}

			h, err := a.hasher(a.cfg)
			if err != nil {
				return err
			}
			result, err := restore.New(restore.Options{FS: a.fs, Hasher: h, Logger: &logger}).Run(params)
			if err != nil {
				return err
			}

			writeRestoreResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&params.Source, "source", "s", "", MsgFlagSource)
	cmd.Flags().StringVarP(&params.Destination, "destination", "d", "", MsgFlagDestination)
	cmd.Flags().BoolVar(&params.Move, "move", false, MsgFlagMove)
	cmd.Flags().StringVar(&params.Archive, "archive", "", MsgFlagArchive)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("destination")

	return cmd
}

// confirmRestore asks before the operations that remove data from the backup
// or mix files into a used archive folder.
func (a *app) confirmRestore(cmd *cobra.Command, params restore.Params) error {
	var requests []confirmations.Request
	if params.Move {
		requests = append(requests, confirmations.Request{
			Title:       MsgConfirmMove,
			Description: fmt.Sprintf(MsgConfirmMoveDesc, params.Source),
		})
	}
	if params.Archive != "" && params.Move {
		// An unreadable archive is reported by the restorer's own checks
		if empty, err := restore.IsEmptyDir(a.fs, params.Archive); err == nil && !empty {
			requests = append(requests, confirmations.Request{
				Title:       fmt.Sprintf(MsgConfirmArchive, params.Archive),
				Description: MsgConfirmArchiveDesc,
			})
		}
	}
	if len(requests) == 0 {
		return nil
	}

	confirmer := a.confirmer
	if confirmer == nil {
		if !confirmations.IsInteractive(os.Stdin) {
			return errors.New(errors.ErrAborted, MsgErrNotInteractive)
		}
		confirmer = confirmations.NewConsoleDialog(cmd.InOrStdin(), cmd.ErrOrStderr())
	}

	for _, req := range requests {
		approved, err := confirmer.Confirm(req)
		if err != nil {
			return errors.Wrap(err, errors.ErrAborted, "confirmation failed")
		}
		if !approved {
			return errors.New(errors.ErrAborted, MsgErrAborted).WithDetail("question", req.Title)
		}
	}
	return nil
}

func writeRestoreResult(w io.Writer, result *restore.Result) {
	summary := fmt.Sprintf(MsgRestoreSummary,
		len(result.Restored), len(result.Skipped), len(result.Archived), len(result.Deleted))
	fmt.Fprintln(w, render(w, "Success", summary))

	if len(result.Conflicts) == 0 {
		return
	}
	fmt.Fprintln(w, render(w, "Warning", MsgConflictsHeader))
	for _, path := range result.Conflicts {
		fmt.Fprintf(w, MsgConflictItem, render(w, "FilePath", path))
	}
}
