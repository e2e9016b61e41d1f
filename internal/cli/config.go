package cli

import (
	"fmt"

	"github.com/arthur-debert/futils/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	var generate bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if generate {
				fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
				return nil
			}
			content, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&generate, "generate", false, MsgFlagGenerate)
	return cmd
}
