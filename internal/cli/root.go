// Package cli implements the futils command line.
package cli

import (
	"github.com/arthur-debert/futils/internal/version"
	"github.com/arthur-debert/futils/pkg/config"
	"github.com/arthur-debert/futils/pkg/errors"
	"github.com/arthur-debert/futils/pkg/filesystem"
	"github.com/arthur-debert/futils/pkg/fileutil"
	"github.com/arthur-debert/futils/pkg/logging"
	"github.com/arthur-debert/futils/pkg/paths"
	"github.com/arthur-debert/futils/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// maxVerbosity is the highest level -v can reach
const maxVerbosity = 2

// app holds what the subcommands share once the root pre-run has loaded it
type app struct {
	verbosity  int
	configFile string

	cfg *config.Config
	fs  filesystem.FS

	// confirmer overrides the interactive dialog, nil in normal use
	confirmer confirmations.Confirmer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{fs: filesystem.NewOS()})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "futils",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newProbeCmd(a))
	rootCmd.AddCommand(newHashCmd(a))
	rootCmd.AddCommand(newSameCmd(a))
	rootCmd.AddCommand(newCopyLinkCmd(a))
	rootCmd.AddCommand(newRestoreCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// setup loads the configuration and initializes logging
func (a *app) setup(cmd *cobra.Command) error {
	p, err := paths.New()
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.configFile, p.ConfigFilePath())
	if err != nil {
		return err
	}
	a.cfg = cfg

	verbosity := cfg.Logging.Verbosity
	if cmd.Flags().Changed("verbose") {
		verbosity = min(a.verbosity, maxVerbosity)
	}

	logFile := ""
	if cfg.Logging.LogToFile {
		logFile = p.LogFilePath()
	}
	if err := logging.SetupLogger(verbosity, logFile); err != nil {
		return err
	}

	log.Debug().Str("command", cmd.Name()).Msg("Command started")
	return nil
}

// hasher builds a hasher from the loaded configuration
func (a *app) hasher(cfg *config.Config) (*fileutil.Hasher, error) {
	opts, err := cfg.HasherOptions()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid hash settings")
	}
	return fileutil.NewHasher(a.fs, opts...), nil
}
