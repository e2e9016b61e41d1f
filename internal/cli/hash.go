package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/futils/pkg/config"
	"github.com/arthur-debert/futils/pkg/errors"
	"github.com/arthur-debert/futils/pkg/logging"
	"github.com/arthur-debert/futils/pkg/ui"
	"github.com/arthur-debert/futils/pkg/ui/styles"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// digestEntry is one line of hash output
type digestEntry struct {
	Path      string `json:"path" yaml:"path"`
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Digest    string `json:"digest" yaml:"digest"`
}

func newHashCmd(a *app) *cobra.Command {
	var (
		algorithm string
		chunkSize int
		output    string
	)

	cmd := &cobra.Command{
		Use:   "hash <file>...",
		Short: MsgHashShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.hash")

			format, err := ui.ParseFormat(output)
			if err != nil {
				return err
			}

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("algorithm") {
				overrides["hash.algorithm"] = algorithm
			}
			if cmd.Flags().Changed("chunk-size") {
				overrides["hash.chunk_size"] = chunkSize
			}
			cfg, err := config.WithOverrides(a.cfg, overrides)
			if err != nil {
				return err
			}
			h, err := a.hasher(cfg)
			if err != nil {
				return err
			}

			entries := make([]digestEntry, 0, len(args))
			for _, path := range args {
				digest, err := h.Hash(path)
				if err != nil {
					return errors.Wrapf(err, errors.ErrFileAccess, "cannot hash %s", path).
						WithDetail("path", path)
				}
				logger.Debug().Str("path", path).Str("digest", digest).Msg("Hashed")
				entries = append(entries, digestEntry{Path: path, Algorithm: h.Algorithm(), Digest: digest})
			}

			return writeDigests(cmd.OutOrStdout(), format, entries)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", MsgFlagAlgorithm)
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, MsgFlagChunkSize)
	cmd.Flags().StringVarP(&output, "output", "o", "auto", MsgFlagOutput)

	return cmd
}

func writeDigests(w io.Writer, format ui.Format, entries []digestEntry) error {
	switch ui.Resolve(format, w) {
	case ui.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case ui.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case ui.FormatTerminal:
		for _, e := range entries {
			fmt.Fprintf(w, MsgDigestLine, e.Digest, styles.Render("FilePath", e.Path))
		}
		return nil
	default:
		for _, e := range entries {
			fmt.Fprintf(w, MsgDigestLine, e.Digest, e.Path)
		}
		return nil
	}
}
