package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fixedstr/core/logger"
	"github.com/dmitrymomot/fixedstr/pkg/codegen"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		manifestPath string
		outPath      string
		maxSlots     int
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate fixed-string literals from a manifest",
		Long: `Gen reads a YAML or TOML manifest of named texts and writes a Go file
declaring one fixed-string variable per entry.

Example:
  fixedstr gen -m literals.yaml -o literals_gen.go`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()

			m, err := codegen.LoadManifest(manifestPath)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("max-slots") {
				maxSlots = a.cfg.MaxSlots
			}

			var buf bytes.Buffer
			if err := a.generator(maxSlots).Literals(&buf, m); err != nil {
				return fmt.Errorf("generate %s: %w", manifestPath, err)
			}
			if err := writeOutput(cmd.OutOrStdout(), outPath, buf.Bytes()); err != nil {
				return err
			}

			a.log.Debug("gen finished",
				logger.File(outPath),
				logger.Count("literals", len(m.Literals)),
				logger.Elapsed(start),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "manifest file (.yaml, .yml or .toml)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&maxSlots, "max-slots", codegen.DefaultMaxSlots, "largest slot count a literal may use")
	_ = cmd.MarkFlagRequired("manifest")
	return cmd
}
