package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fixedstr/core/logger"
	"github.com/dmitrymomot/fixedstr/pkg/codegen"
)

func newStorageCmd(a *app) *cobra.Command {
	var (
		outPath  string
		pkg      string
		maxSlots int
	)

	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Generate the Storage constraint",
		Long: `Storage writes the union of array types that back fixed strings.
The library's own copy is produced by go generate.

Example:
  fixedstr storage --max 512 -o storage_gen.go`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("max") {
				maxSlots = a.cfg.MaxSlots
			}

			var buf bytes.Buffer
			if err := a.generator(maxSlots).Storage(&buf, pkg); err != nil {
				return fmt.Errorf("generate storage: %w", err)
			}
			if err := writeOutput(cmd.OutOrStdout(), outPath, buf.Bytes()); err != nil {
				return err
			}

			a.log.Debug("storage finished", logger.File(outPath), logger.Slots(maxSlots))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&pkg, "package", "fixedstr", "package clause of the generated file")
	cmd.Flags().IntVar(&maxSlots, "max", codegen.DefaultMaxSlots, "largest array length in the union")
	return cmd
}
