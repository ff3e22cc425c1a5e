// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/specfields/internal/catalog"
	"github.com/pdiddy/specfields/internal/record"
	"github.com/pdiddy/specfields/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [text...]",
	Short: "Extract typed fields from specification strings",
	Long: `Extract parses each argument as one specification string. With no
arguments, each non-empty line of standard input is one string.

Absent string fields print their configured default (NA, M/T,
Miscellaneous, Gloss); absent numeric fields print null.

Use --field to print a single field per input, and --save to also store
the records in the catalog.`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	texts, err := readTexts(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if len(texts) == 0 {
		return fmt.Errorf("no specification text: pass arguments or pipe lines on stdin")
	}

	out := cmd.OutOrStdout()

	if field, _ := cmd.Flags().GetString("field"); field != "" {
		for _, text := range texts {
			v, err := record.Field(field, text, cfg.Defaults)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, v)
		}
		return nil
	}

	specs, err := record.BuildAll(cmd.Context(), texts, cfg.Defaults)
	if err != nil {
		return err
	}
	logger.Debug("extracted records", zap.Int("count", len(specs)))

	if save, _ := cmd.Flags().GetBool("save"); save {
		if err := saveSpecs(cmd, cfg.Catalog, specs); err != nil {
			return err
		}
	}

	format := cfg.Output
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		format = types.OutputFormat(f)
	}
	return writeSpecs(out, specs, format)
}

func saveSpecs(cmd *cobra.Command, cfg types.CatalogConfig, specs []types.VehicleSpec) error {
	store, err := catalog.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Save(cmd.Context(), specs)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "saved %d record(s): %d new, %d updated\n",
		summary.Total(), summary.Inserted, summary.Updated)
	return nil
}

// readTexts returns args as-is, or the trimmed non-empty lines of r when no
// args are given.
func readTexts(r io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var texts []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			texts = append(texts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return texts, nil
}

func init() {
	extractCmd.Flags().String("format", "", "output format: yaml, json, or table (default from config, yaml)")
	extractCmd.Flags().String("field", "", "print only this field: fuel_type, horsepower, displacement, cylinder, injection, induction, transmission, speeds, color, finish")
	extractCmd.Flags().Bool("save", false, "also save the records to the catalog")

	rootCmd.AddCommand(extractCmd)
}
