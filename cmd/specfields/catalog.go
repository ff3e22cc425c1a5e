// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/specfields/internal/catalog"
	"github.com/pdiddy/specfields/internal/record"
	"github.com/pdiddy/specfields/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the record catalog (save, retrieve, show, export)",
	Long: `Catalog manages a local SQLite database of extracted records. Use
subcommands to save specification strings, query them by field or text,
and export them to YAML or JSON.`,
}

// --- save subcommand ---

var catalogSaveCmd = &cobra.Command{
	Use:   "save [text...]",
	Short: "Extract specification strings and save the records",
	Long: `Save extracts each argument (or each non-empty stdin line) and
upserts the record keyed by a hash of its source text. Saving the same
text again replaces its fields.`,
	RunE: runCatalogSave,
}

func runCatalogSave(cmd *cobra.Command, args []string) error {
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

	specs, err := record.BuildAll(cmd.Context(), texts, cfg.Defaults)
	if err != nil {
		return err
	}
	return saveSpecs(cmd, cfg.Catalog, specs)
}

// --- retrieve subcommand ---

var catalogRetrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Query saved records by source text and field filters",
	Long: `Retrieve searches the source text of saved records (every term must
appear) and filters by field values. Field filters ignore case.`,
	RunE: runCatalogRetrieve,
}

func runCatalogRetrieve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --fuel, --cylinder, --transmission, --color, or --min-hp")
	}

	store, err := catalog.Open(cfg.Catalog, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Retrieve(cmd.Context(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRetrieveOutput(cmd, results, jsonOutput)
}

func formatRetrieveOutput(cmd *cobra.Command, results []catalog.Entry, jsonOutput bool) error {
	out := cmd.OutOrStdout()
	if jsonOutput {
		if results == nil {
			results = []catalog.Entry{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No results found.")
		return nil
	}

	fmt.Fprintf(out, "%-16s  %-6s  %-10s  %-13s  %-13s  %s\n",
		"ID", "HP", "Cylinder", "Transmission", "Color", "Source")
	fmt.Fprintln(out, strings.Repeat("-", 110))
	for _, r := range results {
		fmt.Fprintf(out, "%-16s  %-6s  %-10s  %-13s  %-13s  %s\n",
			r.ID, floatCell(r.Horsepower), truncate(r.Cylinder, 10),
			truncate(r.Transmission, 13), truncate(r.Color, 13), truncate(r.Source, 40))
	}
	fmt.Fprintf(out, "\n%d results\n", len(results))
	return nil
}

// --- show subcommand ---

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one saved record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := catalog.Open(cfg.Catalog, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		e, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeSpecs(cmd.OutOrStdout(), []types.VehicleSpec{e.VehicleSpec}, cfg.Output)
	},
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved records to YAML or JSON",
	Long: `Export writes all saved records (or the subset matching the filter
flags) to export.yaml or export.json in the catalog directory.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := catalog.Open(cfg.Catalog, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(cmd.Context(), opts)
	case "json":
		path, err = store.ExportJSON(cmd.Context(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

// --- shared helpers ---

func queryOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	fuel, _ := cmd.Flags().GetString("fuel")
	cylinder, _ := cmd.Flags().GetString("cylinder")
	transmission, _ := cmd.Flags().GetString("transmission")
	color, _ := cmd.Flags().GetString("color")
	minHP, _ := cmd.Flags().GetFloat64("min-hp")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Query:         queryText,
		FuelType:      fuel,
		Cylinder:      cylinder,
		Transmission:  transmission,
		Color:         color,
		MinHorsepower: minHP,
		MaxResults:    limit,
	}
}

func addFilterFlags(cmd *cobra.Command, purpose string) {
	cmd.Flags().String("query", "", "source text search"+purpose)
	cmd.Flags().String("fuel", "", "filter by fuel type"+purpose)
	cmd.Flags().String("cylinder", "", "filter by cylinder layout"+purpose)
	cmd.Flags().String("transmission", "", "filter by transmission"+purpose)
	cmd.Flags().String("color", "", "filter by exterior color"+purpose)
	cmd.Flags().Float64("min-hp", 0, "minimum horsepower"+purpose)
}

func init() {
	// Retrieve flags.
	addFilterFlags(catalogRetrieveCmd, "")
	catalogRetrieveCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	catalogRetrieveCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	addFilterFlags(catalogExportCmd, " for partial export")
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	// Wire subcommands.
	catalogCmd.AddCommand(catalogSaveCmd)
	catalogCmd.AddCommand(catalogRetrieveCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
