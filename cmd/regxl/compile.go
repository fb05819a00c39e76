package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"regxl/internal/diagfmt"
	"regxl/internal/driver"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] [file.rgx]",
	Short: "Compile a RegXL pattern to regex text",
	Long: `Compile runs the full pipeline over a pattern file or an inline
expression and prints the resulting regex pattern with its flags.
Extensions declared in regxl.toml are available to the pattern.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringP("expr", "e", "", "compile an inline expression instead of a file")
	compileCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type compilePayload struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}

func runCompile(cmd *cobra.Command, args []string) error {
	expr, err := cmd.Flags().GetString("expr")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if expr == "" && len(args) == 0 {
		return fmt.Errorf("provide a pattern file or --expr")
	}
	if expr != "" && len(args) > 0 {
		return fmt.Errorf("--expr and a file argument are mutually exclusive")
	}

	man, _, err := loadManifest(".")
	if err != nil {
		return err
	}
	opts := driver.CompileOptions{
		Registry:       man.registry(),
		MaxDiagnostics: maxDiagnostics(cmd),
	}

	var res *driver.CompileResult
	if expr != "" {
		res = driver.CompileSource("<expr>", expr, opts)
	} else {
		res, err = driver.CompileFile(args[0], opts)
		if err != nil {
			return fmt.Errorf("compilation failed: %w", err)
		}
	}

	if res.Bag.HasErrors() || res.Bag.HasWarnings() {
		res.Bag.Sort()
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}
	if !res.OK {
		return fmt.Errorf("compilation failed")
	}

	switch format {
	case "pretty":
		fmt.Fprintln(cmd.OutOrStdout(), res.Pattern.String())
		return nil
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(compilePayload{
			Pattern: res.Pattern.Source,
			Flags:   res.Pattern.Flags.String(),
		})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
