package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"regxl/internal/ast"
	"regxl/internal/diag"
	"regxl/internal/diagfmt"
	"regxl/internal/lexer"
	"regxl/internal/parser"
	"regxl/internal/resolver"
	"regxl/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.rgx",
	Short: "Parse a RegXL pattern file and dump its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("resolve", false, "expand custom tokens before dumping")
	parseCmd.Flags().Bool("print", false, "print canonical source instead of the tree")
}

func runParse(cmd *cobra.Command, args []string) error {
	doResolve, err := cmd.Flags().GetBool("resolve")
	if err != nil {
		return err
	}
	doPrint, err := cmd.Flags().GetBool("print")
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	bag := diag.NewBag(maxDiagnostics(cmd))
	rep := diag.BagReporter{Bag: bag}

	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	res := parser.Parse(lx, parser.Options{Reporter: rep})

	root := res.Root
	ok := res.OK
	if ok && doResolve {
		man, _, err := loadManifest(".")
		if err != nil {
			return err
		}
		root, ok = resolver.Resolve(root, resolver.Options{
			Registry: man.registry(),
			Reporter: rep,
			Files:    fs,
		})
	}

	if bag.HasErrors() || bag.HasWarnings() {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}
	if !ok {
		return fmt.Errorf("parse failed")
	}

	if doPrint {
		fmt.Fprintln(cmd.OutOrStdout(), ast.Print(root))
		return nil
	}
	diagfmt.DumpAST(cmd.OutOrStdout(), root)
	return nil
}
