package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"regxl/internal/diagfmt"
	"regxl/internal/driver"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [dir]",
	Short: "Compile every pattern file in a directory",
	Long: `Build compiles all *.rgx files under a directory in parallel.
Successful compilations are stored in the disk cache and reused on the next
run as long as the source and the extension manifest are unchanged.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().IntP("jobs", "j", 0, "maximum parallel compilations (0 = GOMAXPROCS)")
	buildCmd.Flags().Bool("no-cache", false, "bypass the disk cache")
}

func runBuild(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	man, _, err := loadManifest(dir)
	if err != nil {
		return err
	}

	opts := driver.BuildOptions{
		Registry:       man.registry(),
		MaxDiagnostics: maxDiagnostics(cmd),
		Jobs:           jobs,
		ManifestHash:   man.hash(),
	}
	if !noCache {
		disk, err := driver.OpenDiskCache("regxl")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
		opts.Disk = disk
	}

	results, err := driver.BuildDir(cmd.Context(), dir, opts)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no *.rgx files under %s", dir)
	}

	failed := 0
	for _, res := range results {
		if !res.OK {
			failed++
			if res.Bag != nil {
				res.Bag.Sort()
				fmt.Fprintf(os.Stderr, "%s:\n", res.Path)
				diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
					Color:     useColor(cmd, os.Stderr),
					ShowNotes: true,
				})
			}
			continue
		}
		if quiet {
			continue
		}
		cached := ""
		if res.Cached {
			cached = " (cached)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s%s\n", res.Path, res.Pattern.String(), cached)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d patterns failed", failed, len(results))
	}
	return nil
}
