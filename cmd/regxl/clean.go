package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"regxl/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the compiled pattern disk cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		disk, err := driver.OpenDiskCache("regxl")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
		if err := disk.DropAll(); err != nil {
			return fmt.Errorf("failed to drop disk cache: %w", err)
		}
		quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "disk cache dropped")
		}
		return nil
	},
}
