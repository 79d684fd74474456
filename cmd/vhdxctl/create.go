package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/vhdxkit/pkg/vhdx"
	"github.com/joshuapare/vhdxkit/vhdx/locator"
)

var createLinkage string

func init() {
	cmd := newCreateCmd()
	cmd.Flags().StringVar(&createLinkage, "linkage", "", "Set parent_linkage to this GUID")
	rootCmd.AddCommand(cmd)
}

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <out> [key=value...]",
		Short: "Write a standalone parent locator file",
		Long: `The create command encodes a new parent locator from key=value
arguments and writes it to <out>, replacing the file atomically.

Example:
  vhdxctl create locator.bin --linkage 83ae3d4b-6b9f-4b5a-9c1d-0e2f3a4b5c6d relative_path=..\base.vhdx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args)
		},
	}
	return cmd
}

func runCreate(args []string) error {
	out := args[0]

	loc := locator.New()
	if err := applyLinkage(loc, createLinkage); err != nil {
		return err
	}
	if err := applyPairs(loc, args[1:]); err != nil {
		return err
	}

	if err := vhdx.CreateLocatorFile(out, loc, fileOptions(0)); err != nil {
		return fmt.Errorf("failed to create locator: %w", err)
	}
	printInfo("Wrote %s (%d entries, %d bytes)\n", out, loc.Len(), loc.Size())
	return nil
}
