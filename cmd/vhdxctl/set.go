package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/vhdxkit/pkg/vhdx"
)

var (
	setOffset   int64
	setCapacity int
	setDelete   []string
	setLinkage  string
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().Int64Var(&setOffset, "offset", 0, "Byte offset of the parent locator in the file")
	cmd.Flags().IntVar(&setCapacity, "capacity", 0, "Size of the metadata item holding the locator (required)")
	cmd.Flags().StringSliceVar(&setDelete, "delete", nil, "Keys to remove")
	cmd.Flags().StringVar(&setLinkage, "linkage", "", "Set parent_linkage to this GUID")
	_ = cmd.MarkFlagRequired("capacity")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> [key=value...]",
		Short: "Update entries of a parent locator in place",
		Long: `The set command rewrites the parent locator at --offset. Entries given
as key=value are added or replaced, keys passed to --delete are removed. The
new locator must fit in --capacity bytes; the rest of the item is zeroed.

Example:
  vhdxctl set child.avhdx --offset 0x310000 --capacity 0x1000 relative_path=..\base.vhdx
  vhdxctl set child.avhdx --offset 0x310000 --capacity 0x1000 --delete volume_path`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	path := args[0]
	opts := fileOptions(setCapacity)

	loc, err := vhdx.ReadLocator(path, setOffset, opts)
	if err != nil {
		return fmt.Errorf("failed to read locator: %w", err)
	}
	for _, k := range setDelete {
		if !loc.Delete(k) {
			printVerbose("Key not present: %s\n", k)
		}
	}
	if err := applyPairs(loc, args[1:]); err != nil {
		return err
	}
	if err := applyLinkage(loc, setLinkage); err != nil {
		return err
	}

	if err := vhdx.WriteLocator(path, setOffset, setCapacity, loc, opts); err != nil {
		return fmt.Errorf("failed to write locator: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"offset":  setOffset,
			"entries": loc.Map(),
			"size":    loc.Size(),
		})
	}
	printInfo("Updated parent locator (%d entries, %d of %d bytes)\n", loc.Len(), loc.Size(), setCapacity)
	return nil
}
