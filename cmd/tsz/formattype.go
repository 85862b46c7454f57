package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mohsen1/tsz-sub014/internal/ast"
	"github.com/mohsen1/tsz-sub014/internal/driver"
)

var formatTypeCmd = &cobra.Command{
	Use:   "format-type <program.json> <node-id>",
	Short: "Render a node's resolved type as a stable, human-readable label (§6.2 format_type)",
	Long: `format-type is get-type plus format_type: it resolves the given node's type and
prints tsz's canonical label for it (no internal type IDs leaked, per §6.1's determinism
guarantee), rather than the raw numeric TypeID get-type reports.`,
	Args: cobra.ExactArgs(2),
	RunE: runFormatType,
}

func init() {
	formatTypeCmd.Flags().Bool("strict", false, "enable every strict-family check")
}

func runFormatType(cmd *cobra.Command, args []string) error {
	path, nodeIDArg := args[0], args[1]

	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}

	nodeID, err := strconv.ParseUint(nodeIDArg, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid node id %q: %w", nodeIDArg, err)
	}

	bf, err := loadSingleBoundFile(path)
	if err != nil {
		return err
	}

	c, _ := driver.NewChecker(cmd.Context(), bf, sharedSolverConfig(strict))
	typeID := driver.GetTypeAt(c, ast.NodeID(nodeID))
	fmt.Fprintln(os.Stdout, driver.FormatType(c, typeID))
	return nil
}
