package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mohsen1/tsz-sub014/internal/ast"
	"github.com/mohsen1/tsz-sub014/internal/driver"
)

var getTypeCmd = &cobra.Command{
	Use:   "get-type <program.json> <node-id>",
	Short: "Resolve a single node's type (§6.2 get_type_at)",
	Long: `get-type loads one file's bound-program JSON payload, checks it, and prints the
raw numeric TypeID of the given node, for tooling that wants an opaque handle without
re-running a whole check_program pass.`,
	Args: cobra.ExactArgs(2),
	RunE: runGetType,
}

func init() {
	getTypeCmd.Flags().Bool("strict", false, "enable every strict-family check")
}

func runGetType(cmd *cobra.Command, args []string) error {
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
	fmt.Fprintln(os.Stdout, uint32(typeID))
	return nil
}

// loadSingleBoundFile reads one JSON bound-program payload from disk into
// a driver.BoundFile, the shared first step of get-type and format-type.
func loadSingleBoundFile(path string) (driver.BoundFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return driver.BoundFile{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	bf, err := driver.DecodeBoundFile(nil, logicalPath(filepath.Base(path)), b)
	if err != nil {
		return driver.BoundFile{}, fmt.Errorf("failed to decode bound file: %w", err)
	}
	return bf, nil
}
