package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mohsen1/tsz-sub014/internal/config"
	"github.com/mohsen1/tsz-sub014/internal/driver"
	"github.com/mohsen1/tsz-sub014/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] <program.json|directory>",
	Short: "Run check_program once with a live Bubble Tea progress view",
	Long: `watch runs the same bound-program check as "tsz check", but drives a terminal
progress UI off CheckProgramWithEvents' per-file event stream instead of printing
diagnostics directly. It exits non-zero if any file has errors, the same as "tsz check".`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Bool("strict", false, "enable every strict-family check")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	files, err := collectProgramFiles(path)
	if err != nil {
		return fmt.Errorf("failed to collect program files: %w", err)
	}
	prog, _, err := driver.LoadProgramJSON(files)
	if err != nil {
		return fmt.Errorf("failed to load bound program: %w", err)
	}

	names := make([]string, len(prog))
	for i, bf := range prog {
		names[i] = bf.Path
	}

	result, err := runCheckWithUI(cmd, "checking", names, prog, sharedSolverConfig(strict), jobs)
	if err != nil {
		return err
	}

	if result.HasErrors() {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

// runCheckWithUI runs CheckProgramWithEvents in the background while a
// Bubble Tea progress model consumes its event channel, mirroring the
// teacher's runBuildWithUI/runCompileWithUI pattern.
func runCheckWithUI(cmd *cobra.Command, title string, files []string, prog driver.Program, sc config.SolverConfig, jobs int) (*driver.Result, error) {
	type outcome struct {
		result *driver.Result
		err    error
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan outcome, 1)

	go func() {
		res, err := driver.CheckProgramWithEvents(cmd.Context(), prog, sc, jobs, events)
		outcomeCh <- outcome{result: res, err: err}
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	out := <-outcomeCh
	if uiErr != nil {
		return out.result, uiErr
	}
	return out.result, out.err
}
