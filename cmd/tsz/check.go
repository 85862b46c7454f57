package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mohsen1/tsz-sub014/internal/config"
	"github.com/mohsen1/tsz-sub014/internal/diag"
	"github.com/mohsen1/tsz-sub014/internal/diagfmt"
	"github.com/mohsen1/tsz-sub014/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <program.json|directory>",
	Short: "Run check_program over a bound-program JSON payload or a directory of them",
	Long: `check runs the §6.2 check_program pass over an already-bound program: a single
JSON file (one file's {text,nodes,symbols} payload) or a directory of *.json files, one
per source file. tsz never lexes or parses .ts source itself; a host binder produces
this JSON ahead of time.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json|sarif)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("preview", false, "preview fix edits alongside diagnostics")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("strict", false, "enable every strict-family check")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return fmt.Errorf("failed to get suggest flag: %w", err)
	}
	preview, err := cmd.Flags().GetBool("preview")
	if err != nil {
		return fmt.Errorf("failed to get preview flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	files, err := collectProgramFiles(path)
	if err != nil {
		return fmt.Errorf("failed to collect program files: %w", err)
	}

	prog, fs, err := driver.LoadProgramJSON(files)
	if err != nil {
		return fmt.Errorf("failed to load bound program: %w", err)
	}

	sc := sharedSolverConfig(strict)
	result, err := driver.CheckProgram(cmd.Context(), prog, sc, jobs)
	if err != nil {
		return fmt.Errorf("check_program failed: %w", err)
	}

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	showFixes := suggest || preview

	exit := 0
	for _, f := range result.Files {
		if f.HasErrors() {
			exit = 1
		}
	}

	switch format {
	case "pretty":
		prettyOpts := diagfmt.PrettyOpts{
			Color:       useColor,
			Context:     2,
			PathMode:    pathMode,
			ShowNotes:   withNotes,
			ShowFixes:   showFixes,
			ShowPreview: preview,
		}
		for i, f := range result.Files {
			if i > 0 {
				fmt.Fprintln(os.Stdout)
			}
			fmt.Fprintf(os.Stdout, "== %s ==\n", f.Path)
			bag := bagOf(f)
			diagfmt.Pretty(os.Stdout, bag, fs, prettyOpts)
		}
	case "short":
		var all []*diag.Diagnostic
		for _, f := range result.Files {
			all = append(all, f.Diagnostics...)
		}
		if out := diag.FormatShortDiagnostics(all, fs, withNotes); out != "" {
			fmt.Fprintln(os.Stdout, out)
		}
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
			IncludeFixes:     showFixes,
			IncludePreviews:  preview,
		}
		output := make(map[string]diagfmt.DiagnosticsOutput, len(result.Files))
		for _, f := range result.Files {
			data, buildErr := diagfmt.BuildDiagnosticsOutput(bagOf(f), fs, jsonOpts)
			if buildErr != nil {
				return fmt.Errorf("failed to build diagnostics output: %w", buildErr)
			}
			output[f.Path] = data
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("failed to encode diagnostics output: %w", err)
		}
	case "sarif":
		meta := diagfmt.SarifRunMeta{ToolName: "tsz", ToolVersion: "0.1.0"}
		for _, f := range result.Files {
			diagfmt.Sarif(os.Stdout, bagOf(f), fs, meta)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if exit != 0 {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

// bagOf wraps one FileResult's diagnostics in a Bag so diagfmt (which
// renders from *diag.Bag) can format a single file at a time.
func bagOf(f driver.FileResult) *diag.Bag {
	bag := diag.NewBag(len(f.Diagnostics))
	for _, d := range f.Diagnostics {
		bag.Add(*d)
	}
	return bag
}

// collectProgramFiles reads path (a single JSON payload, or a directory of
// them) into the {path: payload} map driver.LoadProgramJSON expects. A
// directory's entries are keyed by their path relative to path itself,
// with the .json suffix replaced by .ts, mirroring the source path a real
// binder would have recorded.
func collectProgramFiles(path string) (map[string]string, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return map[string]string{logicalPath(filepath.Base(path)): string(b)}, nil
	}

	files := make(map[string]string)
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(p) != ".json" {
			return nil
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(path, p)
		if err != nil {
			rel = p
		}
		files[logicalPath(rel)] = string(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func logicalPath(p string) string {
	if strings.HasSuffix(p, ".json") {
		return strings.TrimSuffix(p, ".json") + ".ts"
	}
	return p
}

// sharedSolverConfig is the check/get-type/format-type commands' shared
// --strict handling: strict on turns on every strict-family flag via
// ApplyStrictDefaults, with no manifest-level per-field overrides to honor
// from a bare CLI invocation.
func sharedSolverConfig(strict bool) config.SolverConfig {
	sc := config.DefaultSolverConfig()
	sc.Strict = strict
	return sc.ApplyStrictDefaults(nil)
}
