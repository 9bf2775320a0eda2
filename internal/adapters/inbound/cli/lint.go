package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	configAdapter "github.com/dialoglint/dialoglint/internal/adapters/outbound/config"
	"github.com/dialoglint/dialoglint/internal/adapters/outbound/gitinfo"
	"github.com/dialoglint/dialoglint/internal/adapters/outbound/history"
	"github.com/dialoglint/dialoglint/internal/adapters/outbound/loader"
	"github.com/dialoglint/dialoglint/internal/adapters/outbound/tui"
	"github.com/dialoglint/dialoglint/internal/application"
	"github.com/dialoglint/dialoglint/internal/domain"
)

func newLintCmd() *cobra.Command {
	var (
		jsonOutput  bool
		strict      bool
		profile     string
		path        string
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "lint <file1> [file2] ...",
		Short: "Lint dialog definition files",
		Long:  "Validate YAML dialog files against the rule catalog for the active convention profile. Every violation is reported in one pass.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			hist := history.New()

			if showHistory {
				if len(args) > 0 {
					return fmt.Errorf("--history takes no file arguments")
				}
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("specify at least one dialog file to lint")
			}

			svc := application.NewLintService(loader.New(), configAdapter.New())

			// Each file is an independent run with its own tree and
			// findings; results are only aggregated for output.
			results := make([]*domain.ValidationResult, 0, len(args))
			for _, file := range args {
				result, err := svc.LintFile(absPath, file, domain.Profile(profile))
				if err != nil {
					return err
				}
				results = append(results, result)
			}

			// Attach git state if available and record runs, best-effort.
			git := gitinfo.New()
			commitHash := ""
			dirty := false
			if hash, err := git.CommitHash(absPath); err == nil {
				commitHash = hash
				dirty, _ = git.IsDirty(absPath)
			}
			for _, r := range results {
				_ = hist.Save(absPath, domain.RunEntry{
					Timestamp:  time.Now().Format(time.RFC3339),
					CommitHash: commitHash,
					Dirty:      dirty,
					Source:     r.Source,
					Status:     r.Status,
					Errors:     r.ErrorCount,
					Warnings:   r.WarningCount,
				})
			}

			if jsonOutput {
				if err := renderResultsJSON(cmd, results); err != nil {
					return err
				}
			} else {
				for _, r := range results {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(r))
				}
			}

			return exitStatus(results, strict)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on warnings too")
	cmd.Flags().StringVar(&profile, "profile", "", "Convention profile: classic or modern (overrides config)")
	cmd.Flags().StringVar(&path, "path", ".", "Directory holding .dialoglint.yaml and lint history")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show lint history and exit (takes no file arguments)")

	return cmd
}

func renderResultsJSON(cmd *cobra.Command, results []*domain.ValidationResult) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if len(results) == 1 {
		return enc.Encode(results[0])
	}
	return enc.Encode(results)
}

// exitStatus turns lint outcomes into the command's exit code: errors always
// fail, warnings fail only under --strict.
func exitStatus(results []*domain.ValidationResult, strict bool) error {
	errors, warnings := 0, 0
	for _, r := range results {
		errors += r.ErrorCount
		warnings += r.WarningCount
	}

	switch {
	case errors > 0:
		return fmt.Errorf("validation failed: %d error(s), %d warning(s)", errors, warnings)
	case strict && warnings > 0:
		return fmt.Errorf("validation failed (strict): %d warning(s)", warnings)
	}
	return nil
}
