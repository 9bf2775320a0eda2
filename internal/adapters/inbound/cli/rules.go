package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	configAdapter "github.com/dialoglint/dialoglint/internal/adapters/outbound/config"
	"github.com/dialoglint/dialoglint/internal/adapters/outbound/loader"
	"github.com/dialoglint/dialoglint/internal/adapters/outbound/tui"
	"github.com/dialoglint/dialoglint/internal/application"
	"github.com/dialoglint/dialoglint/internal/domain"
)

func newRulesCmd() *cobra.Command {
	var (
		jsonOutput bool
		profile    string
		path       string
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the active rule catalog",
		Long:  "Show every rule the active convention profile enforces, after config disables and severity overrides.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := configAdapter.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if profile != "" {
				cfg.Profile = domain.Profile(profile)
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			svc := application.NewLintService(loader.New(), configAdapter.New())
			rules, err := svc.ActiveRules(cfg)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rules)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(cfg.EffectiveProfile(), rules))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output rules as JSON")
	cmd.Flags().StringVar(&profile, "profile", "", "Convention profile: classic or modern (overrides config)")
	cmd.Flags().StringVar(&path, "path", ".", "Directory holding .dialoglint.yaml")

	return cmd
}
