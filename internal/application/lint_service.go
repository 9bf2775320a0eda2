package application

import (
	"fmt"
	"os"

	"github.com/dialoglint/dialoglint/internal/domain"
	"github.com/dialoglint/dialoglint/internal/domain/catalog"
	"github.com/dialoglint/dialoglint/internal/domain/engine"
)

// LintService validates dialog documents against the rule catalog for the
// configured convention profile.
type LintService struct {
	loader       domain.DocumentLoader
	configLoader domain.ConfigLoader
}

// NewLintService creates a LintService with all required dependencies.
func NewLintService(loader domain.DocumentLoader, configLoader domain.ConfigLoader) *LintService {
	return &LintService{loader: loader, configLoader: configLoader}
}

// LintFile lints one dialog file. Configuration is read from dir; profile,
// when non-empty, overrides the configured convention profile.
func (s *LintService) LintFile(dir, path string, profile domain.Profile) (*domain.ValidationResult, error) {
	cfg, err := s.configLoader.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if profile != "" {
		cfg.Profile = profile
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return s.LintSource(path, data, cfg)
}

// LintSource lints one dialog document held in memory. Each call operates on
// its own tree and findings; nothing is shared across runs. The only early
// exit is a *domain.ParseError on malformed input, in which case no
// ValidationResult is produced.
func (s *LintService) LintSource(source string, data []byte, cfg domain.LintConfig) (*domain.ValidationResult, error) {
	// 1. Build the catalog for the configured profile.
	profile := cfg.EffectiveProfile()
	rules := catalog.Rules(profile)

	// 2. Reject config references to rules the active catalog doesn't have.
	if err := validateRuleRefs(cfg, rules); err != nil {
		return nil, err
	}

	// 3. Apply disables and severity overrides.
	rules = applyConfig(rules, cfg)

	// 4. Parse into the node tree.
	root, err := s.loader.Load(source, data)
	if err != nil {
		return nil, err
	}

	// 5. Evaluate every rule against every node, in document order.
	findings := engine.Validate(root, rules)

	return domain.NewValidationResult(source, profile, findings), nil
}

// ActiveRules returns the catalog a config resolves to, with disables and
// severity overrides applied. Used by the rules command and MCP resources.
func (s *LintService) ActiveRules(cfg domain.LintConfig) ([]domain.Rule, error) {
	rules := catalog.Rules(cfg.EffectiveProfile())
	if err := validateRuleRefs(cfg, rules); err != nil {
		return nil, err
	}
	return applyConfig(rules, cfg), nil
}

func validateRuleRefs(cfg domain.LintConfig, rules []domain.Rule) error {
	known := make(map[string]bool, len(rules))
	for _, r := range rules {
		known[r.ID] = true
	}

	for _, id := range cfg.Disable {
		if !known[id] {
			return fmt.Errorf("unknown rule %q in disable (profile %s)", id, cfg.EffectiveProfile())
		}
	}
	for id := range cfg.Severity {
		if !known[id] {
			return fmt.Errorf("unknown rule %q in severity (profile %s)", id, cfg.EffectiveProfile())
		}
	}
	return nil
}

func applyConfig(rules []domain.Rule, cfg domain.LintConfig) []domain.Rule {
	active := make([]domain.Rule, 0, len(rules))
	for _, r := range rules {
		if cfg.IsDisabled(r.ID) {
			continue
		}
		if sev, ok := cfg.Severity[r.ID]; ok {
			r.Severity = sev
		}
		active = append(active, r)
	}
	return active
}
