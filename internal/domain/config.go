package domain

import (
	"fmt"
	"strings"
)

// LintConfig holds tool configuration loaded from .dialoglint.yaml.
type LintConfig struct {
	Profile  Profile           `yaml:"profile"  json:"profile,omitempty"`
	Disable  []string          `yaml:"disable"  json:"disable,omitempty"`
	Severity map[string]string `yaml:"severity" json:"severity,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() LintConfig {
	return LintConfig{}
}

// EffectiveProfile returns the configured profile, falling back to the
// default when unset.
func (c LintConfig) EffectiveProfile() Profile {
	if c.Profile == "" {
		return DefaultProfile
	}
	return c.Profile
}

// IsDisabled reports whether the named rule is excluded.
func (c LintConfig) IsDisabled(ruleID string) bool {
	for _, id := range c.Disable {
		if id == ruleID {
			return true
		}
	}
	return false
}

// Validate checks the config for invalid values and returns a descriptive
// error. Rule ids are validated by the caller against the active catalog,
// since the catalog depends on the profile chosen here.
func (c LintConfig) Validate() error {
	// 1. profile must be known or empty
	if c.Profile != "" {
		valid := false
		for _, p := range ValidProfiles {
			if c.Profile == p {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown profile %q (valid: %s)", c.Profile, profileNames())
		}
	}

	// 2. severity overrides must be recognized severities
	for id, sev := range c.Severity {
		switch sev {
		case SeverityError, SeverityWarning, SeverityInfo:
		default:
			return fmt.Errorf("invalid severity %q for rule %q (valid: error, warning, info)", sev, id)
		}
	}

	return nil
}

// profileNames renders ValidProfiles for error messages, so the list never
// goes stale when a profile is added.
func profileNames() string {
	names := make([]string, len(ValidProfiles))
	for i, p := range ValidProfiles {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
