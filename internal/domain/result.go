package domain

import (
	"fmt"
	"strings"
)

// Run outcomes. Any error fails the run; warnings alone only mark it.
const (
	StatusPass = "pass"
	StatusWarn = "warn"
	StatusFail = "fail"
)

// ValidationResult is the complete outcome of linting one document.
type ValidationResult struct {
	Status       string    `json:"status"`
	Source       string    `json:"source"`
	Profile      string    `json:"profile"`
	Findings     []Finding `json:"findings"`
	ErrorCount   int       `json:"error_count"`
	WarningCount int       `json:"warning_count"`
}

// NewValidationResult derives status and counts from the findings. Finding
// order is preserved as given.
func NewValidationResult(source string, profile Profile, findings []Finding) *ValidationResult {
	r := &ValidationResult{
		Status:   StatusPass,
		Source:   source,
		Profile:  string(profile),
		Findings: findings,
	}

	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			r.ErrorCount++
		case SeverityWarning:
			r.WarningCount++
		}
	}

	switch {
	case r.ErrorCount > 0:
		r.Status = StatusFail
	case r.WarningCount > 0:
		r.Status = StatusWarn
	}

	return r
}

// Render formats the findings as plain report lines, one per finding, in
// document order.
func (r *ValidationResult) Render() string {
	var b strings.Builder
	for _, f := range r.Findings {
		fmt.Fprintf(&b, "%s: %s — %s\n", f.Severity, f.Path, f.Message)
	}
	return b.String()
}
