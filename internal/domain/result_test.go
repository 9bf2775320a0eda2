package domain_test

import (
	"testing"

	"github.com/dialoglint/dialoglint/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewValidationResult_Counts(t *testing.T) {
	findings := []domain.Finding{
		{RuleID: "a", Severity: domain.SeverityError, Path: "[q1]", Message: "first"},
		{RuleID: "b", Severity: domain.SeverityWarning, Path: "[q1].entity", Message: "second"},
		{RuleID: "c", Severity: domain.SeverityError, Path: "actions[0]", Message: "third"},
	}

	r := domain.NewValidationResult("bot.yaml", domain.ProfileClassic, findings)

	assert.Equal(t, domain.StatusFail, r.Status)
	assert.Equal(t, 2, r.ErrorCount)
	assert.Equal(t, 1, r.WarningCount)
	assert.Equal(t, "classic", r.Profile)
	assert.Equal(t, findings, r.Findings, "finding order must be preserved")
}

func TestNewValidationResult_Status(t *testing.T) {
	tests := []struct {
		name     string
		findings []domain.Finding
		want     string
	}{
		{"no findings", nil, domain.StatusPass},
		{"warnings only", []domain.Finding{{Severity: domain.SeverityWarning}}, domain.StatusWarn},
		{"any error", []domain.Finding{{Severity: domain.SeverityWarning}, {Severity: domain.SeverityError}}, domain.StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.NewValidationResult("", domain.ProfileClassic, tt.findings)
			assert.Equal(t, tt.want, r.Status)
		})
	}
}

func TestValidationResult_Render(t *testing.T) {
	r := domain.NewValidationResult("bot.yaml", domain.ProfileClassic, []domain.Finding{
		{RuleID: "question-required-fields", Severity: domain.SeverityError, Path: "[q1]", Message: "Question is missing required key(s): entity"},
		{RuleID: "conditiongroup-default-actions", Severity: domain.SeverityWarning, Path: "[cg1]", Message: "no defaultActions"},
	})

	want := "error: [q1] — Question is missing required key(s): entity\n" +
		"warning: [cg1] — no defaultActions\n"
	assert.Equal(t, want, r.Render())
}
