package engine_test

import (
	"testing"

	"github.com/dialoglint/dialoglint/internal/domain"
	"github.com/dialoglint/dialoglint/internal/domain/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tree builds a small document:
//
//	[root]            (mapping, id root)
//	  actions         (sequence)
//	    actions[a1]   (mapping, id a1)
//	    actions[a2]   (mapping, id a2)
func tree() *domain.ConfigNode {
	item := func(id string) *domain.ConfigNode {
		return &domain.ConfigNode{
			Kind: domain.KindMapping,
			Path: "actions[" + id + "]",
			Entries: []domain.MapEntry{
				{Key: "id", Value: &domain.ConfigNode{Kind: domain.KindScalar, Value: id}},
			},
		}
	}
	seq := &domain.ConfigNode{
		Kind:  domain.KindSequence,
		Path:  "actions",
		Key:   "actions",
		Items: []*domain.ConfigNode{item("a1"), item("a2")},
	}
	return &domain.ConfigNode{
		Kind: domain.KindMapping,
		Path: "[root]",
		Entries: []domain.MapEntry{
			{Key: "id", Value: &domain.ConfigNode{Kind: domain.KindScalar, Value: "root"}},
			{Key: "actions", Value: seq},
		},
	}
}

// flagMappings fires on every mapping node.
func flagMappings(id string) domain.Rule {
	return domain.Rule{
		ID:       id,
		Severity: domain.SeverityWarning,
		AppliesTo: func(n *domain.ConfigNode) bool {
			return n.Kind == domain.KindMapping
		},
		Check: func(n *domain.ConfigNode) []domain.Finding {
			return []domain.Finding{domain.Fail(n, "mapping seen")}
		},
	}
}

func TestValidate_DocumentOrder(t *testing.T) {
	findings := engine.Validate(tree(), []domain.Rule{flagMappings("every-mapping")})

	require.Len(t, findings, 3)
	assert.Equal(t, "[root]", findings[0].Path)
	assert.Equal(t, "actions[a1]", findings[1].Path)
	assert.Equal(t, "actions[a2]", findings[2].Path)
}

func TestValidate_StampsRuleIDAndSeverity(t *testing.T) {
	findings := engine.Validate(tree(), []domain.Rule{flagMappings("every-mapping")})

	require.NotEmpty(t, findings)
	for _, f := range findings {
		assert.Equal(t, "every-mapping", f.RuleID)
		assert.Equal(t, domain.SeverityWarning, f.Severity)
	}
}

func TestValidate_CheckSeverityOverridesRuleDefault(t *testing.T) {
	rule := domain.Rule{
		ID:       "escalating",
		Severity: domain.SeverityWarning,
		AppliesTo: func(n *domain.ConfigNode) bool {
			return n.Path == "[root]"
		},
		Check: func(n *domain.ConfigNode) []domain.Finding {
			f := domain.Fail(n, "worse than usual")
			f.Severity = domain.SeverityError
			return []domain.Finding{f}
		},
	}

	findings := engine.Validate(tree(), []domain.Rule{rule})
	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityError, findings[0].Severity)
}

func TestValidate_PanickingRuleDoesNotAbortRun(t *testing.T) {
	panicking := domain.Rule{
		ID:       "broken-rule",
		Severity: domain.SeverityError,
		AppliesTo: func(n *domain.ConfigNode) bool {
			return n.Path == "actions[a1]"
		},
		Check: func(n *domain.ConfigNode) []domain.Finding {
			panic("nil map write")
		},
	}

	findings := engine.Validate(tree(), []domain.Rule{panicking, flagMappings("every-mapping")})

	var internal []domain.Finding
	var regular []domain.Finding
	for _, f := range findings {
		if f.Internal {
			internal = append(internal, f)
		} else {
			regular = append(regular, f)
		}
	}

	require.Len(t, internal, 1, "one internal finding for the broken rule")
	assert.Equal(t, "broken-rule", internal[0].RuleID)
	assert.Equal(t, "actions[a1]", internal[0].Path)
	assert.Contains(t, internal[0].Message, "nil map write")

	assert.Len(t, regular, 3, "the healthy rule still covers every mapping")
}

func TestValidate_Idempotent(t *testing.T) {
	doc := tree()
	rules := []domain.Rule{flagMappings("every-mapping")}

	first := engine.Validate(doc, rules)
	second := engine.Validate(doc, rules)
	assert.Equal(t, first, second)
}

func TestValidate_NilRoot(t *testing.T) {
	assert.Empty(t, engine.Validate(nil, []domain.Rule{flagMappings("every-mapping")}))
}
