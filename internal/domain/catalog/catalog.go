// Package catalog holds the static rule catalog: every documented authoring
// constraint for dialog definitions, expressed as an independent Rule value.
// The catalog is fixed at process start; rules can be added or removed
// without touching the traversal engine.
package catalog

import (
	"fmt"
	"strings"

	"github.com/dialoglint/dialoglint/internal/domain"
)

// Rule ids, stable across releases. Configs reference these to disable
// rules or override severities.
const (
	RuleNoDuplicateKeys          = "no-duplicate-keys"
	RuleEntityLowercase          = "entity-lowercase"
	RuleEntityKnownType          = "entity-known-type"
	RuleQuestionRequiredFields   = "question-required-fields"
	RuleVariableInitPrefix       = "variable-init-prefix"
	RuleInterruptionPolicy       = "interruption-policy-unsupported"
	RuleVariableWordShape        = "variable-word-shape"
	RuleConditionRequiresID      = "condition-requires-id"
	RuleConditionRequiresExpr    = "condition-requires-expression"
	RuleConditionGroupConditions = "conditiongroup-requires-conditions"
	RuleConditionGroupDefaults   = "conditiongroup-default-actions"
	RuleActionRequiresKind       = "action-requires-kind"
	RuleUnknownKind              = "unknown-kind"
)

// actionListKeys are the mapping keys whose sequences hold dialog action
// nodes.
var actionListKeys = map[string]bool{
	"actions":        true,
	"defaultActions": true,
	"elseActions":    true,
}

// Rules returns the ordered rule catalog for a convention profile. The two
// platform guide variants contradict each other on the init: prefix and
// interruptionPolicy conventions, so those rules differ per profile.
func Rules(profile domain.Profile) []domain.Rule {
	rules := []domain.Rule{
		{
			ID:          RuleNoDuplicateKeys,
			Severity:    domain.SeverityError,
			Description: "Mapping keys must be unique; the last occurrence wins and earlier values are silently dropped",
			AppliesTo: func(n *domain.ConfigNode) bool {
				return n.Kind == domain.KindMapping && len(n.DuplicateKeys) > 0
			},
			Check: checkDuplicateKeys,
		},
		{
			ID:          RuleEntityLowercase,
			Severity:    domain.SeverityError,
			Description: `The entity key is lowercase; "Entity" is not recognized by the platform`,
			AppliesTo: func(n *domain.ConfigNode) bool {
				return n.Kind == domain.KindMapping && n.Has("Entity")
			},
			Check: checkEntityLowercase,
		},
		{
			ID:          RuleQuestionRequiredFields,
			Severity:    domain.SeverityError,
			Description: "Question nodes must declare variable, entity and prompt",
			AppliesTo:   isQuestion,
			Check:       checkQuestionRequiredFields(profile),
		},
		{
			ID:          RuleEntityKnownType,
			Severity:    domain.SeverityWarning,
			Description: "Question entity values should name a documented lowercase entity type",
			AppliesTo: func(n *domain.ConfigNode) bool {
				if !isQuestion(n) {
					return false
				}
				_, ok := n.Scalar("entity")
				return ok
			},
			Check: checkEntityKnownType,
		},
		{
			ID:          RuleVariableWordShape,
			Severity:    domain.SeverityWarning,
			Description: "Question variable segments should be PascalCase names",
			AppliesTo:   hasQuestionVariable,
			Check:       checkVariableWordShape,
		},
		{
			ID:          RuleConditionRequiresID,
			Severity:    domain.SeverityError,
			Description: "Every item of a conditions list must carry an id",
			AppliesTo:   isConditionsList,
			Check:       checkConditionRequiresID,
		},
		{
			ID:          RuleConditionRequiresExpr,
			Severity:    domain.SeverityError,
			Description: "Every item of a conditions list must carry a condition expression",
			AppliesTo:   isConditionsList,
			Check:       checkConditionRequiresExpr,
		},
		{
			ID:          RuleConditionGroupConditions,
			Severity:    domain.SeverityError,
			Description: "ConditionGroup nodes must hold a non-empty conditions list",
			AppliesTo:   isConditionGroup,
			Check:       checkConditionGroupConditions,
		},
		{
			ID:          RuleConditionGroupDefaults,
			Severity:    domain.SeverityWarning,
			Description: "ConditionGroup nodes should declare defaultActions for unmatched input",
			AppliesTo:   isConditionGroup,
			Check:       checkConditionGroupDefaults,
		},
		{
			ID:          RuleActionRequiresKind,
			Severity:    domain.SeverityError,
			Description: "Every item of an action list must be a mapping with a kind",
			AppliesTo: func(n *domain.ConfigNode) bool {
				return n.Kind == domain.KindSequence && actionListKeys[n.Key]
			},
			Check: checkActionRequiresKind,
		},
		{
			ID:          RuleUnknownKind,
			Severity:    domain.SeverityWarning,
			Description: "kind values should name a documented dialog action kind",
			AppliesTo: func(n *domain.ConfigNode) bool {
				return n.ActionKind() != ""
			},
			Check: checkUnknownKind,
		},
	}

	rules = append(rules, profileRules(profile)...)
	return rules
}

// profileRules returns the rules whose meaning flips between the two guide
// conventions.
func profileRules(profile domain.Profile) []domain.Rule {
	if profile == domain.ProfileModern {
		return []domain.Rule{
			{
				ID:          RuleVariableInitPrefix,
				Severity:    domain.SeverityError,
				Description: `Question variables must carry the "init:" prefix`,
				AppliesTo:   hasQuestionVariable,
				Check: func(n *domain.ConfigNode) []domain.Finding {
					v, _ := n.Scalar("variable")
					if strings.HasPrefix(v, "init:") {
						return nil
					}
					return []domain.Finding{domain.Fail(n,
						fmt.Sprintf(`variable %q must carry the "init:" prefix (use "init:%s")`, v, v))}
				},
			},
		}
	}

	return []domain.Rule{
		{
			ID:          RuleVariableInitPrefix,
			Severity:    domain.SeverityError,
			Description: `The "init:" variable prefix is unsupported and errors at import`,
			AppliesTo:   hasQuestionVariable,
			Check: func(n *domain.ConfigNode) []domain.Finding {
				v, _ := n.Scalar("variable")
				if !strings.HasPrefix(v, "init:") {
					return nil
				}
				return []domain.Finding{domain.Fail(n,
					fmt.Sprintf(`variable %q carries the unsupported "init:" prefix (use %q)`, v, strings.TrimPrefix(v, "init:")))}
			},
		},
		{
			ID:          RuleInterruptionPolicy,
			Severity:    domain.SeverityError,
			Description: "interruptionPolicy blocks are unsupported and error at import",
			AppliesTo: func(n *domain.ConfigNode) bool {
				return isQuestion(n) && n.Has("interruptionPolicy")
			},
			Check: func(n *domain.ConfigNode) []domain.Finding {
				return []domain.Finding{domain.Fail(n,
					"Question declares an interruptionPolicy block, which the platform rejects at import")}
			},
		},
	}
}

// RuleIDs returns the ids of every rule in the profile's catalog, in
// catalog order. Used to validate config references.
func RuleIDs(profile domain.Profile) []string {
	rules := Rules(profile)
	ids := make([]string, 0, len(rules))
	for _, r := range rules {
		ids = append(ids, r.ID)
	}
	return ids
}

func isQuestion(n *domain.ConfigNode) bool {
	return n.Kind == domain.KindMapping && n.ActionKind() == "Question"
}

func isConditionGroup(n *domain.ConfigNode) bool {
	return n.Kind == domain.KindMapping && n.ActionKind() == "ConditionGroup"
}

func isConditionsList(n *domain.ConfigNode) bool {
	return n.Kind == domain.KindSequence && n.Key == "conditions"
}

func hasQuestionVariable(n *domain.ConfigNode) bool {
	if !isQuestion(n) {
		return false
	}
	_, ok := n.Scalar("variable")
	return ok
}

func checkDuplicateKeys(n *domain.ConfigNode) []domain.Finding {
	findings := make([]domain.Finding, 0, len(n.DuplicateKeys))
	for _, d := range n.DuplicateKeys {
		findings = append(findings, domain.Finding{
			Path:    n.Path,
			Line:    d.Line,
			Column:  d.Column,
			Message: fmt.Sprintf("key %q appears more than once; only the last value takes effect", d.Key),
		})
	}
	return findings
}

func checkEntityLowercase(n *domain.ConfigNode) []domain.Finding {
	for _, e := range n.Entries {
		if e.Key == "Entity" {
			return []domain.Finding{{
				Path:    n.Path,
				Line:    e.KeyLine,
				Column:  e.KeyColumn,
				Message: `key "Entity" is not recognized; the entity type key is lowercase ("entity")`,
			}}
		}
	}
	return nil
}

func checkQuestionRequiredFields(profile domain.Profile) func(n *domain.ConfigNode) []domain.Finding {
	required := []string{"variable", "entity", "prompt"}
	if profile == domain.ProfileModern {
		required = append(required, "interruptionPolicy")
	}

	return func(n *domain.ConfigNode) []domain.Finding {
		var missing []string
		for _, key := range required {
			if !n.Has(key) {
				missing = append(missing, key)
			}
		}
		if len(missing) == 0 {
			return nil
		}
		return []domain.Finding{domain.Fail(n,
			fmt.Sprintf("Question is missing required key(s): %s", strings.Join(missing, ", ")))}
	}
}

func checkEntityKnownType(n *domain.ConfigNode) []domain.Finding {
	v, _ := n.Scalar("entity")
	switch {
	case v != strings.ToLower(v):
		return []domain.Finding{domain.Fail(n,
			fmt.Sprintf("entity type %q is not lowercase (use %q)", v, strings.ToLower(v)))}
	case !domain.IsKnownEntityType(v):
		return []domain.Finding{domain.Fail(n,
			fmt.Sprintf("unknown entity type %q (documented types: %s)", v, strings.Join(domain.KnownEntityTypes, ", ")))}
	}
	return nil
}

func checkConditionRequiresID(n *domain.ConfigNode) []domain.Finding {
	var findings []domain.Finding
	for _, item := range n.Items {
		if item.Kind != domain.KindMapping || !item.Has("id") {
			findings = append(findings, domain.Fail(item, `condition is missing required key "id"`))
		}
	}
	return findings
}

func checkConditionRequiresExpr(n *domain.ConfigNode) []domain.Finding {
	var findings []domain.Finding
	for _, item := range n.Items {
		if item.Kind == domain.KindMapping && !item.Has("condition") {
			findings = append(findings, domain.Fail(item, `condition is missing required key "condition"`))
		}
	}
	return findings
}

func checkConditionGroupConditions(n *domain.ConfigNode) []domain.Finding {
	conditions := n.Get("conditions")
	if conditions != nil && conditions.Kind == domain.KindSequence && len(conditions.Items) > 0 {
		return nil
	}
	return []domain.Finding{domain.Fail(n, "ConditionGroup has no conditions to branch on")}
}

func checkConditionGroupDefaults(n *domain.ConfigNode) []domain.Finding {
	if n.Has("defaultActions") {
		return nil
	}
	return []domain.Finding{domain.Fail(n,
		"ConditionGroup has no defaultActions; input matching no condition falls through silently")}
}

func checkActionRequiresKind(n *domain.ConfigNode) []domain.Finding {
	var findings []domain.Finding
	for _, item := range n.Items {
		if item.Kind != domain.KindMapping {
			findings = append(findings, domain.Fail(item, "action list items must be mappings"))
			continue
		}
		if item.ActionKind() == "" {
			findings = append(findings, domain.Fail(item, `action is missing required key "kind"`))
		}
	}
	return findings
}

func checkUnknownKind(n *domain.ConfigNode) []domain.Finding {
	kind := n.ActionKind()
	if domain.IsKnownActionKind(kind) {
		return nil
	}
	return []domain.Finding{domain.Fail(n,
		fmt.Sprintf("unknown action kind %q (documented kinds: %s)", kind, strings.Join(domain.KnownActionKinds, ", ")))}
}
