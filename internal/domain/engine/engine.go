// Package engine walks a parsed dialog tree and evaluates the rule catalog
// against every node.
package engine

import (
	"fmt"

	"github.com/dialoglint/dialoglint/internal/domain"
)

// Validate visits every node of the tree exactly once in pre-order,
// depth-first, children in document order, and evaluates each rule whose
// AppliesTo predicate matches. Findings come back in visitation order, so
// they follow the order of the source document.
//
// A rule whose check panics is converted into a single internal finding
// naming the rule; it never aborts the run.
func Validate(root *domain.ConfigNode, rules []domain.Rule) []domain.Finding {
	var findings []domain.Finding
	walk(root, func(n *domain.ConfigNode) {
		for _, r := range rules {
			findings = append(findings, evaluate(r, n)...)
		}
	})
	return findings
}

func walk(n *domain.ConfigNode, visit func(*domain.ConfigNode)) {
	if n == nil {
		return
	}
	visit(n)
	switch n.Kind {
	case domain.KindMapping:
		for _, e := range n.Entries {
			walk(e.Value, visit)
		}
	case domain.KindSequence:
		for _, item := range n.Items {
			walk(item, visit)
		}
	}
}

// evaluate runs one rule against one node, stamping the rule id and default
// severity on every finding the check emits.
func evaluate(r domain.Rule, n *domain.ConfigNode) (findings []domain.Finding) {
	defer func() {
		if rec := recover(); rec != nil {
			findings = []domain.Finding{{
				RuleID:   r.ID,
				Severity: domain.SeverityError,
				Path:     n.Path,
				Line:     n.Line,
				Column:   n.Column,
				Message:  fmt.Sprintf("internal error in rule %q: %v", r.ID, rec),
				Internal: true,
			}}
		}
	}()

	if r.AppliesTo == nil || r.Check == nil || !r.AppliesTo(n) {
		return nil
	}

	for _, f := range r.Check(n) {
		f.RuleID = r.ID
		if f.Severity == "" {
			f.Severity = r.Severity
		}
		findings = append(findings, f)
	}
	return findings
}
