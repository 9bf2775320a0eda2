package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"

	"github.com/dialoglint/dialoglint/internal/domain"
)

// checkVariableWordShape warns when a Question variable's dotted segments
// are not PascalCase names, e.g. "Topic.user_topic" or "topic.X".
// The scope prefix ("init:") is stripped before checking; the prefix itself
// is the variable-init-prefix rule's business.
func checkVariableWordShape(n *domain.ConfigNode) []domain.Finding {
	v, _ := n.Scalar("variable")
	name := strings.TrimPrefix(v, "init:")
	if name == "" {
		return nil
	}

	var findings []domain.Finding
	for _, seg := range strings.Split(name, ".") {
		if isPascalCase(seg) {
			continue
		}
		findings = append(findings, domain.Fail(n,
			fmt.Sprintf("variable segment %q in %q is not PascalCase", seg, v)))
	}
	return findings
}

// isPascalCase reports whether a name starts with an uppercase letter and
// splits into purely alphanumeric CamelCase words.
func isPascalCase(name string) bool {
	if name == "" {
		return false
	}
	runes := []rune(name)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, word := range camelcase.Split(name) {
		for _, r := range word {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return false
			}
		}
	}
	return true
}
