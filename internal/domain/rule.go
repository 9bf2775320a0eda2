package domain

// Finding severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Rule is one authoring constraint. AppliesTo selects the nodes the rule
// inspects; Check reports every violation on a selected node. Rules are
// independent of each other and of traversal.
type Rule struct {
	ID          string `json:"id"`
	Severity    string `json:"severity"`
	Description string `json:"description"`

	AppliesTo func(n *ConfigNode) bool      `json:"-"`
	Check     func(n *ConfigNode) []Finding `json:"-"`
}

// Finding is one rule violation at one location. RuleID and Severity are
// stamped by the engine; a check only needs location and message, unless it
// wants a severity different from the rule's default.
type Finding struct {
	RuleID   string `json:"rule_id"`
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Message  string `json:"message"`
	Internal bool   `json:"internal,omitempty"`
}

// Fail builds a finding located at the node, carrying the rule's default
// severity.
func Fail(n *ConfigNode, message string) Finding {
	return Finding{
		Path:    n.Path,
		Line:    n.Line,
		Column:  n.Column,
		Message: message,
	}
}
