// Package loader parses dialog YAML into the domain's ordered node tree.
package loader

import (
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dialoglint/dialoglint/internal/domain"
)

// yamlLineError matches the "yaml: line N: msg" shape of yaml.v3 syntax
// errors so the line can be carried into the ParseError.
var yamlLineError = regexp.MustCompile(`yaml: line (\d+): (.*)$`)

// YAMLLoader implements domain.DocumentLoader on gopkg.in/yaml.v3.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load parses data into a ConfigNode tree, preserving the document order of
// mapping entries and sequence items. Malformed input yields a
// *domain.ParseError; nothing else fails.
func (l *YAMLLoader) Load(source string, data []byte) (*domain.ConfigNode, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, parseError(source, err)
	}

	if len(doc.Content) == 0 {
		// Empty document: an empty mapping with nothing to report.
		return &domain.ConfigNode{Kind: domain.KindMapping, Path: "$", Line: 1, Column: 1}, nil
	}

	root := resolveAlias(doc.Content[0])
	path := "$"
	if root.Kind == yaml.MappingNode {
		path = domain.RootPath(mappingID(root))
	}
	return convert(root, path, ""), nil
}

func parseError(source string, err error) *domain.ParseError {
	msg := err.Error()
	if m := yamlLineError.FindStringSubmatch(msg); m != nil {
		line, convErr := strconv.Atoi(m[1])
		if convErr == nil {
			return &domain.ParseError{Source: source, Line: line, Msg: m[2]}
		}
	}
	return &domain.ParseError{Source: source, Line: 1, Msg: strings.TrimPrefix(msg, "yaml: ")}
}

func convert(n *yaml.Node, path, key string) *domain.ConfigNode {
	n = resolveAlias(n)

	node := &domain.ConfigNode{
		Path:   path,
		Key:    key,
		Line:   n.Line,
		Column: n.Column,
	}

	switch n.Kind {
	case yaml.MappingNode:
		node.Kind = domain.KindMapping
		convertMapping(n, node)
	case yaml.SequenceNode:
		node.Kind = domain.KindSequence
		for i, item := range n.Content {
			itemPath := domain.ItemPath(path, i, mappingID(resolveAlias(item)))
			node.Items = append(node.Items, convert(item, itemPath, ""))
		}
	default:
		node.Kind = domain.KindScalar
		node.Value = n.Value
	}

	return node
}

// convertMapping converts the alternating key/value content of a YAML
// mapping. Duplicate keys keep the last value but are recorded on the node
// so the catalog can surface them.
func convertMapping(n *yaml.Node, node *domain.ConfigNode) {
	index := make(map[string]int)

	for i := 0; i+1 < len(n.Content); i += 2 {
		k := resolveAlias(n.Content[i])
		v := n.Content[i+1]

		entry := domain.MapEntry{
			Key:       k.Value,
			KeyLine:   k.Line,
			KeyColumn: k.Column,
			Value:     convert(v, domain.ChildPath(node.Path, k.Value), k.Value),
		}

		if at, seen := index[k.Value]; seen {
			node.DuplicateKeys = append(node.DuplicateKeys, domain.DuplicateKey{
				Key:    k.Value,
				Line:   k.Line,
				Column: k.Column,
			})
			node.Entries[at].Value = entry.Value // last wins
			continue
		}

		index[k.Value] = len(node.Entries)
		node.Entries = append(node.Entries, entry)
	}
}

// mappingID returns the "id" scalar of a mapping yaml node, or "". Paths
// prefer ids over indices, so this peeks ahead of conversion.
func mappingID(n *yaml.Node) string {
	if n == nil || n.Kind != yaml.MappingNode {
		return ""
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := resolveAlias(n.Content[i])
		v := resolveAlias(n.Content[i+1])
		if k.Value == "id" && v.Kind == yaml.ScalarNode {
			return v.Value
		}
	}
	return ""
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
