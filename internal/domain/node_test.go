package domain_test

import (
	"testing"

	"github.com/dialoglint/dialoglint/internal/domain"
	"github.com/stretchr/testify/assert"
)

func scalar(v string) *domain.ConfigNode {
	return &domain.ConfigNode{Kind: domain.KindScalar, Value: v}
}

func TestConfigNode_Get(t *testing.T) {
	n := &domain.ConfigNode{
		Kind: domain.KindMapping,
		Entries: []domain.MapEntry{
			{Key: "kind", Value: scalar("Question")},
			{Key: "id", Value: scalar("q1")},
		},
	}

	assert.Equal(t, "Question", n.Get("kind").Value)
	assert.Nil(t, n.Get("missing"))
	assert.True(t, n.Has("id"))
	assert.False(t, n.Has("prompt"))
	assert.Equal(t, "q1", n.NodeID())
	assert.Equal(t, "Question", n.ActionKind())
}

func TestConfigNode_Get_NonMapping(t *testing.T) {
	assert.Nil(t, scalar("x").Get("kind"))

	var nilNode *domain.ConfigNode
	assert.Nil(t, nilNode.Get("kind"))
}

func TestConfigNode_Scalar_NonScalarValue(t *testing.T) {
	n := &domain.ConfigNode{
		Kind: domain.KindMapping,
		Entries: []domain.MapEntry{
			{Key: "actions", Value: &domain.ConfigNode{Kind: domain.KindSequence}},
		},
	}

	_, ok := n.Scalar("actions")
	assert.False(t, ok)
}

func TestPathHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"root with id", domain.RootPath("q1"), "[q1]"},
		{"root without id", domain.RootPath(""), "$"},
		{"child of root", domain.ChildPath("$", "actions"), "actions"},
		{"child of id root", domain.ChildPath("[cg1]", "conditions"), "[cg1].conditions"},
		{"nested child", domain.ChildPath("actions[0]", "prompt"), "actions[0].prompt"},
		{"item with id", domain.ItemPath("actions", 2, "ask"), "actions[ask]"},
		{"item without id", domain.ItemPath("conditions", 0, ""), "conditions[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestParseError_Error(t *testing.T) {
	err := &domain.ParseError{Source: "bot.yaml", Line: 7, Msg: "could not find expected ':'"}
	assert.Equal(t, "bot.yaml: line 7: could not find expected ':'", err.Error())

	withCol := &domain.ParseError{Line: 2, Column: 5, Msg: "bad token"}
	assert.Equal(t, "line 2, column 5: bad token", withCol.Error())
}
