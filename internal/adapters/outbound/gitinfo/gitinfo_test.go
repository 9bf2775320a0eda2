package gitinfo_test

import (
	"testing"

	"github.com/dialoglint/dialoglint/internal/adapters/outbound/gitinfo"
	"github.com/stretchr/testify/assert"
)

func TestIsGitRepo_NonRepo(t *testing.T) {
	assert.False(t, gitinfo.New().IsGitRepo(t.TempDir()))
}

func TestCommitHash_NonRepo(t *testing.T) {
	_, err := gitinfo.New().CommitHash(t.TempDir())
	assert.Error(t, err)
}

func TestIsDirty_NonRepo(t *testing.T) {
	_, err := gitinfo.New().IsDirty(t.TempDir())
	assert.Error(t, err)
}
