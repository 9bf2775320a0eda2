package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dialoglint/dialoglint/internal/adapters/inbound/cli"
	"github.com/dialoglint/dialoglint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "../../../../testdata/dialogs"

func fixture(name string) string {
	return filepath.Join(fixtureDir, name)
}

func runLint(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestLintCommand_CleanFile(t *testing.T) {
	out, err := runLint(t, "lint", fixture("valid_classic.yaml"), "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "No findings.")
}

func TestLintCommand_FailingFile(t *testing.T) {
	out, err := runLint(t, "lint", fixture("missing_entity.yaml"), "--path", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, out, "question-required-fields")
}

func TestLintCommand_JSON(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"lint", fixture("missing_entity.yaml"), "--json", "--path", t.TempDir()})
	err := cmd.Execute()
	require.Error(t, err, "errors still set the exit status in JSON mode")

	var result domain.ValidationResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result), "output should be valid JSON")
	assert.Equal(t, domain.StatusFail, result.Status)
	assert.Equal(t, 1, result.ErrorCount)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "[q1]", result.Findings[0].Path)
}

func TestLintCommand_JSONMultipleFiles(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		"lint",
		fixture("valid_classic.yaml"),
		fixture("missing_entity.yaml"),
		"--json", "--path", t.TempDir(),
	})
	err := cmd.Execute()
	require.Error(t, err)

	var results []domain.ValidationResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results), "output should be a JSON array")
	require.Len(t, results, 2)
	assert.Equal(t, domain.StatusPass, results[0].Status)
	assert.Equal(t, domain.StatusFail, results[1].Status)
}

func TestLintCommand_StrictFailsOnWarnings(t *testing.T) {
	dir := t.TempDir()
	warnOnly := filepath.Join(dir, "warn.yaml")
	require.NoError(t, os.WriteFile(warnOnly, []byte(`kind: ConditionGroup
id: cg1
conditions:
  - id: billing
    condition: "=true"
`), 0644))

	_, err := runLint(t, "lint", warnOnly, "--path", dir)
	assert.NoError(t, err, "warnings alone do not fail")

	_, err = runLint(t, "lint", warnOnly, "--strict", "--path", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict")
}

func TestLintCommand_ProfileFlag(t *testing.T) {
	_, err := runLint(t, "lint", fixture("valid_modern.yaml"), "--profile", "modern", "--path", t.TempDir())
	assert.NoError(t, err)

	_, err = runLint(t, "lint", fixture("valid_modern.yaml"), "--profile", "classic", "--path", t.TempDir())
	assert.Error(t, err, "modern conventions fail under the classic profile")
}

func TestLintCommand_ParseError(t *testing.T) {
	_, err := runLint(t, "lint", fixture("bad_syntax.yaml"), "--path", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line")
}

func TestLintCommand_NoArgs(t *testing.T) {
	_, err := runLint(t, "lint", "--path", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one dialog file")
}

func TestLintCommand_History(t *testing.T) {
	dir := t.TempDir()

	out, err := runLint(t, "lint", "--history", "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No lint history found.")

	_, err = runLint(t, "lint", fixture("valid_classic.yaml"), "--path", dir)
	require.NoError(t, err)

	out, err = runLint(t, "lint", "--history", "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Lint History")
	assert.Contains(t, out, "valid_classic.yaml")
}

func TestLintCommand_HistoryRejectsFileArgs(t *testing.T) {
	_, err := runLint(t, "lint", fixture("valid_classic.yaml"), "--history", "--path", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no file arguments")
}

func TestLintCommand_UnknownProfile(t *testing.T) {
	_, err := runLint(t, "lint", fixture("valid_classic.yaml"), "--profile", "modren", "--path", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown profile")
}
