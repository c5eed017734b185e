package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hanjaolympics/internal/hanja"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPoolCommand(t *testing.T) {
	out, err := execute(t, "pool", "--grade", "8급", "--category", "숫자")
	require.NoError(t, err)
	assert.Contains(t, out, "一")
	assert.Contains(t, out, "한 일")
	assert.Contains(t, out, "13자")
	assert.NotContains(t, out, "水")
}

func TestPoolCommand_BadGrade(t *testing.T) {
	_, err := execute(t, "pool", "--grade", "9급", "--category", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown grade")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hanja")
}

func TestGradeCommands(t *testing.T) {
	t.Setenv("HANJA_USER", "tester")
	t.Setenv("HANJA_LOG_FILE", filepath.Join(t.TempDir(), "test.log"))
	db := filepath.Join(t.TempDir(), "hanja.db")
	t.Setenv("HANJA_DB", db)

	out, err := execute(t, "grade", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "tester: 8급")

	out, err = execute(t, "grade", "set", "6급", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "6급")

	out, err = execute(t, "grade", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "tester: 6급")
}

func TestResetNeedsConfirmation(t *testing.T) {
	db := filepath.Join(t.TempDir(), "hanja.db")
	t.Setenv("HANJA_DB", db)
	t.Setenv("HANJA_USER", "tester")

	out, err := execute(t, "reset", "--db", db, "--yes=false")
	require.NoError(t, err)
	assert.Contains(t, out, "--yes")
}

func TestGradeList(t *testing.T) {
	list := gradeList()
	for _, g := range hanja.GradeHierarchy() {
		assert.Contains(t, list, g.String())
	}
}
