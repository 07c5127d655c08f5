package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/ladder"
)

// setup writes a small dictionary into a fresh working directory and
// clears WORDLADDER_* variables so only flags drive the run.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	for _, k := range []string{config.EnvDict, config.EnvLength, config.EnvWorkers, config.EnvCacheSize, config.EnvLogLevel} {
		t.Setenv(k, "")
	}

	path := filepath.Join(dir, "words.txt")
	body := "cat\ncot\ncog\ndog\ndot\nzzz\nCat\nhorse\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// run executes the root command with args and returns stdout and the error.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand("test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPathCommand(t *testing.T) {
	dict := setup(t)
	out, err := run(t, "path", "cat", "DOG", "--dict", dict, "--length", "3")
	require.NoError(t, err)
	assert.Equal(t, "CAT > COT > DOT > DOG\nShortest distance between CAT and DOG: 3\n", out)
}

func TestPathCommand_NotFound(t *testing.T) {
	dict := setup(t)
	out, err := run(t, "path", "cat", "zzz", "-d", dict, "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, "Path between CAT and ZZZ doesn't exist.\n", out)

	out, err = run(t, "path", "cat", "dog", "-d", dict, "-n", "3", "--max-depth", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "doesn't exist")
}

func TestPathCommand_NotAWord(t *testing.T) {
	dict := setup(t)
	_, err := run(t, "path", "cat", "cow", "-d", dict, "-n", "3")
	require.ErrorIs(t, err, ladder.ErrWordNotInLexicon)
	assert.Contains(t, err.Error(), `"COW" is not a word`)
}

func TestPathCommand_JSON(t *testing.T) {
	dict := setup(t)
	out, err := run(t, "path", "cog", "dot", "-d", dict, "-n", "3", "--json")
	require.NoError(t, err)

	var got pathJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, pathJSON{From: "COG", To: "DOT", Found: true, Distance: 2, Path: []string{"COG", "DOG", "DOT"}}, got)
}

func TestStatsCommand(t *testing.T) {
	dict := setup(t)
	out, err := run(t, "stats", "-d", dict, "-n", "3", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Words: 6\n")
	assert.Contains(t, out, "average degree): 1.667\n")
	assert.Contains(t, out, "(highest degree 3): COT\n")
	assert.Contains(t, out, "(lowest degree 0): ZZZ\n")
	assert.Contains(t, out, "Connected components: 2 (largest 5)\n")
	assert.True(t, strings.HasSuffix(out, "Words with no neighbors (1):\nZZZ\n"), out)
}

func TestStatsCommand_JSONAndEmpty(t *testing.T) {
	dict := setup(t)
	out, err := run(t, "stats", "-d", dict, "-n", "3", "--json")
	require.NoError(t, err)
	var st statsJSON
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, 10, st.TotalDegree)
	assert.Equal(t, []string{"COT"}, st.MaxDegreeWords)

	out, err = run(t, "stats", "-d", dict, "-n", "9")
	require.NoError(t, err)
	assert.Equal(t, "No words of length 9.\n", out)
}

func TestListCommand(t *testing.T) {
	dict := setup(t)
	out, err := run(t, "list", "-d", dict, "-n", "3", "--neighbors")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "0     CAT: 1 [COT]", lines[0])
	assert.Equal(t, "2     COT: 3 [DOT CAT COG]", lines[2])
	assert.Equal(t, "5     ZZZ: 0", lines[5])
}

func TestConfigErrors(t *testing.T) {
	dict := setup(t)
	_, err := run(t, "stats", "-d", dict, "-n", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "length must be > 0")

	_, err = run(t, "stats", "-d", filepath.Join(filepath.Dir(dict), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open")

	_, err = run(t, "stats", "-d", dict, "--log-level", "chatty")
	require.Error(t, err)
}

// TestEnvironmentConfig verifies WORDLADDER_* variables are used when flags are absent.
func TestEnvironmentConfig(t *testing.T) {
	dict := setup(t)
	t.Setenv(config.EnvDict, dict)
	t.Setenv(config.EnvLength, "3")
	out, err := run(t, "path", "dot", "cat")
	require.NoError(t, err)
	assert.Contains(t, out, "DOT > COT > CAT")
}
