package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fixedstr"
	"github.com/dmitrymomot/fixedstr/internal/query"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestQueryCmd(t *testing.T) {
	t.Run("text output", func(t *testing.T) {
		out, _, err := execute(t, "query", "hello", "find", "ll")
		require.NoError(t, err)
		assert.Equal(t, "find \"hello\" \"ll\": 2\n", out)
	})

	t.Run("not found", func(t *testing.T) {
		out, _, err := execute(t, "query", "hello", "find", "z")
		require.NoError(t, err)
		assert.Equal(t, "find \"hello\" \"z\": npos\n", out)
	})

	t.Run("backward default position", func(t *testing.T) {
		out, _, err := execute(t, "query", "hello", "rfind", "l", "--json")
		require.NoError(t, err)

		var res query.Result
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, 3, res.Index)
		assert.Equal(t, fixedstr.NPos, res.Pos)
	})

	t.Run("explicit position", func(t *testing.T) {
		out, _, err := execute(t, "query", "hello", "rfind", "l", "--pos", "2", "--json")
		require.NoError(t, err)

		var res query.Result
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, 2, res.Index)
	})

	t.Run("boolean", func(t *testing.T) {
		out, _, err := execute(t, "query", "hello", "starts_with", "he")
		require.NoError(t, err)
		assert.Equal(t, "starts-with \"hello\" \"he\": true\n", out)
	})

	t.Run("unknown operation", func(t *testing.T) {
		_, _, err := execute(t, "query", "hello", "grep", "l")
		assert.ErrorIs(t, err, query.ErrUnknownOp)
	})

	t.Run("nul in text", func(t *testing.T) {
		_, _, err := execute(t, "query", "a\x00b", "find", "b")
		assert.ErrorIs(t, err, query.ErrEmbeddedNUL)
	})

	t.Run("text too long", func(t *testing.T) {
		_, _, err := execute(t, "query", strings.Repeat("x", 300), "find", "x")
		assert.ErrorIs(t, err, fixedstr.ErrCapacityExceeded)
	})
}

func TestGenCmd(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "literals.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("package: demo\nliterals:\n  - name: Hello\n    text: hello\n"), 0o600))

	t.Run("stdout", func(t *testing.T) {
		out, _, err := execute(t, "gen", "-m", manifest)
		require.NoError(t, err)
		assert.Contains(t, out, "package demo")
		assert.Contains(t, out, "Hello = fixedstr.Lit([6]byte{'h', 'e', 'l', 'l', 'o', 0})")
	})

	t.Run("file", func(t *testing.T) {
		target := filepath.Join(dir, "literals_gen.go")
		out, _, err := execute(t, "gen", "-m", manifest, "-o", target)
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Contains(t, string(data), "// Code generated by fixedstr gen; DO NOT EDIT.")
	})

	t.Run("slot limit", func(t *testing.T) {
		_, _, err := execute(t, "gen", "-m", manifest, "--max-slots", "4")
		assert.Error(t, err)
	})

	t.Run("missing manifest flag", func(t *testing.T) {
		_, _, err := execute(t, "gen")
		assert.Error(t, err)
	})
}

func TestStorageCmd(t *testing.T) {
	out, _, err := execute(t, "storage", "--max", "4", "--package", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "package demo")
	assert.Contains(t, out, "~[1]T | ~[2]T | ~[3]T | ~[4]T")

	_, _, err = execute(t, "storage", "--max", "70000")
	assert.Error(t, err)
}

func TestRootCmd(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		out, _, err := execute(t, "--version")
		require.NoError(t, err)
		assert.Equal(t, "fixedstr version dev\n", out)
	})

	t.Run("verbose logs start and failures", func(t *testing.T) {
		_, logs, err := execute(t, "--verbose", "gen", "-m", filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, logs, "version=dev")
		assert.Contains(t, logs, "msg=\"command failed\"")
		assert.Contains(t, logs, "action=gen")
		assert.Contains(t, logs, "error=")
	})

	t.Run("quiet by default", func(t *testing.T) {
		_, logs, err := execute(t, "gen", "-m", filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Empty(t, logs)
	})
}
