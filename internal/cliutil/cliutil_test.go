package cliutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.txt", "b.txt", "c.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("seeds: 1\n"), 0o644))
	}
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.txt"), "-", "plain.yaml"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt"), "-", "plain.yaml"}, got)
}

func TestExpandPositionalsErrors(t *testing.T) {
	_, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.none")})
	assert.ErrorContains(t, err, "no input matched")

	_, err = ExpandPositionals([]string{"-", "-"})
	assert.ErrorContains(t, err, "more than once")
}
