package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_MissingFileIsIgnored(t *testing.T) {
	assert.NoError(t, loadEnv(filepath.Join(t.TempDir(), "nope.env")))
	assert.NoError(t, loadEnv(""))
}

func TestLoadEnv_SetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PASS_BOOKING_TEST_VAR=hello\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("PASS_BOOKING_TEST_VAR") })

	require.NoError(t, loadEnv(path))
	assert.Equal(t, "hello", os.Getenv("PASS_BOOKING_TEST_VAR"))
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "ping")
}
