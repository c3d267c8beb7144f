package main

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRootCmdWritesDescriptor(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "__version__.py")
	out := filepath.Join(dir, "version.txt")
	require.NoError(t, os.WriteFile(in, []byte("__version__ = '4.5.7'\n"), 0o644))

	require.NoError(t, runCmd(t, "-i", in, "-o", out, "-q"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "filevers=(4,5,7,0),")
	assert.Contains(t, string(data), "StringStruct(u'FileVersion', u'4.5.7')")
}

func TestRootCmdMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "version.txt")

	err := runCmd(t, "-i", filepath.Join(dir, "absent.py"), "-o", out, "-q")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	// A failed run must not leave an output file behind.
	_, statErr := os.Stat(out)
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
}

func TestRootCmdCustomIdentifier(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "version.txt.in")
	out := filepath.Join(dir, "version.txt")
	require.NoError(t, os.WriteFile(in, []byte("AGENT_VERSION = \"2.0\"\n"), 0o644))

	require.NoError(t, runCmd(t, "-i", in, "-o", out, "--identifier", "AGENT_VERSION", "-q"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "filevers=(2,0,0,0),")
}

func TestRootCmdSysoOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "__version__.py")
	out := filepath.Join(dir, "version.txt")
	syso := filepath.Join(dir, "resource_windows_amd64.syso")
	require.NoError(t, os.WriteFile(in, []byte("__version__ = '1.2.3'\n"), 0o644))

	require.NoError(t, runCmd(t, "-i", in, "-o", out, "--syso", syso, "-q"))

	info, err := os.Stat(syso)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRootCmdConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "__version__.py")
	out := filepath.Join(dir, "version.txt")
	cfg := filepath.Join(dir, "versionstamp.yaml")
	require.NoError(t, os.WriteFile(in, []byte("__version__ = '1.2.3'\n"), 0o644))
	require.NoError(t, os.WriteFile(cfg, []byte(`
input: `+in+`
output: `+out+`
metadata:
  company_name: Example Corp
`), 0o644))

	require.NoError(t, runCmd(t, "-c", cfg, "-q"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "StringStruct(u'CompanyName', u'Example Corp')")
}
