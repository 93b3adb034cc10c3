package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupReportsExistingDownloader(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, "yt-dlp")
	require.NoError(t, os.WriteFile(fake, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	t.Setenv("PATH", dir)

	out := new(bytes.Buffer)
	app := &appState{toolDir: t.TempDir()}
	cmd := newSetupCmd(app)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "yt-dlp ready at "+fake)
}

func TestSetupPrefersOverridePath(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, "yt-dlp-local")
	require.NoError(t, os.WriteFile(fake, []byte("#!/bin/sh\nexit 0\n"), 0o755))

	out := new(bytes.Buffer)
	app := &appState{toolDir: t.TempDir()}
	cmd := newSetupCmd(app)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"--yt-dlp", fake})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), fake)
}
