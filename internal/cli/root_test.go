package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootRunsServe(t *testing.T) {
	t.Parallel()

	serveCalls := 0
	app := &appState{addr: ":8080", autoDownload: true}
	app.serveFn = func(context.Context) error {
		serveCalls++
		return nil
	}

	cmd := newRootCmd(app)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	require.Equal(t, 1, serveCalls)
}

func TestRootAppliesFlagsBeforeServe(t *testing.T) {
	t.Parallel()

	app := &appState{addr: ":8080", autoDownload: true}
	app.serveFn = func(context.Context) error { return nil }

	cmd := newRootCmd(app)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{
		"--addr", ":9999",
		"--model", "gpt-4o-transcribe",
		"--yt-dlp", "/opt/bin/yt-dlp",
		"--auto-download=false",
		"--no-progress",
	})

	require.NoError(t, cmd.Execute())
	require.Equal(t, ":9999", app.addr)
	require.Equal(t, "gpt-4o-transcribe", app.model)

	opts := app.downloaderOptions()
	require.Equal(t, "/opt/bin/yt-dlp", opts.OverridePath)
	require.False(t, opts.AutoDownload)
	require.True(t, opts.NoProgress)
}

func TestRootPropagatesServeError(t *testing.T) {
	t.Parallel()

	app := &appState{}
	app.serveFn = func(context.Context) error {
		return errors.New("listen tcp :8080: address already in use")
	}

	cmd := newRootCmd(app)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "address already in use")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out := new(bytes.Buffer)
	cmd := NewRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "vimeoscribe v")
}

func TestUnknownCommandFails(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"definitely-not-a-command"})

	require.Error(t, cmd.Execute())
}
