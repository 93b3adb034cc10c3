package main

import (
	"errors"
	"testing"

	"github.com/fmueller/vimeoscribe/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestShouldPrintUsageHint(t *testing.T) {
	t.Parallel()

	require.True(t, shouldPrintUsageHint(errors.New("unknown command \"bad\" for \"vimeoscribe\"")))
	require.True(t, shouldPrintUsageHint(errors.New("unknown flag: --oops")))
	require.False(t, shouldPrintUsageHint(errors.New("set up yt-dlp: context deadline exceeded")))
	require.False(t, shouldPrintUsageHint(nil))
}

func TestHelpHintTarget(t *testing.T) {
	t.Parallel()

	root := cli.NewRootCmd()
	require.Equal(t, "vimeoscribe", helpHintTarget(root, []string{"--badflag"}))
	require.Equal(t, "vimeoscribe", helpHintTarget(root, []string{"badcmd"}))
	require.Equal(t, "vimeoscribe setup", helpHintTarget(root, []string{"setup"}))
	require.Equal(t, "vimeoscribe setup", helpHintTarget(root, []string{"setup", "--no-progress"}))
}
