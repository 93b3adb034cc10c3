package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeArch(t *testing.T) {
	t.Parallel()

	require.Equal(t, "amd64", NormalizeArch("x86_64"))
	require.Equal(t, "arm64", NormalizeArch("aarch64"))
	require.Equal(t, "amd64", NormalizeArch("amd64"))
	require.Equal(t, "riscv64", NormalizeArch("riscv64"))
}

func TestDefaultToolDirForLinuxWithXDG(t *testing.T) {
	t.Parallel()

	dir, err := DefaultToolDirFor("linux", "/home/dev", "/tmp/xdg-data")
	require.NoError(t, err)
	require.Equal(t, "/tmp/xdg-data/vimeoscribe/tools", dir)
}

func TestDefaultToolDirForLinuxWithoutXDG(t *testing.T) {
	t.Parallel()

	dir, err := DefaultToolDirFor("linux", "/home/dev", "")
	require.NoError(t, err)
	require.Equal(t, "/home/dev/.local/share/vimeoscribe/tools", dir)
}

func TestDefaultToolDirForMacOS(t *testing.T) {
	t.Parallel()

	dir, err := DefaultToolDirFor("darwin", "/Users/dev", "")
	require.NoError(t, err)
	require.Equal(t, "/Users/dev/Library/Application Support/vimeoscribe/tools", dir)
}

func TestDefaultToolDirForUnsupportedOS(t *testing.T) {
	t.Parallel()

	_, err := DefaultToolDirFor("plan9", "/home/dev", "")
	require.Error(t, err)
}

func TestResolveToolDirOverride(t *testing.T) {
	t.Parallel()

	dir, err := ResolveToolDir("/opt/vimeoscribe/tools/")
	require.NoError(t, err)
	require.Equal(t, "/opt/vimeoscribe/tools", dir)
}
