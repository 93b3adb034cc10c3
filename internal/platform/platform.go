package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

func NormalizeArch(arch string) string {
	switch arch {
	case "x86_64":
		return "amd64"
	case "aarch64":
		return "arm64"
	default:
		return arch
	}
}

// ResolveToolDir returns the directory where managed external tools (the
// yt-dlp binary) are installed. An explicit override wins over the per-OS
// default.
func ResolveToolDir(override string) (string, error) {
	if override != "" {
		return filepath.Clean(override), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home: %w", err)
	}

	return DefaultToolDirFor(runtime.GOOS, homeDir, os.Getenv("XDG_DATA_HOME"))
}

func DefaultToolDirFor(goos, homeDir, xdgDataHome string) (string, error) {
	if homeDir == "" {
		return "", errors.New("home directory is empty")
	}

	switch goos {
	case "linux":
		if xdgDataHome != "" {
			return filepath.Join(xdgDataHome, "vimeoscribe", "tools"), nil
		}
		return filepath.Join(homeDir, ".local", "share", "vimeoscribe", "tools"), nil
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "vimeoscribe", "tools"), nil
	default:
		return "", fmt.Errorf("unsupported OS: %s", goos)
	}
}
