package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fmueller/vimeoscribe/internal/download"
	"github.com/fmueller/vimeoscribe/internal/platform"
	"go.uber.org/zap"
)

const (
	binaryName     = "yt-dlp"
	releaseBaseURL = "https://github.com/yt-dlp/yt-dlp/releases/latest/download"
	checksumsFile  = "SHA2-256SUMS"
)

// ErrUnavailable is returned when no usable yt-dlp executable can be found
// or installed.
var ErrUnavailable = errors.New("yt-dlp is unavailable")

type Options struct {
	// OverridePath pins a specific yt-dlp executable and disables discovery.
	OverridePath string
	// ToolDir is where managed copies are installed; empty uses the per-OS
	// default data directory.
	ToolDir      string
	AutoDownload bool
	NoProgress   bool
	// BaseURL overrides the release download endpoint.
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Resolve finds a usable yt-dlp executable: explicit override, then PATH,
// then a previously installed managed copy, then a fresh install when
// auto-download is enabled.
func Resolve(ctx context.Context, opts Options) (string, error) {
	if override := strings.TrimSpace(opts.OverridePath); override != "" {
		if err := ensureExecutable(override); err != nil {
			return "", fmt.Errorf("%w: override path %s: %v", ErrUnavailable, override, err)
		}
		return override, nil
	}

	if path, err := exec.LookPath(binaryName); err == nil {
		return path, nil
	}

	installed, err := InstallPath(opts.ToolDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if ensureExecutable(installed) == nil {
		return installed, nil
	}

	if !opts.AutoDownload {
		return "", fmt.Errorf("%w: not found on PATH or at %s; run `vimeoscribe setup` or use --auto-download=true", ErrUnavailable, installed)
	}

	return Install(ctx, opts)
}

// Install downloads the official release binary for the current platform
// into the tool directory, verifying it against the published checksums.
func Install(ctx context.Context, opts Options) (string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	asset, err := AssetName(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	destination, err := InstallPath(opts.ToolDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	base := strings.TrimSuffix(opts.BaseURL, "/")
	if base == "" {
		base = releaseBaseURL
	}

	logger.Info("downloading yt-dlp",
		zap.String("asset", asset),
		zap.String("destination", destination))

	if err := download.DownloadFile(ctx, download.Options{
		URL:         base + "/" + asset,
		Destination: destination,
		ChecksumURL: base + "/" + checksumsFile,
		Mode:        0o755,
		NoProgress:  opts.NoProgress,
		HTTPClient:  opts.HTTPClient,
		Logger:      logger,
	}); err != nil {
		return "", fmt.Errorf("%w: install: %v", ErrUnavailable, err)
	}

	return destination, nil
}

// InstallPath returns where the managed yt-dlp copy lives for the given tool
// directory override.
func InstallPath(toolDir string) (string, error) {
	dir, err := platform.ResolveToolDir(toolDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create tool directory %s: %w", dir, err)
	}
	return filepath.Join(dir, binaryName), nil
}

// AssetName maps the host platform to the official release asset carrying a
// standalone yt-dlp binary.
func AssetName(goos, goarch string) (string, error) {
	switch goos {
	case "linux":
		if platform.NormalizeArch(goarch) == "arm64" {
			return "yt-dlp_linux_aarch64", nil
		}
		return "yt-dlp_linux", nil
	case "darwin":
		return "yt-dlp_macos", nil
	default:
		return "", fmt.Errorf("no standalone yt-dlp build for OS %s", goos)
	}
}

func ensureExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if info.Mode()&0o111 == 0 {
		return fmt.Errorf("%s is not executable", path)
	}
	return nil
}
