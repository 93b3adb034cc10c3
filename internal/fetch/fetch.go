package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Closed set of fetch failure variants; callers distinguish causes with
// errors.Is instead of parsing message text.
var (
	ErrDownloaderUnavailable = errors.New("audio downloader is unavailable")
	ErrNoExtraction          = errors.New("no media information extracted")
	ErrMissingOutput         = errors.New("downloaded audio file not found")
)

// Metadata is the explicit contract for what we keep from the extractor's
// info dump. Fields the extractor did not supply stay at their zero values.
type Metadata struct {
	Title    string `json:"title"`
	Uploader string `json:"uploader"`
	Duration int    `json:"duration"`
}

type Result struct {
	Audio []byte
	Ext   string
	Info  Metadata
}

const audioFormat = "bestaudio[ext=m4a]/bestaudio/best"

// Fetcher downloads the best audio-only stream for a URL by shelling out to
// yt-dlp. The executable is resolved lazily per call so a missing downloader
// surfaces as a fetch error rather than a startup failure.
type Fetcher struct {
	resolveFn func(ctx context.Context) (string, error)
	runFn     func(ctx context.Context, bin string, args []string) (stdout []byte, stderr string, err error)
	logger    *zap.Logger
}

func New(resolve func(ctx context.Context) (string, error), logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		resolveFn: resolve,
		runFn:     runCommand,
		logger:    logger,
	}
}

// Fetch downloads the audio stream for url into a per-call temp dir, reads
// the bytes into memory, and removes the temp dir regardless of outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) (Result, error) {
	bin, err := f.resolveFn(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrDownloaderUnavailable, err)
	}

	tmpDir, err := os.MkdirTemp("", "vimeoscribe-dl-")
	if err != nil {
		return Result{}, fmt.Errorf("create download directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			f.logger.Warn("failed to remove download directory", zap.String("dir", tmpDir), zap.Error(err))
		}
	}()

	args := []string{
		"--no-playlist",
		"--no-warnings",
		"--quiet",
		"--restrict-filenames",
		"--no-cache-dir",
		"-f", audioFormat,
		"-o", filepath.Join(tmpDir, "%(id)s.%(ext)s"),
		"--no-simulate",
		"--dump-single-json",
		url,
	}

	f.logger.Info("downloading audio", zap.String("url", url))
	started := time.Now()

	stdout, stderr, err := f.runFn(ctx, bin, args)
	if err != nil {
		if stderr != "" {
			return Result{}, fmt.Errorf("yt-dlp failed: %w (%s)", err, stderr)
		}
		return Result{}, fmt.Errorf("yt-dlp failed: %w", err)
	}

	info, err := parseInfoDump(stdout)
	if err != nil {
		return Result{}, err
	}

	audioPath, err := locateOutput(tmpDir, info)
	if err != nil {
		return Result{}, err
	}

	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return Result{}, fmt.Errorf("read downloaded audio: %w", err)
	}

	ext := strings.TrimPrefix(filepath.Ext(audioPath), ".")
	f.logger.Info("audio downloaded",
		zap.String("ext", ext),
		zap.Int("bytes", len(audio)),
		zap.Duration("elapsed", time.Since(started)))

	return Result{
		Audio: audio,
		Ext:   ext,
		Info: Metadata{
			Title:    info.Title,
			Uploader: info.Uploader,
			Duration: int(info.Duration),
		},
	}, nil
}

// infoDump is the subset of yt-dlp's single-JSON output we consume.
type infoDump struct {
	ID                 string  `json:"id"`
	Ext                string  `json:"ext"`
	Title              string  `json:"title"`
	Uploader           string  `json:"uploader"`
	Duration           float64 `json:"duration"`
	RequestedDownloads []struct {
		Filepath string `json:"filepath"`
		Filename string `json:"_filename"`
	} `json:"requested_downloads"`
}

func parseInfoDump(stdout []byte) (infoDump, error) {
	trimmed := bytes.TrimSpace(stdout)
	if len(trimmed) == 0 {
		return infoDump{}, ErrNoExtraction
	}

	var info infoDump
	if err := json.Unmarshal(trimmed, &info); err != nil {
		return infoDump{}, fmt.Errorf("%w: %v", ErrNoExtraction, err)
	}
	if info.ID == "" {
		return infoDump{}, ErrNoExtraction
	}
	return info, nil
}

func locateOutput(tmpDir string, info infoDump) (string, error) {
	candidates := []string{filepath.Join(tmpDir, info.ID+"."+info.Ext)}
	for _, req := range info.RequestedDownloads {
		if req.Filepath != "" {
			candidates = append(candidates, req.Filepath)
		}
		if req.Filename != "" {
			candidates = append(candidates, req.Filename)
		}
	}

	for _, candidate := range candidates {
		if stat, err := os.Stat(candidate); err == nil && !stat.IsDir() {
			return candidate, nil
		}
	}

	return "", ErrMissingOutput
}

func runCommand(ctx context.Context, bin string, args []string) ([]byte, string, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), strings.TrimSpace(stderr.String()), err
}
