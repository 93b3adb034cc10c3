package cli

import (
	"context"
	"fmt"

	"github.com/fmueller/vimeoscribe/internal/fetch"
	"github.com/fmueller/vimeoscribe/internal/logging"
	"github.com/fmueller/vimeoscribe/internal/transcribe"
	"github.com/fmueller/vimeoscribe/internal/version"
	"github.com/fmueller/vimeoscribe/internal/web"
	"github.com/fmueller/vimeoscribe/internal/ytdlp"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type appState struct {
	verbose      bool
	jsonLogs     bool
	noProgress   bool
	addr         string
	model        string
	ytdlpPath    string
	toolDir      string
	autoDownload bool

	logger  *zap.Logger
	serveFn func(ctx context.Context) error
}

func NewRootCmd() *cobra.Command {
	app := &appState{
		addr:         ":8080",
		model:        transcribe.DefaultModel,
		autoDownload: true,
	}
	app.serveFn = app.serve
	return newRootCmd(app)
}

func newRootCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vimeoscribe",
		Short:         "Serve a web page that transcribes public Vimeo videos",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Resolve(),
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// A local .env is a convenience for OPENAI_API_KEY; its absence
			// is not an error.
			_ = godotenv.Load()

			logger, err := logging.New(logging.Options{Verbose: app.verbose, JSON: app.jsonLogs})
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			app.logger = logger
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.serveFn(cmd.Context())
		},
	}

	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	bindLoggingFlags(cmd, app)
	bindProgressFlag(cmd, app)
	bindDownloaderFlags(cmd, app)
	cmd.Flags().StringVar(&app.addr, "addr", app.addr, "HTTP listen address")
	cmd.Flags().StringVar(&app.model, "model", app.model, "Transcription model identifier")

	cmd.AddCommand(newSetupCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func bindLoggingFlags(cmd *cobra.Command, app *appState) {
	cmd.Flags().BoolVar(&app.verbose, "verbose", app.verbose, "Enable verbose logs")
	cmd.Flags().BoolVar(&app.jsonLogs, "json", app.jsonLogs, "Enable JSON logging")
}

func bindProgressFlag(cmd *cobra.Command, app *appState) {
	cmd.Flags().BoolVar(&app.noProgress, "no-progress", app.noProgress, "Disable progress indicators")
}

func bindDownloaderFlags(cmd *cobra.Command, app *appState) {
	cmd.Flags().StringVar(&app.ytdlpPath, "yt-dlp", app.ytdlpPath, "Path to a yt-dlp executable (skips discovery)")
	cmd.Flags().StringVar(&app.toolDir, "tool-dir", app.toolDir, "Directory where managed tools are installed")
	cmd.Flags().BoolVar(&app.autoDownload, "auto-download", app.autoDownload, "Automatically install yt-dlp when missing")
}

func (a *appState) serve(_ context.Context) error {
	if !transcribe.HasAPIKey() {
		a.log().Warn(transcribe.MissingKeyWarning)
	}

	fetcher := fetch.New(a.resolveDownloader, a.log())
	engine := transcribe.NewOpenAIEngine(a.model, a.log())
	server := web.New(web.Config{
		Fetcher: fetcher,
		Engine:  engine,
		Logger:  a.log(),
	})

	a.log().Info("listening", zap.String("addr", a.addr))
	return server.Listen(a.addr)
}

// resolveDownloader runs per fetch, so a yt-dlp install that appears after
// startup is picked up without a restart.
func (a *appState) resolveDownloader(ctx context.Context) (string, error) {
	return ytdlp.Resolve(ctx, a.downloaderOptions())
}

func (a *appState) downloaderOptions() ytdlp.Options {
	return ytdlp.Options{
		OverridePath: a.ytdlpPath,
		ToolDir:      a.toolDir,
		AutoDownload: a.autoDownload,
		NoProgress:   a.noProgress,
		Logger:       a.log(),
	}
}

func (a *appState) log() *zap.Logger {
	if a.logger == nil {
		return zap.NewNop()
	}
	return a.logger
}
