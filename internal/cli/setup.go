package cli

import (
	"fmt"

	"github.com/fmueller/vimeoscribe/internal/ytdlp"
	"github.com/spf13/cobra"
)

func newSetupCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Install and verify the yt-dlp downloader ahead of time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := app.downloaderOptions()
			opts.AutoDownload = true

			path, err := ytdlp.Resolve(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("set up yt-dlp: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "yt-dlp ready at %s\n", path)
			return nil
		},
	}

	bindLoggingFlags(cmd, app)
	bindProgressFlag(cmd, app)
	bindDownloaderFlags(cmd, app)

	return cmd
}
