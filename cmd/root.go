package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/okabe-dev/yt-scribe/internal/config"
	"github.com/okabe-dev/yt-scribe/internal/service/transcript"
	"github.com/okabe-dev/yt-scribe/internal/service/youtube"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ytscribe",
	Short: "Extract metadata and transcripts from YouTube channels",
	Long: `yt-scribe retrieves the recent videos of a YouTube channel together
with their metadata and best-available transcripts, tolerating partial
data availability and unreliable upstream services.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newYouTubeService builds the Data API backed service from configuration
func newYouTubeService(ctx context.Context, cfg *config.Config) (youtube.Service, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no API key configured. Set api_key in the config file or the YOUTUBE_API_KEY environment variable")
	}

	client, err := yt.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube client: %w", err)
	}

	return youtube.NewService(client), nil
}

// newTranscriptEngine wires the primary and secondary transcript sources
func newTranscriptEngine(youtubeService youtube.Service, cfg *config.Config) transcript.Engine {
	primary := transcript.NewInnertubeSource(nil)
	secondary := transcript.NewCaptionsSource(youtubeService, nil)
	return transcript.NewEngine(primary, secondary, cfg.TranscriptTimeout())
}
