package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/okabe-dev/yt-scribe/internal/config"
)

// transcriptCmd represents the transcript command
var transcriptCmd = &cobra.Command{
	Use:   "transcript",
	Short: "Transcript operations for videos",
	Long:  `Operations for resolving transcripts of individual videos.`,
}

// transcriptGetCmd resolves the transcript for a single video
var transcriptGetCmd = &cobra.Command{
	Use:   "get [VIDEO_ID]",
	Short: "Resolve the best available transcript for a video",
	Long: `Resolve the best available transcript for a video, walking the
fallback chain: target-language variants, cross-language translation and
the caption-listing fallback source.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID := args[0]

		// Get language flag
		language, _ := cmd.Flags().GetString("lang")

		// Create service with timeout context
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Load configuration
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if language == "" {
			language = cfg.Language
		}

		// Create services
		youtubeService, err := newYouTubeService(ctx, cfg)
		if err != nil {
			return err
		}
		engine := newTranscriptEngine(youtubeService, cfg)

		// Resolve transcript (failures are carried in the result)
		result := engine.Resolve(ctx, videoID, language)

		// Display result as JSON
		output, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}

		fmt.Println(string(output))
		return nil
	},
}

func init() {
	transcriptGetCmd.Flags().String("lang", "", "Target transcript language (es or en)")

	transcriptCmd.AddCommand(transcriptGetCmd)
	rootCmd.AddCommand(transcriptCmd)
}
