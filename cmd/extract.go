package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/okabe-dev/yt-scribe/internal/config"
	"github.com/okabe-dev/yt-scribe/internal/errors"
	"github.com/okabe-dev/yt-scribe/internal/export"
	"github.com/okabe-dev/yt-scribe/internal/model"
	"github.com/okabe-dev/yt-scribe/internal/service/extract"
	"github.com/okabe-dev/yt-scribe/internal/thumbnail"
)

// extractCmd runs the full one-shot extraction pass
var extractCmd = &cobra.Command{
	Use:   "extract [IDENTIFIER]",
	Short: "Extract recent videos and transcripts from a channel",
	Long: `Resolve a channel identifier (canonical ID, @handle or free text),
list its most recent videos, fetch their metadata in one batched call and
resolve the best available transcript per video. Results are exported as
JSON, CSV and per-video plain-text transcripts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawIdentifier := args[0]

		// Create service with timeout context
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
		defer cancel()

		// Load configuration
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// Flags override config file values
		language, _ := cmd.Flags().GetString("lang")
		if language == "" {
			language = cfg.Language
		}
		maxVideos, _ := cmd.Flags().GetInt("max-videos")
		if maxVideos == 0 {
			maxVideos = cfg.MaxVideos
		}
		outDir, _ := cmd.Flags().GetString("out-dir")
		if outDir == "" {
			outDir = cfg.OutputDir
		}
		withThumbnails, _ := cmd.Flags().GetBool("thumbnails")

		// Create services
		youtubeService, err := newYouTubeService(ctx, cfg)
		if err != nil {
			return err
		}
		engine := newTranscriptEngine(youtubeService, cfg)

		log := logrus.New()
		orchestrator := extract.NewOrchestrator(youtubeService, engine, extract.NewLogReporter(log), cfg.Pacing())

		// Run the extraction pass
		records, err := orchestrator.Run(ctx, rawIdentifier, language, maxVideos)
		if err != nil {
			if errors.HasCode(err, errors.CodeNotFound) {
				fmt.Println("No videos found for this channel.")
				return nil
			}
			return fmt.Errorf("extraction failed: %w", err)
		}

		// Export results
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := export.WriteJSON(records, filepath.Join(outDir, "records.json")); err != nil {
			return err
		}
		if err := export.WriteCSV(records, filepath.Join(outDir, "records.csv")); err != nil {
			return err
		}
		written, err := export.WriteTranscripts(records, filepath.Join(outDir, "transcripts"))
		if err != nil {
			return err
		}

		if withThumbnails {
			archiver := thumbnail.NewArchiver(nil, log)
			packaged, err := archiver.Archive(ctx, records, filepath.Join(outDir, "thumbnails.zip"))
			if err != nil {
				return fmt.Errorf("failed to archive thumbnails: %w", err)
			}
			fmt.Printf("Archived %d thumbnail(s)\n", packaged)
		}

		printSummary(records, written, outDir)
		return nil
	},
}

// printSummary renders a human-readable per-video summary
func printSummary(records []model.VideoRecord, transcriptsWritten int, outDir string) {
	fmt.Printf("✅ Extracted %d video(s), %d with transcripts\n\n", len(records), transcriptsWritten)

	for _, record := range records {
		fmt.Printf("- %s\n", record.Title)
		fmt.Printf("  views: %s, likes: %s\n", humanize.Comma(int64(record.ViewCount)), humanize.Comma(int64(record.LikeCount)))
		if record.Transcript.OK() {
			attempt := record.Transcript.Attempt
			provenance := fmt.Sprintf("%s %s", attempt.Kind, attempt.LanguageCode)
			if attempt.IsTranslated {
				provenance += fmt.Sprintf(" (translated from %s)", attempt.SourceLanguageCode)
			}
			fmt.Printf("  transcript: %s\n", provenance)
		} else {
			fmt.Printf("  transcript: unavailable (%s)\n", record.Transcript.FailureReason)
		}
	}

	fmt.Printf("\nResults written to %s\n", outDir)
}

func init() {
	extractCmd.Flags().String("lang", "", "Target transcript language (es or en)")
	extractCmd.Flags().Int("max-videos", 0, "Number of recent videos to extract (1-50)")
	extractCmd.Flags().String("out-dir", "", "Output directory for exports")
	extractCmd.Flags().Bool("thumbnails", false, "Also download thumbnails into a zip archive")

	rootCmd.AddCommand(extractCmd)
}
