// Package export writes the assembled video records to disk: a structured
// JSON document, a flattened CSV table, and one plain-text transcript file
// per video.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/okabe-dev/yt-scribe/internal/model"
)

// WriteJSON writes all records as one array-of-records JSON document
func WriteJSON(records []model.VideoRecord, path string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON export: %w", err)
	}
	return nil
}

// csvHeader defines the flattened column layout
var csvHeader = []string{
	"video_id", "title", "published_at", "view_count", "like_count",
	"comment_count", "thumbnail_url", "transcript_kind",
	"transcript_language", "is_translated", "failure_reason",
}

// WriteCSV writes all records as a flattened CSV table
func WriteCSV(records []model.VideoRecord, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV export: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.VideoID,
			record.Title,
			record.PublishedAt.Format("2006-01-02T15:04:05Z07:00"),
			strconv.FormatUint(record.ViewCount, 10),
			strconv.FormatUint(record.LikeCount, 10),
			strconv.FormatUint(record.CommentCount, 10),
			record.ThumbnailURL,
			transcriptKind(record.Transcript),
			transcriptLanguage(record.Transcript),
			strconv.FormatBool(record.Transcript.Attempt != nil && record.Transcript.Attempt.IsTranslated),
			record.Transcript.FailureReason,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV export: %w", err)
	}
	return nil
}

// WriteTranscripts writes one plain-text file per successfully resolved
// transcript into dir and returns how many files were written. Videos
// without a transcript are skipped, not errors.
func WriteTranscripts(records []model.VideoRecord, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create transcript directory: %w", err)
	}

	written := 0
	for _, record := range records {
		if !record.Transcript.OK() {
			continue
		}
		path := filepath.Join(dir, record.VideoID+".txt")
		if err := os.WriteFile(path, []byte(record.Transcript.Text+"\n"), 0644); err != nil {
			return written, fmt.Errorf("failed to write transcript for %s: %w", record.VideoID, err)
		}
		written++
	}
	return written, nil
}

func transcriptKind(result model.TranscriptResult) string {
	if result.Attempt == nil {
		return ""
	}
	return string(result.Attempt.Kind)
}

func transcriptLanguage(result model.TranscriptResult) string {
	if result.Attempt == nil {
		return ""
	}
	return result.Attempt.LanguageCode
}
