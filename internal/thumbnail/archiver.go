// Package thumbnail fetches video thumbnails and packages them into a
// compressed archive.
package thumbnail

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/okabe-dev/yt-scribe/internal/model"
)

// Archiver downloads each record's thumbnail and writes a zip archive.
// A failed thumbnail is logged and skipped, never fatal to the archive.
type Archiver struct {
	httpClient *http.Client
	log        *logrus.Logger
}

// NewArchiver creates an Archiver
func NewArchiver(httpClient *http.Client, log *logrus.Logger) *Archiver {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logrus.New()
	}
	return &Archiver{httpClient: httpClient, log: log}
}

// Archive writes a zip of thumbnails at zipPath and returns how many were
// packaged
func (a *Archiver) Archive(ctx context.Context, records []model.VideoRecord, zipPath string) (int, error) {
	file, err := os.Create(zipPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create archive: %w", err)
	}
	defer file.Close()

	archive := zip.NewWriter(file)

	packaged := 0
	for _, record := range records {
		if record.ThumbnailURL == "" {
			continue
		}
		if err := a.addThumbnail(ctx, archive, record); err != nil {
			a.log.WithFields(logrus.Fields{
				"video_id": record.VideoID,
				"url":      record.ThumbnailURL,
			}).WithError(err).Warn("skipping thumbnail")
			continue
		}
		packaged++
	}

	if err := archive.Close(); err != nil {
		return packaged, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return packaged, nil
}

// addThumbnail fetches one thumbnail and streams it into the archive
func (a *Archiver) addThumbnail(ctx context.Context, archive *zip.Writer, record model.VideoRecord) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, record.ThumbnailURL, nil)
	if err != nil {
		return err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("thumbnail request returned status %d", resp.StatusCode)
	}

	entry, err := archive.Create(record.VideoID + ".jpg")
	if err != nil {
		return err
	}
	_, err = io.Copy(entry, resp.Body)
	return err
}
