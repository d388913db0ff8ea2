package extract

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Stage identifies a phase of one extraction run
type Stage string

const (
	StageResolvingChannel     Stage = "resolving_channel"
	StageListingVideos        Stage = "listing_videos"
	StageFetchingDetails      Stage = "fetching_details"
	StageResolvingTranscripts Stage = "resolving_transcripts"
	StageDone                 Stage = "done"
)

// Reporter receives coarse progress updates from a run. Updates are
// observability side effects only; they never influence control flow.
type Reporter interface {
	Report(stage Stage, fraction float64, message string)
}

// NopReporter discards all progress updates
type NopReporter struct{}

func (NopReporter) Report(Stage, float64, string) {}

// logReporter logs progress updates through logrus
type logReporter struct {
	log *logrus.Logger
}

// NewLogReporter creates a Reporter that logs through the given logger
func NewLogReporter(log *logrus.Logger) Reporter {
	return &logReporter{log: log}
}

func (r *logReporter) Report(stage Stage, fraction float64, message string) {
	r.log.WithFields(logrus.Fields{
		"stage":    string(stage),
		"progress": fmt.Sprintf("%.0f%%", fraction*100),
	}).Info(message)
}
