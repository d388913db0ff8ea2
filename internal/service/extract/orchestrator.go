package extract

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/okabe-dev/yt-scribe/internal/errors"
	"github.com/okabe-dev/yt-scribe/internal/model"
	"github.com/okabe-dev/yt-scribe/internal/service/transcript"
	"github.com/okabe-dev/yt-scribe/internal/service/youtube"
)

// DefaultPacing is the delay enforced between per-video transcript
// resolutions, a throughput throttle for upstream rate limits
const DefaultPacing = 500 * time.Millisecond

// MaxVideos is the upper bound on videos per run
const MaxVideos = youtube.MaxBatchSize

// Orchestrator sequences one discovery and resolution pass:
// resolve channel -> list videos -> fetch details -> resolve transcript
// per video -> assemble records
type Orchestrator interface {
	Run(ctx context.Context, rawIdentifier, targetLanguage string, maxVideos int) ([]model.VideoRecord, error)
}

// orchestrator implements Orchestrator
type orchestrator struct {
	youtubeService youtube.Service
	engine         transcript.Engine
	reporter       Reporter
	limiter        *rate.Limiter
}

// NewOrchestrator creates an Orchestrator. pacing <=0 selects
// DefaultPacing; a nil reporter discards progress updates.
func NewOrchestrator(youtubeService youtube.Service, engine transcript.Engine, reporter Reporter, pacing time.Duration) Orchestrator {
	if reporter == nil {
		reporter = NopReporter{}
	}
	if pacing <= 0 {
		pacing = DefaultPacing
	}
	return &orchestrator{
		youtubeService: youtubeService,
		engine:         engine,
		reporter:       reporter,
		limiter:        rate.NewLimiter(rate.Every(pacing), 1),
	}
}

// Run performs one extraction pass. Channel- and listing-stage failures
// abort the run; a failed transcript resolution only marks that video's
// record and processing continues (partial-failure isolation).
func (o *orchestrator) Run(ctx context.Context, rawIdentifier, targetLanguage string, maxVideos int) ([]model.VideoRecord, error) {
	// Contract checks come before any network access
	if maxVideos < 1 || maxVideos > MaxVideos {
		return nil, errors.New(errors.CodeInvalidArg, fmt.Sprintf("maxVideos must be between 1 and %d, got %d", MaxVideos, maxVideos))
	}
	if !transcript.IsSupportedLanguage(targetLanguage) {
		return nil, errors.New(errors.CodeInvalidArg, "unsupported target language: "+targetLanguage)
	}

	o.reporter.Report(StageResolvingChannel, 0.0, "resolving channel "+rawIdentifier)
	channelID, err := o.youtubeService.ResolveChannel(ctx, rawIdentifier)
	if err != nil {
		return nil, err
	}

	o.reporter.Report(StageListingVideos, 0.1, "listing videos for "+channelID)
	videoIDs, err := o.youtubeService.ListRecentVideos(ctx, channelID, maxVideos)
	if err != nil {
		return nil, err
	}
	if len(videoIDs) == 0 {
		// A valid, distinct outcome; not a call failure
		return []model.VideoRecord{}, errors.New(errors.CodeNotFound, "channel has no videos")
	}

	o.reporter.Report(StageFetchingDetails, 0.2, fmt.Sprintf("fetching details for %d video(s)", len(videoIDs)))
	summaries, err := o.youtubeService.FetchVideoDetails(ctx, videoIDs)
	if err != nil {
		return nil, err
	}

	// Upstream does not guarantee detail order, so re-associate by video ID
	summariesByID := make(map[string]model.VideoSummary, len(summaries))
	for _, summary := range summaries {
		summariesByID[summary.VideoID] = summary
	}

	records := make([]model.VideoRecord, 0, len(videoIDs))
	for i, videoID := range videoIDs {
		// Cooperative cancellation checkpoint; no mid-call cancellation
		if ctxErr := ctx.Err(); ctxErr != nil {
			return records, errors.Wrap(ctxErr, errors.CodeInternal, "run cancelled")
		}

		summary, found := summariesByID[videoID]
		if !found {
			// No details upstream means no record can be formed
			continue
		}

		// Pacing between successive resolutions (the first Wait is free)
		if waitErr := o.limiter.Wait(ctx); waitErr != nil {
			return records, errors.Wrap(waitErr, errors.CodeInternal, "run cancelled")
		}

		fraction := 0.3 + 0.7*float64(i)/float64(len(videoIDs))
		o.reporter.Report(StageResolvingTranscripts, fraction, fmt.Sprintf("resolving transcript %d/%d (%s)", i+1, len(videoIDs), videoID))

		// Resolve never fails the run; failures live in the record
		result := o.engine.Resolve(ctx, videoID, targetLanguage)

		records = append(records, model.VideoRecord{
			VideoSummary: summary,
			Transcript:   result,
		})
	}

	o.reporter.Report(StageDone, 1.0, fmt.Sprintf("assembled %d record(s)", len(records)))
	return records, nil
}
