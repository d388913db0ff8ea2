package extract

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/okabe-dev/yt-scribe/internal/model"
	"github.com/okabe-dev/yt-scribe/internal/service/youtube"
)

// mockYouTubeService is a mock implementation of youtube.Service for testing
type mockYouTubeService struct {
	mock.Mock
}

func (m *mockYouTubeService) ResolveChannel(ctx context.Context, rawIdentifier string) (string, error) {
	args := m.Called(ctx, rawIdentifier)
	return args.String(0), args.Error(1)
}

func (m *mockYouTubeService) ListRecentVideos(ctx context.Context, channelID string, limit int) ([]string, error) {
	args := m.Called(ctx, channelID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockYouTubeService) FetchVideoDetails(ctx context.Context, videoIDs []string) ([]model.VideoSummary, error) {
	args := m.Called(ctx, videoIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VideoSummary), args.Error(1)
}

func (m *mockYouTubeService) ListCaptionTracks(ctx context.Context, videoID string) ([]youtube.CaptionTrack, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]youtube.CaptionTrack), args.Error(1)
}

// engineFunc adapts a function to the transcript.Engine interface
type engineFunc func(ctx context.Context, videoID, targetLanguage string) model.TranscriptResult

func (f engineFunc) Resolve(ctx context.Context, videoID, targetLanguage string) model.TranscriptResult {
	return f(ctx, videoID, targetLanguage)
}

// recordingReporter captures progress updates for assertions
type recordingReporter struct {
	stages []Stage
}

func (r *recordingReporter) Report(stage Stage, fraction float64, message string) {
	r.stages = append(r.stages, stage)
}
