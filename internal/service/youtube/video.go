package youtube

import (
	"context"
	"fmt"
	"time"

	yt "google.golang.org/api/youtube/v3"

	"github.com/okabe-dev/yt-scribe/internal/errors"
	"github.com/okabe-dev/yt-scribe/internal/model"
)

// MaxBatchSize is the upstream cap on listing and batched detail requests
const MaxBatchSize = 50

// ListRecentVideos fetches the most recent video IDs for a channel,
// ordered by publish date descending. An empty result is a valid outcome,
// not an error; the caller decides how to report it.
func (s *youTubeService) ListRecentVideos(ctx context.Context, channelID string, limit int) ([]string, error) {
	// Input validation
	if !model.IsCanonicalChannelID(channelID) {
		return nil, errors.New(errors.CodeInvalidArg, "invalid channel ID format (must start with UC)")
	}
	if limit < 1 || limit > MaxBatchSize {
		return nil, errors.New(errors.CodeInvalidArg, fmt.Sprintf("limit must be between 1 and %d, got %d", MaxBatchSize, limit))
	}

	items, err := s.api.SearchVideos(ctx, channelID, int64(limit))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "video listing failed")
	}

	videoIDs := make([]string, 0, len(items))
	for _, item := range items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		videoIDs = append(videoIDs, item.Id.VideoId)
	}

	return videoIDs, nil
}

// FetchVideoDetails retrieves metadata for the given videos in one batched
// call. Upstream does not guarantee result order matches the input order,
// so callers must re-associate by video ID, not position.
func (s *youTubeService) FetchVideoDetails(ctx context.Context, videoIDs []string) ([]model.VideoSummary, error) {
	// Input validation
	if len(videoIDs) == 0 {
		return nil, errors.New(errors.CodeInvalidArg, "at least one video ID is required")
	}
	if len(videoIDs) > MaxBatchSize {
		return nil, errors.New(errors.CodeInvalidArg, fmt.Sprintf("at most %d video IDs per batch, got %d", MaxBatchSize, len(videoIDs)))
	}

	items, err := s.api.ListVideos(ctx, videoIDs)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "video details fetch failed")
	}

	summaries := make([]model.VideoSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, toVideoSummary(item))
	}

	return summaries, nil
}

// ListCaptionTracks enumerates caption tracks through the captions endpoint.
// This is an independent retrieval path from the transcript service; some
// content (notably short-form videos) exposes captions only here.
func (s *youTubeService) ListCaptionTracks(ctx context.Context, videoID string) ([]CaptionTrack, error) {
	if videoID == "" {
		return nil, errors.New(errors.CodeInvalidArg, "video ID is required")
	}

	items, err := s.api.ListCaptions(ctx, videoID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "caption listing failed")
	}

	tracks := make([]CaptionTrack, 0, len(items))
	for _, item := range items {
		if item.Snippet == nil {
			continue
		}
		tracks = append(tracks, CaptionTrack{
			Language:  item.Snippet.Language,
			Generated: item.Snippet.TrackKind == "asr",
		})
	}

	return tracks, nil
}

// toVideoSummary converts an API video item to our model.
// Missing statistics default to zero rather than propagating absence.
func toVideoSummary(item *yt.Video) model.VideoSummary {
	summary := model.VideoSummary{VideoID: item.Id}

	if item.Snippet != nil {
		summary.Title = item.Snippet.Title
		summary.Description = item.Snippet.Description
		summary.ThumbnailURL = bestThumbnailURL(item.Snippet.Thumbnails)
		if publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			summary.PublishedAt = publishedAt
		}
	}

	if item.Statistics != nil {
		summary.ViewCount = item.Statistics.ViewCount
		summary.LikeCount = item.Statistics.LikeCount
		summary.CommentCount = item.Statistics.CommentCount
	}

	return summary
}

// bestThumbnailURL picks the highest-resolution thumbnail available
func bestThumbnailURL(thumbnails *yt.ThumbnailDetails) string {
	if thumbnails == nil {
		return ""
	}
	for _, candidate := range []*yt.Thumbnail{thumbnails.High, thumbnails.Medium, thumbnails.Default} {
		if candidate != nil && candidate.Url != "" {
			return candidate.Url
		}
	}
	return ""
}
