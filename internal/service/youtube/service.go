package youtube

import (
	"context"
	"strings"

	yt "google.golang.org/api/youtube/v3"

	"github.com/okabe-dev/yt-scribe/internal/model"
)

// Service is the interface for YouTube Data API operations
type Service interface {
	// ResolveChannel turns a raw identifier (canonical ID, @handle or free
	// text) into a canonical channel ID
	ResolveChannel(ctx context.Context, rawIdentifier string) (string, error)
	// ListRecentVideos returns up to limit video IDs for a channel, newest first
	ListRecentVideos(ctx context.Context, channelID string, limit int) ([]string, error)
	// FetchVideoDetails retrieves metadata for up to 50 videos in one batched call.
	// Result order is not guaranteed to match the input order.
	FetchVideoDetails(ctx context.Context, videoIDs []string) ([]model.VideoSummary, error)
	// ListCaptionTracks enumerates caption tracks for a video via the
	// captions endpoint (the secondary transcript source)
	ListCaptionTracks(ctx context.Context, videoID string) ([]CaptionTrack, error)
}

// CaptionTrack describes one caption track from the captions endpoint
type CaptionTrack struct {
	Language  string
	Generated bool
}

// DataAPI is the seam over the raw YouTube Data API calls (mockable for tests)
type DataAPI interface {
	SearchChannels(ctx context.Context, query string, maxResults int64) ([]*yt.SearchResult, error)
	SearchVideos(ctx context.Context, channelID string, maxResults int64) ([]*yt.SearchResult, error)
	ListVideos(ctx context.Context, videoIDs []string) ([]*yt.Video, error)
	ListCaptions(ctx context.Context, videoID string) ([]*yt.Caption, error)
}

// youTubeService implements Service
type youTubeService struct {
	api DataAPI
}

// NewService creates a new Service backed by a YouTube Data API client
func NewService(client *yt.Service) Service {
	return &youTubeService{api: &googleDataAPI{client: client}}
}

// NewServiceWithAPI creates a new Service with a custom DataAPI (for testing)
func NewServiceWithAPI(api DataAPI) Service {
	return &youTubeService{api: api}
}

// googleDataAPI implements DataAPI using google.golang.org/api/youtube/v3
type googleDataAPI struct {
	client *yt.Service
}

func (g *googleDataAPI) SearchChannels(ctx context.Context, query string, maxResults int64) ([]*yt.SearchResult, error) {
	resp, err := g.client.Search.
		List([]string{"id"}).
		Q(query).
		Type("channel").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (g *googleDataAPI) SearchVideos(ctx context.Context, channelID string, maxResults int64) ([]*yt.SearchResult, error) {
	resp, err := g.client.Search.
		List([]string{"id"}).
		ChannelId(channelID).
		Type("video").
		Order("date").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (g *googleDataAPI) ListVideos(ctx context.Context, videoIDs []string) ([]*yt.Video, error) {
	// Single batched request with a comma-joined ID list (quota efficiency)
	resp, err := g.client.Videos.
		List([]string{"snippet", "statistics"}).
		Id(strings.Join(videoIDs, ",")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (g *googleDataAPI) ListCaptions(ctx context.Context, videoID string) ([]*yt.Caption, error) {
	resp, err := g.client.Captions.
		List([]string{"snippet"}, videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}
