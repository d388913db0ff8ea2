package youtube

import (
	"context"

	"github.com/stretchr/testify/mock"
	yt "google.golang.org/api/youtube/v3"
)

// mockDataAPI is a mock implementation of DataAPI for testing
type mockDataAPI struct {
	mock.Mock
}

func (m *mockDataAPI) SearchChannels(ctx context.Context, query string, maxResults int64) ([]*yt.SearchResult, error) {
	args := m.Called(ctx, query, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*yt.SearchResult), args.Error(1)
}

func (m *mockDataAPI) SearchVideos(ctx context.Context, channelID string, maxResults int64) ([]*yt.SearchResult, error) {
	args := m.Called(ctx, channelID, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*yt.SearchResult), args.Error(1)
}

func (m *mockDataAPI) ListVideos(ctx context.Context, videoIDs []string) ([]*yt.Video, error) {
	args := m.Called(ctx, videoIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*yt.Video), args.Error(1)
}

func (m *mockDataAPI) ListCaptions(ctx context.Context, videoID string) ([]*yt.Caption, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*yt.Caption), args.Error(1)
}

// videoSearchResult builds a video search result item
func videoSearchResult(videoID string) *yt.SearchResult {
	return &yt.SearchResult{Id: &yt.ResourceId{VideoId: videoID}}
}

// channelSearchResult builds a channel search result item
func channelSearchResult(channelID string) *yt.SearchResult {
	return &yt.SearchResult{Id: &yt.ResourceId{ChannelId: channelID}}
}
