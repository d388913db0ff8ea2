package transcript

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// mockSource is a mock implementation of Source for testing
type mockSource struct {
	mock.Mock
}

func (m *mockSource) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Track), args.Error(1)
}

func (m *mockSource) FetchTrack(ctx context.Context, track Track) (string, error) {
	args := m.Called(ctx, track)
	return args.String(0), args.Error(1)
}

func (m *mockSource) TranslateTrack(ctx context.Context, track Track, targetLanguage string) (string, error) {
	args := m.Called(ctx, track, targetLanguage)
	return args.String(0), args.Error(1)
}

// funcSource implements Source with injectable behavior, for cases a
// recorded mock cannot express (e.g. blocking until the context expires)
type funcSource struct {
	listFn      func(ctx context.Context, videoID string) ([]Track, error)
	fetchFn     func(ctx context.Context, track Track) (string, error)
	translateFn func(ctx context.Context, track Track, targetLanguage string) (string, error)
}

func (f *funcSource) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	return f.listFn(ctx, videoID)
}

func (f *funcSource) FetchTrack(ctx context.Context, track Track) (string, error) {
	return f.fetchFn(ctx, track)
}

func (f *funcSource) TranslateTrack(ctx context.Context, track Track, targetLanguage string) (string, error) {
	return f.translateFn(ctx, track, targetLanguage)
}
