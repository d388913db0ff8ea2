package transcript

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/okabe-dev/yt-scribe/internal/errors"
	"github.com/okabe-dev/yt-scribe/internal/model"
	"github.com/okabe-dev/yt-scribe/internal/service/youtube"
)

// mockTrackLister is a mock implementation of TrackLister for testing
type mockTrackLister struct {
	mock.Mock
}

func (m *mockTrackLister) ListCaptionTracks(ctx context.Context, videoID string) ([]youtube.CaptionTrack, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]youtube.CaptionTrack), args.Error(1)
}

func TestCaptionsListTracks(t *testing.T) {
	lister := new(mockTrackLister)
	lister.On("ListCaptionTracks", mock.Anything, testVideoID).Return([]youtube.CaptionTrack{
		{Language: "en", Generated: false},
		{Language: "es", Generated: true},
	}, nil)

	source := NewCaptionsSource(lister, nil)
	tracks, err := source.ListTracks(context.Background(), testVideoID)
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	assert.Equal(t, model.TranscriptManual, tracks[0].Kind)
	assert.Contains(t, tracks[0].BaseURL, "lang=en")
	assert.Contains(t, tracks[0].BaseURL, "v="+testVideoID)
	assert.NotContains(t, tracks[0].BaseURL, "kind=asr")

	assert.Equal(t, model.TranscriptGenerated, tracks[1].Kind)
	assert.Contains(t, tracks[1].BaseURL, "kind=asr")
}

func TestCaptionsListTracks_Empty(t *testing.T) {
	lister := new(mockTrackLister)
	lister.On("ListCaptionTracks", mock.Anything, testVideoID).Return([]youtube.CaptionTrack{}, nil)

	source := NewCaptionsSource(lister, nil)
	_, err := source.ListTracks(context.Background(), testVideoID)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
}

func TestCaptionsFetchTrack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.0" dur="2.5">hello &amp; welcome</text>
  <text start="2.5" dur="3.0">to the show</text>
</transcript>`))
	}))
	defer server.Close()

	source := NewCaptionsSource(new(mockTrackLister), nil)
	text, err := source.FetchTrack(context.Background(), Track{BaseURL: server.URL})
	require.NoError(t, err)
	assert.Equal(t, "hello & welcome to the show", text)
}

func TestCaptionsFetchTrack_EmptyDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<transcript></transcript>`))
	}))
	defer server.Close()

	source := NewCaptionsSource(new(mockTrackLister), nil)
	_, err := source.FetchTrack(context.Background(), Track{BaseURL: server.URL})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
}

func TestCaptionsTranslateTrack_Unsupported(t *testing.T) {
	source := NewCaptionsSource(new(mockTrackLister), nil)
	_, err := source.TranslateTrack(context.Background(), Track{}, "es")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeTranslationUnavailable))
}
