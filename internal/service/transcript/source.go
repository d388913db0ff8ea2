package transcript

import (
	"context"

	"github.com/okabe-dev/yt-scribe/internal/model"
)

// Track describes one caption track available from a source
type Track struct {
	Language     string
	Kind         model.TranscriptKind
	Translatable bool
	// BaseURL is the source-specific content URL for this track
	BaseURL string
}

// Source lists and fetches caption tracks for a video.
//
// ListTracks returns the available tracks in upstream enumeration order.
// It fails with CodeDisabled when the video has transcripts switched off,
// CodeNotFound when no tracks exist, and CodeUpstream for transport errors.
//
// FetchTrack returns the track's plain text: the space-joined concatenation
// of all caption segments, no timestamps.
//
// TranslateTrack fetches the track translated into targetLanguage, failing
// with CodeTranslationUnavailable when the source or track cannot translate.
type Source interface {
	ListTracks(ctx context.Context, videoID string) ([]Track, error)
	FetchTrack(ctx context.Context, track Track) (string, error)
	TranslateTrack(ctx context.Context, track Track, targetLanguage string) (string, error)
}
