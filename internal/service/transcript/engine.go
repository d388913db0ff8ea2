package transcript

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/okabe-dev/yt-scribe/internal/errors"
	"github.com/okabe-dev/yt-scribe/internal/model"
)

// DefaultTimeout is the per-video resolution budget
const DefaultTimeout = 5 * time.Second

// Engine resolves the best available transcript for a video by walking an
// ordered list of strategies, stopping at first success:
//
//  1. direct fetch of a target-language variant (manual before generated)
//  2. translate a track from the other language family
//  3. translate any track at all
//  4. the secondary caption-listing source
//
// Resolve never returns an error; every failure is absorbed into the
// TranscriptResult so one pathological video cannot break a run.
type Engine interface {
	Resolve(ctx context.Context, videoID, targetLanguage string) model.TranscriptResult
}

// engine implements Engine
type engine struct {
	primary   Source
	secondary Source // may be nil when no fallback path is configured
	budget    time.Duration
}

// NewEngine creates a transcript resolution engine. budget caps the total
// resolution time per video; <=0 selects DefaultTimeout.
func NewEngine(primary, secondary Source, budget time.Duration) Engine {
	if budget <= 0 {
		budget = DefaultTimeout
	}
	return &engine{primary: primary, secondary: secondary, budget: budget}
}

// Resolve obtains the best available transcript for one video
func (e *engine) Resolve(ctx context.Context, videoID, targetLanguage string) model.TranscriptResult {
	if !IsSupportedLanguage(targetLanguage) {
		return model.NewTranscriptFailure("unsupported target language: " + targetLanguage)
	}

	ctx, cancel := context.WithTimeout(ctx, e.budget)
	defer cancel()

	tracks, listErr := e.primary.ListTracks(ctx, videoID)
	if listErr != nil {
		if timedOut(ctx, listErr) {
			return model.NewTranscriptFailure(model.FailureTimeout)
		}
		if !errors.HasCode(listErr, errors.CodeDisabled) && !errors.HasCode(listErr, errors.CodeNotFound) {
			return model.NewTranscriptFailure(listErr.Error())
		}
		// Feature disabled or no transcript at all: only the secondary
		// path remains
		return e.resolveSecondary(ctx, videoID, targetLanguage, failureReason(listErr))
	}

	// Strategy 1: direct preferred-language fetch
	if result, ok := e.fetchDirect(ctx, tracks, targetLanguage); ok {
		return result
	}
	if ctx.Err() != nil {
		return model.NewTranscriptFailure(model.FailureTimeout)
	}

	// Strategy 2: cross-language + translate
	if candidate, ok := pickCandidate(tracks, otherLanguage(targetLanguage)); ok {
		if result, ok := e.fetchTranslated(ctx, candidate, targetLanguage); ok {
			return result
		}
		if ctx.Err() != nil {
			return model.NewTranscriptFailure(model.FailureTimeout)
		}
	}

	// Strategy 3: any-available + translate
	if candidate, ok := pickCandidate(tracks, ""); ok {
		if result, ok := e.fetchTranslated(ctx, candidate, targetLanguage); ok {
			return result
		}
		if ctx.Err() != nil {
			return model.NewTranscriptFailure(model.FailureTimeout)
		}
	}

	// Strategy 4: secondary source fallback
	return e.resolveSecondary(ctx, videoID, targetLanguage, model.FailureNotFound)
}

// fetchDirect tries manual-kind tracks across the target's variant list,
// then generated-kind tracks across the same list. The first variant that
// exists wins; no further variants are tried once one is found.
func (e *engine) fetchDirect(ctx context.Context, tracks []Track, targetLanguage string) (model.TranscriptResult, bool) {
	for _, kind := range []model.TranscriptKind{model.TranscriptManual, model.TranscriptGenerated} {
		for _, variant := range Variants(targetLanguage) {
			for _, track := range tracks {
				if track.Kind != kind || track.Language != variant {
					continue
				}
				text, err := e.primary.FetchTrack(ctx, track)
				if err != nil || text == "" {
					return model.TranscriptResult{}, false
				}
				return model.NewTranscriptSuccess(text, model.TranscriptAttempt{
					Kind:         kind,
					LanguageCode: track.Language,
				}), true
			}
		}
	}
	return model.TranscriptResult{}, false
}

// fetchTranslated requests an automatic translation of candidate into the
// target language. A rejected translation counts as "no transcript found"
// for the strategy; the caller moves on.
func (e *engine) fetchTranslated(ctx context.Context, candidate Track, targetLanguage string) (model.TranscriptResult, bool) {
	text, err := e.primary.TranslateTrack(ctx, candidate, targetLanguage)
	if err != nil || text == "" {
		return model.TranscriptResult{}, false
	}
	return model.NewTranscriptSuccess(text, model.TranscriptAttempt{
		Kind:               candidate.Kind,
		LanguageCode:       targetLanguage,
		IsTranslated:       true,
		SourceLanguageCode: candidate.Language,
	}), true
}

// resolveSecondary walks the alternate caption-listing path: enumerate
// tracks independently, fetch the best-matching language, fall back to the
// first available track. fallbackReason is reported when this path also
// comes up empty.
func (e *engine) resolveSecondary(ctx context.Context, videoID, targetLanguage, fallbackReason string) model.TranscriptResult {
	if e.secondary == nil {
		return model.NewTranscriptFailure(fallbackReason)
	}

	tracks, err := e.secondary.ListTracks(ctx, videoID)
	if err != nil || len(tracks) == 0 {
		if timedOut(ctx, err) {
			return model.NewTranscriptFailure(model.FailureTimeout)
		}
		return model.NewTranscriptFailure(fallbackReason)
	}

	track := bestMatch(tracks, targetLanguage)
	text, err := e.secondary.FetchTrack(ctx, track)
	if err != nil || text == "" {
		if timedOut(ctx, err) {
			return model.NewTranscriptFailure(model.FailureTimeout)
		}
		return model.NewTranscriptFailure(fallbackReason)
	}

	return model.NewTranscriptSuccess(text, model.TranscriptAttempt{
		Kind:         track.Kind,
		LanguageCode: track.Language,
	})
}

// pickCandidate selects the highest-priority track: manual before
// generated, upstream enumeration order within a kind. family restricts
// candidates to one language family; empty means any language.
func pickCandidate(tracks []Track, family string) (Track, bool) {
	for _, kind := range []model.TranscriptKind{model.TranscriptManual, model.TranscriptGenerated} {
		for _, track := range tracks {
			if track.Kind != kind {
				continue
			}
			if family != "" && languageFamily(track.Language) != family {
				continue
			}
			return track, true
		}
	}
	return Track{}, false
}

// bestMatch prefers an exact variant-list match, then a same-family track,
// then the first available track
func bestMatch(tracks []Track, targetLanguage string) Track {
	for _, variant := range Variants(targetLanguage) {
		for _, track := range tracks {
			if track.Language == variant {
				return track
			}
		}
	}
	for _, track := range tracks {
		if languageFamily(track.Language) == targetLanguage {
			return track
		}
	}
	return tracks[0]
}

// failureReason maps a primary-source listing error to a reporting reason
func failureReason(err error) string {
	if errors.HasCode(err, errors.CodeDisabled) {
		return model.FailureDisabled
	}
	return model.FailureNotFound
}

// timedOut reports whether err or the context indicates the per-video
// budget was spent
func timedOut(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	return err != nil && stderrors.Is(err, context.DeadlineExceeded)
}
