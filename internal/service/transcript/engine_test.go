package transcript

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/okabe-dev/yt-scribe/internal/errors"
	"github.com/okabe-dev/yt-scribe/internal/model"
)

const testVideoID = "dQw4w9WgXcQ"

// assertExactlyOne checks the success-xor-failure invariant on a result
func assertExactlyOne(t *testing.T, result model.TranscriptResult) {
	t.Helper()
	success := result.Text != "" && result.Attempt != nil
	failure := result.Text == "" && result.Attempt == nil && result.FailureReason != ""
	assert.True(t, success != failure && (success || failure), "result must be exactly success or failure: %+v", result)
}

func TestResolve_DirectTargetLanguageBeatsTranslation(t *testing.T) {
	manualEN := Track{Language: "en", Kind: model.TranscriptManual, Translatable: true}
	generatedES := Track{Language: "es", Kind: model.TranscriptGenerated, Translatable: true}

	primary := new(mockSource)
	primary.On("ListTracks", mock.Anything, testVideoID).Return([]Track{manualEN, generatedES}, nil)
	primary.On("FetchTrack", mock.Anything, generatedES).Return("hola mundo", nil)

	engine := NewEngine(primary, nil, 0)
	result := engine.Resolve(context.Background(), testVideoID, "es")

	require.True(t, result.OK())
	assert.Equal(t, "hola mundo", result.Text)
	assert.Equal(t, model.TranscriptGenerated, result.Attempt.Kind)
	assert.Equal(t, "es", result.Attempt.LanguageCode)
	assert.False(t, result.Attempt.IsTranslated)
	assertExactlyOne(t, result)

	// The generated target-language track wins directly; no translation attempted
	primary.AssertNotCalled(t, "TranslateTrack", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolve_ManualBeforeGeneratedInSameVariantList(t *testing.T) {
	generatedES := Track{Language: "es", Kind: model.TranscriptGenerated}
	manualESMX := Track{Language: "es-MX", Kind: model.TranscriptManual}

	primary := new(mockSource)
	primary.On("ListTracks", mock.Anything, testVideoID).Return([]Track{generatedES, manualESMX}, nil)
	primary.On("FetchTrack", mock.Anything, manualESMX).Return("texto manual", nil)

	engine := NewEngine(primary, nil, 0)
	result := engine.Resolve(context.Background(), testVideoID, "es")

	require.True(t, result.OK())
	assert.Equal(t, model.TranscriptManual, result.Attempt.Kind)
	assert.Equal(t, "es-MX", result.Attempt.LanguageCode)
}

func TestResolve_VariantPriorityTieBreak(t *testing.T) {
	manual419 := Track{Language: "es-419", Kind: model.TranscriptManual, BaseURL: "u419"}
	manualESES := Track{Language: "es-ES", Kind: model.TranscriptManual, BaseURL: "uESES"}

	primary := new(mockSource)
	// es-ES precedes es-419 in the variant priority list even though
	// upstream enumerates es-419 first
	primary.On("ListTracks", mock.Anything, testVideoID).Return([]Track{manual419, manualESES}, nil)
	primary.On("FetchTrack", mock.Anything, manualESES).Return("texto", nil)

	engine := NewEngine(primary, nil, 0)
	result := engine.Resolve(context.Background(), testVideoID, "es")

	require.True(t, result.OK())
	assert.Equal(t, "es-ES", result.Attempt.LanguageCode)
}

func TestResolve_EnumerationOrderTieBreak(t *testing.T) {
	first := Track{Language: "en", Kind: model.TranscriptManual, BaseURL: "first"}
	second := Track{Language: "en", Kind: model.TranscriptManual, BaseURL: "second"}

	primary := new(mockSource)
	primary.On("ListTracks", mock.Anything, testVideoID).Return([]Track{first, second}, nil)
	primary.On("FetchTrack", mock.Anything, first).Return("first text", nil)

	engine := NewEngine(primary, nil, 0)
	result := engine.Resolve(context.Background(), testVideoID, "en")

	require.True(t, result.OK())
	assert.Equal(t, "first text", result.Text)
}

func TestResolve_CrossLanguageTranslation(t *testing.T) {
	generatedEN := Track{Language: "en", Kind: model.TranscriptGenerated, Translatable: true}

	primary := new(mockSource)
	primary.On("ListTracks", mock.Anything, testVideoID).Return([]Track{generatedEN}, nil)
	primary.On("TranslateTrack", mock.Anything, generatedEN, "es").Return("texto traducido", nil)

	engine := NewEngine(primary, nil, 0)
	result := engine.Resolve(context.Background(), testVideoID, "es")

	require.True(t, result.OK())
	assert.Equal(t, "texto traducido", result.Text)
	assert.Equal(t, model.TranscriptGenerated, result.Attempt.Kind)
	assert.Equal(t, "es", result.Attempt.LanguageCode)
	assert.True(t, result.Attempt.IsTranslated)
	assert.Equal(t, "en", result.Attempt.SourceLanguageCode)
	assertExactlyOne(t, result)
}

func TestResolve_ManualPreferredAsTranslationSource(t *testing.T) {
	generatedEN := Track{Language: "en", Kind: model.TranscriptGenerated, Translatable: true, BaseURL: "gen"}
	manualEN := Track{Language: "en-GB", Kind: model.TranscriptManual, Translatable: true, BaseURL: "man"}

	primary := new(mockSource)
	primary.On("ListTracks", mock.Anything, testVideoID).Return([]Track{generatedEN, manualEN}, nil)
	primary.On("TranslateTrack", mock.Anything, manualEN, "es").Return("desde manual", nil)

	engine := NewEngine(primary, nil, 0)
	result := engine.Resolve(context.Background(), testVideoID, "es")

	require.True(t, result.OK())
	assert.Equal(t, "en-GB", result.Attempt.SourceLanguageCode)
	assert.Equal(t, model.TranscriptManual, result.Attempt.Kind)
}

func TestResolve_ThirdLanguageTranslation(t *testing.T) {
	manualFR := Track{Language: "fr", Kind: model.TranscriptManual, Translatable: true}

	primary := new(mockSource)
	primary.On("ListTracks", mock.Anything, testVideoID).Return([]Track{manualFR}, nil)
	primary.On("TranslateTrack", mock.Anything, manualFR, "es").Return("depuis le français", nil)

	engine := NewEngine(primary, nil, 0)
	result := engine.Resolve(context.Background(), testVideoID, "es")

	require.True(t, result.OK())
	assert.True(t, result.Attempt.IsTranslated)
	assert.Equal(t, "fr", result.Attempt.SourceLanguageCode)
}

func TestResolve_TranslationUnavailableAdvancesStrategies(t *testing.T) {
	manualEN := Track{Language: "en", Kind: model.TranscriptManual}

	primary := new(mockSource)
	primary.On("ListTracks", mock.Anything, testVideoID).Return([]Track{manualEN}, nil)
	primary.On("TranslateTrack", mock.Anything, manualEN, "es").
		Return("", errors.New(errors.CodeTranslationUnavailable, "track does not support translation"))

	secondary := new(mockSource)
	secondary.On("ListTracks", mock.Anything, testVideoID).
		Return(nil, errors.New(errors.CodeNotFound, "no caption tracks listed for this video"))

	engine := NewEngine(primary, secondary, 0)
	result := engine.Resolve(context.Background(), testVideoID, "es")

	require.False(t, result.OK())
	assert.Equal(t, model.FailureNotFound, result.FailureReason)
	assertExactlyOne(t, result)
	secondary.AssertExpectations(t)
}

func TestResolve_DisabledPrimaryUsesSecondarySource(t *testing.T) {
	primary := new(mockSource)
	primary.On("ListTracks", mock.Anything, testVideoID).
		Return(nil, errors.New(errors.CodeDisabled, "transcripts are disabled for this video"))

	secondaryFR := Track{Language: "fr", Kind: model.TranscriptGenerated, BaseURL: "fr"}
	secondaryESMX := Track{Language: "es-MX", Kind: model.TranscriptManual, BaseURL: "esmx"}
	secondary := new(mockSource)
	secondary.On("ListTracks", mock.Anything, testVideoID).Return([]Track{secondaryFR, secondaryESMX}, nil)
	secondary.On("FetchTrack", mock.Anything, secondaryESMX).Return("texto alternativo", nil)

	engine := NewEngine(primary, secondary, 0)
	result := engine.Resolve(context.Background(), testVideoID, "es")

	require.True(t, result.OK())
	assert.Equal(t, "texto alternativo", result.Text)
	assert.Equal(t, "es-MX", result.Attempt.LanguageCode)
	assert.False(t, result.Attempt.IsTranslated)
}

func TestResolve_SecondaryFallsBackToFirstTrack(t *testing.T) {
	primary := new(mockSource)
	primary.On("ListTracks", mock.Anything, testVideoID).
		Return(nil, errors.New(errors.CodeNotFound, "no transcript available for this video"))

	trackDE := Track{Language: "de", Kind: model.TranscriptGenerated, BaseURL: "de"}
	trackFR := Track{Language: "fr", Kind: model.TranscriptManual, BaseURL: "fr"}
	secondary := new(mockSource)
	secondary.On("ListTracks", mock.Anything, testVideoID).Return([]Track{trackDE, trackFR}, nil)
	secondary.On("FetchTrack", mock.Anything, trackDE).Return("deutscher text", nil)

	engine := NewEngine(primary, secondary, 0)
	result := engine.Resolve(context.Background(), testVideoID, "es")

	require.True(t, result.OK())
	assert.Equal(t, "de", result.Attempt.LanguageCode)
}

func TestResolve_DisabledEverywhereReportsDisabled(t *testing.T) {
	primary := new(mockSource)
	primary.On("ListTracks", mock.Anything, testVideoID).
		Return(nil, errors.New(errors.CodeDisabled, "transcripts are disabled for this video"))

	secondary := new(mockSource)
	secondary.On("ListTracks", mock.Anything, testVideoID).
		Return(nil, errors.New(errors.CodeNotFound, "no caption tracks listed for this video"))

	engine := NewEngine(primary, secondary, 0)
	result := engine.Resolve(context.Background(), testVideoID, "es")

	require.False(t, result.OK())
	assert.Equal(t, model.FailureDisabled, result.FailureReason)
}

func TestResolve_NoSecondaryConfigured(t *testing.T) {
	primary := new(mockSource)
	primary.On("ListTracks", mock.Anything, testVideoID).
		Return(nil, errors.New(errors.CodeNotFound, "no transcript available for this video"))

	engine := NewEngine(primary, nil, 0)
	result := engine.Resolve(context.Background(), testVideoID, "en")

	require.False(t, result.OK())
	assert.Equal(t, model.FailureNotFound, result.FailureReason)
}

func TestResolve_UpstreamErrorCarriesRawMessage(t *testing.T) {
	primary := new(mockSource)
	primary.On("ListTracks", mock.Anything, testVideoID).
		Return(nil, errors.Wrap(stderrors.New("connection reset"), errors.CodeUpstream, "player request failed"))

	engine := NewEngine(primary, nil, 0)
	result := engine.Resolve(context.Background(), testVideoID, "en")

	require.False(t, result.OK())
	assert.Contains(t, result.FailureReason, "connection reset")
	assertExactlyOne(t, result)
}

func TestResolve_TimeoutBudget(t *testing.T) {
	primary := &funcSource{
		listFn: func(ctx context.Context, videoID string) ([]Track, error) {
			// Never answers within the budget
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}

	engine := NewEngine(primary, nil, 20*time.Millisecond)

	start := time.Now()
	result := engine.Resolve(context.Background(), testVideoID, "en")
	elapsed := time.Since(start)

	require.False(t, result.OK())
	assert.Equal(t, model.FailureTimeout, result.FailureReason)
	assert.Less(t, elapsed, 5*time.Second, "resolution must not block past its budget")
	assertExactlyOne(t, result)
}

func TestResolve_UnsupportedTargetLanguage(t *testing.T) {
	engine := NewEngine(new(mockSource), nil, 0)
	result := engine.Resolve(context.Background(), testVideoID, "fr")

	require.False(t, result.OK())
	assert.Contains(t, result.FailureReason, "unsupported target language")
}

func TestResolve_Idempotent(t *testing.T) {
	manualEN := Track{Language: "en", Kind: model.TranscriptManual}

	primary := new(mockSource)
	primary.On("ListTracks", mock.Anything, testVideoID).Return([]Track{manualEN}, nil)
	primary.On("FetchTrack", mock.Anything, manualEN).Return("stable text", nil)

	engine := NewEngine(primary, nil, 0)
	first := engine.Resolve(context.Background(), testVideoID, "en")
	second := engine.Resolve(context.Background(), testVideoID, "en")

	assert.Equal(t, first, second)
}
