package model

import "time"

// Channel ID format constants
const (
	ChannelIDPrefix = "UC"
	ChannelIDLength = 24 // "UC" prefix + 22 character suffix
	HandleMarker    = "@"
)

// ChannelIdentifierKind distinguishes the accepted channel identifier inputs
type ChannelIdentifierKind int

const (
	// IdentifierCanonicalID is a full channel ID ("UC" + 22 characters)
	IdentifierCanonicalID ChannelIdentifierKind = iota
	// IdentifierHandle is a handle prefixed with "@"
	IdentifierHandle
	// IdentifierFreeText is anything else, treated as a search query
	IdentifierFreeText
)

// ChannelIdentifier is a user-supplied channel reference classified by kind
type ChannelIdentifier struct {
	Kind  ChannelIdentifierKind
	Value string // canonical ID, handle without marker, or raw query text
}

// ParseChannelIdentifier classifies a raw identifier string
func ParseChannelIdentifier(raw string) ChannelIdentifier {
	if IsCanonicalChannelID(raw) {
		return ChannelIdentifier{Kind: IdentifierCanonicalID, Value: raw}
	}
	if len(raw) > len(HandleMarker) && raw[:len(HandleMarker)] == HandleMarker {
		return ChannelIdentifier{Kind: IdentifierHandle, Value: raw[len(HandleMarker):]}
	}
	return ChannelIdentifier{Kind: IdentifierFreeText, Value: raw}
}

// IsCanonicalChannelID reports whether s has the canonical channel ID shape
func IsCanonicalChannelID(s string) bool {
	if len(s) != ChannelIDLength {
		return false
	}
	return s[:len(ChannelIDPrefix)] == ChannelIDPrefix
}

// VideoSummary represents per-video metadata from the details endpoint.
// Immutable once constructed; numeric fields default to 0 when absent upstream.
type VideoSummary struct {
	VideoID      string    `json:"video_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnail_url"`
	ViewCount    uint64    `json:"view_count"`
	LikeCount    uint64    `json:"like_count"`
	CommentCount uint64    `json:"comment_count"`
	PublishedAt  time.Time `json:"published_at"`
}

// TranscriptKind distinguishes human-authored from machine-generated tracks
type TranscriptKind string

const (
	TranscriptManual    TranscriptKind = "manual"
	TranscriptGenerated TranscriptKind = "generated"
)

// TranscriptAttempt records how a transcript was obtained.
// Provenance only; never consulted for control flow after resolution succeeds.
type TranscriptAttempt struct {
	Kind               TranscriptKind `json:"kind"`
	LanguageCode       string         `json:"language_code"`
	IsTranslated       bool           `json:"is_translated"`
	SourceLanguageCode string         `json:"source_language_code,omitempty"`
}

// TranscriptResult is the outcome of transcript resolution for one video.
// Exactly one of success (non-empty Text with Attempt) or failure
// (empty Text with FailureReason) holds; use the constructors below.
type TranscriptResult struct {
	Text          string             `json:"text"`
	Attempt       *TranscriptAttempt `json:"attempt,omitempty"`
	FailureReason string             `json:"failure_reason,omitempty"`
}

// NewTranscriptSuccess builds a successful result
func NewTranscriptSuccess(text string, attempt TranscriptAttempt) TranscriptResult {
	return TranscriptResult{Text: text, Attempt: &attempt}
}

// NewTranscriptFailure builds a failed result with a human-readable reason
func NewTranscriptFailure(reason string) TranscriptResult {
	return TranscriptResult{FailureReason: reason}
}

// OK reports whether the result carries a transcript
func (r TranscriptResult) OK() bool {
	return r.Text != "" && r.Attempt != nil
}

// VideoRecord is the final unit returned to collaborators: metadata plus
// the transcript resolution outcome for one video
type VideoRecord struct {
	VideoSummary
	Transcript TranscriptResult `json:"transcript"`
}

// Well-known transcript failure reasons
const (
	FailureDisabled = "disabled"
	FailureNotFound = "not_found"
	FailureTimeout  = "timeout"
)
