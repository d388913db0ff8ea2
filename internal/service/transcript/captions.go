package transcript

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/okabe-dev/yt-scribe/internal/errors"
	"github.com/okabe-dev/yt-scribe/internal/model"
	"github.com/okabe-dev/yt-scribe/internal/service/youtube"
)

const timedtextEndpoint = "https://video.google.com/timedtext"

// TrackLister enumerates caption tracks through the Data API captions
// endpoint (implemented by the youtube service)
type TrackLister interface {
	ListCaptionTracks(ctx context.Context, videoID string) ([]youtube.CaptionTrack, error)
}

// captionsSource is the secondary transcript source. It enumerates tracks
// through the caption-listing endpoint keyed by video ID and fetches raw
// caption content from the classic timedtext endpoint. Some content
// (notably short-form videos) exposes captions only through this path.
type captionsSource struct {
	lister     TrackLister
	httpClient *http.Client
}

// NewCaptionsSource creates the secondary transcript Source
func NewCaptionsSource(lister TrackLister, httpClient *http.Client) Source {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &captionsSource{lister: lister, httpClient: httpClient}
}

// ListTracks enumerates caption tracks via the caption-listing endpoint
func (s *captionsSource) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	captionTracks, err := s.lister.ListCaptionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if len(captionTracks) == 0 {
		return nil, errors.New(errors.CodeNotFound, "no caption tracks listed for this video")
	}

	tracks := make([]Track, 0, len(captionTracks))
	for _, caption := range captionTracks {
		kind := model.TranscriptManual
		if caption.Generated {
			kind = model.TranscriptGenerated
		}
		tracks = append(tracks, Track{
			Language: caption.Language,
			Kind:     kind,
			BaseURL:  contentURL(videoID, caption),
		})
	}

	return tracks, nil
}

// FetchTrack downloads raw caption content for a track as plain text
func (s *captionsSource) FetchTrack(ctx context.Context, track Track) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, track.BaseURL, nil)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "failed to build caption content request")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeUpstream, "caption content request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New(errors.CodeUpstream, fmt.Sprintf("caption content request returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeUpstream, "failed to read caption content")
	}

	text, err := flattenTimedtextXML(body)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeUpstream, "failed to parse caption content")
	}
	if text == "" {
		return "", errors.New(errors.CodeNotFound, "caption track is empty")
	}

	return text, nil
}

// TranslateTrack is not supported by this source; the engine treats it
// like "no transcript found" and moves on
func (s *captionsSource) TranslateTrack(ctx context.Context, track Track, targetLanguage string) (string, error) {
	return "", errors.New(errors.CodeTranslationUnavailable, "caption listing source cannot translate")
}

// contentURL builds the classic timedtext content URL for a listed track
func contentURL(videoID string, caption youtube.CaptionTrack) string {
	query := url.Values{}
	query.Set("v", videoID)
	query.Set("lang", caption.Language)
	if caption.Generated {
		query.Set("kind", "asr")
	}
	return timedtextEndpoint + "?" + query.Encode()
}

// timedtextXML is the classic timedtext XML document
type timedtextXML struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Content string `xml:",chardata"`
	} `xml:"text"`
}

// flattenTimedtextXML joins all caption lines with single spaces
func flattenTimedtextXML(body []byte) (string, error) {
	var doc timedtextXML
	if err := xml.Unmarshal(body, &doc); err != nil {
		return "", err
	}

	var parts []string
	for _, line := range doc.Texts {
		text := strings.TrimSpace(line.Content)
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " "), nil
}
