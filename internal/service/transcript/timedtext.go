package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/okabe-dev/yt-scribe/internal/errors"
	"github.com/okabe-dev/yt-scribe/internal/model"
)

const (
	playerEndpoint = "https://www.youtube.com/youtubei/v1/player"

	// Public web client identity for the unauthenticated player endpoint
	innertubeClientName    = "WEB"
	innertubeClientVersion = "2.20240726.00.00"
)

// innertubeSource is the primary transcript source. It speaks YouTube's
// unofficial player endpoint to enumerate caption tracks and the timedtext
// endpoint (json3 format) to fetch their content, the same path the
// youtube-transcript-api library takes.
type innertubeSource struct {
	httpClient *http.Client
	playerURL  string
}

// NewInnertubeSource creates the primary transcript Source
func NewInnertubeSource(httpClient *http.Client) Source {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &innertubeSource{httpClient: httpClient, playerURL: playerEndpoint}
}

// playerRequest is the minimal innertube player request body
type playerRequest struct {
	Context struct {
		Client struct {
			ClientName    string `json:"clientName"`
			ClientVersion string `json:"clientVersion"`
		} `json:"client"`
	} `json:"context"`
	VideoID string `json:"videoId"`
}

// playerResponse is the subset of the player payload we consume
type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions struct {
		TracklistRenderer struct {
			CaptionTracks []struct {
				BaseURL        string `json:"baseUrl"`
				LanguageCode   string `json:"languageCode"`
				Kind           string `json:"kind"` // "asr" for generated tracks
				IsTranslatable bool   `json:"isTranslatable"`
			} `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

// ListTracks enumerates the caption tracks the player exposes for a video
func (s *innertubeSource) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	var reqBody playerRequest
	reqBody.Context.Client.ClientName = innertubeClientName
	reqBody.Context.Client.ClientVersion = innertubeClientVersion
	reqBody.VideoID = videoID

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to encode player request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.playerURL, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to build player request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "player request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.CodeUpstream, fmt.Sprintf("player request returned status %d", resp.StatusCode))
	}

	var player playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "failed to parse player response")
	}

	rawTracks := player.Captions.TracklistRenderer.CaptionTracks
	if len(rawTracks) == 0 {
		if player.PlayabilityStatus.Status != "" && player.PlayabilityStatus.Status != "OK" {
			return nil, errors.New(errors.CodeDisabled, "transcripts are disabled for this video")
		}
		return nil, errors.New(errors.CodeNotFound, "no transcript available for this video")
	}

	tracks := make([]Track, 0, len(rawTracks))
	for _, raw := range rawTracks {
		kind := model.TranscriptManual
		if raw.Kind == "asr" {
			kind = model.TranscriptGenerated
		}
		tracks = append(tracks, Track{
			Language:     raw.LanguageCode,
			Kind:         kind,
			Translatable: raw.IsTranslatable,
			BaseURL:      raw.BaseURL,
		})
	}

	return tracks, nil
}

// FetchTrack downloads a track's content as plain text
func (s *innertubeSource) FetchTrack(ctx context.Context, track Track) (string, error) {
	return s.fetchTimedtext(ctx, track.BaseURL+"&fmt=json3")
}

// TranslateTrack downloads a track automatically translated into targetLanguage
func (s *innertubeSource) TranslateTrack(ctx context.Context, track Track, targetLanguage string) (string, error) {
	if !track.Translatable {
		return "", errors.New(errors.CodeTranslationUnavailable, "track does not support translation")
	}
	return s.fetchTimedtext(ctx, track.BaseURL+"&fmt=json3&tlang="+targetLanguage)
}

// timedtextResponse is the json3 timedtext payload
type timedtextResponse struct {
	Events []struct {
		Segs []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

// fetchTimedtext retrieves a timedtext document and flattens it to
// space-joined plain text
func (s *innertubeSource) fetchTimedtext(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "failed to build timedtext request")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeUpstream, "timedtext request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New(errors.CodeUpstream, fmt.Sprintf("timedtext request returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeUpstream, "failed to read timedtext response")
	}

	var timedtext timedtextResponse
	if err := json.Unmarshal(body, &timedtext); err != nil {
		return "", errors.Wrap(err, errors.CodeUpstream, "failed to parse timedtext response")
	}

	return flattenEvents(timedtext), nil
}

// flattenEvents joins all caption segments with single spaces
func flattenEvents(timedtext timedtextResponse) string {
	var parts []string
	for _, event := range timedtext.Events {
		for _, seg := range event.Segs {
			text := strings.TrimSpace(seg.UTF8)
			if text == "" {
				continue
			}
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
