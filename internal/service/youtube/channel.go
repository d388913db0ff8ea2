package youtube

import (
	"context"

	"github.com/okabe-dev/yt-scribe/internal/errors"
	"github.com/okabe-dev/yt-scribe/internal/model"
)

// ResolveChannel turns a raw identifier into a canonical channel ID.
// Canonical IDs are returned unchanged without a network call; handles and
// free text go through a single-result channel search. No retries here;
// retry policy belongs to the orchestrator boundary.
func (s *youTubeService) ResolveChannel(ctx context.Context, rawIdentifier string) (string, error) {
	// Input validation
	if rawIdentifier == "" {
		return "", errors.New(errors.CodeInvalidArg, "channel identifier is required")
	}

	identifier := model.ParseChannelIdentifier(rawIdentifier)

	// Resolution is idempotent for canonical IDs
	if identifier.Kind == model.IdentifierCanonicalID {
		return identifier.Value, nil
	}

	// Handle marker already stripped by the parser; both remaining kinds
	// become a name search requesting exactly one channel result
	items, err := s.api.SearchChannels(ctx, identifier.Value, 1)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeUpstream, "channel search failed")
	}

	if len(items) == 0 {
		return "", errors.New(errors.CodeNotFound, "no channel found for "+rawIdentifier)
	}

	result := items[0]
	if result.Id == nil || result.Id.ChannelId == "" {
		return "", errors.New(errors.CodeUpstream, "channel search returned a result without a channel ID")
	}

	return result.Id.ChannelId, nil
}
