package media

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cleitonmarx/resona/internal/domain"
)

// unavailableMarkers are yt-dlp messages for videos that exist but cannot be downloaded.
var unavailableMarkers = []string{
	"private video",
	"video unavailable",
	"this video is unavailable",
	"sign in to confirm your age",
	"age-restricted",
	"age restricted",
	"available in your country",
	"has been removed",
	"members-only",
	"join this channel to get access",
	"this live event will begin",
	"premieres in",
}

// invalidMarkers are yt-dlp messages for references it does not understand.
var invalidMarkers = []string{
	"unsupported url",
	"incomplete youtube id",
	"is not a valid url",
}

// TranslateFetchError turns a failed yt-dlp run into a typed error. It is the
// only place that knows yt-dlp's error wording.
func TranslateFetchError(stderr string, cause error) error {
	if errors.Is(cause, context.DeadlineExceeded) || errors.Is(cause, context.Canceled) {
		return fmt.Errorf("media download interrupted: %w", cause)
	}

	message := firstErrorLine(stderr)
	lower := strings.ToLower(stderr)

	for _, marker := range unavailableMarkers {
		if strings.Contains(lower, marker) {
			return domain.NewReferenceUnavailableErr(orDefault(message, "video is unavailable"), cause)
		}
	}
	for _, marker := range invalidMarkers {
		if strings.Contains(lower, marker) {
			return domain.NewInvalidReferenceErr(orDefault(message, "reference was rejected by the downloader"))
		}
	}

	if message == "" {
		return fmt.Errorf("media download failed: %w", cause)
	}
	return fmt.Errorf("media download failed: %s: %w", message, cause)
}

// firstErrorLine returns the first "ERROR:" line of stderr without its prefix,
// or the first non-empty line when there is none.
func firstErrorLine(stderr string) string {
	var fallback string
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "ERROR:"); ok {
			return strings.TrimSpace(rest)
		}
		if fallback == "" {
			fallback = line
		}
	}
	return fallback
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
