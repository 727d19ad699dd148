package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	// DefaultClipSeconds is the clip length used when the caller does not choose one.
	DefaultClipSeconds = 20
	// MaxClipSeconds is the longest clip a caller may request.
	MaxClipSeconds = 20
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// watchHosts are the hosts serving the /watch?v=<id> and /embed/<id> forms.
var watchHosts = map[string]bool{
	"youtube.com":              true,
	"www.youtube.com":          true,
	"m.youtube.com":            true,
	"music.youtube.com":        true,
	"youtube-nocookie.com":     true,
	"www.youtube-nocookie.com": true,
}

// shortLinkHosts serve the youtu.be/<id> form.
var shortLinkHosts = map[string]bool{
	"youtu.be":     true,
	"www.youtu.be": true,
}

// idPathPrefixes are path segments followed by a video id.
var idPathPrefixes = []string{"embed", "shorts", "live", "v"}

// SegmentWindow identifies a bounded segment of a video.
// EndSeconds is always greater than StartSeconds.
type SegmentWindow struct {
	VideoID      string
	StartSeconds int
	EndSeconds   int
}

// Duration returns the window length in seconds.
func (w SegmentWindow) Duration() int {
	return w.EndSeconds - w.StartSeconds
}

// SegmentID returns a stable identifier for the segment.
func (w SegmentWindow) SegmentID() string {
	return fmt.Sprintf("yt_%s_%d_%d", w.VideoID, w.StartSeconds, w.EndSeconds)
}

// SourceURL returns the canonical watch URL of the video.
func (w SegmentWindow) SourceURL() string {
	return "https://www.youtube.com/watch?v=" + w.VideoID
}

// DisplayTime renders the window as "MM:SS - MM:SS".
func (w SegmentWindow) DisplayTime() string {
	return fmt.Sprintf("%s - %s", formatMinutesSeconds(w.StartSeconds), formatMinutesSeconds(w.EndSeconds))
}

func formatMinutesSeconds(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// SegmentReference is what could be read from a raw reference string before any
// clamping policy is applied. Start and End are nil when absent or unparseable.
type SegmentReference struct {
	VideoID string
	Start   *int
	End     *int
	// Ignored lists parameters that were present but could not be parsed.
	Ignored []string
}

// ParseSegmentReference extracts the video id and the optional time parameters
// from a YouTube URL.
func ParseSegmentReference(raw string) (SegmentReference, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return SegmentReference{}, NewInvalidReferenceErr("reference is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return SegmentReference{}, NewInvalidReferenceErr(fmt.Sprintf("reference %q is not a valid URL", raw))
	}

	videoID, ok := extractVideoID(u)
	if !ok {
		return SegmentReference{}, NewInvalidReferenceErr(fmt.Sprintf("could not find a video id in %q", raw))
	}

	ref := SegmentReference{VideoID: videoID}
	query := u.Query()

	startParam := "t"
	startValue := query.Get(startParam)
	if startValue == "" {
		startParam = "start"
		startValue = query.Get(startParam)
	}
	if startValue == "" {
		return ref, nil
	}

	start, err := ParseTimecode(startValue)
	if err != nil {
		ref.Ignored = append(ref.Ignored, fmt.Sprintf("%s=%s: %v", startParam, startValue, err))
		return ref, nil
	}
	ref.Start = &start

	if endValue := query.Get("end"); endValue != "" {
		end, err := ParseTimecode(endValue)
		if err != nil {
			ref.Ignored = append(ref.Ignored, fmt.Sprintf("end=%s: %v", endValue, err))
			return ref, nil
		}
		ref.End = &end
	}

	return ref, nil
}

func extractVideoID(u *url.URL) (string, bool) {
	host := strings.ToLower(u.Hostname())
	segments := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })

	switch {
	case shortLinkHosts[host]:
		if len(segments) == 0 {
			return "", false
		}
		return validVideoID(segments[0])
	case watchHosts[host]:
		if id := u.Query().Get("v"); id != "" {
			return validVideoID(id)
		}
		for i := 0; i+1 < len(segments); i++ {
			for _, prefix := range idPathPrefixes {
				if segments[i] == prefix {
					return validVideoID(segments[i+1])
				}
			}
		}
	}
	return "", false
}

func validVideoID(candidate string) (string, bool) {
	if !videoIDPattern.MatchString(candidate) {
		return "", false
	}
	return candidate, true
}

// ClipPolicy bounds the segment windows derived from references.
type ClipPolicy struct {
	DefaultSeconds int
	MaxSeconds     int
}

// DefaultClipPolicy returns the 20s default / 20s maximum policy.
func DefaultClipPolicy() ClipPolicy {
	return ClipPolicy{DefaultSeconds: DefaultClipSeconds, MaxSeconds: MaxClipSeconds}
}

// Validate checks that both durations are positive.
func (p ClipPolicy) Validate() error {
	if p.DefaultSeconds <= 0 {
		return NewValidationErr("default clip duration must be positive")
	}
	if p.MaxSeconds <= 0 {
		return NewValidationErr("maximum clip duration must be positive")
	}
	return nil
}

// Resolve parses raw and applies the policy to produce a window.
func (p ClipPolicy) Resolve(raw string) (SegmentWindow, error) {
	ref, err := ParseSegmentReference(raw)
	if err != nil {
		return SegmentWindow{}, err
	}
	return p.Window(ref), nil
}

// Window derives the final start and end offsets for ref.
func (p ClipPolicy) Window(ref SegmentReference) SegmentWindow {
	length := min(p.DefaultSeconds, p.MaxSeconds)

	if ref.Start == nil || *ref.Start < 0 {
		return SegmentWindow{VideoID: ref.VideoID, StartSeconds: 0, EndSeconds: length}
	}

	start := *ref.Start
	end := start + p.DefaultSeconds
	if ref.End != nil && *ref.End > start {
		end = *ref.End
	}
	if end-start > p.MaxSeconds {
		end = start + p.MaxSeconds
	}
	if end <= start {
		end = start + length
	}

	return SegmentWindow{VideoID: ref.VideoID, StartSeconds: start, EndSeconds: end}
}
