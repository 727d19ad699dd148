package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipPolicy_Resolve(t *testing.T) {
	policy := DefaultClipPolicy()

	tests := map[string]struct {
		url            string
		expectedWindow SegmentWindow
	}{
		"watch-url-without-time": {
			url:            "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 0, EndSeconds: 20},
		},
		"plain-seconds-start": {
			url:            "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=90",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 90, EndSeconds: 110},
		},
		"start-and-end-under-cap": {
			url:            "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10s&end=25s",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 10, EndSeconds: 25},
		},
		"end-clamped-to-max": {
			url:            "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10s&end=40s",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 10, EndSeconds: 30},
		},
		"end-before-start-ignored": {
			url:            "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10s&end=5s",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 10, EndSeconds: 30},
		},
		"end-equal-to-start-ignored": {
			url:            "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10&end=10",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 10, EndSeconds: 30},
		},
		"clock-time-start": {
			url:            "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=1h2m3s",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 3723, EndSeconds: 3743},
		},
		"minutes-and-seconds-start": {
			url:            "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=1m30s",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 90, EndSeconds: 110},
		},
		"negative-start-reset": {
			url:            "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=-15",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 0, EndSeconds: 20},
		},
		"unparseable-start-treated-as-absent": {
			url:            "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=abc&end=50",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 0, EndSeconds: 20},
		},
		"end-without-start-ignored": {
			url:            "https://www.youtube.com/watch?v=dQw4w9WgXcQ&end=50",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 0, EndSeconds: 20},
		},
		"unparseable-end-treated-as-absent": {
			url:            "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=30&end=soon",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 30, EndSeconds: 50},
		},
		"start-alias": {
			url:            "https://www.youtube.com/watch?v=dQw4w9WgXcQ&start=40",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 40, EndSeconds: 60},
		},
		"short-link": {
			url:            "https://youtu.be/dQw4w9WgXcQ?t=42",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 42, EndSeconds: 62},
		},
		"embed-path": {
			url:            "https://www.youtube.com/embed/dQw4w9WgXcQ?start=5&end=12",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 5, EndSeconds: 12},
		},
		"shorts-path": {
			url:            "https://youtube.com/shorts/dQw4w9WgXcQ",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 0, EndSeconds: 20},
		},
		"mobile-host-without-scheme": {
			url:            "m.youtube.com/watch?v=dQw4w9WgXcQ&t=3",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 3, EndSeconds: 23},
		},
		"surrounding-whitespace": {
			url:            "  https://youtu.be/dQw4w9WgXcQ  ",
			expectedWindow: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 0, EndSeconds: 20},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			window, err := policy.Resolve(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedWindow, window)
			assert.Greater(t, window.EndSeconds, window.StartSeconds)
			assert.LessOrEqual(t, window.Duration(), policy.MaxSeconds)
		})
	}
}

func TestClipPolicy_Resolve_InvalidReference(t *testing.T) {
	policy := DefaultClipPolicy()

	tests := map[string]string{
		"empty":              "",
		"blank":              "   ",
		"unknown-host":       "https://vimeo.com/watch?v=dQw4w9WgXcQ",
		"missing-video-id":   "https://www.youtube.com/watch?t=30",
		"short-id":           "https://www.youtube.com/watch?v=abc",
		"long-id":            "https://www.youtube.com/watch?v=dQw4w9WgXcQQ",
		"invalid-characters": "https://www.youtube.com/watch?v=dQw4w9WgX!Q",
		"short-link-no-path": "https://youtu.be/",
		"channel-page":       "https://www.youtube.com/@somechannel",
		"not-a-url":          "just some words",
		"malformed-url":      "https://www.youtube.com/watch?v=%zz",
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			window, err := policy.Resolve(raw)
			var invalid *InvalidReferenceErr
			assert.True(t, errors.As(err, &invalid), "expected InvalidReferenceErr, got %v", err)
			assert.Equal(t, SegmentWindow{}, window)
		})
	}
}

func TestClipPolicy_Resolve_Idempotent(t *testing.T) {
	policy := DefaultClipPolicy()
	raw := "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10s&end=40s"

	first, err := policy.Resolve(raw)
	require.NoError(t, err)
	second, err := policy.Resolve(raw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestClipPolicy_Window(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	tests := map[string]struct {
		policy   ClipPolicy
		ref      SegmentReference
		expected SegmentWindow
	}{
		"default-longer-than-max": {
			policy:   ClipPolicy{DefaultSeconds: 30, MaxSeconds: 20},
			ref:      SegmentReference{VideoID: "dQw4w9WgXcQ", Start: intPtr(5)},
			expected: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 5, EndSeconds: 25},
		},
		"default-longer-than-max-without-start": {
			policy:   ClipPolicy{DefaultSeconds: 30, MaxSeconds: 20},
			ref:      SegmentReference{VideoID: "dQw4w9WgXcQ"},
			expected: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 0, EndSeconds: 20},
		},
		"wider-max-honours-end": {
			policy:   ClipPolicy{DefaultSeconds: 20, MaxSeconds: 30},
			ref:      SegmentReference{VideoID: "dQw4w9WgXcQ", Start: intPtr(10), End: intPtr(40)},
			expected: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 10, EndSeconds: 40},
		},
		"end-ignored-without-start": {
			policy:   DefaultClipPolicy(),
			ref:      SegmentReference{VideoID: "dQw4w9WgXcQ", End: intPtr(40)},
			expected: SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 0, EndSeconds: 20},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.policy.Window(tt.ref))
		})
	}
}

func TestParseSegmentReference_Ignored(t *testing.T) {
	ref, err := ParseSegmentReference("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=later")
	require.NoError(t, err)

	assert.Equal(t, "dQw4w9WgXcQ", ref.VideoID)
	assert.Nil(t, ref.Start)
	assert.Nil(t, ref.End)
	assert.Len(t, ref.Ignored, 1)
	assert.Contains(t, ref.Ignored[0], "t=later")
}

func TestClipPolicy_Validate(t *testing.T) {
	assert.NoError(t, DefaultClipPolicy().Validate())
	assert.Error(t, ClipPolicy{DefaultSeconds: 0, MaxSeconds: 20}.Validate())
	assert.Error(t, ClipPolicy{DefaultSeconds: 20, MaxSeconds: -1}.Validate())
}

func TestSegmentWindow_Helpers(t *testing.T) {
	w := SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 75, EndSeconds: 95}

	assert.Equal(t, 20, w.Duration())
	assert.Equal(t, "01:15 - 01:35", w.DisplayTime())
	assert.Equal(t, "yt_dQw4w9WgXcQ_75_95", w.SegmentID())
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", w.SourceURL())
}
