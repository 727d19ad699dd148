package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const (
	// UploadDisplayTime is shown for uploads, which are analysed in full.
	UploadDisplayTime = "Full duration"
	// UploadDefaultArtist is used when an upload carries no artist tag.
	UploadDefaultArtist = "Uploaded Audio"
	// UnknownArtist is used when a video has neither artist nor uploader.
	UnknownArtist = "Unknown Artist"
)

// SegmentSource tells where an analysed segment came from.
type SegmentSource string

const (
	SegmentSource_YOUTUBE SegmentSource = "youtube"
	SegmentSource_UPLOAD  SegmentSource = "upload"
)

// SegmentInfo is the descriptive metadata returned with an analysis.
type SegmentInfo struct {
	ID           string
	Source       SegmentSource
	Title        string
	Artist       string
	SourceURL    string
	ThumbnailURL string
	DisplayTime  string
	Features     []string
}

// SegmentAnalysis is the result of analysing one segment.
type SegmentAnalysis struct {
	Segment   SegmentInfo
	Window    *SegmentWindow
	Embedding EmbeddingVector
	Params    ModelParams
	// Similar is always empty: there is no catalog to search yet.
	Similar []SegmentInfo
}

// NewYouTubeSegmentInfo describes a fetched YouTube segment.
func NewYouTubeSegmentInfo(window SegmentWindow, clip FetchedClip) SegmentInfo {
	artist := clip.Artist
	if artist == "" {
		artist = UnknownArtist
	}
	title := clip.Title
	if title == "" {
		title = window.VideoID
	}
	sourceURL := clip.SourceURL
	if sourceURL == "" {
		sourceURL = window.SourceURL()
	}
	return SegmentInfo{
		ID:           window.SegmentID(),
		Source:       SegmentSource_YOUTUBE,
		Title:        title,
		Artist:       artist,
		SourceURL:    sourceURL,
		ThumbnailURL: clip.ThumbnailURL,
		DisplayTime:  window.DisplayTime(),
		Features:     []string{"YouTube Segment", fmt.Sprintf("Duration: %ds", window.Duration())},
	}
}

// NewUploadSegmentInfo describes an uploaded file. Tags take precedence over
// the file name, which is used as uploaded, extension included.
func NewUploadSegmentInfo(filename string, tags AudioTags, uploadedAt time.Time) SegmentInfo {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	title := strings.TrimSpace(tags.Title)
	if title == "" {
		title = base
	}
	artist := strings.TrimSpace(tags.Artist)
	if artist == "" {
		artist = UploadDefaultArtist
	}
	return SegmentInfo{
		ID:          fmt.Sprintf("upload_%s_%d", stem, uploadedAt.Unix()),
		Source:      SegmentSource_UPLOAD,
		Title:       title,
		Artist:      artist,
		DisplayTime: UploadDisplayTime,
		Features:    []string{"Uploaded File", "Local Analysis"},
	}
}
