package domain

import "context"

// FetchRequest asks the media fetcher for the audio of one segment window.
type FetchRequest struct {
	Window    SegmentWindow
	OutputDir string
	// BaseName is the file name without extension; it must be unique per request.
	BaseName string
}

// FetchedClip describes the audio file produced for a FetchRequest.
type FetchedClip struct {
	Path         string
	Title        string
	Artist       string
	ThumbnailURL string
	SourceURL    string
}

// MediaFetcher downloads and trims the audio of a segment window.
type MediaFetcher interface {
	// Fetch fails with ReferenceUnavailableErr when the video exists but cannot
	// be downloaded, and with InvalidReferenceErr when the reference is rejected.
	Fetch(ctx context.Context, req FetchRequest) (FetchedClip, error)
}

// AudioTags holds the descriptive tags embedded in an audio file.
type AudioTags struct {
	Title  string
	Artist string
	Album  string
}

// AudioTagReader reads embedded tags from an audio file.
type AudioTagReader interface {
	ReadTags(path string) (AudioTags, error)
}
