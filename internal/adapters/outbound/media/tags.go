package media

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/dhowden/tag"
	"github.com/spf13/afero"
)

// TagReader reads ID3, MP4, FLAC and Ogg tags.
type TagReader struct {
	fs afero.Fs
}

// NewTagReader creates a TagReader over fs.
func NewTagReader(fs afero.Fs) TagReader {
	return TagReader{fs: fs}
}

// ReadTags returns the title, artist and album stored in the file.
func (tr TagReader) ReadTags(path string) (domain.AudioTags, error) {
	f, err := tr.fs.Open(path)
	if err != nil {
		return domain.AudioTags{}, err
	}
	defer f.Close() //nolint:errcheck

	m, err := tag.ReadFrom(f)
	if err != nil {
		return domain.AudioTags{}, fmt.Errorf("read tags from %s: %w", path, err)
	}

	return domain.AudioTags{
		Title:  m.Title(),
		Artist: m.Artist(),
		Album:  m.Album(),
	}, nil
}

// InitAudioTagReader registers the TagReader as the domain.AudioTagReader.
type InitAudioTagReader struct{}

// Initialize registers the tag reader in the dependency container.
func (iatr InitAudioTagReader) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.AudioTagReader](NewTagReader(afero.NewOsFs()))
	return ctx, nil
}
