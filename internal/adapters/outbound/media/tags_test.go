package media

import (
	"context"
	"testing"

	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// id3v1 builds a 128-byte ID3v1 tag.
func id3v1(title, artist, album string) []byte {
	field := func(value string, size int) []byte {
		b := make([]byte, size)
		copy(b, value)
		return b
	}
	tag := []byte("TAG")
	tag = append(tag, field(title, 30)...)
	tag = append(tag, field(artist, 30)...)
	tag = append(tag, field(album, 30)...)
	tag = append(tag, field("2024", 4)...)
	tag = append(tag, field("", 30)...)
	return append(tag, 0)
}

func TestTagReader_ReadTags(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := append(make([]byte, 512), id3v1("Clair de Lune", "Debussy", "Suite bergamasque")...)
	require.NoError(t, afero.WriteFile(fs, "tagged.mp3", content, 0o644))
	require.NoError(t, afero.WriteFile(fs, "plain.wav", []byte("not an audio file at all"), 0o644))

	reader := NewTagReader(fs)

	tags, err := reader.ReadTags("tagged.mp3")
	require.NoError(t, err)
	assert.Equal(t, domain.AudioTags{Title: "Clair de Lune", Artist: "Debussy", Album: "Suite bergamasque"}, tags)

	_, err = reader.ReadTags("plain.wav")
	assert.Error(t, err)

	_, err = reader.ReadTags("missing.mp3")
	assert.Error(t, err)
}

func TestInitAudioTagReader_Initialize(t *testing.T) {
	_, err := InitAudioTagReader{}.Initialize(context.Background())
	assert.NoError(t, err)

	reader, err := depend.Resolve[domain.AudioTagReader]()
	assert.NoError(t, err)
	assert.NotNil(t, reader)
}
