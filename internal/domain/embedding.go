package domain

import (
	"context"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Feature model settings observed in production. Changing any of them changes
// the embedding space, so they are configuration constants rather than
// per-request options.
const (
	DefaultInputRepr        = "mel256"
	DefaultContentType      = "music"
	DefaultEmbeddingSize    = 512
	DefaultTargetSampleRate = 48000
)

var (
	supportedInputReprs     = []string{"linear", "mel128", "mel256"}
	supportedContentTypes   = []string{"music", "env"}
	supportedEmbeddingSizes = []int{512, 6144}
)

// EmbeddingVector is a mean-pooled embedding of one audio clip.
type EmbeddingVector struct {
	Vector []float64
}

// Dimension returns the number of components in the vector.
func (e EmbeddingVector) Dimension() int {
	return len(e.Vector)
}

// ModelParams are the fixed feature model settings.
type ModelParams struct {
	InputRepr        string
	ContentType      string
	EmbeddingSize    int
	TargetSampleRate int
}

// DefaultModelParams returns the mel256/music/512 settings at 48 kHz.
func DefaultModelParams() ModelParams {
	return ModelParams{
		InputRepr:        DefaultInputRepr,
		ContentType:      DefaultContentType,
		EmbeddingSize:    DefaultEmbeddingSize,
		TargetSampleRate: DefaultTargetSampleRate,
	}
}

// Validate checks the params against the values the feature model supports.
func (p ModelParams) Validate() error {
	if !slices.Contains(supportedInputReprs, p.InputRepr) {
		return NewValidationErr(fmt.Sprintf("input representation %q is not supported", p.InputRepr))
	}
	if !slices.Contains(supportedContentTypes, p.ContentType) {
		return NewValidationErr(fmt.Sprintf("content type %q is not supported", p.ContentType))
	}
	if !slices.Contains(supportedEmbeddingSizes, p.EmbeddingSize) {
		return NewValidationErr(fmt.Sprintf("embedding size %d is not supported", p.EmbeddingSize))
	}
	if p.TargetSampleRate <= 0 {
		return NewValidationErr("target sample rate must be positive")
	}
	return nil
}

// AudioClip is a decoded, interleaved sample buffer.
type AudioClip struct {
	Samples    []float32
	SampleRate int
	Channels   int
}

// Duration returns the clip length in seconds.
func (c AudioClip) Duration() float64 {
	if c.SampleRate <= 0 || c.Channels <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.Channels) / float64(c.SampleRate)
}

// FrameEmbeddings is the per-frame output of the feature model.
type FrameEmbeddings struct {
	Frames     [][]float32
	Timestamps []float64
}

// ClipDecoder turns an audio file into samples.
type ClipDecoder interface {
	// Decode reads the file at path without modifying it.
	Decode(ctx context.Context, path string) (AudioClip, error)
}

// FeatureModel computes frame-level embeddings for decoded audio.
type FeatureModel interface {
	Embed(ctx context.Context, clip AudioClip, params ModelParams) (FrameEmbeddings, error)
}

// ModelCatalog lists the model configurations loaded on the feature model server.
type ModelCatalog interface {
	ListModels(ctx context.Context) ([]ModelParams, error)
}

// Matches reports whether both params select the same model. The target
// sample rate is a decoding concern and is not compared.
func (p ModelParams) Matches(other ModelParams) bool {
	return p.InputRepr == other.InputRepr &&
		p.ContentType == other.ContentType &&
		p.EmbeddingSize == other.EmbeddingSize
}

// MeanPool averages frames component-wise. All frames must have the same
// width; the result has that width regardless of the frame count.
func MeanPool(frames [][]float32) ([]float64, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames to pool")
	}
	width := len(frames[0])
	if width == 0 {
		return nil, fmt.Errorf("frames are empty")
	}

	sum := make([]float64, width)
	row := make([]float64, width)
	for i, frame := range frames {
		if len(frame) != width {
			return nil, fmt.Errorf("frame %d has %d components, expected %d", i, len(frame), width)
		}
		for j, v := range frame {
			row[j] = float64(v)
		}
		floats.Add(sum, row)
	}
	floats.Scale(1/float64(len(frames)), sum)

	for i, v := range sum {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("component %d is not finite", i)
		}
	}
	return sum, nil
}
