package media

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/resona/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/sirupsen/logrus"
)

// probeResult is the subset of ffprobe's JSON output the decoder uses.
type probeResult struct {
	Streams []probeStream `json:"streams"`
}

type probeStream struct {
	CodecType  string `json:"codec_type"`
	CodecName  string `json:"codec_name"`
	SampleRate string `json:"sample_rate"`
	Channels   int    `json:"channels"`
}

// FFmpegDecoder decodes audio files into mono float32 samples at their native
// sample rate. Resampling is left to the feature model.
type FFmpegDecoder struct {
	runner      CommandRunner
	ffmpegPath  string
	ffprobePath string
	maxSeconds  int
}

// NewFFmpegDecoder creates a new FFmpegDecoder.
func NewFFmpegDecoder(runner CommandRunner, ffmpegPath, ffprobePath string) FFmpegDecoder {
	return FFmpegDecoder{
		runner:      runner,
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
	}
}

// WithMaxSeconds returns a decoder that stops after the first n seconds of
// audio. Zero or less decodes the whole stream.
func (d FFmpegDecoder) WithMaxSeconds(n int) FFmpegDecoder {
	d.maxSeconds = n
	return d
}

// Decode probes the first audio stream of path and decodes it.
func (d FFmpegDecoder) Decode(ctx context.Context, path string) (domain.AudioClip, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	sampleRate, err := d.probeSampleRate(spanCtx, path)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AudioClip{}, err
	}

	stdout, stderr, err := d.runner.Run(spanCtx, d.ffmpegPath, d.decodeArgs(path)...)
	if err != nil {
		err = fmt.Errorf("ffmpeg failed: %s: %w", strings.TrimSpace(string(stderr)), err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AudioClip{}, err
	}

	samples, err := decodeFloat32LE(stdout)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AudioClip{}, err
	}

	return domain.AudioClip{
		Samples:    samples,
		SampleRate: sampleRate,
		Channels:   1,
	}, nil
}

func (d FFmpegDecoder) decodeArgs(path string) []string {
	args := []string{
		"-hide_banner", "-nostdin", "-v", "error",
		"-i", path,
		"-map", "0:a:0",
		"-vn",
		"-ac", "1",
	}
	if d.maxSeconds > 0 {
		args = append(args, "-t", strconv.Itoa(d.maxSeconds))
	}
	return append(args, "-f", "f32le", "pipe:1")
}

func (d FFmpegDecoder) probeSampleRate(ctx context.Context, path string) (int, error) {
	stdout, stderr, err := d.runner.Run(ctx, d.ffprobePath,
		"-v", "error",
		"-print_format", "json",
		"-show_streams",
		"-select_streams", "a:0",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %s: %w", strings.TrimSpace(string(stderr)), err)
	}

	var result probeResult
	if err := json.Unmarshal(stdout, &result); err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	for _, stream := range result.Streams {
		if stream.CodecType != "audio" {
			continue
		}
		rate, err := strconv.Atoi(stream.SampleRate)
		if err != nil || rate <= 0 {
			return 0, fmt.Errorf("audio stream has invalid sample rate %q", stream.SampleRate)
		}
		return rate, nil
	}
	return 0, fmt.Errorf("%s has no audio stream", path)
}

// decodeFloat32LE converts raw little-endian float32 PCM into samples.
func decodeFloat32LE(raw []byte) ([]float32, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("unexpected f32le stream length %d", len(raw))
	}
	samples := make([]float32, len(raw)/4)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return samples, nil
}

// InitClipDecoder initializes the ffmpeg decoder and registers it in the dependency container.
type InitClipDecoder struct {
	Logger      *logrus.Logger `resolve:""`
	FFmpegPath  string         `config:"FFMPEG_PATH" default:"ffmpeg"`
	FFprobePath string         `config:"FFPROBE_PATH" default:"ffprobe"`
	MaxSeconds  int            `config:"CLIP_MAX_SECONDS" default:"20"`
}

// Initialize registers the decoder as the domain.ClipDecoder.
func (icd InitClipDecoder) Initialize(ctx context.Context) (context.Context, error) {
	decoder := NewFFmpegDecoder(ExecRunner{Logger: icd.Logger}, icd.FFmpegPath, icd.FFprobePath).
		WithMaxSeconds(icd.MaxSeconds)
	depend.Register[domain.ClipDecoder](decoder)
	return ctx, nil
}
