package commands

import (
	"fmt"
	"time"

	"github.com/cleitonmarx/resona/internal/adapters/outbound/media"
	"github.com/cleitonmarx/resona/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/resona/internal/telemetry"
	"github.com/cleitonmarx/resona/internal/usecases"
	"github.com/spf13/cobra"
)

// modelFlags are shared by the commands that call the feature model.
type modelFlags struct {
	modelHost   string
	ffmpegPath  string
	ffprobePath string
	inputRepr   string
	contentType string
	size        int
	maxSeconds  int
	timeout     time.Duration
}

func (f *modelFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.modelHost, "model-host", "http://localhost:8501", "feature model server URL (env FEATURE_MODEL_HOST)")
	cmd.Flags().StringVar(&f.ffmpegPath, "ffmpeg", "ffmpeg", "ffmpeg binary (env FFMPEG_PATH)")
	cmd.Flags().StringVar(&f.ffprobePath, "ffprobe", "ffprobe", "ffprobe binary (env FFPROBE_PATH)")
	cmd.Flags().StringVar(&f.inputRepr, "input-repr", domain.DefaultInputRepr, "input representation (linear, mel128, mel256)")
	cmd.Flags().StringVar(&f.contentType, "content-type", domain.DefaultContentType, "model content type (music or env)")
	cmd.Flags().IntVar(&f.size, "embedding-size", domain.DefaultEmbeddingSize, "embedding size (512 or 6144)")
	cmd.Flags().IntVar(&f.maxSeconds, "max-seconds", domain.MaxClipSeconds, "decode at most this many seconds of each clip, 0 for all (env CLIP_MAX_SECONDS)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 2*time.Minute, "extraction timeout")
}

func (f *modelFlags) params() (domain.ModelParams, error) {
	params := domain.ModelParams{
		InputRepr:        f.inputRepr,
		ContentType:      f.contentType,
		EmbeddingSize:    f.size,
		TargetSampleRate: domain.DefaultTargetSampleRate,
	}
	return params, params.Validate()
}

func (f *modelFlags) modelClient(cmd *cobra.Command) (modelrunner.FeatureModelClient, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return modelrunner.FeatureModelClient{}, err
	}
	return modelrunner.NewFeatureModelClient(
		modelrunner.NewFeatureModelAPIClient(f.modelHost, "", telemetry.NewHttpClient(logger, 3, f.timeout)),
	), nil
}

// extractor builds an extractor that talks to the feature model directly.
func (f *modelFlags) extractor(cmd *cobra.Command) (usecases.EmbeddingExtractorImpl, error) {
	params, err := f.params()
	if err != nil {
		return usecases.EmbeddingExtractorImpl{}, err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return usecases.EmbeddingExtractorImpl{}, err
	}
	model, err := f.modelClient(cmd)
	if err != nil {
		return usecases.EmbeddingExtractorImpl{}, err
	}

	decoder := media.NewFFmpegDecoder(media.ExecRunner{Logger: logger}, f.ffmpegPath, f.ffprobePath).
		WithMaxSeconds(f.maxSeconds)
	return usecases.NewEmbeddingExtractorImpl(decoder, model, params), nil
}

var embedFlags struct {
	modelFlags
	output string
}

// embedResult is what embed prints.
type embedResult struct {
	Clip      string    `json:"clip" yaml:"clip"`
	Model     string    `json:"model" yaml:"model"`
	Dimension int       `json:"dimension" yaml:"dimension"`
	Embedding []float64 `json:"embedding" yaml:"embedding"`
}

var embedCmd = &cobra.Command{
	Use:   "embed CLIP",
	Short: "Compute the embedding of a local audio clip",
	Long: `Compute the mean-pooled embedding of a local audio clip.

Examples:
  resona embed clip.mp3
  resona embed clip.wav --input-repr mel128 --content-type env -o yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor, err := embedFlags.extractor(cmd)
		if err != nil {
			return err
		}

		vec, err := extractor.Extract(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		params := extractor.Params()
		return printResult(cmd.OutOrStdout(), embedFlags.output, embedResult{
			Clip:      args[0],
			Model:     fmt.Sprintf("%s/%s/%d", params.InputRepr, params.ContentType, params.EmbeddingSize),
			Dimension: vec.Dimension(),
			Embedding: vec.Vector,
		})
	},
}

func init() {
	embedFlags.register(embedCmd)
	embedCmd.Flags().StringVarP(&embedFlags.output, "output", "o", "json", "output format (json or yaml)")
}
