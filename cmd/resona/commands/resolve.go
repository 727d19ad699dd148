package commands

import (
	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/resona/internal/usecases"
	"github.com/spf13/cobra"
)

var resolveFlags struct {
	defaultSeconds int
	maxSeconds     int
	output         string
}

// resolveResult is what resolve prints.
type resolveResult struct {
	VideoID      string `json:"video_id" yaml:"video_id"`
	StartSeconds int    `json:"start_seconds" yaml:"start_seconds"`
	EndSeconds   int    `json:"end_seconds" yaml:"end_seconds"`
	Duration     int    `json:"duration_seconds" yaml:"duration_seconds"`
	SegmentID    string `json:"segment_id" yaml:"segment_id"`
	SourceURL    string `json:"youtube_link" yaml:"youtube_link"`
	DisplayTime  string `json:"segment_display_time" yaml:"segment_display_time"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve URL",
	Short: "Resolve a YouTube link into a segment window",
	Long: `Resolve a YouTube link into a segment window.

The start comes from the t or start query parameter and the end from end.
The window is capped by --max-seconds.

Examples:
  resona resolve "https://youtu.be/dQw4w9WgXcQ?t=90"
  resona resolve "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10&end=25" -o yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		policy := domain.ClipPolicy{
			DefaultSeconds: resolveFlags.defaultSeconds,
			MaxSeconds:     resolveFlags.maxSeconds,
		}
		if err := policy.Validate(); err != nil {
			return err
		}

		window, err := usecases.NewResolveSegmentImpl(policy, logger).Execute(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return printResult(cmd.OutOrStdout(), resolveFlags.output, resolveResult{
			VideoID:      window.VideoID,
			StartSeconds: window.StartSeconds,
			EndSeconds:   window.EndSeconds,
			Duration:     window.Duration(),
			SegmentID:    window.SegmentID(),
			SourceURL:    window.SourceURL(),
			DisplayTime:  window.DisplayTime(),
		})
	},
}

func init() {
	resolveCmd.Flags().IntVar(&resolveFlags.defaultSeconds, "default-seconds", domain.DefaultClipSeconds, "clip length when the link has no end")
	resolveCmd.Flags().IntVar(&resolveFlags.maxSeconds, "max-seconds", domain.MaxClipSeconds, "maximum clip length")
	resolveCmd.Flags().StringVarP(&resolveFlags.output, "output", "o", "json", "output format (json or yaml)")
}
