package commands

import (
	"errors"

	"github.com/cleitonmarx/resona/internal/common"
	"github.com/spf13/cobra"
)

var compareFlags struct {
	modelFlags
	output string
}

// compareResult is what compare prints.
type compareResult struct {
	ClipA      string  `json:"clip_a" yaml:"clip_a"`
	ClipB      string  `json:"clip_b" yaml:"clip_b"`
	Similarity float64 `json:"similarity" yaml:"similarity"`
}

var compareCmd = &cobra.Command{
	Use:   "compare CLIP_A CLIP_B",
	Short: "Print the cosine similarity of two clips",
	Long: `Embed two local clips with the same model and print the cosine
similarity of their embeddings (1 means identical direction).

Examples:
  resona compare a.mp3 b.mp3`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor, err := compareFlags.extractor(cmd)
		if err != nil {
			return err
		}

		a, err := extractor.Extract(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		b, err := extractor.Extract(cmd.Context(), args[1])
		if err != nil {
			return err
		}

		score, ok := common.CosineSimilarity(a.Vector, b.Vector)
		if !ok {
			return errors.New("embeddings cannot be compared")
		}

		return printResult(cmd.OutOrStdout(), compareFlags.output, compareResult{
			ClipA:      args[0],
			ClipB:      args[1],
			Similarity: score,
		})
	},
}

func init() {
	compareFlags.register(compareCmd)
	compareCmd.Flags().StringVarP(&compareFlags.output, "output", "o", "json", "output format (json or yaml)")
}
