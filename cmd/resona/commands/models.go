package commands

import (
	"github.com/cleitonmarx/resona/internal/usecases"
	"github.com/spf13/cobra"
)

var modelsFlags struct {
	modelFlags
	output string
}

type modelEntry struct {
	InputRepr     string `json:"input_repr" yaml:"input_repr"`
	ContentType   string `json:"content_type" yaml:"content_type"`
	EmbeddingSize int    `json:"embedding_size" yaml:"embedding_size"`
	Active        bool   `json:"active" yaml:"active"`
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the model configurations loaded on the feature model server",
	Long: `List the model configurations loaded on the feature model server.

The configuration selected by --input-repr, --content-type and
--embedding-size is marked active.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := modelsFlags.params()
		if err != nil {
			return err
		}
		client, err := modelsFlags.modelClient(cmd)
		if err != nil {
			return err
		}

		models, err := usecases.NewListAvailableModelsImpl(client, params).Query(cmd.Context())
		if err != nil {
			return err
		}

		entries := make([]modelEntry, 0, len(models))
		for _, m := range models {
			entries = append(entries, modelEntry{
				InputRepr:     m.Params.InputRepr,
				ContentType:   m.Params.ContentType,
				EmbeddingSize: m.Params.EmbeddingSize,
				Active:        m.Active,
			})
		}
		return printResult(cmd.OutOrStdout(), modelsFlags.output, entries)
	},
}

func init() {
	modelsFlags.register(modelsCmd)
	modelsCmd.Flags().StringVarP(&modelsFlags.output, "output", "o", "json", "output format (json or yaml)")
}
