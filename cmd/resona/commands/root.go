package commands

import (
	"github.com/cleitonmarx/resona/internal/adapters/outbound/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "resona",
	Short: "Resolve YouTube segments and compute audio embeddings",
	Long: `resona turns YouTube links and audio clips into fixed-size embeddings.

Running resona without a subcommand starts the HTTP service.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return applyEnv(cmd, newEnv())
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error) (env LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text or json) (env LOG_FORMAT)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(embedCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(modelsCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger(cmd *cobra.Command) (*logrus.Logger, error) {
	logger, err := log.NewLogger(logLevel, logFormat)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(cmd.ErrOrStderr())
	return logger, nil
}
