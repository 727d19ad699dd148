package commands

import (
	"github.com/cleitonmarx/resona/internal/app"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and background workers",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	return app.NewResonaApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
}
