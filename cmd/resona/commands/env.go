package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envFlags maps flag names to the environment variables that back them.
// The server reads the same variables through its config providers.
var envFlags = map[string]string{
	"log-level":       "LOG_LEVEL",
	"log-format":      "LOG_FORMAT",
	"model-host":      "FEATURE_MODEL_HOST",
	"ffmpeg":          "FFMPEG_PATH",
	"ffprobe":         "FFPROBE_PATH",
	"default-seconds": "CLIP_DEFAULT_SECONDS",
	"max-seconds":     "CLIP_MAX_SECONDS",
}

func newEnv() *viper.Viper {
	v := viper.New()
	for _, key := range envFlags {
		_ = v.BindEnv(key)
	}
	return v
}

// applyEnv fills the flags of cmd that were not set on the command line from
// their environment variables. Flags win over the environment, which wins over
// flag defaults.
func applyEnv(cmd *cobra.Command, v *viper.Viper) error {
	for name, key := range envFlags {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}
		value := v.GetString(key)
		if value == "" {
			continue
		}
		if err := cmd.Flags().Set(name, value); err != nil {
			return fmt.Errorf("invalid %s=%q for --%s: %w", key, value, name, err)
		}
	}
	return nil
}
