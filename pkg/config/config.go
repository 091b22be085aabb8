// Package config loads tool configuration from the environment and optional
// config files via viper, decoding it into a typed Config.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the tool-wide settings. Every field has a working default so
// a missing config file is never an error.
type Config struct {
	// CaoBinary is the name or path of the external orchestrator binary.
	CaoBinary string `mapstructure:"cao_binary"`
	// ServerBinary is the name or path of the orchestrator server binary.
	ServerBinary string `mapstructure:"server_binary"`
	// ContextDir overrides the orchestrator's agent-context directory.
	// Empty means the well-known default under the user home directory.
	ContextDir string `mapstructure:"context_dir"`
	// AgentDirs lists extra directories searched for agents in addition to
	// the builtin library. Accepts a comma-separated string from env.
	AgentDirs []string `mapstructure:"agent_dirs"`
	// LogLevel and LogFormat mirror the persistent CLI flags.
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Init registers environment and config-file sources with viper. Called once
// from the command entry point.
func Init() {
	viper.SetEnvPrefix("CAOFORGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("caoforge")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".caoforge"))
	}
	viper.AddConfigPath(".")

	viper.SetDefault("cao_binary", "cao")
	viper.SetDefault("server_binary", "cao-server")
	viper.SetDefault("context_dir", "")
	viper.SetDefault("agent_dirs", []string{})
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("log_format", "text")

	// Missing config file is fine; everything has a default.
	_ = viper.ReadInConfig()
}

// Load decodes the current viper settings into a Config.
func Load() (*Config, error) {
	return decode(viper.AllSettings())
}

func decode(settings map[string]any) (*Config, error) {
	cfg := &Config{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build config decoder")
	}

	if err := decoder.Decode(settings); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	return cfg, nil
}
