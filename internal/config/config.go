// Package config backs the CLI/config surface of spec.md §6 with
// viper: defaults, IR_-prefixed env vars, and an optional ir.yaml all
// merge into one Config. Command-line flags are not bound here.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/conduit-lang/irsearch/internal/ierrors"
)

// Config mirrors the recognised CLI options named in spec.md §6.
type Config struct {
	Dataset string // "zh" | "cw"
	Engine  string // "tfidf" | "boolean" | "lsa" | "embeddings"
	Method  string // "ltc.ltc" | "ltu.ltc"
	TopK    int

	JSONPath      string
	CachePath     string
	StopwordsPath string
}

// Load builds a Config from defaults, an optional config file, and
// IR_-prefixed environment variables.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("IR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("dataset", "zh")
	v.SetDefault("engine", "tfidf")
	v.SetDefault("method", "ltc.ltc")
	v.SetDefault("top_k", 10)
	v.SetDefault("cache_path", "index.bin")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, ierrors.Wrap(ierrors.Config, "read config file", err)
		}
	}

	cfg := &Config{
		Dataset:       v.GetString("dataset"),
		Engine:        v.GetString("engine"),
		Method:        v.GetString("method"),
		TopK:          v.GetInt("top_k"),
		JSONPath:      v.GetString("json_path"),
		CachePath:     v.GetString("cache_path"),
		StopwordsPath: v.GetString("stopwords_path"),
	}
	return cfg, cfg.Validate()
}

// Validate enforces the engine/method enumerations are recognised
// ahead of time (a ConfigError is a programmer-level, fast-fail fault
// per spec.md §7).
func (c *Config) Validate() error {
	switch c.Engine {
	case "tfidf", "boolean", "lsa", "embeddings":
	default:
		return ierrors.ConfigError("unknown engine: " + c.Engine)
	}
	switch c.Method {
	case "ltc.ltc", "ltu.ltc":
	default:
		return ierrors.ConfigError("unknown method: " + c.Method)
	}
	if c.TopK < 1 {
		return ierrors.ConfigError("top_k must be >= 1")
	}
	return nil
}
