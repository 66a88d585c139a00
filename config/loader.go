package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const ENV_PREFIX = "CHECKIN_"
const CONFIG_FILE_ENV = "CHECKIN_CONFIG"

// Load builds a Config by layering, low to high precedence:
//  1. defaults (New())
//  2. YAML file named by CHECKIN_CONFIG, if set
//  3. env vars CHECKIN_* (a .env file in the working directory is read first)
func Load() (*Config, error) {
	// Missing .env is fine.
	_ = godotenv.Load()

	k := koanf.New(".")

	if path := os.Getenv(CONFIG_FILE_ENV); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// CHECKIN_HISTORY_WINDOW -> history_window
	envProvider := env.Provider(ENV_PREFIX, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, ENV_PREFIX))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
