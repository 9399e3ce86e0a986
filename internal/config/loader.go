package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// ToolConfig is the subset of Config needed by the offline commands
// (migrate, seeder). It reads the same file and variables as Config.
type ToolConfig struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config
	if err := read(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// LoadTool reads only the database and log sections, so offline commands run
// without auth or model credentials.
func LoadTool() (*ToolConfig, error) {
	var cfg ToolConfig
	if err := read(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func read(dst any) error {
	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = defaultConfigPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, dst); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicitPath:
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(dst); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}
