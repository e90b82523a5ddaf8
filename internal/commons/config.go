package commons

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"dishpatch/internal/config"
)

type fileConfig struct {
	Server struct {
		Port            int    `yaml:"port"`
		ShutdownTimeout string `yaml:"shutdownTimeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// File values win over env; config.Load fills whatever the file omits.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if fc.Server.Port != 0 {
		cfg.Server.Port = fc.Server.Port
	}
	if fc.Server.ShutdownTimeout != "" {
		timeout, err := time.ParseDuration(fc.Server.ShutdownTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing shutdownTimeout: %w", err)
		}
		cfg.Server.ShutdownTimeout = timeout
	}
	if fc.Log.Level != "" {
		cfg.Log.Level = fc.Log.Level
	}
	if fc.Log.Format != "" {
		cfg.Log.Format = fc.Log.Format
	}

	return cfg, nil
}
