package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the pfile configuration file (~/.config/pfile/config.yaml).
// Values only apply where the matching flag was not given.
type Config struct {
	Revision string `yaml:"revision"`
	Output   string `yaml:"output"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogFile   string `yaml:"log_file"`

	ServerAddress string `yaml:"server_address"`
	MaxUploadMB   *int64 `yaml:"max_upload_mb"`

	S3Region string `yaml:"s3_region"`
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pfile", "config.yaml")
}

// LoadConfig reads the config file. A missing file yields a zero Config; a
// malformed one is an error.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func applyGlobalConfig(c *cli.Command, cfg Config, g *globals) {
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		g.logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		g.logFormat = cfg.LogFormat
	}
	if cfg.LogFile != "" && !c.IsSet("log-file") {
		g.logFile = cfg.LogFile
	}
	if cfg.S3Region != "" && !c.IsSet("s3-region") {
		g.s3Region = cfg.S3Region
	}
}

// applyDecodeConfig applies defaults shared by the decoding commands.
func applyDecodeConfig(c *cli.Command, cfg Config, revision, output *string) {
	if revision != nil && cfg.Revision != "" && !c.IsSet("revision") {
		*revision = cfg.Revision
	}
	if output != nil && cfg.Output != "" && !c.IsSet("output") {
		*output = cfg.Output
	}
}

func applyServeConfig(c *cli.Command, cfg Config, addr *string, maxUploadMB *int64) {
	if cfg.ServerAddress != "" && !c.IsSet("addr") {
		*addr = cfg.ServerAddress
	}
	if cfg.MaxUploadMB != nil && !c.IsSet("max-upload-mb") {
		*maxUploadMB = *cfg.MaxUploadMB
	}
}
