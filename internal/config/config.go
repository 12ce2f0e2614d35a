// Package config loads the service configuration from a YAML file, a .env
// file and SKILLSHEET_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the file values.
const (
	EnvConfigPath   = "SKILLSHEET_CONFIG"
	EnvPort         = "SKILLSHEET_PORT"
	EnvLogLevel     = "SKILLSHEET_LOG_LEVEL"
	EnvLogPretty    = "SKILLSHEET_LOG_PRETTY"
	EnvFontFamily   = "SKILLSHEET_FONT_FAMILY"
	EnvXLSXFileName = "SKILLSHEET_XLSX_FILENAME"
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	API    APIConfig    `yaml:"api"`
	Export ExportConfig `yaml:"export"`
}

type LogConfig struct {
	// Level is a zerolog level name.
	Level string `yaml:"level"`
	// Pretty switches to the human readable console writer.
	Pretty bool `yaml:"pretty"`
}

type APIConfig struct {
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// MaxBodySize bounds uploads and request bodies, in bytes.
	MaxBodySize int `yaml:"max_body_size"`
}

type ExportConfig struct {
	// FontFamily is the font of the generated workbook.
	FontFamily string `yaml:"font_family"`
	// XLSXFileName is the download name of generated workbooks.
	XLSXFileName string `yaml:"xlsx_filename"`
	// XLSXFallbackName is sent to clients that cannot decode UTF-8 file names.
	XLSXFallbackName string `yaml:"xlsx_fallback_name"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		API: APIConfig{
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 15 * time.Second,
			MaxBodySize:  10 << 20, // 10 MiB
		},
		Export: ExportConfig{
			FontFamily:       "游ゴシック",
			XLSXFileName:     "職務経歴書.xlsx",
			XLSXFallbackName: "Resume.xlsx",
		},
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		dec := yaml.NewDecoder(file)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads the given .env files into the process environment.
// Missing files are skipped; variables already set are kept.
func LoadDotEnv(files ...string) error {
	for _, name := range files {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		c.API.Port = port
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogPretty); ok {
		pretty, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogPretty, err)
		}
		c.Log.Pretty = pretty
	}
	if v, ok := lookup(EnvFontFamily); ok {
		c.Export.FontFamily = v
	}
	if v, ok := lookup(EnvXLSXFileName); ok {
		c.Export.XLSXFileName = v
	}
	return nil
}

// Validate checks the values that would otherwise fail at startup.
func (c *Config) Validate() error {
	if c.API.Port <= 0 || c.API.Port > 65535 {
		return fmt.Errorf("invalid api.port: %d", c.API.Port)
	}
	if c.API.MaxBodySize <= 0 {
		return fmt.Errorf("invalid api.max_body_size: %d", c.API.MaxBodySize)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Export.XLSXFileName == "" {
		return errors.New("export.xlsx_filename is required")
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}
	return level, nil
}
