package aoc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config controls where inputs are cached and fetched from and how the
// runner logs.
type Config struct {
	InputDir    string `yaml:"inputDir" envconfig:"input_dir"`
	SessionFile string `yaml:"sessionFile" envconfig:"session_file"`
	BaseURL     string `yaml:"baseURL" envconfig:"base_url"`
	LogLevel    string `yaml:"logLevel" envconfig:"log_level"`
	LogFormat   string `yaml:"logFormat" envconfig:"log_format"`
}

func defaultConfig() Config {
	return Config{
		InputDir:    ".",
		SessionFile: filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"),
		BaseURL:     "https://adventofcode.com",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// LoadConfig reads the YAML file named by AOC_CONFIG_FILE (default
// aoc.yaml) if it exists, then applies AOC_* environment overrides.
func LoadConfig() (Config, error) {
	cfg := defaultConfig()

	configFile := os.Getenv("AOC_CONFIG_FILE")
	if configFile == "" {
		configFile = "aoc.yaml"
	}
	file, err := os.Open(configFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, err
	default:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("decoding %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("aoc", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) configureLogging() error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	switch c.LogFormat {
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
