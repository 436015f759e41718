package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the full application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Dataset    DatasetConfig    `mapstructure:"dataset"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatasetConfig holds corpus download and extraction settings.
type DatasetConfig struct {
	URL         string `mapstructure:"url"`
	DownloadDir string `mapstructure:"download_dir"`
	ExtractDir  string `mapstructure:"extract_dir"`
}

// ClassifierConfig holds inference service settings. The prompt template
// must contain a single %s placeholder for the submitted text.
type ClassifierConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Model          string `mapstructure:"model"`
	PromptTemplate string `mapstructure:"prompt_template"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the CINESCOPE_
// prefix, falling back to defaults. A .env file in the working directory is
// honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CINESCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")

	// Dataset
	v.SetDefault("dataset.url", "http://www.cs.cmu.edu/~ark/personas/data/MovieSummaries.tar.gz")
	v.SetDefault("dataset.download_dir", "downloads")
	v.SetDefault("dataset.extract_dir", "downloads/MovieSummaries")

	// Classifier
	v.SetDefault("classifier.base_url", "http://localhost:11434")
	v.SetDefault("classifier.model", "deepseek-r1:1.5b")
	v.SetDefault("classifier.prompt_template", "Classify this movie summary into genres: %s. Only list the genres, separated by commas.")
	v.SetDefault("classifier.timeout_seconds", 120)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
