package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var AppFs = afero.NewOsFs()

// Config holds the application configuration
type Config struct {
	ConfigPath string
	NoColor    bool
}

// LoadConfig loads configuration from various sources
func LoadConfig() (*Config, error) {
	// Find home directory
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	// Set config file paths
	viper.SetConfigName(".spanned")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "spanned"))

	// Set environment variable prefix
	viper.SetEnvPrefix("SPANNED")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("config_path", "")
	viper.SetDefault("no_color", false)

	// Try to read config file (ignore if not found)
	_ = viper.ReadInConfig()

	// Load .env file if it exists
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	// Load .env.local if it exists (higher priority)
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		ConfigPath: viper.GetString("config_path"),
		NoColor:    viper.GetBool("no_color"),
	}

	return cfg, nil
}
