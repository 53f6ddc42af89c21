package commands

import (
	"os"
	"path/filepath"

	"github.com/satishbabariya/spanned-go/cli/internal/config"
)

// getConfigPath returns the configuration path using consistent logic:
// 1. Use explicit flag value if set
// 2. Use first argument if provided
// 3. Use SPANNED_CONFIG from the environment
// 4. Use the saved CLI configuration
// 5. Search common locations, default to "spanned.conf"
func getConfigPath(flagValue string, args []string) string {
	if flagValue != "" && flagValue != "spanned.conf" {
		return flagValue
	}
	if len(args) > 0 {
		return args[0]
	}
	if path := os.Getenv("SPANNED_CONFIG"); path != "" {
		return path
	}
	if cfg, err := config.LoadConfig(); err == nil && cfg.ConfigPath != "" {
		return cfg.ConfigPath
	}
	if path := findConfigFile(); path != "" {
		return path
	}
	return "spanned.conf"
}

// findConfigFile attempts to find a configuration file in common locations
func findConfigFile() string {
	commonPaths := []string{
		"spanned.conf",
		"conf/spanned.conf",
		"./spanned.conf",
	}

	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, _ := filepath.Abs(path)
			return absPath
		}
	}
	return ""
}
