package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// dotEnvFiles are loaded from the project root in this order. Variables
// already present in the process environment are never overridden.
var dotEnvFiles = []string{".env", ".env.local"}

// LoadDotEnv loads the project's .env files into the process environment
// and returns the paths that were loaded.
func LoadDotEnv(projectRoot string) ([]string, error) {
	var loaded []string
	for _, name := range dotEnvFiles {
		envFile := filepath.Join(projectRoot, name)
		if !fileExists(envFile) {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return loaded, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
		loaded = append(loaded, envFile)
	}
	return loaded, nil
}

// loadDotEnvOrWarn loads the .env files and prints a warning on failure
func loadDotEnvOrWarn(projectRoot string) {
	if _, err := LoadDotEnv(projectRoot); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}
