// Package config loads process configuration from env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read from the working directory when no files are named.
const DefaultEnvFile = ".env"

// LoadDotEnv loads variables from the given env files in order. Missing files are
// skipped and variables already present in the environment win, so flags and the
// real environment always override a checked-in .env.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}
