package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SaveTOML encodes data to a TOML file, creating parent directories as
// needed. The directory is created 0700: everything under .nebula is
// private to the owner.
func SaveTOML(path string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(data)
}

// LoadTOML decodes a TOML file into data. Fields absent from the file keep
// their zero values; callers apply their own defaults afterwards.
func LoadTOML(path string, data interface{}) error {
	if _, err := toml.DecodeFile(path, data); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
