package utils

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// FindVaultRoot traverses up directories to find the vault root (the
// directory containing .nebula). Returns the path to the root if found,
// empty string otherwise. Stops searching when it reaches one level above
// the user's home directory.
func FindVaultRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	for {
		// Stop searching at one level above home directory
		if currentDir == path.Join(homeDir, "..") {
			return "", nil
		}

		nebulaDir := filepath.Join(currentDir, ".nebula")
		fileInfo, err := os.Stat(nebulaDir)
		// No error means the path exists
		if err == nil {
			if fileInfo.IsDir() {
				return currentDir, nil
			}
		} else if !os.IsNotExist(err) {
			// Return any error that's not "file not found" (like permission issues)
			return "", fmt.Errorf("error checking for .nebula directory at %s: %w", currentDir, err)
		}

		parentDir := filepath.Dir(currentDir)

		// If we've reached the filesystem root and haven't found .nebula
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}
