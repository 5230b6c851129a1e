package fileops

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ruboto/rubotogen/internal/errors"
)

// PathValidator provides centralized path validation and cleaning functionality
type PathValidator struct{}

// NewPathValidator creates a new PathValidator instance
func NewPathValidator() *PathValidator {
	return &PathValidator{}
}

// ValidateAndClean validates and cleans a path, ensuring it exists
func (pv *PathValidator) ValidateAndClean(filePath string) (string, error) {
	cleanPath, err := pv.ValidateAndCleanOptional(filePath)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(cleanPath); os.IsNotExist(err) {
		return "", errors.WrapFileSystemError("stat", cleanPath, err)
	}
	return cleanPath, nil
}

// ValidateAndCleanOptional validates and cleans a path but doesn't require it to exist
func (pv *PathValidator) ValidateAndCleanOptional(filePath string) (string, error) {
	if filePath == "" {
		return "", errors.ValidationError("path", "a non-empty path", "nothing")
	}

	cleanPath := filepath.Clean(filePath)

	// Allow .. only as a leading relative segment
	if strings.Contains(cleanPath, "..") && !strings.HasPrefix(cleanPath, "..") {
		return "", errors.ValidationError("path", "a path without traversal", filePath)
	}

	return cleanPath, nil
}

// Within joins rel onto root and rejects results that escape root
func (pv *PathValidator) Within(root, rel string) (string, error) {
	joined := filepath.Join(root, rel)
	back, err := filepath.Rel(filepath.Clean(root), joined)
	if err != nil || back == ".." || strings.HasPrefix(back, ".."+string(filepath.Separator)) {
		return "", errors.ValidationError("path", "a path inside "+root, rel)
	}
	return joined, nil
}

// Exists checks if a path exists
func (pv *PathValidator) Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsDir checks if a path exists and is a directory
func (pv *PathValidator) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile checks if a path exists and is a regular file
func (pv *PathValidator) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
