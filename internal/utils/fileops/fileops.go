package fileops

import (
	"os"
	"path/filepath"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// FileOps provides a unified interface for the file operations of the generators,
// combining path validation and error handling
type FileOps struct {
	pathValidator *PathValidator
	errorWrapper  *ErrorWrapper
}

// NewFileOps creates a new FileOps instance with all components
func NewFileOps() *FileOps {
	return &FileOps{
		pathValidator: NewPathValidator(),
		errorWrapper:  NewErrorWrapper(),
	}
}

// PathValidator returns the path validator instance
func (fo *FileOps) PathValidator() *PathValidator {
	return fo.pathValidator
}

// ReadFile reads a file and returns its contents as a string
func (fo *FileOps) ReadFile(filePath string) (string, error) {
	cleanPath, err := fo.pathValidator.ValidateAndClean(filePath)
	if err != nil {
		return "", err
	}
	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", fo.errorWrapper.WrapFileReadError(cleanPath, err)
	}
	return string(content), nil
}

// MkdirAll creates dir and any missing parents
func (fo *FileOps) MkdirAll(dir string) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cleanPath, dirPerm); err != nil {
		return fo.errorWrapper.WrapDirectoryCreateError(cleanPath, err)
	}
	return nil
}

// WriteFile replaces the file at filePath, creating its directory first
func (fo *FileOps) WriteFile(filePath string, content string) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(filePath)
	if err != nil {
		return err
	}
	if err := fo.MkdirAll(filepath.Dir(cleanPath)); err != nil {
		return err
	}
	if err := os.WriteFile(cleanPath, []byte(content), filePerm); err != nil {
		return fo.errorWrapper.WrapFileWriteError(cleanPath, err)
	}
	return nil
}

// AppendFile appends content to filePath, creating the file and its directory as needed
func (fo *FileOps) AppendFile(filePath string, content string) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(filePath)
	if err != nil {
		return err
	}
	if err := fo.MkdirAll(filepath.Dir(cleanPath)); err != nil {
		return err
	}
	f, err := os.OpenFile(cleanPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fo.errorWrapper.WrapFileAppendError(cleanPath, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fo.errorWrapper.WrapFileAppendError(cleanPath, err)
	}
	if err := f.Close(); err != nil {
		return fo.errorWrapper.WrapFileAppendError(cleanPath, err)
	}
	return nil
}

// Exists checks if a path exists using the path validator
func (fo *FileOps) Exists(path string) bool {
	return fo.pathValidator.Exists(path)
}

// IsDir checks if a path is a directory using the path validator
func (fo *FileOps) IsDir(path string) bool {
	return fo.pathValidator.IsDir(path)
}

// IsFile checks if a path is a regular file using the path validator
func (fo *FileOps) IsFile(path string) bool {
	return fo.pathValidator.IsFile(path)
}
