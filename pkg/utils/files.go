package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned when a source file is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

// SourceError reports a failure to load a source file.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	// Get the directory containing the file
	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// ReadSource loads the whole file at path as text.
func ReadSource(path string) (string, error) {
	fullPath, _, err := GetPathInfo(path)
	if err != nil {
		return "", &SourceError{Path: path, Err: err}
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", &SourceError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &SourceError{Path: path, Err: ErrInvalidEncoding}
	}
	return string(data), nil
}
