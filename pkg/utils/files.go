package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// IsGoFile checks if a file is a Go source file (includes test files)
func IsGoFile(filename string) bool {
	return strings.HasSuffix(filename, ".go")
}

// FindGoFiles recursively finds all Go source files in a directory, in
// traversal order. Every entry is visited; there is no vendor or hidden
// directory filtering.
func FindGoFiles(root string) ([]string, error) {
	var goFiles []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if IsGoFile(filepath.Base(path)) {
			goFiles = append(goFiles, path)
		}

		return nil
	})

	return goFiles, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
