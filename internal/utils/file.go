// Package utils provides small filesystem helpers shared by the batch
// executor and the CLI.
package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates a directory (and parents) if it doesn't exist.
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// FileExtension returns the lowercased file extension without the dot.
func FileExtension(filename string) string {
	ext := filepath.Ext(filename)
	if len(ext) > 0 {
		return strings.ToLower(ext[1:])
	}
	return ""
}

// IsImageFile checks whether a filename carries a supported image extension.
func IsImageFile(filename string, formats []string) bool {
	ext := FileExtension(filename)
	for _, format := range formats {
		if ext == strings.ToLower(strings.TrimPrefix(format, ".")) {
			return true
		}
	}
	return false
}

// ListImageFiles recursively lists all supported image files under dir.
func ListImageFiles(dir string, formats []string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && IsImageFile(path, formats) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// SanitizeFilename replaces characters that are invalid in file or directory
// names with underscores, so album and size tags can become path segments.
func SanitizeFilename(filename string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := filename

	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}

	return strings.Trim(result, " .")
}
