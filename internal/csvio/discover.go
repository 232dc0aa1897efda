package csvio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FindInputs lists the data files in dir that the readers understand, in
// name order. Hidden files and subdirectories are skipped.
func FindInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if SupportedInput(e.Name()) {
			files = append(files, e.Name())
		}
	}
	return files, nil
}

// SupportedInput reports whether the file name has an extension one of the
// readers handles.
func SupportedInput(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".xlsx":
		return true
	}
	return false
}
