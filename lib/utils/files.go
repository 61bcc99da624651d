package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aquilax/truncate"
)

func PathAbs(path string) (string, error) {
	if strings.HasPrefix(filepath.ToSlash(path), "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		path = filepath.Join(home, path[2:])
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return path, nil
}

// TruncateFilename shortens long paths in the middle, keeping the file name visible.
func TruncateFilename(path string) string {
	return truncate.Truncate(path, 40, "...", truncate.PositionMiddle)
}
