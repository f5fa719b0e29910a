package puzzle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// InputPath returns the conventional input file for day: <dir>/dayNN.txt.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}

// LoadInput reads the whole input file for day from dir.
func LoadInput(dir string, day int) (string, error) {
	path := InputPath(dir, day)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("day %d: %s: %w", day, path, ErrNoInput)
		}
		return "", fmt.Errorf("reading input %s: %w", path, err)
	}
	return string(data), nil
}
