package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// InputDir создаёт временную директорию с входными файлами dayNN.txt.
// Директория удаляется после теста.
func InputDir(t testing.TB, inputs map[int]string) string {
	t.Helper()

	dir := t.TempDir()
	for day, content := range inputs {
		path := filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing input for day %d: %v", day, err)
		}
	}
	return dir
}
