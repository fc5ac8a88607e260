package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hammamikhairi/gastro/internal/domain"
)

// AppendLines appends each line, newline-terminated, to the file at path.
// The file is created if missing. Writers are not coordinated: concurrent
// callers on the same path may interleave.
func AppendLines(path string, lines []string) error {
	f, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrOrderLog, err)
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
