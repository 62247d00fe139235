package report

import (
	"github.com/livp123/logsift/internal/utils/fileutil"
)

// WriteFile renders the counts and writes them to path, overwriting any
// existing content. The write is atomic: a failed run never leaves a
// half-written report behind.
func WriteFile(path string, counts map[string]int) error {
	return fileutil.AtomicWriteFile(path, Render(counts), 0644)
}
