package engine

import (
	"github.com/nxadm/tail"

	"github.com/livp123/logsift/internal/utils/logger"
	sifterrors "github.com/livp123/logsift/pkg/errors"
)

// Tailer streams the lines of one input file. Unlike a follow-mode tailer
// it runs in batch mode: read the existing content to EOF, then close the
// events channel. No seeking and no partial re-read.
type Tailer struct {
	Events chan LineEvent
}

// NewTailer creates a new Tailer.
func NewTailer() *Tailer {
	return &Tailer{
		Events: make(chan LineEvent, 10000), // Buffered channel
	}
}

// Start begins streaming the file. The input must exist; a missing file is
// a setup failure detected before any processing begins. Per-line read
// errors are logged and skipped.
func (t *Tailer) Start(filename string) error {
	config := tail.Config{
		Follow:    false,
		MustExist: true,
		Poll:      true, // Fallback if inotify fails
		Logger:    tail.DiscardingLogger,
	}

	tailer, err := tail.TailFile(filename, config)
	if err != nil {
		return sifterrors.NewInputError(filename, err)
	}

	go func() {
		defer close(t.Events)
		num := 0
		for line := range tailer.Lines {
			if line.Err != nil {
				logger.Get(nil).Warnf("⚠️ Error reading %s: %v", filename, line.Err)
				continue
			}
			num++
			t.Events <- LineEvent{
				Line:   line.Text,
				Source: filename,
				Number: num,
			}
		}
	}()

	return nil
}
