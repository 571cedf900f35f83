// Package log provides an optional debug log. Messages are buffered until a
// file is configured, then flushed, so early startup output is not lost.
package log

import (
	stdlog "log"
	"os"
	"sync"
)

type debugWriter struct {
	mu      sync.Mutex
	file    *os.File
	buffer  []byte
	discard bool
}

var (
	writer = &debugWriter{}
	logger = stdlog.New(writer, "", stdlog.LstdFlags|stdlog.Lmicroseconds)
)

func (w *debugWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.discard {
		return len(p), nil
	}
	if w.file != nil {
		return w.file.Write(p)
	}
	w.buffer = append(w.buffer, p...)
	return len(p), nil
}

// SetFile directs the log to path, creating it if needed and flushing any
// buffered messages. An empty path discards past and future output.
func SetFile(path string) error {
	writer.mu.Lock()
	defer writer.mu.Unlock()

	if writer.file != nil {
		_ = writer.file.Close()
		writer.file = nil
	}
	if path == "" {
		writer.discard = true
		writer.buffer = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		writer.discard = true
		writer.buffer = nil
		return err
	}
	writer.file = f
	writer.discard = false
	if len(writer.buffer) > 0 {
		_, _ = f.Write(writer.buffer)
		writer.buffer = nil
	}
	return nil
}

// Printf logs a formatted debug message.
func Printf(format string, args ...any) {
	logger.Printf(format, args...)
}
