// Package outputwriter turns a byte stream, such as a child process's stdout, into log lines.
package outputwriter

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Writer forwards every non-empty line written to it to a logger.
// A trailing partial line is held back until its terminator arrives or Close is called.
type Writer struct {
	logger  *zap.SugaredLogger
	level   zapcore.Level
	mu      sync.Mutex
	pending string
}

// New creates a Writer logging at info level.
func New(logger *zap.SugaredLogger) *Writer {
	return NewAtLevel(logger, zapcore.InfoLevel)
}

// NewAtLevel creates a Writer logging at the given level.
func NewAtLevel(logger *zap.SugaredLogger, level zapcore.Level) *Writer {
	return &Writer{logger: logger, level: level}
}

// Write implements io.Writer. Lines may be terminated by "\r\n", "\r" or "\n".
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	data := w.pending + string(p)
	w.pending = ""

	lines := splitLines(data)
	last := len(lines) - 1
	for i, line := range lines {
		if i == last {
			// Incomplete unless the chunk ended with a terminator, which leaves an empty tail.
			// A trailing '\r' may be the first half of "\r\n", so it is held back too.
			w.pending = line
			break
		}
		w.emit(line)
	}
	return len(p), nil
}

// Close flushes a pending partial line.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.emit(strings.TrimSuffix(w.pending, "\r"))
	w.pending = ""
	return nil
}

func (w *Writer) emit(line string) {
	if len(line) == 0 {
		return
	}
	w.logger.Logw(w.level, line)
}

// splitLines splits on "\r\n", "\r" and "\n". The last element is whatever follows the final terminator.
// A '\r' at the very end is kept on the last element so that a "\r\n" split across writes is seen whole.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			if i == len(s)-1 {
				return append(lines, s[start:])
			}
			lines = append(lines, s[start:i])
			if s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
