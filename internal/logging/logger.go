package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TimestampLayout matches the asctime format of the project's log stream.
const TimestampLayout = "2006-01-02 15:04:05,000"

// Logger writes timestamped `[ts]: message:` lines to its writers. It is
// built once in main and handed to whatever needs to report progress.
type Logger struct {
	out  io.Writer
	file *os.File
	now  func() time.Time
}

// New creates a logger that writes to out.
func New(out io.Writer) *Logger {
	return &Logger{out: out, now: time.Now}
}

// OpenFile additionally mirrors every line into the file at path, creating
// parent directories as needed.
func (l *Logger) OpenFile(path string) error {
	if l == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("logging: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("logging: open log file: %w", err)
	}
	if l.file != nil {
		l.file.Close()
	}
	l.file = f
	return nil
}

// Close releases the log file handle, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Printf writes a single timestamped line.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	line = strings.TrimRight(line, "\n")
	line = fmt.Sprintf("[%s]: %s:\n", l.now().Format(TimestampLayout), line)
	if l.out != nil {
		io.WriteString(l.out, line)
	}
	if l.file != nil {
		l.file.WriteString(line)
	}
}
