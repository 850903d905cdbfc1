package launcher

import (
	"strings"
	"sync"
)

// defaultOutputLines bounds how much launched-program output is kept.
const defaultOutputLines = 500

// OutputBuffer collects the trailing output lines of launched programs so
// the GUI can show what the editor printed. It is an io.Writer fed from
// the child's stdout and stderr.
type OutputBuffer struct {
	mu      sync.Mutex
	lines   []string
	limit   int
	partial string
}

// NewOutputBuffer returns a buffer keeping at most limit lines, or the
// default bound when limit is not positive.
func NewOutputBuffer(limit int) *OutputBuffer {
	if limit <= 0 {
		limit = defaultOutputLines
	}
	return &OutputBuffer{limit: limit}
}

// Write splits the input on line breaks. A trailing fragment without a
// newline is held back until a later write completes the line.
func (b *OutputBuffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	text := strings.ReplaceAll(string(p), "\r\n", "\n")

	b.mu.Lock()
	defer b.mu.Unlock()

	parts := strings.Split(b.partial+text, "\n")
	// The element after the last newline is the incomplete line: empty
	// when the write was newline-terminated, never a stored line.
	b.partial = parts[len(parts)-1]
	b.lines = append(b.lines, parts[:len(parts)-1]...)
	if len(b.lines) > b.limit {
		b.lines = b.lines[len(b.lines)-b.limit:]
	}
	return len(p), nil
}

// Tail returns up to n trailing lines, or all of them when n <= 0. An
// in-progress partial line counts as the last line.
func (b *OutputBuffer) Tail(n int) []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	lines := make([]string, 0, len(b.lines)+1)
	lines = append(lines, b.lines...)
	if b.partial != "" {
		lines = append(lines, b.partial)
	}
	if n <= 0 || n >= len(lines) {
		return lines
	}
	return lines[len(lines)-n:]
}

// TailText returns Tail joined with newlines.
func (b *OutputBuffer) TailText(n int) string {
	return strings.Join(b.Tail(n), "\n")
}
