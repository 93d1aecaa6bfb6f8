// Package history holds the bounded log of accepted shell lines.
package history

// DefaultCapacity matches the default max_history configuration value.
const DefaultCapacity = 2000

// Log is an append-only, capacity-bounded list of accepted lines.
// When the capacity is exceeded the oldest entry is evicted, but
// absolute indexes keep counting from the start of the session so
// history expansion references stay stable.
type Log struct {
	capacity int
	evicted  int
	lines    []string
}

// NewLog creates a log that retains at most capacity lines.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity}
}

// Add appends an accepted line, evicting the oldest if full.
func (l *Log) Add(line string) {
	l.lines = append(l.lines, line)
	if len(l.lines) > l.capacity {
		over := len(l.lines) - l.capacity
		l.lines = l.lines[over:]
		l.evicted += over
	}
}

// Len reports the total number of lines ever accepted.
func (l *Log) Len() int {
	return l.evicted + len(l.lines)
}

// Get returns the n-th accepted line counting from 1.
// Evicted or out-of-range indexes return ok=false.
func (l *Log) Get(n int) (line string, ok bool) {
	idx := n - 1 - l.evicted
	if n < 1 || idx < 0 || idx >= len(l.lines) {
		return "", false
	}
	return l.lines[idx], true
}

// Last returns the most recently accepted line.
func (l *Log) Last() (line string, ok bool) {
	if len(l.lines) == 0 {
		return "", false
	}
	return l.lines[len(l.lines)-1], true
}

// Clear drops all retained lines.
func (l *Log) Clear() {
	l.lines = nil
	l.evicted = 0
}

// Each calls fn for every retained line with its absolute 1-based index.
func (l *Log) Each(fn func(n int, line string)) {
	for i, line := range l.lines {
		fn(l.evicted+i+1, line)
	}
}
