// Package timing implements a hierarchical timing facility: named sections
// can nest, and a report shows each section's total time alongside its
// children. It is not safe for concurrent Start calls from multiple
// goroutines against the same Timer, so appcontext disables it outright
// whenever more than one device is active rather than serialize access and
// distort the very thing it measures.
package timing

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/coder/quartz"
)

// Timer accumulates durations for named, potentially nested sections.
type Timer struct {
	clock   quartz.Clock
	enabled bool

	mu        sync.Mutex
	stack     []string
	durations map[string]time.Duration
	order     []string
	children  map[string][]string
	seenChild map[string]map[string]bool
}

// New builds a Timer. When enabled is false, Start is a no-op: this is how
// callers honor the single-device-only invariant without littering call
// sites with if-statements.
func New(clock quartz.Clock, enabled bool) *Timer {
	return &Timer{
		clock:     clock,
		enabled:   enabled,
		durations: make(map[string]time.Duration),
		children:  make(map[string][]string),
		seenChild: make(map[string]map[string]bool),
	}
}

// Enabled reports whether this Timer is recording.
func (t *Timer) Enabled() bool {
	return t.enabled
}

// Start begins timing a named section, returning a func to call when the
// section ends. Nested Start calls attribute their section as a child of
// whichever section is currently open.
func (t *Timer) Start(name string) func() {
	if !t.enabled {
		return func() {}
	}

	start := t.clock.Now()

	t.mu.Lock()
	if len(t.stack) > 0 {
		parent := t.stack[len(t.stack)-1]
		if t.seenChild[parent] == nil {
			t.seenChild[parent] = make(map[string]bool)
		}
		if !t.seenChild[parent][name] {
			t.seenChild[parent][name] = true
			t.children[parent] = append(t.children[parent], name)
		}
	} else if !t.seenChild[""][name] {
		if t.seenChild[""] == nil {
			t.seenChild[""] = make(map[string]bool)
		}
		t.seenChild[""][name] = true
		t.order = append(t.order, name)
	}
	t.stack = append(t.stack, name)
	t.mu.Unlock()

	return func() {
		elapsed := t.clock.Now().Sub(start)
		t.mu.Lock()
		t.durations[name] += elapsed
		t.stack = t.stack[:len(t.stack)-1]
		t.mu.Unlock()
	}
}

// Duration returns the accumulated time recorded for name.
func (t *Timer) Duration(name string) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.durations[name]
}

// Report renders every top-level section and its descendants, indented by
// nesting depth, each annotated with its accumulated duration.
func (t *Timer) Report() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var b strings.Builder
	roots := append([]string(nil), t.order...)
	sort.Strings(roots)
	for _, name := range roots {
		t.writeSection(&b, name, 0)
	}
	return b.String()
}

func (t *Timer) writeSection(b *strings.Builder, name string, depth int) {
	fmt.Fprintf(b, "%s%s: %s\n", strings.Repeat("  ", depth), name, t.durations[name])
	children := append([]string(nil), t.children[name]...)
	sort.Strings(children)
	for _, child := range children {
		t.writeSection(b, child, depth+1)
	}
}
