package enquire

import (
	"fmt"
	"io"
	"strings"
)

// TestBackend is an in-memory Backend for tests. It records every
// operation in order and tracks the cursor the way a terminal would, so
// tests can assert on rendered output and on terminal discipline (raw
// mode balance, cursor visibility) without a tty.
type TestBackend struct {
	size Size

	x, y     int
	rawDepth int
	hidden   bool
	flushes  int

	log  []string
	text strings.Builder
}

// NewTestBackend returns a test backend pretending to be a terminal of
// the given size.
func NewTestBackend(width, height int) *TestBackend {
	return &TestBackend{size: Size{Width: width, Height: height}}
}

func (t *TestBackend) record(format string, args ...any) {
	t.log = append(t.log, fmt.Sprintf(format, args...))
}

// Output returns everything written, with cursor moves and clears
// elided. Carriage returns are dropped so lines join on plain newlines.
func (t *TestBackend) Output() string {
	return strings.ReplaceAll(t.text.String(), "\r", "")
}

// Log returns the full ordered operation log.
func (t *TestBackend) Log() []string {
	return t.log
}

// RawDepth returns how many more times raw mode was enabled than
// disabled. A finished prompt must leave it at zero.
func (t *TestBackend) RawDepth() int {
	return t.rawDepth
}

// CursorHidden reports whether the cursor is currently hidden.
func (t *TestBackend) CursorHidden() bool {
	return t.hidden
}

// Flushes returns the number of Flush calls seen.
func (t *TestBackend) Flushes() int {
	return t.flushes
}

// Reset clears the recorded output and log but keeps terminal state.
func (t *TestBackend) Reset() {
	t.log = nil
	t.text.Reset()
}

func (t *TestBackend) Write(p []byte) (int, error) {
	t.text.Write(p)
	for _, r := range string(p) {
		switch r {
		case '\r':
			t.x = 0
		case '\n':
			t.y++
		default:
			t.x += textWidth(string(r))
		}
	}
	return len(p), nil
}

func (t *TestBackend) Size() (Size, error) {
	return t.size, nil
}

func (t *TestBackend) CursorPos() (int, int, error) {
	return t.x, t.y, nil
}

func (t *TestBackend) MoveCursorTo(x, y int) error {
	t.x, t.y = x, y
	t.record("move-to %d,%d", x, y)
	return nil
}

func (t *TestBackend) MoveCursorUp(n int) error {
	if n > 0 {
		t.y -= n
		t.record("move-up %d", n)
	}
	return nil
}

func (t *TestBackend) MoveCursorDown(n int) error {
	if n > 0 {
		t.y += n
		t.record("move-down %d", n)
	}
	return nil
}

func (t *TestBackend) MoveCursorLeft(n int) error {
	if n > 0 {
		t.x -= n
		t.record("move-left %d", n)
	}
	return nil
}

func (t *TestBackend) MoveCursorRight(n int) error {
	if n > 0 {
		t.x += n
		t.record("move-right %d", n)
	}
	return nil
}

func (t *TestBackend) MoveCursorToColumn(x int) error {
	t.x = x
	t.record("move-col %d", x)
	return nil
}

func (t *TestBackend) MoveCursorPrevLine(n int) error {
	if n > 0 {
		t.x = 0
		t.y -= n
		t.record("move-prev-line %d", n)
	}
	return nil
}

func (t *TestBackend) Scroll(n int) error {
	if n != 0 {
		t.record("scroll %d", n)
	}
	return nil
}

func (t *TestBackend) SetStyle(s Style) error {
	t.record("style %+v", s)
	return nil
}

func (t *TestBackend) ResetStyle() error {
	t.record("style-reset")
	return nil
}

func (t *TestBackend) Clear(ct ClearType) error {
	t.record("clear %d", ct)
	return nil
}

func (t *TestBackend) HideCursor() error {
	t.hidden = true
	t.record("hide-cursor")
	return nil
}

func (t *TestBackend) ShowCursor() error {
	t.hidden = false
	t.record("show-cursor")
	return nil
}

func (t *TestBackend) EnableRawMode() error {
	t.rawDepth++
	t.record("raw-on")
	return nil
}

func (t *TestBackend) DisableRawMode() error {
	t.rawDepth--
	t.record("raw-off")
	return nil
}

func (t *TestBackend) Flush() error {
	t.flushes++
	return nil
}

// TestEvents is an EventSource that replays a fixed key sequence. After
// the last key it reports io.EOF, which Ask surfaces as ErrEOF.
type TestEvents struct {
	keys []KeyEvent
	next int
}

// NewTestEvents returns an event source replaying the given keys.
func NewTestEvents(keys ...KeyEvent) *TestEvents {
	return &TestEvents{keys: keys}
}

func (e *TestEvents) NextKey() (KeyEvent, error) {
	if e.next >= len(e.keys) {
		return KeyEvent{}, io.EOF
	}
	k := e.keys[e.next]
	e.next++
	return k, nil
}
