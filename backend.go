package enquire

import "io"

// ClearType selects the region wiped by Backend.Clear.
type ClearType uint8

const (
	ClearAll ClearType = iota
	ClearFromCursorDown
	ClearFromCursorUp
	ClearCurrentLine
	ClearUntilNewline
)

// Size is the terminal dimensions in cells.
type Size struct {
	Width  int
	Height int
}

// Backend is the rendering target for prompts. Terminal implements it for
// a real tty; TestBackend implements it for tests. Writes are buffered
// until Flush.
type Backend interface {
	io.Writer

	Size() (Size, error)
	// CursorPos reports the cursor location, zero-based from the top
	// left of the screen.
	CursorPos() (x, y int, err error)

	MoveCursorTo(x, y int) error
	MoveCursorUp(n int) error
	MoveCursorDown(n int) error
	MoveCursorLeft(n int) error
	MoveCursorRight(n int) error
	MoveCursorToColumn(x int) error
	MoveCursorPrevLine(n int) error

	// Scroll moves the screen contents up by n lines (down for negative
	// n), adding blank lines at the edge.
	Scroll(n int) error

	SetStyle(Style) error
	ResetStyle() error

	Clear(ClearType) error
	HideCursor() error
	ShowCursor() error

	EnableRawMode() error
	DisableRawMode() error

	Flush() error
}

// WriteStyled writes s under the given style and restores the default
// style afterwards.
func WriteStyled(b Backend, st Style, s string) error {
	if err := b.SetStyle(st); err != nil {
		return err
	}
	if _, err := io.WriteString(b, s); err != nil {
		return err
	}
	return b.ResetStyle()
}

func writeString(b Backend, s string) error {
	_, err := io.WriteString(b, s)
	return err
}
