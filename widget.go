package enquire

// Widget is the unit of composition for prompts. A widget measures
// itself with Height (advancing the layout past the space it will use),
// paints itself with Render, reports where the terminal cursor should
// rest with CursorPos, and consumes key presses with HandleKey.
type Widget interface {
	// Height returns the number of terminal rows the widget occupies
	// under the given layout and advances the layout past them.
	Height(layout *Layout) int

	// Render paints the widget and advances the layout the same way
	// Height does.
	Render(layout *Layout, b Backend) error

	// CursorPos returns the chunk-relative cell the terminal cursor
	// should rest on while the widget has focus.
	CursorPos(layout Layout) (x, y int)

	// HandleKey consumes a key press, returning true if the widget
	// used it and needs a repaint.
	HandleKey(key KeyEvent) bool
}
