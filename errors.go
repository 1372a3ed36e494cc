package enquire

import (
	"errors"
	"fmt"
)

var (
	// ErrInterrupted is returned when the user presses Ctrl+C during a
	// prompt.
	ErrInterrupted = errors.New("prompt interrupted")

	// ErrEOF is returned when the input stream ends before the prompt
	// completes.
	ErrEOF = errors.New("unexpected end of input")

	// ErrAborted is returned when an Esc policy of EscTerminate cancels
	// the whole prompt session.
	ErrAborted = errors.New("prompt aborted")
)

// errSkipped is used internally to signal that a single question was
// skipped via Esc under EscSkipQuestion. It never escapes Ask.
var errSkipped = errors.New("question skipped")

// FormatError reports a terminal too narrow to render a prompt.
type FormatError struct {
	Width int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("terminal too narrow to render prompt: %d columns", e.Width)
}
