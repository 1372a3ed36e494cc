package enquire

import (
	"errors"
	"io"
)

// Validation is a prompt's verdict on an Enter press.
type Validation uint8

const (
	// ValidationFinish accepts the current state and ends the prompt.
	ValidationFinish Validation = iota
	// ValidationContinue swallows the Enter press and keeps the prompt
	// running (used by multi-stage prompts).
	ValidationContinue
)

// EscPolicy controls what the Esc key does during a prompt.
type EscPolicy uint8

const (
	// EscIgnore finishes with the prompt's default when one exists and
	// otherwise ignores the key.
	EscIgnore EscPolicy = iota
	// EscSkipQuestion abandons the current question without an answer
	// and moves on.
	EscSkipQuestion
	// EscTerminate aborts the whole session with ErrAborted.
	EscTerminate
)

// Prompt is the capability a widget needs to be runnable as a question.
// The built-in prompts implement it; custom question kinds may too.
type Prompt interface {
	Widget

	// Validate is invoked on Enter. Returning an error keeps the prompt
	// running and shows the message below it; ValidationContinue keeps
	// it running silently.
	Validate() (Validation, error)

	// Finish consumes the prompt after a successful Validate.
	Finish() Answer

	// FinishDefault consumes the prompt's default value, if it has one.
	// Used when Esc finishes a prompt under EscIgnore.
	FinishDefault() (Answer, bool)

	// WriteFinished repaints the prompt's single finished line. The
	// cursor is at the start of the cleared prompt area.
	WriteFinished(b Backend, answer Answer) error
}

// RunOptions tunes a single prompt session.
type RunOptions struct {
	// HideCursor hides the terminal cursor for the whole session (list
	// prompts do this).
	HideCursor bool
	// OnEsc is the Esc policy for this session.
	OnEsc EscPolicy
}

// RunPrompt owns one interactive session: it acquires the terminal
// (raw mode, cursor visibility), runs the render/event loop, and
// guarantees release on every exit path.
func RunPrompt(p Prompt, b Backend, ev EventSource, opts RunOptions) (Answer, error) {
	d := &driver{prompt: p, backend: b, events: ev, opts: opts}
	return d.run()
}

type driver struct {
	prompt  Prompt
	backend Backend
	events  EventSource
	opts    RunOptions

	baseRow int
	height  int
	errMsg  string
}

func (d *driver) run() (ans Answer, err error) {
	b := d.backend
	if err := b.EnableRawMode(); err != nil {
		return nil, err
	}
	finished := false
	defer func() {
		if !finished {
			b.MoveCursorTo(0, d.baseRow+max(d.height-1, 0))
			writeString(b, "\r\n")
		}
		if d.opts.HideCursor {
			b.ShowCursor()
		}
		b.Flush()
		if rerr := b.DisableRawMode(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	if d.opts.HideCursor {
		if err := b.HideCursor(); err != nil {
			return nil, err
		}
	}

	// Anchor the prompt at the cursor's row, starting a fresh line if
	// the cursor is mid-line. A failed query anchors at the top.
	if x, y, err := b.CursorPos(); err == nil {
		d.baseRow = y
		if x != 0 {
			if err := writeString(b, "\r\n"); err != nil {
				return nil, err
			}
			d.baseRow++
		}
	}

	for {
		if err := d.render(); err != nil {
			return nil, err
		}

		key, err := d.events.NextKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEOF
			}
			return nil, err
		}

		switch {
		case key.IsCtrl('c'):
			return nil, ErrInterrupted

		case key.Is(KeyNull):
			return nil, ErrEOF

		case key.Is(KeyEsc):
			switch d.opts.OnEsc {
			case EscTerminate:
				return nil, ErrAborted
			case EscSkipQuestion:
				return nil, errSkipped
			default:
				if def, ok := d.prompt.FinishDefault(); ok {
					if err := d.finish(def); err != nil {
						return nil, err
					}
					finished = true
					return def, nil
				}
				// No default to fall back to; let the prompt react
				// (expand uses Esc to collapse its listing).
				if d.prompt.HandleKey(key) {
					d.errMsg = ""
				}
			}

		case key.Is(KeyEnter):
			if s, ok := d.prompt.(Suspender); ok {
				if err := d.suspend(s); err != nil {
					d.errMsg = err.Error()
					continue
				}
			}
			v, verr := d.prompt.Validate()
			if verr != nil {
				d.errMsg = verr.Error()
				continue
			}
			d.errMsg = ""
			if v == ValidationContinue {
				continue
			}
			ans := d.prompt.Finish()
			if err := d.finish(ans); err != nil {
				return nil, err
			}
			finished = true
			return ans, nil

		default:
			if d.prompt.HandleKey(key) {
				d.errMsg = ""
			}
		}
	}
}

// Suspender is implemented by prompts that must run work outside raw
// mode when Enter is pressed (the editor prompt). A returned error is
// shown as a validation error.
type Suspender interface {
	Suspend() error
}

// suspend leaves raw mode, runs the prompt's suspended work, and
// restores terminal state whatever happens.
func (d *driver) suspend(s Suspender) error {
	b := d.backend
	if d.opts.HideCursor {
		b.ShowCursor()
	}
	writeString(b, "\r\n")
	b.Flush()
	if err := b.DisableRawMode(); err != nil {
		return err
	}
	serr := s.Suspend()
	if err := b.EnableRawMode(); err != nil {
		return err
	}
	if d.opts.HideCursor {
		b.HideCursor()
	}
	// The editor may have scrolled or cleared the screen; re-anchor.
	if x, y, err := b.CursorPos(); err == nil {
		d.baseRow = y
		if x != 0 {
			writeString(b, "\r\n")
			d.baseRow++
		}
	}
	return serr
}

// render redraws the whole prompt from its anchor row, scrolling the
// screen first when the prompt would run off the bottom.
func (d *driver) render() error {
	b := d.backend
	size, err := b.Size()
	if err != nil {
		return err
	}
	if size.Width <= 3 {
		return &FormatError{Width: size.Width}
	}

	layout := NewLayout(size)
	height := d.prompt.Height(&layout)
	if d.errMsg != "" {
		height += errorHeight(d.errMsg, size)
	}

	if deficit := d.baseRow + height - size.Height; deficit > 0 {
		if err := b.Scroll(deficit); err != nil {
			return err
		}
		d.baseRow = max(d.baseRow-deficit, 0)
	}

	if err := b.MoveCursorTo(0, d.baseRow); err != nil {
		return err
	}
	if err := b.Clear(ClearFromCursorDown); err != nil {
		return err
	}

	rl := NewLayout(size)
	if err := d.prompt.Render(&rl, b); err != nil {
		return err
	}
	if d.errMsg != "" {
		if err := d.renderError(size, b); err != nil {
			return err
		}
	}
	d.height = height

	if !d.opts.HideCursor {
		cx, cy := d.prompt.CursorPos(NewLayout(size))
		if err := b.MoveCursorTo(cx, d.baseRow+cy); err != nil {
			return err
		}
	}
	return b.Flush()
}

func errorHeight(msg string, size Size) int {
	return len(wrapText(msg, size.Width-2, size.Width))
}

func (d *driver) renderError(size Size, b Backend) error {
	if err := writeString(b, "\r\n"); err != nil {
		return err
	}
	if err := WriteStyled(b, Style{FG: Red}, string(Symbols().Cross)+" "); err != nil {
		return err
	}
	text := NewText(d.errMsg)
	layout := NewLayout(size).WithOffset(2, 0)
	return text.Render(&layout, b)
}

// finish clears the prompt area and leaves the single completed line.
func (d *driver) finish(ans Answer) error {
	b := d.backend
	if err := b.MoveCursorTo(0, d.baseRow); err != nil {
		return err
	}
	if err := b.Clear(ClearFromCursorDown); err != nil {
		return err
	}
	if err := d.prompt.WriteFinished(b, ans); err != nil {
		return err
	}
	return b.Flush()
}
