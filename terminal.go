package enquire

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/term"
)

// Terminal is the real-tty Backend and EventSource. Output is buffered and
// emitted as ANSI escape sequences on Flush; input is decoded from the
// same stream the cursor-position query reply arrives on.
type Terminal struct {
	out     *bufio.Writer
	in      *bufio.Reader
	inFd    int
	outFd   int
	saved   *term.State
	scratch []byte
	style   Style
	styled  bool
}

// NewTerminal returns a Terminal over stdin/stdout.
func NewTerminal() *Terminal {
	return &Terminal{
		out:   bufio.NewWriterSize(os.Stdout, 4096),
		in:    bufio.NewReaderSize(os.Stdin, 64),
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

func (t *Terminal) Flush() error {
	return t.out.Flush()
}

// csi writes ESC [ then the given arguments separated by ';' then the
// final byte, without allocating.
func (t *Terminal) csi(final byte, args ...int) error {
	t.scratch = append(t.scratch[:0], 0x1b, '[')
	for i, a := range args {
		if i > 0 {
			t.scratch = append(t.scratch, ';')
		}
		t.scratch = strconv.AppendInt(t.scratch, int64(a), 10)
	}
	t.scratch = append(t.scratch, final)
	_, err := t.out.Write(t.scratch)
	return err
}

func (t *Terminal) Size() (Size, error) {
	w, h, err := term.GetSize(t.outFd)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: w, Height: h}, nil
}

// CursorPos queries the terminal with CSI 6n and parses the reply. The
// coordinates returned are zero-based.
func (t *Terminal) CursorPos() (int, int, error) {
	if _, err := t.out.WriteString("\x1b[6n"); err != nil {
		return 0, 0, err
	}
	if err := t.out.Flush(); err != nil {
		return 0, 0, err
	}
	// Reply is ESC [ row ; col R. Keys typed before the query may be
	// buffered ahead of it; skip bytes until the ESC [ introducer.
	for {
		b, err := t.in.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		if b != 0x1b {
			continue
		}
		b, err = t.in.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		if b == '[' {
			break
		}
	}
	var row, col int
	cur := &row
	for {
		b, err := t.in.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		switch {
		case b >= '0' && b <= '9':
			*cur = *cur*10 + int(b-'0')
		case b == ';':
			cur = &col
		case b == 'R':
			return col - 1, row - 1, nil
		default:
			return 0, 0, fmt.Errorf("malformed cursor position reply: %q", b)
		}
	}
}

func (t *Terminal) MoveCursorTo(x, y int) error {
	return t.csi('H', y+1, x+1)
}

func (t *Terminal) MoveCursorUp(n int) error {
	if n <= 0 {
		return nil
	}
	return t.csi('A', n)
}

func (t *Terminal) MoveCursorDown(n int) error {
	if n <= 0 {
		return nil
	}
	return t.csi('B', n)
}

func (t *Terminal) MoveCursorLeft(n int) error {
	if n <= 0 {
		return nil
	}
	return t.csi('D', n)
}

func (t *Terminal) MoveCursorRight(n int) error {
	if n <= 0 {
		return nil
	}
	return t.csi('C', n)
}

func (t *Terminal) MoveCursorToColumn(x int) error {
	return t.csi('G', x+1)
}

func (t *Terminal) MoveCursorPrevLine(n int) error {
	if n <= 0 {
		return nil
	}
	return t.csi('F', n)
}

func (t *Terminal) Scroll(n int) error {
	if n > 0 {
		return t.csi('S', n)
	}
	if n < 0 {
		return t.csi('T', -n)
	}
	return nil
}

func (t *Terminal) SetStyle(s Style) error {
	if t.styled && s.Equal(t.style) {
		return nil
	}
	t.scratch = append(t.scratch[:0], 0x1b, '[', '0')
	appendColor(&t.scratch, s.FG, false)
	appendColor(&t.scratch, s.BG, true)
	appendAttrs(&t.scratch, s.Attr)
	t.scratch = append(t.scratch, 'm')
	if _, err := t.out.Write(t.scratch); err != nil {
		return err
	}
	t.style = s
	t.styled = true
	return nil
}

func (t *Terminal) ResetStyle() error {
	t.styled = false
	_, err := t.out.WriteString("\x1b[0m")
	return err
}

func appendColor(buf *[]byte, c Color, bg bool) {
	base := 0
	if bg {
		base = 10
	}
	switch c.Mode {
	case ColorDefault:
		return
	case Color16:
		n := int(c.Index)
		if n < 8 {
			n += 30 + base
		} else {
			n += 90 - 8 + base
		}
		*buf = append(*buf, ';')
		*buf = strconv.AppendInt(*buf, int64(n), 10)
	case Color256:
		*buf = append(*buf, ';')
		*buf = strconv.AppendInt(*buf, int64(38+base), 10)
		*buf = append(*buf, ';', '5', ';')
		*buf = strconv.AppendInt(*buf, int64(c.Index), 10)
	case ColorRGB:
		*buf = append(*buf, ';')
		*buf = strconv.AppendInt(*buf, int64(38+base), 10)
		*buf = append(*buf, ';', '2')
		for _, v := range [3]uint8{c.R, c.G, c.B} {
			*buf = append(*buf, ';')
			*buf = strconv.AppendInt(*buf, int64(v), 10)
		}
	}
}

var attrCodes = [...]struct {
	attr Attribute
	code byte
}{
	{AttrBold, '1'},
	{AttrDim, '2'},
	{AttrItalic, '3'},
	{AttrUnderlined, '4'},
	{AttrSlowBlink, '5'},
	{AttrRapidBlink, '6'},
	{AttrReversed, '7'},
	{AttrCrossedOut, '9'},
}

func appendAttrs(buf *[]byte, a Attribute) {
	for _, ac := range attrCodes {
		if a.Has(ac.attr) {
			*buf = append(*buf, ';', ac.code)
		}
	}
}

func (t *Terminal) Clear(ct ClearType) error {
	switch ct {
	case ClearAll:
		return t.csi('J', 2)
	case ClearFromCursorDown:
		return t.csi('J', 0)
	case ClearFromCursorUp:
		return t.csi('J', 1)
	case ClearCurrentLine:
		return t.csi('K', 2)
	case ClearUntilNewline:
		return t.csi('K', 0)
	}
	return nil
}

func (t *Terminal) HideCursor() error {
	_, err := t.out.WriteString("\x1b[?25l")
	return err
}

func (t *Terminal) ShowCursor() error {
	_, err := t.out.WriteString("\x1b[?25h")
	return err
}

func (t *Terminal) EnableRawMode() error {
	if t.saved != nil {
		return nil
	}
	st, err := term.MakeRaw(t.inFd)
	if err != nil {
		return err
	}
	t.saved = st
	return nil
}

func (t *Terminal) DisableRawMode() error {
	if t.saved == nil {
		return nil
	}
	err := term.Restore(t.inFd, t.saved)
	t.saved = nil
	return err
}
