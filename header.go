package enquire

import "io"

// Header renders the leading line every prompt shares: a colored marker,
// the bold message, then either a dim hint or the answer marker. Inline
// widgets continue on the same line after it.
type Header struct {
	Message string
	Hint    string // already parenthesised; empty means the answer marker
}

func (h *Header) width() int {
	w := 2 + textWidth(h.Message) + 1
	if h.Hint != "" {
		return w + textWidth(h.Hint) + 1
	}
	sym := Symbols()
	return w + textWidth(string(sym.Arrow)) + 1
}

func (h *Header) Height(layout *Layout) int {
	start := layout.ChunkX + layout.OffsetX
	end := start + h.width()
	rows := end/layout.Width + 1
	layout.OffsetY += rows - 1
	endX := end % layout.Width
	if endX >= layout.ChunkX {
		layout.OffsetX = endX - layout.ChunkX
	} else {
		layout.OffsetX = 0
	}
	return rows
}

func (h *Header) Render(layout *Layout, b Backend) error {
	sym := Symbols()
	if err := WriteStyled(b, Style{FG: LightGreen}, "? "); err != nil {
		return err
	}
	if err := WriteStyled(b, DefaultStyle().Bold(), h.Message); err != nil {
		return err
	}
	if err := writeString(b, " "); err != nil {
		return err
	}
	if h.Hint != "" {
		if err := WriteStyled(b, DefaultStyle().Dim(), h.Hint); err != nil {
			return err
		}
	} else {
		if err := WriteStyled(b, DefaultStyle().Dim(), string(sym.Arrow)); err != nil {
			return err
		}
	}
	if err := writeString(b, " "); err != nil {
		return err
	}
	h.Height(layout)
	return nil
}

func (h *Header) CursorPos(layout Layout) (int, int) {
	pos := layout.ChunkX + layout.OffsetX + h.width()
	return pos % layout.Width, layout.OffsetY + pos/layout.Width
}

func (h *Header) HandleKey(KeyEvent) bool {
	return false
}

// writeFinished paints the line a prompt leaves behind once answered:
// a green tick, the message, then the formatted answer after a dim dot.
func writeFinished(b Backend, message, answer string) error {
	sym := Symbols()
	if err := WriteStyled(b, Style{FG: LightGreen}, string(sym.Completed)+" "); err != nil {
		return err
	}
	if _, err := io.WriteString(b, message); err != nil {
		return err
	}
	if answer != "" {
		if err := WriteStyled(b, DefaultStyle().Dim(), " "+string(sym.MiddleDot)+" "); err != nil {
			return err
		}
		if err := WriteStyled(b, Style{FG: Cyan}, answer); err != nil {
			return err
		}
	}
	return writeString(b, "\r\n")
}
