package enquire

import (
	"iter"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// textWidth is the number of terminal cells a string occupies.
func textWidth(s string) int {
	return runewidth.StringWidth(s)
}

// graphemes iterates the grapheme clusters of s.
func graphemes(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		g := uniseg.NewGraphemes(s)
		for g.Next() {
			if !yield(g.Str()) {
				return
			}
		}
	}
}

// Line is a single-line string widget. Content wider than the line is
// cut short with a trailing ellipsis; a line narrower than four cells
// renders dots only.
type Line struct {
	text string
}

// NewLine returns a single-line widget for s.
func NewLine(s string) *Line {
	return &Line{text: s}
}

// SetText replaces the line's content.
func (l *Line) SetText(s string) {
	l.text = s
}

func (l *Line) Height(layout *Layout) int {
	layout.OffsetY++
	layout.OffsetX = 0
	return 1
}

func (l *Line) Render(layout *Layout, b Backend) error {
	text := ellipsize(l.text, layout.LineWidth())
	layout.OffsetY++
	layout.OffsetX = 0
	return writeString(b, text)
}

func (l *Line) CursorPos(layout Layout) (int, int) {
	return layout.OffsetCursor(layout.OffsetX, layout.OffsetY)
}

func (l *Line) HandleKey(KeyEvent) bool {
	return false
}

// ellipsize fits s into w cells, replacing the overflow with "...".
// Widths of three cells or fewer leave no room for content at all and
// come back as that many dots.
func ellipsize(s string, w int) string {
	if w <= 3 {
		if w < 0 {
			w = 0
		}
		return strings.Repeat(".", w)
	}
	if textWidth(s) <= w {
		return s
	}
	return strings.TrimRight(truncateToWidth(s, w-3), " ") + "..."
}

// Text is a word-wrapped block of text. The wrap is computed lazily and
// cached per layout width. The first line wraps to the layout's
// remaining line width, following lines to the full available width.
type Text struct {
	text string

	lines    []string
	forLine  int
	forAvail int
}

// NewText returns a text widget for s.
func NewText(s string) *Text {
	return &Text{text: s, forLine: -1}
}

// SetText replaces the text, invalidating the cached wrap.
func (t *Text) SetText(s string) {
	t.text = s
	t.forLine = -1
}

func (t *Text) wrap(layout *Layout) []string {
	lw, aw := layout.LineWidth(), layout.AvailableWidth()
	if t.forLine == lw && t.forAvail == aw {
		return t.lines
	}
	t.lines = wrapText(t.text, lw, aw)
	t.forLine, t.forAvail = lw, aw
	return t.lines
}

func (t *Text) Height(layout *Layout) int {
	n := len(t.wrap(layout))
	layout.OffsetY += n
	layout.OffsetX = 0
	return n
}

func (t *Text) Render(layout *Layout, b Backend) error {
	lines := t.wrap(layout)
	start := layout.StartLine(len(lines))
	end := start + min(len(lines), layout.MaxHeight)
	for i, line := range lines[start:end] {
		if i > 0 {
			if err := writeString(b, "\r\n"); err != nil {
				return err
			}
			if err := b.MoveCursorRight(layout.ChunkX); err != nil {
				return err
			}
		}
		if err := writeString(b, line); err != nil {
			return err
		}
	}
	layout.OffsetY += end - start
	layout.OffsetX = 0
	return nil
}

func (t *Text) CursorPos(layout Layout) (int, int) {
	return layout.OffsetCursor(layout.OffsetX, layout.OffsetY)
}

func (t *Text) HandleKey(KeyEvent) bool {
	return false
}

// wrapText word-wraps s. The first emitted line is at most firstWidth
// cells wide, every following line at most restWidth. Words wider than a
// whole line are broken at grapheme boundaries. Existing newlines are
// respected.
func wrapText(s string, firstWidth, restWidth int) []string {
	if firstWidth < 1 {
		firstWidth = 1
	}
	if restWidth < 1 {
		restWidth = 1
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = wrapPara(lines, para, firstWidth, restWidth)
		firstWidth = restWidth
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func wrapPara(lines []string, para string, firstWidth, restWidth int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return append(lines, "")
	}
	limit := firstWidth
	if len(lines) > 0 {
		limit = restWidth
	}
	var cur strings.Builder
	curW := 0
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
		limit = restWidth
	}
	for _, word := range words {
		ww := textWidth(word)
		sep := 0
		if curW > 0 {
			sep = 1
		}
		if curW+sep+ww <= limit {
			if sep == 1 {
				cur.WriteByte(' ')
			}
			cur.WriteString(word)
			curW += sep + ww
			continue
		}
		if curW > 0 {
			flush()
		}
		// Break words wider than a full line at grapheme boundaries. A
		// grapheme wider than the line itself goes out whole; it cannot
		// be split.
		for ww > limit {
			g := uniseg.NewGraphemes(word)
			for g.Next() {
				cw := textWidth(g.Str())
				if curW+cw > limit && cur.Len() > 0 {
					break
				}
				cur.WriteString(g.Str())
				curW += cw
			}
			word = word[cur.Len():]
			ww = textWidth(word)
			flush()
		}
		cur.WriteString(word)
		curW = ww
	}
	if curW > 0 {
		flush()
	}
	return lines
}
