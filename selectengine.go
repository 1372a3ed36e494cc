package enquire

// ItemRenderer paints one list row. The row's line is already positioned;
// the renderer must not emit newlines.
type ItemRenderer func(i int, hovered bool, layout *Layout, b Backend) error

// SelectEngine drives hover state, separator skipping and pagination for
// every select-style prompt. Parent prompts supply the per-row renderer.
type SelectEngine struct {
	List       *ChoiceList
	RenderItem ItemRenderer

	at        int
	pageStart int
}

// NewSelectEngine returns an engine hovering the list's default item, or
// the first selectable one. The list must contain at least one
// selectable choice.
func NewSelectEngine(list *ChoiceList, render ItemRenderer) *SelectEngine {
	at := list.Default
	if at < 0 || at >= list.Len() || !list.IsSelectable(at) {
		at = list.FirstSelectable()
	}
	if at < 0 {
		panic("enquire: list has no selectable choice")
	}
	e := &SelectEngine{List: list, RenderItem: render, at: at}
	e.pageStart = clamp(at-e.pageLen()/2, 0, max(0, list.Len()-e.pageLen()))
	return e
}

// At returns the hovered index.
func (e *SelectEngine) At() int {
	return e.at
}

// SetAt moves the hover to i, scrolling the window to keep it visible.
// The index must be selectable.
func (e *SelectEngine) SetAt(i int) {
	e.at = i
	e.scrollIntoView()
}

func (e *SelectEngine) pageLen() int {
	return min(e.List.PageSize, e.List.Len())
}

func (e *SelectEngine) paginating() bool {
	return e.List.Len() > e.List.PageSize
}

func (e *SelectEngine) scrollIntoView() {
	p := e.pageLen()
	if e.at < e.pageStart {
		e.pageStart = e.at
	} else if e.at >= e.pageStart+p {
		e.pageStart = e.at - p + 1
	}
	e.pageStart = clamp(e.pageStart, 0, max(0, e.List.Len()-p))
}

// step walks from `from` in direction dir (+1/-1) to the next selectable
// index, wrapping only if the list loops. It returns `from` when there
// is nowhere to go.
func (e *SelectEngine) step(from, dir int) int {
	n := e.List.Len()
	i := from
	for range n {
		i += dir
		if i < 0 || i >= n {
			if !e.List.ShouldLoop {
				return from
			}
			i = (i + n) % n
		}
		if e.List.IsSelectable(i) {
			return i
		}
	}
	return from
}

// nearestSelectable scans from i towards dir for a selectable index.
func (e *SelectEngine) nearestSelectable(i, dir int) int {
	n := e.List.Len()
	for ; i >= 0 && i < n; i += dir {
		if e.List.IsSelectable(i) {
			return i
		}
	}
	return e.at
}

func (e *SelectEngine) HandleKey(key KeyEvent) bool {
	prev := e.at
	switch MovementFromKey(key) {
	case MoveUp:
		e.at = e.step(e.at, -1)
	case MoveDown:
		e.at = e.step(e.at, 1)
	case MoveHome:
		e.at = e.List.FirstSelectable()
	case MoveEnd:
		e.at = e.List.LastSelectable()
	case MovePageUp:
		t := max(e.at-e.List.PageSize, 0)
		e.at = e.nearestSelectable(t, 1)
	case MovePageDown:
		t := min(e.at+e.List.PageSize, e.List.Len()-1)
		e.at = e.nearestSelectable(t, -1)
	default:
		return false
	}
	e.scrollIntoView()
	return e.at != prev
}

func (e *SelectEngine) visibleRows() int {
	rows := e.pageLen()
	if e.paginating() {
		rows++ // footer hint
	}
	return rows
}

func (e *SelectEngine) Height(layout *Layout) int {
	rows := e.visibleRows()
	layout.OffsetY += rows
	layout.OffsetX = 0
	return rows
}

const moreChoicesHint = "(Move up and down to reveal more choices)"

func (e *SelectEngine) Render(layout *Layout, b Backend) error {
	p := e.pageLen()
	for row := range p {
		i := e.pageStart + row
		if err := writeString(b, "\r\n"); err != nil {
			return err
		}
		if err := b.MoveCursorRight(layout.ChunkX); err != nil {
			return err
		}
		if err := e.RenderItem(i, i == e.at, layout, b); err != nil {
			return err
		}
	}
	if e.paginating() {
		if err := writeString(b, "\r\n"); err != nil {
			return err
		}
		if err := b.MoveCursorRight(layout.ChunkX); err != nil {
			return err
		}
		if err := WriteStyled(b, DefaultStyle().Dim(), moreChoicesHint); err != nil {
			return err
		}
	}
	e.Height(layout)
	return nil
}

func (e *SelectEngine) CursorPos(layout Layout) (int, int) {
	return layout.OffsetCursor(0, layout.OffsetY+1+e.at-e.pageStart)
}

// renderChoiceRow is the plain row renderer shared by the select prompts
// that have no per-row adornments of their own.
func renderChoiceRow(list *ChoiceList, i int, hovered bool, layout *Layout, b Backend) error {
	c := list.Choices[i]
	if c.IsSeparator() {
		return WriteStyled(b, DefaultStyle().Dim(), "  "+ellipsize(c.Text, layout.AvailableWidth()-2))
	}
	text := ellipsize(c.Text, layout.AvailableWidth()-2)
	if hovered {
		if err := WriteStyled(b, Style{FG: Cyan}, string(Symbols().Pointer)+" "); err != nil {
			return err
		}
		return WriteStyled(b, Style{FG: Cyan}, text)
	}
	return writeString(b, "  "+text)
}

// truncateToWidth cuts s at grapheme boundaries to fit in w cells.
func truncateToWidth(s string, w int) string {
	if textWidth(s) <= w {
		return s
	}
	out := ""
	used := 0
	for g := range graphemes(s) {
		gw := textWidth(g)
		if used+gw > w {
			break
		}
		out += g
		used += gw
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
