package enquire

// RenderRegion picks which part of a widget survives when its height
// exceeds the space the terminal can give it.
type RenderRegion uint8

const (
	RegionTop RenderRegion = iota
	RegionMiddle
	RegionBottom
)

// Layout tracks where a widget may draw. ChunkX/ChunkY anchor the
// widget's rectangle on screen; OffsetX/OffsetY advance within it as
// widgets render one after another. Widgets receive a copy and advance
// the offsets themselves.
type Layout struct {
	ChunkX  int
	ChunkY  int
	OffsetX int
	OffsetY int

	Width     int
	Height    int
	MaxHeight int

	Region RenderRegion
}

// NewLayout returns a layout covering a terminal of the given size.
func NewLayout(size Size) Layout {
	return Layout{
		Width:     size.Width,
		Height:    size.Height,
		MaxHeight: size.Height,
	}
}

// WithChunk returns a copy anchored at the given cell with offsets reset.
func (l Layout) WithChunk(x, y int) Layout {
	l.ChunkX = x
	l.ChunkY = y
	l.OffsetX = 0
	l.OffsetY = 0
	return l
}

// WithOffset returns a copy with the given offsets.
func (l Layout) WithOffset(x, y int) Layout {
	l.OffsetX = x
	l.OffsetY = y
	return l
}

// WithRegion returns a copy with the given render region.
func (l Layout) WithRegion(r RenderRegion) Layout {
	l.Region = r
	return l
}

// WithMaxHeight returns a copy with the given height budget.
func (l Layout) WithMaxHeight(h int) Layout {
	l.MaxHeight = h
	return l
}

// AvailableWidth is the width from the chunk anchor to the right edge.
func (l Layout) AvailableWidth() int {
	return l.Width - l.ChunkX
}

// LineWidth is the width left on the current line after the offset.
func (l Layout) LineWidth() int {
	return l.AvailableWidth() - l.OffsetX
}

// OffsetCursor translates a widget-relative cursor position to a
// chunk-relative one.
func (l Layout) OffsetCursor(x, y int) (int, int) {
	return l.ChunkX + x, l.ChunkY + y
}

// StartLine returns the first line of a widget of the given height that
// should be rendered when it does not fit in MaxHeight.
func (l Layout) StartLine(height int) int {
	if height <= l.MaxHeight {
		return 0
	}
	switch l.Region {
	case RegionTop:
		return 0
	case RegionMiddle:
		return (height - l.MaxHeight) / 2
	default:
		return height - l.MaxHeight
	}
}
