package enquire

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// StringInput is a single-line editor with emacs-style bindings. The
// caret is tracked as a rune index and moves over whole grapheme
// clusters; rendering accounts for wide runes and for the prompt text
// already on the line, letting long values wrap onto further terminal
// rows.
type StringInput struct {
	value []rune
	at    int

	mask       rune // 0 means no mask
	hideOutput bool

	// FilterMap rewrites or rejects each typed rune before insertion.
	FilterMap func(rune) (rune, bool)
}

// NewStringInput returns an empty string input.
func NewStringInput() *StringInput {
	return &StringInput{}
}

// Masked makes every rune render as m (password style).
func (s *StringInput) Masked(m rune) *StringInput {
	s.mask = m
	return s
}

// Hidden suppresses rendering entirely while still collecting input.
func (s *StringInput) Hidden() *StringInput {
	s.hideOutput = true
	return s
}

// Value returns the current contents.
func (s *StringInput) Value() string {
	return string(s.value)
}

// SetValue replaces the contents and moves the caret to the end.
func (s *StringInput) SetValue(v string) {
	s.value = []rune(v)
	s.at = len(s.value)
}

// Len returns the rune count of the contents.
func (s *StringInput) Len() int {
	return len(s.value)
}

func (s *StringInput) display() string {
	if s.hideOutput {
		return ""
	}
	if s.mask != 0 {
		return strings.Repeat(string(s.mask), len(s.value))
	}
	return string(s.value)
}

// displayWidth is the rendered cell width of the whole value.
func (s *StringInput) displayWidth() int {
	return textWidth(s.display())
}

// caretOffset is the rendered cell width left of the caret.
func (s *StringInput) caretOffset() int {
	if s.hideOutput {
		return 0
	}
	if s.mask != 0 {
		return s.at * textWidth(string(s.mask))
	}
	return textWidth(string(s.value[:s.at]))
}

func (s *StringInput) insert(r rune) bool {
	if s.FilterMap != nil {
		mapped, ok := s.FilterMap(r)
		if !ok {
			return false
		}
		r = mapped
	}
	s.value = append(s.value, 0)
	copy(s.value[s.at+1:], s.value[s.at:])
	s.value[s.at] = r
	s.at++
	return true
}

func (s *StringInput) deleteRange(from, to int) bool {
	if from < 0 {
		from = 0
	}
	if to > len(s.value) {
		to = len(s.value)
	}
	if from >= to {
		return false
	}
	s.value = append(s.value[:from], s.value[to:]...)
	s.at = from
	return true
}

// prevGrapheme returns the rune index of the start of the grapheme
// cluster left of the caret.
func (s *StringInput) prevGrapheme() int {
	start, i := 0, 0
	g := uniseg.NewGraphemes(string(s.value[:s.at]))
	for g.Next() {
		start = i
		i += len(g.Runes())
	}
	return start
}

// nextGrapheme returns the rune index just past the grapheme cluster
// right of the caret.
func (s *StringInput) nextGrapheme() int {
	g := uniseg.NewGraphemes(string(s.value[s.at:]))
	if g.Next() {
		return s.at + len(g.Runes())
	}
	return s.at
}

// Combining marks travel with the word they attach to.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

// prevWord finds the index of the start of the word left of the caret.
func (s *StringInput) prevWord() int {
	i := s.at
	for i > 0 && !isWordRune(s.value[i-1]) {
		i--
	}
	for i > 0 && isWordRune(s.value[i-1]) {
		i--
	}
	return i
}

// nextWord finds the index just past the word right of the caret.
func (s *StringInput) nextWord() int {
	i := s.at
	for i < len(s.value) && !isWordRune(s.value[i]) {
		i++
	}
	for i < len(s.value) && isWordRune(s.value[i]) {
		i++
	}
	return i
}

func (s *StringInput) HandleKey(key KeyEvent) bool {
	switch {
	case key.Code == KeyChar && key.Mods == ModNone:
		return s.insert(key.Char)
	case key.Is(KeyBackspace), key.IsCtrl('w'):
		return s.deleteRange(s.prevGrapheme(), s.at)
	case key.Is(KeyDelete):
		return s.deleteRange(s.at, s.nextGrapheme())
	case key.IsCtrl('u'):
		return s.deleteRange(0, s.at)
	case key.IsCtrl('k'):
		return s.deleteRange(s.at, len(s.value))
	case key.Code == KeyBackspace && key.Mods == ModAlt, key.IsAlt('w'):
		return s.deleteRange(s.prevWord(), s.at)
	case key.IsAlt('d'), key.Code == KeyDelete && key.Mods == ModAlt:
		return s.deleteRange(s.at, s.nextWord())
	}

	switch MovementFromKey(key) {
	case MoveLeft:
		if s.at > 0 {
			s.at = s.prevGrapheme()
			return true
		}
	case MoveRight:
		if s.at < len(s.value) {
			s.at = s.nextGrapheme()
			return true
		}
	case MoveHome:
		if s.at != 0 {
			s.at = 0
			return true
		}
	case MoveEnd:
		if s.at != len(s.value) {
			s.at = len(s.value)
			return true
		}
	case MovePrevWord:
		if w := s.prevWord(); w != s.at {
			s.at = w
			return true
		}
	case MoveNextWord:
		if w := s.nextWord(); w != s.at {
			s.at = w
			return true
		}
	}
	return false
}

// Height accounts for the prompt text already on the line: the value
// wraps at the terminal edge, with one extra cell reserved so a caret
// sitting past the last rune stays visible.
func (s *StringInput) Height(layout *Layout) int {
	start := layout.ChunkX + layout.OffsetX
	rows := (start+s.displayWidth())/layout.Width + 1
	layout.OffsetY += rows - 1
	endX := (start + s.displayWidth()) % layout.Width
	if endX >= layout.ChunkX {
		layout.OffsetX = endX - layout.ChunkX
	} else {
		layout.OffsetX = 0
	}
	return rows
}

func (s *StringInput) Render(layout *Layout, b Backend) error {
	if !s.hideOutput {
		if err := writeString(b, s.display()); err != nil {
			return err
		}
	}
	s.Height(layout)
	return nil
}

func (s *StringInput) CursorPos(layout Layout) (int, int) {
	pos := layout.ChunkX + layout.OffsetX + s.caretOffset()
	return pos % layout.Width, layout.OffsetY + pos/layout.Width
}
