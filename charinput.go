package enquire

// CharInput holds at most one character, used by prompts that answer
// with a single key (confirm, expand). Typing replaces the character;
// backspace or delete clears it.
type CharInput struct {
	value rune // 0 means empty

	// FilterMap rewrites or rejects the typed rune.
	FilterMap func(rune) (rune, bool)
}

// NewCharInput returns an empty char input.
func NewCharInput() *CharInput {
	return &CharInput{}
}

// Value returns the held character and whether one is set.
func (c *CharInput) Value() (rune, bool) {
	return c.value, c.value != 0
}

// SetValue sets the held character.
func (c *CharInput) SetValue(r rune) {
	c.value = r
}

// Clear empties the input.
func (c *CharInput) Clear() {
	c.value = 0
}

func (c *CharInput) HandleKey(key KeyEvent) bool {
	switch {
	case key.Code == KeyChar && key.Mods == ModNone:
		r := key.Char
		if c.FilterMap != nil {
			mapped, ok := c.FilterMap(r)
			if !ok {
				return false
			}
			r = mapped
		}
		c.value = r
		return true
	case key.Is(KeyBackspace), key.Is(KeyDelete):
		if c.value == 0 {
			return false
		}
		c.value = 0
		return true
	}
	return false
}

func (c *CharInput) Height(layout *Layout) int {
	if c.value != 0 {
		layout.OffsetX += textWidth(string(c.value))
	}
	return 1
}

func (c *CharInput) Render(layout *Layout, b Backend) error {
	if c.value != 0 {
		if err := writeString(b, string(c.value)); err != nil {
			return err
		}
	}
	c.Height(layout)
	return nil
}

func (c *CharInput) CursorPos(layout Layout) (int, int) {
	w := 0
	if c.value != 0 {
		w = textWidth(string(c.value))
	}
	return layout.OffsetCursor(layout.OffsetX+w, layout.OffsetY)
}
