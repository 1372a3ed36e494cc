package enquire

// KeyCode identifies a key press independent of modifiers.
type KeyCode uint8

const (
	KeyChar KeyCode = iota // a printable rune, in KeyEvent.Char
	KeyEnter
	KeyTab
	KeyBackTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyFunc // F1-F12, number in KeyEvent.Char
	KeyNull // NUL byte, treated as end of stream
)

// Modifiers is a bit set of modifier keys held during a key press.
type Modifiers uint8

const (
	ModNone Modifiers = 0
	ModCtrl Modifiers = 1 << iota
	ModAlt
	ModShift
)

// KeyEvent is a single decoded key press.
type KeyEvent struct {
	Code KeyCode
	Char rune
	Mods Modifiers
}

// Key constructs a plain key event.
func Key(code KeyCode) KeyEvent {
	return KeyEvent{Code: code}
}

// Char constructs a printable character event.
func CharKey(r rune) KeyEvent {
	return KeyEvent{Code: KeyChar, Char: r}
}

// CtrlKey constructs a Ctrl-modified character event.
func CtrlKey(r rune) KeyEvent {
	return KeyEvent{Code: KeyChar, Char: r, Mods: ModCtrl}
}

// AltKey constructs an Alt-modified character event.
func AltKey(r rune) KeyEvent {
	return KeyEvent{Code: KeyChar, Char: r, Mods: ModAlt}
}

// Is reports whether the event is the given code with no modifiers.
func (k KeyEvent) Is(code KeyCode) bool {
	return k.Code == code && k.Mods == ModNone
}

// IsChar reports whether the event is the given unmodified rune.
func (k KeyEvent) IsChar(r rune) bool {
	return k.Code == KeyChar && k.Char == r && k.Mods == ModNone
}

// IsCtrl reports whether the event is Ctrl plus the given rune.
func (k KeyEvent) IsCtrl(r rune) bool {
	return k.Code == KeyChar && k.Char == r && k.Mods == ModCtrl
}

// IsAlt reports whether the event is Alt plus the given rune.
func (k KeyEvent) IsAlt(r rune) bool {
	return k.Code == KeyChar && k.Char == r && k.Mods == ModAlt
}

// EventSource delivers decoded key events to the prompt driver.
type EventSource interface {
	// NextKey blocks until a key press is available and returns it.
	NextKey() (KeyEvent, error)
}

// Movement is the navigation intent decoded from a key press. List-style
// widgets navigate via movements rather than raw keys so that arrow keys,
// emacs bindings and vi bindings all behave uniformly.
type Movement uint8

const (
	MoveNone Movement = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	MovePageUp
	MovePageDown
	MoveHome
	MoveEnd
	MovePrevWord
	MoveNextWord
)

// MovementFromKey decodes the navigation intent of a key press, or
// MoveNone if the key is not a navigation key. The vi chars (hjkl, g, G)
// are included; text widgets consume printable chars before consulting
// movements so the two never conflict.
func MovementFromKey(key KeyEvent) Movement {
	switch key.Code {
	case KeyUp:
		return MoveUp
	case KeyDown:
		return MoveDown
	case KeyLeft:
		if key.Mods&(ModCtrl|ModAlt) != 0 {
			return MovePrevWord
		}
		return MoveLeft
	case KeyRight:
		if key.Mods&(ModCtrl|ModAlt) != 0 {
			return MoveNextWord
		}
		return MoveRight
	case KeyPageUp:
		return MovePageUp
	case KeyPageDown:
		return MovePageDown
	case KeyHome:
		return MoveHome
	case KeyEnd:
		return MoveEnd
	}

	if key.Code != KeyChar {
		return MoveNone
	}
	switch key.Mods {
	case ModNone:
		switch key.Char {
		case 'k':
			return MoveUp
		case 'j':
			return MoveDown
		case 'h':
			return MoveLeft
		case 'l':
			return MoveRight
		case 'g':
			return MoveHome
		case 'G':
			return MoveEnd
		}
	case ModCtrl:
		switch key.Char {
		case 'p':
			return MoveUp
		case 'n':
			return MoveDown
		case 'b':
			return MoveLeft
		case 'f':
			return MoveRight
		case 'a':
			return MoveHome
		case 'e':
			return MoveEnd
		}
	case ModAlt:
		switch key.Char {
		case 'b':
			return MovePrevWord
		case 'f':
			return MoveNextWord
		}
	}
	return MoveNone
}
