package enquire

import "unicode/utf8"

// NextKey reads and decodes one key press. Escape sequences are decoded
// eagerly; a lone ESC byte with nothing buffered behind it is reported as
// the Esc key.
func (t *Terminal) NextKey() (KeyEvent, error) {
	b, err := t.in.ReadByte()
	if err != nil {
		return KeyEvent{}, err
	}

	switch b {
	case 0x00:
		return Key(KeyNull), nil
	case '\r', '\n':
		return Key(KeyEnter), nil
	case '\t':
		return Key(KeyTab), nil
	case 0x7f, 0x08:
		return Key(KeyBackspace), nil
	case 0x1b:
		return t.readEscape()
	}

	if b < 0x20 {
		return CtrlKey(rune('a' + b - 1)), nil
	}
	return CharKey(t.readRune(b)), nil
}

// readRune completes a UTF-8 sequence whose first byte is already read.
func (t *Terminal) readRune(first byte) rune {
	if first < utf8.RuneSelf {
		return rune(first)
	}
	buf := [4]byte{first}
	n := 1
	for !utf8.FullRune(buf[:n]) && n < len(buf) {
		b, err := t.in.ReadByte()
		if err != nil {
			break
		}
		buf[n] = b
		n++
	}
	r, _ := utf8.DecodeRune(buf[:n])
	return r
}

func (t *Terminal) readEscape() (KeyEvent, error) {
	if t.in.Buffered() == 0 {
		return Key(KeyEsc), nil
	}
	b, err := t.in.ReadByte()
	if err != nil {
		return Key(KeyEsc), nil
	}
	switch b {
	case '[':
		return t.readCSI()
	case 'O':
		return t.readSS3()
	case 0x7f, 0x08:
		return KeyEvent{Code: KeyBackspace, Mods: ModAlt}, nil
	case 0x1b:
		return Key(KeyEsc), nil
	}
	if b < 0x20 {
		return KeyEvent{Code: KeyChar, Char: rune('a' + b - 1), Mods: ModCtrl | ModAlt}, nil
	}
	return AltKey(t.readRune(b)), nil
}

// csiModifiers maps the xterm modifier parameter (value minus one is a
// bit set of shift=1, alt=2, ctrl=4).
func csiModifiers(param int) Modifiers {
	if param < 2 {
		return ModNone
	}
	bits := param - 1
	var m Modifiers
	if bits&1 != 0 {
		m |= ModShift
	}
	if bits&2 != 0 {
		m |= ModAlt
	}
	if bits&4 != 0 {
		m |= ModCtrl
	}
	return m
}

func (t *Terminal) readCSI() (KeyEvent, error) {
	var params [4]int
	nparams := 0
	for {
		b, err := t.in.ReadByte()
		if err != nil {
			return KeyEvent{}, err
		}
		switch {
		case b >= '0' && b <= '9':
			if nparams == 0 {
				nparams = 1
			}
			params[nparams-1] = params[nparams-1]*10 + int(b-'0')
		case b == ';':
			if nparams < len(params) {
				nparams++
			}
		default:
			mods := ModNone
			if nparams >= 2 {
				mods = csiModifiers(params[1])
			}
			switch b {
			case 'A':
				return KeyEvent{Code: KeyUp, Mods: mods}, nil
			case 'B':
				return KeyEvent{Code: KeyDown, Mods: mods}, nil
			case 'C':
				return KeyEvent{Code: KeyRight, Mods: mods}, nil
			case 'D':
				return KeyEvent{Code: KeyLeft, Mods: mods}, nil
			case 'H':
				return KeyEvent{Code: KeyHome, Mods: mods}, nil
			case 'F':
				return KeyEvent{Code: KeyEnd, Mods: mods}, nil
			case 'Z':
				return Key(KeyBackTab), nil
			case '~':
				return tildeKey(params[0], mods), nil
			default:
				// Unknown sequence; swallow it.
				return Key(KeyEsc), nil
			}
		}
	}
}

func tildeKey(param int, mods Modifiers) KeyEvent {
	switch param {
	case 1, 7:
		return KeyEvent{Code: KeyHome, Mods: mods}
	case 2:
		return KeyEvent{Code: KeyInsert, Mods: mods}
	case 3:
		return KeyEvent{Code: KeyDelete, Mods: mods}
	case 4, 8:
		return KeyEvent{Code: KeyEnd, Mods: mods}
	case 5:
		return KeyEvent{Code: KeyPageUp, Mods: mods}
	case 6:
		return KeyEvent{Code: KeyPageDown, Mods: mods}
	case 11, 12, 13, 14, 15:
		return KeyEvent{Code: KeyFunc, Char: rune(param - 10), Mods: mods}
	case 17, 18, 19, 20, 21:
		return KeyEvent{Code: KeyFunc, Char: rune(param - 11), Mods: mods}
	}
	return Key(KeyEsc)
}

func (t *Terminal) readSS3() (KeyEvent, error) {
	b, err := t.in.ReadByte()
	if err != nil {
		return KeyEvent{}, err
	}
	switch b {
	case 'A':
		return Key(KeyUp), nil
	case 'B':
		return Key(KeyDown), nil
	case 'C':
		return Key(KeyRight), nil
	case 'D':
		return Key(KeyLeft), nil
	case 'H':
		return Key(KeyHome), nil
	case 'F':
		return Key(KeyEnd), nil
	case 'P', 'Q', 'R', 'S':
		return KeyEvent{Code: KeyFunc, Char: rune(1 + b - 'P')}, nil
	}
	return Key(KeyEsc), nil
}
