package enquire

import "testing"

func typeString(s *StringInput, text string) {
	for _, r := range text {
		s.HandleKey(CharKey(r))
	}
}

func TestStringInputEditing(t *testing.T) {
	t.Run("insert and backspace", func(t *testing.T) {
		s := NewStringInput()
		typeString(s, "abc")
		s.HandleKey(Key(KeyBackspace))
		if got := s.Value(); got != "ab" {
			t.Errorf("value = %q, want %q", got, "ab")
		}
	})

	t.Run("insert at caret", func(t *testing.T) {
		s := NewStringInput()
		typeString(s, "25")
		s.HandleKey(Key(KeyHome))
		s.HandleKey(CharKey('1'))
		if got := s.Value(); got != "125" {
			t.Errorf("value = %q, want %q", got, "125")
		}
	})

	t.Run("delete forward", func(t *testing.T) {
		s := NewStringInput()
		typeString(s, "abc")
		s.HandleKey(Key(KeyHome))
		s.HandleKey(Key(KeyDelete))
		if got := s.Value(); got != "bc" {
			t.Errorf("value = %q, want %q", got, "bc")
		}
	})

	t.Run("kill to home and end", func(t *testing.T) {
		s := NewStringInput()
		typeString(s, "hello world")
		s.HandleKey(Key(KeyLeft))
		s.HandleKey(Key(KeyLeft))
		s.HandleKey(CtrlKey('u'))
		if got := s.Value(); got != "ld" {
			t.Errorf("after ctrl-u value = %q, want %q", got, "ld")
		}
		s.HandleKey(CtrlKey('k'))
		if got := s.Value(); got != "" {
			t.Errorf("after ctrl-k value = %q, want empty", got)
		}
	})

	t.Run("delete previous word", func(t *testing.T) {
		s := NewStringInput()
		typeString(s, "one two")
		s.HandleKey(AltKey('w'))
		if got := s.Value(); got != "one " {
			t.Errorf("value = %q, want %q", got, "one ")
		}
	})

	t.Run("combining sequence deleted whole", func(t *testing.T) {
		s := NewStringInput()
		s.SetValue("é")
		s.HandleKey(Key(KeyBackspace))
		if got := s.Value(); got != "" {
			t.Errorf("value = %q, want empty", got)
		}
	})

	t.Run("caret moves over grapheme clusters", func(t *testing.T) {
		s := NewStringInput()
		s.SetValue("aéb")
		s.HandleKey(Key(KeyLeft))
		s.HandleKey(Key(KeyLeft))
		s.HandleKey(Key(KeyDelete))
		if got := s.Value(); got != "ab" {
			t.Errorf("value = %q, want %q", got, "ab")
		}
	})

	t.Run("word motion", func(t *testing.T) {
		s := NewStringInput()
		typeString(s, "foo bar baz")
		s.HandleKey(Key(KeyHome))
		s.HandleKey(AltKey('f'))
		s.HandleKey(AltKey('f'))
		s.HandleKey(AltKey('d'))
		if got := s.Value(); got != "foo bar" {
			t.Errorf("value = %q, want %q", got, "foo bar")
		}
	})
}

func TestStringInputFilterMap(t *testing.T) {
	s := NewStringInput()
	s.FilterMap = func(r rune) (rune, bool) {
		if r >= '0' && r <= '9' {
			return r, true
		}
		return 0, false
	}
	typeString(s, "a1b2")
	if got := s.Value(); got != "12" {
		t.Errorf("value = %q, want %q", got, "12")
	}
	if s.HandleKey(CharKey('x')) {
		t.Error("rejected rune reported as handled")
	}
}

func TestStringInputMask(t *testing.T) {
	s := NewStringInput().Masked('*')
	typeString(s, "secret")
	if got := s.display(); got != "******" {
		t.Errorf("display = %q, want %q", got, "******")
	}
	if got := s.Value(); got != "secret" {
		t.Errorf("value = %q, want %q", got, "secret")
	}

	hidden := NewStringInput().Hidden()
	typeString(hidden, "secret")
	if got := hidden.display(); got != "" {
		t.Errorf("hidden display = %q, want empty", got)
	}
	if hidden.displayWidth() != 0 {
		t.Errorf("hidden width = %d, want 0", hidden.displayWidth())
	}
}

func TestStringInputWrapHeight(t *testing.T) {
	s := NewStringInput()
	s.SetValue("0123456789")
	layout := NewLayout(Size{Width: 10, Height: 24})
	// Value fills the line exactly, so the caret wraps onto a second
	// row.
	if got := s.Height(&layout); got != 2 {
		t.Errorf("Height = %d, want 2", got)
	}

	layout = NewLayout(Size{Width: 10, Height: 24})
	x, y := s.CursorPos(layout)
	if x != 0 || y != 1 {
		t.Errorf("CursorPos = (%d, %d), want (0, 1)", x, y)
	}
}
