package enquire

import "testing"

func TestConfirmDefaults(t *testing.T) {
	t.Run("enter accepts true default", func(t *testing.T) {
		a, err := runSession(t, Confirm("ok").Default(true).Build(), Key(KeyEnter))
		if err != nil {
			t.Fatalf("session: %v", err)
		}
		if !a.Bool("ok") {
			t.Error("answer = false, want true")
		}
	})

	t.Run("enter accepts false default", func(t *testing.T) {
		a, err := runSession(t, Confirm("ok").Default(false).Build(), Key(KeyEnter))
		if err != nil {
			t.Fatalf("session: %v", err)
		}
		if a.Bool("ok") {
			t.Error("answer = true, want false")
		}
	})

	t.Run("typed n overrides true default", func(t *testing.T) {
		a, err := runSession(t, Confirm("ok").Default(true).Build(), CharKey('n'), Key(KeyEnter))
		if err != nil {
			t.Fatalf("session: %v", err)
		}
		if a.Bool("ok") {
			t.Error("answer = true, want false")
		}
	})

	t.Run("enter without value or default is ignored", func(t *testing.T) {
		_, err := runSession(t, Confirm("ok").Build(), Key(KeyEnter), CharKey('y'), Key(KeyEnter))
		if err != nil {
			t.Fatalf("session: %v", err)
		}
	})
}

func TestConfirmRejectsOtherChars(t *testing.T) {
	def := false
	p := newConfirmPrompt("ok?", &def, promptBase{message: "ok?"})
	if p.HandleKey(CharKey('x')) {
		t.Error("accepted a rune outside y/n")
	}
	if !p.HandleKey(CharKey('Y')) {
		t.Error("rejected Y")
	}
	if ans := p.Finish(); ans != BoolAnswer(true) {
		t.Errorf("Finish = %v, want true", ans)
	}
}

func TestConfirmHint(t *testing.T) {
	cases := []struct {
		def  *bool
		want string
	}{
		{nil, "(y/n)"},
		{ptr(true), "(Y/n)"},
		{ptr(false), "(y/N)"},
	}
	for _, tc := range cases {
		p := newConfirmPrompt("ok?", tc.def, promptBase{})
		if p.header.Hint != tc.want {
			t.Errorf("hint = %q, want %q", p.header.Hint, tc.want)
		}
	}
}

func ptr[T any](v T) *T { return &v }
