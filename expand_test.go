package enquire

import "testing"

func expandFixture() *ExpandBuilder {
	return Expand("mode").
		Choice('y', "Overwrite").
		Choice('a', "Overwrite all").
		Choice('d', "Show diff").
		Separator("danger zone").
		Choice('x', "Abort")
}

func TestExpandHint(t *testing.T) {
	t.Run("no default capitalizes h", func(t *testing.T) {
		p := newExpandPrompt("q", NewChoiceList(NewChoice("yes")), []rune{'y'}, 0, promptBase{})
		if got := p.hint(); got != "(yH)" {
			t.Errorf("hint = %q, want (yH)", got)
		}
	})
	t.Run("default key capitalized in place", func(t *testing.T) {
		p := newExpandPrompt("q",
			NewChoiceList(NewChoice("y"), NewChoice("a"), NewChoice("d")),
			[]rune{'y', 'a', 'd'}, 'a', promptBase{})
		if got := p.hint(); got != "(yAdh)" {
			t.Errorf("hint = %q, want (yAdh)", got)
		}
	})
}

func TestExpandTypedKey(t *testing.T) {
	a, err := runSession(t, expandFixture().Build(), CharKey('d'), Key(KeyEnter))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	ans, _ := a.Get("mode")
	item, ok := ans.(ExpandItem)
	if !ok || item.Key != 'd' || item.Text != "Show diff" {
		t.Errorf("answer = %v, want key d Show diff", ans)
	}
}

func TestExpandUppercaseKeyLowered(t *testing.T) {
	a, err := runSession(t, expandFixture().Build(), CharKey('Y'), Key(KeyEnter))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	ans, _ := a.Get("mode")
	if item := ans.(ExpandItem); item.Key != 'y' {
		t.Errorf("answer key = %q, want y", item.Key)
	}
}

func TestExpandDefaultKey(t *testing.T) {
	a, err := runSession(t, expandFixture().Default('a').Build(), Key(KeyEnter))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	ans, _ := a.Get("mode")
	if item := ans.(ExpandItem); item.Key != 'a' || item.Text != "Overwrite all" {
		t.Errorf("answer = %+v, want default a", item)
	}
}

func TestExpandListingFlow(t *testing.T) {
	// Enter with no default expands, movement picks an item, Enter
	// collapses with the key pending and a second Enter finishes.
	a, err := runSession(t, expandFixture().Build(),
		Key(KeyEnter),
		Key(KeyDown),
		Key(KeyEnter),
		Key(KeyEnter),
	)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	ans, _ := a.Get("mode")
	if item := ans.(ExpandItem); item.Key != 'a' {
		t.Errorf("answer key = %q, want a", item.Key)
	}
}

func TestExpandEscCollapsesListing(t *testing.T) {
	a, err := runSession(t, expandFixture().Build(),
		CharKey('h'), Key(KeyEnter),
		Key(KeyEsc),
		CharKey('x'), Key(KeyEnter),
	)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	ans, _ := a.Get("mode")
	if item := ans.(ExpandItem); item.Key != 'x' || item.Text != "Abort" {
		t.Errorf("answer = %+v, want key x Abort", item)
	}
}

func TestExpandRejectsUnknownKeys(t *testing.T) {
	p := newExpandPrompt("q", NewChoiceList(NewChoice("yes")), []rune{'y'}, 0, promptBase{})
	if p.HandleKey(CharKey('z')) {
		t.Error("accepted a key outside the choice set")
	}
	if !p.HandleKey(CharKey('h')) {
		t.Error("rejected the expand key")
	}
}

func TestExpandListingSkipsSeparator(t *testing.T) {
	p := newExpandPrompt("q",
		NewChoiceList(NewChoice("one"), Separator("div"), NewChoice("two")),
		[]rune{'o', 0, 't'}, 0, promptBase{})
	p.expand()
	p.engine.HandleKey(Key(KeyDown))
	if at := p.engine.At(); at != 2 {
		t.Errorf("hover = %d, want 2", at)
	}
}
