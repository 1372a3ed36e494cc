package enquire

import "testing"

func rawFixture() *RawSelectBuilder {
	return RawSelect("pick").
		Separator("fruit").
		Choice("apple").
		Choice("banana").
		Choice("cherry")
}

func TestRawSelectTypedIndex(t *testing.T) {
	a, err := runSession(t, rawFixture().Build(),
		Key(KeyBackspace), CharKey('3'), Key(KeyEnter))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if item, _ := a.Item("pick"); item.Index != 3 || item.Text != "cherry" {
		t.Errorf("answer = %+v, want index 3 cherry", item)
	}
}

func TestRawSelectInvalidIndexBlocksEnter(t *testing.T) {
	a, err := runSession(t, rawFixture().Build(),
		Key(KeyBackspace), CharKey('9'),
		Key(KeyEnter),
		Key(KeyBackspace), CharKey('2'),
		Key(KeyEnter),
	)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if item, _ := a.Item("pick"); item.Text != "banana" {
		t.Errorf("answer = %+v, want banana", item)
	}
}

func TestRawSelectMovementSyncsInput(t *testing.T) {
	p := newRawSelectPrompt("q", NewChoiceList(
		Separator("fruit"),
		NewChoice("apple"),
		NewChoice("banana"),
	), promptBase{})

	if got := p.input.Value(); got != "1" {
		t.Errorf("initial answer line = %q, want 1", got)
	}
	p.HandleKey(Key(KeyDown))
	if got := p.input.Value(); got != "2" {
		t.Errorf("answer line after down = %q, want 2", got)
	}
}

func TestRawSelectTypedJumpMovesHover(t *testing.T) {
	p := newRawSelectPrompt("q", NewChoiceList(
		NewChoice("apple"),
		NewChoice("banana"),
		NewChoice("cherry"),
	), promptBase{})

	p.HandleKey(Key(KeyBackspace))
	p.HandleKey(CharKey('3'))
	if at := p.engine.At(); at != 2 {
		t.Errorf("hover = %d, want 2", at)
	}
	if v, err := p.Validate(); v != ValidationFinish || err != nil {
		t.Errorf("Validate = %v, %v", v, err)
	}

	// Clearing the line leaves nothing to finish with.
	p.HandleKey(Key(KeyBackspace))
	if _, err := p.Validate(); err == nil {
		t.Error("Validate accepted an empty answer line")
	}
}

func TestRawSelectOrdinalsSkipSeparators(t *testing.T) {
	p := newRawSelectPrompt("q", NewChoiceList(
		Separator("a"),
		NewChoice("one"),
		Separator("b"),
		NewChoice("two"),
	), promptBase{})

	want := []int{0, 1, 0, 2}
	for i, w := range want {
		if p.ordinals[i] != w {
			t.Errorf("ordinals[%d] = %d, want %d", i, p.ordinals[i], w)
		}
	}
	if p.count != 2 {
		t.Errorf("count = %d, want 2", p.count)
	}
}
