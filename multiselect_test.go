package enquire

import (
	"fmt"
	"testing"
)

func multiSelectFixture() *MultiSelectBuilder {
	return MultiSelect("picks").Choices(
		Separator("== group one =="),
		NewChoice("alpha"),
		DefaultSeparator(),
		NewChoice("bravo"),
		NewChoice("charlie"),
		Separator("== group two =="),
		NewChoice("delta"),
		NewChoice("echo"),
		NewChoice("foxtrot"),
		NewChoice("golf"),
	)
}

func TestMultiSelectPicksAroundSeparators(t *testing.T) {
	// Hover starts on the first selectable item past the leading
	// separator; movement skips dividers in both directions.
	a, err := runSession(t, multiSelectFixture().Build(),
		Key(KeyDown), CharKey(' '),
		Key(KeyEnd), CharKey(' '),
		Key(KeyEnter),
	)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	items, _ := a.Items("picks")
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2: %v", len(items), items)
	}
	if items[0].Index != 3 || items[0].Text != "bravo" {
		t.Errorf("items[0] = %+v, want index 3 bravo", items[0])
	}
	if items[1].Index != 9 || items[1].Text != "golf" {
		t.Errorf("items[1] = %+v, want index 9 golf", items[1])
	}
}

func TestMultiSelectToggleAll(t *testing.T) {
	a, err := runSession(t, multiSelectFixture().Build(),
		CharKey('a'), Key(KeyEnter))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if items, _ := a.Items("picks"); len(items) != 7 {
		t.Errorf("selected %d items, want all 7 selectable", len(items))
	}

	// With everything on, 'a' turns everything off.
	a, err = runSession(t, multiSelectFixture().Build(),
		CharKey('a'), CharKey('a'), Key(KeyEnter))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if items, _ := a.Items("picks"); len(items) != 0 {
		t.Errorf("selected %d items after double toggle, want 0", len(items))
	}
}

func TestMultiSelectInvert(t *testing.T) {
	a, err := runSession(t, multiSelectFixture().Build(),
		CharKey(' '), CharKey('i'), Key(KeyEnter))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	items, _ := a.Items("picks")
	if got := len(items); got != 6 {
		t.Fatalf("selected %d items, want 6", got)
	}
	for _, it := range items {
		if it.Index == 1 {
			t.Error("inversion kept the originally selected item")
		}
	}
}

func TestMultiSelectCheckedChoices(t *testing.T) {
	q := MultiSelect("picks").Choices(
		NewChoice("one"),
		CheckedChoice("two"),
		CheckedChoice("three"),
	).Build()
	a, err := runSession(t, q, Key(KeyEnter))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	items, _ := a.Items("picks")
	if len(items) != 2 || items[0].Text != "two" || items[1].Text != "three" {
		t.Errorf("items = %v, want two and three", items)
	}
}

func TestMultiSelectValidate(t *testing.T) {
	q := multiSelectFixture().Validate(func(items ListItems, _ *Answers) error {
		if len(items) == 0 {
			return fmt.Errorf("pick at least one")
		}
		return nil
	}).Build()
	a, err := runSession(t, q,
		Key(KeyEnter),
		CharKey(' '), Key(KeyEnter),
	)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if items, _ := a.Items("picks"); len(items) != 1 {
		t.Errorf("selected %d items, want 1", len(items))
	}
}

func TestMultiSelectSeparatorNeverSelected(t *testing.T) {
	list := NewChoiceList(
		Separator("div"),
		NewChoice("one"),
	)
	// Force the separator on behind the prompt's back; the readout
	// pins it back to false.
	p := newMultiSelectPrompt("q", list, promptBase{})
	p.selected[0] = true
	items := p.items()
	if len(items) != 0 {
		t.Errorf("items = %v, want none", items)
	}
	if p.selected[0] {
		t.Error("separator still marked selected after readout")
	}
}
