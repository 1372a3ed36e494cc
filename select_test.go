package enquire

import "testing"

func TestSelectAnswer(t *testing.T) {
	q := Select("lang").
		Choice("go").
		Choice("rust").
		Choice("zig").
		Build()
	a, err := runSession(t, q, Key(KeyDown), Key(KeyEnter))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	item, ok := a.Item("lang")
	if !ok || item.Index != 1 || item.Text != "rust" {
		t.Errorf("answer = %+v, want index 1 rust", item)
	}
}

func TestSelectDefault(t *testing.T) {
	q := Select("lang").
		Choice("go").
		Choice("rust").
		Choice("zig").
		Default(2).
		Build()
	a, err := runSession(t, q, Key(KeyEnter))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if item, _ := a.Item("lang"); item.Index != 2 {
		t.Errorf("answer = %+v, want index 2", item)
	}
}

func TestSelectVimKeys(t *testing.T) {
	q := Select("lang").
		Choice("go").Choice("rust").Choice("zig").
		Build()
	a, err := runSession(t, q, CharKey('j'), CharKey('j'), CharKey('k'), Key(KeyEnter))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if item, _ := a.Item("lang"); item.Index != 1 {
		t.Errorf("answer = %+v, want index 1", item)
	}
}

func TestSelectSkipsLeadingSeparator(t *testing.T) {
	q := Select("lang").
		Separator("compiled").
		Choice("go").
		Choice("rust").
		Build()
	a, err := runSession(t, q, Key(KeyEnter))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if item, _ := a.Item("lang"); item.Index != 1 || item.Text != "go" {
		t.Errorf("answer = %+v, want index 1 go", item)
	}
}
