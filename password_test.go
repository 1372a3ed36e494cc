package enquire

import (
	"strings"
	"testing"
)

func typeWord(word string) []KeyEvent {
	keys := make([]KeyEvent, 0, len(word)+1)
	for _, r := range word {
		keys = append(keys, CharKey(r))
	}
	return append(keys, Key(KeyEnter))
}

func TestPasswordMasked(t *testing.T) {
	b := NewTestBackend(80, 24)
	ev := NewTestEvents(typeWord("hunter2")...)
	a, err := AskWith(Questions(Password("pw").Mask('*').Build()), b, ev)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if got := a.String("pw"); got != "hunter2" {
		t.Errorf("answer = %q, want hunter2", got)
	}
	out := b.Output()
	if strings.Contains(out, "hunter2") {
		t.Error("secret echoed to the terminal")
	}
	if !strings.Contains(out, "*******") {
		t.Error("mask characters missing from output")
	}
}

func TestPasswordHidden(t *testing.T) {
	b := NewTestBackend(80, 24)
	ev := NewTestEvents(typeWord("hunter2")...)
	a, err := AskWith(Questions(Password("pw").Build()), b, ev)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if got := a.String("pw"); got != "hunter2" {
		t.Errorf("answer = %q, want hunter2", got)
	}
	out := b.Output()
	if strings.Contains(out, "hunter2") || strings.Contains(out, "*") {
		t.Error("hidden input left traces in the output")
	}
	if !strings.Contains(out, "[input is hidden]") {
		t.Error("hidden hint missing")
	}
}

func TestPasswordFinishedLineHidesSecret(t *testing.T) {
	b := NewTestBackend(80, 24)
	ev := NewTestEvents(typeWord("s3cret")...)
	if _, err := AskWith(Questions(Password("pw").Mask('*').Build()), b, ev); err != nil {
		t.Fatalf("session: %v", err)
	}
	if !strings.Contains(b.Output(), "[hidden]") {
		t.Error("finished line does not say [hidden]")
	}
}
