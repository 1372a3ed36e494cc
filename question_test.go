package enquire

import (
	"errors"
	"iter"
	"strings"
	"testing"
)

func TestAskCollectsInOrder(t *testing.T) {
	b := NewTestBackend(80, 24)
	ev := NewTestEvents(
		CharKey('a'), Key(KeyEnter),
		CharKey('y'), Key(KeyEnter),
	)
	a, err := AskWith(Questions(
		Input("first").Build(),
		Confirm("second").Build(),
	), b, ev)
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	var names []string
	for name := range a.All() {
		names = append(names, name)
	}
	if len(names) != 2 || names[0] != "first" || names[1] != "second" {
		t.Errorf("answer order = %v", names)
	}
	if a.String("first") != "a" || !a.Bool("second") {
		t.Error("answers wrong")
	}
}

func TestAskDefaultMessage(t *testing.T) {
	b := NewTestBackend(80, 24)
	ev := NewTestEvents(Key(KeyEnter))
	if _, err := AskWith(Questions(Input("city").Default("x").Build()), b, ev); err != nil {
		t.Fatalf("session: %v", err)
	}
	if !strings.Contains(b.Output(), "city:") {
		t.Error("default message \"city:\" not rendered")
	}
}

func TestEscTerminateAbortsSession(t *testing.T) {
	b := NewTestBackend(80, 24)
	ev := NewTestEvents(Key(KeyEsc))
	a, err := AskWith(Questions(
		Input("first").OnEsc(EscTerminate).Build(),
		Input("second").Build(),
	), b, ev)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("err = %v, want ErrAborted", err)
	}
	if a.Len() != 0 {
		t.Errorf("answers = %d entries after abort, want 0", a.Len())
	}
	if d := b.RawDepth(); d != 0 {
		t.Errorf("raw mode depth = %d after abort, want 0", d)
	}
}

func TestEscSkipQuestionLeavesNoAnswer(t *testing.T) {
	b := NewTestBackend(80, 24)
	ev := NewTestEvents(
		Key(KeyEsc),
		CharKey('b'), Key(KeyEnter),
	)
	a, err := AskWith(Questions(
		Input("skipped").OnEsc(EscSkipQuestion).Build(),
		Input("kept").Build(),
	), b, ev)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if a.Has("skipped") {
		t.Error("skipped question left an answer")
	}
	if got := a.String("kept"); got != "b" {
		t.Errorf("kept = %q, want b", got)
	}
}

func TestEscIgnoreFinishesWithDefault(t *testing.T) {
	a, err := runSession(t, Input("name").Default("fallback").Build(), Key(KeyEsc))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if got := a.String("name"); got != "fallback" {
		t.Errorf("answer = %q, want fallback", got)
	}
}

func TestEscIgnoreWithoutDefaultKeepsPrompting(t *testing.T) {
	a, err := runSession(t, Input("name").Build(),
		Key(KeyEsc), CharKey('x'), Key(KeyEnter))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if got := a.String("name"); got != "x" {
		t.Errorf("answer = %q, want x", got)
	}
}

func TestWhenGatesQuestion(t *testing.T) {
	b := NewTestBackend(80, 24)
	ev := NewTestEvents(
		CharKey('n'), Key(KeyEnter),
	)
	a, err := AskWith(Questions(
		Confirm("ci").Default(false).Build(),
		Input("pipeline").WhenFn(func(a *Answers) bool { return a.Bool("ci") }).Build(),
	), b, ev)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if a.Has("pipeline") {
		t.Error("gated question was asked")
	}
}

func TestMessageFnSeesPriorAnswers(t *testing.T) {
	b := NewTestBackend(80, 24)
	ev := NewTestEvents(
		CharKey('g'), CharKey('o'), Key(KeyEnter),
		CharKey('y'), Key(KeyEnter),
	)
	_, err := AskWith(Questions(
		Input("lang").Build(),
		Confirm("sure").MessageFn(func(a *Answers) string {
			return "Use " + a.String("lang") + "?"
		}).Build(),
	), b, ev)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if !strings.Contains(b.Output(), "Use go?") {
		t.Error("computed message not rendered")
	}
}

func TestModuleSkipsSeededAnswers(t *testing.T) {
	seed := NewAnswers()
	seed.Set("name", StringAnswer("preset"))

	b := NewTestBackend(80, 24)
	ev := NewTestEvents(CharKey('y'), Key(KeyEnter))
	m := NewPromptModule(Questions(
		Input("name").Build(),
		Confirm("ok").Build(),
	)).WithAnswers(seed)
	a, err := m.RunWith(b, ev)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if got := a.String("name"); got != "preset" {
		t.Errorf("seeded answer = %q, want preset", got)
	}
	if !a.Bool("ok") {
		t.Error("unseeded question not asked")
	}
}

func TestModuleAskIfAnswered(t *testing.T) {
	seed := NewAnswers()
	seed.Set("name", StringAnswer("preset"))

	b := NewTestBackend(80, 24)
	ev := NewTestEvents(CharKey('n'), CharKey('e'), CharKey('w'), Key(KeyEnter))
	m := NewPromptModule(Questions(
		Input("name").AskIfAnswered().Build(),
	)).WithAnswers(seed)
	a, err := m.RunWith(b, ev)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if got := a.String("name"); got != "new" {
		t.Errorf("answer = %q, want new", got)
	}
}

func TestLazySequenceSeesPriorAnswers(t *testing.T) {
	// The sequence is pulled one question at a time, so later questions
	// can be constructed from earlier answers.
	var observed string
	qs := iter.Seq[Question](func(yield func(Question) bool) {
		if !yield(Input("lang").Build()) {
			return
		}
		yield(Confirm("ok").MessageFn(func(a *Answers) string {
			observed = a.String("lang")
			return "Confirm " + observed
		}).Build())
	})

	b := NewTestBackend(80, 24)
	ev := NewTestEvents(
		CharKey('g'), CharKey('o'), Key(KeyEnter),
		CharKey('y'), Key(KeyEnter),
	)
	if _, err := AskWith(qs, b, ev); err != nil {
		t.Fatalf("session: %v", err)
	}
	if observed != "go" {
		t.Errorf("later question observed %q, want go", observed)
	}
}

func TestQuestionFilter(t *testing.T) {
	q := Input("name").
		Filter(func(s string, _ *Answers) string { return strings.ToUpper(s) }).
		Build()
	a, err := runSession(t, q, CharKey('h'), CharKey('i'), Key(KeyEnter))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if got := a.String("name"); got != "HI" {
		t.Errorf("answer = %q, want HI", got)
	}
}

func TestQuestionTransform(t *testing.T) {
	q := Confirm("ok").Default(true).
		Transform(func(ans Answer, _ *Answers, b Backend) error {
			return writeString(b, "custom finished line")
		}).
		Build()
	b := NewTestBackend(80, 24)
	ev := NewTestEvents(Key(KeyEnter))
	if _, err := AskWith(Questions(q), b, ev); err != nil {
		t.Fatalf("session: %v", err)
	}
	if !strings.Contains(b.Output(), "custom finished line") {
		t.Error("transform output missing")
	}
}

func TestAskOne(t *testing.T) {
	b := NewTestBackend(80, 24)
	ev := NewTestEvents(CharKey('y'), Key(KeyEnter))
	ans, err := AskOne(Confirm("ok").Build(), b, ev)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if ans != BoolAnswer(true) {
		t.Errorf("answer = %v, want true", ans)
	}
}
