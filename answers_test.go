package enquire

import "testing"

func TestAnswersOrderAndReplace(t *testing.T) {
	a := NewAnswers()
	a.Set("one", IntAnswer(1))
	a.Set("two", IntAnswer(2))
	a.Set("one", IntAnswer(10))

	var names []string
	for name := range a.All() {
		names = append(names, name)
	}
	if len(names) != 2 || names[0] != "one" || names[1] != "two" {
		t.Errorf("order = %v, want [one two]", names)
	}
	if a.Int("one") != 10 {
		t.Errorf("replaced value = %d, want 10", a.Int("one"))
	}
}

func TestAnswerDisplay(t *testing.T) {
	cases := []struct {
		ans  Answer
		want string
	}{
		{StringAnswer("hi"), "hi"},
		{IntAnswer(-3), "-3"},
		{FloatAnswer(2.5), "2.5"},
		{BoolAnswer(true), "Yes"},
		{BoolAnswer(false), "No"},
		{ListItem{Index: 1, Text: "go"}, "go"},
		{ExpandItem{Key: 'y', Text: "yes"}, "yes"},
		{ListItems{{Text: "a"}, {Text: "b"}}, "a, b"},
	}
	for _, tc := range cases {
		if got := tc.ans.Display(); got != tc.want {
			t.Errorf("Display(%#v) = %q, want %q", tc.ans, got, tc.want)
		}
	}
}

func TestAnswersTypedGettersMismatch(t *testing.T) {
	a := NewAnswers()
	a.Set("n", IntAnswer(5))
	if got := a.String("n"); got != "" {
		t.Errorf("String on int answer = %q, want empty", got)
	}
	if _, ok := a.Item("n"); ok {
		t.Error("Item on int answer reported ok")
	}
}
