package enquire

import (
	"strings"
	"testing"
)

// ratingPrompt is a bare-bones custom prompt: a digit 1 through 5 picks
// a rating shown as a row of stars, Enter accepts.
type ratingPrompt struct {
	promptBase
	header Header
	line   *Line
	value  int
}

func newRatingPrompt(message string, a *Answers) *ratingPrompt {
	return &ratingPrompt{
		promptBase: promptBase{message: message, answers: a},
		header:     Header{Message: message, Hint: "(1-5)"},
		line:       NewLine("no rating yet"),
	}
}

func (p *ratingPrompt) Height(layout *Layout) int {
	return p.header.Height(layout) + p.line.Height(layout)
}

func (p *ratingPrompt) Render(layout *Layout, b Backend) error {
	if err := p.header.Render(layout, b); err != nil {
		return err
	}
	if err := writeString(b, "\r\n"); err != nil {
		return err
	}
	if err := b.MoveCursorRight(layout.ChunkX); err != nil {
		return err
	}
	return p.line.Render(layout, b)
}

func (p *ratingPrompt) CursorPos(layout Layout) (int, int) {
	return p.header.CursorPos(layout)
}

func (p *ratingPrompt) HandleKey(key KeyEvent) bool {
	if key.Code == KeyChar && key.Char >= '1' && key.Char <= '5' {
		p.value = int(key.Char - '0')
		p.line.SetText(strings.Repeat("*", p.value))
		return true
	}
	return false
}

func (p *ratingPrompt) Validate() (Validation, error) {
	if p.value == 0 {
		return ValidationContinue, nil
	}
	return ValidationFinish, nil
}

func (p *ratingPrompt) Finish() Answer {
	return IntAnswer(p.value)
}

func (p *ratingPrompt) FinishDefault() (Answer, bool) {
	return nil, false
}

func TestCustomQuestion(t *testing.T) {
	q := Custom("rating", func(message string, a *Answers) Prompt {
		return newRatingPrompt(message, a)
	}).Message("Rate the release").Build()

	// '9' is outside the accepted range and must be ignored.
	a, err := runSession(t, q, CharKey('9'), CharKey('4'), Key(KeyEnter))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if got := a.Int("rating"); got != 4 {
		t.Errorf("rating = %d, want 4", got)
	}
}

func TestCustomPromptHookSeesAnswers(t *testing.T) {
	var saw string
	qs := Questions(
		Input("name").Build(),
		Custom("rating", func(message string, a *Answers) Prompt {
			saw = a.String("name")
			return newRatingPrompt(message, a)
		}).Build(),
	)

	b := NewTestBackend(80, 24)
	ev := NewTestEvents(
		CharKey('g'), Key(KeyEnter),
		CharKey('2'), Key(KeyEnter),
	)
	a, err := AskWith(qs, b, ev)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if saw != "g" {
		t.Errorf("prompt hook saw name = %q, want g", saw)
	}
	if got := a.Int("rating"); got != 2 {
		t.Errorf("rating = %d, want 2", got)
	}
	// Without an explicit message the question asks "<name>:".
	if !strings.Contains(b.Output(), "rating:") {
		t.Error("default message not rendered")
	}
}
