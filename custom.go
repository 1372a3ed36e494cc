package enquire

// CustomBuilder configures a question backed by a user-written Prompt.
// The built-in prompts are good references for implementing one; no
// particular look is enforced, though matching theirs keeps sessions
// coherent.
type CustomBuilder struct {
	builder[CustomBuilder]
	makePrompt func(message string, a *Answers) Prompt
	hideCursor bool
}

// Custom starts a question stored under name whose prompt is supplied
// by makePrompt. The hook runs when the question is asked, so it sees
// every prior answer.
func Custom(name string, makePrompt func(message string, a *Answers) Prompt) *CustomBuilder {
	b := &CustomBuilder{makePrompt: makePrompt}
	b.builder = newBuilder(b, name)
	return b
}

// HideCursor hides the terminal cursor while the prompt runs, the way
// the list prompts do.
func (b *CustomBuilder) HideCursor() *CustomBuilder {
	b.hideCursor = true
	return b
}

// Build finalizes the question.
func (b *CustomBuilder) Build() Question {
	return Question{
		opts:       b.opts,
		hideCursor: b.hideCursor,
		make:       b.makePrompt,
	}
}
