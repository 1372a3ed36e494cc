package enquire

import "iter"

// PromptModule runs a question sequence against an answer set that may
// be prepopulated. Questions whose names are already answered are
// skipped unless they opt in with AskIfAnswered.
type PromptModule struct {
	questions iter.Seq[Question]
	answers   *Answers
}

// NewPromptModule returns a module over the given lazy sequence.
func NewPromptModule(qs iter.Seq[Question]) *PromptModule {
	return &PromptModule{questions: qs, answers: NewAnswers()}
}

// WithAnswers seeds the module with existing answers.
func (m *PromptModule) WithAnswers(a *Answers) *PromptModule {
	m.answers = a
	return m
}

// Answers returns the module's answer set, including seeds.
func (m *PromptModule) Answers() *Answers {
	return m.answers
}

// Run asks the questions on the process terminal.
func (m *PromptModule) Run() (*Answers, error) {
	t := NewTerminal()
	return m.RunWith(t, t)
}

// RunWith asks the questions against an explicit backend and event
// source.
func (m *PromptModule) RunWith(b Backend, ev EventSource) (*Answers, error) {
	for q := range m.questions {
		if err := askOne(q, m.answers, b, ev); err != nil {
			return m.answers, err
		}
	}
	return m.answers, nil
}
