package enquire

// confirmPrompt waits for a single y/n, with Enter accepting the
// default when one is set.
type confirmPrompt struct {
	promptBase
	header Header
	input  *CharInput

	def    bool
	hasDef bool
}

func newConfirmPrompt(message string, def *bool, base promptBase) *confirmPrompt {
	p := &confirmPrompt{promptBase: base}
	p.input = NewCharInput()
	p.input.FilterMap = func(r rune) (rune, bool) {
		switch r {
		case 'y', 'Y', 'n', 'N':
			return r, true
		}
		return 0, false
	}
	hint := "(y/n)"
	if def != nil {
		p.def, p.hasDef = *def, true
		if p.def {
			hint = "(Y/n)"
		} else {
			hint = "(y/N)"
		}
	}
	p.header = Header{Message: message, Hint: hint}
	return p
}

func (p *confirmPrompt) Height(layout *Layout) int {
	h := p.header.Height(layout)
	p.input.Height(layout)
	return h
}

func (p *confirmPrompt) Render(layout *Layout, b Backend) error {
	if err := p.header.Render(layout, b); err != nil {
		return err
	}
	return p.input.Render(layout, b)
}

func (p *confirmPrompt) CursorPos(layout Layout) (int, int) {
	p.header.Height(&layout)
	return p.input.CursorPos(layout)
}

func (p *confirmPrompt) HandleKey(key KeyEvent) bool {
	return p.input.HandleKey(key)
}

func (p *confirmPrompt) Validate() (Validation, error) {
	if _, ok := p.input.Value(); ok || p.hasDef {
		return ValidationFinish, nil
	}
	return ValidationContinue, nil
}

func (p *confirmPrompt) Finish() Answer {
	if r, ok := p.input.Value(); ok {
		return BoolAnswer(r == 'y' || r == 'Y')
	}
	return BoolAnswer(p.def)
}

func (p *confirmPrompt) FinishDefault() (Answer, bool) {
	if !p.hasDef {
		return nil, false
	}
	return BoolAnswer(p.def), true
}

// ConfirmBuilder configures a yes/no question.
type ConfirmBuilder struct {
	builder[ConfirmBuilder]
	def       *bool
	filter    func(bool, *Answers) bool
	transform Transform
}

// Confirm starts a yes/no question stored under name.
func Confirm(name string) *ConfirmBuilder {
	b := &ConfirmBuilder{}
	b.builder = newBuilder(b, name)
	return b
}

// Default sets the value Enter accepts when nothing was typed.
func (b *ConfirmBuilder) Default(v bool) *ConfirmBuilder {
	b.def = &v
	return b
}

// Filter rewrites the answer before it is stored.
func (b *ConfirmBuilder) Filter(fn func(bool, *Answers) bool) *ConfirmBuilder {
	b.filter = fn
	return b
}

// Transform replaces the finished-line rendering.
func (b *ConfirmBuilder) Transform(t Transform) *ConfirmBuilder {
	b.transform = t
	return b
}

// Build finalizes the question.
func (b *ConfirmBuilder) Build() Question {
	def, filter, transform := b.def, b.filter, b.transform
	q := Question{opts: b.opts}
	if filter != nil {
		q.filter = func(ans Answer, a *Answers) Answer {
			return BoolAnswer(filter(bool(ans.(BoolAnswer)), a))
		}
	}
	q.make = func(message string, a *Answers) Prompt {
		return newConfirmPrompt(message, def, promptBase{
			message:   message,
			answers:   a,
			transform: transform,
		})
	}
	return q
}
