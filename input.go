package enquire

// inputPrompt is the free-form string prompt. Tab completion opens a
// select sub-mode over the suggestions; while it is open the buffer
// mirrors the hovered suggestion, so any editing keystroke can simply
// close the list and carry on from the committed text.
type inputPrompt struct {
	promptBase
	header Header
	input  *StringInput

	def    string
	hasDef bool

	validate      func(string, *Answers) error
	validateOnKey func(string, *Answers) bool
	autoComplete  func(string, *Answers) []string

	completions *SelectEngine
	keyFailed   bool
}

func newInputPrompt(message string, base promptBase) *inputPrompt {
	p := &inputPrompt{promptBase: base, input: NewStringInput()}
	p.header = Header{Message: message}
	return p
}

func (p *inputPrompt) setDefault(def string) {
	p.def, p.hasDef = def, true
	p.header.Hint = "(" + def + ")"
}

func (p *inputPrompt) Height(layout *Layout) int {
	h := p.header.Height(layout)
	h += p.input.Height(layout) - 1
	if p.completions != nil {
		h += p.completions.Height(layout)
	}
	return h
}

func (p *inputPrompt) Render(layout *Layout, b Backend) error {
	if err := p.header.Render(layout, b); err != nil {
		return err
	}
	if p.keyFailed {
		if err := b.SetStyle(Style{FG: Red}); err != nil {
			return err
		}
	}
	if err := p.input.Render(layout, b); err != nil {
		return err
	}
	if p.keyFailed {
		if err := b.ResetStyle(); err != nil {
			return err
		}
	}
	if p.completions != nil {
		return p.completions.Render(layout, b)
	}
	return nil
}

func (p *inputPrompt) CursorPos(layout Layout) (int, int) {
	p.header.Height(&layout)
	return p.input.CursorPos(layout)
}

func (p *inputPrompt) value() string {
	return p.input.Value()
}

func (p *inputPrompt) checkOnKey() {
	if p.validateOnKey != nil {
		p.keyFailed = !p.validateOnKey(p.value(), p.answers)
	}
}

// openCompletions enters the suggestion sub-mode. An autocomplete hook
// returning no suggestions is a programming error.
func (p *inputPrompt) openCompletions() bool {
	suggestions := p.autoComplete(p.value(), p.answers)
	if len(suggestions) == 0 {
		panic("enquire: auto-complete returned no suggestions")
	}
	if len(suggestions) == 1 {
		p.input.SetValue(suggestions[0])
		p.checkOnKey()
		return true
	}
	choices := make([]Choice, len(suggestions))
	for i, s := range suggestions {
		choices[i] = NewChoice(s)
	}
	list := NewChoiceList(choices...)
	p.completions = NewSelectEngine(list, func(i int, hovered bool, layout *Layout, b Backend) error {
		return renderChoiceRow(list, i, hovered, layout, b)
	})
	p.commitHovered()
	return true
}

func (p *inputPrompt) commitHovered() {
	list := p.completions.List
	p.input.SetValue(list.Choices[p.completions.At()].Text)
	p.checkOnKey()
}

func (p *inputPrompt) HandleKey(key KeyEvent) bool {
	if key.Is(KeyTab) && p.autoComplete != nil {
		if p.completions == nil {
			return p.openCompletions()
		}
		p.completions.HandleKey(Key(KeyDown))
		p.commitHovered()
		return true
	}

	if p.completions != nil {
		switch MovementFromKey(key) {
		case MoveUp, MoveDown:
			if key.Code != KeyChar { // chars are edits here
				if p.completions.HandleKey(key) {
					p.commitHovered()
				}
				return true
			}
		}
	}

	if p.input.HandleKey(key) {
		p.completions = nil
		p.checkOnKey()
		return true
	}
	return false
}

func (p *inputPrompt) Validate() (Validation, error) {
	if p.completions != nil {
		p.completions = nil
		return ValidationContinue, nil
	}
	v := p.value()
	if v == "" && p.hasDef {
		return ValidationFinish, nil
	}
	if p.validate != nil {
		if err := p.validate(v, p.answers); err != nil {
			return 0, err
		}
	}
	return ValidationFinish, nil
}

func (p *inputPrompt) Finish() Answer {
	v := p.value()
	if v == "" && p.hasDef {
		return StringAnswer(p.def)
	}
	return StringAnswer(v)
}

func (p *inputPrompt) FinishDefault() (Answer, bool) {
	if !p.hasDef {
		return nil, false
	}
	return StringAnswer(p.def), true
}

// InputBuilder configures a free-form string question.
type InputBuilder struct {
	builder[InputBuilder]
	def           *string
	validate      func(string, *Answers) error
	validateOnKey func(string, *Answers) bool
	autoComplete  func(string, *Answers) []string
	filter        func(string, *Answers) string
	transform     Transform
}

// Input starts a free-form string question stored under name.
func Input(name string) *InputBuilder {
	b := &InputBuilder{}
	b.builder = newBuilder(b, name)
	return b
}

// Default sets the value used when Enter is pressed on an empty buffer.
func (b *InputBuilder) Default(v string) *InputBuilder {
	b.def = &v
	return b
}

// Validate gates Enter; a returned error is shown below the prompt.
func (b *InputBuilder) Validate(fn func(string, *Answers) error) *InputBuilder {
	b.validate = fn
	return b
}

// ValidateOnKey runs after every keystroke; a false result renders the
// buffer in red until it passes again.
func (b *InputBuilder) ValidateOnKey(fn func(string, *Answers) bool) *InputBuilder {
	b.validateOnKey = fn
	return b
}

// AutoComplete supplies Tab suggestions. It must never return an empty
// list.
func (b *InputBuilder) AutoComplete(fn func(string, *Answers) []string) *InputBuilder {
	b.autoComplete = fn
	return b
}

// Filter rewrites the answer before it is stored.
func (b *InputBuilder) Filter(fn func(string, *Answers) string) *InputBuilder {
	b.filter = fn
	return b
}

// Transform replaces the finished-line rendering.
func (b *InputBuilder) Transform(t Transform) *InputBuilder {
	b.transform = t
	return b
}

// Build finalizes the question.
func (b *InputBuilder) Build() Question {
	cfg := *b
	q := Question{opts: b.opts}
	if cfg.filter != nil {
		q.filter = func(ans Answer, a *Answers) Answer {
			return StringAnswer(cfg.filter(string(ans.(StringAnswer)), a))
		}
	}
	q.make = func(message string, a *Answers) Prompt {
		p := newInputPrompt(message, promptBase{
			message:   message,
			answers:   a,
			transform: cfg.transform,
		})
		if cfg.def != nil {
			p.setDefault(*cfg.def)
		}
		p.validate = cfg.validate
		p.validateOnKey = cfg.validateOnKey
		p.autoComplete = cfg.autoComplete
		return p
	}
	return q
}
