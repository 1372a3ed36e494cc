package enquire

// passwordPrompt is a string prompt whose buffer renders masked, or not
// at all when no mask character is configured.
type passwordPrompt struct {
	promptBase
	header Header
	input  *StringInput

	validate func(string, *Answers) error
}

func newPasswordPrompt(message string, mask rune, base promptBase) *passwordPrompt {
	p := &passwordPrompt{promptBase: base, input: NewStringInput()}
	if mask != 0 {
		p.input.Masked(mask)
	} else {
		p.input.Hidden()
		p.header.Hint = "[input is hidden]"
	}
	p.header.Message = message
	return p
}

func (p *passwordPrompt) Height(layout *Layout) int {
	h := p.header.Height(layout)
	return h + p.input.Height(layout) - 1
}

func (p *passwordPrompt) Render(layout *Layout, b Backend) error {
	if err := p.header.Render(layout, b); err != nil {
		return err
	}
	return p.input.Render(layout, b)
}

func (p *passwordPrompt) CursorPos(layout Layout) (int, int) {
	p.header.Height(&layout)
	return p.input.CursorPos(layout)
}

func (p *passwordPrompt) HandleKey(key KeyEvent) bool {
	return p.input.HandleKey(key)
}

func (p *passwordPrompt) Validate() (Validation, error) {
	if p.validate != nil {
		if err := p.validate(p.input.Value(), p.answers); err != nil {
			return 0, err
		}
	}
	return ValidationFinish, nil
}

func (p *passwordPrompt) Finish() Answer {
	return StringAnswer(p.input.Value())
}

func (p *passwordPrompt) FinishDefault() (Answer, bool) {
	return nil, false
}

// WriteFinished never echoes the secret.
func (p *passwordPrompt) WriteFinished(b Backend, ans Answer) error {
	if p.transform != nil {
		return p.transform(ans, p.answers, b)
	}
	return writeFinished(b, p.message, "[hidden]")
}

// PasswordBuilder configures a masked string question.
type PasswordBuilder struct {
	builder[PasswordBuilder]
	mask      rune
	validate  func(string, *Answers) error
	filter    func(string, *Answers) string
	transform Transform
}

// Password starts a masked string question stored under name. Without a
// mask the typed value is not rendered at all.
func Password(name string) *PasswordBuilder {
	b := &PasswordBuilder{}
	b.builder = newBuilder(b, name)
	return b
}

// Mask sets the character echoed per typed rune.
func (b *PasswordBuilder) Mask(m rune) *PasswordBuilder {
	b.mask = m
	return b
}

// Validate gates Enter; a returned error is shown below the prompt.
func (b *PasswordBuilder) Validate(fn func(string, *Answers) error) *PasswordBuilder {
	b.validate = fn
	return b
}

// Filter rewrites the answer before it is stored.
func (b *PasswordBuilder) Filter(fn func(string, *Answers) string) *PasswordBuilder {
	b.filter = fn
	return b
}

// Transform replaces the finished-line rendering.
func (b *PasswordBuilder) Transform(t Transform) *PasswordBuilder {
	b.transform = t
	return b
}

// Build finalizes the question.
func (b *PasswordBuilder) Build() Question {
	cfg := *b
	q := Question{opts: b.opts}
	if cfg.filter != nil {
		q.filter = func(ans Answer, a *Answers) Answer {
			return StringAnswer(cfg.filter(string(ans.(StringAnswer)), a))
		}
	}
	q.make = func(message string, a *Answers) Prompt {
		p := newPasswordPrompt(message, cfg.mask, promptBase{
			message:   message,
			answers:   a,
			transform: cfg.transform,
		})
		p.validate = cfg.validate
		return p
	}
	return q
}
