package enquire

import (
	"fmt"
	"strconv"
	"strings"
)

// intPrompt reads an integer. Arrow keys nudge the value; the buffer
// only filters to plausible characters, so parsing happens on Enter.
type intPrompt struct {
	promptBase
	header Header
	input  *StringInput

	def    int64
	hasDef bool

	validate      func(int64, *Answers) error
	validateOnKey func(int64, *Answers) bool
	keyFailed     bool
}

func newIntPrompt(message string, base promptBase) *intPrompt {
	p := &intPrompt{promptBase: base, input: NewStringInput()}
	p.input.FilterMap = func(r rune) (rune, bool) {
		if r >= '0' && r <= '9' || r == '-' || r == '+' {
			return r, true
		}
		return 0, false
	}
	p.header = Header{Message: message}
	return p
}

func (p *intPrompt) setDefault(def int64) {
	p.def, p.hasDef = def, true
	p.header.Hint = "(" + strconv.FormatInt(def, 10) + ")"
}

// current parses the buffer, falling back to the default (or zero) when
// it is empty.
func (p *intPrompt) current() (int64, error) {
	v := p.input.Value()
	if v == "" {
		if p.hasDef {
			return p.def, nil
		}
		return 0, fmt.Errorf("please enter a number")
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid integer", v)
	}
	return n, nil
}

// delta nudges the value, wrapping at the int64 boundaries.
func (p *intPrompt) delta(d int64) bool {
	n, err := p.current()
	if err != nil && p.input.Len() > 0 {
		return false
	}
	p.input.SetValue(strconv.FormatInt(n+d, 10))
	p.checkOnKey()
	return true
}

func (p *intPrompt) checkOnKey() {
	if p.validateOnKey == nil {
		return
	}
	n, err := p.current()
	p.keyFailed = err != nil || !p.validateOnKey(n, p.answers)
}

func (p *intPrompt) Height(layout *Layout) int {
	h := p.header.Height(layout)
	return h + p.input.Height(layout) - 1
}

func (p *intPrompt) Render(layout *Layout, b Backend) error {
	return renderNumberBody(&p.header, p.input, p.keyFailed, layout, b)
}

func (p *intPrompt) CursorPos(layout Layout) (int, int) {
	p.header.Height(&layout)
	return p.input.CursorPos(layout)
}

func (p *intPrompt) HandleKey(key KeyEvent) bool {
	if d, ok := numberDelta(key); ok {
		return p.delta(d)
	}
	if p.input.HandleKey(key) {
		p.checkOnKey()
		return true
	}
	return false
}

func (p *intPrompt) Validate() (Validation, error) {
	n, err := p.current()
	if err != nil {
		return 0, err
	}
	if p.validate != nil {
		if err := p.validate(n, p.answers); err != nil {
			return 0, err
		}
	}
	return ValidationFinish, nil
}

func (p *intPrompt) Finish() Answer {
	n, _ := p.current()
	return IntAnswer(n)
}

func (p *intPrompt) FinishDefault() (Answer, bool) {
	if !p.hasDef {
		return nil, false
	}
	return IntAnswer(p.def), true
}

// floatPrompt reads a floating point number the same way intPrompt
// reads an integer; nudges add whole units.
type floatPrompt struct {
	promptBase
	header Header
	input  *StringInput

	def    float64
	hasDef bool

	validate      func(float64, *Answers) error
	validateOnKey func(float64, *Answers) bool
	keyFailed     bool
}

func newFloatPrompt(message string, base promptBase) *floatPrompt {
	p := &floatPrompt{promptBase: base, input: NewStringInput()}
	p.input.FilterMap = func(r rune) (rune, bool) {
		if r >= '0' && r <= '9' || strings.ContainsRune("+-.eE", r) {
			return r, true
		}
		return 0, false
	}
	p.header = Header{Message: message}
	return p
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (p *floatPrompt) setDefault(def float64) {
	p.def, p.hasDef = def, true
	p.header.Hint = "(" + formatFloat(def) + ")"
}

func (p *floatPrompt) current() (float64, error) {
	v := p.input.Value()
	if v == "" {
		if p.hasDef {
			return p.def, nil
		}
		return 0, fmt.Errorf("please enter a number")
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid number", v)
	}
	return f, nil
}

func (p *floatPrompt) delta(d float64) bool {
	f, err := p.current()
	if err != nil && p.input.Len() > 0 {
		return false
	}
	p.input.SetValue(formatFloat(f + d))
	p.checkOnKey()
	return true
}

func (p *floatPrompt) checkOnKey() {
	if p.validateOnKey == nil {
		return
	}
	f, err := p.current()
	p.keyFailed = err != nil || !p.validateOnKey(f, p.answers)
}

func (p *floatPrompt) Height(layout *Layout) int {
	h := p.header.Height(layout)
	return h + p.input.Height(layout) - 1
}

func (p *floatPrompt) Render(layout *Layout, b Backend) error {
	return renderNumberBody(&p.header, p.input, p.keyFailed, layout, b)
}

func (p *floatPrompt) CursorPos(layout Layout) (int, int) {
	p.header.Height(&layout)
	return p.input.CursorPos(layout)
}

func (p *floatPrompt) HandleKey(key KeyEvent) bool {
	if d, ok := numberDelta(key); ok {
		return p.delta(float64(d))
	}
	if p.input.HandleKey(key) {
		p.checkOnKey()
		return true
	}
	return false
}

func (p *floatPrompt) Validate() (Validation, error) {
	f, err := p.current()
	if err != nil {
		return 0, err
	}
	if p.validate != nil {
		if err := p.validate(f, p.answers); err != nil {
			return 0, err
		}
	}
	return ValidationFinish, nil
}

func (p *floatPrompt) Finish() Answer {
	f, _ := p.current()
	return FloatAnswer(f)
}

func (p *floatPrompt) FinishDefault() (Answer, bool) {
	if !p.hasDef {
		return nil, false
	}
	return FloatAnswer(p.def), true
}

// numberDelta maps the nudge keys shared by the number prompts.
func numberDelta(key KeyEvent) (int64, bool) {
	switch {
	case key.Is(KeyUp):
		return 1, true
	case key.Is(KeyDown):
		return -1, true
	case key.Is(KeyPageUp):
		return 10, true
	case key.Is(KeyPageDown):
		return -10, true
	}
	return 0, false
}

func renderNumberBody(h *Header, input *StringInput, failed bool, layout *Layout, b Backend) error {
	if err := h.Render(layout, b); err != nil {
		return err
	}
	if failed {
		if err := b.SetStyle(Style{FG: Red}); err != nil {
			return err
		}
	}
	if err := input.Render(layout, b); err != nil {
		return err
	}
	if failed {
		return b.ResetStyle()
	}
	return nil
}

// IntBuilder configures an integer question.
type IntBuilder struct {
	builder[IntBuilder]
	def           *int64
	validate      func(int64, *Answers) error
	validateOnKey func(int64, *Answers) bool
	filter        func(int64, *Answers) int64
	transform     Transform
}

// Int starts an integer question stored under name.
func Int(name string) *IntBuilder {
	b := &IntBuilder{}
	b.builder = newBuilder(b, name)
	return b
}

// Default sets the value used when Enter is pressed on an empty buffer.
func (b *IntBuilder) Default(v int64) *IntBuilder {
	b.def = &v
	return b
}

// Validate gates Enter; a returned error is shown below the prompt.
func (b *IntBuilder) Validate(fn func(int64, *Answers) error) *IntBuilder {
	b.validate = fn
	return b
}

// ValidateOnKey runs after every keystroke; a false result renders the
// buffer in red until it passes again.
func (b *IntBuilder) ValidateOnKey(fn func(int64, *Answers) bool) *IntBuilder {
	b.validateOnKey = fn
	return b
}

// Filter rewrites the answer before it is stored.
func (b *IntBuilder) Filter(fn func(int64, *Answers) int64) *IntBuilder {
	b.filter = fn
	return b
}

// Transform replaces the finished-line rendering.
func (b *IntBuilder) Transform(t Transform) *IntBuilder {
	b.transform = t
	return b
}

// Build finalizes the question.
func (b *IntBuilder) Build() Question {
	cfg := *b
	q := Question{opts: b.opts}
	if cfg.filter != nil {
		q.filter = func(ans Answer, a *Answers) Answer {
			return IntAnswer(cfg.filter(int64(ans.(IntAnswer)), a))
		}
	}
	q.make = func(message string, a *Answers) Prompt {
		p := newIntPrompt(message, promptBase{
			message:   message,
			answers:   a,
			transform: cfg.transform,
		})
		if cfg.def != nil {
			p.setDefault(*cfg.def)
		}
		p.validate = cfg.validate
		p.validateOnKey = cfg.validateOnKey
		return p
	}
	return q
}

// FloatBuilder configures a floating point question.
type FloatBuilder struct {
	builder[FloatBuilder]
	def           *float64
	validate      func(float64, *Answers) error
	validateOnKey func(float64, *Answers) bool
	filter        func(float64, *Answers) float64
	transform     Transform
}

// Float starts a floating point question stored under name.
func Float(name string) *FloatBuilder {
	b := &FloatBuilder{}
	b.builder = newBuilder(b, name)
	return b
}

// Default sets the value used when Enter is pressed on an empty buffer.
func (b *FloatBuilder) Default(v float64) *FloatBuilder {
	b.def = &v
	return b
}

// Validate gates Enter; a returned error is shown below the prompt.
func (b *FloatBuilder) Validate(fn func(float64, *Answers) error) *FloatBuilder {
	b.validate = fn
	return b
}

// ValidateOnKey runs after every keystroke; a false result renders the
// buffer in red until it passes again.
func (b *FloatBuilder) ValidateOnKey(fn func(float64, *Answers) bool) *FloatBuilder {
	b.validateOnKey = fn
	return b
}

// Filter rewrites the answer before it is stored.
func (b *FloatBuilder) Filter(fn func(float64, *Answers) float64) *FloatBuilder {
	b.filter = fn
	return b
}

// Transform replaces the finished-line rendering.
func (b *FloatBuilder) Transform(t Transform) *FloatBuilder {
	b.transform = t
	return b
}

// Build finalizes the question.
func (b *FloatBuilder) Build() Question {
	cfg := *b
	q := Question{opts: b.opts}
	if cfg.filter != nil {
		q.filter = func(ans Answer, a *Answers) Answer {
			return FloatAnswer(cfg.filter(float64(ans.(FloatAnswer)), a))
		}
	}
	q.make = func(message string, a *Answers) Prompt {
		p := newFloatPrompt(message, promptBase{
			message:   message,
			answers:   a,
			transform: cfg.transform,
		})
		if cfg.def != nil {
			p.setDefault(*cfg.def)
		}
		p.validate = cfg.validate
		p.validateOnKey = cfg.validateOnKey
		return p
	}
	return q
}
