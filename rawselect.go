package enquire

import (
	"errors"
	"strconv"
)

// rawSelectPrompt numbers its items and takes the answer as a typed
// index, with an input line below the list. Arrow movement and typed
// digits stay in sync.
type rawSelectPrompt struct {
	promptBase
	header Header
	engine *SelectEngine
	input  *StringInput

	// ordinals[i] is the 1-based number of choice i, 0 for separators.
	ordinals []int
	count    int
	valid    bool
}

func newRawSelectPrompt(message string, list *ChoiceList, base promptBase) *rawSelectPrompt {
	p := &rawSelectPrompt{
		promptBase: base,
		input:      NewStringInput(),
		ordinals:   make([]int, list.Len()),
	}
	p.input.FilterMap = func(r rune) (rune, bool) {
		if r >= '0' && r <= '9' {
			return r, true
		}
		return 0, false
	}
	for i := range list.Choices {
		if list.IsSelectable(i) {
			p.count++
			p.ordinals[i] = p.count
		}
	}
	p.header = Header{Message: message}
	p.engine = NewSelectEngine(list, p.renderItem)
	p.valid = p.engine.At() >= 0
	p.syncInput()
	return p
}

func (p *rawSelectPrompt) renderItem(i int, hovered bool, layout *Layout, b Backend) error {
	c := p.engine.List.Choices[i]
	if c.IsSeparator() {
		return WriteStyled(b, DefaultStyle().Dim(), "  "+ellipsize(c.Text, layout.AvailableWidth()-2))
	}
	prefix := "  "
	style := DefaultStyle()
	if hovered {
		prefix = string(Symbols().Pointer) + " "
		style = Style{FG: Cyan}
	}
	if err := WriteStyled(b, style, prefix); err != nil {
		return err
	}
	label := strconv.Itoa(p.ordinals[i]) + ") " + c.Text
	return WriteStyled(b, style, ellipsize(label, layout.AvailableWidth()-2))
}

// syncInput mirrors the hovered ordinal into the answer line.
func (p *rawSelectPrompt) syncInput() {
	if at := p.engine.At(); at >= 0 {
		p.input.SetValue(strconv.Itoa(p.ordinals[at]))
	}
}

// jump moves the hover to the typed ordinal, if it names an item.
func (p *rawSelectPrompt) jump() {
	n, err := strconv.Atoi(p.input.Value())
	if err != nil || n < 1 || n > p.count {
		p.valid = false
		return
	}
	for i, ord := range p.ordinals {
		if ord == n {
			p.engine.SetAt(i)
			p.valid = true
			return
		}
	}
}

const rawAnswerPrefix = "  Answer: "

func (p *rawSelectPrompt) Height(layout *Layout) int {
	h := p.header.Height(layout) + p.engine.Height(layout)
	layout.OffsetX = textWidth(rawAnswerPrefix)
	h += p.input.Height(layout)
	layout.OffsetX = 0
	return h
}

func (p *rawSelectPrompt) Render(layout *Layout, b Backend) error {
	if err := p.header.Render(layout, b); err != nil {
		return err
	}
	if err := p.engine.Render(layout, b); err != nil {
		return err
	}
	if err := writeString(b, "\r\n"); err != nil {
		return err
	}
	if err := b.MoveCursorRight(layout.ChunkX); err != nil {
		return err
	}
	if err := writeString(b, rawAnswerPrefix); err != nil {
		return err
	}
	layout.OffsetX = textWidth(rawAnswerPrefix)
	err := p.input.Render(layout, b)
	layout.OffsetX = 0
	return err
}

func (p *rawSelectPrompt) CursorPos(layout Layout) (int, int) {
	p.header.Height(&layout)
	p.engine.Height(&layout)
	layout.OffsetY++
	layout.OffsetX = textWidth(rawAnswerPrefix)
	return p.input.CursorPos(layout)
}

func (p *rawSelectPrompt) HandleKey(key KeyEvent) bool {
	if key.Code == KeyChar && key.Char >= '0' && key.Char <= '9' || key.Is(KeyBackspace) || key.Is(KeyDelete) {
		if p.input.HandleKey(key) {
			p.jump()
			return true
		}
		return false
	}
	if p.engine.HandleKey(key) {
		p.valid = true
		p.syncInput()
		return true
	}
	return false
}

func (p *rawSelectPrompt) Validate() (Validation, error) {
	if !p.valid {
		return 0, errInvalidIndex
	}
	return ValidationFinish, nil
}

var errInvalidIndex = errors.New("please enter a valid index")

func (p *rawSelectPrompt) Finish() Answer {
	at := p.engine.At()
	return ListItem{Index: at, Text: p.engine.List.Choices[at].Text}
}

func (p *rawSelectPrompt) FinishDefault() (Answer, bool) {
	d := p.engine.List.Default
	if d < 0 {
		return nil, false
	}
	return ListItem{Index: d, Text: p.engine.List.Choices[d].Text}, true
}

// RawSelectBuilder configures a numbered-choice question.
type RawSelectBuilder struct {
	listBuilder[RawSelectBuilder]
	filter    func(ListItem, *Answers) ListItem
	transform Transform
}

// RawSelect starts a numbered-choice question stored under name.
func RawSelect(name string) *RawSelectBuilder {
	b := &RawSelectBuilder{}
	b.listBuilder = newListBuilder(b, name)
	return b
}

// Default sets the initially hovered index. It must index a selectable
// item.
func (b *RawSelectBuilder) Default(i int) *RawSelectBuilder {
	b.list.Default = i
	return b
}

// Filter rewrites the answer before it is stored.
func (b *RawSelectBuilder) Filter(fn func(ListItem, *Answers) ListItem) *RawSelectBuilder {
	b.filter = fn
	return b
}

// Transform replaces the finished-line rendering.
func (b *RawSelectBuilder) Transform(t Transform) *RawSelectBuilder {
	b.transform = t
	return b
}

// Build finalizes the question.
func (b *RawSelectBuilder) Build() Question {
	cfg := *b
	q := Question{opts: b.opts}
	if cfg.filter != nil {
		q.filter = func(ans Answer, a *Answers) Answer {
			return cfg.filter(ans.(ListItem), a)
		}
	}
	q.make = func(message string, a *Answers) Prompt {
		return newRawSelectPrompt(message, cfg.list, promptBase{
			message:   message,
			answers:   a,
			transform: cfg.transform,
		})
	}
	return q
}
