package enquire

import (
	"fmt"
	"strings"
	"unicode"
)

// expandPrompt answers with a single keyed choice. The compact form
// shows the keys as a hint with the default capitalized; the h key (or
// Enter on it) expands into a full listing driven by the select engine.
type expandPrompt struct {
	promptBase
	header Header
	input  *CharInput

	list *ChoiceList
	// keys[i] is the key of choice i, 0 for separators.
	keys []rune
	def  rune

	engine *SelectEngine // non-nil while expanded
}

func newExpandPrompt(message string, list *ChoiceList, keys []rune, def rune, base promptBase) *expandPrompt {
	p := &expandPrompt{
		promptBase: base,
		input:      NewCharInput(),
		list:       list,
		keys:       keys,
		def:        def,
	}
	if p.def == 0 {
		p.def = 'h'
	}
	p.input.FilterMap = func(r rune) (rune, bool) {
		r = unicode.ToLower(r)
		if r == 'h' {
			return r, true
		}
		for _, k := range keys {
			if k == r {
				return r, true
			}
		}
		return 0, false
	}
	p.header = Header{Message: message, Hint: p.hint()}
	return p
}

// hint is the key list with the default capitalized, e.g. "(yAdh)".
func (p *expandPrompt) hint() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for _, k := range p.keys {
		if k == 0 {
			continue
		}
		if k == p.def {
			sb.WriteRune(unicode.ToUpper(k))
		} else {
			sb.WriteRune(k)
		}
	}
	if p.def == 'h' {
		sb.WriteByte('H')
	} else {
		sb.WriteByte('h')
	}
	sb.WriteByte(')')
	return sb.String()
}

func (p *expandPrompt) renderItem(i int, hovered bool, layout *Layout, b Backend) error {
	c := p.list.Choices[i]
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
	label := fmt.Sprintf("%c) %s", p.keys[i], c.Text)
	return WriteStyled(b, style, ellipsize(label, layout.AvailableWidth()-2))
}

func (p *expandPrompt) Height(layout *Layout) int {
	h := p.header.Height(layout)
	if p.engine != nil {
		return h + p.engine.Height(layout)
	}
	p.input.Height(layout)
	return h
}

func (p *expandPrompt) Render(layout *Layout, b Backend) error {
	if err := p.header.Render(layout, b); err != nil {
		return err
	}
	if p.engine != nil {
		return p.engine.Render(layout, b)
	}
	return p.input.Render(layout, b)
}

func (p *expandPrompt) CursorPos(layout Layout) (int, int) {
	p.header.Height(&layout)
	if p.engine != nil {
		return p.engine.CursorPos(layout)
	}
	return p.input.CursorPos(layout)
}

func (p *expandPrompt) HandleKey(key KeyEvent) bool {
	if p.engine != nil {
		if key.Is(KeyEsc) {
			p.engine = nil
			return true
		}
		return p.engine.HandleKey(key)
	}
	return p.input.HandleKey(key)
}

func (p *expandPrompt) expand() {
	p.input.Clear()
	p.engine = NewSelectEngine(p.list, p.renderItem)
}

func (p *expandPrompt) Validate() (Validation, error) {
	if p.engine != nil {
		// Selection collapses the listing with the key pending; a
		// second Enter finishes.
		p.input.SetValue(p.keys[p.engine.At()])
		p.engine = nil
		return ValidationContinue, nil
	}
	pending, ok := p.input.Value()
	if !ok {
		pending = p.def
	}
	if pending == 'h' {
		p.expand()
		return ValidationContinue, nil
	}
	return ValidationFinish, nil
}

func (p *expandPrompt) choiceByKey(k rune) (int, bool) {
	for i, key := range p.keys {
		if key == k {
			return i, true
		}
	}
	return 0, false
}

func (p *expandPrompt) Finish() Answer {
	pending, ok := p.input.Value()
	if !ok {
		pending = p.def
	}
	if i, ok := p.choiceByKey(pending); ok {
		return ExpandItem{Key: pending, Text: p.list.Choices[i].Text}
	}
	return ExpandItem{Key: pending}
}

func (p *expandPrompt) FinishDefault() (Answer, bool) {
	if p.def == 'h' {
		return nil, false
	}
	if i, ok := p.choiceByKey(p.def); ok {
		return ExpandItem{Key: p.def, Text: p.list.Choices[i].Text}, true
	}
	return nil, false
}

// ExpandBuilder configures a keyed-choice question.
type ExpandBuilder struct {
	builder[ExpandBuilder]
	list      *ChoiceList
	keys      []rune
	def       rune
	filter    func(ExpandItem, *Answers) ExpandItem
	transform Transform
}

// Expand starts a keyed-choice question stored under name. The h key is
// reserved for expanding the listing.
func Expand(name string) *ExpandBuilder {
	b := &ExpandBuilder{list: NewChoiceList()}
	b.builder = newBuilder(b, name)
	return b
}

// Choice appends an item reachable by the given key. Keys must be
// unique, lowercase, and not 'h'.
func (b *ExpandBuilder) Choice(key rune, text string) *ExpandBuilder {
	b.list.Choices = append(b.list.Choices, NewChoice(text))
	b.keys = append(b.keys, unicode.ToLower(key))
	return b
}

// Separator appends a labeled divider.
func (b *ExpandBuilder) Separator(text string) *ExpandBuilder {
	b.list.Choices = append(b.list.Choices, Separator(text))
	b.keys = append(b.keys, 0)
	return b
}

// Default sets the key Enter accepts when nothing was typed.
func (b *ExpandBuilder) Default(key rune) *ExpandBuilder {
	b.def = unicode.ToLower(key)
	return b
}

// PageSize sets how many rows the expanded listing shows at once.
func (b *ExpandBuilder) PageSize(n int) *ExpandBuilder {
	if n < 5 {
		n = 5
	}
	b.list.PageSize = n
	return b
}

// Filter rewrites the answer before it is stored.
func (b *ExpandBuilder) Filter(fn func(ExpandItem, *Answers) ExpandItem) *ExpandBuilder {
	b.filter = fn
	return b
}

// Transform replaces the finished-line rendering.
func (b *ExpandBuilder) Transform(t Transform) *ExpandBuilder {
	b.transform = t
	return b
}

// Build finalizes the question.
func (b *ExpandBuilder) Build() Question {
	cfg := *b
	q := Question{opts: b.opts}
	if cfg.filter != nil {
		q.filter = func(ans Answer, a *Answers) Answer {
			return cfg.filter(ans.(ExpandItem), a)
		}
	}
	q.make = func(message string, a *Answers) Prompt {
		return newExpandPrompt(message, cfg.list, cfg.keys, cfg.def, promptBase{
			message:   message,
			answers:   a,
			transform: cfg.transform,
		})
	}
	return q
}
