package enquire

// multiSelectPrompt is the checkbox list. Selection state lives in a
// boolean vector parallel to the choices; separator positions are
// forced to false whenever the state is read out.
type multiSelectPrompt struct {
	promptBase
	header   Header
	engine   *SelectEngine
	selected []bool

	validate func(ListItems, *Answers) error
}

func newMultiSelectPrompt(message string, list *ChoiceList, base promptBase) *multiSelectPrompt {
	p := &multiSelectPrompt{
		promptBase: base,
		selected:   make([]bool, list.Len()),
	}
	for i, c := range list.Choices {
		p.selected[i] = c.Checked && !c.IsSeparator()
	}
	p.header = Header{
		Message: message,
		Hint:    "(Press <space> to select, <a> to toggle all, <i> to invert selection)",
	}
	p.engine = NewSelectEngine(list, p.renderItem)
	return p
}

func (p *multiSelectPrompt) renderItem(i int, hovered bool, layout *Layout, b Backend) error {
	sym := Symbols()
	c := p.engine.List.Choices[i]
	if c.IsSeparator() {
		return WriteStyled(b, DefaultStyle().Dim(), "  "+ellipsize(c.Text, layout.AvailableWidth()-2))
	}
	prefix := "  "
	style := DefaultStyle()
	if hovered {
		prefix = string(sym.Pointer) + " "
		style = Style{FG: Cyan}
	}
	if err := WriteStyled(b, style, prefix); err != nil {
		return err
	}
	box, boxStyle := sym.UncheckedBox, DefaultStyle()
	if p.selected[i] {
		box, boxStyle = sym.CheckedBox, Style{FG: LightGreen}
	}
	if err := WriteStyled(b, boxStyle, string(box)+" "); err != nil {
		return err
	}
	return WriteStyled(b, style, ellipsize(c.Text, layout.AvailableWidth()-4))
}

func (p *multiSelectPrompt) Height(layout *Layout) int {
	return p.header.Height(layout) + p.engine.Height(layout)
}

func (p *multiSelectPrompt) Render(layout *Layout, b Backend) error {
	if err := p.header.Render(layout, b); err != nil {
		return err
	}
	return p.engine.Render(layout, b)
}

func (p *multiSelectPrompt) CursorPos(layout Layout) (int, int) {
	p.header.Height(&layout)
	return p.engine.CursorPos(layout)
}

func (p *multiSelectPrompt) HandleKey(key KeyEvent) bool {
	list := p.engine.List
	switch {
	case key.IsChar(' '):
		at := p.engine.At()
		p.selected[at] = !p.selected[at]
		return true
	case key.IsChar('a'):
		all := true
		for i := range list.Choices {
			if list.IsSelectable(i) && !p.selected[i] {
				all = false
				break
			}
		}
		for i := range list.Choices {
			if list.IsSelectable(i) {
				p.selected[i] = !all
			}
		}
		return true
	case key.IsChar('i'):
		for i := range list.Choices {
			if list.IsSelectable(i) {
				p.selected[i] = !p.selected[i]
			}
		}
		return true
	}
	return p.engine.HandleKey(key)
}

// items reads the selection out, pinning separator positions to false.
func (p *multiSelectPrompt) items() ListItems {
	var out ListItems
	for i, c := range p.engine.List.Choices {
		if c.IsSeparator() {
			p.selected[i] = false
			continue
		}
		if p.selected[i] {
			out = append(out, ListItem{Index: i, Text: c.Text})
		}
	}
	return out
}

func (p *multiSelectPrompt) Validate() (Validation, error) {
	if p.validate != nil {
		if err := p.validate(p.items(), p.answers); err != nil {
			return 0, err
		}
	}
	return ValidationFinish, nil
}

func (p *multiSelectPrompt) Finish() Answer {
	return p.items()
}

func (p *multiSelectPrompt) FinishDefault() (Answer, bool) {
	return nil, false
}

// MultiSelectBuilder configures a checkbox question.
type MultiSelectBuilder struct {
	listBuilder[MultiSelectBuilder]
	validate  func(ListItems, *Answers) error
	filter    func(ListItems, *Answers) ListItems
	transform Transform
}

// MultiSelect starts a checkbox question stored under name.
func MultiSelect(name string) *MultiSelectBuilder {
	b := &MultiSelectBuilder{}
	b.listBuilder = newListBuilder(b, name)
	return b
}

// Validate gates Enter on the current selection.
func (b *MultiSelectBuilder) Validate(fn func(ListItems, *Answers) error) *MultiSelectBuilder {
	b.validate = fn
	return b
}

// Filter rewrites the answer before it is stored.
func (b *MultiSelectBuilder) Filter(fn func(ListItems, *Answers) ListItems) *MultiSelectBuilder {
	b.filter = fn
	return b
}

// Transform replaces the finished-line rendering.
func (b *MultiSelectBuilder) Transform(t Transform) *MultiSelectBuilder {
	b.transform = t
	return b
}

// Build finalizes the question.
func (b *MultiSelectBuilder) Build() Question {
	cfg := *b
	q := Question{opts: b.opts, hideCursor: true}
	if cfg.filter != nil {
		q.filter = func(ans Answer, a *Answers) Answer {
			return cfg.filter(ans.(ListItems), a)
		}
	}
	q.make = func(message string, a *Answers) Prompt {
		p := newMultiSelectPrompt(message, cfg.list, promptBase{
			message:   message,
			answers:   a,
			transform: cfg.transform,
		})
		p.validate = cfg.validate
		return p
	}
	return q
}
