package enquire

import "fmt"

// orderSelectPrompt lets the user rearrange a list. Space grabs the
// hovered item; while grabbed, vertical movement swaps it with its
// neighbour. The answer is the items in their final order, each keeping
// the index it started at.
type orderSelectPrompt struct {
	promptBase
	header Header
	engine *SelectEngine

	// order[pos] is the initial index of the item now at pos.
	order  []int
	moving bool
}

func newOrderSelectPrompt(message string, list *ChoiceList, base promptBase) *orderSelectPrompt {
	p := &orderSelectPrompt{
		promptBase: base,
		order:      make([]int, list.Len()),
	}
	for i := range p.order {
		p.order[i] = i
	}
	p.header = Header{
		Message: message,
		Hint:    "(Press <space> to grab an item, arrow keys to move it)",
	}
	p.engine = NewSelectEngine(list, p.renderItem)
	return p
}

func (p *orderSelectPrompt) renderItem(i int, hovered bool, layout *Layout, b Backend) error {
	c := p.engine.List.Choices[i]
	prefix := "  "
	style := DefaultStyle()
	if hovered {
		prefix = string(Symbols().Pointer) + " "
		style = Style{FG: Cyan}
		if p.moving {
			style.Attr = AttrBold
		}
	}
	if err := WriteStyled(b, style, prefix); err != nil {
		return err
	}
	label := fmt.Sprintf("(%d/%d) %s", i+1, p.engine.List.Len(), c.Text)
	return WriteStyled(b, style, ellipsize(label, layout.AvailableWidth()-2))
}

func (p *orderSelectPrompt) Height(layout *Layout) int {
	return p.header.Height(layout) + p.engine.Height(layout)
}

func (p *orderSelectPrompt) Render(layout *Layout, b Backend) error {
	if err := p.header.Render(layout, b); err != nil {
		return err
	}
	return p.engine.Render(layout, b)
}

func (p *orderSelectPrompt) CursorPos(layout Layout) (int, int) {
	p.header.Height(&layout)
	return p.engine.CursorPos(layout)
}

// swap exchanges the items at the two positions and follows the grabbed
// item with the hover.
func (p *orderSelectPrompt) swap(i, j int) {
	cs := p.engine.List.Choices
	cs[i], cs[j] = cs[j], cs[i]
	p.order[i], p.order[j] = p.order[j], p.order[i]
	p.engine.SetAt(j)
}

func (p *orderSelectPrompt) HandleKey(key KeyEvent) bool {
	if key.IsChar(' ') {
		p.moving = !p.moving
		return true
	}
	if !p.moving {
		return p.engine.HandleKey(key)
	}
	n := p.engine.List.Len()
	at := p.engine.At()
	switch MovementFromKey(key) {
	case MoveUp:
		j := at - 1
		if j < 0 {
			if !p.engine.List.ShouldLoop {
				return false
			}
			j = n - 1
		}
		p.swap(at, j)
		return true
	case MoveDown:
		j := at + 1
		if j >= n {
			if !p.engine.List.ShouldLoop {
				return false
			}
			j = 0
		}
		p.swap(at, j)
		return true
	}
	return false
}

func (p *orderSelectPrompt) Validate() (Validation, error) {
	return ValidationFinish, nil
}

func (p *orderSelectPrompt) Finish() Answer {
	out := make(ListItems, 0, len(p.order))
	for pos, initial := range p.order {
		out = append(out, ListItem{Index: initial, Text: p.engine.List.Choices[pos].Text})
	}
	return out
}

func (p *orderSelectPrompt) FinishDefault() (Answer, bool) {
	return nil, false
}

// OrderSelectBuilder configures a reorderable list question.
type OrderSelectBuilder struct {
	listBuilder[OrderSelectBuilder]
	filter    func(ListItems, *Answers) ListItems
	transform Transform
}

// OrderSelect starts a reorderable list question stored under name.
// Separators are not meaningful here; use plain choices.
func OrderSelect(name string) *OrderSelectBuilder {
	b := &OrderSelectBuilder{}
	b.listBuilder = newListBuilder(b, name)
	return b
}

// Filter rewrites the answer before it is stored.
func (b *OrderSelectBuilder) Filter(fn func(ListItems, *Answers) ListItems) *OrderSelectBuilder {
	b.filter = fn
	return b
}

// Transform replaces the finished-line rendering.
func (b *OrderSelectBuilder) Transform(t Transform) *OrderSelectBuilder {
	b.transform = t
	return b
}

// Build finalizes the question.
func (b *OrderSelectBuilder) Build() Question {
	cfg := *b
	q := Question{opts: b.opts, hideCursor: true}
	if cfg.filter != nil {
		q.filter = func(ans Answer, a *Answers) Answer {
			return cfg.filter(ans.(ListItems), a)
		}
	}
	q.make = func(message string, a *Answers) Prompt {
		return newOrderSelectPrompt(message, cfg.list, promptBase{
			message:   message,
			answers:   a,
			transform: cfg.transform,
		})
	}
	return q
}
