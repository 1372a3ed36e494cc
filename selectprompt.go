package enquire

// selectPrompt is the single-choice list. The terminal cursor stays
// hidden; the hovered row carries the pointer.
type selectPrompt struct {
	promptBase
	header Header
	engine *SelectEngine
}

func newSelectPrompt(message string, list *ChoiceList, base promptBase) *selectPrompt {
	p := &selectPrompt{promptBase: base}
	p.header = Header{Message: message, Hint: "(Use arrow keys)"}
	p.engine = NewSelectEngine(list, func(i int, hovered bool, layout *Layout, b Backend) error {
		return renderChoiceRow(list, i, hovered, layout, b)
	})
	return p
}

func (p *selectPrompt) Height(layout *Layout) int {
	return p.header.Height(layout) + p.engine.Height(layout)
}

func (p *selectPrompt) Render(layout *Layout, b Backend) error {
	if err := p.header.Render(layout, b); err != nil {
		return err
	}
	return p.engine.Render(layout, b)
}

func (p *selectPrompt) CursorPos(layout Layout) (int, int) {
	p.header.Height(&layout)
	return p.engine.CursorPos(layout)
}

func (p *selectPrompt) HandleKey(key KeyEvent) bool {
	return p.engine.HandleKey(key)
}

func (p *selectPrompt) Validate() (Validation, error) {
	return ValidationFinish, nil
}

func (p *selectPrompt) Finish() Answer {
	at := p.engine.At()
	return ListItem{Index: at, Text: p.engine.List.Choices[at].Text}
}

func (p *selectPrompt) FinishDefault() (Answer, bool) {
	d := p.engine.List.Default
	if d < 0 {
		return nil, false
	}
	return ListItem{Index: d, Text: p.engine.List.Choices[d].Text}, true
}

// listBuilder provides the choice-list configuration shared by the
// select-style builders.
type listBuilder[B any] struct {
	builder[B]
	list *ChoiceList
}

func newListBuilder[B any](self *B, name string) listBuilder[B] {
	return listBuilder[B]{
		builder: newBuilder(self, name),
		list:    NewChoiceList(),
	}
}

// Choice appends a selectable item.
func (b *listBuilder[B]) Choice(text string) *B {
	b.list.Choices = append(b.list.Choices, NewChoice(text))
	return b.self
}

// Choices appends prebuilt choices, separators included.
func (b *listBuilder[B]) Choices(cs ...Choice) *B {
	b.list.Choices = append(b.list.Choices, cs...)
	return b.self
}

// Separator appends a labeled divider.
func (b *listBuilder[B]) Separator(text string) *B {
	b.list.Choices = append(b.list.Choices, Separator(text))
	return b.self
}

// DefaultSeparator appends a dashed divider.
func (b *listBuilder[B]) DefaultSeparator() *B {
	b.list.Choices = append(b.list.Choices, DefaultSeparator())
	return b.self
}

// PageSize sets how many rows are visible at once (minimum 5).
func (b *listBuilder[B]) PageSize(n int) *B {
	if n < 5 {
		n = 5
	}
	b.list.PageSize = n
	return b.self
}

// ShouldLoop controls wrapping past the ends of the list.
func (b *listBuilder[B]) ShouldLoop(v bool) *B {
	b.list.ShouldLoop = v
	return b.self
}

// SelectBuilder configures a single-choice question.
type SelectBuilder struct {
	listBuilder[SelectBuilder]
	filter    func(ListItem, *Answers) ListItem
	transform Transform
}

// Select starts a single-choice question stored under name.
func Select(name string) *SelectBuilder {
	b := &SelectBuilder{}
	b.listBuilder = newListBuilder(b, name)
	return b
}

// Default sets the initially hovered index. It must index a selectable
// item.
func (b *SelectBuilder) Default(i int) *SelectBuilder {
	b.list.Default = i
	return b
}

// Filter rewrites the answer before it is stored.
func (b *SelectBuilder) Filter(fn func(ListItem, *Answers) ListItem) *SelectBuilder {
	b.filter = fn
	return b
}

// Transform replaces the finished-line rendering.
func (b *SelectBuilder) Transform(t Transform) *SelectBuilder {
	b.transform = t
	return b
}

// Build finalizes the question.
func (b *SelectBuilder) Build() Question {
	cfg := *b
	q := Question{opts: b.opts, hideCursor: true}
	if cfg.filter != nil {
		q.filter = func(ans Answer, a *Answers) Answer {
			return cfg.filter(ans.(ListItem), a)
		}
	}
	q.make = func(message string, a *Answers) Prompt {
		return newSelectPrompt(message, cfg.list, promptBase{
			message:   message,
			answers:   a,
			transform: cfg.transform,
		})
	}
	return q
}
