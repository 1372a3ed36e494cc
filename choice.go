package enquire

import "strings"

// Choice is one entry of a select-style prompt: either a selectable item
// or a separator. Checked carries the per-item default for multi selects.
type Choice struct {
	Text    string
	Checked bool

	separator bool
}

// NewChoice returns a selectable item.
func NewChoice(text string) Choice {
	return Choice{Text: text}
}

// CheckedChoice returns an item checked by default in multi selects.
func CheckedChoice(text string) Choice {
	return Choice{Text: text, Checked: true}
}

// Separator returns an unselectable labeled divider.
func Separator(text string) Choice {
	return Choice{Text: text, separator: true}
}

// DefaultSeparator returns an unselectable divider rendered as a dashed
// line.
func DefaultSeparator() Choice {
	return Choice{Text: strings.Repeat(string(Symbols().BoxHorizontal), 10), separator: true}
}

// IsSeparator reports whether the choice is a divider.
func (c Choice) IsSeparator() bool {
	return c.separator
}

// ChoiceList is the model behind every select-style prompt.
type ChoiceList struct {
	Choices []Choice

	// Default, when >= 0, is the initially hovered index. It must index
	// a selectable item.
	Default int

	// PageSize is the number of items shown at once, at least 5.
	PageSize int

	// ShouldLoop makes Up at the top wrap to the bottom and vice versa.
	ShouldLoop bool
}

// NewChoiceList returns a list over the given choices with a page size
// of 15 and wrapping enabled.
func NewChoiceList(choices ...Choice) *ChoiceList {
	return &ChoiceList{
		Choices:    choices,
		Default:    -1,
		PageSize:   15,
		ShouldLoop: true,
	}
}

// Len returns the number of choices, separators included.
func (l *ChoiceList) Len() int {
	return len(l.Choices)
}

// IsSelectable reports whether index i is an item.
func (l *ChoiceList) IsSelectable(i int) bool {
	return !l.Choices[i].separator
}

// FirstSelectable returns the index of the first item, or -1 if every
// choice is a separator.
func (l *ChoiceList) FirstSelectable() int {
	for i := range l.Choices {
		if !l.Choices[i].separator {
			return i
		}
	}
	return -1
}

// LastSelectable returns the index of the last item, or -1.
func (l *ChoiceList) LastSelectable() int {
	for i := len(l.Choices) - 1; i >= 0; i-- {
		if !l.Choices[i].separator {
			return i
		}
	}
	return -1
}

// SelectableCount returns the number of items.
func (l *ChoiceList) SelectableCount() int {
	n := 0
	for i := range l.Choices {
		if !l.Choices[i].separator {
			n++
		}
	}
	return n
}
