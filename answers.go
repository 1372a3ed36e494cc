package enquire

import (
	"iter"
	"strconv"
)

// Answer is the typed result of one question. It is a sealed interface;
// the concrete types are StringAnswer, IntAnswer, FloatAnswer,
// BoolAnswer, ListItem, ExpandItem and ListItems.
type Answer interface {
	isAnswer()
	// Display returns the answer formatted the way the finished prompt
	// line shows it.
	Display() string
}

type StringAnswer string

type IntAnswer int64

type FloatAnswer float64

type BoolAnswer bool

// ListItem is a selected choice: its index within the full choice list
// (separators included) and its text.
type ListItem struct {
	Index int
	Text  string
}

// ExpandItem is an expand-prompt choice: its key and its text.
type ExpandItem struct {
	Key  rune
	Text string
}

// ListItems is the multi-select result, ordered by index (or by the
// user's arrangement for ordered selects).
type ListItems []ListItem

func (StringAnswer) isAnswer() {}
func (IntAnswer) isAnswer()    {}
func (FloatAnswer) isAnswer()  {}
func (BoolAnswer) isAnswer()   {}
func (ListItem) isAnswer()     {}
func (ExpandItem) isAnswer()   {}
func (ListItems) isAnswer()    {}

func (a StringAnswer) Display() string { return string(a) }

func (a IntAnswer) Display() string { return strconv.FormatInt(int64(a), 10) }

func (a FloatAnswer) Display() string {
	return strconv.FormatFloat(float64(a), 'g', -1, 64)
}

func (a BoolAnswer) Display() string {
	if a {
		return "Yes"
	}
	return "No"
}

func (a ListItem) Display() string { return a.Text }

func (a ExpandItem) Display() string { return a.Text }

func (a ListItems) Display() string {
	out := ""
	for i, item := range a {
		if i > 0 {
			out += ", "
		}
		out += item.Text
	}
	return out
}

// Answers holds the results of a prompt session keyed by question name,
// preserving the order questions were answered in.
type Answers struct {
	names []string
	m     map[string]Answer
}

// NewAnswers returns an empty answer set.
func NewAnswers() *Answers {
	return &Answers{m: make(map[string]Answer)}
}

// Set stores an answer, replacing any previous answer for the name but
// keeping its original position.
func (a *Answers) Set(name string, ans Answer) {
	if _, ok := a.m[name]; !ok {
		a.names = append(a.names, name)
	}
	a.m[name] = ans
}

// Get returns the answer for name.
func (a *Answers) Get(name string) (Answer, bool) {
	ans, ok := a.m[name]
	return ans, ok
}

// Has reports whether an answer for name exists.
func (a *Answers) Has(name string) bool {
	_, ok := a.m[name]
	return ok
}

// Len returns the number of answers.
func (a *Answers) Len() int {
	return len(a.names)
}

// All iterates the answers in insertion order.
func (a *Answers) All() iter.Seq2[string, Answer] {
	return func(yield func(string, Answer) bool) {
		for _, name := range a.names {
			if !yield(name, a.m[name]) {
				return
			}
		}
	}
}

// String returns the string answer for name, or "" if absent or of
// another type.
func (a *Answers) String(name string) string {
	if s, ok := a.m[name].(StringAnswer); ok {
		return string(s)
	}
	return ""
}

// Int returns the integer answer for name, or 0.
func (a *Answers) Int(name string) int64 {
	if v, ok := a.m[name].(IntAnswer); ok {
		return int64(v)
	}
	return 0
}

// Float returns the float answer for name, or 0.
func (a *Answers) Float(name string) float64 {
	if v, ok := a.m[name].(FloatAnswer); ok {
		return float64(v)
	}
	return 0
}

// Bool returns the boolean answer for name, or false.
func (a *Answers) Bool(name string) bool {
	if v, ok := a.m[name].(BoolAnswer); ok {
		return bool(v)
	}
	return false
}

// Item returns the list-item answer for name.
func (a *Answers) Item(name string) (ListItem, bool) {
	v, ok := a.m[name].(ListItem)
	return v, ok
}

// Items returns the multi-select answer for name.
func (a *Answers) Items(name string) (ListItems, bool) {
	v, ok := a.m[name].(ListItems)
	return v, ok
}
