// Command questionnaire runs a prompt session defined in a YAML file.
//
//	questionnaire [file.yaml]
//
// Input questions may carry a suggestion corpus; Tab fuzzy-matches the
// typed prefix against it.
package main

import (
	"fmt"
	"iter"
	"os"

	"enquire"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"
)

type questionDef struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Message string `yaml:"message"`

	Default     *string  `yaml:"default"`
	Choices     []string `yaml:"choices"`
	DefaultItem *int     `yaml:"default_item"`
	Suggestions []string `yaml:"suggestions"`
	PageSize    int      `yaml:"page_size"`
	Mask        string   `yaml:"mask"`
	When        string   `yaml:"when"` // name of a confirm answer gating this question
}

func (d questionDef) build() (enquire.Question, error) {
	switch d.Kind {
	case "input":
		b := enquire.Input(d.Name)
		applyCommon(b.Message, b.WhenFn, d)
		if d.Default != nil {
			b.Default(*d.Default)
		}
		if len(d.Suggestions) > 0 {
			corpus := d.Suggestions
			b.AutoComplete(func(s string, _ *enquire.Answers) []string {
				matches := fuzzy.Find(s, corpus)
				if len(matches) == 0 {
					return []string{s}
				}
				out := make([]string, len(matches))
				for i, m := range matches {
					out[i] = m.Str
				}
				return out
			})
		}
		return b.Build(), nil

	case "password":
		b := enquire.Password(d.Name)
		applyCommon(b.Message, b.WhenFn, d)
		if d.Mask != "" {
			b.Mask([]rune(d.Mask)[0])
		}
		return b.Build(), nil

	case "confirm":
		b := enquire.Confirm(d.Name)
		applyCommon(b.Message, b.WhenFn, d)
		if d.Default != nil {
			b.Default(*d.Default == "true" || *d.Default == "yes")
		}
		return b.Build(), nil

	case "select":
		b := enquire.Select(d.Name)
		applyCommon(b.Message, b.WhenFn, d)
		for _, c := range d.Choices {
			b.Choice(c)
		}
		if d.DefaultItem != nil {
			b.Default(*d.DefaultItem)
		}
		if d.PageSize > 0 {
			b.PageSize(d.PageSize)
		}
		return b.Build(), nil

	case "multiselect":
		b := enquire.MultiSelect(d.Name)
		applyCommon(b.Message, b.WhenFn, d)
		for _, c := range d.Choices {
			b.Choice(c)
		}
		if d.PageSize > 0 {
			b.PageSize(d.PageSize)
		}
		return b.Build(), nil

	case "order":
		b := enquire.OrderSelect(d.Name)
		applyCommon(b.Message, b.WhenFn, d)
		for _, c := range d.Choices {
			b.Choice(c)
		}
		return b.Build(), nil

	default:
		return enquire.Question{}, fmt.Errorf("unknown question kind %q", d.Kind)
	}
}

// applyCommon wires the message and when-gate shared by every kind.
func applyCommon[B any](message func(string) *B, whenFn func(func(*enquire.Answers) bool) *B, d questionDef) {
	if d.Message != "" {
		message(d.Message)
	}
	if d.When != "" {
		gate := d.When
		whenFn(func(a *enquire.Answers) bool { return a.Bool(gate) })
	}
}

func run() error {
	path := "questionnaire.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var defs []questionDef
	if err := yaml.Unmarshal(raw, &defs); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	questions := func(yield func(enquire.Question) bool) {
		for _, d := range defs {
			q, err := d.build()
			if err != nil {
				fmt.Fprintln(os.Stderr, "skipping:", err)
				continue
			}
			if !yield(q) {
				return
			}
		}
	}

	answers, err := enquire.Ask(iter.Seq[enquire.Question](questions))
	if err != nil {
		return err
	}

	for name, ans := range answers.All() {
		fmt.Printf("%s = %s\n", name, ans.Display())
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
