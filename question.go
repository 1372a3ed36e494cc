package enquire

import (
	"errors"
	"iter"
)

// getter is either a literal value or a one-shot function over the
// answers collected so far, resolved when the question is asked.
type getter[T any] struct {
	value T
	fn    func(*Answers) T
	set   bool
}

func literal[T any](v T) getter[T] {
	return getter[T]{value: v, set: true}
}

func computed[T any](fn func(*Answers) T) getter[T] {
	return getter[T]{fn: fn, set: true}
}

func (g getter[T]) resolve(def T, a *Answers) T {
	if !g.set {
		return def
	}
	if g.fn != nil {
		return g.fn(a)
	}
	return g.value
}

// options is the configuration every question kind shares.
type options struct {
	name          string
	message       getter[string]
	when          getter[bool]
	onEsc         getter[EscPolicy]
	askIfAnswered bool
}

// builder provides the shared fluent methods for the per-kind question
// builders. B is the concrete builder so each method returns it.
type builder[B any] struct {
	self *B
	opts options
}

func newBuilder[B any](self *B, name string) builder[B] {
	return builder[B]{self: self, opts: options{name: name}}
}

// Message sets the prompt message. Without one the question asks
// "<name>:".
func (b *builder[B]) Message(m string) *B {
	b.opts.message = literal(m)
	return b.self
}

// MessageFn computes the message from the answers so far.
func (b *builder[B]) MessageFn(fn func(*Answers) string) *B {
	b.opts.message = computed(fn)
	return b.self
}

// When gates the question: if false it is skipped.
func (b *builder[B]) When(v bool) *B {
	b.opts.when = literal(v)
	return b.self
}

// WhenFn gates the question on the answers so far.
func (b *builder[B]) WhenFn(fn func(*Answers) bool) *B {
	b.opts.when = computed(fn)
	return b.self
}

// OnEsc sets the Esc policy for this question.
func (b *builder[B]) OnEsc(p EscPolicy) *B {
	b.opts.onEsc = literal(p)
	return b.self
}

// OnEscFn computes the Esc policy from the answers so far.
func (b *builder[B]) OnEscFn(fn func(*Answers) EscPolicy) *B {
	b.opts.onEsc = computed(fn)
	return b.self
}

// AskIfAnswered re-asks the question even when the answers already
// contain its name.
func (b *builder[B]) AskIfAnswered() *B {
	b.opts.askIfAnswered = true
	return b.self
}

// Question is one entry of a prompt session, constructed by the
// per-kind builders (Input, Confirm, Select, ...).
type Question struct {
	opts       options
	hideCursor bool
	filter     func(Answer, *Answers) Answer
	make       func(message string, a *Answers) Prompt
}

// Name returns the question's answer key.
func (q Question) Name() string {
	return q.opts.name
}

// Questions turns a fixed set of questions into the lazy sequence Ask
// consumes.
func Questions(qs ...Question) iter.Seq[Question] {
	return func(yield func(Question) bool) {
		for _, q := range qs {
			if !yield(q) {
				return
			}
		}
	}
}

// Ask runs the questions on the process terminal and collects their
// answers. The sequence is consumed lazily so each question's hooks see
// every prior answer.
func Ask(qs iter.Seq[Question]) (*Answers, error) {
	t := NewTerminal()
	return AskWith(qs, t, t)
}

// AskWith runs the questions against an explicit backend and event
// source.
func AskWith(qs iter.Seq[Question], b Backend, ev EventSource) (*Answers, error) {
	answers := NewAnswers()
	for q := range qs {
		if err := askOne(q, answers, b, ev); err != nil {
			return answers, err
		}
	}
	return answers, nil
}

// AskOne runs a single question and returns its answer. A skipped
// question yields a nil Answer.
func AskOne(q Question, b Backend, ev EventSource) (Answer, error) {
	answers := NewAnswers()
	if err := askOne(q, answers, b, ev); err != nil {
		return nil, err
	}
	ans, _ := answers.Get(q.opts.name)
	return ans, nil
}

func askOne(q Question, answers *Answers, b Backend, ev EventSource) error {
	if !q.opts.when.resolve(true, answers) {
		return nil
	}
	if answers.Has(q.opts.name) && !q.opts.askIfAnswered {
		return nil
	}

	message := q.opts.message.resolve(q.opts.name+":", answers)
	opts := RunOptions{
		HideCursor: q.hideCursor,
		OnEsc:      q.opts.onEsc.resolve(EscIgnore, answers),
	}

	ans, err := RunPrompt(q.make(message, answers), b, ev, opts)
	if err != nil {
		if errors.Is(err, errSkipped) {
			return nil
		}
		return err
	}

	if q.filter != nil {
		ans = q.filter(ans, answers)
	}
	answers.Set(q.opts.name, ans)
	return nil
}

// Transform replaces the default finished-line rendering of a prompt.
type Transform func(ans Answer, a *Answers, b Backend) error

// promptBase carries what every built-in prompt needs to render its
// header and its finished line.
type promptBase struct {
	message   string
	answers   *Answers
	transform Transform
}

func (p *promptBase) WriteFinished(b Backend, ans Answer) error {
	if p.transform != nil {
		return p.transform(ans, p.answers, b)
	}
	return writeFinished(b, p.message, ans.Display())
}
