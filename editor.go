package enquire

import (
	"os"
	"os/exec"
	"strings"
)

// editorPrompt collects a value by launching the user's editor on a
// temp file. The driver suspends raw mode around the launch.
type editorPrompt struct {
	promptBase
	header Header

	def      string
	ext      string
	value    string
	edited   bool
	validate func(string, *Answers) error
}

func newEditorPrompt(message string, base promptBase) *editorPrompt {
	p := &editorPrompt{promptBase: base}
	p.header = Header{Message: message, Hint: "(Press <enter> to launch your preferred editor)"}
	return p
}

func (p *editorPrompt) Height(layout *Layout) int {
	return p.header.Height(layout)
}

func (p *editorPrompt) Render(layout *Layout, b Backend) error {
	return p.header.Render(layout, b)
}

func (p *editorPrompt) CursorPos(layout Layout) (int, int) {
	return p.header.CursorPos(layout)
}

func (p *editorPrompt) HandleKey(KeyEvent) bool {
	return false
}

// editorCommand resolves the editor the way visudo does: $VISUAL, then
// $EDITOR, then vi.
func editorCommand() []string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := os.Getenv(env); v != "" {
			return strings.Fields(v)
		}
	}
	return []string{"vi"}
}

// Suspend runs the editor outside raw mode and reads the result back.
func (p *editorPrompt) Suspend() error {
	f, err := os.CreateTemp("", "enquire-*"+p.ext)
	if err != nil {
		return err
	}
	path := f.Name()
	defer os.Remove(path)
	if _, err := f.WriteString(p.def); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	argv := append(editorCommand(), path)
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	p.value = string(content)
	p.edited = true
	return nil
}

func (p *editorPrompt) Validate() (Validation, error) {
	if !p.edited {
		return ValidationContinue, nil
	}
	if p.validate != nil {
		if err := p.validate(p.value, p.answers); err != nil {
			p.edited = false
			return 0, err
		}
	}
	return ValidationFinish, nil
}

func (p *editorPrompt) Finish() Answer {
	return StringAnswer(p.value)
}

func (p *editorPrompt) FinishDefault() (Answer, bool) {
	return nil, false
}

// WriteFinished never dumps the (possibly multi-line) content.
func (p *editorPrompt) WriteFinished(b Backend, ans Answer) error {
	if p.transform != nil {
		return p.transform(ans, p.answers, b)
	}
	return writeFinished(b, p.message, "Received")
}

// EditorBuilder configures an external-editor question.
type EditorBuilder struct {
	builder[EditorBuilder]
	def       string
	ext       string
	validate  func(string, *Answers) error
	filter    func(string, *Answers) string
	transform Transform
}

// Editor starts an external-editor question stored under name.
func Editor(name string) *EditorBuilder {
	b := &EditorBuilder{}
	b.builder = newBuilder(b, name)
	return b
}

// Default seeds the temp file before the editor opens.
func (b *EditorBuilder) Default(v string) *EditorBuilder {
	b.def = v
	return b
}

// Extension sets the temp file's extension (including the dot) so the
// editor picks the right mode.
func (b *EditorBuilder) Extension(ext string) *EditorBuilder {
	b.ext = ext
	return b
}

// Validate gates the edited content; a returned error re-opens the
// prompt.
func (b *EditorBuilder) Validate(fn func(string, *Answers) error) *EditorBuilder {
	b.validate = fn
	return b
}

// Filter rewrites the answer before it is stored.
func (b *EditorBuilder) Filter(fn func(string, *Answers) string) *EditorBuilder {
	b.filter = fn
	return b
}

// Transform replaces the finished-line rendering.
func (b *EditorBuilder) Transform(t Transform) *EditorBuilder {
	b.transform = t
	return b
}

// Build finalizes the question.
func (b *EditorBuilder) Build() Question {
	cfg := *b
	q := Question{opts: b.opts}
	if cfg.filter != nil {
		q.filter = func(ans Answer, a *Answers) Answer {
			return StringAnswer(cfg.filter(string(ans.(StringAnswer)), a))
		}
	}
	q.make = func(message string, a *Answers) Prompt {
		p := newEditorPrompt(message, promptBase{
			message:   message,
			answers:   a,
			transform: cfg.transform,
		})
		p.def = cfg.def
		p.ext = cfg.ext
		p.validate = cfg.validate
		return p
	}
	return q
}
