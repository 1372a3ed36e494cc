package enquire

import (
	"strings"
	"testing"
)

func TestWrapText(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		first int
		rest  int
		want  []string
	}{
		{"fits", "hello world", 20, 20, []string{"hello world"}},
		{"wraps at word", "hello wide world", 11, 11, []string{"hello wide", "world"}},
		{"narrow first line", "alpha beta gamma", 5, 16, []string{"alpha", "beta gamma"}},
		{"empty", "", 10, 10, []string{""}},
		{"newline kept", "one\ntwo", 10, 10, []string{"one", "two"}},
		{"blank paragraph", "one\n\ntwo", 10, 10, []string{"one", "", "two"}},
		{"long word broken", "abcdefghij", 4, 4, []string{"abcd", "efgh", "ij"}},
		{"grapheme wider than line", "漢", 1, 1, []string{"漢"}},
		{"wide word on narrow line", "漢字", 1, 1, []string{"漢", "字"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := wrapText(tc.in, tc.first, tc.rest)
			if len(got) != len(tc.want) {
				t.Fatalf("wrapText = %q, want %q", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestTextHeightMatchesRender(t *testing.T) {
	txt := NewText("the quick brown fox jumps over the lazy dog and keeps on running")
	size := Size{Width: 20, Height: 24}

	hl := NewLayout(size)
	want := txt.Height(&hl)

	b := NewTestBackend(size.Width, size.Height)
	rl := NewLayout(size)
	if err := txt.Render(&rl, b); err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := strings.Count(b.Output(), "\n") + 1
	if got != want {
		t.Errorf("rendered %d lines, Height said %d", got, want)
	}
	if rl.OffsetY != hl.OffsetY {
		t.Errorf("render advanced layout to %d, height to %d", rl.OffsetY, hl.OffsetY)
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("hello", 10); got != "hello" {
		t.Errorf("no-op truncate = %q", got)
	}
	if got := truncateToWidth("hello world", 5); got != "hello" {
		t.Errorf("truncate = %q, want %q", got, "hello")
	}
	// Wide runes never get split down the middle.
	if got := truncateToWidth("日本語", 3); got != "日" {
		t.Errorf("wide truncate = %q, want %q", got, "日")
	}
}

func TestEllipsize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		w    int
		want string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello..."},
		{"dots only", "hello", 3, "..."},
		{"narrower than dots", "hello", 2, ".."},
		{"no room", "hello", 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ellipsize(tc.in, tc.w); got != tc.want {
				t.Errorf("ellipsize(%q, %d) = %q, want %q", tc.in, tc.w, got, tc.want)
			}
		})
	}
}

func TestLineWidget(t *testing.T) {
	size := Size{Width: 10, Height: 24}

	l := NewLine("a very long line of text")
	b := NewTestBackend(size.Width, size.Height)
	layout := NewLayout(size)
	if err := l.Render(&layout, b); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := b.Output(); got != "a very..." {
		t.Errorf("rendered %q, want %q", got, "a very...")
	}
	if layout.OffsetY != 1 || layout.OffsetX != 0 {
		t.Errorf("layout advanced to (%d,%d), want (0,1)", layout.OffsetX, layout.OffsetY)
	}

	hl := NewLayout(size)
	if h := l.Height(&hl); h != 1 {
		t.Errorf("Height = %d, want 1", h)
	}
}
