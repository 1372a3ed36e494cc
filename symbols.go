package enquire

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// SymbolSet holds the decorative glyphs used when rendering prompts.
// Swap the whole set with SetSymbols to adapt to terminals without good
// Unicode fonts.
type SymbolSet struct {
	Pointer   rune // hovered list entry marker
	Arrow     rune // shown after the message when no hint applies
	Completed rune // finished prompt marker
	MiddleDot rune // separates message from final answer
	Cross     rune // validation error marker

	CheckedBox   rune
	UncheckedBox rune

	BoxTopLeft     rune
	BoxTopRight    rune
	BoxBottomLeft  rune
	BoxBottomRight rune
	BoxHorizontal  rune
	BoxVertical    rune
}

// UnicodeSymbols is the default glyph set.
var UnicodeSymbols = SymbolSet{
	Pointer:   '❯',
	Arrow:     '›',
	Completed: '✔',
	MiddleDot: '·',
	Cross:     '✖',

	CheckedBox:   '◉',
	UncheckedBox: '◯',

	BoxTopLeft:     '┌',
	BoxTopRight:    '┐',
	BoxBottomLeft:  '└',
	BoxBottomRight: '┘',
	BoxHorizontal:  '─',
	BoxVertical:    '│',
}

// ASCIISymbols is a fallback set for terminals without Unicode fonts.
var ASCIISymbols = SymbolSet{
	Pointer:   '>',
	Arrow:     '>',
	Completed: '?',
	MiddleDot: '~',
	Cross:     'x',

	CheckedBox:   'x',
	UncheckedBox: 'o',

	BoxTopLeft:     '.',
	BoxTopRight:    '.',
	BoxBottomLeft:  '\'',
	BoxBottomRight: '\'',
	BoxHorizontal:  '-',
	BoxVertical:    '|',
}

var (
	symbolMu sync.Mutex
	symbols  = defaultSymbols()
)

func defaultSymbols() SymbolSet {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return UnicodeSymbols
	}
	return ASCIISymbols
}

// SetSymbols replaces the process-wide glyph set.
func SetSymbols(s SymbolSet) {
	symbolMu.Lock()
	symbols = s
	symbolMu.Unlock()
}

// Symbols returns the current process-wide glyph set.
func Symbols() SymbolSet {
	symbolMu.Lock()
	defer symbolMu.Unlock()
	return symbols
}
