package chord

import (
	"strings"

	"github.com/jsphweid/chordex/note"
)

// Split separates a symbol into its root note name and whatever follows.
// The two-character root wins when it is a real note ("Bbm7" -> "Bb", "m7"),
// otherwise the bare letter is the root ("Cbass" -> "C", "bass").
func Split(symbol string) (root string, suffix string, ok bool) {
	if len(symbol) >= 2 && note.IsNote(symbol[:2]) {
		return symbol[:2], symbol[2:], true
	}
	if len(symbol) >= 1 && note.IsNote(symbol[:1]) {
		return symbol[:1], symbol[1:], true
	}
	return "", symbol, false
}

func Root(symbol string) (note.PitchClass, bool) {
	root, _, ok := Split(symbol)
	if !ok {
		return 0, false
	}
	return note.Parse(root)
}

// Transpose moves the root of symbol by delta semitones and keeps the rest
// as written, e.g. "F#m7 (b5)" up one is "Gm7 (b5)". Symbols without a root
// are returned unchanged.
func Transpose(symbol string, delta int) string {
	root, suffix, ok := Split(symbol)
	if !ok {
		return symbol
	}
	return note.Transpose(root, delta) + suffix
}

func TransposeAll(symbols []string, delta int) []string {
	if symbols == nil {
		return nil
	}
	res := make([]string, 0, len(symbols))
	for _, s := range symbols {
		res = append(res, Transpose(s, delta))
	}
	return res
}

// Roots lists the root pitch class of every symbol that has one.
func Roots(symbols []string) []note.PitchClass {
	var res []note.PitchClass
	for _, s := range symbols {
		if pc, ok := Root(strings.TrimSpace(s)); ok {
			res = append(res, pc)
		}
	}
	return res
}
