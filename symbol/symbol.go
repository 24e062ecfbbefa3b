// Package symbol splits free text into chord or scale symbols, each one
// starting at a root letter A-G and running up to the next root letter.
package symbol

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jsphweid/chordex/note"
)

type scanState uint8

const (
	beforeFirstRoot scanState = iota
	inSymbol
)

// Find returns the root-anchored symbols in query, or nil if query has no
// root letter at all. Text before the first root letter is dropped, every
// whitespace run inside a symbol becomes a single space, and each symbol is
// trimmed.
//
//	Find("C      major   F#m7    (b5) G") // ["C major", "F#m7 (b5)", "G"]
func Find(query string) []string {
	var (
		res          []string
		buf          strings.Builder
		state        = beforeFirstRoot
		pendingSpace bool
	)

	closeSymbol := func() {
		if s := strings.TrimSpace(buf.String()); s != "" {
			res = append(res, s)
		}
		buf.Reset()
		pendingSpace = false
	}

	// copy source bytes rather than re-encoding runes, so invalid UTF-8
	// survives and every symbol stays a substring of query
	for i := 0; i < len(query); {
		r, size := utf8.DecodeRuneInString(query[i:])
		raw := query[i : i+size]
		i += size

		switch {
		case note.IsRoot(r):
			if state == inSymbol {
				closeSymbol()
			}
			state = inSymbol
			buf.WriteString(raw)
		case state == beforeFirstRoot:
			// unanchored noise
		case unicode.IsSpace(r):
			// only written once something follows, which drops trailing runs
			pendingSpace = true
		default:
			if pendingSpace {
				buf.WriteByte(' ')
				pendingSpace = false
			}
			buf.WriteString(raw)
		}
	}
	if state == inSymbol {
		closeSymbol()
	}

	if len(res) == 0 {
		return nil
	}
	return res
}

// FindOptional is Find for a possibly absent query: nil finds nothing.
func FindOptional(query *string) []string {
	if query == nil {
		return nil
	}
	return Find(*query)
}
