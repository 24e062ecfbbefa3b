// Package note maps pitch classes to note names and back, and transposes
// single note names.
package note

// PitchClass is one of the 12 equal-tempered chromatic steps, C=0 through B=11.
type PitchClass uint8

const (
	C = PitchClass(iota)
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

const NotesPerOctave = 12

var sharpSpelling = [NotesPerOctave]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

var flatSpelling = [NotesPerOctave]string{
	"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B",
}

// both tables merged, so C# and Db both resolve to 1
var spellingToPitchClass = func() map[string]PitchClass {
	m := make(map[string]PitchClass, 2*NotesPerOctave)
	for i := 0; i < NotesPerOctave; i++ {
		m[sharpSpelling[i]] = PitchClass(i)
		m[flatSpelling[i]] = PitchClass(i)
	}
	return m
}()

// IsRoot reports whether r is one of the root letters A through G.
func IsRoot(r rune) bool {
	return r >= 'A' && r <= 'G'
}

// IsAccidental reports whether r is a sharp or flat marker.
func IsAccidental(r rune) bool {
	return r == '#' || r == 'b'
}

// Parse returns the pitch class of a note name such as "C", "F#" or "Bb".
// Anything that is not exactly one of the sharp or flat spellings is
// rejected: lowercase roots, trailing text, double accidentals, and the
// spellings missing from both tables (Cb, Fb, E#, B#).
func Parse(name string) (PitchClass, bool) {
	if len(name) == 0 || len(name) > 2 {
		return 0, false
	}
	if !IsRoot(rune(name[0])) {
		return 0, false
	}
	if len(name) == 2 && !IsAccidental(rune(name[1])) {
		return 0, false
	}
	pc, ok := spellingToPitchClass[name]
	return pc, ok
}

// IsNote reports whether name is a single valid note spelling.
func IsNote(name string) bool {
	_, ok := Parse(name)
	return ok
}

// Spell names the pitch class, with sharps when useSharp is set and flats
// otherwise. Values outside 0-11 are reduced first.
func (p PitchClass) Spell(useSharp bool) string {
	if useSharp {
		return sharpSpelling[p%NotesPerOctave]
	}
	return flatSpelling[p%NotesPerOctave]
}

func (p PitchClass) String() string {
	return p.Spell(true)
}

func Spell(p PitchClass, useSharp bool) string {
	return p.Spell(useSharp)
}
