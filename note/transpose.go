package note

import "github.com/jsphweid/chordex/util"

// Transpose shifts a note name by delta semitones. Upward (and zero)
// shifts are spelled with sharps, downward shifts with flats, regardless of
// how many octaves are crossed. Input that isn't exactly one note name,
// including "", comes back unchanged.
func Transpose(query string, delta int) string {
	pc, ok := Parse(query)
	if !ok {
		return query
	}
	return Shift(pc, delta).Spell(delta >= 0)
}

// TransposeOptional is Transpose for a possibly absent query: nil stays nil.
func TransposeOptional(query *string, delta int) *string {
	if query == nil {
		return nil
	}
	res := Transpose(*query, delta)
	return &res
}

// Shift moves p by delta semitones, wrapping around the octave.
func Shift(p PitchClass, delta int) PitchClass {
	// reduce delta first so huge values can't overflow
	return PitchClass(util.Mod(int(p)+util.Mod(delta, NotesPerOctave), NotesPerOctave))
}
