// Package keyboard computes which keys of a drawn piano keyboard to
// highlight. Keys are numbered from 1 at the lowest C, so the index of a
// pitch class in a given octave is pc + 1 + octave*12.
package keyboard

import (
	"fmt"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/note"
	"github.com/jsphweid/chordex/util"
)

// positions inside one octave, 1-based
var (
	whiteKeys = []int{1, 3, 5, 6, 8, 10, 12}
	blackKeys = []int{2, 4, 7, 9, 11}
)

// WhiteKeys returns a fresh copy of the white key positions in one octave.
func WhiteKeys() []int {
	return append([]int(nil), whiteKeys...)
}

// BlackKeys returns a fresh copy of the black key positions in one octave.
func BlackKeys() []int {
	return append([]int(nil), blackKeys...)
}

type Keyboard struct {
	Octaves int
}

func New(octaves int) (*Keyboard, error) {
	if octaves < 1 {
		return nil, fmt.Errorf("keyboard needs at least one octave, got %v", octaves)
	}
	return &Keyboard{Octaves: octaves}, nil
}

func (k *Keyboard) Index(pc note.PitchClass, octave int) (int, error) {
	if octave < 0 || octave >= k.Octaves {
		return 0, fmt.Errorf("octave %v is outside the %v octave keyboard", octave, k.Octaves)
	}
	return int(pc%note.NotesPerOctave) + 1 + octave*note.NotesPerOctave, nil
}

// Highlight returns the sorted key indices for the roots of symbols,
// placed in the given octave. Symbols without a root are ignored.
func (k *Keyboard) Highlight(symbols []string, octave int) ([]int, error) {
	var keys []int
	for _, pc := range chord.Roots(symbols) {
		i, err := k.Index(pc, octave)
		if err != nil {
			return nil, err
		}
		keys = append(keys, i)
	}
	return util.SortedUnique(keys), nil
}

func IsBlack(pc note.PitchClass) bool {
	switch pc % note.NotesPerOctave {
	case note.CSharp, note.DSharp, note.FSharp, note.GSharp, note.ASharp:
		return true
	}
	return false
}
