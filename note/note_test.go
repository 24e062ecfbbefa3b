package note

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAcceptsBothSpellings(t *testing.T) {
	cases := []struct {
		name string
		pc   PitchClass
	}{
		{"C", C}, {"C#", CSharp}, {"Db", CSharp}, {"D", D}, {"D#", DSharp},
		{"Eb", DSharp}, {"E", E}, {"F", F}, {"F#", FSharp}, {"Gb", FSharp},
		{"G", G}, {"G#", GSharp}, {"Ab", GSharp}, {"A", A}, {"A#", ASharp},
		{"Bb", ASharp}, {"B", B},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("parse %v", c.name), func(t *testing.T) {
			pc, ok := Parse(c.name)
			assert := assert.New(t)
			assert.True(ok)
			assert.Equal(c.pc, pc)
		})
	}
}

func TestParseRejectsNonNotes(t *testing.T) {
	cases := []string{
		"", "c", "c#", "H", "Moo", "C major", "C##", "Cbb", "C#m", "C7",
		"1", " C", "C ", "Cb", "Fb", "E#", "B#", "Cx",
	}

	for _, name := range cases {
		t.Run(fmt.Sprintf("reject %q", name), func(t *testing.T) {
			_, ok := Parse(name)
			assert.False(t, ok)
			assert.False(t, IsNote(name))
		})
	}
}

func TestSpell(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C#", CSharp.Spell(true))
	assert.Equal("Db", CSharp.Spell(false))
	assert.Equal("B", Spell(B, false))
	assert.Equal("A#", ASharp.String())
	assert.Equal("C", PitchClass(12).Spell(false))
}

func TestSpellRoundTrips(t *testing.T) {
	assert := assert.New(t)
	for i := 0; i < NotesPerOctave; i++ {
		pc := PitchClass(i)
		for _, useSharp := range []bool{true, false} {
			parsed, ok := Parse(pc.Spell(useSharp))
			assert.True(ok)
			assert.Equal(pc, parsed)
		}
	}
}

func TestIsRoot(t *testing.T) {
	assert := assert.New(t)
	for _, r := range "ABCDEFG" {
		assert.True(IsRoot(r))
	}
	for _, r := range "abcdefgHXZ#1 " {
		assert.False(IsRoot(r))
	}
}
