package model

type TextEventKind string

const (
	Lyric    TextEventKind = "lyric"
	Marker   TextEventKind = "marker"
	Text     TextEventKind = "text"
	Cuepoint TextEventKind = "cuepoint"
)

// TimedSymbols are the symbols found in one text event of a midi file.
type TimedSymbols struct {
	Track   int           `json:"track"`
	Offset  float32       `json:"offset"` // seconds from the start
	Kind    TextEventKind `json:"kind"`
	Text    string        `json:"text"`
	Symbols []string      `json:"symbols"`
}
