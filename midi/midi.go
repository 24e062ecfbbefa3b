package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/symbol"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file: %w", err)
	}
	return ReadMidi(bytes.NewReader(dat))
}

func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	// the decoder can panic on malformed input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = fmt.Errorf("error parsing midi file: %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file: %w", err)
	}
	return res, nil
}

func textOf(msg smf.Message) (model.TextEventKind, string, bool) {
	var text string
	switch {
	case msg.GetMetaLyric(&text):
		return model.Lyric, text, true
	case msg.GetMetaMarker(&text):
		return model.Marker, text, true
	case msg.GetMetaText(&text):
		return model.Text, text, true
	case msg.GetMetaCuepoint(&text):
		return model.Cuepoint, text, true
	}
	return "", "", false
}

// FindSymbols scans the lyric, marker, text and cue point events of every
// track for chord symbols. Results are ordered by time, then track.
func FindSymbols(s *smf.SMF) []model.TimedSymbols {
	var res []model.TimedSymbols

	for trackNum, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			kind, text, ok := textOf(event.Message)
			if !ok {
				continue
			}
			symbols := symbol.Find(text)
			if symbols == nil {
				continue
			}
			res = append(res, model.TimedSymbols{
				Track:   trackNum,
				Offset:  float32(s.TimeAt(absTicks)) / 1e6,
				Kind:    kind,
				Text:    text,
				Symbols: symbols,
			})
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Offset != res[j].Offset {
			return res[i].Offset < res[j].Offset
		}
		return res[i].Track < res[j].Track
	})
	return res
}
