package text

import "golang.org/x/text/unicode/bidi"

// Direction is the progression direction of a text run.
type Direction uint8

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// Segment is a contiguous run of text with uniform direction, suitable
// for a single Shape call.
type Segment struct {
	Text string

	// Start and End are byte offsets into the original string.
	Start int
	End   int

	Direction Direction

	// Level is the bidi embedding level; odd levels are right-to-left.
	Level int
}

// SegmentText splits text into directionally uniform runs using the
// Unicode bidi algorithm. Pure LTR text yields a single segment.
func SegmentText(s string) []Segment {
	return segment(s, bidi.Neutral)
}

// SegmentTextRTL splits text as SegmentText does, with a right-to-left
// base paragraph direction.
func SegmentTextRTL(s string) []Segment {
	return segment(s, bidi.RightToLeft)
}

func segment(s string, base bidi.Direction) []Segment {
	if s == "" {
		return nil
	}

	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(base)); err != nil {
		return []Segment{{Text: s, End: len(s)}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []Segment{{Text: s, End: len(s)}}
	}

	runes := []rune(s)
	levels := make([]int, len(runes))
	// run.Pos() returns rune indices, start and end inclusive.
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := start; j <= end && j < len(levels); j++ {
			levels[j] = level
		}
	}

	byteOffsets := make([]int, len(runes)+1)
	offset := 0
	for i, r := range runes {
		byteOffsets[i] = offset
		offset += len(string(r))
	}
	byteOffsets[len(runes)] = len(s)

	var segments []Segment
	startRune := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && levels[i] == levels[startRune] {
			continue
		}
		dir := DirectionLTR
		if levels[startRune]%2 == 1 {
			dir = DirectionRTL
		}
		segments = append(segments, Segment{
			Text:      s[byteOffsets[startRune]:byteOffsets[i]],
			Start:     byteOffsets[startRune],
			End:       byteOffsets[i],
			Direction: dir,
			Level:     levels[startRune],
		})
		startRune = i
	}
	return segments
}
