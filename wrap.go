package mdlayout

import (
	"strings"
	"unicode/utf8"
)

// DefaultWidth is the line budget in characters.
const DefaultWidth = 80

// Word is a whitespace-delimited run of text with its style.
type Word struct {
	Text        string `yaml:"text"`
	InlineStyle `yaml:",inline"`
}

// Len returns the width of the word in characters.
func (w Word) Len() int { return utf8.RuneCountInString(w.Text) }

// Line is a wrapped line. Adjacent words are separated by one space.
type Line []Word

// String returns the words joined by single spaces.
func (l Line) String() string {
	switch len(l) {
	case 0:
		return ""
	case 1:
		return l[0].Text
	}
	var b strings.Builder
	for i, w := range l {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w.Text)
	}
	return b.String()
}

// Len returns the rendered width of the line in characters, separators
// included.
func (l Line) Len() int {
	if len(l) == 0 {
		return 0
	}
	n := len(l) - 1
	for _, w := range l {
		n += w.Len()
	}
	return n
}

// wrapUnit is a word or a forced break; it only exists while wrapping.
type wrapUnit struct {
	word Word
	brk  bool
}

func splitWords(segments []segment) []wrapUnit {
	units := make([]wrapUnit, 0, len(segments)*4)
	for _, seg := range segments {
		if seg.kind == segmentLineBreak {
			units = append(units, wrapUnit{brk: true})
			continue
		}
		for _, tok := range strings.Fields(seg.text) {
			units = append(units, wrapUnit{word: Word{Text: tok, InlineStyle: seg.style}})
		}
	}
	return units
}

// wrapSegments greedily packs words into lines of at most width characters.
// A word longer than width is never split; it is placed on a line of its own.
// Every break closes the current line, even an empty one.
func wrapSegments(segments []segment, width int) []Line {
	var (
		lines   []Line
		current Line
		length  int
	)
	for _, u := range splitWords(segments) {
		if u.brk {
			lines = append(lines, current)
			current = nil
			length = 0
			continue
		}
		n := u.word.Len()
		if length+n > width && len(current) > 0 {
			lines = append(lines, current)
			current = nil
			length = 0
		}
		current = append(current, u.word)
		length += n + 1
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}
