package mdlayout

import "strings"

type segmentKind uint8

const (
	segmentText segmentKind = iota
	segmentLineBreak
)

// segment is a styled run of raw text or a forced line break.
type segment struct {
	kind  segmentKind
	text  string
	style InlineStyle
}

// segmentBuffer accumulates the segments of the block being scanned.
type segmentBuffer struct {
	segments []segment
}

func (b *segmentBuffer) empty() bool { return len(b.segments) == 0 }

func (b *segmentBuffer) reset() { b.segments = b.segments[:0] }

// appendText adds content under style, turning each embedded newline into a
// line break. Empty pieces are dropped; the breaks between them are kept.
func (b *segmentBuffer) appendText(content string, style InlineStyle) {
	for {
		piece, rest, found := strings.Cut(content, "\n")
		if piece != "" {
			b.segments = append(b.segments, segment{kind: segmentText, text: piece, style: style})
		}
		if !found {
			return
		}
		b.appendBreak()
		content = rest
	}
}

func (b *segmentBuffer) appendBreak() {
	b.segments = append(b.segments, segment{kind: segmentLineBreak})
}

func (b *segmentBuffer) prepend(seg segment) {
	b.segments = append(b.segments, segment{})
	copy(b.segments[1:], b.segments)
	b.segments[0] = seg
}
