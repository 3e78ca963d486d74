package mdlayout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark/extension"
)

func collectEvents(src string, s Source) []Event {
	var events []Event
	for ev := range s.Events([]byte(src)) {
		events = append(events, ev)
	}
	return events
}

// structure returns the non-text events and the text events separately.
func structure(events []Event) ([]EventKind, []string) {
	var kinds []EventKind
	var texts []string
	for _, ev := range events {
		switch ev.Kind {
		case EventText, EventCode:
			texts = append(texts, ev.Text)
		default:
			kinds = append(kinds, ev.Kind)
		}
	}
	return kinds, texts
}

func TestGoldmarkSourceHeading(t *testing.T) {
	events := collectEvents("### Third\n", NewGoldmarkSource(false))
	require.Equal(t, []Event{
		StartHeadingEvent(3),
		TextEvent("Third"),
		EndHeadingEvent(3),
	}, events)
}

func TestGoldmarkSourceEmphasis(t *testing.T) {
	kinds, texts := structure(collectEvents("*a* and **b**\n", NewGoldmarkSource(false)))
	assert.Equal(t, []EventKind{
		EventStartParagraph,
		EventStartEmphasis,
		EventEndEmphasis,
		EventStartStrong,
		EventEndStrong,
		EventEndParagraph,
	}, kinds)
	assert.Equal(t, "a and b", strings.Join(strings.Fields(strings.Join(texts, " ")), " "))
}

func TestGoldmarkSourceTightListHasNoParagraphs(t *testing.T) {
	events := collectEvents("- x\n- y\n", NewGoldmarkSource(false))
	kinds, texts := structure(events)
	assert.Equal(t, []EventKind{
		EventStartTag,
		EventStartListItem,
		EventEndListItem,
		EventStartListItem,
		EventEndListItem,
		EventEndTag,
	}, kinds)
	assert.Equal(t, []string{"x", "y"}, texts)
	assert.Equal(t, "List", events[0].Tag)
}

func TestGoldmarkSourceBreaks(t *testing.T) {
	kinds, texts := structure(collectEvents("a\nb\n", NewGoldmarkSource(false)))
	assert.Equal(t, []EventKind{EventStartParagraph, EventSoftBreak, EventEndParagraph}, kinds)
	assert.Equal(t, []string{"a", "b"}, texts)

	kinds, _ = structure(collectEvents("a  \nb\n", NewGoldmarkSource(false)))
	assert.Equal(t, []EventKind{EventStartParagraph, EventHardBreak, EventEndParagraph}, kinds)
}

func TestGoldmarkSourceCodeSpan(t *testing.T) {
	events := collectEvents("run `go  test` now\n", NewGoldmarkSource(false))
	var code []string
	for _, ev := range events {
		if ev.Kind == EventCode {
			code = append(code, ev.Text)
		}
	}
	assert.Equal(t, []string{"go  test"}, code)
}

func TestGoldmarkSourceUnsupportedBlocks(t *testing.T) {
	kinds, _ := structure(collectEvents("a\n\n---\n\n<div>\nhi\n</div>\n", NewGoldmarkSource(false)))
	assert.Contains(t, kinds, EventRule)
	assert.Contains(t, kinds, EventHTML)
}

func TestGoldmarkSourceResolvesEscapes(t *testing.T) {
	_, texts := structure(collectEvents("AT&amp;T \\*literal\\*\n", NewGoldmarkSource(false)))
	joined := strings.Join(texts, "")
	assert.Contains(t, joined, "AT&T")
	assert.Contains(t, joined, "*literal*")
}

func TestGoldmarkSourceJoinsSplitText(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"use snake_case names\n", []string{"use snake_case names"}},
		{"2*3 is six\n", []string{"2*3 is six"}},
		{"a_b\nc_d\n", []string{"a_b", "c_d"}},
	}
	for _, tt := range tests {
		_, texts := structure(collectEvents(tt.src, NewGoldmarkSource(false)))
		assert.Equal(t, tt.want, texts, "src %q", tt.src)
	}

	kinds, _ := structure(collectEvents("a_b\nc_d\n", NewGoldmarkSource(false)))
	assert.Equal(t, []EventKind{EventStartParagraph, EventSoftBreak, EventEndParagraph}, kinds)
}

func TestGoldmarkSourceNFC(t *testing.T) {
	src := "Cafe\u0301\n"
	_, texts := structure(collectEvents(src, NewGoldmarkSource(true)))
	assert.Equal(t, []string{"Caf\u00e9"}, texts)

	_, texts = structure(collectEvents(src, NewGoldmarkSource(false)))
	assert.Equal(t, []string{"Cafe\u0301"}, texts)
}

func TestGoldmarkSourceExtensions(t *testing.T) {
	events := collectEvents("~~gone~~ kept\n", NewGoldmarkSource(false, extension.Strikethrough))
	var tags []string
	for _, ev := range events {
		if ev.Kind == EventStartTag {
			tags = append(tags, ev.Tag)
		}
	}
	assert.Equal(t, []string{"Strikethrough"}, tags)
}

func TestGoldmarkSourceStopsEarly(t *testing.T) {
	count := 0
	for range NewGoldmarkSource(false).Events([]byte("# a\n\nb\n\nc\n")) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestGoldmarkSourceEmptyInput(t *testing.T) {
	assert.Empty(t, collectEvents("", NewGoldmarkSource(false)))
}
