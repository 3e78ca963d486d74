package mdlayout

import "fmt"

// EventKind identifies a structural Markdown event.
type EventKind uint8

const (
	// EventText carries inline text content.
	EventText EventKind = iota
	// EventCode carries inline code content. It lays out like text.
	EventCode
	// EventSoftBreak is a soft line break inside a paragraph.
	EventSoftBreak
	// EventHardBreak is a hard line break inside a paragraph.
	EventHardBreak
	EventStartHeading
	EventEndHeading
	EventStartParagraph
	EventEndParagraph
	EventStartListItem
	EventEndListItem
	EventStartEmphasis
	EventEndEmphasis
	EventStartStrong
	EventEndStrong
	// EventStartTag opens a container the engine does not interpret.
	EventStartTag
	// EventEndTag closes a container the engine does not interpret.
	EventEndTag
	// EventRule is a thematic break.
	EventRule
	// EventHTML carries raw HTML, inline or block.
	EventHTML
)

var eventKindNames = [...]string{
	EventText:           "Text",
	EventCode:           "Code",
	EventSoftBreak:      "SoftBreak",
	EventHardBreak:      "HardBreak",
	EventStartHeading:   "StartHeading",
	EventEndHeading:     "EndHeading",
	EventStartParagraph: "StartParagraph",
	EventEndParagraph:   "EndParagraph",
	EventStartListItem:  "StartListItem",
	EventEndListItem:    "EndListItem",
	EventStartEmphasis:  "StartEmphasis",
	EventEndEmphasis:    "EndEmphasis",
	EventStartStrong:    "StartStrong",
	EventEndStrong:      "EndStrong",
	EventStartTag:       "StartTag",
	EventEndTag:         "EndTag",
	EventRule:           "Rule",
	EventHTML:           "HTML",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is one item of the structural event stream.
type Event struct {
	Kind EventKind
	// Level is the heading level for EventStartHeading and EventEndHeading.
	Level int
	// Text is the content of EventText, EventCode and EventHTML.
	Text string
	// Tag names the container of EventStartTag and EventEndTag.
	Tag string
}

func (e Event) String() string {
	switch e.Kind {
	case EventText, EventCode, EventHTML:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Text)
	case EventStartHeading, EventEndHeading:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Level)
	case EventStartTag, EventEndTag:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Tag)
	default:
		return e.Kind.String()
	}
}

// TextEvent returns an EventText carrying s.
func TextEvent(s string) Event { return Event{Kind: EventText, Text: s} }

// CodeEvent returns an EventCode carrying s.
func CodeEvent(s string) Event { return Event{Kind: EventCode, Text: s} }

// StartHeadingEvent returns an EventStartHeading for level.
func StartHeadingEvent(level int) Event { return Event{Kind: EventStartHeading, Level: level} }

// EndHeadingEvent returns an EventEndHeading for level.
func EndHeadingEvent(level int) Event { return Event{Kind: EventEndHeading, Level: level} }

func simpleEvent(kind EventKind) Event { return Event{Kind: kind} }

func tagEvent(kind EventKind, tag string) Event { return Event{Kind: kind, Tag: tag} }
