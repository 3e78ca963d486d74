package mdlayout

import (
	"bytes"
	"iter"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"golang.org/x/text/unicode/norm"
)

// Source tokenizes Markdown into a finite, ordered event stream.
type Source interface {
	Events(src []byte) iter.Seq[Event]
}

// GoldmarkSource is the default Source. It parses with goldmark and replays
// the syntax tree as Start/End events in document order.
type GoldmarkSource struct {
	md  goldmark.Markdown
	nfc bool
}

const codeBlockTag = "CodeBlock"

// NewGoldmarkSource returns a Source backed by goldmark. When nfc is set,
// text content is normalized to Unicode NFC before it is emitted.
func NewGoldmarkSource(nfc bool, extensions ...goldmark.Extender) *GoldmarkSource {
	var opts []goldmark.Option
	if len(extensions) > 0 {
		opts = append(opts, goldmark.WithExtensions(extensions...))
	}
	return &GoldmarkSource{md: goldmark.New(opts...), nfc: nfc}
}

// Events parses src and yields its events. Iteration can stop early.
func (s *GoldmarkSource) Events(src []byte) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		if len(src) == 0 {
			return
		}
		root := s.md.Parser().Parse(text.NewReader(src))
		w := astWalker{src: src, nfc: s.nfc, yield: yield}
		_ = ast.Walk(root, w.walk)
		w.flushText()
	}
}

type astWalker struct {
	src     []byte
	nfc     bool
	yield   func(Event) bool
	stopped bool
	// pending joins adjacent plain text nodes. goldmark splits a run of
	// text at unmatched delimiters, as in snake_case or 2*3.
	pending []byte
}

func (w *astWalker) emit(ev Event) bool {
	if w.stopped {
		return false
	}
	if !w.yield(ev) {
		w.stopped = true
	}
	return !w.stopped
}

// flushText emits the joined pending text, if any.
func (w *astWalker) flushText() bool {
	if len(w.pending) == 0 {
		return !w.stopped
	}
	ev := TextEvent(w.content(w.pending))
	w.pending = w.pending[:0]
	return w.emit(ev)
}

// joinsText reports whether n contributes to the pending text run.
func joinsText(n ast.Node) bool {
	switch node := n.(type) {
	case *ast.Text:
		return true
	case *ast.String:
		return !node.IsCode()
	}
	return false
}

func (w *astWalker) status(skipChildren bool) (ast.WalkStatus, error) {
	if w.stopped {
		return ast.WalkStop, nil
	}
	if skipChildren {
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}

func (w *astWalker) content(b []byte) string {
	if w.nfc {
		b = norm.NFC.Bytes(b)
	}
	return string(b)
}

func (w *astWalker) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !joinsText(n) && !w.flushText() {
		return ast.WalkStop, nil
	}
	switch node := n.(type) {
	case *ast.Document, *ast.TextBlock:
		// Tight list items carry their inline content in a TextBlock, which
		// produces no paragraph events.
	case *ast.Heading:
		if entering {
			w.emit(StartHeadingEvent(node.Level))
		} else {
			w.emit(EndHeadingEvent(node.Level))
		}
	case *ast.Paragraph:
		w.emit(simpleEvent(pick(entering, EventStartParagraph, EventEndParagraph)))
	case *ast.ListItem:
		w.emit(simpleEvent(pick(entering, EventStartListItem, EventEndListItem)))
	case *ast.Emphasis:
		if node.Level >= 2 {
			w.emit(simpleEvent(pick(entering, EventStartStrong, EventEndStrong)))
		} else {
			w.emit(simpleEvent(pick(entering, EventStartEmphasis, EventEndEmphasis)))
		}
	case *ast.Text:
		if !entering {
			break
		}
		value := node.Segment.Value(w.src)
		if !node.IsRaw() {
			value = unescapeText(value)
		}
		w.pending = append(w.pending, value...)
		if !node.HardLineBreak() && !node.SoftLineBreak() {
			break
		}
		if !w.flushText() {
			break
		}
		if node.HardLineBreak() {
			w.emit(simpleEvent(EventHardBreak))
		} else {
			w.emit(simpleEvent(EventSoftBreak))
		}
	case *ast.String:
		if !entering || len(node.Value) == 0 {
			break
		}
		if node.IsCode() {
			w.emit(CodeEvent(w.content(node.Value)))
			break
		}
		w.pending = append(w.pending, node.Value...)
	case *ast.CodeSpan:
		if entering {
			w.emit(CodeEvent(w.content(w.codeSpanText(node))))
		}
		return w.status(true)
	case *ast.CodeBlock, *ast.FencedCodeBlock:
		if !entering {
			w.emit(tagEvent(EventEndTag, codeBlockTag))
			break
		}
		if !w.emit(tagEvent(EventStartTag, codeBlockTag)) {
			break
		}
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			if !w.emit(TextEvent(w.content(seg.Value(w.src)))) {
				break
			}
		}
		return w.status(true)
	case *ast.AutoLink:
		tag := n.Kind().String()
		if !entering {
			w.emit(tagEvent(EventEndTag, tag))
			break
		}
		if w.emit(tagEvent(EventStartTag, tag)) {
			w.emit(TextEvent(w.content(node.Label(w.src))))
		}
	case *ast.HTMLBlock:
		if entering {
			var buf bytes.Buffer
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(w.src))
			}
			if node.HasClosure() {
				buf.Write(node.ClosureLine.Value(w.src))
			}
			w.emit(Event{Kind: EventHTML, Text: buf.String()})
		}
		return w.status(true)
	case *ast.RawHTML:
		if entering {
			var buf bytes.Buffer
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				buf.Write(seg.Value(w.src))
			}
			w.emit(Event{Kind: EventHTML, Text: buf.String()})
		}
		return w.status(true)
	case *ast.ThematicBreak:
		if entering {
			w.emit(simpleEvent(EventRule))
		}
	default:
		w.emit(tagEvent(pick(entering, EventStartTag, EventEndTag), n.Kind().String()))
	}
	return w.status(false)
}

// codeSpanText concatenates the code span content. Line endings inside a
// code span read as single spaces.
func (w *astWalker) codeSpanText(span *ast.CodeSpan) []byte {
	var buf bytes.Buffer
	for c := span.FirstChild(); c != nil; c = c.NextSibling() {
		switch child := c.(type) {
		case *ast.Text:
			value := child.Segment.Value(w.src)
			if bytes.HasSuffix(value, []byte("\n")) {
				buf.Write(value[:len(value)-1])
				buf.WriteByte(' ')
				continue
			}
			buf.Write(value)
		case *ast.String:
			buf.Write(child.Value)
		}
	}
	return buf.Bytes()
}

func unescapeText(value []byte) []byte {
	if bytes.IndexByte(value, '\\') < 0 && bytes.IndexByte(value, '&') < 0 {
		return value
	}
	value = util.UnescapePunctuations(value)
	value = util.ResolveNumericReferences(value)
	return util.ResolveEntityNames(value)
}

func pick(entering bool, start, end EventKind) EventKind {
	if entering {
		return start
	}
	return end
}
