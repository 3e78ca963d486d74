package mdlayout

import (
	"context"
	"iter"
	"log/slog"
	"strings"
)

// Document is the laid out result: blocks in source order.
type Document struct {
	Blocks []Block `yaml:"blocks"`
}

// Len returns the number of blocks.
func (d Document) Len() int { return len(d.Blocks) }

// Text returns the text of every block, one block per line.
func (d Document) Text() string {
	parts := make([]string, len(d.Blocks))
	for i, b := range d.Blocks {
		parts[i] = b.Text()
	}
	return strings.Join(parts, "\n")
}

// Engine consumes events for one document. It is not safe for concurrent
// use; after Finish it ignores further events until Reset.
type Engine struct {
	cfg      layoutConfig
	tracker  styleTracker
	segments segmentBuffer
	builder  blockBuilder
	done     bool
	doc      Document
}

// NewEngine returns an engine ready to scan a document.
func NewEngine(opts ...LayoutOption) *Engine {
	e := &Engine{cfg: newLayoutConfig(opts)}
	e.Reset()
	return e
}

// Reset discards all state so the engine can scan another document.
func (e *Engine) Reset() {
	e.tracker.reset()
	e.segments.reset()
	e.builder = blockBuilder{width: e.cfg.width}
	e.done = false
	e.doc = Document{}
}

// Feed processes a single event. Unsupported events are ignored.
func (e *Engine) Feed(ev Event) {
	log := e.cfg.logger
	if e.done {
		log.Debug("mdlayout: event after finish", "event", ev.String())
		return
	}
	if e.tracker.apply(ev) {
		return
	}
	switch ev.Kind {
	case EventText, EventCode:
		e.segments.appendText(ev.Text, e.tracker.style)
	case EventSoftBreak, EventHardBreak:
		e.segments.appendBreak()
	case EventEndHeading:
		e.flush(BlockHeading)
		e.tracker.endBlock(true)
	case EventEndParagraph:
		e.flush(BlockParagraph)
		e.tracker.endBlock(false)
	case EventEndListItem:
		e.flush(BlockListItem)
		e.tracker.endBlock(false)
	case EventStartParagraph, EventStartListItem:
	default:
		if log.Enabled(context.Background(), slog.LevelDebug) {
			log.Debug("mdlayout: ignored event", "event", ev.String())
		}
	}
}

func (e *Engine) flush(kind BlockKind) {
	if !e.builder.flush(&e.segments, &e.tracker, kind) {
		return
	}
	log := e.cfg.logger
	if log.Enabled(context.Background(), slog.LevelDebug) {
		b := e.builder.blocks[len(e.builder.blocks)-1]
		log.Debug("mdlayout: block", "kind", b.Kind.String(), "size", b.Size, "lines", len(b.Lines))
	}
}

// Finish flushes any unterminated content and returns the Document. Calling
// it again returns the same Document.
func (e *Engine) Finish() Document {
	if e.done {
		return e.doc
	}
	e.flush(BlockTrailing)
	e.done = true
	e.doc = Document{Blocks: e.builder.blocks}
	return e.doc
}

// LayoutEvents lays out an already tokenized event stream.
func LayoutEvents(events iter.Seq[Event], opts ...LayoutOption) Document {
	e := NewEngine(opts...)
	for ev := range events {
		e.Feed(ev)
	}
	return e.Finish()
}

// Layout tokenizes src and lays it out with a fresh engine.
func Layout(src string, opts ...LayoutOption) Document {
	e := NewEngine(opts...)
	if e.cfg.stripFrontMatter {
		src = StripFrontMatter(src)
	}
	for ev := range e.cfg.source.Events([]byte(src)) {
		e.Feed(ev)
	}
	return e.Finish()
}
