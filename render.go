package mdlayout

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"gopkg.in/yaml.v3"

	"pkt.systems/mdlayout/internal/palette"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Writer   io.Writer
	Document Document
	Theme    Theme
	Options  []RenderOption
}

// Render writes the Document as ANSI styled text, one line per Line and a
// blank line between blocks.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	cfg := newRenderConfig(req.Options)
	w := bufio.NewWriter(req.Writer)
	r := ansiRenderer{w: w, styles: theme.Styles(), cfg: cfg}
	r.document(req.Document)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// RenderString renders the Document with theme and returns the output.
func RenderString(doc Document, theme Theme, opts ...RenderOption) string {
	var b strings.Builder
	_ = Render(RenderRequest{Writer: &b, Document: doc, Theme: theme, Options: opts})
	return b.String()
}

// RenderText writes the Document without styling.
func RenderText(w io.Writer, doc Document, opts ...RenderOption) error {
	return Render(RenderRequest{Writer: w, Document: doc, Theme: PlainTheme(), Options: opts})
}

// WriteYAML encodes the Document as YAML.
func WriteYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("render yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("render yaml: %w", err)
	}
	return nil
}

// ReadYAML decodes a Document written by WriteYAML.
func ReadYAML(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return Document{}, fmt.Errorf("read yaml: %w", err)
	}
	return doc, nil
}

type ansiRenderer struct {
	w      *bufio.Writer
	styles Styles
	cfg    renderConfig
	line   strings.Builder
}

func (r *ansiRenderer) document(doc Document) {
	for i, b := range doc.Blocks {
		if i > 0 {
			for range r.cfg.blockSpacing {
				r.w.WriteByte('\n')
			}
		}
		r.block(b)
	}
}

func (r *ansiRenderer) block(b Block) {
	for i, line := range b.Lines {
		r.line.Reset()
		for j, word := range line {
			if j > 0 {
				r.line.WriteByte(' ')
			}
			r.word(r.styles.wordStyle(b, word, b.isMarker(i, j)), word.Text)
		}
		out := r.line.String()
		if r.cfg.clip > 0 && ansi.PrintableRuneWidth(out) > r.cfg.clip {
			out = truncate.StringWithTail(out, uint(r.cfg.clip), "…")
		}
		r.w.WriteString(out)
		r.w.WriteByte('\n')
	}
}

func (r *ansiRenderer) word(s Style, text string) {
	if s.Prefix != "" {
		r.line.WriteString(s.Prefix)
	}
	r.line.WriteString(scrubControl(text))
	if s.Prefix != "" {
		r.line.WriteString(palette.Reset)
	}
}

// scrubControl drops control characters so word text cannot inject escape
// sequences into the terminal.
func scrubControl(text string) string {
	clean := true
	for _, r := range text {
		if isControlRune(r) {
			clean = false
			break
		}
	}
	if clean {
		return text
	}
	return strings.Map(func(r rune) rune {
		if isControlRune(r) {
			return -1
		}
		return r
	}, text)
}
