// Package mdlayout lays out Markdown as a tree of styled, wrapped text runs.
//
// The engine consumes a stream of structural Markdown events, tracks the
// active inline style, accumulates styled segments per block and greedily
// wraps them at a fixed character budget. The result is a Document: an
// ordered list of Blocks (one per heading, paragraph or list item), each
// holding wrapped Lines of styled Words. Rendering is left to the caller;
// the package ships an ANSI renderer, a plain text renderer and a YAML dump.
//
// Core properties:
//   - Total: every input string yields a Document, malformed input included
//   - Width is counted in characters, not measured glyphs
//   - Words are never split; an oversized word gets a line of its own
//   - Bold and italic are two independent flags, not a style stack
//
// Example:
//
//	doc := mdlayout.Layout("# Hello\n\nMarkdown in, **layout** out.\n")
//	err := mdlayout.Render(mdlayout.RenderRequest{
//		Writer:   os.Stdout,
//		Document: doc,
//		Theme:    mdlayout.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// An Engine is single use and not safe for concurrent use; construct one per
// input, or call Layout which does exactly that.
package mdlayout
