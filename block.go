package mdlayout

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// BulletMarker is prepended to every list item block.
const BulletMarker = "• "

// BlockKind records which boundary closed a block.
type BlockKind uint8

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockListItem
	// BlockTrailing holds content left over at end of input.
	BlockTrailing
)

var blockKindNames = [...]string{
	BlockParagraph: "paragraph",
	BlockHeading:   "heading",
	BlockListItem:  "item",
	BlockTrailing:  "trailing",
}

func (k BlockKind) String() string {
	if int(k) < len(blockKindNames) {
		return blockKindNames[k]
	}
	return fmt.Sprintf("BlockKind(%d)", uint8(k))
}

// MarshalYAML encodes the kind by name.
func (k BlockKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML decodes a kind name.
func (k *BlockKind) UnmarshalYAML(node *yaml.Node) error {
	for i, name := range blockKindNames {
		if node.Value == name {
			*k = BlockKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown block kind %q", node.Value)
}

// Block is one heading, paragraph or list item. All its lines share Size.
type Block struct {
	Kind  BlockKind `yaml:"kind"`
	Level int       `yaml:"level,omitempty"`
	Size  int       `yaml:"size"`
	Lines []Line    `yaml:"lines"`
}

// Text returns the words of the block joined by single spaces, without the
// bullet marker.
func (b Block) Text() string {
	var parts []string
	for i, line := range b.Lines {
		for j, w := range line {
			if b.isMarker(i, j) {
				continue
			}
			parts = append(parts, w.Text)
		}
	}
	return strings.Join(parts, " ")
}

// isMarker reports whether word j of line i is the bullet marker.
func (b Block) isMarker(i, j int) bool {
	return b.Kind == BlockListItem && i == 0 && j == 0 && b.Lines[0][0].Text+" " == BulletMarker
}

// blockBuilder turns the scanned segments into blocks.
type blockBuilder struct {
	width  int
	blocks []Block
}

// flush wraps the pending segments into a block. An empty buffer produces
// nothing, list items included: a loose list item has already flushed its
// paragraph, so it lays out as a plain paragraph without a bullet.
func (bb *blockBuilder) flush(buf *segmentBuffer, tracker *styleTracker, kind BlockKind) bool {
	if buf.empty() {
		return false
	}
	if kind == BlockListItem {
		buf.prepend(segment{kind: segmentText, text: BulletMarker, style: tracker.style})
	}
	block := Block{
		Kind:  kind,
		Size:  tracker.size,
		Lines: wrapSegments(buf.segments, bb.width),
	}
	if kind == BlockHeading {
		block.Level = tracker.level
	}
	bb.blocks = append(bb.blocks, block)
	buf.reset()
	return true
}
