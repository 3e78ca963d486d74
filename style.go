package mdlayout

// InlineStyle is the inline styling captured by a segment or word.
type InlineStyle struct {
	Bold   bool `yaml:"bold,omitempty"`
	Italic bool `yaml:"italic,omitempty"`
}

// BodySize is the point size of non-heading blocks.
const BodySize = 14

// HeadingSize returns the block size for a heading level. Sizes shrink with
// depth and saturate at 12 for anything outside 1..5.
func HeadingSize(level int) int {
	switch level {
	case 1:
		return 26
	case 2:
		return 22
	case 3:
		return 18
	case 4:
		return 16
	case 5:
		return 14
	default:
		return 12
	}
}

// styleTracker holds the active inline style and block size. Bold and italic
// are independent toggles: there is no span stack, so nested markers of the
// same kind do not stack and any end marker clears its flag.
type styleTracker struct {
	style InlineStyle
	size  int
	level int
}

func (t *styleTracker) reset() {
	t.style = InlineStyle{}
	t.size = BodySize
	t.level = 0
}

// apply updates the tracker for style events and reports whether ev was one.
func (t *styleTracker) apply(ev Event) bool {
	switch ev.Kind {
	case EventStartHeading:
		t.size = HeadingSize(ev.Level)
		t.level = ev.Level
	case EventStartEmphasis:
		t.style.Italic = true
	case EventEndEmphasis:
		t.style.Italic = false
	case EventStartStrong:
		t.style.Bold = true
	case EventEndStrong:
		t.style.Bold = false
	default:
		return false
	}
	return true
}

func (t *styleTracker) endBlock(heading bool) {
	t.style = InlineStyle{}
	if heading {
		t.size = BodySize
		t.level = 0
	}
}
