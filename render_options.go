package mdlayout

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	clip         int
	blockSpacing int
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{blockSpacing: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithClip truncates rendered lines wider than width display cells with an
// ellipsis. Zero or negative disables clipping.
func WithClip(width int) RenderOption {
	return func(cfg *renderConfig) {
		cfg.clip = width
	}
}

// WithBlockSpacing sets the number of blank lines between blocks.
func WithBlockSpacing(lines int) RenderOption {
	return func(cfg *renderConfig) {
		cfg.blockSpacing = max(lines, 0)
	}
}
