package mdlayout

import (
	"log/slog"

	"github.com/yuin/goldmark"
)

// LayoutOption configures layout behavior.
type LayoutOption func(*layoutConfig)

type layoutConfig struct {
	width            int
	source           Source
	logger           *slog.Logger
	stripFrontMatter bool
	nfc              bool
	extensions       []goldmark.Extender
}

func newLayoutConfig(opts []LayoutOption) layoutConfig {
	cfg := layoutConfig{width: DefaultWidth}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.width <= 0 {
		cfg.width = DefaultWidth
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	if cfg.source == nil {
		cfg.source = NewGoldmarkSource(cfg.nfc, cfg.extensions...)
	}
	return cfg
}

// WithWidth sets the line budget in characters. Values <= 0 keep DefaultWidth.
func WithWidth(width int) LayoutOption {
	return func(cfg *layoutConfig) {
		cfg.width = width
	}
}

// WithSource replaces the default goldmark event source.
func WithSource(src Source) LayoutOption {
	return func(cfg *layoutConfig) {
		cfg.source = src
	}
}

// WithLogger sets the logger used for debug tracing. Output is discarded by
// default.
func WithLogger(logger *slog.Logger) LayoutOption {
	return func(cfg *layoutConfig) {
		cfg.logger = logger
	}
}

// WithFrontMatter strips leading front matter before tokenizing when enabled.
func WithFrontMatter(strip bool) LayoutOption {
	return func(cfg *layoutConfig) {
		cfg.stripFrontMatter = strip
	}
}

// WithNFC normalizes text content to Unicode NFC in the default source.
func WithNFC(enabled bool) LayoutOption {
	return func(cfg *layoutConfig) {
		cfg.nfc = enabled
	}
}

// WithExtensions enables goldmark extensions in the default source.
func WithExtensions(extensions ...goldmark.Extender) LayoutOption {
	return func(cfg *layoutConfig) {
		cfg.extensions = append(cfg.extensions, extensions...)
	}
}
