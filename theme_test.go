package mdlayout

import "testing"

func TestThemeByNameBuiltins(t *testing.T) {
	expected := []string{
		"default",
		"gruvbox",
		"gruvbox-light",
		"nord",
		"dracula",
		"tokyo-night",
		"catppuccin-mocha",
		"solarized-dark",
		"solarized-light",
		"github-dark",
		"github-light",
	}
	for _, name := range expected {
		theme, ok := ThemeByName(name)
		if !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
		if theme.Name() != name {
			t.Fatalf("expected theme name %q, got %q", name, theme.Name())
		}
	}

	available := AvailableThemes()
	if len(available) != len(expected) {
		t.Fatalf("expected %d themes, got %d: %v", len(expected), len(available), available)
	}
	for i := 1; i < len(available); i++ {
		if available[i-1] >= available[i] {
			t.Fatalf("expected sorted theme names, got %v", available)
		}
	}
}

func TestThemeByNameNormalizes(t *testing.T) {
	if theme, ok := ThemeByName("  Nord "); !ok || theme.Name() != "nord" {
		t.Fatalf("expected nord, got %v %v", theme, ok)
	}
	if theme, ok := ThemeByName(""); !ok || theme.Name() != "default" {
		t.Fatalf("expected default for empty name, got %v %v", theme, ok)
	}
	if _, ok := ThemeByName("missing"); ok {
		t.Fatalf("expected unknown theme to be rejected")
	}
}

func TestPlainThemeHasNoPrefixes(t *testing.T) {
	styles := PlainTheme().Styles()
	if styles != (Styles{}) {
		t.Fatalf("expected empty styles, got %+v", styles)
	}
}

func TestBuiltinThemesStyleStrongWords(t *testing.T) {
	for _, name := range AvailableThemes() {
		theme, _ := ThemeByName(name)
		if theme.Styles().Strong.Prefix == "" {
			t.Fatalf("theme %q has no strong style", name)
		}
	}
}
