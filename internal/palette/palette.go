// Package palette holds the ANSI color sets behind the built-in themes.
package palette

import "strconv"

// SGR attributes shared by all palettes.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
)

// Palette is a set of foreground color prefixes.
type Palette struct {
	Text           string
	H1             string
	H2             string
	H3             string
	H4             string
	H5             string
	H6             string
	Emphasis       string
	Strong         string
	EmphasisStrong string
	ListMarker     string
}

// RGB returns a truecolor foreground sequence.
func RGB(r, g, b uint8) string {
	return "\x1b[38;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m"
}

// Hex returns a truecolor foreground sequence for a #rrggbb color. Malformed
// input yields an empty prefix.
func Hex(s string) string {
	if len(s) == 7 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return ""
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return ""
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

var (
	PaletteDefault = Palette{
		Text:           "",
		H1:             "\x1b[1;95m",
		H2:             "\x1b[1;94m",
		H3:             "\x1b[1;96m",
		H4:             "\x1b[1;92m",
		H5:             "\x1b[1;93m",
		H6:             "\x1b[1;37m",
		Emphasis:       "",
		Strong:         "",
		EmphasisStrong: "",
		ListMarker:     "\x1b[93m",
	}
	PaletteDoomGruvbox = Palette{
		Text:           Hex("#ebdbb2"),
		H1:             Bold + Hex("#fb4934"),
		H2:             Bold + Hex("#fabd2f"),
		H3:             Bold + Hex("#b8bb26"),
		H4:             Bold + Hex("#8ec07c"),
		H5:             Bold + Hex("#83a598"),
		H6:             Bold + Hex("#d3869b"),
		Emphasis:       Hex("#d3869b"),
		Strong:         Hex("#fe8019"),
		EmphasisStrong: Hex("#fabd2f"),
		ListMarker:     Hex("#fe8019"),
	}
	PaletteGruvboxLight = Palette{
		Text:           Hex("#3c3836"),
		H1:             Bold + Hex("#9d0006"),
		H2:             Bold + Hex("#b57614"),
		H3:             Bold + Hex("#79740e"),
		H4:             Bold + Hex("#427b58"),
		H5:             Bold + Hex("#076678"),
		H6:             Bold + Hex("#8f3f71"),
		Emphasis:       Hex("#8f3f71"),
		Strong:         Hex("#af3a03"),
		EmphasisStrong: Hex("#b57614"),
		ListMarker:     Hex("#af3a03"),
	}
	PaletteDoomNord = Palette{
		Text:           Hex("#d8dee9"),
		H1:             Bold + Hex("#88c0d0"),
		H2:             Bold + Hex("#81a1c1"),
		H3:             Bold + Hex("#5e81ac"),
		H4:             Bold + Hex("#8fbcbb"),
		H5:             Bold + Hex("#a3be8c"),
		H6:             Bold + Hex("#b48ead"),
		Emphasis:       Hex("#b48ead"),
		Strong:         Hex("#ebcb8b"),
		EmphasisStrong: Hex("#d08770"),
		ListMarker:     Hex("#88c0d0"),
	}
	PaletteDoomDracula = Palette{
		Text:           Hex("#f8f8f2"),
		H1:             Bold + Hex("#ff79c6"),
		H2:             Bold + Hex("#bd93f9"),
		H3:             Bold + Hex("#8be9fd"),
		H4:             Bold + Hex("#50fa7b"),
		H5:             Bold + Hex("#f1fa8c"),
		H6:             Bold + Hex("#ffb86c"),
		Emphasis:       Hex("#f1fa8c"),
		Strong:         Hex("#ffb86c"),
		EmphasisStrong: Hex("#ff5555"),
		ListMarker:     Hex("#bd93f9"),
	}
	PaletteTokyoNight = Palette{
		Text:           Hex("#c0caf5"),
		H1:             Bold + Hex("#7aa2f7"),
		H2:             Bold + Hex("#bb9af7"),
		H3:             Bold + Hex("#7dcfff"),
		H4:             Bold + Hex("#9ece6a"),
		H5:             Bold + Hex("#e0af68"),
		H6:             Bold + Hex("#f7768e"),
		Emphasis:       Hex("#bb9af7"),
		Strong:         Hex("#ff9e64"),
		EmphasisStrong: Hex("#f7768e"),
		ListMarker:     Hex("#7aa2f7"),
	}
	PaletteCatppuccinMocha = Palette{
		Text:           Hex("#cdd6f4"),
		H1:             Bold + Hex("#f38ba8"),
		H2:             Bold + Hex("#fab387"),
		H3:             Bold + Hex("#f9e2af"),
		H4:             Bold + Hex("#a6e3a1"),
		H5:             Bold + Hex("#89b4fa"),
		H6:             Bold + Hex("#cba6f7"),
		Emphasis:       Hex("#f5c2e7"),
		Strong:         Hex("#fab387"),
		EmphasisStrong: Hex("#eba0ac"),
		ListMarker:     Hex("#94e2d5"),
	}
	PaletteSolarizedDark = Palette{
		Text:           Hex("#839496"),
		H1:             Bold + Hex("#cb4b16"),
		H2:             Bold + Hex("#b58900"),
		H3:             Bold + Hex("#859900"),
		H4:             Bold + Hex("#2aa198"),
		H5:             Bold + Hex("#268bd2"),
		H6:             Bold + Hex("#6c71c4"),
		Emphasis:       Hex("#d33682"),
		Strong:         Hex("#cb4b16"),
		EmphasisStrong: Hex("#dc322f"),
		ListMarker:     Hex("#268bd2"),
	}
	PaletteSolarizedLight = Palette{
		Text:           Hex("#657b83"),
		H1:             Bold + Hex("#cb4b16"),
		H2:             Bold + Hex("#b58900"),
		H3:             Bold + Hex("#859900"),
		H4:             Bold + Hex("#2aa198"),
		H5:             Bold + Hex("#268bd2"),
		H6:             Bold + Hex("#6c71c4"),
		Emphasis:       Hex("#d33682"),
		Strong:         Hex("#cb4b16"),
		EmphasisStrong: Hex("#dc322f"),
		ListMarker:     Hex("#268bd2"),
	}
	PaletteGithubDark = Palette{
		Text:           Hex("#c9d1d9"),
		H1:             Bold + Hex("#58a6ff"),
		H2:             Bold + Hex("#79c0ff"),
		H3:             Bold + Hex("#a5d6ff"),
		H4:             Bold + Hex("#7ee787"),
		H5:             Bold + Hex("#d2a8ff"),
		H6:             Bold + Hex("#8b949e"),
		Emphasis:       Hex("#d2a8ff"),
		Strong:         Hex("#ffa657"),
		EmphasisStrong: Hex("#ff7b72"),
		ListMarker:     Hex("#58a6ff"),
	}
	PaletteGithubLight = Palette{
		Text:           Hex("#24292f"),
		H1:             Bold + Hex("#0550ae"),
		H2:             Bold + Hex("#0969da"),
		H3:             Bold + Hex("#1a7f37"),
		H4:             Bold + Hex("#8250df"),
		H5:             Bold + Hex("#953800"),
		H6:             Bold + Hex("#57606a"),
		Emphasis:       Hex("#8250df"),
		Strong:         Hex("#953800"),
		EmphasisStrong: Hex("#cf222e"),
		ListMarker:     Hex("#0969da"),
	}
)
