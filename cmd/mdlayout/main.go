package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdlayout"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultMaxBytes  = 4 << 20
)

func init() {
	version.SetDefaultModule("pkt.systems/mdlayout")
}

type options struct {
	width           int
	themeName       string
	format          string
	outPath         string
	boring          bool
	clip            int
	maxBytes        int
	keepFrontMatter bool
	nfc             bool
	verbose         bool
	blockSpacing    int
	listThemes      bool
	showVersion     bool
	inputs          []string
}

// usageError marks failures caused by bad invocation; they exit with 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func main() {
	var opts options
	flags := pflag.NewFlagSet("mdlayout", pflag.ExitOnError)
	flags.IntVarP(&opts.width, "width", "w", mdlayout.DefaultWidth, "Wrap budget in characters")
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.StringVarP(&opts.format, "format", "f", "ansi", "Output format: ansi|text|yaml")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Generate non-ANSI output")
	flags.IntVar(&opts.clip, "clip", 0, "Clip lines to this display width (0 uses terminal width if available, <0 disables)")
	flags.IntVar(&opts.maxBytes, "max-bytes", defaultMaxBytes, "Reject input larger than this many bytes (0 disables)")
	flags.BoolVar(&opts.keepFrontMatter, "keep-front-matter", false, "Lay out leading front matter instead of stripping it")
	flags.BoolVar(&opts.nfc, "nfc", false, "Normalize text to Unicode NFC before wrapping")
	flags.IntVar(&opts.blockSpacing, "block-spacing", 1, "Blank lines between blocks")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log layout decisions to stderr")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: mdlayout [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	opts.inputs = flags.Args()

	if opts.showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}
	if opts.listThemes {
		printThemes(os.Stdout)
		return
	}

	logger := newLogger(os.Stderr, opts.verbose)
	if err := run(opts, os.Stdin, logger); err != nil {
		fmt.Fprintf(os.Stderr, "mdlayout: %v\n", err)
		var uerr usageError
		if errors.As(err, &uerr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(opts options, stdin io.Reader, logger *slog.Logger) error {
	format, err := resolveFormat(opts.format)
	if err != nil {
		return usageError{err}
	}
	theme, ok := mdlayout.ThemeByName(opts.themeName)
	if !ok {
		return usageError{fmt.Errorf("unknown theme %q (see --list-themes)", opts.themeName)}
	}
	if opts.boring {
		theme = mdlayout.PlainTheme()
	}

	reader, closer, err := openInputs(opts.inputs, stdin)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	src, err := readSource(reader, opts.maxBytes)
	if err != nil {
		return err
	}

	doc := mdlayout.Layout(string(src),
		mdlayout.WithWidth(opts.width),
		mdlayout.WithFrontMatter(!opts.keepFrontMatter),
		mdlayout.WithNFC(opts.nfc),
		mdlayout.WithLogger(logger),
	)
	logger.Debug("layout done", "blocks", doc.Len(), "width", opts.width, "bytes", len(src))

	writer, closeOut, err := resolveOutput(opts.outPath)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	renderOpts := []mdlayout.RenderOption{
		mdlayout.WithClip(resolveClip(opts.clip, writer)),
		mdlayout.WithBlockSpacing(opts.blockSpacing),
	}
	switch format {
	case "yaml":
		err = mdlayout.WriteYAML(writer, doc)
	case "text":
		err = mdlayout.RenderText(writer, doc, renderOpts...)
	default:
		err = mdlayout.Render(mdlayout.RenderRequest{
			Writer:   writer,
			Document: doc,
			Theme:    theme,
			Options:  renderOpts,
		})
	}
	return err
}

func readSource(r io.Reader, maxBytes int) ([]byte, error) {
	if maxBytes > 0 {
		r = io.LimitReader(r, int64(maxBytes)+1)
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if err := mdlayout.ValidateSource(src, maxBytes); err != nil {
		return nil, fmt.Errorf("validate input: %w", err)
	}
	return src, nil
}

func resolveFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "ansi":
		return "ansi", nil
	case "text", "plain":
		return "text", nil
	case "yaml", "yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("invalid --format %q: expected ansi|text|yaml", format)
	}
}

func printThemes(w io.Writer) {
	for _, name := range mdlayout.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveClip(clip int, w io.Writer) int {
	if clip != 0 {
		return max(clip, 0)
	}
	if !isTerminal(w) {
		return 0
	}
	return terminalWidth(0)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

type multiInputReader struct {
	paths     []string
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.paths) {
				m.closed = true
				return 0, io.EOF
			}
			f, err := os.Open(m.paths[m.idx])
			if err != nil {
				return 0, err
			}
			m.cur = f
			m.curCloser = f
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			_ = m.curCloser.Close()
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return stdin, nil, nil
	}
	paths := make([]string, 0, len(args))
	for _, raw := range args {
		path, err := inputPath(raw)
		if err != nil {
			return nil, nil, err
		}
		paths = append(paths, path)
	}
	m := &multiInputReader{paths: paths}
	return m, m, nil
}

func inputPath(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty input argument")
	}
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		if !strings.EqualFold(u.Scheme, "file") {
			return "", fmt.Errorf("unsupported input scheme %q", u.Scheme)
		}
		path := u.Path
		if path == "" {
			path = u.Host
		}
		if unescaped, err := url.PathUnescape(path); err == nil {
			path = unescaped
		}
		return normalizePath(path), nil
	}
	return normalizePath(raw), nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
