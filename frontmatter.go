package mdlayout

import "strings"

var frontMatterDelimiters = []string{"---", "+++", ";;;"}

// StripFrontMatter removes a leading YAML, TOML or JSON front matter block.
// The block must open with a delimiter line, continue with a line that looks
// like metadata and close with the same delimiter; otherwise src is returned
// unchanged.
func StripFrontMatter(src string) string {
	first, rest, ok := strings.Cut(src, "\n")
	if !ok {
		return src
	}
	delim, ok := openingDelimiter(first)
	if !ok {
		return src
	}
	second, _, _ := strings.Cut(rest, "\n")
	if !metadataLikely(trimCR(second)) {
		return src
	}
	for offset := 0; offset <= len(rest); {
		line, tail, found := strings.Cut(rest[offset:], "\n")
		if strings.TrimSpace(line) == delim {
			if !found {
				return ""
			}
			return tail
		}
		if !found {
			break
		}
		offset += len(line) + 1
	}
	return src
}

func openingDelimiter(line string) (string, bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
	for _, d := range frontMatterDelimiters {
		if trimmed == d {
			return d, true
		}
	}
	return "", false
}

func metadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}

func trimCR(s string) string {
	return strings.TrimSuffix(s, "\r")
}
