package mdlayout

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
	// ErrTooLarge reports input above the configured size limit.
	ErrTooLarge = errors.New("input too large")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateSource checks Markdown source before layout. It rejects invalid
// UTF-8, NUL bytes, input dominated by control characters and, when maxBytes
// is positive, input longer than maxBytes. Layout itself accepts anything;
// this is for callers that take text from untrusted places.
func ValidateSource(src []byte, maxBytes int) error {
	if maxBytes > 0 && len(src) > maxBytes {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrTooLarge, len(src), maxBytes)
	}
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	control := 0
	for _, r := range string(src) {
		if r == 0 {
			return ErrBinaryInput
		}
		if isControlRune(r) {
			control++
		}
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	return r < 0x20 || r == 0x7F
}
