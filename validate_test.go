package mdlayout

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestValidateSourceRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateSource(data, 0); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateSourceRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateSource(data, 0); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateSourceRejectsControlHeavyInput(t *testing.T) {
	data := append(bytes.Repeat([]byte("a"), 62), 0x01, 0x02)
	if err := ValidateSource(data, 0); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	// Short input is not sampled.
	if err := ValidateSource([]byte("a\x01"), 0); err != nil {
		t.Fatalf("expected short input to pass, got %v", err)
	}
}

func TestValidateSourceAcceptsMarkdown(t *testing.T) {
	src := []byte(strings.Repeat("# Title\r\n\n\tcode\nSome **text** é\n", 20))
	if err := ValidateSource(src, 0); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
	if err := ValidateSource(nil, 10); err != nil {
		t.Fatalf("expected empty input to pass, got %v", err)
	}
}

func TestValidateSourceSizeLimit(t *testing.T) {
	err := ValidateSource([]byte("12345"), 4)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if err := ValidateSource([]byte("1234"), 4); err != nil {
		t.Fatalf("expected input at the limit to pass, got %v", err)
	}
}
