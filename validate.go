package tagtext

import (
	"errors"
	"unicode/utf8"

	goerrors "github.com/goliatone/go-errors"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
	// ErrMalformedTag reports tagged text that fails strict validation.
	ErrMalformedTag = errors.New("malformed tag")
	// ErrRangeOrder reports a range whose start lies after its end.
	ErrRangeOrder = errors.New("range start after end")
	// ErrRangeBounds reports a range that reaches outside the input.
	ErrRangeBounds = errors.New("range outside input")
)

const (
	minBinarySample = 64
	maxControlPct   = 2

	malformedTagCode = "MALFORMED_TAG"
)

// ValidateInput returns an error if the input is not valid UTF-8 or appears
// binary. EscapedLT is allowed since tagged text carries it.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var total, control int
	for _, b := range src {
		total++
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if total >= minBinarySample && control*100 >= total*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlByte(b byte) bool {
	if b == EscapedLT {
		return false
	}
	if b < 0x09 {
		return true
	}
	if b > 0x0D && b < 0x20 {
		return true
	}
	if b == 0x7F {
		return true
	}
	return false
}

// Validate checks tagged text strictly: every tag is terminated, names are
// non-empty, carry at most one '-' and contain no '<', the legacy </> is
// absent, and open and close tags nest properly. The core functions accept
// anything; Validate is for callers that want to reject bad input up front.
//
// Failures wrap ErrMalformedTag in a go-errors validation error whose
// metadata holds the byte offset and tag name.
func Validate(s string) error {
	_, err := parse(s, false)
	return err
}

func malformedTag(offset int, name, reason string) error {
	return goerrors.Wrap(ErrMalformedTag, goerrors.CategoryValidation, reason).
		WithTextCode(malformedTagCode).
		WithMetadata(map[string]any{"offset": offset, "tag": name})
}
