package base2

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBase2String is the only way decoding can fail: the input held a
	// character other than '0' or '1'.
	ErrInvalidBase2String = errors.New("base2: invalid base2 string")
	// ErrInputTooLarge is returned by Encoding.Decode for input beyond MaxDecodeLen.
	ErrInputTooLarge = errors.New("base2: input too large")
)

// InvalidCharError reports the first offending character of a rejected string.
type InvalidCharError struct {
	Offset int
	Char   byte
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("base2: invalid character %q at offset %d", e.Char, e.Offset)
}

func (e *InvalidCharError) Unwrap() error { return ErrInvalidBase2String }
