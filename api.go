package base2

import (
	"errors"
	"fmt"
)

// Options configure an Encoding. The zero value is usable.
type Options struct {
	Padding      Padding // default PadZeroes
	Logger       Logger  // if nil, NopLogger is used
	MaxDecodeLen int     // longest accepted Decode input; <= 0 => unlimited
}

// Encoding is an immutable codec instance. Safe for concurrent use.
type Encoding struct {
	pad       Padding
	log       Logger
	maxDecode int
}

// New validates opts and builds an Encoding.
func New(opts Options) (*Encoding, error) {
	if !opts.Padding.Valid() {
		return nil, fmt.Errorf("base2: invalid padding %d", uint8(opts.Padding))
	}
	return &Encoding{
		pad:       opts.Padding,
		log:       Coalesce[Logger](opts.Logger, NopLogger{}),
		maxDecode: opts.MaxDecodeLen,
	}, nil
}

// Padding returns the configured policy.
func (e *Encoding) Padding() Padding { return e.pad }

// Transparent reports whether Decode(Encode(b)) always returns b.
func (e *Encoding) Transparent() bool { return e.pad.Transparent() }

// Encode is EncodeWith under the configured padding.
func (e *Encoding) Encode(src []byte) string { return EncodeWith(src, e.pad) }

// EncodedLen returns len(e.Encode(src)) without encoding.
func (e *Encoding) EncodedLen(src []byte) int { return EncodedLen(src, e.pad) }

// Decode is the package Decode with the configured size limit and logging.
func (e *Encoding) Decode(s string) ([]byte, error) {
	if e.maxDecode > 0 && len(s) > e.maxDecode {
		e.log.Debug("decode rejected (too large)", Fields{"len": len(s), "max": e.maxDecode})
		return nil, fmt.Errorf("%w: %d > %d", ErrInputTooLarge, len(s), e.maxDecode)
	}
	b, err := Decode(s)
	if err != nil {
		f := Fields{"len": len(s)}
		var ic *InvalidCharError
		if errors.As(err, &ic) {
			f["offset"] = ic.Offset
			f["char"] = string(rune(ic.Char))
		}
		e.log.Debug("decode rejected (invalid base2)", f)
		return nil, err
	}
	return b, nil
}

// MustDecode is like Decode but panics with the decode error.
func (e *Encoding) MustDecode(s string) []byte {
	b, err := e.Decode(s)
	if err != nil {
		panic(err)
	}
	return b
}
