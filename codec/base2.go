package codec

import (
	"errors"
	"fmt"

	"github.com/nocursor/base2"
)

// Base2 serializes V with Inner, then renders the payload as base2 text.
// Encode returns the text as []byte; Decode accepts the same.
type Base2[V any] struct {
	inner Codec[V]
	enc   *base2.Encoding
}

var _ Codec[[]byte] = (*Base2[[]byte])(nil)

// NewBase2 builds a Base2 codec. PadNone is rejected because it drops leading
// zero bytes of the payload, which most serializers cannot tolerate.
func NewBase2[V any](inner Codec[V], opts base2.Options) (*Base2[V], error) {
	if inner == nil {
		return nil, errors.New("codec: base2 inner codec is required")
	}
	if opts.Padding == base2.PadNone {
		return nil, fmt.Errorf("codec: base2 padding %q is not transparent", opts.Padding)
	}
	enc, err := base2.New(opts)
	if err != nil {
		return nil, err
	}
	return &Base2[V]{inner: inner, enc: enc}, nil
}

func (c *Base2[V]) Padding() base2.Padding { return c.enc.Padding() }

func (c *Base2[V]) Encode(v V) ([]byte, error) {
	payload, err := c.inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(c.enc.Encode(payload)), nil
}

// EncodeString is Encode without the final string-to-slice copy.
func (c *Base2[V]) EncodeString(v V) (string, error) {
	payload, err := c.inner.Encode(v)
	if err != nil {
		return "", err
	}
	return c.enc.Encode(payload), nil
}

func (c *Base2[V]) Decode(text []byte) (V, error) {
	return c.DecodeString(string(text))
}

func (c *Base2[V]) DecodeString(text string) (V, error) {
	payload, err := c.enc.Decode(text)
	if err != nil {
		var zero V
		return zero, fmt.Errorf("codec: base2 decode: %w", err)
	}
	return c.inner.Decode(payload)
}
