package codec

import (
	"errors"
	"fmt"
)

// ErrPayloadTooLarge is wrapped by Limit.Decode when input exceeds MaxDecode.
var ErrPayloadTooLarge = errors.New("codec: payload too large")

// Limit refuses to Decode payloads longer than MaxDecode bytes without
// invoking Inner. Encode is forwarded unchanged. MaxDecode <= 0 disables it.
//
// Wrapped around Base2 it bounds the text length, i.e. 8 characters per byte
// for PadAll.
type Limit[V any] struct {
	Inner     Codec[V]
	MaxDecode int
}

func (c Limit[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }

func (c Limit[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
