package base2

import (
	"math/bits"
	"strings"
)

// Encode renders src as a string of '0' and '1' characters using PadZeroes.
func Encode(src []byte) string {
	return EncodeWith(src, PadZeroes)
}

// EncodeWith renders src as base2 text under padding p, most significant bit
// first. It panics if p is not a defined Padding.
func EncodeWith(src []byte, p Padding) string {
	n := EncodedLen(src, p)
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(n)
	// every policy emits a suffix of the full 8*len(src) bit string
	off := 8*len(src) - n
	for i := off; i < 8*len(src); i++ {
		if src[i>>3]&(0x80>>(i&7)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// EncodedLen returns the length of EncodeWith(src, p).
func EncodedLen(src []byte, p Padding) int {
	if len(src) == 0 {
		return 0
	}
	switch p {
	case PadAll:
		return 8 * len(src)
	case PadNone:
		i := firstNonZero(src)
		if i == len(src) {
			return 1
		}
		return 8*(len(src)-i) - bits.LeadingZeros8(src[i])
	case PadZeroes:
		if src[0] != 0 {
			return 8*len(src) - bits.LeadingZeros8(src[0])
		}
		if len(src) == 1 {
			return 1
		}
		return 8 * len(src)
	default:
		panic("base2: invalid padding " + p.String())
	}
}

func firstNonZero(src []byte) int {
	for i, b := range src {
		if b != 0 {
			return i
		}
	}
	return len(src)
}
