package base2

import "math/big"

const zeroBlock = "00000000"

// Decode parses base2 text back into bytes. Every whole "00000000" block at the
// start of s becomes one zero byte; the rest is read as a big-endian binary
// numeral. The empty string decodes to an empty slice.
//
// Any character other than '0' or '1' fails with an *InvalidCharError, which
// matches ErrInvalidBase2String under errors.Is.
func Decode(s string) ([]byte, error) {
	if err := validate(s); err != nil {
		return nil, err
	}
	if s == "" {
		return []byte{}, nil
	}

	zeros := leadingZeroBlocks(s)
	rest := s[zeros*8:]
	if rest == "" {
		return make([]byte, zeros), nil
	}

	v, ok := new(big.Int).SetString(rest, 2)
	if !ok {
		// unreachable once validate passed
		return nil, &InvalidCharError{Offset: zeros * 8, Char: rest[0]}
	}
	n := (v.BitLen() + 7) / 8
	if n == 0 {
		n = 1
	}
	out := make([]byte, zeros+n)
	v.FillBytes(out[zeros:])
	return out, nil
}

// MustDecode is like Decode but panics with the decode error.
func MustDecode(s string) []byte {
	b, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return b
}

func validate(s string) error {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '0' && c != '1' {
			return &InvalidCharError{Offset: i, Char: c}
		}
	}
	return nil
}

func leadingZeroBlocks(s string) int {
	n := 0
	for len(s) >= 8 && s[:8] == zeroBlock {
		s = s[8:]
		n++
	}
	return n
}
