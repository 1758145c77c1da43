package base2

import "fmt"

// Padding selects how the encoder represents leading zero bytes.
// The zero value is PadZeroes.
type Padding uint8

const (
	// PadZeroes keeps every leading zero byte as a full "00000000" block so the
	// exact byte count survives a round trip. Input that starts with a non-zero
	// byte is written in its minimal form.
	PadZeroes Padding = iota
	// PadNone drops all leading zero bits. Smallest output, but <<0,1>> and <<1>>
	// encode identically, so decoding is not transparent.
	PadNone
	// PadAll renders every byte as exactly 8 characters.
	PadAll
)

func (p Padding) String() string {
	switch p {
	case PadZeroes:
		return "zeroes"
	case PadNone:
		return "none"
	case PadAll:
		return "all"
	default:
		return fmt.Sprintf("Padding(%d)", uint8(p))
	}
}

// Valid reports whether p is one of the defined policies.
func (p Padding) Valid() bool { return p <= PadAll }

// Transparent reports whether decoding output encoded with p always yields the
// original bytes.
func (p Padding) Transparent() bool { return p == PadZeroes || p == PadAll }

// ParsePadding maps "zeroes", "none" or "all" to its Padding. The empty string
// selects the default.
func ParsePadding(s string) (Padding, error) {
	switch s {
	case "", "zeroes":
		return PadZeroes, nil
	case "none":
		return PadNone, nil
	case "all":
		return PadAll, nil
	}
	return 0, fmt.Errorf("base2: unknown padding %q", s)
}

func (p Padding) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("base2: invalid padding %d", uint8(p))
	}
	return []byte(p.String()), nil
}

func (p *Padding) UnmarshalText(b []byte) error {
	v, err := ParsePadding(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
