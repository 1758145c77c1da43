package wire

import (
	"encoding/binary"
	"testing"

	"github.com/nocursor/base2"
)

func mustEncode(t *testing.T, p base2.Padding, n int, text string) []byte {
	t.Helper()
	b, err := Encode(p, n, text)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return b
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		pad base2.Padding
		in  []byte
	}{
		{base2.PadZeroes, nil},
		{base2.PadZeroes, []byte{0, 1}},
		{base2.PadNone, []byte{0, 0, 9}},
		{base2.PadAll, []byte("hello")},
	}
	for _, tc := range cases {
		text := base2.EncodeWith(tc.in, tc.pad)
		enc := mustEncode(t, tc.pad, len(tc.in), text)
		if len(enc) != hdrLen+len(text) {
			t.Fatalf("frame length %d, want %d", len(enc), hdrLen+len(text))
		}
		e, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if e.Padding != tc.pad || e.ByteLen != len(tc.in) || e.Text != text {
			t.Fatalf("mismatch: got %+v", e)
		}
	}
}

func TestDecodeCopiesText(t *testing.T) {
	enc := mustEncode(t, base2.PadAll, 1, "00000001")
	e, _ := Decode(enc)
	enc[len(enc)-1] = '0'
	if e.Text != "00000001" {
		t.Fatalf("Text must not alias the frame buffer")
	}
}

func TestEncodeRejects(t *testing.T) {
	if _, err := Encode(base2.Padding(4), 1, "1"); err == nil {
		t.Fatalf("expected error on invalid padding")
	}
	if _, err := Encode(base2.PadAll, -1, ""); err == nil {
		t.Fatalf("expected error on negative length")
	}
}

func TestDecodeCorrupt(t *testing.T) {
	enc := mustEncode(t, base2.PadZeroes, 2, "0000000000000001")

	mutate := func(f func(b []byte) []byte) []byte {
		return f(append([]byte(nil), enc...))
	}
	cases := map[string][]byte{
		"short":     enc[:hdrLen-1],
		"truncated": enc[:len(enc)-1],
		"trailing":  append(append([]byte(nil), enc...), '1'),
		"magic":     mutate(func(b []byte) []byte { b[0] = 'X'; return b }),
		"version":   mutate(func(b []byte) []byte { b[4] = version + 1; return b }),
		"padding":   mutate(func(b []byte) []byte { b[5] = 9; return b }),
		"textLen": mutate(func(b []byte) []byte {
			binary.BigEndian.PutUint32(b[10:14], 17)
			return b
		}),
		"byteLen too small": mutate(func(b []byte) []byte {
			binary.BigEndian.PutUint32(b[6:10], 1)
			return b
		}),
		"byteLen zero": mutate(func(b []byte) []byte {
			binary.BigEndian.PutUint32(b[6:10], 0)
			return b
		}),
	}
	for name, b := range cases {
		if _, err := Decode(b); err != ErrCorrupt {
			t.Fatalf("%s: expected ErrCorrupt, got %v", name, err)
		}
	}
}
