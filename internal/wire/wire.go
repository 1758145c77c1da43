// Package wire frames base2 text for storage.
//
//	magic "B2TX"(4) | ver(1) | padding(1) | byteLen(u32 be) | textLen(u32 be) | text(textLen)
//
// byteLen is the length of the payload before encoding. It lets a reader put
// back leading zero bytes that PadNone text does not carry.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/nocursor/base2"
)

const (
	version byte = 1
	hdrLen       = 4 + 1 + 1 + 4 + 4
)

var (
	ErrCorrupt = errors.New("base2: corrupt entry")
	magic4     = [...]byte{'B', '2', 'T', 'X'}
)

// Entry is a decoded frame. Text aliases no part of the input buffer.
type Entry struct {
	Padding base2.Padding
	ByteLen int
	Text    string
}

func Encode(p base2.Padding, byteLen int, text string) ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("wire: invalid padding %d", uint8(p))
	}
	if byteLen < 0 || uint64(byteLen) > math.MaxUint32 {
		return nil, fmt.Errorf("wire: byte length %d out of range", byteLen)
	}
	if uint64(len(text)) > math.MaxUint32 {
		return nil, fmt.Errorf("wire: text length %d out of range", len(text))
	}

	var buf bytes.Buffer
	buf.Grow(hdrLen + len(text))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(byte(p))

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(byteLen))
	buf.Write(u4[:])
	binary.BigEndian.PutUint32(u4[:], uint32(len(text)))
	buf.Write(u4[:])

	buf.WriteString(text)
	return buf.Bytes(), nil
}

func Decode(b []byte) (Entry, error) {
	if len(b) < hdrLen || !bytes.Equal(b[:4], magic4[:]) || b[4] != version {
		return Entry{}, ErrCorrupt
	}
	p := base2.Padding(b[5])
	if !p.Valid() {
		return Entry{}, ErrCorrupt
	}

	off := 6
	byteLen := binary.BigEndian.Uint32(b[off : off+4])
	off += 4
	textLen := binary.BigEndian.Uint32(b[off : off+4])
	off += 4

	// exact fit: truncated and trailing bytes are both corruption
	if uint64(textLen) != uint64(len(b)-off) {
		return Entry{}, ErrCorrupt
	}
	// a byte never needs more than 8 characters, and only empty payloads have empty text
	if uint64(textLen) > 8*uint64(byteLen) || (textLen == 0) != (byteLen == 0) {
		return Entry{}, ErrCorrupt
	}

	return Entry{
		Padding: p,
		ByteLen: int(byteLen),
		Text:    string(b[off:]),
	}, nil
}
