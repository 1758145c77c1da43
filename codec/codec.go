// Package codec turns Go values into bytes and, through Base2, into base2 text.
//
// Serializers (JSON, CBOR, Msgpack, Protobuf, Bytes, String) produce raw
// payloads. Base2 wraps any of them so the payload leaves as '0'/'1' text, and
// Limit guards Decode against oversized input.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
