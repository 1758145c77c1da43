// Package base2 converts arbitrary bytes to strings of '0'/'1' characters and
// back.
//
// The encoder takes a Padding policy that decides what happens to leading zero
// bytes:
//
//	PadZeroes (default)  leading zero bytes kept as "00000000" blocks; transparent
//	PadNone              all leading zero bits dropped; smallest, NOT transparent
//	PadAll               8 characters per byte; len(out) == 8*len(in)
//
// Decoding counts the leading "00000000" blocks, then parses the remainder with
// math/big in one pass instead of accumulating bit by bit.
//
//	s := base2.Encode([]byte{0, 1})     // "0000000000000001"
//	b, err := base2.Decode(s)           // []byte{0, 1}
//	b = base2.MustDecode("101")         // []byte{5}, panics on bad input
//
// All functions are pure and safe for concurrent use. An Encoding bundles a
// policy with a Logger and an input size limit.
//
// Subpackages:
//   - codec: value codecs (JSON, CBOR, Msgpack, Protobuf) with a Base2 text wrapper.
//   - store: namespaced base2 text store over a pluggable Provider
//     (Ristretto, BigCache, Redis).
//   - log/zap, log/logrus, log/slog: Logger adapters.
package base2
