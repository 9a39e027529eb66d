// Package keys provides an order-preserving byte-string key
// representation shared by the ordered collections. Keys compare
// lexicographically; the constructors encode strings and integers so
// that byte order matches the natural order of the source values.
package keys

import (
	"bytes"
	"encoding/binary"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Key is a byte slice used as an ordered key representation. Build Keys
// with the constructors below.
//
// Integer encoding
// ----------------
// Every integer constructor produces an 8-byte big-endian encoding with
// an offset of 1<<63 added first: signed values are widened to int64,
// unsigned values treated as uint64, then shifted into unsigned range.
// Lexicographic comparison of the resulting bytes therefore matches
// numeric order across signedness and source widths — FromInt(5)
// equals FromInt64(5), and negative values sort before positive ones.
// Unsigned values of 1<<63 and above wrap around: they encode like
// negative int64 values and sort before every non-negative one.
type Key []byte

const intOffset = uint64(1) << 63

// FromBytes returns a copy of b as a Key. A nil input yields an empty
// (zero-length, non-nil) Key.
func FromBytes(b []byte) Key {
	k := make(Key, len(b))
	copy(k, b)
	return k
}

// FromString returns the UTF-8 bytes of s normalized to Unicode NFC, so
// canonically equivalent strings produce equal Keys. Case and spacing
// are left untouched.
func FromString(s string) Key {
	return Key(norm.NFC.String(s))
}

// FromInt encodes a signed integer; see the Key documentation for the
// offset scheme.
func FromInt(i int) Key { return FromInt64(int64(i)) }

// FromInt64 encodes a signed 64-bit integer.
func FromInt64(i int64) Key {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(i)+intOffset)
	return b[:]
}

// FromUint encodes an unsigned integer.
func FromUint(u uint) Key { return FromUint64(uint64(u)) }

// FromUint64 encodes an unsigned 64-bit integer.
func FromUint64(u uint64) Key {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], u+intOffset)
	return b[:]
}

// Bytes returns the Key's underlying bytes.
func (k Key) Bytes() []byte { return k }

// Clone returns an independent copy of k.
func (k Key) Clone() Key { return FromBytes(k) }

// IsEmpty reports whether the Key has no bytes.
func (k Key) IsEmpty() bool { return len(k) == 0 }

// Equal reports whether k and other have the same contents.
func (k Key) Equal(other Key) bool { return bytes.Equal(k, other) }

// Compare returns -1, 0 or 1 ordering k against other
// lexicographically.
func (k Key) Compare(other Key) int { return bytes.Compare(k, other) }

// Less reports whether k sorts before other.
func (k Key) Less(other Key) bool { return bytes.Compare(k, other) < 0 }

// String renders the Key as a bracketed list of hex bytes, for
// debugging.
func (k Key) String() string {
	const hex = "0123456789ABCDEF"
	var sb strings.Builder
	sb.WriteByte('[')
	for i, b := range k {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(hex[b>>4])
		sb.WriteByte(hex[b&0x0F])
	}
	sb.WriteByte(']')
	return sb.String()
}
