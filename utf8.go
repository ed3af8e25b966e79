package strand

import (
	"math/bits"

	"github.com/rivo/uniseg"
)

// UTF-8 decoder states. States are spaced eight apart so that
// state+byteClass indexes the transition table directly.
type utf8State uint32

const (
	utf8Starting  utf8State = 0
	utf8Decoding1 utf8State = 8
	utf8Decoding2 utf8State = 16
	utf8Decoding3 utf8State = 24
	utf8Error     utf8State = 32
)

// utf8RuneError marks a failed decode in the iterator.
const utf8RuneError = ^uint32(0)

// Byte classes, by count of leading one bits:
//
//	0xxxxxxx -> 0 ASCII
//	10xxxxxx -> 1 continuation
//	110xxxxx -> 2 two-byte lead
//	1110xxxx -> 3 three-byte lead
//	11110xxx -> 4 four-byte lead
//	11111xxx -> 5..8 invalid
//
// utf8Error is absorbing. The table is padded so that state+class never
// indexes out of range (class can reach 8 for 0xFF).
var utf8Transition = [48]utf8State{
	// Starting
	utf8Starting, utf8Error, utf8Decoding1, utf8Decoding2, utf8Decoding3, utf8Error, utf8Error, utf8Error,
	// Decoding1
	utf8Error, utf8Starting, utf8Error, utf8Error, utf8Error, utf8Error, utf8Error, utf8Error,
	// Decoding2
	utf8Error, utf8Decoding1, utf8Error, utf8Error, utf8Error, utf8Error, utf8Error, utf8Error,
	// Decoding3
	utf8Error, utf8Decoding2, utf8Error, utf8Error, utf8Error, utf8Error, utf8Error, utf8Error,
	// Error
	utf8Error, utf8Error, utf8Error, utf8Error, utf8Error, utf8Error, utf8Error, utf8Error,
	// Padding for class 8 reached from the Error state
	utf8Error, utf8Error, utf8Error, utf8Error, utf8Error, utf8Error, utf8Error, utf8Error,
}

// utf8DecodeByte feeds one byte into the decoder. The accumulator update
// is branchless: previous bits are kept only mid-sequence, and the mask
// derived from the byte class keeps exactly the payload bits of the byte.
// The accumulated value is a complete code point only when the returned
// state is utf8Starting.
func utf8DecodeByte(c byte, state utf8State, u uint32) (utf8State, uint32) {
	class := uint32(bits.LeadingZeros8(^c))
	var mask1 uint32
	if state != utf8Starting {
		mask1 = ^uint32(0)
	}
	mask2 := uint32(0xFF) >> class
	u = ((u << 6) & mask1) | (uint32(c) & mask2)
	return utf8Transition[uint32(state)+class], u
}

// utf8ValidBytes reports whether b is a valid UTF-8 stream. Surrogate
// halves and values beyond 0x10FFFF are rejected when a code point
// completes. Overlong (non-canonical) encodings are not rejected; this is
// a documented limitation. A truncated trailing sequence is not rejected
// either: errors are detected per byte, and no byte of such a tail is
// itself invalid.
func utf8ValidBytes(b []byte) bool {
	state := utf8Starting
	u := uint32(0)
	for _, c := range b {
		state, u = utf8DecodeByte(c, state, u)
		if state == utf8Error {
			return false
		}
		if state == utf8Starting && (u > 0x10FFFF || (u >= 0xD800 && u <= 0xDFFF)) {
			return false
		}
	}
	return true
}

// utf8RuneCount counts the completed code points in b, or returns
// NotFound on a malformed sequence. A truncated trailing sequence is not
// an error; its bytes simply complete no code point.
func utf8RuneCount(b []byte) int {
	count := 0
	state := utf8Starting
	u := uint32(0)
	for _, c := range b {
		state, u = utf8DecodeByte(c, state, u)
		if state == utf8Error {
			return NotFound
		}
		if state == utf8Starting {
			count++
		}
	}
	return count
}

// utf8EncodeRune writes the UTF-8 encoding of u into buf, which must hold
// at least four bytes, and returns the encoded length.
func utf8EncodeRune(buf []byte, u uint32) int {
	switch {
	case u <= 0x7F:
		buf[0] = byte(u)
		return 1
	case u <= 0x7FF:
		buf[0] = byte(0xC0 | u>>6)
		buf[1] = byte(0x80 | u&0x3F)
		return 2
	case u <= 0xFFFF:
		buf[0] = byte(0xE0 | u>>12)
		buf[1] = byte(0x80 | u>>6&0x3F)
		buf[2] = byte(0x80 | u&0x3F)
		return 3
	default:
		buf[0] = byte(0xF0 | u>>18)
		buf[1] = byte(0x80 | u>>12&0x3F)
		buf[2] = byte(0x80 | u>>6&0x3F)
		buf[3] = byte(0x80 | u&0x3F)
		return 4
	}
}

// ValidUTF8 reports whether the string is a valid UTF-8 stream.
func (s *String) ValidUTF8() bool {
	return utf8ValidBytes(s.Bytes())
}

// RuneCount returns the number of code points in the string, or NotFound
// on malformed input.
func (s *String) RuneCount() int {
	return utf8RuneCount(s.Bytes())
}

// PushRune appends the UTF-8 encoding of r.
func (s *String) PushRune(r rune) {
	var buf [4]byte
	n := utf8EncodeRune(buf[:], uint32(r))
	s.AppendBytes(buf[:n])
}

// GraphemeCount returns the number of grapheme clusters in the string.
func (s *String) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(s.String())
}
