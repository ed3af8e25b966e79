package strand

import "strings"

// Inline layout constants. The inline area mirrors a two-word heap header:
// bytes 0..13 hold the payload, byte 14 is reserved for the terminator of a
// full inline string, and byte 15 encodes the current length.
const (
	inlineBufSize = 16
	inlineLast    = inlineBufSize - 1
	inlineCap     = inlineBufSize - 1
)

// String is a growable, null-terminated byte buffer with small-string
// optimization. The zero value is a valid empty string.
//
// A String is inline iff ptr is nil. This single test is the only
// discriminant between the two forms; no separate tag field exists.
// Inline strings keep their length in the last byte of the inline array,
// heap strings in the size field. alloc is zero for inline strings,
// positive for heap strings, and negative only for sentinel slot markers
// (see MarkSentinel).
type String struct {
	stack [inlineBufSize]byte
	ptr   []byte
	size  int
	alloc int
}

// New returns an empty inline string. No heap allocation is performed.
func New() *String {
	return &String{}
}

// FromString returns a string holding a copy of str.
func FromString(str string) *String {
	s := &String{}
	s.SetString(str)
	return s
}

// FromBytes returns a string holding a copy of b.
func FromBytes(b []byte) *String {
	s := &String{}
	s.SetBytes(b)
	return s
}

func (s *String) isInline() bool {
	return s.ptr == nil
}

// buf returns the full writable backing buffer.
func (s *String) buf() []byte {
	if s.ptr == nil {
		return s.stack[:]
	}
	return s.ptr
}

// Len returns the byte length of the string.
func (s *String) Len() int {
	if s.ptr == nil {
		return int(s.stack[inlineLast])
	}
	return s.size
}

// IsEmpty returns true if the string contains no bytes.
func (s *String) IsEmpty() bool {
	return s.Len() == 0
}

// Bytes returns the string's payload without copying. The slice is valid
// only until the next mutation.
func (s *String) Bytes() []byte {
	return s.buf()[:s.Len()]
}

// String returns a copy of the payload as a Go string.
func (s *String) String() string {
	return string(s.Bytes())
}

// Reset makes the string empty without releasing its buffer.
func (s *String) Reset() {
	s.buf()[0] = 0
	s.setSize(0)
}

// Byte returns the byte at index i.
func (s *String) Byte(i int) byte {
	checkIndex(i, s.Len())
	return s.buf()[i]
}

// SetByte overwrites the byte at index i.
func (s *String) SetByte(i int, c byte) {
	checkIndex(i, s.Len())
	s.buf()[i] = c
}

// SetString replaces the content with a copy of str.
func (s *String) SetString(str string) {
	b := s.fitTo(len(str) + 1)
	copy(b, str)
	b[len(str)] = 0
	s.setSize(len(str))
}

// SetStringN replaces the content with the first n bytes of str.
func (s *String) SetStringN(str string, n int) {
	size := min(len(str), n)
	b := s.fitTo(size + 1)
	copy(b, str[:size])
	b[size] = 0
	s.setSize(size)
}

// SetBytes replaces the content with a copy of p.
func (s *String) SetBytes(p []byte) {
	b := s.fitTo(len(p) + 1)
	copy(b, p)
	b[len(p)] = 0
	s.setSize(len(p))
}

// Set replaces the content with a copy of the other string.
func (s *String) Set(o *String) {
	if s == o {
		return
	}
	size := o.Len()
	b := s.fitTo(size + 1)
	copy(b, o.buf()[:size+1])
	s.setSize(size)
}

// SetSubstring replaces the content with up to length bytes of o starting
// at offset. s and o may be the same string.
func (s *String) SetSubstring(o *String, offset, length int) {
	checkIndex(offset, o.Len()+1)
	size := min(o.Len()-offset, length)
	b := s.fitTo(size + 1)
	copy(b, o.buf()[offset:offset+size])
	b[size] = 0
	s.setSize(size)
}

// Clone returns an independent copy of the string.
func (s *String) Clone() *String {
	c := &String{}
	c.Set(s)
	return c
}

// Move transfers ownership of src's storage to s without copying bytes.
// Afterwards src behaves like a freshly constructed empty string.
func (s *String) Move(src *String) {
	*s = *src
	*src = String{}
}

// Swap exchanges the contents of the two strings in O(1).
func (s *String) Swap(o *String) {
	*s, *o = *o, *s
}

// PushByte appends a single byte.
func (s *String) PushByte(c byte) {
	size := s.Len()
	b := s.fitTo(size + 2)
	b[size] = c
	b[size+1] = 0
	s.setSize(size + 1)
}

// AppendString appends a copy of str.
func (s *String) AppendString(str string) {
	if len(str) == 0 {
		return
	}
	size := s.Len()
	b := s.fitTo(size + len(str) + 1)
	copy(b[size:], str)
	b[size+len(str)] = 0
	s.setSize(size + len(str))
}

// AppendBytes appends a copy of p.
func (s *String) AppendBytes(p []byte) {
	if len(p) == 0 {
		return
	}
	size := s.Len()
	b := s.fitTo(size + len(p) + 1)
	copy(b[size:], p)
	b[size+len(p)] = 0
	s.setSize(size + len(p))
}

// Append appends a copy of the other string.
func (s *String) Append(o *String) {
	s.AppendBytes(o.Bytes())
}

// Left truncates the string to its first n bytes.
func (s *String) Left(n int) {
	if n >= s.Len() {
		return
	}
	checkIndex(n, s.Len())
	s.buf()[n] = 0
	s.setSize(n)
}

// Right removes the first n bytes, keeping the tail.
func (s *String) Right(n int) {
	b := s.buf()
	size := s.Len()
	if n >= size {
		b[0] = 0
		s.setSize(0)
		return
	}
	checkIndex(n, size)
	rest := size - n
	copy(b, b[n:size+1])
	s.setSize(rest)
}

// Mid reduces the string to length bytes starting at offset.
func (s *String) Mid(offset, length int) {
	s.Right(offset)
	s.Left(length)
}

// Trim removes any bytes present in cutset from both ends of the string.
func (s *String) Trim(cutset string) {
	b := s.buf()
	size := s.Len()
	for size > 0 && strings.IndexByte(cutset, b[size-1]) >= 0 {
		size--
	}
	if size > 0 {
		start := 0
		for strings.IndexByte(cutset, b[start]) >= 0 {
			start++
		}
		size -= start
		copy(b, b[start:start+size])
	}
	b[size] = 0
	s.setSize(size)
}

func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic("strand: index out of range")
	}
}
