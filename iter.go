package strand

// InvalidRune is reported by Iter.Rune when the bytes under the cursor are
// not a valid UTF-8 sequence.
const InvalidRune rune = -1

// Iter is a forward cursor over the decoded code points of a String. It
// borrows the string's buffer and must not outlive the next mutation.
// Copying an Iter yields an independent, restartable cursor.
//
// The iteration protocol is strictly sequenced: AtEnd decodes one code
// point ahead and caches both the next boundary and the current value, so
// it must be called (and return false) before Rune is read, and Next
// simply jumps to the cached boundary.
//
//	for it := s.Begin(); !it.AtEnd(); it.Next() {
//		r := it.Rune()
//		...
//	}
type Iter struct {
	u    uint32
	b    []byte
	pos  int
	next int
}

// Begin returns an iterator at the first code point.
func (s *String) Begin() Iter {
	return Iter{b: s.Bytes()}
}

// End returns an iterator past the last code point.
func (s *String) End() Iter {
	b := s.Bytes()
	return Iter{b: b, pos: len(b), next: len(b)}
}

// AtEnd reports whether the cursor is past the last code point. When it
// returns false it has decoded the code point under the cursor, caching
// the value for Rune and the boundary for Next.
func (it *Iter) AtEnd() bool {
	if it.pos >= len(it.b) {
		return true
	}
	state := utf8Starting
	u := uint32(0)
	i := it.pos
	for {
		state, u = utf8DecodeByte(it.b[i], state, u)
		i++
		if state == utf8Starting || state == utf8Error || i >= len(it.b) {
			break
		}
	}
	it.next = i
	if state == utf8Error {
		it.u = utf8RuneError
	} else {
		it.u = u
	}
	return false
}

// Next advances to the boundary cached by the last AtEnd call.
func (it *Iter) Next() {
	it.pos = it.next
}

// Rune returns the code point decoded by the last AtEnd call, or
// InvalidRune if the sequence was malformed.
func (it *Iter) Rune() rune {
	return rune(int32(it.u))
}

// Value returns the raw decoded value; utf8RuneError bits on failure.
func (it *Iter) Value() uint32 {
	return it.u
}

// Equal reports whether two iterators reference the same position.
func (it *Iter) Equal(o Iter) bool {
	return it.pos == o.pos
}
