package strand

import "bytes"

// ReplaceFirst replaces the first occurrence of pat at or after start with
// repl, returning the match offset, or NotFound without modifying the
// string when pat is absent.
func (s *String) ReplaceFirst(pat, repl string, start int) int {
	i := s.Index(pat, start)
	if i == NotFound {
		return NotFound
	}
	size := s.Len()
	b := s.fitTo(size + len(repl) - len(pat) + 1)
	if len(pat) != len(repl) {
		copy(b[i+len(repl):], b[i+len(pat):size+1])
		s.setSize(size + len(repl) - len(pat))
	}
	copy(b[i:], repl)
	return i
}

// ReplaceAt replaces the n bytes at offset pos with repl.
func (s *String) ReplaceAt(pos, n int, repl string) {
	size := s.Len()
	checkIndex(pos, size+1)
	checkIndex(n, size+1)
	checkIndex(pos+n, size+1)
	var b []byte
	if n != len(repl) {
		b = s.fitTo(size + len(repl) - n + 1)
		copy(b[pos+len(repl):], b[pos+n:size+1])
		s.setSize(size + len(repl) - n)
	} else {
		b = s.buf()
	}
	copy(b[pos:], repl)
}

// ReplaceAll replaces every occurrence of pat with repl. Two algorithms
// are used depending on the relative lengths: when the replacement does
// not grow the string, a single forward pass shifts the tail left in
// place; otherwise the buffer is grown to the worst-case bound up front
// and scanned in reverse, writing from the end of the buffer, because a
// forward pass would overwrite source bytes not yet read. An empty
// pattern is a contract violation.
func (s *String) ReplaceAll(pat, repl string) {
	if len(pat) == 0 {
		panic("strand: replace with empty pattern")
	}
	if len(pat) >= len(repl) {
		s.replaceAllShrink(pat, repl)
	} else {
		s.replaceAllGrow(pat, repl)
	}
}

// replaceAllShrink handles len(pat) >= len(repl): the result never grows,
// so matches are consumed left to right with a read/write cursor pair.
func (s *String) replaceAllShrink(pat, repl string) {
	vlen := s.Len()
	b := s.buf()
	patb := []byte(pat)
	src, dst := 0, 0
	for src < vlen {
		occ := bytes.Index(b[src:vlen], patb)
		if occ < 0 {
			break
		}
		occ += src
		copy(b[dst:], b[src:occ])
		dst += occ - src
		copy(b[dst:], repl)
		dst += len(repl)
		src = occ + len(pat)
	}
	// Move the unmatched tail, terminator included.
	copy(b[dst:], b[src:vlen+1])
	s.setSize(dst + vlen - src)
}

// replaceAllGrow handles len(pat) < len(repl). The buffer is grown to the
// worst case of every pat-length window matching plus the unmatched
// remainder, then scanned backward with a reverse substring search,
// writing the rewritten text from the end of the buffer toward the front.
// The head gap is shifted left at the end.
func (s *String) replaceAllGrow(pat, repl string) {
	vlen := s.Len()
	if vlen == 0 {
		return
	}
	alloc := 1 + vlen/len(pat)*len(repl) + vlen%len(pat)
	b := s.fitTo(alloc)
	end := s.Cap()
	src := vlen - 1
	dst := end
	for src >= 0 {
		occ := lastIndexEnding(b, src, pat)
		if occ < 0 {
			break
		}
		n := src - (occ + len(pat) - 1)
		dst -= n
		copy(b[dst:], b[occ+len(pat):occ+len(pat)+n])
		dst -= len(repl)
		copy(b[dst:], repl)
		src = occ - 1
	}
	copy(b[src+1:], b[dst:end])
	vlen = src + 1 + end - dst
	b[vlen] = 0
	s.setSize(vlen)
}

// lastIndexEnding returns the start of the rightmost occurrence of pat in b
// ending at or before index last, or -1.
func lastIndexEnding(b []byte, last int, pat string) int {
	for i := last - len(pat) + 1; i >= 0; i-- {
		if b[i] == pat[0] && string(b[i:i+len(pat)]) == pat {
			return i
		}
	}
	return -1
}
