package strand

import (
	"bytes"
	"strings"
)

// NotFound is returned by the search operations when no match exists.
const NotFound = -1

// IndexByte returns the offset of the first occurrence of c at or after
// start, or NotFound.
func (s *String) IndexByte(c byte, start int) int {
	b := s.Bytes()
	checkIndex(start, len(b)+1)
	i := bytes.IndexByte(b[start:], c)
	if i < 0 {
		return NotFound
	}
	return start + i
}

// LastIndexByte returns the offset of the last occurrence of c at or after
// start, or NotFound.
func (s *String) LastIndexByte(c byte, start int) int {
	b := s.Bytes()
	checkIndex(start, len(b)+1)
	i := bytes.LastIndexByte(b[start:], c)
	if i < 0 {
		return NotFound
	}
	return start + i
}

// Index returns the offset of the first occurrence of substr at or after
// start, or NotFound.
func (s *String) Index(substr string, start int) int {
	b := s.Bytes()
	checkIndex(start, len(b)+1)
	i := bytes.Index(b[start:], []byte(substr))
	if i < 0 {
		return NotFound
	}
	return start + i
}

// IndexAny returns the offset of the first byte present in chars at or
// after start, or NotFound.
func (s *String) IndexAny(chars string, start int) int {
	b := s.Bytes()
	checkIndex(start, len(b)+1)
	for i := start; i < len(b); i++ {
		if strings.IndexByte(chars, b[i]) >= 0 {
			return i
		}
	}
	return NotFound
}

// Span returns the length of the leading segment consisting entirely of
// bytes in accept.
func (s *String) Span(accept string) int {
	b := s.Bytes()
	for i, c := range b {
		if strings.IndexByte(accept, c) < 0 {
			return i
		}
	}
	return len(b)
}

// SpanNot returns the length of the leading segment consisting entirely of
// bytes not in reject.
func (s *String) SpanNot(reject string) int {
	b := s.Bytes()
	for i, c := range b {
		if strings.IndexByte(reject, c) >= 0 {
			return i
		}
	}
	return len(b)
}

// HasPrefix reports whether the string starts with str.
func (s *String) HasPrefix(str string) bool {
	b := s.Bytes()
	return len(b) >= len(str) && string(b[:len(str)]) == str
}

// HasSuffix reports whether the string ends with str.
func (s *String) HasSuffix(str string) bool {
	b := s.Bytes()
	return len(b) >= len(str) && string(b[len(b)-len(str):]) == str
}
