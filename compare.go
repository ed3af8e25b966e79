package strand

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/collate"
)

// Cmp compares the two strings byte-wise and returns the sort order.
func (s *String) Cmp(o *String) int {
	return bytes.Compare(s.Bytes(), o.Bytes())
}

// CmpString compares the string to str byte-wise.
func (s *String) CmpString(str string) int {
	return bytes.Compare(s.Bytes(), []byte(str))
}

// Equal reports whether the two strings hold the same bytes. It may be
// called with at most one sentinel operand; a sentinel never compares
// equal to a live string.
func (s *String) Equal(o *String) bool {
	if s.isOOR() || o.isOOR() {
		return false
	}
	return s.Len() == o.Len() && bytes.Equal(s.Bytes(), o.Bytes())
}

// EqualString reports whether the string holds the same bytes as str.
func (s *String) EqualString(str string) bool {
	b := s.Bytes()
	return len(b) == len(str) && string(b) == str
}

// CmpFold compares the two strings ignoring ASCII case. The fold is
// byte-wise and not UTF-8 aware.
func (s *String) CmpFold(o *String) int {
	return cmpFold(s.Bytes(), o.Bytes())
}

// CmpFoldString compares the string to str ignoring ASCII case.
func (s *String) CmpFoldString(str string) int {
	return cmpFold(s.Bytes(), []byte(str))
}

func cmpFold(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		c1, c2 := foldByte(a[i]), foldByte(b[i])
		if c1 != c2 {
			return int(c1) - int(c2)
		}
	}
	return len(a) - len(b)
}

func foldByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// Hash returns a hash of the string's bytes, suitable for the container
// hash operation.
func (s *String) Hash() uint64 {
	return xxhash.Sum64(s.Bytes())
}

// Collate compares the two strings using the given collator. This is a
// thin pass-through; the collator owns all locale behavior.
func (s *String) Collate(col *collate.Collator, o *String) int {
	return col.Compare(s.Bytes(), o.Bytes())
}
