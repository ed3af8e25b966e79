package strand

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Escape tables for the quoted text format. Both act as perfect hash maps
// over the five short-form characters, indexed by (c^(c>>5))&7; this
// assumes an ASCII mapping.
const (
	quoteEscapeTab   = " tn\" r\\\x00"
	unquoteEscapeTab = " \r \" \n\\\t"
)

func quoteHash(c byte) byte {
	return (c ^ c>>5) & 7
}

func printable(c byte) bool {
	return c >= 0x20 && c <= 0x7E
}

// Quote writes a quoted representation of s into dst, replacing its
// content unless appendTo is set. The output is wrapped in double quotes;
// backslash, quote, newline, tab and carriage return use their two
// character short forms and any other non-printable byte becomes a three
// digit octal escape. The destination grows incrementally as escapes are
// discovered since the worst case is data dependent. dst must not be s.
func (s *String) Quote(dst *String, appendTo bool) {
	if dst == s {
		panic("strand: quote into the source string")
	}
	size := 0
	if appendTo {
		size = dst.Len()
	}
	src := s.Bytes()
	target := size + len(src) + 3
	b := dst.fitTo(target)
	b[size] = '"'
	size++
	for _, c := range src {
		switch c {
		case '\\', '"', '\n', '\t', '\r':
			dst.setSize(size)
			target++
			b = dst.fitTo(target)
			b[size] = '\\'
			b[size+1] = quoteEscapeTab[quoteHash(c)]
			size += 2
		default:
			if !printable(c) {
				target += 3
				dst.setSize(size)
				b = dst.fitTo(target)
				b[size] = '\\'
				b[size+1] = '0' + c>>6&7
				b[size+2] = '0' + c>>3&7
				b[size+3] = '0' + c&7
				size += 4
			} else {
				b[size] = c
				size++
			}
		}
	}
	b[size] = '"'
	size++
	b[size] = 0
	dst.setSize(size)
}

// appendQuoted appends the quoted representation of src to dst.
func appendQuoted(dst, src []byte) []byte {
	dst = append(dst, '"')
	for _, c := range src {
		switch c {
		case '\\', '"', '\n', '\t', '\r':
			dst = append(dst, '\\', quoteEscapeTab[quoteHash(c)])
		default:
			if !printable(c) {
				dst = append(dst, '\\', '0'+c>>6&7, '0'+c>>3&7, '0'+c&7)
			} else {
				dst = append(dst, c)
			}
		}
	}
	return append(dst, '"')
}

// WriteQuoted writes the quoted representation of s to w. Escapes are
// batched through a pooled buffer so the sink sees a single write.
func (s *String) WriteQuoted(w io.Writer) error {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	bb.B = appendQuoted(bb.B, s.Bytes())
	_, err := w.Write(bb.B)
	return err
}

// ReadQuoted parses a quoted representation from r into s, replacing its
// content. It reports success only when the input starts with a quote and
// a closing unescaped quote is found. On failure the partially decoded
// content is unspecified and should be discarded by the caller.
func (s *String) ReadQuoted(r io.ByteReader) bool {
	c, err := r.ReadByte()
	if err != nil || c != '"' {
		return false
	}
	s.Reset()
	for {
		c, err = r.ReadByte()
		if err != nil {
			return false
		}
		if c == '"' {
			return true
		}
		if c == '\\' {
			c, err = r.ReadByte()
			if err != nil {
				return false
			}
			switch c {
			case 'n', 't', 'r', '\\', '"':
				c = unquoteEscapeTab[quoteHash(c)]
			default:
				var ok bool
				if c, ok = readOctal(r, c); !ok {
					return false
				}
			}
		}
		s.PushByte(c)
	}
}

// readOctal completes a three digit octal escape whose first digit is d0.
func readOctal(r io.ByteReader, d0 byte) (byte, bool) {
	if d0 < '0' || d0 > '7' {
		return 0, false
	}
	v := d0 - '0'
	for i := 0; i < 2; i++ {
		c, err := r.ReadByte()
		if err != nil || c < '0' || c > '7' {
			return 0, false
		}
		v = v<<3 | (c - '0')
	}
	return v, true
}

// ParseQuoted parses a quoted representation from the front of src into s,
// replacing its content. It returns the number of bytes consumed and
// whether a complete quoted string was read. The consumed count is
// meaningful on failure too: it points just past the offending byte.
func (s *String) ParseQuoted(src string) (int, bool) {
	i := 0
	next := func() (byte, bool) {
		if i >= len(src) {
			return 0, false
		}
		c := src[i]
		i++
		return c, true
	}
	c, ok := next()
	if !ok || c != '"' {
		return i, false
	}
	s.Reset()
	for {
		c, ok = next()
		if !ok {
			return i, false
		}
		if c == '"' {
			return i, true
		}
		if c == '\\' {
			c, ok = next()
			if !ok {
				return i, false
			}
			switch c {
			case 'n', 't', 'r', '\\', '"':
				c = unquoteEscapeTab[quoteHash(c)]
			default:
				if c < '0' || c > '7' {
					return i, false
				}
				v := c - '0'
				for k := 0; k < 2; k++ {
					c, ok = next()
					if !ok || c < '0' || c > '7' {
						return i, false
					}
					v = v<<3 | (c - '0')
				}
				c = v
			}
		}
		s.PushByte(c)
	}
}
