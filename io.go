package strand

import (
	"io"
	"strings"
)

// minStreamRead is the smallest chunk reserved per read while consuming a
// stream.
const minStreamRead = 512

// WriteTo implements io.WriterTo, writing the raw payload to w.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

// ReadFrom implements io.ReaderFrom, appending the entire stream. Data is
// read directly into the string's growing tail, one terminator slot always
// reserved.
func (s *String) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	size := s.Len()
	for {
		b := s.fitTo(size + minStreamRead + 1)
		n, err := r.Read(b[size : s.Cap()-1])
		size += n
		total += int64(n)
		b[size] = 0
		s.setSize(size)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// ReadLine replaces the content with the next line from r, reporting
// whether anything was read. The trailing newline is dropped when strip is
// set, kept otherwise. A final line without a newline is still reported as
// read.
func (s *String) ReadLine(r io.ByteReader, strip bool) bool {
	s.Reset()
	read := false
	for {
		c, err := r.ReadByte()
		if err != nil {
			return read
		}
		read = true
		if c == '\n' {
			if !strip {
				s.PushByte(c)
			}
			return true
		}
		s.PushByte(c)
	}
}

// ReadWord replaces the content with the next run of bytes not present in
// separators, skipping any leading separators, and reports whether a word
// was read. The separator terminating the word is consumed.
func (s *String) ReadWord(r io.ByteReader, separators string) bool {
	s.Reset()
	var c byte
	var err error
	for {
		c, err = r.ReadByte()
		if err != nil {
			return false
		}
		if strings.IndexByte(separators, c) < 0 {
			break
		}
	}
	for {
		s.PushByte(c)
		c, err = r.ReadByte()
		if err != nil || strings.IndexByte(separators, c) >= 0 {
			return true
		}
	}
}
