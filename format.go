package strand

import "fmt"

// Write implements io.Writer, appending p through the growth manager.
// It never fails; allocation exhaustion is fatal by policy.
func (s *String) Write(p []byte) (int, error) {
	s.AppendBytes(p)
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (s *String) WriteString(str string) (int, error) {
	s.AppendString(str)
	return len(str), nil
}

// WriteByte implements io.ByteWriter.
func (s *String) WriteByte(c byte) error {
	s.PushByte(c)
	return nil
}

// WriteRune appends the UTF-8 encoding of r and returns its length.
func (s *String) WriteRune(r rune) (int, error) {
	var buf [4]byte
	n := utf8EncodeRune(buf[:], uint32(r))
	s.AppendBytes(buf[:n])
	return n, nil
}

// Printf replaces the content with the formatted text and returns the
// number of bytes written. Formatting targets the string's own buffer, so
// capacity grows on demand instead of being guessed up front.
func (s *String) Printf(format string, args ...any) int {
	s.Reset()
	n, _ := fmt.Fprintf(s, format, args...)
	return n
}

// AppendPrintf appends the formatted text and returns the number of bytes
// written.
func (s *String) AppendPrintf(format string, args ...any) int {
	n, _ := fmt.Fprintf(s, format, args...)
	return n
}
