package strand

// SerialStatus is the result of a structured serializer operation.
type SerialStatus int

const (
	// SerialOK means the operation succeeded and more may follow.
	SerialOK SerialStatus = iota
	// SerialDone means the operation succeeded and finished the frame.
	SerialDone
	// SerialFail means the frame was malformed or the sink failed.
	SerialFail
)

// SerialWriter is the write half of a pluggable structured serializer.
// Implementations own the wire format; the string core only hands over
// raw bytes.
type SerialWriter interface {
	WriteString(b []byte) SerialStatus
}

// SerialReader is the read half of a pluggable structured serializer.
type SerialReader interface {
	ReadString(dst *String) SerialStatus
}

// MarshalTo writes the string through the serializer.
func (s *String) MarshalTo(w SerialWriter) SerialStatus {
	return w.WriteString(s.Bytes())
}

// UnmarshalFrom replaces the content with the next string read from the
// serializer.
func (s *String) UnmarshalFrom(r SerialReader) SerialStatus {
	return r.ReadString(s)
}
