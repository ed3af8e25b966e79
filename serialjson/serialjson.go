// Package serialjson is a structured serializer adapter that frames a
// sequence of strings as a JSON array document. It implements the
// strand.SerialWriter and strand.SerialReader interfaces; the string core
// never sees the wire format.
//
// JSON strings carry Unicode text, not arbitrary bytes; callers that need
// byte transparency should use the quoted text format instead.
package serialjson

import (
	"errors"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/strand"
)

// Writer accumulates strings into a JSON array document.
type Writer struct {
	doc []byte
	n   int
}

// NewWriter returns a writer with an empty document.
func NewWriter() *Writer {
	return &Writer{doc: []byte("[]")}
}

// WriteString appends one string element to the document.
func (w *Writer) WriteString(b []byte) strand.SerialStatus {
	doc, err := sjson.SetBytes(w.doc, strconv.Itoa(w.n), string(b))
	if err != nil {
		return strand.SerialFail
	}
	w.doc = doc
	w.n++
	return strand.SerialOK
}

// Bytes returns the document built so far.
func (w *Writer) Bytes() []byte {
	return w.doc
}

// Len returns the number of elements written.
func (w *Writer) Len() int {
	return w.n
}

// Reader decodes strings sequentially from a JSON array document.
type Reader struct {
	doc  []byte
	n    int
	size int
}

// NewReader validates doc and returns a reader positioned at the first
// element.
func NewReader(doc []byte) (*Reader, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errors.New("serialjson: invalid JSON document")
	}
	root := gjson.ParseBytes(doc)
	if !root.IsArray() {
		return nil, errors.New("serialjson: document is not a JSON array")
	}
	return &Reader{doc: doc, size: len(root.Array())}, nil
}

// ReadString decodes the next element into dst. It returns SerialDone on
// the last element and SerialFail past the end or on a non-string element.
func (r *Reader) ReadString(dst *strand.String) strand.SerialStatus {
	if r.n >= r.size {
		return strand.SerialFail
	}
	v := gjson.GetBytes(r.doc, strconv.Itoa(r.n))
	if v.Type != gjson.String {
		return strand.SerialFail
	}
	dst.SetString(v.String())
	r.n++
	if r.n == r.size {
		return strand.SerialDone
	}
	return strand.SerialOK
}
