package strand

// Cap returns the current capacity. The capacity includes the terminator
// slot, so the largest representable length is Cap()-1. Inline strings
// always report the fixed inline capacity; heap strings never report less.
func (s *String) Cap() int {
	if s.ptr == nil {
		return inlineCap
	}
	return s.alloc
}

// setSize records the length without touching the payload. Callers must
// already have written n valid bytes plus the terminator.
func (s *String) setSize(n int) {
	if s.ptr == nil {
		s.stack[inlineLast] = byte(n)
	} else {
		s.size = n
	}
}

// fitTo ensures the buffer can hold sizeAlloc bytes (terminator included)
// and returns the writable buffer. Growth is 1.5x the requested size to
// bound peak memory across many small appends. Overflow of the growth
// arithmetic is unrecoverable: there is no error path out of the mutators,
// so it panics.
func (s *String) fitTo(sizeAlloc int) []byte {
	if sizeAlloc <= s.Cap() {
		return s.buf()
	}
	alloc := sizeAlloc + sizeAlloc/2
	if alloc < 0 {
		panic("strand: string capacity overflow")
	}
	buf := make([]byte, alloc)
	size := s.Len()
	copy(buf, s.buf()[:size+1])
	s.ptr = buf
	s.size = size
	s.alloc = alloc
	return buf
}

// Reserve adjusts the capacity to hold at least alloc bytes (terminator
// included), clamped so the current content always fits. Requesting less
// than the current length performs a shrink-to-fit; if the result fits the
// inline area the string demotes back to inline form. This is the only
// demotion path.
func (s *String) Reserve(alloc int) {
	size := s.Len()
	if size+1 > alloc {
		alloc = size + 1
	}
	if alloc < inlineBufSize {
		if s.ptr != nil {
			heap := s.ptr
			s.ptr = nil
			s.alloc = 0
			copy(s.stack[:], heap[:size+1])
			s.stack[inlineLast] = byte(size)
		}
		return
	}
	buf := make([]byte, alloc)
	copy(buf, s.buf()[:size+1])
	s.ptr = buf
	s.size = size
	s.alloc = alloc
}
