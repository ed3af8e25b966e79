package strand

// Sentinel slot markers let a String be stored directly as a key or value
// in an open-addressed hash table, with the "empty" and "deleted" states
// encoded in the value itself instead of per-slot metadata. The two
// patterns keep ptr nil with a negative alloc, which no sequence of normal
// constructions or mutations can produce: inline strings keep alloc at
// zero and heap strings keep it positive (growth panics before any
// overflow could wrap it).

// MarkSentinel writes reserved pattern n (0 or 1) into the value. It must
// only be called on a dead or uninitialized value, never on a live string;
// the previous content is not released.
func (s *String) MarkSentinel(n uint8) {
	if n > 1 {
		panic("strand: sentinel index out of range")
	}
	s.ptr = nil
	s.alloc = ^int(n)
}

// IsSentinel reports whether the value holds reserved pattern n.
func (s *String) IsSentinel(n uint8) bool {
	if n > 1 {
		panic("strand: sentinel index out of range")
	}
	return s.ptr == nil && s.alloc == ^int(n)
}

// isOOR reports whether the value holds either reserved pattern.
func (s *String) isOOR() bool {
	return s.ptr == nil && s.alloc < 0
}
