// Package strand provides a growable, small-string-optimized text buffer.
//
// A String stores short payloads (up to 14 bytes) directly inside its own
// value with no heap allocation, and transparently promotes to a heap
// buffer as it grows. The buffer is always null-terminated and the length
// never reaches the capacity, so a terminator slot is always reserved.
//
// Key features:
//   - Dual inline/heap representation switched on size (SSO)
//   - 1.5x capacity growth for amortized O(1) appends
//   - Table-driven UTF-8 codec with a restartable code-point iterator
//   - Substring search and a two-algorithm global replace engine
//   - Quoted text serialization compatible with C string literals
//   - Reserved sentinel patterns for open-addressed hash table slots
//
// Basic usage:
//
//	s := strand.FromString("hello world")
//	s.ReplaceAll("world", "there")   // "hello there"
//	i := s.Index("there", 0)         // 6
//	text := s.String()               // "hello there"
//
// The zero value is a valid empty string. String is a single-owner value
// type with no internal synchronization; it must not be shared across
// goroutines without external locking.
package strand
