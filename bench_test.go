package strand

import (
	"strings"
	"testing"
)

func BenchmarkPushByte(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := New()
		for j := 0; j < 1024; j++ {
			s.PushByte('x')
		}
	}
}

func BenchmarkAppendString(b *testing.B) {
	chunk := strings.Repeat("payload ", 4)
	for i := 0; i < b.N; i++ {
		s := New()
		for j := 0; j < 64; j++ {
			s.AppendString(chunk)
		}
	}
}

func BenchmarkReplaceAllShrink(b *testing.B) {
	base := strings.Repeat("the fox and the hound ", 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := FromString(base)
		s.ReplaceAll("the", "a")
	}
}

func BenchmarkReplaceAllGrow(b *testing.B) {
	base := strings.Repeat("the fox and the hound ", 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := FromString(base)
		s.ReplaceAll("the", "every")
	}
}

func BenchmarkQuote(b *testing.B) {
	src := FromString(strings.Repeat("text with \"quotes\" and \t tabs\n", 20))
	dst := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src.Quote(dst, false)
	}
}

func BenchmarkRuneCount(b *testing.B) {
	s := FromString(strings.Repeat("héllo 世界 ", 100))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if s.RuneCount() == NotFound {
			b.Fatal("unexpected decode error")
		}
	}
}
