package strand

import (
	"strings"
	"testing"
)

func TestSentinelRoundTrip(t *testing.T) {
	var s0, s1 String
	s0.MarkSentinel(0)
	s1.MarkSentinel(1)

	if !s0.IsSentinel(0) || s0.IsSentinel(1) {
		t.Error("pattern 0 misidentified")
	}
	if !s1.IsSentinel(1) || s1.IsSentinel(0) {
		t.Error("pattern 1 misidentified")
	}
}

func TestSentinelNeverEqualsLiveString(t *testing.T) {
	var dead String
	dead.MarkSentinel(0)
	for _, str := range []string{"", "x", strings.Repeat("y", 100)} {
		if FromString(str).Equal(&dead) || dead.Equal(FromString(str)) {
			t.Errorf("sentinel compared equal to %q", str)
		}
	}
}

func TestNormalOperationsNeverProduceSentinel(t *testing.T) {
	// Drive a string through every representation transition and verify
	// no reachable state matches a reserved pattern.
	check := func(s *String, step string) {
		t.Helper()
		if s.IsSentinel(0) || s.IsSentinel(1) {
			t.Errorf("live string became a sentinel after %s", step)
		}
	}

	s := New()
	check(s, "construction")
	s.AppendString("short")
	check(s, "inline append")
	s.AppendString(strings.Repeat("grow", 20))
	check(s, "promotion")
	s.Left(3)
	check(s, "truncation")
	s.Reserve(0)
	check(s, "demotion")
	s.ReplaceAll("o", "0")
	check(s, "replace")
	other := FromString("payload")
	s.Move(other)
	check(s, "move destination")
	check(other, "move source")
	s.Reset()
	check(s, "reset")
}

func TestSentinelIndexContract(t *testing.T) {
	var s String
	defer func() {
		if recover() == nil {
			t.Error("sentinel index above 1 should panic")
		}
	}()
	s.MarkSentinel(2)
}
