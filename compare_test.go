package strand

import (
	"testing"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func TestCmp(t *testing.T) {
	tests := []struct {
		a, b string
		sign int
	}{
		{"a", "b", -1},
		{"b", "a", 1},
		{"same", "same", 0},
		{"ab", "abc", -1},
		{"abc", "ab", 1},
		{"", "", 0},
		{"", "x", -1},
	}
	for _, tt := range tests {
		got := FromString(tt.a).Cmp(FromString(tt.b))
		if sign(got) != tt.sign {
			t.Errorf("Cmp(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.sign)
		}
		if got2 := FromString(tt.a).CmpString(tt.b); sign(got2) != tt.sign {
			t.Errorf("CmpString(%q, %q) = %d, want sign %d", tt.a, tt.b, got2, tt.sign)
		}
	}
}

func TestCmpFold(t *testing.T) {
	tests := []struct {
		a, b string
		sign int
	}{
		{"Hello", "hello", 0},
		{"HELLO", "hello", 0},
		{"abc", "ABD", -1},
		{"a", "B", -1},
		{"Z", "a", 1},
	}
	for _, tt := range tests {
		if got := FromString(tt.a).CmpFold(FromString(tt.b)); sign(got) != tt.sign {
			t.Errorf("CmpFold(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.sign)
		}
		if got := FromString(tt.a).CmpFoldString(tt.b); sign(got) != tt.sign {
			t.Errorf("CmpFoldString(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.sign)
		}
	}
}

func TestEqual(t *testing.T) {
	a := FromString("content")
	b := FromString("content")
	c := FromString("different")
	if !a.Equal(b) || a.Equal(c) {
		t.Error("Equal wrong")
	}
	if !a.EqualString("content") || a.EqualString("other") {
		t.Error("EqualString wrong")
	}
	if !New().Equal(New()) {
		t.Error("empty strings should be equal")
	}
}

func TestHash(t *testing.T) {
	a := FromString("hash me")
	b := FromString("hash me")
	c := FromString("hash you")
	if a.Hash() != b.Hash() {
		t.Error("equal strings must hash equal")
	}
	if a.Hash() == c.Hash() {
		t.Error("different strings should hash differently")
	}
	if New().Hash() != FromString("").Hash() {
		t.Error("empty hash not stable")
	}
}

func TestCollate(t *testing.T) {
	col := collate.New(language.English)
	a := FromString("apple")
	b := FromString("Banana")
	if a.Collate(col, b) >= 0 {
		t.Error("English collation should order apple before Banana")
	}
	if a.Collate(col, a.Clone()) != 0 {
		t.Error("string should collate equal to its copy")
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
