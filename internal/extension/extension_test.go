package extension

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalize_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Token
	}{
		{"already normal", "mov", "mov"},
		{"uppercase", "MOV", "mov"},
		{"mixed case", "Mp4", "mp4"},
		{"surrounding whitespace", "  avi\t", "avi"},
		{"digits", "m2ts1", "m2ts1"},
		{"max length", strings.Repeat("a", 50), Token(strings.Repeat("a", 50))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, in := range []string{"mov", " AVI ", "Mp4", "m2ts"} {
		once, err := Normalize(in)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", in, err)
		}
		twice, err := Normalize(string(once))
		if err != nil {
			t.Fatalf("Normalize(Normalize(%q)): %v", in, err)
		}
		if once != twice {
			t.Errorf("not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestNormalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"leading dot", ".mov"},
		{"inner space", "m p4"},
		{"hyphen", "mp-4"},
		{"non-ascii", "mдv"},
		{"too long", strings.Repeat("a", 51)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.in)
			if err == nil {
				t.Fatalf("Normalize(%q): expected error", tt.in)
			}
			if !errors.Is(err, ErrInvalidExtension) {
				t.Errorf("error %v does not wrap ErrInvalidExtension", err)
			}
		})
	}
}

func TestParseList(t *testing.T) {
	got, err := ParseList("MOV, Avi , mp4")
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	want := List{"mov", "avi", "mp4"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseList_PreservesDuplicates(t *testing.T) {
	got, err := ParseList("mov,mov")
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d tokens, want 2 (duplicates are kept)", len(got))
	}
}

func TestParseList_Invalid(t *testing.T) {
	for _, in := range []string{"", "mov,", ",avi", "mov,.avi", "mov, ,avi"} {
		if _, err := ParseList(in); !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("ParseList(%q): got %v, want ErrInvalidExtension", in, err)
		}
	}
}

func TestMatcher(t *testing.T) {
	m := NewMatcher(List{"mov", "avi"})

	tests := []struct {
		name  string
		match bool
	}{
		{"clip.mov", true},
		{"clip.MOV", true},
		{"CLIP.Avi", true},
		{"clip.mp4", false},
		{"clip.mov.txt", false},
		{"mov", false},
		{"clip.movx", false},
	}
	for _, tt := range tests {
		if got := m.MatchName(tt.name); got != tt.match {
			t.Errorf("MatchName(%q) = %v, want %v", tt.name, got, tt.match)
		}
	}
}

func TestMatcher_Strip(t *testing.T) {
	m := NewMatcher(List{"mov", "avi"})

	tests := []struct {
		in   string
		want string
	}{
		{"clip.mov", "clip"},
		{"clip.MOV", "clip"},
		{"a.b.avi", "a.b"},
		{"clip.mp4", "clip.mp4"}, // unmatched names pass through unchanged
	}
	for _, tt := range tests {
		if got := m.Strip(tt.in); got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
