package naming

import (
	"testing"

	"batchbrake/internal/extension"
)

func TestOutputPath(t *testing.T) {
	m := extension.NewMatcher(extension.List{"mov", "avi"})

	tests := []struct {
		name   string
		input  string
		target extension.Token
		want   string
	}{
		{"uppercase suffix", "/x/a.MOV", "mp4", "/x/a.mp4"},
		{"lowercase suffix", "/x/b.avi", "mp4", "/x/b.mp4"},
		{"nested directory", "/media/raw/clip.mov", "mp4", "/media/raw/clip.mp4"},
		{"dot in stem", "/x/a.b.mov", "mp4", "/x/a.b.mp4"},
		{"relative path", "footage/c.Avi", "mkv", "footage/c.mkv"},
		{"unmatched suffix appends", "/x/c.txt", "mp4", "/x/c.txt.mp4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputPath(tt.input, m, tt.target)
			if got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputPath_Deterministic(t *testing.T) {
	m := extension.NewMatcher(extension.List{"mov"})
	a := OutputPath("/x/a.mov", m, "mp4")
	b := OutputPath("/x/a.mov", m, "mp4")
	if a != b {
		t.Errorf("not deterministic: %q vs %q", a, b)
	}
}
