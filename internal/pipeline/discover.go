package pipeline

import (
	"os"
	"path/filepath"

	"batchbrake/internal/extension"
)

// Discover lists the direct children of dir and returns the paths of the
// regular files whose name matches one of the source extensions. No
// recursion: subdirectories are never entered, and a subdirectory whose
// name itself matches (e.g. "d.mov/") is excluded.
//
// A directory with no matches yields an empty slice, not an error. Order
// follows os.ReadDir, which sorts entries by name, so discovery is stable
// and deterministic within a run.
func Discover(dir string, m *extension.Matcher) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if m.MatchName(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
