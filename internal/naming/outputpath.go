// Package naming derives output file paths from source paths.
package naming

import (
	"path/filepath"

	"batchbrake/internal/extension"
)

// OutputPath derives the output file path for input: same directory, base
// name with the matched source suffix stripped (case-insensitively, via the
// same matcher used for discovery), plus "." and the target extension.
//
// Pure path math: no filesystem access and no collision checks. If the
// output path already exists the encoder overwrites it. Names without a
// matching source suffix keep their full name before the target extension
// is appended; the runner never produces such inputs.
func OutputPath(input string, m *extension.Matcher, target extension.Token) string {
	dir := filepath.Dir(input)
	stem := m.Strip(filepath.Base(input))
	return filepath.Join(dir, stem+"."+string(target))
}
