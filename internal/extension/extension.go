// Package extension provides validated file-extension tokens and the
// case-insensitive suffix matcher used for both discovery and output naming.
package extension

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidExtension is wrapped by all validation failures in this package.
var ErrInvalidExtension = errors.New("invalid extension")

// tokenPattern is the shape every normalized extension must have:
// lowercase alphanumeric, 1-50 characters, no dot.
var tokenPattern = regexp.MustCompile(`^[a-z0-9]{1,50}$`)

// Token is a single normalized extension (e.g. "mov"). Always lowercase
// alphanumeric and non-empty; construct via [Normalize].
type Token string

// List is an ordered sequence of tokens. Order is preserved from the raw
// input but matching treats it as a set.
type List []Token

// Normalize trims whitespace, lowercases, and validates a raw extension.
// Empty-after-trim input or disallowed characters return an error wrapping
// [ErrInvalidExtension]. Normalize is idempotent on its own output.
func Normalize(raw string) (Token, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if !tokenPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q (need 1-50 lowercase alphanumeric characters)", ErrInvalidExtension, raw)
	}
	return Token(s), nil
}

// ParseList splits a comma-separated string and normalizes each part in
// order. Any invalid part fails the whole list. An empty string yields a
// single empty part and therefore fails; callers must pass at least one
// extension.
func ParseList(raw string) (List, error) {
	parts := strings.Split(raw, ",")
	list := make(List, 0, len(parts))
	for _, p := range parts {
		tok, err := Normalize(p)
		if err != nil {
			return nil, err
		}
		list = append(list, tok)
	}
	return list, nil
}

// Matcher matches and strips file-name suffixes for a set of source
// extensions, case-insensitively. The same matcher drives discovery
// filtering and output-name derivation so the two can never disagree.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher builds the suffix matcher \.(?i:(ext1|ext2|...))$ for list.
// The list must be non-empty and hold normalized tokens; the alternation
// order follows the list but does not affect matching.
func NewMatcher(list List) *Matcher {
	alts := make([]string, len(list))
	for i, t := range list {
		alts[i] = regexp.QuoteMeta(string(t))
	}
	re := regexp.MustCompile(`(?i)\.(` + strings.Join(alts, "|") + `)$`)
	return &Matcher{re: re}
}

// MatchName reports whether name ends in one of the source extensions.
func (m *Matcher) MatchName(name string) bool {
	return m.re.MatchString(name)
}

// Strip removes the matched source suffix from name. Names without a
// matching suffix are returned unchanged.
func (m *Matcher) Strip(name string) string {
	return m.re.ReplaceAllString(name, "")
}
