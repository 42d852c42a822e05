// Package mtime replicates file modification timestamps.
package mtime

import (
	"fmt"
	"os"
)

// Replicate copies source's last-modified time onto target, as both access
// and modification time. target must already exist (the encoder creates it);
// a missing target is an error.
//
// Cosmetic step: a failure here leaves a fully valid output file with wrong
// timestamps.
func Replicate(source, target string) error {
	fi, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if err := os.Chtimes(target, fi.ModTime(), fi.ModTime()); err != nil {
		return fmt.Errorf("set times on %s: %w", target, err)
	}
	return nil
}
