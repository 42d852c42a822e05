package mtime

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReplicate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mov")
	dst := filepath.Join(dir, "dst.mp4")
	for _, p := range []string{src, dst} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	want := time.Date(2021, 6, 15, 10, 30, 0, 0, time.UTC)
	if err := os.Chtimes(src, want, want); err != nil {
		t.Fatal(err)
	}

	if err := Replicate(src, dst); err != nil {
		t.Fatalf("Replicate: %v", err)
	}

	fi, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !fi.ModTime().Equal(want) {
		t.Errorf("target mtime = %v, want %v", fi.ModTime(), want)
	}
}

func TestReplicate_MissingTarget(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mov")
	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Replicate(src, filepath.Join(dir, "missing.mp4")); err == nil {
		t.Error("Replicate: expected error for missing target")
	}
}

func TestReplicate_MissingSource(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "dst.mp4")
	if err := os.WriteFile(dst, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Replicate(filepath.Join(dir, "missing.mov"), dst); err == nil {
		t.Error("Replicate: expected error for missing source")
	}
}
