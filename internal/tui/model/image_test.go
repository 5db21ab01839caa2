package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "cat.png")
	if err := os.WriteFile(png, pngHeader, 0o644); err != nil {
		t.Fatal(err)
	}
	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := LoadImage(png)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if img.MIME != "image/png" || len(img.Data) != len(pngHeader) {
		t.Errorf("image = %s (%d bytes)", img.MIME, len(img.Data))
	}

	if _, err := LoadImage(txt); !errors.Is(err, ErrNotImage) {
		t.Errorf("text file: err = %v, want ErrNotImage", err)
	}
	if _, err := LoadImage(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v", err)
	}
	if _, err := LoadImage(dir); err == nil {
		t.Error("directory should be rejected")
	}
	if _, err := LoadImage("  "); err == nil {
		t.Error("blank path should be rejected")
	}
}
