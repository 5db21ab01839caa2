package model

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxImageBytes caps the size of a picked image.
const MaxImageBytes = 8 << 20

// ErrNotImage is returned when a picked file does not sniff as an image.
var ErrNotImage = errors.New("not an image")

// Image is a picked picture ready to send.
type Image struct {
	MIME string
	Data []byte
}

// LoadImage reads path and sniffs its content type. A leading "~/" expands
// to the home directory.
func LoadImage(path string) (Image, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Image{}, errors.New("image path is empty")
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return Image{}, fmt.Errorf("resolve home: %w", err)
		}
		path = filepath.Join(home, rest)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Image{}, fmt.Errorf("read image: %w", err)
	}
	if info.IsDir() {
		return Image{}, fmt.Errorf("read image: %s is a directory", path)
	}
	if info.Size() > MaxImageBytes {
		return Image{}, fmt.Errorf("read image: %s is larger than %d MB", path, MaxImageBytes>>20)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("read image: %w", err)
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return Image{}, fmt.Errorf("%w: %s is %s", ErrNotImage, filepath.Base(path), mime)
	}
	return Image{MIME: mime, Data: data}, nil
}
