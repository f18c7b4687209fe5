package fs

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// DefaultJPEGQuality is the encoder quality for framed JPEG output.
const DefaultJPEGQuality = 95

// ImageFileStore implements ports.ImageStore on the local file system.
type ImageFileStore struct {
	jpegQuality int
}

// NewImageFileStore creates a store that writes JPEGs at the given quality.
func NewImageFileStore(jpegQuality int) *ImageFileStore {
	if jpegQuality <= 0 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}
	return &ImageFileStore{jpegQuality: jpegQuality}
}

// Load opens and decodes a JPEG or PNG file. A file that is still being
// written usually fails here with an unexpected EOF or a format error.
func (s *ImageFileStore) Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Save encodes img according to the extension of path. The image is written
// to a hidden temp file in the same directory and renamed into place, so
// readers never observe a partial file.
func (s *ImageFileStore) Save(path string, img image.Image) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := s.encode(tmp, path, img); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

func (s *ImageFileStore) encode(f *os.File, path string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: s.jpegQuality})
	case ".png":
		return png.Encode(f, img)
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}
}
