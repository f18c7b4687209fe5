package ports

import (
	"context"
	"image"

	"github.com/bft-labs/framebooth/internal/domain"
)

// ImageStore decodes and writes image files.
type ImageStore interface {
	// Load decodes the image at path. Returns an error if the file cannot be
	// opened or is not (yet) a complete image.
	Load(path string) (image.Image, error)

	// Save encodes img to path, choosing the format from the extension.
	// The file appears atomically; parent directories are created as needed.
	Save(path string, img image.Image) error
}

// StatusRepository persists the operator status file.
type StatusRepository interface {
	// Load returns the last saved status, or an empty one if none exists.
	Load(ctx context.Context) (domain.Status, error)

	// Save persists the status atomically.
	Save(ctx context.Context, status domain.Status) error
}
