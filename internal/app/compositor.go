package app

import (
	"context"
	"fmt"
	"image"

	"github.com/bft-labs/framebooth/internal/domain"
	"github.com/bft-labs/framebooth/internal/ports"
)

// Compositor puts the frame template on top of each incoming photo.
// The frame is loaded once and shared read-only.
type Compositor struct {
	frame  image.Image
	store  ports.ImageStore
	retry  RetryPolicy
	logger ports.Logger
}

// NewCompositor creates a compositor for the given frame template.
func NewCompositor(frame image.Image, store ports.ImageStore, retry RetryPolicy, logger ports.Logger) *Compositor {
	return &Compositor{
		frame:  frame,
		store:  store,
		retry:  retry,
		logger: logger,
	}
}

// Compose opens srcPath, retrying while the file is not yet a readable image,
// and returns the framed, opaque result with the source's dimensions.
// Returns an error wrapping domain.ErrUnreadableSource when the retry bound is exceeded.
func (c *Compositor) Compose(ctx context.Context, srcPath string) (image.Image, error) {
	var src image.Image
	attempts, err := c.retry.Do(ctx, func(attempt int) error {
		img, err := c.store.Load(srcPath)
		if err != nil {
			c.logger.Debug("image not readable yet",
				ports.String("path", srcPath),
				ports.Int("attempt", attempt),
				ports.Err(err),
			)
			return err
		}
		src = img
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Error("could not open image",
			ports.String("path", srcPath),
			ports.Int("attempts", attempts),
			ports.Err(err),
		)
		return nil, fmt.Errorf("%w: %s after %d attempts: %v", domain.ErrUnreadableSource, srcPath, attempts, err)
	}

	return ComposeFrame(src, c.frame), nil
}

// ComposeJob composes job.SourcePath and writes the result to job.DestPath.
// Nothing is written unless compositing succeeded.
func (c *Compositor) ComposeJob(ctx context.Context, job domain.PendingJob) (string, error) {
	img, err := c.Compose(ctx, job.SourcePath)
	if err != nil {
		return "", err
	}
	if err := c.store.Save(job.DestPath, img); err != nil {
		return "", fmt.Errorf("save framed image %s: %w", job.DestPath, err)
	}
	c.logger.Info("framed image saved",
		ports.String("job", job.ID),
		ports.String("path", job.DestPath),
	)
	return job.DestPath, nil
}
