package app

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/bft-labs/framebooth/internal/domain"
	"github.com/bft-labs/framebooth/internal/ports"
)

// mockLogger implements ports.Logger for testing.
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields ...ports.Field) {}
func (mockLogger) Info(msg string, fields ...ports.Field)  {}
func (mockLogger) Warn(msg string, fields ...ports.Field)  {}
func (mockLogger) Error(msg string, fields ...ports.Field) {}

var errNotReadable = errors.New("not a complete image")

// memStore is an in-memory ImageStore. Paths listed in failLoads fail that
// many times before succeeding; a negative count fails forever.
type memStore struct {
	mu        sync.Mutex
	images    map[string]image.Image
	failLoads map[string]int
	loads     map[string]int
	saved     map[string]image.Image
}

func newMemStore() *memStore {
	return &memStore{
		images:    make(map[string]image.Image),
		failLoads: make(map[string]int),
		loads:     make(map[string]int),
		saved:     make(map[string]image.Image),
	}
}

func (s *memStore) Load(path string) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads[path]++
	if n, ok := s.failLoads[path]; ok && n != 0 {
		if n > 0 {
			s.failLoads[path] = n - 1
		}
		return nil, errNotReadable
	}
	img, ok := s.images[path]
	if !ok {
		return nil, errNotReadable
	}
	return img, nil
}

func (s *memStore) Save(path string, img image.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved[path] = img
	s.images[path] = img
	return nil
}

// fakePrinter records submissions and can be told to fail.
type fakePrinter struct {
	id        domain.PrinterID
	caps      domain.Capabilities
	capsErr   error
	submitErr error
	jobs      []ports.PrintJob
}

func (p *fakePrinter) ID() domain.PrinterID { return p.id }

func (p *fakePrinter) Capabilities(ctx context.Context) (domain.Capabilities, error) {
	return p.caps, p.capsErr
}

func (p *fakePrinter) Submit(ctx context.Context, job ports.PrintJob) error {
	if p.submitErr != nil {
		return p.submitErr
	}
	p.jobs = append(p.jobs, job)
	return nil
}

func selphyCaps() domain.Capabilities {
	return domain.Capabilities{
		PrintableWidth:  1000,
		PrintableHeight: 1500,
		PageWidth:       1040,
		PageHeight:      1540,
		OffsetX:         20,
		OffsetY:         20,
	}
}

// fakeClock returns a fixed time that tests advance by hand.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// solid returns a w x h image filled with c.
func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// noSleep makes retry policies return immediately, counting the waits.
func noSleep(count *int) func(context.Context, time.Duration) error {
	return func(ctx context.Context, d time.Duration) error {
		*count++
		return ctx.Err()
	}
}
