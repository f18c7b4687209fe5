package booth_test

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/bft-labs/framebooth/pkg/booth"
)

// ExampleNew demonstrates embedding a booth with the spool backend.
func ExampleNew() {
	root, _ := os.MkdirTemp("", "booth-example")
	defer os.RemoveAll(root)

	framePath := filepath.Join(root, "frame.png")
	f, _ := os.Create(framePath)
	_ = png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 60, 90)))
	f.Close()

	cfg := booth.DefaultConfig()
	cfg.InputDir = filepath.Join(root, "camera")
	cfg.OutputDir = filepath.Join(root, "framed")
	cfg.FramePath = framePath
	cfg.PrinterA = "canon_selphy_1"
	cfg.PrinterB = "canon_selphy_2"
	cfg.Backend = booth.BackendSpool
	cfg.SpoolDir = filepath.Join(root, "spool")

	b, err := booth.New(cfg)
	if err != nil {
		fmt.Printf("failed to create booth: %v\n", err)
		return
	}

	fmt.Println("Initial state:", b.State())
	fmt.Println("First printer:", b.NextPrinter())

	if err := b.Start(context.Background()); err != nil {
		fmt.Printf("failed to start: %v\n", err)
		return
	}
	_ = b.Stop()
	fmt.Println("Final state:", b.State())

	// Output:
	// Initial state: Stopped
	// First printer: canon_selphy_1
	// Final state: Stopped
}

// Example_withEventHandler demonstrates receiving booth events.
func Example_withEventHandler() {
	cfg := booth.DefaultConfig()
	cfg.InputDir = "/srv/booth/camera"
	cfg.OutputDir = "/srv/booth/framed"
	cfg.FramePath = "/srv/booth/frame.png"
	cfg.PrinterA = "canon_selphy_1"
	cfg.PrinterB = "canon_selphy_2"

	b, err := booth.New(cfg, booth.WithEventHandler(&printLogger{}))
	if err != nil {
		fmt.Printf("failed to create booth: %v\n", err)
		return
	}

	_ = b // Use booth instance...
}

// printLogger reports prints and failures; other events are ignored.
type printLogger struct {
	booth.BaseEventHandler
}

func (p *printLogger) OnPrinted(e booth.PrintedEvent) {
	fmt.Printf("%s printed on %s\n", e.File, e.Printer)
}

func (p *printLogger) OnPrintError(e booth.PrintErrorEvent) {
	fmt.Printf("%s not printed: %v\n", e.File, e.Error)
}
