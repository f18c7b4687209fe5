// Package booth provides an embeddable photo booth service.
//
// A Booth watches an input folder for photos, overlays a frame image on each
// new photo, saves the framed copy to an output folder and prints it, sending
// successive photos to two printers in turn. An optional external sync tool
// is run on a fixed interval to pull photos from the camera into the folder.
//
// # Basic Usage
//
//	cfg := booth.DefaultConfig()
//	cfg.InputDir = "/srv/booth/camera"
//	cfg.OutputDir = "/srv/booth/framed"
//	cfg.FramePath = "/srv/booth/frame.png"
//	cfg.PrinterA = "canon_selphy_1"
//	cfg.PrinterB = "canon_selphy_2"
//
//	b, err := booth.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := b.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Printers
//
// By default both printers are CUPS queues reached with lp and lpstat.
// Set Config.Backend to [BackendSpool] to write rendered pages to a directory
// instead, or pass your own implementations with [WithPrinters].
//
// # Event Handling
//
// Implement [EventHandler] (embedding [BaseEventHandler]) and pass it via
// [WithEventHandler]. Events are called synchronously from the loop goroutine;
// handlers should return quickly.
//
// # Lifecycle States
//
// A Booth is in one of [StateStopped], [StateStarting], [StateRunning],
// [StateStopping] or [StateCrashed]. A crash happens only when the directory
// watch fails; per-photo failures are logged and reported as events.
package booth
