package domain

import (
	"fmt"
	"image"
	"math"
)

// Capabilities describes a printer page in device pixels.
type Capabilities struct {
	// PrintableWidth and PrintableHeight bound the area the device can mark
	PrintableWidth  int
	PrintableHeight int

	// PageWidth and PageHeight are the full physical page, margins included
	PageWidth  int
	PageHeight int

	// OffsetX and OffsetY locate the printable area inside the physical page
	OffsetX int
	OffsetY int
}

// Geometry is the placement of one image on one printer page.
type Geometry struct {
	// Scale is the factor applied to both image axes
	Scale float64

	// Dest is the destination rectangle in physical page coordinates
	Dest image.Rectangle

	// Offset is the physical offset of the printable area, as reported by the device
	Offset image.Point
}

// ComputeGeometry fits an imageWidth x imageHeight image into the printable area
// while preserving the aspect ratio, then centres it on the physical page.
//
// The scaled image never exceeds the printable area in either axis.
// Sizes are truncated towards zero, matching device integer coordinates.
func ComputeGeometry(caps Capabilities, imageWidth, imageHeight int) (Geometry, error) {
	if imageWidth <= 0 || imageHeight <= 0 {
		return Geometry{}, fmt.Errorf("%w: %dx%d", ErrInvalidImage, imageWidth, imageHeight)
	}
	if caps.PrintableWidth <= 0 || caps.PrintableHeight <= 0 {
		return Geometry{}, fmt.Errorf("%w: printable area %dx%d", ErrDeviceError, caps.PrintableWidth, caps.PrintableHeight)
	}

	scale := math.Min(
		float64(caps.PrintableWidth)/float64(imageWidth),
		float64(caps.PrintableHeight)/float64(imageHeight),
	)
	scaledW := int(scale * float64(imageWidth))
	scaledH := int(scale * float64(imageHeight))

	x1 := (caps.PageWidth - scaledW) / 2
	y1 := (caps.PageHeight - scaledH) / 2

	return Geometry{
		Scale:  scale,
		Dest:   image.Rect(x1, y1, x1+scaledW, y1+scaledH),
		Offset: image.Pt(caps.OffsetX, caps.OffsetY),
	}, nil
}

// ScaledSize returns the width and height of the placed image.
func (g Geometry) ScaledSize() (int, int) {
	return g.Dest.Dx(), g.Dest.Dy()
}

// PrintableDest returns Dest translated into printable-area coordinates,
// the origin device contexts draw relative to.
func (g Geometry) PrintableDest() image.Rectangle {
	return g.Dest.Sub(g.Offset)
}
