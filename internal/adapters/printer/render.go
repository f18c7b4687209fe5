// Package printer provides print targets: a CUPS client backend and a spool
// directory backend for dry runs.
package printer

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/bft-labs/framebooth/internal/ports"
)

// RenderPage draws job.Image into job.Geometry.Dest on a white canvas the size
// of the physical page. Parts of Dest outside the page are clipped.
func RenderPage(job ports.PrintJob) *image.RGBA {
	caps := job.Capabilities
	page := image.NewRGBA(image.Rect(0, 0, caps.PageWidth, caps.PageHeight))
	draw.Draw(page, page.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	if job.Image == nil || job.Geometry.Dest.Empty() {
		return page
	}
	xdraw.CatmullRom.Scale(page, job.Geometry.Dest, job.Image, job.Image.Bounds(), xdraw.Src, nil)
	return page
}
