package app

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// ComposeFrame resizes frame to the dimensions of src and draws it on top,
// returning an opaque image with src's size. src is never resized.
// The result is fully determined by its inputs.
func ComposeFrame(src, frame image.Image) *image.RGBA {
	b := src.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), src, b.Min, draw.Src)

	xdraw.CatmullRom.Scale(canvas, canvas.Bounds(), frame, frame.Bounds(), xdraw.Over, nil)

	return Flatten(canvas)
}

// Flatten returns an opaque copy of img: colour channels are kept and alpha
// is dropped, so encoders write it without an alpha channel.
func Flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return out
}
