package domain

import (
	"errors"
	"image"
	"testing"
)

func TestComputeGeometry_Scale(t *testing.T) {
	caps := Capabilities{
		PrintableWidth:  1000,
		PrintableHeight: 1500,
		PageWidth:       1000,
		PageHeight:      1500,
	}

	g, err := ComputeGeometry(caps, 2000, 1000)
	if err != nil {
		t.Fatalf("ComputeGeometry() error = %v", err)
	}
	if g.Scale != 0.5 {
		t.Errorf("Scale = %v, want 0.5", g.Scale)
	}
	w, h := g.ScaledSize()
	if w != 1000 || h != 500 {
		t.Errorf("scaled size = %dx%d, want 1000x500", w, h)
	}
	want := image.Rect(0, 500, 1000, 1000)
	if g.Dest != want {
		t.Errorf("Dest = %v, want %v", g.Dest, want)
	}
}

func TestComputeGeometry_CentresOnPhysicalPage(t *testing.T) {
	caps := Capabilities{
		PrintableWidth:  1152,
		PrintableHeight: 1752,
		PageWidth:       1200,
		PageHeight:      1800,
		OffsetX:         24,
		OffsetY:         24,
	}

	tests := []struct {
		name       string
		w, h       int
		wantDest   image.Rectangle
		wantScaled image.Point
	}{
		{"portrait fills width", 576, 876, image.Rect(24, 24, 1176, 1776), image.Pt(1152, 1752)},
		{"landscape limited by width", 1152, 768, image.Rect(24, 516, 1176, 1284), image.Pt(1152, 768)},
		{"small image is scaled up to fit", 96, 96, image.Rect(24, 324, 1176, 1476), image.Pt(1152, 1152)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ComputeGeometry(caps, tt.w, tt.h)
			if err != nil {
				t.Fatalf("ComputeGeometry() error = %v", err)
			}
			if g.Dest != tt.wantDest {
				t.Errorf("Dest = %v, want %v", g.Dest, tt.wantDest)
			}
			w, h := g.ScaledSize()
			if w != tt.wantScaled.X || h != tt.wantScaled.Y {
				t.Errorf("scaled = %dx%d, want %v", w, h, tt.wantScaled)
			}
			if w > caps.PrintableWidth || h > caps.PrintableHeight {
				t.Errorf("scaled %dx%d exceeds printable area", w, h)
			}
			if g.Offset != image.Pt(24, 24) {
				t.Errorf("Offset = %v, want (24,24)", g.Offset)
			}
		})
	}
}

func TestComputeGeometry_PrintableDest(t *testing.T) {
	caps := Capabilities{PrintableWidth: 100, PrintableHeight: 100, PageWidth: 120, PageHeight: 120, OffsetX: 10, OffsetY: 10}
	g, err := ComputeGeometry(caps, 50, 50)
	if err != nil {
		t.Fatalf("ComputeGeometry() error = %v", err)
	}
	if got, want := g.PrintableDest(), image.Rect(0, 0, 100, 100); got != want {
		t.Errorf("PrintableDest() = %v, want %v", got, want)
	}
}

func TestComputeGeometry_InvalidInput(t *testing.T) {
	caps := Capabilities{PrintableWidth: 100, PrintableHeight: 100, PageWidth: 100, PageHeight: 100}

	tests := []struct {
		name    string
		caps    Capabilities
		w, h    int
		wantErr error
	}{
		{"zero width", caps, 0, 10, ErrInvalidImage},
		{"zero height", caps, 10, 0, ErrInvalidImage},
		{"negative", caps, -1, 10, ErrInvalidImage},
		{"no printable area", Capabilities{PageWidth: 100, PageHeight: 100}, 10, 10, ErrDeviceError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeGeometry(tt.caps, tt.w, tt.h)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ComputeGeometry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
