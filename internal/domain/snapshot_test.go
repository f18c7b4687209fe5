package domain

import (
	"reflect"
	"testing"
	"time"
)

func TestSnapshot_Diff(t *testing.T) {
	old := NewSnapshot([]string{"a.jpg", "b.png"})
	next := NewSnapshot([]string{"b.png", "c.jpg"})

	d := old.Diff(next)

	if !reflect.DeepEqual(d.Added, []string{"c.jpg"}) {
		t.Errorf("Added = %v, want [c.jpg]", d.Added)
	}
	if !reflect.DeepEqual(d.Removed, []string{"a.jpg"}) {
		t.Errorf("Removed = %v, want [a.jpg]", d.Removed)
	}
}

func TestSnapshot_DiffOrderIsLexical(t *testing.T) {
	old := NewSnapshot(nil)
	next := NewSnapshot([]string{"z.jpg", "IMG_0002.JPG", "a.png", "IMG_0001.JPG"})

	d := old.Diff(next)

	want := []string{"IMG_0001.JPG", "IMG_0002.JPG", "a.png", "z.jpg"}
	if !reflect.DeepEqual(d.Added, want) {
		t.Errorf("Added = %v, want %v", d.Added, want)
	}
	if len(d.Removed) != 0 {
		t.Errorf("Removed = %v, want empty", d.Removed)
	}
}

func TestSnapshot_DiffUnchanged(t *testing.T) {
	s := NewSnapshot([]string{"a.jpg"})
	if d := s.Diff(NewSnapshot([]string{"a.jpg"})); !d.Empty() {
		t.Errorf("Diff() = %+v, want empty", d)
	}
}

func TestIsImageName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"photo.jpg", true},
		{"photo.JPG", true},
		{"photo.jpeg", true},
		{"photo.JpEg", true},
		{"photo.png", true},
		{"photo.PNG", true},
		{"notes.txt", false},
		{"photo.jpg.tmp", false},
		{"jpg", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsImageName(tt.name); got != tt.want {
			t.Errorf("IsImageName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStatus_Record(t *testing.T) {
	var s Status
	s.RecordPrinted("a.jpg", "selphy_1", fixedTime)
	s.RecordPrinted("b.jpg", "selphy_2", fixedTime)
	s.RecordPrinted("c.jpg", "selphy_1", fixedTime)
	s.RecordFailed(fixedTime)
	s.RecordSkipped(fixedTime)

	if s.TotalPrinted() != 3 {
		t.Errorf("TotalPrinted() = %d, want 3", s.TotalPrinted())
	}
	if s.Printed["selphy_1"] != 2 {
		t.Errorf("Printed[selphy_1] = %d, want 2", s.Printed["selphy_1"])
	}
	if s.LastFile != "c.jpg" || s.LastPrinter != "selphy_1" {
		t.Errorf("last = %s on %s, want c.jpg on selphy_1", s.LastFile, s.LastPrinter)
	}
	if s.Failed != 1 || s.Skipped != 1 {
		t.Errorf("Failed=%d Skipped=%d, want 1/1", s.Failed, s.Skipped)
	}
}

var fixedTime = time.Date(2025, 11, 23, 16, 20, 0, 0, time.UTC)
