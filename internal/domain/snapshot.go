package domain

import (
	"path/filepath"
	"sort"
	"strings"
)

// imageExtensions lists the suffixes the booth treats as photos.
var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// IsImageName reports whether name carries a recognised image suffix.
// The match is case-insensitive.
func IsImageName(name string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Snapshot is the set of entry names in the watched directory at one point in time.
type Snapshot struct {
	names map[string]struct{}
}

// NewSnapshot builds a snapshot from a directory listing.
func NewSnapshot(names []string) Snapshot {
	s := Snapshot{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		s.names[n] = struct{}{}
	}
	return s
}

// Len returns the number of names in the snapshot.
func (s Snapshot) Len() int {
	return len(s.names)
}

// Contains reports whether name is part of the snapshot.
func (s Snapshot) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Names returns the snapshot contents in lexical order.
func (s Snapshot) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Diff computes what changed between s and next.
// Added = next - s, Removed = s - next; both sorted lexically.
func (s Snapshot) Diff(next Snapshot) Diff {
	var d Diff
	for n := range next.names {
		if !s.Contains(n) {
			d.Added = append(d.Added, n)
		}
	}
	for n := range s.names {
		if !next.Contains(n) {
			d.Removed = append(d.Removed, n)
		}
	}
	sort.Strings(d.Added)
	sort.Strings(d.Removed)
	return d
}

// Diff is the change set reported by one watcher poll.
type Diff struct {
	Added   []string
	Removed []string
}

// Empty returns true if nothing was added or removed.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}
