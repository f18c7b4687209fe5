package app

import (
	"sync"

	"github.com/bft-labs/framebooth/internal/domain"
)

// PrinterSelector picks the printer for the next dispatch attempt.
type PrinterSelector interface {
	// Next returns the printer to use and advances the selection.
	Next() domain.PrinterID

	// Peek returns the printer Next would return, without advancing.
	Peek() domain.PrinterID
}

// Alternator round-robins between two printers, starting with the first.
// It advances on every attempt, whether or not the print later succeeds.
type Alternator struct {
	mu   sync.Mutex
	ids  [2]domain.PrinterID
	next int
}

// NewAlternator returns an Alternator that starts at a.
func NewAlternator(a, b domain.PrinterID) *Alternator {
	return &Alternator{ids: [2]domain.PrinterID{a, b}}
}

// Next returns the current printer and flips to the other one.
func (a *Alternator) Next() domain.PrinterID {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.ids[a.next]
	a.next ^= 1
	return id
}

// Peek returns the printer the next call to Next will return.
func (a *Alternator) Peek() domain.PrinterID {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ids[a.next]
}
