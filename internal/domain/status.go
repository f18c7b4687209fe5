package domain

import "time"

// Status is the operator-facing summary of the booth, persisted as JSON.
// It is informational only: alternation always restarts at printer A.
type Status struct {
	NextPrinter PrinterID         `json:"next_printer"`
	LastFile    string            `json:"last_file,omitempty"`
	LastPrinter PrinterID         `json:"last_printer,omitempty"`
	LastPrintAt time.Time         `json:"last_print_at,omitempty"`
	Printed     map[PrinterID]int `json:"printed"`
	Failed      int               `json:"failed"`
	Skipped     int               `json:"skipped"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// RecordPrinted updates the status after a successful submission.
func (s *Status) RecordPrinted(name string, printer PrinterID, at time.Time) {
	if s.Printed == nil {
		s.Printed = make(map[PrinterID]int)
	}
	s.Printed[printer]++
	s.LastFile = name
	s.LastPrinter = printer
	s.LastPrintAt = at
	s.UpdatedAt = at
}

// RecordFailed counts a job whose print submission failed.
func (s *Status) RecordFailed(at time.Time) {
	s.Failed++
	s.UpdatedAt = at
}

// RecordSkipped counts a job that never reached a printer.
func (s *Status) RecordSkipped(at time.Time) {
	s.Skipped++
	s.UpdatedAt = at
}

// TotalPrinted returns the sum of successful prints across printers.
func (s Status) TotalPrinted() int {
	total := 0
	for _, n := range s.Printed {
		total += n
	}
	return total
}
