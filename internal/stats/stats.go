package stats

import "fmt"

// Statistics tracks check outcomes for the lifetime of the process. The
// monitor loop is single threaded, so plain counters are sufficient.
type Statistics struct {
	TotalChecks     int
	InStockCount    int
	OutOfStockCount int
	ErrorCount      int
}

func New() *Statistics {
	return &Statistics{}
}

// RecordCheck increments the total counter. Exactly one of the outcome
// counters must be incremented afterwards for the same check.
func (s *Statistics) RecordCheck() {
	s.TotalChecks++
}

func (s *Statistics) RecordInStock() {
	s.InStockCount++
}

func (s *Statistics) RecordOutOfStock() {
	s.OutOfStockCount++
}

func (s *Statistics) RecordError() {
	s.ErrorCount++
}

// Snapshot returns a copy safe to hand to notification payload builders.
func (s *Statistics) Snapshot() Statistics {
	return *s
}

// Summary renders the counters for a notification field value.
func (s *Statistics) Summary() string {
	return fmt.Sprintf(
		"Total Checks: %d\nIn Stock Count: %d\nOut of Stock Count: %d\nError Count: %d",
		s.TotalChecks, s.InStockCount, s.OutOfStockCount, s.ErrorCount,
	)
}

// Title renders the short form pushed into the terminal window title.
func (s *Statistics) Title() string {
	return fmt.Sprintf("AirUp Checker | No Stock: %d | Stock: %d", s.OutOfStockCount, s.InStockCount)
}
