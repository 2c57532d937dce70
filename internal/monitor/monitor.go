// Package monitor runs the check loop: probe, log, wait, repeat, until the
// first in-stock result ends the process.
package monitor

import (
	"time"

	"github.com/yourneighborhoodchef/airmon/internal/logging"
	"github.com/yourneighborhoodchef/airmon/internal/ratelimit"
)

// Checker is one availability probe; true means the item is purchasable.
type Checker interface {
	Check() bool
}

type Monitor struct {
	checker  Checker
	log      *logging.Logger
	interval time.Duration
}

func New(checker Checker, log *logging.Logger, interval time.Duration) *Monitor {
	return &Monitor{
		checker:  checker,
		log:      log,
		interval: interval,
	}
}

// Run blocks until a check reports in stock. The first check happens
// immediately; after that the pacer enforces one check per interval. There
// is no wait after the final, successful check.
func (m *Monitor) Run() {
	pacer := ratelimit.NewPacer(m.interval)
	defer pacer.Stop()

	m.log.Info("Starting availability checker for the configured AirUp bottle...")

	for {
		pacer.Wait()

		if m.checker.Check() {
			m.log.Success("Stopping: item is in stock.")
			return
		}

		m.log.Info("Waiting %s before the next check...", m.interval)
	}
}
