package ratelimit

import "time"

// Pacer gates a loop to one pass per interval. The first Wait returns
// immediately so the initial check happens at startup rather than after a
// full interval.
type Pacer struct {
	interval time.Duration
	grants   chan struct{}
	done     chan struct{}
}

func NewPacer(interval time.Duration) *Pacer {
	p := &Pacer{
		interval: interval,
		grants:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	p.grants <- struct{}{}
	go p.refill()
	return p
}

func (p *Pacer) refill() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			select {
			case p.grants <- struct{}{}:
			default:
				// Caller hasn't consumed the previous grant; don't stack them.
			}
		case <-p.done:
			return
		}
	}
}

// Wait blocks until the next grant or until Stop is called.
func (p *Pacer) Wait() {
	select {
	case <-p.grants:
	case <-p.done:
	}
}

func (p *Pacer) Stop() {
	close(p.done)
}
