package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFirstWaitReturnsImmediately(t *testing.T) {
	p := NewPacer(time.Hour)
	defer p.Stop()

	start := time.Now()
	p.Wait()
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestSecondWaitHonorsInterval(t *testing.T) {
	p := NewPacer(50 * time.Millisecond)
	defer p.Stop()

	p.Wait()
	start := time.Now()
	p.Wait()
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestStopUnblocksWait(t *testing.T) {
	p := NewPacer(time.Hour)
	p.Wait()

	released := make(chan struct{})
	go func() {
		p.Wait()
		close(released)
	}()

	p.Stop()
	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Stop")
	}
}
