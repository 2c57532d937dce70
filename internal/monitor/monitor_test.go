package monitor

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yourneighborhoodchef/airmon/internal/logging"
)

type scriptedChecker struct {
	results []bool
	calls   int
}

func (c *scriptedChecker) Check() bool {
	result := c.results[c.calls]
	c.calls++
	return result
}

func testLogger() *logging.Logger {
	l := logging.New(logging.Config{Level: "info"})
	l.SetOutput(io.Discard)
	return l
}

func TestRunStopsOnFirstSuccess(t *testing.T) {
	checker := &scriptedChecker{results: []bool{false, false, true, true}}

	m := New(checker, testLogger(), time.Millisecond)
	done := make(chan struct{})
	go func() {
		m.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after the first in-stock result")
	}

	// The fourth scripted result must never be consumed.
	assert.Equal(t, 3, checker.calls)
}

func TestRunChecksImmediately(t *testing.T) {
	checker := &scriptedChecker{results: []bool{true}}

	m := New(checker, testLogger(), time.Hour)
	done := make(chan struct{})
	go func() {
		m.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("first check waited for the interval")
	}
	assert.Equal(t, 1, checker.calls)
}
