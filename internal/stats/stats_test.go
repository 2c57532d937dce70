package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountersSumToTotal(t *testing.T) {
	s := New()

	outcomes := []func(){
		s.RecordInStock,
		s.RecordOutOfStock,
		s.RecordOutOfStock,
		s.RecordError,
	}
	for _, record := range outcomes {
		s.RecordCheck()
		record()
	}

	assert.Equal(t, 4, s.TotalChecks)
	assert.Equal(t, 1, s.InStockCount)
	assert.Equal(t, 2, s.OutOfStockCount)
	assert.Equal(t, 1, s.ErrorCount)
	assert.Equal(t, s.TotalChecks, s.InStockCount+s.OutOfStockCount+s.ErrorCount)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New()
	s.RecordCheck()
	s.RecordError()

	snap := s.Snapshot()
	s.RecordCheck()
	s.RecordInStock()

	assert.Equal(t, 1, snap.TotalChecks)
	assert.Equal(t, 0, snap.InStockCount)
	assert.Equal(t, 2, s.TotalChecks)
}

func TestSummaryAndTitle(t *testing.T) {
	s := &Statistics{TotalChecks: 7, InStockCount: 1, OutOfStockCount: 5, ErrorCount: 1}

	assert.Equal(t,
		"Total Checks: 7\nIn Stock Count: 1\nOut of Stock Count: 5\nError Count: 1",
		s.Summary(),
	)
	assert.Equal(t, "AirUp Checker | No Stock: 5 | Stock: 1", s.Title())
}
