package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	var report Report
	assert.False(t, report.HasFailures())
	assert.Empty(t, report.Paths())

	report.Add(Result{Path: "/tmp/a.txt", Outcome: OutcomeDeleted})
	report.Add(Result{Path: "/tmp/b.txt", Outcome: OutcomeSkipped})
	report.Add(Result{Path: "/tmp/c.txt", Outcome: OutcomeFailed, Err: errors.New("permission denied")})
	report.Add(Result{Path: "/tmp/a.txt", Outcome: OutcomeSkipped})

	assert.Equal(t, []string{"/tmp/a.txt", "/tmp/b.txt", "/tmp/c.txt", "/tmp/a.txt"}, report.Paths())
	assert.Equal(t, 1, report.Count(OutcomeDeleted))
	assert.Equal(t, 2, report.Count(OutcomeSkipped))
	assert.Equal(t, 1, report.Count(OutcomeFailed))
	assert.Equal(t, 0, report.Count(OutcomeWouldDelete))
	assert.True(t, report.HasFailures())
}
