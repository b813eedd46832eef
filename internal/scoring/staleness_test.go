package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsStale_BoundaryConditions(t *testing.T) {
	now := time.Date(2026, time.March, 8, 12, 0, 0, 0, time.UTC)

	assert.False(t, IsStale(now, now))
	assert.False(t, IsStale(now.Add(-MaxResultAge+time.Second), now))
	assert.False(t, IsStale(now.Add(-MaxResultAge), now))
	assert.True(t, IsStale(now.Add(-MaxResultAge-time.Second), now))
}

func TestIsStale_ZeroTimeAlwaysStale(t *testing.T) {
	assert.True(t, IsStale(time.Time{}, time.Now()))
}
