package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsFresh(t *testing.T) {
	assert.False(t, IsFresh(time.Time{}, FreshnessAssets))
	assert.True(t, IsFresh(time.Now().Add(-time.Minute), FreshnessAssets))
	assert.False(t, IsFresh(time.Now().Add(-10*time.Minute), FreshnessAssets))
	assert.True(t, IsFresh(time.Now().Add(-3*24*time.Hour), FreshnessGold))
}
