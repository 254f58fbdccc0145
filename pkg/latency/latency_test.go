package latency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWaitsAtLeastDuration(t *testing.T) {
	s := Fixed(20 * time.Millisecond)

	start := time.Now()
	s.Wait()

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestFixedNonPositiveFallsBackToNone(t *testing.T) {
	assert.Equal(t, None(), Fixed(0))
	assert.Equal(t, None(), Fixed(-time.Second))
}

func TestNoneReturnsImmediately(t *testing.T) {
	start := time.Now()
	None().Wait()

	assert.Less(t, time.Since(start), 10*time.Millisecond)
}
