package calldata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScore(t *testing.T) {
	t.Parallel()

	// 2*40 + 3*30 + 60*0.2 + 10*0.1 = 80 + 90 + 12 + 1
	assert.InDelta(t, 183.0, ComputeScore(2, 3, 60, 10), 1e-9)
}

func TestComputeScore_ZeroInputs(t *testing.T) {
	t.Parallel()

	assert.Zero(t, ComputeScore(0, 0, 0, 0))
}

func TestComputeScore_VisitsDominate(t *testing.T) {
	t.Parallel()

	// A single visit outweighs an hour of calls
	assert.Greater(t, ComputeScore(1, 0, 0, 0), ComputeScore(0, 0, 60, 20))
}

func TestComputeScore_NegativeInputsPassThrough(t *testing.T) {
	t.Parallel()

	// Negative counters are not clamped; they propagate into the score.
	assert.InDelta(t, -40.0, ComputeScore(-1, 0, 0, 0), 1e-9)
	assert.InDelta(t, -0.2, ComputeScore(0, 0, -1, 0), 1e-9)
}
