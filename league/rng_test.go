package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamSeed_SameInputs_SameSeed(t *testing.T) {
	a := StreamSeed(42, StreamGame, "g-001")
	b := StreamSeed(42, StreamGame, "g-001")
	assert.Equal(t, a, b)
}

func TestStreamSeed_DifferentLabels_DifferentSeeds(t *testing.T) {
	a := StreamSeed(42, StreamGame, "g-001")
	b := StreamSeed(42, StreamGame, "g-002")
	c := StreamSeed(42, StreamLottery, "g-001")
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, b, c)
}

func TestStreamSeed_DifferentMasters_DifferentSeeds(t *testing.T) {
	a := StreamSeed(1, StreamSchedule, "y2025")
	b := StreamSeed(2, StreamSchedule, "y2025")
	assert.NotEqual(t, a, b)
}

func TestStream_SameDerivation_SameSequence(t *testing.T) {
	r1 := Stream(7, StreamDevelopment, "y2026", "p-0001")
	r2 := Stream(7, StreamDevelopment, "y2026", "p-0001")
	for i := 0; i < 10; i++ {
		if r1.Int63() != r2.Int63() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}
