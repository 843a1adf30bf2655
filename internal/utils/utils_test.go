package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGServiceIsDeterministic(t *testing.T) {
	a := NewPRNGService(99)
	b := NewPRNGService(99)
	for range 50 {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
		assert.Equal(t, a.Float64(), b.Float64())
	}
	assert.Equal(t, int64(99), a.Seed())
}

func TestPRNGServiceZeroSeedUsesTime(t *testing.T) {
	assert.NotZero(t, NewPRNGService(0).Seed())
}

func TestPRNGServiceRange(t *testing.T) {
	s := NewPRNGService(1)
	for range 1000 {
		v := s.Range(80, 880)
		assert.GreaterOrEqual(t, v, 80.0)
		assert.Less(t, v, 880.0)
	}
	assert.Equal(t, 5.0, s.Range(5, 5))
	assert.Equal(t, 5.0, s.Range(5, 1))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 10.0, Lerp(10, 20, 0))
	assert.Equal(t, 20.0, Lerp(10, 20, 1))
	assert.Equal(t, 15.0, Lerp(10, 20, 0.5))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(3, 0, 1))
	assert.Equal(t, 0.25, Clamp(0.25, 0, 1))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(0, 0, 3, 4))
	assert.Equal(t, 0.0, Distance(2, 2, 2, 2))
}
