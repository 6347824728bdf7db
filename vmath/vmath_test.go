package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi int
		want      int
	}{
		{"inside", 5, -27, 27, 5},
		{"below", -40, -27, 27, -27},
		{"above", 99, -27, 27, 27},
		{"lower edge", -27, -27, 27, -27},
		{"upper edge", 27, -27, 27, 27},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.v, tt.lo, tt.hi))
		})
	}

	assert.Equal(t, 640.0, Clamp(700.5, 0, 640.0))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-1e300))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))

	assert.True(t, V(1, 2).IsFinite())
	assert.False(t, V(1, math.Inf(1)).IsFinite())
	assert.False(t, V(math.NaN(), 2).IsFinite())
}

func TestDist(t *testing.T) {
	assert.InDelta(t, 14.1421356, Dist(V(320, 300), V(330, 310)), 1e-6)
	assert.InDelta(t, 134.1640786, Dist(V(320, 300), V(400, 400)), 1e-6)
	assert.Equal(t, 0.0, Dist(V(3, 4), V(3, 4)))
	assert.Equal(t, 5.0, V(3, 4).Len())
}

func TestReflectAxisX(t *testing.T) {
	v := ReflectAxisX(V(-3, 1.5), 0.7)
	assert.InDelta(t, 2.1, v.X, 1e-12)
	assert.Equal(t, 1.5, v.Y)
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 2.5, Abs(2.5))
	assert.Equal(t, 0.0, Abs(0.0))
}
