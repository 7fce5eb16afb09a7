package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangleArea_Projected(t *testing.T) {
	a := Point{0, 0, 5}
	b := Point{2, 0, -3}
	c := Point{0, 3, 11}

	// Shoelace on the first two coordinates; the third is ignored
	area, err := TriangleArea(a, b, c, true)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, area, 1e-14)

	t.Run("CyclicPermutationInvariant", func(t *testing.T) {
		a1, _ := TriangleArea(a, b, c, true)
		a2, _ := TriangleArea(b, c, a, true)
		a3, _ := TriangleArea(c, a, b, true)
		assert.InDelta(t, a1, a2, 1e-14)
		assert.InDelta(t, a1, a3, 1e-14)
	})

	t.Run("TranspositionStaysNonNegative", func(t *testing.T) {
		swapped, err := TriangleArea(b, a, c, true)
		require.NoError(t, err)
		assert.InDelta(t, area, swapped, 1e-14)
		assert.GreaterOrEqual(t, swapped, 0.0)
	})

	t.Run("Works2D", func(t *testing.T) {
		area2, err := TriangleArea(Point{0, 0}, Point{2, 0}, Point{0, 3}, true)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, area2, 1e-14)
	})
}

func TestTriangleArea_Exact3D(t *testing.T) {
	// Right triangle with legs 3 and 4 along orthogonal axes
	a := Point{1, 1, 1}
	b := Point{4, 1, 1}
	c := Point{1, 1, 5}
	area, err := TriangleArea(a, b, c, false)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, area, 1e-12)

	t.Run("Rejects2D", func(t *testing.T) {
		_, err := TriangleArea(Point{0, 0}, Point{1, 0}, Point{0, 1}, false)
		assert.True(t, errors.Is(err, ErrInvalidDimension))
	})

	t.Run("MatchesProjectedForHorizontal", func(t *testing.T) {
		a := Point{0, 0, 2}
		b := Point{3, 0, 2}
		c := Point{0, 4, 2}
		exact, err := TriangleArea(a, b, c, false)
		require.NoError(t, err)
		proj, err := TriangleArea(a, b, c, true)
		require.NoError(t, err)
		assert.InDelta(t, exact, proj, 1e-12)
	})
}

func TestDistance(t *testing.T) {
	d := Distance(Point{0, 0, 0}, Point{1, 2, 2})
	assert.InDelta(t, 3.0, d, 1e-14)
}

func TestLinspace(t *testing.T) {
	v := Linspace(0, 10, 5)
	require.Len(t, v, 5)
	assert.Equal(t, 0.0, v[0])
	assert.Equal(t, 10.0, v[4])
	for i := 1; i < len(v); i++ {
		assert.InDelta(t, 2.5, v[i]-v[i-1], 1e-12)
	}

	t.Run("EndpointExact", func(t *testing.T) {
		v := Linspace(0, 1, 7)
		assert.Equal(t, 1.0, v[len(v)-1])
	})

	t.Run("TooFew", func(t *testing.T) {
		assert.Nil(t, Linspace(0, 1, 1))
	})
}

func TestTriangleArea_Degenerate(t *testing.T) {
	// Collinear points span no area
	area, err := TriangleArea(Point{0, 0, 0}, Point{1, 1, 1}, Point{2, 2, 2}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(area) > 1e-14 {
		t.Errorf("collinear triangle area = %g, want 0", area)
	}
}
