package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// topSpan measures the X extent of all vertices at the top of the wedge.
func topSpan(m Mesh, height float64) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, t := range m.Triangles {
		for _, v := range t.V {
			if math.Abs(v.Y-height) > 1e-9 {
				continue
			}
			if v.X < min {
				min = v.X
			}
			if v.X > max {
				max = v.X
			}
		}
	}
	return min, max
}

func TestBuildWedgeTopSpan(t *testing.T) {
	length, depth, height := 600.0, 90.0, 35.0
	angle := 71.0

	m := BuildWedge(length, depth, height, angle)
	require.Equal(t, 12, m.TriangleCount(), "six quads, two triangles each")

	offset := height / math.Tan(angle*math.Pi/180)
	minX, maxX := topSpan(m, height)
	assert.InDelta(t, length-2*offset, maxX-minX, 1e-9, "top span is length minus both insets")
	assert.InDelta(t, -minX, maxX, 1e-9, "top face is centered on the length axis")
}

func TestBuildWedgeBoundingBox(t *testing.T) {
	m := BuildWedge(400, 70, 22, 60)
	min, max := m.BoundingBox()

	assert.InDelta(t, -200, min.X, 1e-9)
	assert.InDelta(t, 200, max.X, 1e-9)
	assert.InDelta(t, 0, min.Y, 1e-9)
	assert.InDelta(t, 22, max.Y, 1e-9)
	assert.InDelta(t, -35, min.Z, 1e-9)
	assert.InDelta(t, 35, max.Z, 1e-9)
}

func TestBuildWedgeNormals(t *testing.T) {
	m := BuildWedge(600, 90, 35, 71)

	var up, down, front, back int
	for _, tri := range m.Triangles {
		n := tri.Normal()
		assert.InDelta(t, 1.0, n.Length(), 1e-9, "normals are unit length")
		switch {
		case n.Y > 0.999:
			up++
		case n.Y < -0.999:
			down++
		case n.Z > 0.999:
			front++
		case n.Z < -0.999:
			back++
		}
	}
	assert.Equal(t, 2, up, "top face triangles point up")
	assert.Equal(t, 2, down, "bottom face triangles point down")
	assert.Equal(t, 2, front)
	assert.Equal(t, 2, back)

	// The four remaining triangles are the angled ends; their normals tilt
	// upward because the cut slants inward toward the top.
	for _, tri := range m.Triangles {
		n := tri.Normal()
		if math.Abs(n.X) > 0.1 {
			assert.Greater(t, n.Y, 0.0, "end face normals tilt upward")
		}
	}
}

func TestBuildWedgeDegenerateAngleClamped(t *testing.T) {
	// A zero angle would make the inset infinite; the builder clamps it.
	m := BuildWedge(600, 90, 35, 0)
	for _, tri := range m.Triangles {
		for _, v := range tri.V {
			assert.False(t, math.IsInf(v.X, 0) || math.IsNaN(v.X), "vertices stay finite")
		}
	}
	// The cap limits the inset to half the length: a full triangular wedge.
	minX, maxX := topSpan(m, 35)
	assert.InDelta(t, 0, maxX-minX, 1e-9, "fully tapered top collapses to a point span")
}

func TestBuildWedgeSquareEndsAtNinety(t *testing.T) {
	m := BuildWedge(600, 90, 35, 90)
	minX, maxX := topSpan(m, 35)
	assert.InDelta(t, 600.0, maxX-minX, 1e-6, "a 90 degree cut leaves square ends")
}

func TestBuildWedgeTexCoordsPresent(t *testing.T) {
	m := BuildWedge(600, 90, 35, 71)
	for _, tri := range m.Triangles {
		for _, uv := range tri.UV {
			assert.GreaterOrEqual(t, uv.U, 0.0)
			assert.LessOrEqual(t, uv.U, 1.0)
			assert.GreaterOrEqual(t, uv.V, 0.0)
			assert.LessOrEqual(t, uv.V, 1.0)
		}
	}
}

func TestMeshSurfaceAreaBox(t *testing.T) {
	// At 90 degrees the wedge is a plain box with a known surface area.
	l, d, h := 100.0, 40.0, 20.0
	m := BuildWedge(l, d, h, 90)
	want := 2*(l*d) + 2*(l*h) + 2*(d*h)
	assert.InDelta(t, want, m.SurfaceArea(), 1e-6)
}
