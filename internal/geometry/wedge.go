package geometry

import "math"

// MinCutAngle is the smallest cut angle (degrees) the builder accepts.
// Angles at or near zero would push the end-face inset toward infinity,
// so anything below this is clamped before the tangent is taken. The
// inset itself is additionally capped at half the piece length, which
// turns the piece into a full triangular wedge at worst.
const MinCutAngle = 0.5

// BuildWedge builds the mesh for a single tree layer: a hexahedral slab
// spanning length along X and depth along Z, sitting on the Y=0 plane,
// with both end faces inset symmetrically at the top to model two
// opposing angled saw cuts. The piece is centered on the X and Z axes.
//
// The builder is a pure function: any input change requires a fresh call,
// and the returned mesh holds no reference to shared state.
func BuildWedge(length, depth, height, cutAngleDeg float64) Mesh {
	offset := cutOffset(length, height, cutAngleDeg)

	halfL := length / 2
	halfD := depth / 2
	halfTop := halfL - offset

	// Bottom corners.
	b0 := Vec3{-halfL, 0, -halfD}
	b1 := Vec3{halfL, 0, -halfD}
	b2 := Vec3{halfL, 0, halfD}
	b3 := Vec3{-halfL, 0, halfD}

	// Top corners, inset by the cut offset on both ends.
	t0 := Vec3{-halfTop, height, -halfD}
	t1 := Vec3{halfTop, height, -halfD}
	t2 := Vec3{halfTop, height, halfD}
	t3 := Vec3{-halfTop, height, halfD}

	// Texture fractions so the grain stays continuous across the top edge.
	topU0 := offset / length
	topU1 := 1 - topU0

	m := Mesh{Triangles: make([]Triangle, 0, 12)}

	// Bottom and top: grain runs lengthwise (U along X).
	m.appendQuad(
		[4]Vec3{b0, b1, b2, b3},
		[4]TexCoord{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	)
	m.appendQuad(
		[4]Vec3{t0, t3, t2, t1},
		[4]TexCoord{{topU0, 0}, {topU0, 1}, {topU1, 1}, {topU1, 0}},
	)

	// Front (+Z) and back (-Z): grain lengthwise, V up the slab.
	m.appendQuad(
		[4]Vec3{b3, b2, t2, t3},
		[4]TexCoord{{0, 0}, {1, 0}, {topU1, 1}, {topU0, 1}},
	)
	m.appendQuad(
		[4]Vec3{b1, b0, t0, t1},
		[4]TexCoord{{1, 0}, {0, 0}, {topU0, 1}, {topU1, 1}},
	)

	// Angled end faces: grain runs across the cut (U along depth).
	m.appendQuad(
		[4]Vec3{b2, b1, t1, t2},
		[4]TexCoord{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	)
	m.appendQuad(
		[4]Vec3{b0, b3, t3, t0},
		[4]TexCoord{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	)

	return m
}

// cutOffset returns the horizontal inset per end caused by a saw cut at
// the given angle through a slab of the given height. The result is
// always finite and never exceeds half the length.
func cutOffset(length, height, cutAngleDeg float64) float64 {
	angle := cutAngleDeg
	if angle < MinCutAngle {
		angle = MinCutAngle
	}
	if angle > 90 {
		angle = 90
	}

	offset := height / math.Tan(angle*math.Pi/180)
	if offset > length/2 {
		offset = length / 2
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// appendQuad emits a quad as two triangles. Corners wind counter-clockwise
// seen from outside the solid.
func (m *Mesh) appendQuad(v [4]Vec3, uv [4]TexCoord) {
	m.Triangles = append(m.Triangles,
		Triangle{V: [3]Vec3{v[0], v[1], v[2]}, UV: [3]TexCoord{uv[0], uv[1], uv[2]}},
		Triangle{V: [3]Vec3{v[0], v[2], v[3]}, UV: [3]TexCoord{uv[0], uv[2], uv[3]}},
	)
}
