// Package geometry builds renderable triangle meshes for the tree layers.
// All meshes are plain value data: positions in mm, texture coordinates in
// [0,1]. Nothing here depends on a texture being loaded or a renderer
// being attached.
package geometry

import "math"

// Vec3 is a 3D point or vector in mm.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns v scaled to unit length, or the zero vector if v is zero.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// TexCoord is a 2D texture coordinate.
type TexCoord struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
}

// Triangle is one mesh face with per-vertex texture coordinates.
// Vertices wind counter-clockwise seen from outside the solid.
type Triangle struct {
	V  [3]Vec3     `json:"v"`
	UV [3]TexCoord `json:"uv"`
}

// Normal returns the unit flat-shading normal of the triangle.
// Faces meet at sharp edges, so no smoothing is applied.
func (t Triangle) Normal() Vec3 {
	return t.V[1].Sub(t.V[0]).Cross(t.V[2].Sub(t.V[0])).Normalized()
}

// Area returns the triangle's surface area in square mm.
func (t Triangle) Area() float64 {
	return t.V[1].Sub(t.V[0]).Cross(t.V[2].Sub(t.V[0])).Length() / 2
}

// Mesh is a triangle soup describing one solid or an assembly of solids.
type Mesh struct {
	Triangles []Triangle `json:"triangles"`
}

// TriangleCount returns the number of triangles in the mesh.
func (m Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// IsEmpty reports whether the mesh has no geometry.
func (m Mesh) IsEmpty() bool {
	return len(m.Triangles) == 0
}

// SurfaceArea returns the total surface area in square mm.
func (m Mesh) SurfaceArea() float64 {
	var total float64
	for _, t := range m.Triangles {
		total += t.Area()
	}
	return total
}

// BoundingBox returns the min and max corners of the mesh.
func (m Mesh) BoundingBox() (min, max Vec3) {
	if len(m.Triangles) == 0 {
		return Vec3{}, Vec3{}
	}
	min = m.Triangles[0].V[0]
	max = min
	for _, t := range m.Triangles {
		for _, v := range t.V {
			if v.X < min.X {
				min.X = v.X
			}
			if v.Y < min.Y {
				min.Y = v.Y
			}
			if v.Z < min.Z {
				min.Z = v.Z
			}
			if v.X > max.X {
				max.X = v.X
			}
			if v.Y > max.Y {
				max.Y = v.Y
			}
			if v.Z > max.Z {
				max.Z = v.Z
			}
		}
	}
	return min, max
}

// Translate returns a copy of the mesh shifted by the given offset.
func (m Mesh) Translate(offset Vec3) Mesh {
	out := Mesh{Triangles: make([]Triangle, len(m.Triangles))}
	for i, t := range m.Triangles {
		nt := t
		for j := range nt.V {
			nt.V[j] = nt.V[j].Add(offset)
		}
		out.Triangles[i] = nt
	}
	return out
}

// RotateY90 returns a copy of the mesh rotated a quarter turn about the
// vertical axis. Texture coordinates are unchanged.
func (m Mesh) RotateY90() Mesh {
	out := Mesh{Triangles: make([]Triangle, len(m.Triangles))}
	for i, t := range m.Triangles {
		nt := t
		for j, v := range nt.V {
			nt.V[j] = Vec3{X: v.Z, Y: v.Y, Z: -v.X}
		}
		out.Triangles[i] = nt
	}
	return out
}

// Append merges another mesh into this one.
func (m *Mesh) Append(other Mesh) {
	m.Triangles = append(m.Triangles, other.Triangles...)
}
