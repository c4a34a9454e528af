// Package mesh generates vertex data for the primitive shapes the renderer
// draws. Vertices are interleaved position and normal, 6 floats each.
package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/woodland/pkg/math"
)

// Stride is the number of floats per vertex.
const Stride = 6

// Mesh is CPU-side geometry. Indices is empty for non-indexed meshes.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / Stride
}

// Count returns how many elements a draw call should issue.
func (m Mesh) Count() int {
	if len(m.Indices) > 0 {
		return len(m.Indices)
	}
	return m.VertexCount()
}

// Position returns vertex i's position.
func (m Mesh) Position(i int) math.Vec3 {
	v := m.Vertices[i*Stride:]
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Normal returns vertex i's normal.
func (m Mesh) Normal(i int) math.Vec3 {
	v := m.Vertices[i*Stride:]
	return math.Vec3{X: v[3], Y: v[4], Z: v[5]}
}

func (m *Mesh) add(p, n math.Vec3) {
	m.Vertices = append(m.Vertices, p.X, p.Y, p.Z, n.X, n.Y, n.Z)
}

var cubeFaces = [6]struct {
	normal, u, v math.Vec3
}{
	{math.Vec3{X: 1}, math.Vec3{Z: -1}, math.Vec3{Y: 1}},
	{math.Vec3{X: -1}, math.Vec3{Z: 1}, math.Vec3{Y: 1}},
	{math.Vec3{Y: 1}, math.Vec3{X: 1}, math.Vec3{Z: -1}},
	{math.Vec3{Y: -1}, math.Vec3{X: 1}, math.Vec3{Z: 1}},
	{math.Vec3{Z: 1}, math.Vec3{X: 1}, math.Vec3{Y: 1}},
	{math.Vec3{Z: -1}, math.Vec3{X: -1}, math.Vec3{Y: 1}},
}

// CubeFlat returns a unit cube centred on the origin with one normal per
// face: 36 vertices, counter-clockwise winding.
func CubeFlat() Mesh {
	var m Mesh
	for _, f := range cubeFaces {
		c := f.normal.Scale(0.5)
		u, v := f.u.Scale(0.5), f.v.Scale(0.5)
		p00 := c.Sub(u).Sub(v)
		p10 := c.Add(u).Sub(v)
		p11 := c.Add(u).Add(v)
		p01 := c.Sub(u).Add(v)
		for _, p := range [6]math.Vec3{p00, p10, p11, p00, p11, p01} {
			m.add(p, f.normal)
		}
	}
	return m
}

// Cube returns a unit cube with eight shared corners whose normals point
// away from the centre, giving rounded shading.
func Cube() Mesh {
	var m Mesh
	for i := 0; i < 8; i++ {
		p := math.Vec3{
			X: float32(i&1) - 0.5,
			Y: float32(i>>1&1) - 0.5,
			Z: float32(i>>2&1) - 0.5,
		}
		m.add(p, p.Normalize())
	}
	m.Indices = []uint32{
		1, 3, 7, 1, 7, 5, // +X
		0, 4, 6, 0, 6, 2, // -X
		2, 6, 7, 2, 7, 3, // +Y
		0, 1, 5, 0, 5, 4, // -Y
		4, 5, 7, 4, 7, 6, // +Z
		0, 2, 3, 0, 3, 1, // -Z
	}
	return m
}

// Cylinder returns an open tube along +Y from y=0 to height, radius going
// from base to top. Caps are not generated.
func Cylinder(base, top, height float32, slices, stacks int) Mesh {
	slices, stacks = max(slices, 3), max(stacks, 1)
	var m Mesh

	// Slope of the side, for normals on a cone.
	ny := (base - top) / height
	for j := 0; j <= stacks; j++ {
		t := float32(j) / float32(stacks)
		r := base + (top-base)*t
		y := height * t
		for i := 0; i <= slices; i++ {
			a := 2 * math32.Pi * float32(i) / float32(slices)
			// Angle runs clockwise seen from +Y so side faces wind outward.
			s, c := math32.Sincos(a)
			m.add(math.Vec3{X: r * c, Y: y, Z: -r * s}, math.Vec3{X: c, Y: ny, Z: -s}.Normalize())
		}
	}

	row := uint32(slices + 1)
	for j := uint32(0); j < uint32(stacks); j++ {
		for i := uint32(0); i < uint32(slices); i++ {
			a := j*row + i
			b := a + row
			m.Indices = append(m.Indices, a, a+1, b+1, a, b+1, b)
		}
	}
	return m
}

// Disk returns a flat ring in the z=0 plane facing +Z. Inner 0 gives a
// solid disk.
func Disk(inner, outer float32, slices, rings int) Mesh {
	slices, rings = max(slices, 3), max(rings, 1)
	var m Mesh
	up := math.Vec3{Z: 1}

	for j := 0; j <= rings; j++ {
		r := inner + (outer-inner)*float32(j)/float32(rings)
		for i := 0; i <= slices; i++ {
			a := 2 * math32.Pi * float32(i) / float32(slices)
			s, c := math32.Sincos(a)
			m.add(math.Vec3{X: r * c, Y: r * s}, up)
		}
	}

	row := uint32(slices + 1)
	for j := uint32(0); j < uint32(rings); j++ {
		for i := uint32(0); i < uint32(slices); i++ {
			a := j*row + i
			b := a + row
			m.Indices = append(m.Indices, a, a+1, b+1, a, b+1, b)
		}
	}
	return m
}

// Ground returns a unit quad on the XZ plane as a 4-vertex triangle strip.
func Ground() Mesh {
	var m Mesh
	for _, p := range [4]math.Vec3{
		{X: -1, Z: -1},
		{X: -1, Z: 1},
		{X: 1, Z: -1},
		{X: 1, Z: 1},
	} {
		m.add(p, math.Up)
	}
	return m
}

// Triangle returns a single upward-pointing triangle in the XY plane.
func Triangle() Mesh {
	var m Mesh
	n := math.Vec3{Z: 1}
	m.add(math.Vec3{Y: 1}, n)
	m.add(math.Vec3{X: -1, Y: -1}, n)
	m.add(math.Vec3{X: 1, Y: -1}, n)
	return m
}

// BoxWireframe returns the 12 edges of a unit cube centred on the origin as
// 24 line vertices.
func BoxWireframe() Mesh {
	var m Mesh
	corner := func(i int) math.Vec3 {
		return math.Vec3{
			X: float32(i&1) - 0.5,
			Y: float32(i>>1&1) - 0.5,
			Z: float32(i>>2&1) - 0.5,
		}
	}
	// Edges join corners that differ in exactly one bit.
	for i := 0; i < 8; i++ {
		for _, bit := range [3]int{1, 2, 4} {
			if i&bit == 0 {
				m.add(corner(i), math.Up)
				m.add(corner(i|bit), math.Up)
			}
		}
	}
	return m
}
