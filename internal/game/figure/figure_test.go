package figure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/woodland/internal/engine/mesh"
	"github.com/Faultbox/woodland/internal/engine/render"
	"github.com/Faultbox/woodland/pkg/math"
)

func TestDrawIsUnlitAndBalanced(t *testing.T) {
	rec := render.NewRecorder()
	f := New(render.Handle(3))

	require.NoError(t, f.Draw(rec))

	assert.Equal(t, 0, rec.Transforms().Depth())
	assert.Equal(t, 3, rec.Count(render.OpPrimitive))
	assert.Equal(t, 1, rec.Count(render.OpCube))
	for _, c := range rec.Calls {
		assert.False(t, c.Lit)
	}

	rec.DrawSolidCube(1)
	assert.True(t, rec.Calls[len(rec.Calls)-1].Lit, "lighting restored")
}

func TestDrawColoursInOrder(t *testing.T) {
	rec := render.NewRecorder()
	require.NoError(t, New(render.Handle(3)).Draw(rec))

	var colours []render.Color
	for _, c := range rec.Calls {
		if c.Op == render.OpPrimitive {
			assert.Equal(t, render.Triangles, c.Mode)
			assert.Equal(t, render.Handle(3), c.Handle)
			assert.Equal(t, int32(TriangleVertexCount), c.Count)
			colours = append(colours, c.Color)
		}
	}
	assert.Equal(t, []render.Color{Green, Blue, Red}, colours)
}

func TestToggleRaisesHead(t *testing.T) {
	f := New(render.Handle(1))

	low := render.NewRecorder()
	require.NoError(t, f.Draw(low))
	f.Toggle()
	high := render.NewRecorder()
	require.NoError(t, f.Draw(high))

	moved := high.Calls[0].Model.Translation().Distance(low.Calls[0].Model.Translation())
	assert.InDelta(t, 5, moved, 1e-4)
	// Other triangles stay put.
	assert.Equal(t, low.Calls[1].Model, high.Calls[1].Model)
}

func TestBoundsEncloseFigure(t *testing.T) {
	const eps = 1e-4
	tri := mesh.Triangle()
	cube := mesh.Cube()
	for _, raised := range []bool{false, true} {
		// Facing cancels the quarter turn in Root, keeping the box axis aligned.
		f := &Figure{Facing: -1.57, Raised: raised}
		lo := f.Bounds().TransformPoint(math.Vec3{X: -0.5, Y: -0.5, Z: -0.5})
		hi := f.Bounds().TransformPoint(math.Vec3{X: 0.5, Y: 0.5, Z: 0.5})

		rec := render.NewRecorder()
		require.NoError(t, f.Draw(rec))

		for _, call := range rec.Calls {
			m := tri
			if call.Op == render.OpCube {
				m = cube
			}
			for i := 0; i < m.VertexCount(); i++ {
				p := call.Model.TransformPoint(m.Position(i))
				assert.True(t,
					p.X >= lo.X-eps && p.X <= hi.X+eps &&
						p.Y >= lo.Y-eps && p.Y <= hi.Y+eps &&
						p.Z >= lo.Z-eps && p.Z <= hi.Z+eps,
					"raised %v: point %v outside [%v, %v]", raised, p, lo, hi)
			}
		}
	}
}
