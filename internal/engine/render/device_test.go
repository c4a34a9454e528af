package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/woodland/internal/engine/xform"
	"github.com/Faultbox/woodland/pkg/math"
)

func TestWithTransformPopsOnError(t *testing.T) {
	rec := NewRecorder()
	boom := errors.New("boom")

	err := WithTransform(rec, math.Translate(1, 2, 3), func() error {
		rec.DrawSolidCube(1)
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, rec.Transforms().Depth())
	require.Len(t, rec.Calls, 1)
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, rec.Calls[0].Model.Translation())
}

func TestWithTransformReportsUnderflow(t *testing.T) {
	rec := NewRecorder()

	err := WithTransform(rec, math.Identity(), func() error {
		return rec.PopTransform() // pops the scope's own entry
	})

	assert.ErrorIs(t, err, xform.ErrUnderflow)
}

func TestRecorderCapturesState(t *testing.T) {
	rec := NewRecorder()
	green := Color{0, 1, 0}

	rec.SetMaterialColor(green)
	rec.DisableLighting()
	rec.DrawPrimitive(Triangles, Handle(7), 3)
	rec.EnableLighting()
	rec.DrawSolidCubeFlat(1)

	require.Len(t, rec.Calls, 2)
	assert.Equal(t, green, rec.Calls[0].Color)
	assert.False(t, rec.Calls[0].Lit)
	assert.Equal(t, Handle(7), rec.Calls[0].Handle)
	assert.True(t, rec.Calls[1].Lit)
	// Nothing pushed: draws land in the world frame.
	assert.Equal(t, math.Identity(), rec.Calls[1].Model)
	assert.Equal(t, 1, rec.Count(OpCubeFlat))
}

func TestRecorderNestedScopes(t *testing.T) {
	rec := NewRecorder()

	err := WithTransform(rec, math.Translate(10, 0, 0), func() error {
		return WithTransform(rec, math.Translate(0, 5, 0), func() error {
			rec.DrawSolidCube(1)
			return nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 2, rec.MaxDepth)
	assert.Equal(t, math.Vec3{X: 10, Y: 5}, rec.Calls[0].Model.Translation())
}
