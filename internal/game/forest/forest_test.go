package forest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/woodland/pkg/math"
)

// scripted replays a fixed pattern of draws.
type scripted struct {
	values []float32
	next   int
}

func (s *scripted) Float32() float32 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestGenerateSameSeedSameForest(t *testing.T) {
	p := DefaultParams()

	a := Generate(p, NewSource(1234))
	b := Generate(p, NewSource(1234))

	require.NotEmpty(t, a)
	assert.Equal(t, a, b)
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	p := DefaultParams()
	assert.NotEqual(t, Generate(p, NewSource(1)), Generate(p, NewSource(2)))
}

func TestGenerateEveryEvenCell(t *testing.T) {
	// Inclusion draw 0 always passes; height draw 0.05 * 20 gives h = 1.
	src := &scripted{values: []float32{0, 0.05}}
	p := Params{Grid: Square(5), Chance: 0.05, MaxHeight: 20}

	trees := Generate(p, src)

	// Even rows and columns in [-5, 5): -4, -2, 0, 2, 4.
	require.Len(t, trees, 25)
	seen := make(map[[2]int]bool)
	for _, tr := range trees {
		assert.Zero(t, tr.Row%2)
		assert.Zero(t, tr.Col%2)
		seen[[2]int{tr.Row, tr.Col}] = true

		assert.InDelta(t, 1.0, tr.Height, 1e-6)
		assert.InDelta(t, 1.0/8, tr.Trunk.Model.Translation().Y, 1e-6)
		for i, want := range []float64{2.0 / 8, 3.0 / 8, 4.0 / 8} {
			assert.InDelta(t, want, tr.Leaves[i].Model.Translation().Y, 1e-6, "leaf %d", i)
		}
	}
	assert.Len(t, seen, 25)
}

func TestGenerateSkipsWhenDrawAtChance(t *testing.T) {
	src := &scripted{values: []float32{0.05}}
	trees := Generate(Params{Grid: Square(10), Chance: 0.05, MaxHeight: 20}, src)
	assert.Empty(t, trees)
	// One draw per even cell, none for heights.
	assert.Equal(t, 100, src.next)
}

func TestNewTreeShape(t *testing.T) {
	tr := NewTree(6, -4, 16)

	trunk := tr.Trunk.Model
	assert.Equal(t, TrunkColor, tr.Trunk.Color)
	assert.InDelta(t, 6, trunk.Translation().X, 1e-6)
	assert.InDelta(t, -4, trunk.Translation().Z, 1e-6)
	assert.InDelta(t, 2, trunk[5], 1e-6, "trunk height scale")

	widths := []float32{2, 1.5, 1}
	for i, leaf := range tr.Leaves {
		assert.Equal(t, LeafColor, leaf.Color)
		assert.InDelta(t, widths[i], leaf.Model[0], 1e-6)
		assert.InDelta(t, widths[i], leaf.Model[10], 1e-6)
		assert.InDelta(t, float32(i+2)*2, leaf.Model.Translation().Y, 1e-6)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Tree{NewTree(0, 0, 3), NewTree(2, 2, 9), NewTree(4, 4, 1)})
	assert.Equal(t, Stats{Trees: 3, Tallest: 9}, s)
}

func TestBoundsEncloseParts(t *testing.T) {
	tree := NewTree(4, -2, 8)
	b := tree.Bounds()

	lo := b.TransformPoint(math.Vec3{X: -0.5, Y: -0.5, Z: -0.5})
	hi := b.TransformPoint(math.Vec3{X: 0.5, Y: 0.5, Z: 0.5})

	// Trunk bottom and top leaf top for h = 8.
	assert.InDelta(t, 0.5, lo.Y, 1e-5)
	assert.InDelta(t, 4.5, hi.Y, 1e-5)
	assert.InDelta(t, 3, lo.X, 1e-5)
	assert.InDelta(t, -1, hi.Z, 1e-5)
}
