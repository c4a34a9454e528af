// Package forest generates the static tree scenery.
package forest

import (
	"math/rand"
	"time"

	"github.com/Faultbox/woodland/internal/engine/render"
	"github.com/Faultbox/woodland/pkg/math"
)

var (
	// TrunkColor is the bark brown.
	TrunkColor = render.Color{R: 0.38, G: 0.20, B: 0.07}
	// LeafColor is shared by every foliage layer.
	LeafColor = render.Color{R: 0, G: 1, B: 0}
)

// leafWidths taper the canopy from the bottom layer up.
var leafWidths = [3]float32{2, 1.5, 1}

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float32() float32
}

// NewSource returns a seeded source. A zero seed seeds from the wall clock.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Grid bounds the generated cells. Rows and columns are half-open: [Min, Max).
type Grid struct {
	RowMin, RowMax int
	ColMin, ColMax int
}

// Square returns the grid [-half, half) on both axes.
func Square(half int) Grid {
	return Grid{RowMin: -half, RowMax: half, ColMin: -half, ColMax: half}
}

// Params controls tree placement.
type Params struct {
	Grid      Grid
	Chance    float32 // per-cell inclusion probability
	MaxHeight float32 // heights are uniform in [0, MaxHeight)
}

// DefaultParams returns the canonical forest: a 100x100 grid, 5% density.
func DefaultParams() Params {
	return Params{
		Grid:      Square(50),
		Chance:    0.05,
		MaxHeight: 20,
	}
}

// Part is one drawable cube with its baked model matrix.
type Part struct {
	Model math.Mat4
	Color render.Color
}

// Tree is a trunk with three stacked foliage layers.
type Tree struct {
	Row, Col int
	Height   float32
	Trunk    Part
	Leaves   [3]Part
}

// NewTree builds the parts of a tree of height h standing on cell (row, col).
func NewTree(row, col int, h float32) Tree {
	x, z := float32(row), float32(col)
	seg := h / 8

	t := Tree{
		Row:    row,
		Col:    col,
		Height: h,
		Trunk: Part{
			Model: math.Translate(x, seg, z).Mul(math.Scale(1, seg, 1)),
			Color: TrunkColor,
		},
	}
	for i, w := range leafWidths {
		lift := float32(i+2) * seg
		t.Leaves[i] = Part{
			Model: math.Translate(x, lift, z).Mul(math.Scale(w, seg, w)),
			Color: LeafColor,
		}
	}
	return t
}

// Parts returns the trunk followed by the leaves, in draw order.
func (t Tree) Parts() [4]Part {
	return [4]Part{t.Trunk, t.Leaves[0], t.Leaves[1], t.Leaves[2]}
}

// Bounds returns a unit-cube transform enclosing every part of the tree.
func (t Tree) Bounds() math.Mat4 {
	seg := t.Height / 8
	width := leafWidths[0]
	return math.Translate(float32(t.Row), 2.5*seg, float32(t.Col)).Mul(math.Scale(width, 4*seg, width))
}

// Generate walks every even (row, col) cell and plants a tree when a draw
// falls under the chance. The height is drawn only for planted cells.
func Generate(p Params, src Source) []Tree {
	var trees []Tree
	for row := p.Grid.RowMin; row < p.Grid.RowMax; row++ {
		if row%2 != 0 {
			continue
		}
		for col := p.Grid.ColMin; col < p.Grid.ColMax; col++ {
			if col%2 != 0 {
				continue
			}
			if src.Float32() >= p.Chance {
				continue
			}
			trees = append(trees, NewTree(row, col, src.Float32()*p.MaxHeight))
		}
	}
	return trees
}

// Stats summarises a generated forest for logging.
type Stats struct {
	Trees   int
	Tallest float32
}

// Summarize computes Stats for trees.
func Summarize(trees []Tree) Stats {
	s := Stats{Trees: len(trees)}
	for _, t := range trees {
		if t.Height > s.Tallest {
			s.Tallest = t.Height
		}
	}
	return s
}
