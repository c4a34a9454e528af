package vehicle

import "github.com/Faultbox/woodland/pkg/math"

// BodyCells returns the voxel layout of the body, relative to BodyTransform.
// Each cell is a unit flat cube at (column, height, row).
func BodyCells() []math.Vec3 {
	cells := make([]math.Vec3, 0, 56)

	// floor
	for col := 0; col < Width; col++ {
		for row := 0; row < Length; row++ {
			cells = append(cells, cell(col, 1, row))
		}
	}
	// rear roof
	for col := 0; col < Width; col++ {
		cells = append(cells, cell(col, 2, 7))
	}
	// roof top
	for col := 0; col < Width; col++ {
		cells = append(cells, cell(col, 3, 6))
	}
	// front pillars
	for col := 1; col <= 2; col++ {
		cells = append(cells, cell(col, 2, 0))
	}
	// side rails
	for _, col := range []int{0, Width - 1} {
		for row := 0; row < 7; row++ {
			cells = append(cells, cell(col, 2, row))
		}
	}
	return cells
}

func cell(col, y, row int) math.Vec3 {
	return math.Vec3{X: float32(col), Y: float32(y), Z: float32(row)}
}
