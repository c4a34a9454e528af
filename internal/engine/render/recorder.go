package render

import (
	"github.com/Faultbox/woodland/internal/engine/xform"
	"github.com/Faultbox/woodland/pkg/math"
)

// Op identifies a recorded draw call.
type Op int

const (
	OpCube Op = iota
	OpCubeFlat
	OpCylinder
	OpDisk
	OpPrimitive
)

// Call is one recorded draw with the state it was issued under.
type Call struct {
	Op       Op
	Model    math.Mat4
	Color    Color
	Lit      bool
	Size     float32
	Cylinder Cylinder
	Disk     Disk
	Mode     Primitive
	Handle   Handle
	Count    int32
}

// Recorder is a Device that keeps every draw in memory. It is used by tests
// and by the headless dry-run mode.
type Recorder struct {
	Calls      []Call
	View       math.Mat4
	Projection math.Mat4
	Light      Light
	MaxDepth   int

	stack *xform.Stack
	color Color
	lit   bool
}

// NewRecorder returns an empty recorder with lighting enabled.
func NewRecorder() *Recorder {
	return &Recorder{stack: xform.New(8), lit: true}
}

// Reset clears recorded calls and the transform stack for a new frame.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.stack.Reset()
	r.MaxDepth = 0
}

// Transforms returns the recorder's transform stack.
func (r *Recorder) Transforms() *xform.Stack {
	return r.stack
}

// Count returns how many calls of the given op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (r *Recorder) PushTransform(m math.Mat4) {
	r.stack.Push(m)
	if d := r.stack.Depth(); d > r.MaxDepth {
		r.MaxDepth = d
	}
}

func (r *Recorder) PopTransform() error { return r.stack.Pop() }

func (r *Recorder) SetMaterialColor(c Color) { r.color = c }

func (r *Recorder) DrawSolidCube(size float32) {
	r.record(Call{Op: OpCube, Size: size})
}

func (r *Recorder) DrawSolidCubeFlat(size float32) {
	r.record(Call{Op: OpCubeFlat, Size: size})
}

func (r *Recorder) DrawSolidCylinder(c Cylinder) {
	r.record(Call{Op: OpCylinder, Cylinder: c})
}

func (r *Recorder) DrawSolidDisk(d Disk) {
	r.record(Call{Op: OpDisk, Disk: d})
}

func (r *Recorder) DrawPrimitive(mode Primitive, h Handle, count int32) {
	r.record(Call{Op: OpPrimitive, Mode: mode, Handle: h, Count: count})
}

func (r *Recorder) SetViewMatrix(m math.Mat4)       { r.View = m }
func (r *Recorder) SetProjectionMatrix(m math.Mat4) { r.Projection = m }
func (r *Recorder) SetLight(l Light)                { r.Light = l }
func (r *Recorder) EnableLighting()                 { r.lit = true }
func (r *Recorder) DisableLighting()                { r.lit = false }

func (r *Recorder) record(c Call) {
	model, err := r.stack.Current()
	if err != nil {
		model = math.Identity()
	}
	c.Model = model
	c.Color = r.color
	c.Lit = r.lit
	r.Calls = append(r.Calls, c)
}
