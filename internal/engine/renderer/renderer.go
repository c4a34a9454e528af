// Package renderer implements render.Device on OpenGL 4.1 core.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/woodland/internal/engine/mesh"
	"github.com/Faultbox/woodland/internal/engine/render"
	"github.com/Faultbox/woodland/internal/engine/renderer/shaders"
	"github.com/Faultbox/woodland/internal/engine/shader"
	"github.com/Faultbox/woodland/internal/engine/xform"
	"github.com/Faultbox/woodland/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor render.Color
	Ambient    render.Color
}

// DefaultConfig returns a sky-blue clear colour and soft ambient light.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:      width,
		Height:     height,
		ClearColor: render.Color{R: 0.53, G: 0.75, B: 0.92},
		Ambient:    render.Color{R: 0.25, G: 0.25, B: 0.25},
	}
}

// gpuMesh is geometry uploaded to a vertex array.
type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// Renderer draws through a single solid-colour program.
// IMPORTANT: must be created AFTER the OpenGL context!
type Renderer struct {
	config  Config
	program *shader.Program
	stack   *xform.Stack

	view       math.Mat4
	projection math.Mat4
	light      render.Light
	color      render.Color
	lit        bool

	cube      *gpuMesh
	cubeFlat  *gpuMesh
	cylinders map[render.Cylinder]*gpuMesh
	disks     map[render.Disk]*gpuMesh
	handles   []*gpuMesh // Handle n is handles[n-1]

	log *zap.Logger
}

// New initialises OpenGL and compiles the shader.
func New(cfg Config, log *zap.Logger) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	gl.ClearColor(c.R, c.G, c.B, 1)

	prog, err := shader.Compile(shaders.SolidVertexShader, shaders.SolidFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("solid shader: %w", err)
	}
	if err := prog.Require("uMVP", "uNormalMatrix", "uColor", "uLit"); err != nil {
		prog.Delete()
		return nil, err
	}

	r := &Renderer{
		config:     cfg,
		program:    prog,
		stack:      xform.New(16),
		view:       math.Identity(),
		projection: math.Identity(),
		lit:        true,
		cylinders:  make(map[render.Cylinder]*gpuMesh),
		disks:      make(map[render.Disk]*gpuMesh),
		log:        log,
	}
	r.cube = upload(mesh.Cube())
	r.cubeFlat = upload(mesh.CubeFlat())
	r.Resize(cfg.Width, cfg.Height)

	log.Debug("shader program created", zap.Uint32("program", prog.ID))
	return r, nil
}

// CreateMesh uploads geometry for DrawPrimitive and returns its handle.
func (r *Renderer) CreateMesh(m mesh.Mesh) render.Handle {
	r.handles = append(r.handles, upload(m))
	h := render.Handle(len(r.handles))
	r.log.Debug("mesh uploaded", zap.Uint32("handle", uint32(h)), zap.Int("vertices", m.VertexCount()))
	return h
}

// Close frees GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	all := append([]*gpuMesh{r.cube, r.cubeFlat}, r.handles...)
	for _, m := range r.cylinders {
		all = append(all, m)
	}
	for _, m := range r.disks {
		all = append(all, m)
	}
	for _, m := range all {
		if m != nil {
			m.delete()
		}
	}
	r.program.Delete()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Begin clears the frame and resets per-frame state.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.stack.Reset()
	r.lit = true
	r.program.Use()
}

// Transforms returns the renderer's transform stack.
func (r *Renderer) Transforms() *xform.Stack {
	return r.stack
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func (r *Renderer) PushTransform(m math.Mat4) { r.stack.Push(m) }

func (r *Renderer) PopTransform() error { return r.stack.Pop() }

func (r *Renderer) SetMaterialColor(c render.Color) { r.color = c }

func (r *Renderer) SetViewMatrix(m math.Mat4) { r.view = m }

func (r *Renderer) SetProjectionMatrix(m math.Mat4) { r.projection = m }

func (r *Renderer) SetLight(l render.Light) { r.light = l }

func (r *Renderer) EnableLighting() { r.lit = true }

func (r *Renderer) DisableLighting() { r.lit = false }

func (r *Renderer) DrawSolidCube(size float32) {
	r.drawElements(r.cube, math.Scale(size, size, size))
}

func (r *Renderer) DrawSolidCubeFlat(size float32) {
	r.drawArrays(r.cubeFlat, gl.TRIANGLES, r.cubeFlat.count, math.Scale(size, size, size))
}

func (r *Renderer) DrawSolidCylinder(c render.Cylinder) {
	m, ok := r.cylinders[c]
	if !ok {
		m = upload(mesh.Cylinder(c.Base, c.Top, c.Height, c.Slices, c.Stacks))
		r.cylinders[c] = m
	}
	r.drawElements(m, math.Identity())
}

func (r *Renderer) DrawSolidDisk(d render.Disk) {
	m, ok := r.disks[d]
	if !ok {
		m = upload(mesh.Disk(d.Inner, d.Outer, d.Slices, d.Rings))
		r.disks[d] = m
	}
	r.drawElements(m, math.Identity())
}

func (r *Renderer) DrawPrimitive(mode render.Primitive, h render.Handle, count int32) {
	if h == 0 || int(h) > len(r.handles) {
		r.log.Warn("draw with unknown mesh handle", zap.Uint32("handle", uint32(h)))
		return
	}
	r.drawArrays(r.handles[h-1], glMode(mode), count, math.Identity())
}

func glMode(p render.Primitive) uint32 {
	switch p {
	case render.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case render.Lines:
		return gl.LINES
	default:
		return gl.TRIANGLES
	}
}

// setUniforms uploads the matrices and material for the next draw.
func (r *Renderer) setUniforms(local math.Mat4) {
	model, err := r.stack.Current()
	if err != nil {
		model = math.Identity()
	}
	model = model.Mul(local)

	p := r.program
	p.SetMat4("uMVP", r.projection.Mul(r.view).Mul(model))
	p.SetMat3("uNormalMatrix", model.NormalMatrix())
	p.SetVec3("uColor", r.color.R, r.color.G, r.color.B)
	p.SetBool("uLit", r.lit)
	d, lc, a := r.light.Direction, r.light.Color, r.config.Ambient
	p.SetVec3("uLightDir", d.X, d.Y, d.Z)
	p.SetVec3("uLightColor", lc.R, lc.G, lc.B)
	p.SetVec3("uAmbient", a.R, a.G, a.B)
}

func (r *Renderer) drawArrays(m *gpuMesh, mode uint32, count int32, local math.Mat4) {
	r.setUniforms(local)
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(mode, 0, count)
	gl.BindVertexArray(0)
}

func (r *Renderer) drawElements(m *gpuMesh, local math.Mat4) {
	r.setUniforms(local)
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// upload creates a VAO with position (location 0) and normal (location 1).
func upload(m mesh.Mesh) *gpuMesh {
	g := &gpuMesh{count: int32(m.Count())}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	stride := int32(mesh.Stride * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	if len(m.Indices) > 0 {
		gl.GenBuffers(1, &g.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return g
}

func (g *gpuMesh) delete() {
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
}

var (
	_ render.Device  = (*Renderer)(nil)
	_ render.Stacked = (*Renderer)(nil)
)
