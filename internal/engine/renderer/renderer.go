// Package renderer draws viewer frames with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/lighting"
	"github.com/Faultbox/meshview/internal/engine/mesh"
	"github.com/Faultbox/meshview/internal/engine/shader"
	"github.com/Faultbox/meshview/internal/viewer"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// gpuMesh is the uploaded form of a mesh.
type gpuMesh struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
	mode  uint32
}

// Renderer draws the scene into an offscreen target.
type Renderer struct {
	log    *zap.Logger
	target *target

	lit   *shader.Program
	debug *shader.Program

	meshes map[*mesh.Mesh]*gpuMesh
	box    *gpuMesh
	lights *lighting.PointLightBuffer
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created and
// gl.Init has run!
func New(cfg Config, log *zap.Logger) (*Renderer, error) {
	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{
		log:    log,
		meshes: make(map[*mesh.Mesh]*gpuMesh),
		lights: lighting.NewPointLightBuffer(),
	}

	var err error
	if r.target, err = newTarget(int32(cfg.Width), int32(cfg.Height)); err != nil {
		return nil, fmt.Errorf("scene target: %w", err)
	}
	if r.lit, err = shader.NewProgram(shader.ColorVertexShader, shader.ColorFragmentShader); err != nil {
		return nil, fmt.Errorf("color program: %w", err)
	}
	if r.debug, err = shader.NewProgram(shader.DebugVertexShader, shader.DebugFragmentShader); err != nil {
		r.lit.Delete()
		r.target.delete()
		return nil, fmt.Errorf("debug program: %w", err)
	}

	box := mesh.BoundsWireframe(mesh.Bounds{})
	r.box = upload(box, sequence(len(box)/3), gl.LINES, gl.DYNAMIC_DRAW)

	log.Debug("scene target created", zap.Int("width", cfg.Width), zap.Int("height", cfg.Height))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for m, g := range r.meshes {
		g.delete()
		delete(r.meshes, m)
	}
	if r.box != nil {
		r.box.delete()
	}
	r.lit.Delete()
	r.debug.Delete()
	r.target.delete()
}

// Resize reallocates the scene target in pixels.
func (r *Renderer) Resize(width, height int) {
	r.target.resize(int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Texture returns the color texture holding the last drawn frame.
func (r *Renderer) Texture() uint32 {
	return r.target.color
}

// Upload copies a mesh's buffers to the GPU. Meshes are uploaded once;
// their positions and indices never change afterwards.
func (r *Renderer) Upload(m *mesh.Mesh) error {
	if _, ok := r.meshes[m]; ok {
		return nil
	}
	if len(m.Positions) == 0 || len(m.Indices) == 0 {
		return fmt.Errorf("mesh has no geometry (%d floats, %d indices)", len(m.Positions), len(m.Indices))
	}
	mode := uint32(gl.TRIANGLES)
	if m.Mode == mesh.Lines {
		mode = gl.LINES
	}
	r.meshes[m] = upload(m.Positions, m.Indices, mode, gl.STATIC_DRAW)
	r.log.Debug("mesh uploaded",
		zap.Stringer("mode", m.Mode),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("indices", len(m.Indices)),
	)
	return nil
}

// Draw renders one frame into the scene target. Meshes not yet uploaded
// are uploaded first.
func (r *Renderer) Draw(dl viewer.DrawList) {
	r.target.bind()
	defer r.target.unbind()

	// The GUI pass changes these between frames.
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.lights.SetLights(dl.Lights)

	for _, p := range []*shader.Program{r.lit, r.debug} {
		p.Use()
		p.SetMat4("uView", dl.View)
		p.SetMat4("uProjection", dl.Projection)
	}
	r.lit.Use()
	r.lit.SetInt("uLightCount", int32(r.lights.Count()))
	r.lit.SetVec3Array("uLightPositions", r.lights.Positions())
	r.lit.SetVec3Array("uLightColors", r.lights.Colors())

	for _, item := range dl.Items {
		r.drawItem(item)
	}

	if sel := dl.Selection; sel != nil {
		r.drawBox(sel)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) drawItem(item viewer.DrawItem) {
	if err := r.Upload(item.Mesh); err != nil {
		r.log.Warn("skipping mesh", zap.String("name", item.Name), zap.Error(err))
		return
	}
	g := r.meshes[item.Mesh]

	// The lit program needs a surface to shade.
	p := r.lit
	if item.Pass == viewer.PassDebug || g.mode == gl.LINES {
		p = r.debug
	}
	p.Use()
	p.SetMat4("uModel", item.Model)
	p.SetVec4("uColor", item.Color)

	switch item.Cull {
	case viewer.CullBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	case viewer.CullFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	default:
		gl.Disable(gl.CULL_FACE)
	}
	if item.LineWidth > 0 {
		gl.LineWidth(item.LineWidth)
	}

	gl.BindVertexArray(g.vao)
	gl.DrawElements(g.mode, g.count, gl.UNSIGNED_INT, nil)

	gl.Disable(gl.CULL_FACE)
	gl.LineWidth(1)
}

func (r *Renderer) drawBox(sel *viewer.SelectionBox) {
	vertices := mesh.BoundsWireframe(sel.Bounds)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.box.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, unsafe.Pointer(&vertices[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.debug.Use()
	r.debug.SetMat4("uModel", sel.Model)
	r.debug.SetVec4("uColor", sel.Color)
	gl.BindVertexArray(r.box.vao)
	gl.DrawElements(gl.LINES, r.box.count, gl.UNSIGNED_INT, nil)
}

// ReadPixels returns the last drawn frame as RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	return r.target.readPixels(), int(r.target.width), int(r.target.height)
}

func upload(positions []float32, indices []uint32, mode, usage uint32) *gpuMesh {
	g := &gpuMesh{count: int32(len(indices)), mode: mode}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, unsafe.Pointer(&positions[0]), usage)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return g
}

func (g *gpuMesh) delete() {
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteBuffers(1, &g.ebo)
}

func sequence(n int) []uint32 {
	s := make([]uint32, n)
	for i := range s {
		s[i] = uint32(i)
	}
	return s
}
