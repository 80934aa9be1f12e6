// Package renderer draws generated models with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeforge/internal/engine/graphics"
	"github.com/Faultbox/cubeforge/internal/engine/renderer/shaders"
	"github.com/Faultbox/cubeforge/internal/engine/shader"
	"github.com/Faultbox/cubeforge/internal/engine/shadow"
	"github.com/Faultbox/cubeforge/internal/logger"
)

// Attribute locations by semantic, matching the shader layouts.
var attribLocations = map[graphics.Semantic]uint32{
	graphics.SemPosition: 0,
	graphics.SemNormal:   1,
	graphics.SemTexCoord: 2,
	graphics.SemColor:    3,
}

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor mgl32.Vec3
	Ambient    mgl32.Vec3
}

// Stats counts the work of the last frame.
type Stats struct {
	Nodes     int
	Culled    int
	DrawCalls int
	Triangles int
}

type vaoEntry struct {
	vao uint32
	key bufferKey
}

// bufferKey identifies the buffers a vertex array was built from. GL may
// hand a deleted buffer name out again, so the generations are part of it.
type bufferKey struct {
	vb, ib       graphics.Handle
	vbGen, ibGen uint64
}

func geometryKey(g *graphics.Geometry) (bufferKey, bool) {
	var k bufferKey
	first := g.VertexBuffer(0)
	if first == nil || first.Handle() == 0 {
		return k, false
	}
	k.vb, k.vbGen = first.Handle(), first.Generation()
	if ib := g.IndexBuffer(); ib != nil {
		k.ib, k.ibGen = ib.Handle(), ib.Generation()
	}
	return k, true
}

type shadowKey struct {
	size   int
	bits   int
	linear bool
}

// Renderer handles all OpenGL rendering.
// IMPORTANT: must be created after the OpenGL context.
type Renderer struct {
	config   Config
	Settings Settings

	lit   *shader.Program
	depth *shader.Program
	line  *shader.Program

	vaos map[*graphics.Geometry]vaoEntry

	shadowMap     *shadow.Map
	shadowKey     shadowKey
	lightViewProj mgl32.Mat4

	lineVAO uint32
	lineVBO uint32

	stats Stats
	log   *zap.Logger
}

// New initializes OpenGL and compiles the programs.
func New(cfg Config, settings Settings) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		Settings: settings,
		vaos:     make(map[*graphics.Geometry]vaoEntry),
		log:      logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1)

	var err error
	if r.lit, err = shader.NewProgram("lit", shaders.LitVertexShader, shaders.LitFragmentShader); err != nil {
		return nil, err
	}
	if r.depth, err = shader.NewProgram("depth", shaders.DepthVertexShader, shaders.DepthFragmentShader); err != nil {
		r.Close()
		return nil, err
	}
	if r.line, err = shader.NewProgram("line", shaders.LineVertexShader, shaders.LineFragmentShader); err != nil {
		r.Close()
		return nil, err
	}

	gl.GenVertexArrays(1, &r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.dropVAOs(true)
	if r.shadowMap != nil {
		r.shadowMap.Destroy()
		r.shadowMap = nil
	}
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
		r.lineVAO = 0
	}
	if r.lineVBO != 0 {
		gl.DeleteBuffers(1, &r.lineVBO)
		r.lineVBO = 0
	}
	for _, p := range []*shader.Program{r.lit, r.depth, r.line} {
		if p != nil {
			p.Delete()
		}
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Aspect returns width / height.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Stats returns counters from the last Render.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// OnDeviceLost forgets every GL object name without deleting it. Vertex
// arrays are rebuilt from the restored buffers on the next draw.
func (r *Renderer) OnDeviceLost() {
	r.dropVAOs(false)
	r.shadowMap = nil
	r.shadowKey = shadowKey{}
}

// InvalidateVAOs deletes every cached vertex array. Call it after buffers
// were re-created on a live context.
func (r *Renderer) InvalidateVAOs() {
	r.dropVAOs(true)
}

// ReleaseDeviceObjects deletes the vertex arrays and the shadow map while
// the context is still valid. Both are rebuilt by the next Render.
func (r *Renderer) ReleaseDeviceObjects() {
	r.dropVAOs(true)
	if r.shadowMap != nil {
		r.shadowMap.Destroy()
		r.shadowMap = nil
	}
	r.shadowKey = shadowKey{}
}

func (r *Renderer) dropVAOs(del bool) {
	for g, e := range r.vaos {
		if del {
			gl.DeleteVertexArrays(1, &e.vao)
		}
		delete(r.vaos, g)
	}
}

// Render draws one frame: the shadow pass if enabled, then the lit pass.
func (r *Renderer) Render(scene Scene, view, proj mgl32.Mat4, eye mgl32.Vec3) {
	r.stats = Stats{}
	viewProj := proj.Mul4(view)

	var visible []Node
	cull := r.Settings.MaxOccluderTriangles > 0
	frustum := NewFrustum(viewProj)
	for _, n := range scene.Nodes {
		if n.Model == nil || n.Model.NumGeometries() == 0 {
			continue
		}
		r.stats.Nodes++
		if cull && !frustum.IntersectsBox(n.WorldBounds()) {
			r.stats.Culled++
			continue
		}
		visible = append(visible, n)
	}

	shadows := r.Settings.Shadows && r.ensureShadowMap()
	if shadows {
		r.lightViewProj = shadow.DirectionalLightMatrix(scene.LightDir.Mul(-1), scene.Bounds())
		r.shadowPass(scene.Nodes)
	}

	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	// Generated models can be open, so both sides are drawn.
	gl.Disable(gl.CULL_FACE)
	if r.Settings.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	r.lit.Use()
	r.lit.SetMat4("uViewProj", viewProj)
	r.lit.SetMat4("uLightViewProj", r.lightViewProj)
	r.lit.SetVec3("uLightDir", scene.LightDir.Normalize())
	r.lit.SetVec3("uEye", eye)
	r.lit.SetVec3("uAmbient", r.config.Ambient)
	r.lit.SetInt("uMaterialQuality", int32(r.Settings.MaterialQuality))
	r.lit.SetBool("uSpecular", r.Settings.Specular)
	r.lit.SetBool("uShadowsEnabled", shadows)
	r.lit.SetInt("uShadowKernel", int32(r.Settings.ShadowQuality.KernelRadius()))
	r.lit.SetInt("uShadowMap", 1)
	if shadows {
		r.shadowMap.BindTexture(gl.TEXTURE1)
	}

	for _, n := range visible {
		r.lit.SetMat4("uModel", n.World)
		r.lit.SetMat3("uNormalMatrix", n.World.Inv().Transpose().Mat3())
		r.lit.SetVec3("uColor", n.Color)
		grid := int32(0)
		if n.Grid {
			grid = int32(r.Settings.TextureQuality) + 1
		}
		r.lit.SetInt("uGridLevel", grid)
		r.drawModel(n.Model)
	}

	if r.Settings.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) ensureShadowMap() bool {
	key := shadowKey{
		size:   r.Settings.ShadowMapSize,
		bits:   r.Settings.ShadowQuality.DepthBits(),
		linear: r.Settings.ShadowQuality.KernelRadius() > 0,
	}
	if r.shadowMap.IsValid() && key == r.shadowKey {
		return true
	}
	if r.shadowMap != nil {
		r.shadowMap.Destroy()
		r.shadowMap = nil
	}

	sm, err := shadow.NewMap(int32(key.size), key.bits, key.linear)
	if err != nil {
		r.log.Warn("shadow map unavailable, disabling shadows", zap.Error(err))
		r.Settings.Shadows = false
		return false
	}
	r.shadowMap = sm
	r.shadowKey = key
	r.log.Debug("shadow map created",
		zap.Int("size", key.size),
		zap.Int("depth_bits", key.bits),
		zap.Bool("linear", key.linear),
	)
	return true
}

func (r *Renderer) shadowPass(nodes []Node) {
	r.shadowMap.Bind()
	r.depth.Use()
	r.depth.SetMat4("uLightViewProj", r.lightViewProj)
	for _, n := range nodes {
		if n.Model == nil {
			continue
		}
		r.depth.SetMat4("uModel", n.World)
		r.drawModel(n.Model)
	}
	r.shadowMap.Unbind()
}

func (r *Renderer) drawModel(m *graphics.Model) {
	for i := 0; i < m.NumGeometries(); i++ {
		if g := m.Geometry(i, 0); g != nil {
			r.drawGeometry(g)
		}
	}
}

func (r *Renderer) drawGeometry(g *graphics.Geometry) {
	ib := g.IndexBuffer()
	if ib == nil || ib.Handle() == 0 {
		return
	}
	mode, ok := glPrimitive(g.DrawRange().Type)
	if !ok {
		return
	}
	vao, ok := r.vao(g)
	if !ok {
		return
	}

	dr := g.DrawRange()
	indexType := uint32(gl.UNSIGNED_SHORT)
	if ib.IndexSize() == 4 {
		indexType = gl.UNSIGNED_INT
	}
	offset := gl.PtrOffset(dr.IndexStart * ib.IndexSize())

	gl.BindVertexArray(vao)
	if r.Settings.Instancing {
		gl.DrawElementsInstanced(mode, int32(dr.IndexCount), indexType, offset, 1)
	} else {
		gl.DrawElements(mode, int32(dr.IndexCount), indexType, offset)
	}
	r.stats.DrawCalls++
	r.stats.Triangles += g.PrimitiveCount()
}

// vao returns the vertex array for g, rebuilding it when the buffers were
// re-created since it was last built.
func (r *Renderer) vao(g *graphics.Geometry) (uint32, bool) {
	key, ok := geometryKey(g)
	if !ok {
		return 0, false
	}

	if e, ok := r.vaos[g]; ok {
		if e.key == key {
			return e.vao, true
		}
		gl.DeleteVertexArrays(1, &e.vao)
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	for slot := 0; slot < g.NumVertexBuffers(); slot++ {
		buf := g.VertexBuffer(slot)
		if buf == nil || buf.Handle() == 0 {
			continue
		}
		gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf.Handle()))
		for _, e := range buf.Elements() {
			loc, ok := attribLocations[e.Semantic]
			if !ok {
				continue
			}
			gl.VertexAttribPointerWithOffset(loc, int32(e.Type.Components()), gl.FLOAT, false,
				int32(buf.VertexSize()), uintptr(e.Offset))
			gl.EnableVertexAttribArray(loc)
		}
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(key.ib))
	gl.BindVertexArray(0)

	r.vaos[g] = vaoEntry{vao: vao, key: key}
	return vao, true
}

func glPrimitive(t graphics.PrimitiveType) (uint32, bool) {
	switch t {
	case graphics.TriangleList:
		return gl.TRIANGLES, true
	case graphics.TriangleStrip:
		return gl.TRIANGLE_STRIP, true
	case graphics.LineList:
		return gl.LINES, true
	case graphics.PointList:
		return gl.POINTS, true
	default:
		return 0, false
	}
}

// DrawLines draws a line list of [x, y, z] vertices in world space.
func (r *Renderer) DrawLines(verts []float32, viewProj mgl32.Mat4, color mgl32.Vec3) {
	if len(verts) < 6 {
		return
	}
	r.line.Use()
	r.line.SetMat4("uViewProj", viewProj)
	r.line.SetVec3("uColor", color)

	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(verts)/3))
	gl.BindVertexArray(0)
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
