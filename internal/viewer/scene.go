package viewer

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubeforge/internal/config"
	"github.com/Faultbox/cubeforge/internal/engine/graphics"
	"github.com/Faultbox/cubeforge/internal/engine/meshgen"
	"github.com/Faultbox/cubeforge/internal/engine/renderer"
	"github.com/Faultbox/cubeforge/pkg/mesh"
)

// world holds the generated models and their placement.
type world struct {
	faces  mesh.DirectionSet
	model  *graphics.Model
	ground *graphics.Model
	scene  renderer.Scene

	origin   mgl32.Vec3 // model position
	spinning bool
	angle    float32 // degrees about Z
}

const (
	modelNode  = 0
	groundNode = 1
)

const (
	// groundLevel is the height of the ground's top face.
	groundLevel = 0.5
	// spinSpeed is the model rotation in degrees per second.
	spinSpeed = 15
)

// buildWorld generates the configured model and the ground plane. The ground
// is a single up-facing quad left at its generated height, so its top sits
// at groundLevel.
func buildWorld(gen *meshgen.Generator, cfg config.SceneConfig, faces mesh.DirectionSet) (*world, error) {
	model, err := gen.CreateModel(faces)
	if err != nil {
		return nil, fmt.Errorf("generating model: %w", err)
	}
	ground, err := gen.CreateModel(mesh.PositiveY.Set())
	if err != nil {
		model.Release()
		return nil, fmt.Errorf("generating ground: %w", err)
	}

	size := cfg.GroundSize
	origin := mgl32.Vec3(cfg.ModelPosition)
	return &world{
		faces:  faces,
		model:  model,
		ground: ground,
		origin: origin,
		scene: renderer.Scene{
			LightDir: mgl32.Vec3(cfg.LightDirection),
			Nodes: []renderer.Node{
				modelNode: {
					Name:  "model",
					Model: model,
					World: mgl32.Translate3D(origin[0], origin[1], origin[2]),
					Color: mgl32.Vec3(cfg.ModelColor),
				},
				groundNode: {
					Name:  "ground",
					Model: ground,
					World: mgl32.Scale3D(size, 1, size),
					Color: mgl32.Vec3(cfg.GroundColor),
					Grid:  true,
				},
			},
		},
	}, nil
}

// toggleSpin starts or stops the model rotation and reports the new state.
func (w *world) toggleSpin() bool {
	w.spinning = !w.spinning
	return w.spinning
}

// advance turns the model about its own Z axis while spinning.
func (w *world) advance(dt float32) {
	if !w.spinning {
		return
	}
	w.angle = float32(math.Mod(float64(w.angle+spinSpeed*dt), 360))
	w.scene.Nodes[modelNode].World = mgl32.Translate3D(w.origin[0], w.origin[1], w.origin[2]).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(w.angle)))
}

func (w *world) models() []*graphics.Model {
	return []*graphics.Model{w.model, w.ground}
}

// release frees every model buffer.
func (w *world) release() {
	for _, m := range w.models() {
		m.Release()
	}
}

// onDeviceLost drops all buffer handles without freeing them.
func (w *world) onDeviceLost() {
	for _, m := range w.models() {
		m.OnDeviceLost()
	}
}

// restore re-uploads every model from its shadow data.
func (w *world) restore() error {
	for _, m := range w.models() {
		if err := m.Restore(); err != nil {
			return err
		}
	}
	return nil
}

// settingsFromConfig converts the startup toggles.
func settingsFromConfig(cfg config.RenderConfig) (renderer.Settings, error) {
	s := renderer.DefaultSettings()

	var err error
	if s.TextureQuality, err = renderer.ParseQuality(cfg.TextureQuality); err != nil {
		return s, fmt.Errorf("texture_quality: %w", err)
	}
	if s.MaterialQuality, err = renderer.ParseQuality(cfg.MaterialQuality); err != nil {
		return s, fmt.Errorf("material_quality: %w", err)
	}
	if s.ShadowQuality, err = renderer.ParseShadowQuality(cfg.ShadowQuality); err != nil {
		return s, fmt.Errorf("shadow_quality: %w", err)
	}
	s.Specular = cfg.Specular
	s.Shadows = cfg.Shadows
	s.ShadowMapSize = cfg.ShadowMapSize
	s.Instancing = cfg.Instancing
	s.Wireframe = cfg.Wireframe
	if !cfg.Occlusion {
		s.MaxOccluderTriangles = 0
	}
	return s, nil
}

// windowTitle summarizes the frame for the debug overlay.
func windowTitle(base string, faces mesh.DirectionSet, fps int, st renderer.Stats, s renderer.Settings) string {
	shadows := "off"
	if s.Shadows {
		shadows = fmt.Sprintf("%s@%d", s.ShadowQuality, s.ShadowMapSize)
	}
	return fmt.Sprintf("%s | %v | %d fps | %d draws %d tris %d culled | shadows %s",
		base, faces, fps, st.DrawCalls, st.Triangles, st.Culled, shadows)
}
