// Package viewer runs the interactive window that shows a generated cube
// model over a ground plane.
package viewer

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeforge/internal/config"
	"github.com/Faultbox/cubeforge/internal/engine/camera"
	"github.com/Faultbox/cubeforge/internal/engine/debug"
	"github.com/Faultbox/cubeforge/internal/engine/graphics"
	"github.com/Faultbox/cubeforge/internal/engine/input"
	"github.com/Faultbox/cubeforge/internal/engine/lighting"
	"github.com/Faultbox/cubeforge/internal/engine/meshgen"
	"github.com/Faultbox/cubeforge/internal/engine/picking"
	"github.com/Faultbox/cubeforge/internal/engine/renderer"
	"github.com/Faultbox/cubeforge/internal/engine/window"
	"github.com/Faultbox/cubeforge/internal/logger"
)

// Title is the base window title.
const Title = "CubeForge"

var (
	clearColor = mgl32.Vec3{0.45, 0.6, 0.8}
	ambient    = mgl32.Vec3{0.3, 0.3, 0.35}
	bboxColor  = mgl32.Vec3{1, 1, 0}
)

// Viewer owns the window, the GL device and the scene.
type Viewer struct {
	config  *config.Config
	running bool
	grab    bool
	capture bool // screenshot after the next render

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	device   *graphics.GLDevice
	camera   *camera.FlyCamera
	sun      lighting.Sun
	world    *world
	shots    *debug.ScreenshotCapture

	fps int
	log *zap.Logger
}

// New opens the window and generates the configured model.
func New(cfg *config.Config) (*Viewer, error) {
	faces, err := cfg.FaceSet()
	if err != nil {
		return nil, err
	}
	settings, err := settingsFromConfig(cfg.Render)
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		config: cfg,
		log:    logger.Named("viewer"),
	}
	v.log.Info("initializing viewer",
		zap.Stringer("faces", faces),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	// The GL context must exist before the renderer or any buffer.
	v.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Window.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: clearColor,
		Ambient:    ambient,
	}, settings)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.device = graphics.NewGLDevice()
	v.world, err = buildWorld(meshgen.NewGenerator(v.device), cfg.Scene, faces)
	if err != nil {
		v.renderer.Close()
		v.window.Close()
		return nil, err
	}

	sc := cfg.Scene
	v.camera = camera.NewFlyCamera(mgl32.Vec3(sc.CameraPosition), sc.CameraYaw, sc.CameraPitch)
	v.sun = lighting.SunFromDirection(v.world.scene.LightDir)
	v.input = input.New()
	v.shots = debug.NewScreenshotCapture(cfg.Screenshots.Dir, cfg.Screenshots.Prefix)
	if err := v.shots.SetFormat(cfg.Screenshots.Format); err != nil {
		v.log.Warn("keeping png screenshots", zap.Error(err))
	}

	v.log.Info("viewer initialized",
		zap.Int("vertices", v.world.model.VertexCount()),
		zap.Int("indices", v.world.model.IndexCount()),
	)
	return v, nil
}

// Run executes the frame loop until the window closes or Esc is pressed.
func (v *Viewer) Run() error {
	v.running = true

	var frameBudget time.Duration
	if v.config.Window.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(v.config.Window.FPSLimit)
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting frame loop")

	for v.running {
		frameStart := time.Now()
		dt := float32(frameStart.Sub(lastTime).Seconds())
		lastTime = frameStart

		if v.input.Update() {
			v.running = false
			break
		}
		for _, event := range v.input.Events() {
			if err := v.handleEvent(event); err != nil {
				return err
			}
		}
		if !v.running {
			break
		}

		v.update(dt)
		v.render()
		if v.capture {
			v.capture = false
			v.screenshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.fps = frameCount
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			if v.renderer.Settings.DebugOverlay {
				v.window.SetTitle(windowTitle(Title, v.world.faces, v.fps, v.renderer.Stats(), v.renderer.Settings))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if rest := frameBudget - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	return nil
}

// Close releases the model buffers and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.world != nil {
		v.world.release()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handleEvent(event input.Event) error {
	switch event.Type {
	case input.EventWindowResize:
		width, height := v.window.DrawableSize()
		v.renderer.Resize(width, height)
	case input.EventDeviceReset:
		if err := v.recoverDevice(); err != nil {
			return fmt.Errorf("recovering device: %w", err)
		}
	case input.EventMouseDown:
		if event.Button == sdl.BUTTON_LEFT {
			v.pick(event.MouseX, event.MouseY)
		}
	case input.EventKeyDown:
		if event.Repeat {
			return nil
		}
		v.handleKey(event.Key)
	}
	return nil
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	if action, ok := settingKeys[key]; ok {
		msg := v.renderer.Settings.Apply(action)
		v.log.Info("setting changed", zap.String("state", msg))
		v.window.SetTitle(Title + " | " + msg)
		return
	}

	if step, ok := sunKeys[key]; ok {
		v.sun = v.sun.Rotate(step.azimuth).Raise(step.elevation)
		v.world.scene.LightDir = v.sun.Direction()
		v.log.Debug("sun moved",
			zap.Float32("azimuth", v.sun.Azimuth),
			zap.Float32("elevation", v.sun.Elevation),
		)
		return
	}

	switch key {
	case KeyQuit:
		v.running = false
	case KeyScreenshot:
		v.capture = true
	case KeyMouseGrab:
		v.grab = !v.grab
		v.window.SetMouseGrab(v.grab)
	case KeyAnimate:
		v.log.Info("model animation", zap.Bool("enabled", v.world.toggleSpin()))
	case KeyRestore:
		// Re-upload from shadow copies while the context is still valid.
		v.renderer.InvalidateVAOs()
		if err := v.world.restore(); err != nil {
			v.log.Error("restoring buffers", zap.Error(err))
			return
		}
		v.log.Info("buffers restored from shadow data")
	case KeyDeviceLoss:
		v.world.release()
		v.renderer.ReleaseDeviceObjects()
		if err := v.recoverDevice(); err != nil {
			v.log.Error("recovering from simulated device loss", zap.Error(err))
		}
	}
}

// recoverDevice handles a reset render target: the old handles are gone, so
// they are dropped without deleting and re-created from shadow data.
func (v *Viewer) recoverDevice() error {
	v.log.Warn("render device reset")
	v.device.Invalidate()
	v.world.onDeviceLost()
	v.renderer.OnDeviceLost()
	v.device.Reset()
	return v.world.restore()
}

func (v *Viewer) update(dt float32) {
	v.world.advance(dt)
	if v.grab || v.input.IsKeyDown(sdl.SCANCODE_LALT) {
		dx, dy := v.input.MouseDelta()
		v.camera.Rotate(float32(dx), float32(dy))
	}
	v.camera.Move(
		v.input.Axis(moveForward[0], moveForward[1]),
		v.input.Axis(moveRight[0], moveRight[1]),
		v.input.Axis(moveUp[0], moveUp[1]),
		dt,
	)
}

func (v *Viewer) render() {
	aspect := v.renderer.Aspect()
	view := v.camera.ViewMatrix()
	proj := v.camera.ProjectionMatrix(aspect)
	v.renderer.Render(v.world.scene, view, proj, v.camera.Position)

	if v.renderer.Settings.DebugOverlay {
		n := v.world.scene.Nodes[modelNode]
		lines := debug.BBoxWireframe(n.Model.BoundingBox(), n.World)
		v.renderer.DrawLines(lines, proj.Mul4(view), bboxColor)
	}
}

// pick casts a ray through the cursor against the model, then the ground.
func (v *Viewer) pick(x, y int) {
	w, h := v.window.GetSize()
	invViewProj := v.camera.ViewProjection(v.renderer.Aspect()).Inv()
	ray := picking.ScreenToRay(float32(x), float32(y), float32(w), float32(h), invViewProj)

	n := v.world.scene.Nodes[modelNode]
	if hit, ok := picking.RaycastModel(ray, n.Model, n.World); ok {
		v.log.Info("picked model",
			zap.Float32("distance", hit.Distance),
			zap.Float32s("point", hit.Point[:]),
			zap.Float32s("normal", hit.Normal[:]),
			zap.Int("triangle", hit.Triangle),
		)
		return
	}
	if gx, gz, ok := ray.IntersectPlaneY(groundLevel); ok {
		v.log.Info("picked ground", zap.Float32("x", gx), zap.Float32("z", gz))
		return
	}
	v.log.Debug("pick missed")
}

func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		if errors.Is(err, debug.ErrPixelSize) {
			v.log.Warn("screenshot size mismatch", zap.Error(err))
			return
		}
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}
