package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cubeforge/internal/engine/renderer"
)

// Keys with behavior beyond a settings toggle.
const (
	KeyQuit       = sdl.SCANCODE_ESCAPE
	KeyScreenshot = sdl.SCANCODE_9
	KeyRestore    = sdl.SCANCODE_R
	KeyMouseGrab  = sdl.SCANCODE_TAB
	KeyAnimate    = sdl.SCANCODE_M
	KeyDeviceLoss = sdl.SCANCODE_F5
)

// Sun controls: azimuth and elevation steps in degrees.
var sunKeys = map[sdl.Scancode]struct{ azimuth, elevation float32 }{
	sdl.SCANCODE_LEFTBRACKET:  {azimuth: -15},
	sdl.SCANCODE_RIGHTBRACKET: {azimuth: 15},
	sdl.SCANCODE_PAGEUP:       {elevation: 5},
	sdl.SCANCODE_PAGEDOWN:     {elevation: -5},
}

// settingKeys maps the number row and function keys to render toggles.
var settingKeys = map[sdl.Scancode]renderer.Action{
	sdl.SCANCODE_1:  renderer.ActionTextureQuality,
	sdl.SCANCODE_2:  renderer.ActionMaterialQuality,
	sdl.SCANCODE_3:  renderer.ActionSpecular,
	sdl.SCANCODE_4:  renderer.ActionShadows,
	sdl.SCANCODE_5:  renderer.ActionShadowMapSize,
	sdl.SCANCODE_6:  renderer.ActionShadowQuality,
	sdl.SCANCODE_7:  renderer.ActionOcclusion,
	sdl.SCANCODE_8:  renderer.ActionInstancing,
	sdl.SCANCODE_F2: renderer.ActionDebugOverlay,
	sdl.SCANCODE_F3: renderer.ActionWireframe,
}

// Movement keys: forward/back, right/left, up/down.
var (
	moveForward = [2]sdl.Scancode{sdl.SCANCODE_W, sdl.SCANCODE_S}
	moveRight   = [2]sdl.Scancode{sdl.SCANCODE_D, sdl.SCANCODE_A}
	moveUp      = [2]sdl.Scancode{sdl.SCANCODE_SPACE, sdl.SCANCODE_LSHIFT}
)
