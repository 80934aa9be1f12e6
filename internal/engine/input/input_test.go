package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func keyEvent(typ uint32, code sdl.Scancode, repeat uint8) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{
		Type:   typ,
		Repeat: repeat,
		Keysym: sdl.Keysym{Scancode: code},
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, Event{Type: EventQuit}, true},
		{"key down", keyEvent(sdl.KEYDOWN, sdl.SCANCODE_1, 0), Event{Type: EventKeyDown, Key: sdl.SCANCODE_1}, true},
		{"key repeat", keyEvent(sdl.KEYDOWN, sdl.SCANCODE_W, 1), Event{Type: EventKeyDown, Key: sdl.SCANCODE_W, Repeat: true}, true},
		{"key up", keyEvent(sdl.KEYUP, sdl.SCANCODE_W, 0), Event{Type: EventKeyUp, Key: sdl.SCANCODE_W}, true},
		{
			"resize",
			&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600},
			Event{Type: EventWindowResize, Width: 800, Height: 600},
			true,
		},
		{"window focus ignored", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED}, Event{}, false},
		{
			"mouse motion",
			&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 10, Y: 20, XRel: -3, YRel: 4},
			Event{Type: EventMouseMove, MouseX: 10, MouseY: 20, DeltaX: -3, DeltaY: 4},
			true,
		},
		{
			"mouse down",
			&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, X: 5, Y: 6, Button: sdl.BUTTON_LEFT},
			Event{Type: EventMouseDown, MouseX: 5, MouseY: 6, Button: sdl.BUTTON_LEFT},
			true,
		},
		{"device reset", &sdl.RenderEvent{Type: sdl.RENDER_DEVICE_RESET}, Event{Type: EventDeviceReset}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.event)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Translate = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHeldKeysAndPresses(t *testing.T) {
	in := New()
	in.Push(keyEvent(sdl.KEYDOWN, sdl.SCANCODE_W, 0))
	in.Push(keyEvent(sdl.KEYDOWN, sdl.SCANCODE_D, 0))

	if !in.IsKeyPressed(sdl.SCANCODE_W) || !in.IsKeyDown(sdl.SCANCODE_W) {
		t.Error("W should be pressed and held")
	}
	if got := in.Axis(sdl.SCANCODE_W, sdl.SCANCODE_S); got != 1 {
		t.Errorf("forward axis = %f, want 1", got)
	}

	in.ClearFrame()
	in.Push(keyEvent(sdl.KEYDOWN, sdl.SCANCODE_W, 1))
	if in.IsKeyPressed(sdl.SCANCODE_W) {
		t.Error("auto-repeat should not count as a press")
	}
	if !in.IsKeyDown(sdl.SCANCODE_D) {
		t.Error("D should still be held across frames")
	}

	in.Push(keyEvent(sdl.KEYUP, sdl.SCANCODE_W, 0))
	if in.IsKeyDown(sdl.SCANCODE_W) {
		t.Error("W released")
	}
	if got := in.Axis(sdl.SCANCODE_W, sdl.SCANCODE_S); got != 0 {
		t.Errorf("forward axis = %f, want 0", got)
	}
}

func TestMouseDelta(t *testing.T) {
	in := New()
	in.Push(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, XRel: 3, YRel: -1})
	in.Push(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, XRel: 2, YRel: 5})
	dx, dy := in.MouseDelta()
	if dx != 5 || dy != 4 {
		t.Errorf("MouseDelta = (%d, %d), want (5, 4)", dx, dy)
	}
	if quit := in.Push(&sdl.QuitEvent{Type: sdl.QUIT}); !quit {
		t.Error("quit event should report true")
	}
}
