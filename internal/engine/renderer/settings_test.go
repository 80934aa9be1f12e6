package renderer

import "testing"

func TestQualityCycle(t *testing.T) {
	s := Settings{TextureQuality: QualityLow}
	want := []Quality{QualityMedium, QualityHigh, QualityLow, QualityMedium}
	for i, w := range want {
		s.Apply(ActionTextureQuality)
		if s.TextureQuality != w {
			t.Fatalf("step %d: texture quality %v, want %v", i, s.TextureQuality, w)
		}
	}

	s.MaterialQuality = QualityHigh
	if msg := s.Apply(ActionMaterialQuality); msg != "material quality low" {
		t.Errorf("message = %q", msg)
	}
}

func TestShadowMapSizeWraps(t *testing.T) {
	s := Settings{ShadowMapSize: 512}
	want := []int{1024, 2048, 512, 1024}
	for i, w := range want {
		s.Apply(ActionShadowMapSize)
		if s.ShadowMapSize != w {
			t.Fatalf("step %d: size %d, want %d", i, s.ShadowMapSize, w)
		}
	}

	// Out-of-range sizes from config snap back into the cycle.
	s.ShadowMapSize = 0
	s.Apply(ActionShadowMapSize)
	if s.ShadowMapSize != MinShadowMapSize {
		t.Errorf("size = %d, want %d", s.ShadowMapSize, MinShadowMapSize)
	}
}

func TestShadowQualityCycle(t *testing.T) {
	s := Settings{ShadowQuality: ShadowPCF24}
	want := []ShadowQuality{ShadowVSM, ShadowBlurVSM, ShadowSimple16, ShadowSimple24}
	for i, w := range want {
		s.Apply(ActionShadowQuality)
		if s.ShadowQuality != w {
			t.Fatalf("step %d: %v, want %v", i, s.ShadowQuality, w)
		}
	}
}

func TestShadowQualityParameters(t *testing.T) {
	tests := []struct {
		q      ShadowQuality
		bits   int
		kernel int
	}{
		{ShadowSimple16, 16, 0},
		{ShadowSimple24, 24, 0},
		{ShadowPCF16, 16, 1},
		{ShadowPCF24, 24, 1},
		{ShadowVSM, 24, 2},
		{ShadowBlurVSM, 24, 3},
	}
	for _, tt := range tests {
		if got := tt.q.DepthBits(); got != tt.bits {
			t.Errorf("%v.DepthBits() = %d, want %d", tt.q, got, tt.bits)
		}
		if got := tt.q.KernelRadius(); got != tt.kernel {
			t.Errorf("%v.KernelRadius() = %d, want %d", tt.q, got, tt.kernel)
		}
	}
}

func TestToggles(t *testing.T) {
	s := DefaultSettings()

	tests := []struct {
		action Action
		check  func(Settings) bool
		msg    string
	}{
		{ActionSpecular, func(s Settings) bool { return !s.Specular }, "specular lighting off"},
		{ActionShadows, func(s Settings) bool { return !s.Shadows }, "shadows off"},
		{ActionOcclusion, func(s Settings) bool { return s.MaxOccluderTriangles == 0 }, "occlusion off"},
		{ActionOcclusion, func(s Settings) bool { return s.MaxOccluderTriangles == 5000 }, "occlusion on"},
		{ActionInstancing, func(s Settings) bool { return !s.Instancing }, "instancing off"},
		{ActionWireframe, func(s Settings) bool { return s.Wireframe }, "wireframe on"},
		{ActionDebugOverlay, func(s Settings) bool { return s.DebugOverlay }, "debug overlay on"},
	}
	for _, tt := range tests {
		msg := s.Apply(tt.action)
		if !tt.check(s) {
			t.Errorf("action %d did not toggle: %+v", tt.action, s)
		}
		if msg != tt.msg {
			t.Errorf("action %d message = %q, want %q", tt.action, msg, tt.msg)
		}
	}
}

func TestParseQuality(t *testing.T) {
	if q, err := ParseQuality("Medium"); err != nil || q != QualityMedium {
		t.Errorf("ParseQuality(Medium) = %v, %v", q, err)
	}
	if _, err := ParseQuality("ultra"); err == nil {
		t.Error("expected error for unknown quality")
	}
	if q, err := ParseShadowQuality("BlurVSM"); err != nil || q != ShadowBlurVSM {
		t.Errorf("ParseShadowQuality(BlurVSM) = %v, %v", q, err)
	}
	if _, err := ParseShadowQuality("pcf32"); err == nil {
		t.Error("expected error for unknown shadow quality")
	}
}
