package renderer

import (
	"fmt"
	"strings"
)

// Quality is a three step detail level.
type Quality int

const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh
)

func (q Quality) String() string {
	switch q {
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}

// ShadowQuality selects depth precision and filtering of the shadow map.
type ShadowQuality int

const (
	ShadowSimple16 ShadowQuality = iota
	ShadowSimple24
	ShadowPCF16
	ShadowPCF24
	ShadowVSM
	ShadowBlurVSM
	numShadowQualities
)

func (q ShadowQuality) String() string {
	switch q {
	case ShadowSimple16:
		return "simple16"
	case ShadowSimple24:
		return "simple24"
	case ShadowPCF16:
		return "pcf16"
	case ShadowPCF24:
		return "pcf24"
	case ShadowVSM:
		return "vsm"
	case ShadowBlurVSM:
		return "blurvsm"
	default:
		return fmt.Sprintf("ShadowQuality(%d)", int(q))
	}
}

// DepthBits is the shadow map depth precision.
func (q ShadowQuality) DepthBits() int {
	switch q {
	case ShadowSimple16, ShadowPCF16:
		return 16
	default:
		return 24
	}
}

// KernelRadius is the PCF sample radius in texels; 0 takes a single
// nearest sample. The VSM levels are approximated with wider kernels.
func (q ShadowQuality) KernelRadius() int {
	switch q {
	case ShadowPCF16, ShadowPCF24:
		return 1
	case ShadowVSM:
		return 2
	case ShadowBlurVSM:
		return 3
	default:
		return 0
	}
}

// Shadow map size limits; the toggle doubles and wraps.
const (
	MinShadowMapSize = 512
	MaxShadowMapSize = 2048
)

// DefaultOccluderTriangles is the triangle budget when occlusion is on.
const DefaultOccluderTriangles = 5000

// Action is a user toggle applied to Settings.
type Action int

const (
	ActionTextureQuality Action = iota
	ActionMaterialQuality
	ActionSpecular
	ActionShadows
	ActionShadowMapSize
	ActionShadowQuality
	ActionOcclusion
	ActionInstancing
	ActionWireframe
	ActionDebugOverlay
)

// Settings are the runtime render options.
type Settings struct {
	TextureQuality       Quality
	MaterialQuality      Quality
	Specular             bool
	Shadows              bool
	ShadowMapSize        int
	ShadowQuality        ShadowQuality
	MaxOccluderTriangles int
	Instancing           bool
	Wireframe            bool
	DebugOverlay         bool
}

// DefaultSettings returns the startup render options.
func DefaultSettings() Settings {
	return Settings{
		TextureQuality:       QualityHigh,
		MaterialQuality:      QualityHigh,
		Specular:             true,
		Shadows:              true,
		ShadowMapSize:        1024,
		ShadowQuality:        ShadowPCF24,
		MaxOccluderTriangles: DefaultOccluderTriangles,
		Instancing:           true,
	}
}

// Apply performs a toggle and returns a short description of the new state.
func (s *Settings) Apply(a Action) string {
	switch a {
	case ActionTextureQuality:
		s.TextureQuality = s.TextureQuality.next()
		return "texture quality " + s.TextureQuality.String()
	case ActionMaterialQuality:
		s.MaterialQuality = s.MaterialQuality.next()
		return "material quality " + s.MaterialQuality.String()
	case ActionSpecular:
		s.Specular = !s.Specular
		return onOff("specular lighting", s.Specular)
	case ActionShadows:
		s.Shadows = !s.Shadows
		return onOff("shadows", s.Shadows)
	case ActionShadowMapSize:
		s.ShadowMapSize *= 2
		if s.ShadowMapSize > MaxShadowMapSize || s.ShadowMapSize < MinShadowMapSize {
			s.ShadowMapSize = MinShadowMapSize
		}
		return fmt.Sprintf("shadow map size %d", s.ShadowMapSize)
	case ActionShadowQuality:
		s.ShadowQuality = (s.ShadowQuality + 1) % numShadowQualities
		return "shadow quality " + s.ShadowQuality.String()
	case ActionOcclusion:
		if s.MaxOccluderTriangles > 0 {
			s.MaxOccluderTriangles = 0
		} else {
			s.MaxOccluderTriangles = DefaultOccluderTriangles
		}
		return onOff("occlusion", s.MaxOccluderTriangles > 0)
	case ActionInstancing:
		s.Instancing = !s.Instancing
		return onOff("instancing", s.Instancing)
	case ActionWireframe:
		s.Wireframe = !s.Wireframe
		return onOff("wireframe", s.Wireframe)
	case ActionDebugOverlay:
		s.DebugOverlay = !s.DebugOverlay
		return onOff("debug overlay", s.DebugOverlay)
	default:
		return fmt.Sprintf("unknown action %d", int(a))
	}
}

func (q Quality) next() Quality {
	return (q + 1) % (QualityHigh + 1)
}

func onOff(name string, on bool) string {
	if on {
		return name + " on"
	}
	return name + " off"
}

// ParseQuality reads "low", "medium" or "high".
func ParseQuality(s string) (Quality, error) {
	for q := QualityLow; q <= QualityHigh; q++ {
		if strings.EqualFold(s, q.String()) {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unknown quality %q", s)
}

// ParseShadowQuality reads a ShadowQuality name such as "pcf24".
func ParseShadowQuality(s string) (ShadowQuality, error) {
	for q := ShadowSimple16; q < numShadowQualities; q++ {
		if strings.EqualFold(s, q.String()) {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unknown shadow quality %q", s)
}
