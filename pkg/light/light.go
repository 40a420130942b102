// Package light provides the light description handed to materials at
// render time.
package light

import "github.com/go-gl/mathgl/mgl32"

// Mode selects how a light's position is resolved.
type Mode uint8

const (
	// ModeAbsolute places the light at a fixed world-space position.
	ModeAbsolute Mode = iota
	// ModeStickToCamera keeps the light at the camera eye.
	ModeStickToCamera
)

// Light is an immutable light description. Scene nodes pass it through to
// the material untouched.
type Light struct {
	mode Mode
	pos  mgl32.Vec3
}

// Absolute creates a light fixed at pos in world space.
func Absolute(pos mgl32.Vec3) Light {
	return Light{mode: ModeAbsolute, pos: pos}
}

// StickToCamera creates a light that follows the camera eye.
func StickToCamera() Light {
	return Light{mode: ModeStickToCamera}
}

// Mode returns the light placement mode.
func (l Light) Mode() Mode { return l.mode }

// Position resolves the light position, using eye for camera-attached
// lights.
func (l Light) Position(eye mgl32.Vec3) mgl32.Vec3 {
	if l.mode == ModeStickToCamera {
		return eye
	}
	return l.pos
}
