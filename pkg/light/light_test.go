package light

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAbsolutePosition(t *testing.T) {
	l := Absolute(mgl32.Vec3{1, 2, 3})

	if l.Mode() != ModeAbsolute {
		t.Errorf("expected absolute mode, got %v", l.Mode())
	}

	eye := mgl32.Vec3{9, 9, 9}
	if got := l.Position(eye); got != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("absolute light moved with the eye: %v", got)
	}
}

func TestStickToCameraPosition(t *testing.T) {
	l := StickToCamera()

	if l.Mode() != ModeStickToCamera {
		t.Errorf("expected stick-to-camera mode, got %v", l.Mode())
	}

	eye := mgl32.Vec3{4, 5, 6}
	if got := l.Position(eye); got != eye {
		t.Errorf("camera light not at the eye: %v", got)
	}
}
