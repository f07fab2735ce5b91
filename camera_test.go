package delilah

import "testing"

func TestNewCameraStateDefaults(t *testing.T) {
	c := NewCameraState()
	if c.BackgroundColor() != (RGB8{R: 170, G: 170, B: 170}) {
		t.Errorf("default background = %v, want 170/170/170", c.BackgroundColor())
	}
	if c.Camera() != (CameraPose{}) {
		t.Errorf("default camera pose should be identity, got %v", c.Camera())
	}
}

func TestSetCameraRejectsYawOutOfRange(t *testing.T) {
	defer expectPanic(t)
	c := NewCameraState()
	c.SetCamera(CameraPose{Yaw: 1.0})
}

func TestSetCameraRejectsNonFinitePosition(t *testing.T) {
	defer expectPanic(t)
	c := NewCameraState()
	c.SetCamera(CameraPose{X: posInf()})
}

func TestSetProjectionRejectsNearPastMaxNear(t *testing.T) {
	defer expectPanic(t)
	c := NewCameraState()
	c.SetProjection(Projection{FOV: 0.5, Near: 1000, Far: -1})
}

func TestSetProjectionAcceptsValid(t *testing.T) {
	c := NewCameraState()
	c.SetProjection(Projection{FOV: 0.25, Near: 0, Far: -100})
	got := c.Projection()
	if got.FOV != 0.25 || got.Near != 0 || got.Far != -100 {
		t.Errorf("Projection() = %v after SetProjection", got)
	}
}

func TestBackgroundColorIsDefensiveCopy(t *testing.T) {
	c := NewCameraState()
	bg := c.BackgroundColor()
	bg.R = 0
	if c.BackgroundColor().R == 0 {
		t.Errorf("mutating the returned RGB8 affected CameraState's internal state")
	}
}

func expectPanic(t *testing.T) {
	t.Helper()
	if r := recover(); r == nil {
		t.Errorf("expected a panic, got none")
	}
}
