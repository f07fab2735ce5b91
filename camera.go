package delilah

import (
	"math"

	"github.com/mirstar13/delilah/internal/dlog"
)

// CameraPose is the camera's world-space position and orientation (§3).
// Yaw and Roll are normalized turns in [0.0, 1.0): 1.0 is a full 2*pi
// rotation. Pitch is normalized to [-1.0, 1.0]: +/-1.0 is +/- pi/2.
type CameraPose struct {
	X, Y, Z          float64
	Yaw, Pitch, Roll float64
}

// Projection holds the camera's field of view and near/far clip planes
// (§3). FOV is a normalized half-turn in (0, 1): 1.0 is pi radians of
// full field angle. The near-plane bound excludes the FOV/near
// combination at which the pinhole matrix's 1/d element would overflow.
type Projection struct {
	FOV  float64
	Near float64
	Far  float64
}

// CameraState is the mutable front the host drives every frame: camera
// pose, projection, and background color, each behind a validated
// setter. Invalid arguments are a programmer error (§7) and panic.
type CameraState struct {
	background RGB8
	pose       CameraPose
	projection Projection
}

// NewCameraState returns a CameraState at a sane default: identity pose,
// a moderate FOV, and the gray background used by the reference default
// scene (§6).
func NewCameraState() *CameraState {
	return &CameraState{
		background: RGB8{R: 170, G: 170, B: 170},
		pose:       CameraPose{},
		projection: Projection{FOV: 0.25, Near: 0, Far: -100},
	}
}

// BackgroundColor returns a defensive copy of the background color.
func (c *CameraState) BackgroundColor() RGB8 {
	return c.background
}

// SetBackgroundColor sets the background color. 8-bit RGB is the
// external-boundary representation (§6); there is no range to validate
// beyond the type itself.
func (c *CameraState) SetBackgroundColor(col RGB8) {
	c.background = col
}

// Camera returns a defensive copy of the camera pose.
func (c *CameraState) Camera() CameraPose {
	return c.pose
}

// SetCamera validates and installs a new camera pose, per the
// invariants in §3: finite position; yaw, roll in [0,1); pitch in
// [-1,1].
func (c *CameraState) SetCamera(pose CameraPose) {
	if !isFinite(pose.X) || !isFinite(pose.Y) || !isFinite(pose.Z) {
		dlog.Fault("camera position must be finite: %+v", pose)
	}
	if pose.Yaw < 0.0 || pose.Yaw >= 1.0 {
		dlog.Fault("camera yaw out of range [0,1): %v", pose.Yaw)
	}
	if pose.Roll < 0.0 || pose.Roll >= 1.0 {
		dlog.Fault("camera roll out of range [0,1): %v", pose.Roll)
	}
	if pose.Pitch < -1.0 || pose.Pitch > 1.0 {
		dlog.Fault("camera pitch out of range [-1,1]: %v", pose.Pitch)
	}
	c.pose = pose
}

// Projection returns a defensive copy of the projection state.
func (c *CameraState) Projection() Projection {
	return c.projection
}

// SetProjection validates and installs a new projection, per §3:
// fov in (0,1); far < near < 1/tan(fov*pi/2).
func (c *CameraState) SetProjection(p Projection) {
	if !isFinite(p.FOV) || p.FOV <= 0.0 || p.FOV >= 1.0 {
		dlog.Fault("projection fov out of range (0,1): %v", p.FOV)
	}
	maxNear := 1.0 / math.Tan(p.FOV*math.Pi/2.0)
	if !isFinite(p.Near) || !isFinite(p.Far) {
		dlog.Fault("projection near/far must be finite")
	}
	if !(p.Far < p.Near && p.Near < maxNear) {
		dlog.Fault("projection invariant violated: need far < near < %v, got near=%v far=%v", maxNear, p.Near, p.Far)
	}
	c.projection = p
}
