package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a rigid 2D transform: translation then rotation (radians)
type Pose struct {
	X, Y  float64
	Angle float64
}

// Identity returns the pose that leaves points unchanged
func Identity() Pose {
	return Pose{}
}

// Translation returns a pose with no rotation
func Translation(x, y float64) Pose {
	return Pose{X: x, Y: y}
}

// Matrix returns the homogeneous 3x3 form of p
func (p Pose) Matrix() mgl64.Mat3 {
	return mgl64.Translate2D(p.X, p.Y).Mul3(mgl64.HomogRotate2D(p.Angle))
}

// Compose returns p applied after inner, i.e. the pose of a frame placed at
// inner relative to p
func (p Pose) Compose(inner Pose) Pose {
	return PoseFromMatrix(p.Matrix().Mul3(inner.Matrix()))
}

// Apply transforms a point from local to parent coordinates
func (p Pose) Apply(x, y float64) (float64, float64) {
	v := p.Matrix().Mul3x1(mgl64.Vec3{x, y, 1})
	return v[0], v[1]
}

// PoseFromMatrix extracts translation and rotation from a rigid homogeneous matrix
// Column-major: m[0],m[1] hold cos/sin, m[6],m[7] hold the translation
func PoseFromMatrix(m mgl64.Mat3) Pose {
	return Pose{
		X:     m[6],
		Y:     m[7],
		Angle: math.Atan2(m[1], m[0]),
	}
}
