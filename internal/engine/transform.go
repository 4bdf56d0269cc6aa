package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform places an object in the world. Objects only ever turn about +Y,
// so rotation is a single yaw angle in radians and scale is uniform.
type Transform struct {
	Position mgl32.Vec3
	Yaw      float32
	Scale    float32
}

func NewTransform(position mgl32.Vec3) Transform {
	return Transform{
		Position: position,
		Scale:    1,
	}
}

// Matrix returns translation * rotationY * scale.
func (t Transform) Matrix() mgl32.Mat4 {
	p := t.Position
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).
		Mul4(mgl32.HomogRotate3DY(t.Yaw)).
		Mul4(mgl32.Scale3D(t.Scale, t.Scale, t.Scale))
}

// RotateY rotates v about the +Y axis by angle radians (right-handed).
func RotateY(v mgl32.Vec3, angle float32) mgl32.Vec3 {
	s, c := math.Sincos(float64(angle))
	sin, cos := float32(s), float32(c)
	return mgl32.Vec3{
		v.X()*cos + v.Z()*sin,
		v.Y(),
		-v.X()*sin + v.Z()*cos,
	}
}

// Lerp moves a toward b by factor t.
func Lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Vec3 builds a vector from a YAML-friendly array.
func Vec3(a [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{a[0], a[1], a[2]}
}
