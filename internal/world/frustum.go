package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   mgl32.Vec3
	distance float32
}

// ExtractFrustum extracts frustum planes from a projection*view matrix
// using the Gribb/Hartmann method.
func ExtractFrustum(vp mgl32.Mat4) Frustum {
	r0, r1, r2, r3 := vp.Row(0), vp.Row(1), vp.Row(2), vp.Row(3)

	var f Frustum
	f.planes[0] = planeFrom(r3.Add(r0)) // left
	f.planes[1] = planeFrom(r3.Sub(r0)) // right
	f.planes[2] = planeFrom(r3.Add(r1)) // bottom
	f.planes[3] = planeFrom(r3.Sub(r1)) // top
	f.planes[4] = planeFrom(r3.Add(r2)) // near
	f.planes[5] = planeFrom(r3.Sub(r2)) // far
	return f
}

// planeFrom builds a normalized plane from its (a, b, c, d) coefficients
func planeFrom(v mgl32.Vec4) Plane {
	p := Plane{normal: v.Vec3(), distance: v.W()}
	length := p.normal.Len()
	if length == 0 {
		return p
	}
	return Plane{
		normal:   p.normal.Mul(1 / length),
		distance: p.distance / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f *Frustum) ContainsSphere(center mgl32.Vec3, radius float32) bool {
	for i := 0; i < 6; i++ {
		dist := f.planes[i].normal.Dot(center) + f.planes[i].distance
		// Completely behind any plane means outside
		if dist < -radius {
			return false
		}
	}
	return true
}
