package core

import "math"

// Vec3 is a point or direction in the visualization volume
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the euclidean norm of v
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dist returns the distance between v and o
func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Normalized returns v scaled to unit length; zero vector stays zero
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Lerp returns the linear interpolation between a and b at t
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// QuadBezier evaluates the quadratic Bezier curve through p0, control
// point p1 and p2 at parameter t in [0,1]
func QuadBezier(p0, p1, p2 Vec3, t float64) Vec3 {
	u := 1 - t
	a := p0.Scale(u * u)
	b := p1.Scale(2 * u * t)
	c := p2.Scale(t * t)
	return a.Add(b).Add(c)
}
