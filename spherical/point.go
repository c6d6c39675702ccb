// Package spherical provides an immutable 3D point value that carries both
// Cartesian and spherical coordinates, kept mutually consistent by
// construction.
//
// A Point is built through exactly two constructors:
//
//   - NewCartesian(x, y, z) derives (r, phi, theta) from the triple;
//   - NewSpherical(r, phi, theta) normalizes the angles, then derives (x, y, z).
//
// There are no setters: any update produces a fresh Point, so the two
// representations can never drift apart.
//
// Conventions:
//
//   - r ≥ 0 is the distance from the origin;
//   - phi ∈ [0, 2π] is the azimuth in the xy-plane, measured from +x;
//   - theta ∈ [0, π] is the polar angle, measured from +z.
//
// Angle normalization is a single wrap-around correction: a value outside its
// range is shifted by exactly one period. Values more than one period out of
// range stay invalid, so callers must keep perturbation steps within one
// period of the valid range.
package spherical

import (
	"fmt"
	"math"
)

// twoPi is the azimuth period.
const twoPi = 2 * math.Pi

// Point is a 3D point stored redundantly in Cartesian (x, y, z) and
// spherical (r, phi, theta) form. The zero value is the origin with zero
// angles and is ready to use.
type Point struct {
	x, y, z       float64
	r, phi, theta float64
}

// NewCartesian builds a Point from a Cartesian triple.
//
// The azimuth is derived with atan2 and wrapped into [0, 2π); the polar
// angle is acos(z/r), with the quotient clamped to the acos domain against
// rounding. The origin (r == 0) maps to phi = 0, theta = 0.
//
// Complexity: O(1).
func NewCartesian(x, y, z float64) Point {
	r := math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return Point{}
	}
	phi := math.Atan2(y, x)
	if phi < 0 {
		phi += twoPi
	}
	cosTheta := z / r
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}
	return Point{
		x: x, y: y, z: z,
		r:     r,
		phi:   phi,
		theta: math.Acos(cosTheta),
	}
}

// NewSpherical builds a Point from a spherical triple. The angles are
// normalized first (single wrap-around, see the package comment), then the
// Cartesian fields are derived.
//
// Contracts:
//   - r ≥ 0 (negative radii are the caller's bug, not representable state);
//   - phi within one period of [0, 2π], theta within one period of [0, π].
//
// Complexity: O(1).
func NewSpherical(r, phi, theta float64) Point {
	phi, theta = wrap(phi, theta)
	sinTheta := math.Sin(theta)
	return Point{
		x:     r * sinTheta * math.Cos(phi),
		y:     r * sinTheta * math.Sin(phi),
		z:     r * math.Cos(theta),
		r:     r,
		phi:   phi,
		theta: theta,
	}
}

// wrap applies the single wrap-around correction to both angles.
// Already-normalized values pass through untouched, so the correction is
// idempotent.
func wrap(phi, theta float64) (float64, float64) {
	if phi < 0 {
		phi += twoPi
	} else if phi > twoPi {
		phi -= twoPi
	}
	if theta < 0 {
		theta += math.Pi
	} else if theta > math.Pi {
		theta -= math.Pi
	}
	return phi, theta
}

// X returns the Cartesian x coordinate.
func (p Point) X() float64 { return p.x }

// Y returns the Cartesian y coordinate.
func (p Point) Y() float64 { return p.y }

// Z returns the Cartesian z coordinate.
func (p Point) Z() float64 { return p.z }

// R returns the radial distance from the origin.
func (p Point) R() float64 { return p.r }

// Phi returns the azimuth in [0, 2π].
func (p Point) Phi() float64 { return p.phi }

// Theta returns the polar angle in [0, π].
func (p Point) Theta() float64 { return p.theta }

// Distance returns the Euclidean distance between two points.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	dx := b.x - a.x
	dy := b.y - a.y
	dz := b.z - a.z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// CosAngle returns the cosine of the angle formed at vertex v by the rays
// toward a and b.
//
// Contracts: a and b must both differ from v; a coincident point zeroes the
// denominator and the result is undefined.
//
// Complexity: O(1).
func CosAngle(v, a, b Point) float64 {
	ax, ay, az := a.x-v.x, a.y-v.y, a.z-v.z
	bx, by, bz := b.x-v.x, b.y-v.y, b.z-v.z
	dot := ax*bx + ay*by + az*bz
	return dot / math.Sqrt(ax*ax+ay*ay+az*az) / math.Sqrt(bx*bx+by*by+bz*bz)
}

// String renders all six coordinates as one fixed-width, tab-separated row.
func (p Point) String() string {
	return fmt.Sprintf("%-10.5f\t%-10.5f\t%-10.5f\t%-10.5f\t%-10.5f\t%-10.5f",
		p.x, p.y, p.z, p.r, p.phi, p.theta)
}
