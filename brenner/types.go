// Package brenner - parameter set, defaults and validation.
//
// Params is a plain value: copy it freely, pass it by value. Validation is
// separated from use so that drivers can fail fast once instead of checking
// inside the O(n³) hot path.
package brenner

import "errors"

// Sentinel errors returned by Params.Validate.
var (
	// ErrCutoffOrder indicates cutoff radii that do not satisfy 0 < R1 < R2.
	ErrCutoffOrder = errors.New("brenner: cutoff radii must satisfy 0 < R1 < R2")

	// ErrStiffnessRatio indicates S ≤ 1; S−1 divides both radial prefactors.
	ErrStiffnessRatio = errors.New("brenner: stiffness ratio S must exceed 1")

	// ErrWellDepth indicates a non-positive well depth De.
	ErrWellDepth = errors.New("brenner: well depth De must be positive")
)

// Params holds the constants of the bond-order potential. All runs in one
// process typically share a single value from DefaultParams.
type Params struct {
	R0     float64 // equilibrium pair distance
	R1     float64 // inner cutoff; full pair strength below this separation
	R2     float64 // outer cutoff; pairs beyond it do not interact at all
	De     float64 // well depth
	S      float64 // repulsive-to-attractive stiffness ratio
	Lambda float64 // radial decay rate
	Del    float64 // bond-order exponent
	A0     float64 // angular correction amplitude
	C0     float64 // angular correction numerator constant
	D0     float64 // angular correction denominator constant
}

// DefaultParams returns the canonical carbon-like parametrization. The model
// is used with these fixed values; they are not fitted or tuned at runtime.
//
// Complexity: O(1).
func DefaultParams() Params {
	return Params{
		R0:     1.315,
		R1:     1.7,
		R2:     2.0,
		De:     6.325,
		S:      1.29,
		Lambda: 1.5,
		Del:    0.80469,
		A0:     0.011304,
		C0:     19.0,
		D0:     2.5,
	}
}

// Validate reports the first structural defect of the parameter set, or nil.
// Energy methods assume a validated receiver.
//
// Complexity: O(1).
func (p Params) Validate() error {
	if p.R1 <= 0 || p.R2 <= p.R1 {
		return ErrCutoffOrder
	}
	if p.S <= 1 {
		return ErrStiffnessRatio
	}
	if p.De <= 0 {
		return ErrWellDepth
	}
	return nil
}
