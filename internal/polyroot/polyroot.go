// Package polyroot provides root pairing and quadratic reconstruction helpers
// used to turn zero/pole sets into real-coefficient second-order sections.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrUnpairedRoot is returned when a root set is not closed under complex
// conjugation or contains an odd number of real roots.
var ErrUnpairedRoot = errors.New("polyroot: root set cannot be paired")

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	return math.Abs(imag(a)+imag(b)) <= tol*math.Max(1, math.Abs(imag(a)))
}

// IsReal reports whether r has a negligible imaginary part.
func IsReal(r complex128) bool {
	return math.Abs(imag(r)) <= ConjugateTol*math.Max(1, math.Abs(real(r)))
}

// PairRoots groups roots into pairs that expand to real quadratics.
//
// Complex roots are matched with their closest conjugate. Real roots are
// paired in order of appearance, so callers control which real roots share
// a section. A trailing unmatched real root is returned as a pair with a
// zero second element and the second return value set to true.
func PairRoots(roots []complex128) (pairs [][2]complex128, single bool, err error) {
	used := make([]bool, len(roots))
	pairs = make([][2]complex128, 0, (len(roots)+1)/2)

	var reals []complex128

	for i, root := range roots {
		if used[i] {
			continue
		}

		if IsReal(root) {
			used[i] = true
			reals = append(reals, complex(real(root), 0))

			continue
		}

		conj := cmplx.Conj(root)
		best := -1
		bestDist := math.MaxFloat64

		for j := range roots {
			if i == j || used[j] {
				continue
			}

			if d := cmplx.Abs(roots[j] - conj); d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best == -1 || !IsConjugate(root, roots[best], ConjugateTol) {
			return nil, false, ErrUnpairedRoot
		}

		used[i] = true
		used[best] = true
		pairs = append(pairs, [2]complex128{root, cmplx.Conj(root)})
	}

	for i := 0; i+1 < len(reals); i += 2 {
		pairs = append(pairs, [2]complex128{reals[i], reals[i+1]})
	}

	if len(reals)%2 != 0 {
		pairs = append(pairs, [2]complex128{reals[len(reals)-1], 0})
		single = true
	}

	return pairs, single, nil
}

// QuadFromRoots expands (1 - r0*z^-1)(1 - r1*z^-1) into real coefficients
// (c1, c2) of 1 + c1*z^-1 + c2*z^-2. The pair must be a conjugate pair or
// two real roots.
func QuadFromRoots(pair [2]complex128) (float64, float64, error) {
	r0, r1 := pair[0], pair[1]

	if !IsReal(r0) || !IsReal(r1) {
		if !IsConjugate(r0, r1, ConjugateTol) {
			return 0, 0, ErrUnpairedRoot
		}

		a := real(r0)
		b := math.Abs(imag(r0))

		return -2 * a, a*a + b*b, nil
	}

	return -(real(r0) + real(r1)), real(r0) * real(r1), nil
}
