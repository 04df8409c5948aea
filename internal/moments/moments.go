// Package moments implements the pure, stateless functions that turn a
// cell's populations into hydrodynamic moments: reduced density, momentum,
// non-equilibrium stress, and physical velocity. None of these functions
// branch on the cell's dynamics.
package moments

import (
	"github.com/san-kum/lbmcore/internal/cell"
	"github.com/san-kum/lbmcore/internal/descriptor"
)

// GetRhoBarJ computes rhoBar = sum_i f[i] - 1 and j[k] = sum_i f[i]*c[i][k].
func GetRhoBarJ(desc descriptor.Descriptor, c *cell.Cell) (rhoBar float64, j []float64) {
	d, q := desc.D(), desc.Q()
	j = make([]float64, d)
	rho := 0.0
	for i := 0; i < q; i++ {
		f := c.F[i]
		rho += f
		for k := 0; k < d; k++ {
			j[k] += f * float64(desc.C(i, k))
		}
	}
	return rho - 1.0, j
}

// NormSqr returns the squared Euclidean norm of a vector.
func NormSqr(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x * x
	}
	return s
}

// EquilibriumFunc computes f^eq(iPop; rhoBar, j, jSqr) for a specific
// dynamics variant; it lets ComputePiNeq stay agnostic of which collision
// rule is installed on a cell.
type EquilibriumFunc func(iPop int, rhoBar float64, j []float64, jSqr float64) float64

// ComputePiNeq computes Pi^neq_{ab} = sum_i f[i]*c[i][a]*c[i][b] - Pi^eq_{ab},
// returned as a flattened symmetric tensor of length d(d+1)/2 in row-major
// upper-triangular order: (0,0),(0,1),...,(0,d-1),(1,1),...,(d-1,d-1).
func ComputePiNeq(desc descriptor.Descriptor, c *cell.Cell, rhoBar float64, j []float64, eq EquilibriumFunc) []float64 {
	d, q := desc.D(), desc.Q()
	n := descriptor.PiNeqSize(d)
	piNeq := make([]float64, n)

	jSqr := NormSqr(j)
	for i := 0; i < q; i++ {
		f := c.F[i]
		feq := eq(i, rhoBar, j, jSqr)
		idx := 0
		for a := 0; a < d; a++ {
			ca := float64(desc.C(i, a))
			for b := a; b < d; b++ {
				cb := float64(desc.C(i, b))
				piNeq[idx] += (f - feq) * ca * cb
				idx++
			}
		}
	}
	return piNeq
}

// ComputeRhoULb computes the physical density rho = fullRho(rhoBar) and
// velocity u[k] = j[k]/rho.
func ComputeRhoULb(desc descriptor.Descriptor, c *cell.Cell) (rho float64, u []float64) {
	rhoBar, j := GetRhoBarJ(desc, c)
	rho = descriptor.FullRho(rhoBar)
	u = make([]float64, desc.D())
	for k := range u {
		u[k] = j[k] / rho
	}
	return rho, u
}

// ComputeRhoBarJPiNeq is the combined form of GetRhoBarJ + ComputePiNeq,
// returning all three quantities from one call (GetRhoBarJ's pass over
// the populations, then ComputePiNeq's).
func ComputeRhoBarJPiNeq(desc descriptor.Descriptor, c *cell.Cell, eq EquilibriumFunc) (rhoBar float64, j []float64, piNeq []float64) {
	rhoBar, j = GetRhoBarJ(desc, c)
	piNeq = ComputePiNeq(desc, c, rhoBar, j, eq)
	return rhoBar, j, piNeq
}

// FromPiToFneq reconstructs the non-equilibrium part of population iPop
// from the symmetric stress tensor PiNeq, exploiting the standard
// second-order Hermite projection:
//
//	f^neq(i) = t[i]/(2*cs2^2) * (c_i . PiNeq . c_i - cs2*trace(PiNeq))
func FromPiToFneq(desc descriptor.Descriptor, piNeq []float64, iPop int) float64 {
	d := desc.D()
	cs2 := desc.Cs2()
	trace := 0.0
	idx := 0
	traceIdx := make([]int, 0, d)
	for a := 0; a < d; a++ {
		traceIdx = append(traceIdx, idx)
		idx += d - a
	}
	for _, ti := range traceIdx {
		trace += piNeq[ti]
	}

	contraction := 0.0
	idx = 0
	for a := 0; a < d; a++ {
		ca := float64(desc.C(iPop, a))
		for b := a; b < d; b++ {
			cb := float64(desc.C(iPop, b))
			coeff := 1.0
			if a != b {
				coeff = 2.0
			}
			contraction += coeff * ca * cb * piNeq[idx]
			idx++
		}
	}

	return desc.T(iPop) / (2.0 * cs2 * cs2) * (contraction - cs2*trace)
}
