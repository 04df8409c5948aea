package dynamics

import (
	"github.com/san-kum/lbmcore/internal/cell"
	"github.com/san-kum/lbmcore/internal/descriptor"
	"github.com/san-kum/lbmcore/internal/moments"
)

// The functions in this file implement the shared isothermal bulk
// dynamics behavior every BGK-family variant needs: decompose/
// recompose/rescale, the regularization formula, and the
// (constant-temperature) thermal no-ops. Every variant below delegates
// to these instead of re-implementing them, dispatching back to the
// concrete Dynamics through the interface for ComputeEquilibrium the
// way a C++ virtual call would.

// numDecomposedVariables implements Dynamics.NumDecomposedVariables.
func numDecomposedVariables(desc descriptor.Descriptor, order int) int {
	var n int
	if order == 0 {
		n = 1 + desc.D() + desc.Q()
	} else {
		n = 1 + desc.D() + descriptor.PiNeqSize(desc.D())
	}
	return n + desc.External().NumScalars
}

func decompose(dyn Dynamics, c *cell.Cell, order int) ([]float64, error) {
	desc := dyn.Descriptor()
	if order == 0 {
		return decomposeOrder0(dyn, desc, c), nil
	}
	return decomposeOrder1(dyn, desc, c), nil
}

func decomposeOrder0(dyn Dynamics, desc descriptor.Descriptor, c *cell.Cell) []float64 {
	rhoBar, j := moments.GetRhoBarJ(desc, c)
	jSqr := moments.NormSqr(j)

	raw := make([]float64, numDecomposedVariables(desc, 0))
	raw[0] = rhoBar
	copy(raw[1:1+desc.D()], j)

	base := 1 + desc.D()
	for i := 0; i < desc.Q(); i++ {
		raw[base+i] = c.F[i] - dyn.ComputeEquilibrium(i, rhoBar, j, jSqr)
	}

	offset := base + desc.Q()
	copy(raw[offset:], c.External)
	return raw
}

func decomposeOrder1(dyn Dynamics, desc descriptor.Descriptor, c *cell.Cell) []float64 {
	rhoBar, j, piNeq := moments.ComputeRhoBarJPiNeq(desc, c, equilibriumFor(dyn))

	raw := make([]float64, numDecomposedVariables(desc, 1))
	raw[0] = rhoBar
	copy(raw[1:1+desc.D()], j)
	copy(raw[1+desc.D():], piNeq)

	offset := 1 + desc.D() + descriptor.PiNeqSize(desc.D())
	copy(raw[offset:], c.External)
	return raw
}

func recompose(dyn Dynamics, c *cell.Cell, raw []float64, order int) error {
	desc := dyn.Descriptor()
	want := numDecomposedVariables(desc, order)
	if len(raw) != want {
		return &PreconditionError{Op: "Recompose", Message: "decomposition buffer size mismatch"}
	}
	if order == 0 {
		recomposeOrder0(dyn, desc, c, raw)
	} else {
		recomposeOrder1(dyn, desc, c, raw)
	}
	return nil
}

func recomposeOrder0(dyn Dynamics, desc descriptor.Descriptor, c *cell.Cell, raw []float64) {
	rhoBar := raw[0]
	j := append([]float64(nil), raw[1:1+desc.D()]...)
	jSqr := moments.NormSqr(j)

	base := 1 + desc.D()
	for i := 0; i < desc.Q(); i++ {
		c.F[i] = dyn.ComputeEquilibrium(i, rhoBar, j, jSqr) + raw[base+i]
	}

	offset := base + desc.Q()
	copy(c.External, raw[offset:])
}

func recomposeOrder1(dyn Dynamics, desc descriptor.Descriptor, c *cell.Cell, raw []float64) {
	rhoBar := raw[0]
	j := append([]float64(nil), raw[1:1+desc.D()]...)
	jSqr := moments.NormSqr(j)
	n := descriptor.PiNeqSize(desc.D())
	piNeq := append([]float64(nil), raw[1+desc.D():1+desc.D()+n]...)

	q := desc.Q()
	c.F[0] = dyn.ComputeEquilibrium(0, rhoBar, j, jSqr) + moments.FromPiToFneq(desc, piNeq, 0)
	for iPop := 1; iPop < q; iPop++ {
		opp := desc.Opposite(iPop)
		if opp < iPop {
			continue
		}
		fNeq := moments.FromPiToFneq(desc, piNeq, iPop)
		c.F[iPop] = dyn.ComputeEquilibrium(iPop, rhoBar, j, jSqr) + fNeq
		c.F[opp] = dyn.ComputeEquilibrium(opp, rhoBar, j, jSqr) + fNeq
	}

	offset := 1 + desc.D() + n
	copy(c.External, raw[offset:])
}

func rescale(desc descriptor.Descriptor, raw []float64, xDxInv, xDt float64, order int) error {
	want := numDecomposedVariables(desc, order)
	if len(raw) != want {
		return &PreconditionError{Op: "Rescale", Message: "decomposition buffer size mismatch"}
	}
	velScale := xDt * xDxInv
	for i := 0; i < desc.D(); i++ {
		raw[1+i] *= velScale
	}

	var n int
	if order == 0 {
		n = desc.Q()
	} else {
		n = descriptor.PiNeqSize(desc.D())
	}
	base := 1 + desc.D()
	for i := 0; i < n; i++ {
		raw[base+i] *= xDt
	}
	return nil
}

// regularize implements the RLB/RegularizedBGK reconstruction:
// f[i] <- f^eq(i) + fromPiToFneq(i, PiNeq), exploiting the symmetry
// fromPiToFneq(i) == fromPiToFneq(opposite(i)) to evaluate the
// non-equilibrium part once per pair of opposite directions.
func regularize(dyn Dynamics, c *cell.Cell, rhoBar float64, j []float64, piNeq []float64) error {
	desc := dyn.Descriptor()
	if len(piNeq) != descriptor.PiNeqSize(desc.D()) {
		return &PreconditionError{Op: "Regularize", Message: "PiNeq has wrong length for descriptor"}
	}
	jSqr := moments.NormSqr(j)
	q := desc.Q()

	c.F[0] = dyn.ComputeEquilibrium(0, rhoBar, j, jSqr) + moments.FromPiToFneq(desc, piNeq, 0)
	for iPop := 1; iPop < q; iPop++ {
		opp := desc.Opposite(iPop)
		if opp < iPop {
			continue
		}
		fNeq := moments.FromPiToFneq(desc, piNeq, iPop)
		c.F[iPop] = dyn.ComputeEquilibrium(iPop, rhoBar, j, jSqr) + fNeq
		c.F[opp] = dyn.ComputeEquilibrium(opp, rhoBar, j, jSqr) + fNeq
	}
	return nil
}

func computeDeviatoricStress(dyn Dynamics, c *cell.Cell) []float64 {
	desc := dyn.Descriptor()
	rhoBar, j := moments.GetRhoBarJ(desc, c)
	return moments.ComputePiNeq(desc, c, rhoBar, j, equilibriumFor(dyn))
}

// computeHeatFlux is always zero: this is an isothermal family, there is
// no separate temperature field to carry a heat flux.
func computeHeatFlux(dyn Dynamics) []float64 {
	return make([]float64, dyn.Descriptor().D())
}

// computeTemperature is always 1 for the same reason.
func computeTemperature() float64 { return 1.0 }

// bgkMa2Equilibrium is the O(Ma^2) Maxwell expansion shared by BGK,
// ExternalMomentBGK, IncBGK and ConstRhoBGK; they differ only in what they
// pass as invRho (1/(1+rhoBar) for compressible, 1 for incompressible).
func bgkMa2Equilibrium(desc descriptor.Descriptor, iPop int, rhoBar float64, invRho float64, j []float64, jSqr float64) float64 {
	t := desc.T(iPop)
	invCs2 := desc.InvCs2()

	cj := 0.0
	for k := 0; k < desc.D(); k++ {
		cj += float64(desc.C(iPop, k)) * j[k]
	}

	return t*(rhoBar+invCs2*cj+invRho*(0.5*invCs2*invCs2*cj*cj-0.5*invCs2*jSqr)) + t
}

// bgkMa2Collision relaxes every population of c toward
// bgkMa2Equilibrium(iPop, rhoBar, invRho, j, jSqr) at rate omega, returning
// the squared physical velocity for statistics gathering.
func bgkMa2Collision(desc descriptor.Descriptor, c *cell.Cell, rhoBar float64, invRho float64, j []float64, omega float64) float64 {
	jSqr := moments.NormSqr(j)
	for i := 0; i < desc.Q(); i++ {
		feq := bgkMa2Equilibrium(desc, i, rhoBar, invRho, j, jSqr)
		c.F[i] += omega * (feq - c.F[i])
	}
	return invRho * invRho * jSqr
}

// bgkMa2ConstRhoCollision is bgkMa2Collision scaled by ratioRho, used by
// ConstRhoBGK to enforce a global average density.
func bgkMa2ConstRhoCollision(desc descriptor.Descriptor, c *cell.Cell, rhoBar float64, j []float64, ratioRho float64, omega float64) float64 {
	invRho := descriptor.InvRho(rhoBar)
	jSqr := moments.NormSqr(j)
	for i := 0; i < desc.Q(); i++ {
		feq := bgkMa2Equilibrium(desc, i, rhoBar, invRho, j, jSqr)
		feqRatio := feq*ratioRho + desc.T(i)*(1.0-ratioRho)
		c.F[i] += omega * (feqRatio - c.F[i])
	}
	return invRho * invRho * jSqr
}

// rlbCollision is the RLB/RegularizedBGK collision: reconstruct via
// regularize, then relax at rate omega.
func rlbCollision(dyn Dynamics, c *cell.Cell, rhoBar float64, j []float64, piNeq []float64, omega float64) (float64, error) {
	if err := regularize(dyn, c, rhoBar, j, piNeq); err != nil {
		return 0, err
	}
	desc := dyn.Descriptor()
	invRho := descriptor.InvRho(rhoBar)
	jSqr := moments.NormSqr(j)
	for i := 0; i < desc.Q(); i++ {
		feq := dyn.ComputeEquilibrium(i, rhoBar, j, jSqr)
		c.F[i] = (1-omega)*c.F[i] + omega*feq
	}
	return invRho * invRho * jSqr, nil
}
