package dynamics

import (
	"github.com/san-kum/lbmcore/internal/cell"
	"github.com/san-kum/lbmcore/internal/descriptor"
	"github.com/san-kum/lbmcore/internal/moments"
	"github.com/san-kum/lbmcore/internal/stats"
)

// ForcedEntropic layers a Guo body-force correction onto the entropic
// solver: alpha is found from the unforced state, the force then enters
// as a half-step shift of the momentum used to build the relaxation
// target, and the remaining force contribution is added back after
// relaxation.
type ForcedEntropic struct {
	Omega float64
	desc  descriptor.Descriptor
}

func NewForcedEntropic(desc descriptor.Descriptor, omega float64) *ForcedEntropic {
	return &ForcedEntropic{Omega: omega, desc: desc}
}

func (e *ForcedEntropic) Descriptor() descriptor.Descriptor { return e.desc }

func (e *ForcedEntropic) Clone() cell.Dynamics {
	c := *e
	return &c
}

func (e *ForcedEntropic) ComputeEquilibrium(iPop int, rhoBar float64, j []float64, jSqr float64) float64 {
	rho := descriptor.FullRho(rhoBar)
	invRho := descriptor.InvRho(rhoBar)
	u := make([]float64, e.desc.D())
	for k := range u {
		u[k] = j[k] * invRho
	}
	return entropicEquilibrium(e.desc, iPop, rho, u)
}

func (e *ForcedEntropic) force(c *cell.Cell) []float64 {
	ext := e.desc.External()
	force := make([]float64, e.desc.D())
	for k := 0; k < e.desc.D(); k++ {
		force[k] = c.GetExternal(ext.ForceBeginsAt + k)
	}
	return force
}

// Collide applies the Guo forcing scheme: alpha is found from the
// unshifted equilibrium and non-equilibrium parts, momentum is then
// advanced by half a force step to build the equilibrium used in the
// relaxation write, and the remaining force contribution is added to
// the outgoing populations after relaxation.
func (e *ForcedEntropic) Collide(c *cell.Cell, st *stats.BlockStatistics, takesStats bool) error {
	desc := e.desc
	rho, u := moments.ComputeRhoULb(desc, c)
	force := e.force(c)

	q := desc.Q()
	f := make([]float64, q)
	fNeq := make([]float64, q)
	for i := 0; i < q; i++ {
		fEq := entropicEquilibrium(desc, i, rho, u)
		fNeq[i] = c.F[i] - fEq
		f[i] = c.F[i] + desc.T(i)
	}

	alpha, err := getAlpha(desc, f, fNeq)
	if err != nil {
		return err
	}

	uShifted := make([]float64, desc.D())
	for k := range uShifted {
		uShifted[k] = u[k] + 0.5*force[k]
	}

	omegaTot := e.Omega / 2 * alpha
	invCs2 := desc.InvCs2()
	for i := 0; i < q; i++ {
		fEqShifted := entropicEquilibrium(desc, i, rho, uShifted)
		c.F[i] *= 1 - omegaTot
		c.F[i] += omegaTot * fEqShifted

		cf := 0.0
		for k := 0; k < desc.D(); k++ {
			cf += float64(desc.C(i, k)) * force[k]
		}
		c.F[i] += (1 - omegaTot/2) * desc.T(i) * invCs2 * cf
	}

	uSqr := moments.NormSqr(uShifted)
	gatherStatistics(st, takesStats, descriptor.RhoBar(rho), uSqr)
	return nil
}

func (e *ForcedEntropic) Regularize(c *cell.Cell, rhoBar float64, j []float64, piNeq []float64) error {
	return regularize(e, c, rhoBar, j, piNeq)
}

func (e *ForcedEntropic) NumDecomposedVariables(order int) int {
	return numDecomposedVariables(e.desc, order)
}
func (e *ForcedEntropic) Decompose(c *cell.Cell, order int) ([]float64, error) {
	return decompose(e, c, order)
}
func (e *ForcedEntropic) Recompose(c *cell.Cell, raw []float64, order int) error {
	return recompose(e, c, raw, order)
}
func (e *ForcedEntropic) Rescale(raw []float64, xDxInv, xDt float64, order int) error {
	return rescale(e.desc, raw, xDxInv, xDt, order)
}

func (e *ForcedEntropic) ComputeDeviatoricStress(c *cell.Cell) []float64 {
	return computeDeviatoricStress(e, c)
}
func (e *ForcedEntropic) ComputeHeatFlux(c *cell.Cell) []float64  { return computeHeatFlux(e) }
func (e *ForcedEntropic) ComputeTemperature(c *cell.Cell) float64 { return computeTemperature() }

func (e *ForcedEntropic) GetParameter(which descriptor.ParamID) float64 {
	if which == descriptor.ParamOmegaShear {
		return e.Omega
	}
	return 0
}

func (e *ForcedEntropic) SetParameter(which descriptor.ParamID, value float64) {
	if which == descriptor.ParamOmegaShear {
		e.Omega = value
	}
}
