package dynamics

import (
	"github.com/san-kum/lbmcore/internal/cell"
	"github.com/san-kum/lbmcore/internal/descriptor"
	"github.com/san-kum/lbmcore/internal/moments"
	"github.com/san-kum/lbmcore/internal/stats"
)

// RLB is a composite dynamics: it owns a base Dynamics and, before every
// collision, completes the cell's populations by reconstructing them from
// (rhoBar, j, PiNeq) — discarding higher Hermite modes — then delegates
// the actual relaxation to the base. This mirrors Palabos's
// BulkCompositeDynamics pattern (a base dynamics held by owning handle,
// pre-processed via completePopulations) rather than a deep inheritance
// chain.
type RLB struct {
	Base Dynamics
}

// NewRLB wraps base in an RLB composite.
func NewRLB(base Dynamics) *RLB {
	return &RLB{Base: base}
}

func (r *RLB) Descriptor() descriptor.Descriptor { return r.Base.Descriptor() }

func (r *RLB) Clone() cell.Dynamics {
	return &RLB{Base: r.Base.Clone().(Dynamics)}
}

func (r *RLB) ComputeEquilibrium(iPop int, rhoBar float64, j []float64, jSqr float64) float64 {
	return r.Base.ComputeEquilibrium(iPop, rhoBar, j, jSqr)
}

// completePopulations reconstructs every population from the cell's
// current moments, without exploiting index symmetry (the composite's
// preprocessing step is a straight loop over all q directions, unlike the
// half-cost regularize() used inside RegularizedBGK's own collide()).
func (r *RLB) completePopulations(c *cell.Cell) {
	desc := r.Base.Descriptor()
	rhoBar, j, piNeq := moments.ComputeRhoBarJPiNeq(desc, c, equilibriumFor(r))
	jSqr := moments.NormSqr(j)
	for i := 0; i < desc.Q(); i++ {
		c.F[i] = r.ComputeEquilibrium(i, rhoBar, j, jSqr) + moments.FromPiToFneq(desc, piNeq, i)
	}
}

func (r *RLB) Collide(c *cell.Cell, st *stats.BlockStatistics, takesStats bool) error {
	r.completePopulations(c)
	return r.Base.Collide(c, st, takesStats)
}

func (r *RLB) Regularize(c *cell.Cell, rhoBar float64, j []float64, piNeq []float64) error {
	return r.Base.Regularize(c, rhoBar, j, piNeq)
}

func (r *RLB) NumDecomposedVariables(order int) int { return r.Base.NumDecomposedVariables(order) }
func (r *RLB) Decompose(c *cell.Cell, order int) ([]float64, error) {
	return r.Base.Decompose(c, order)
}
func (r *RLB) Recompose(c *cell.Cell, raw []float64, order int) error {
	return r.Base.Recompose(c, raw, order)
}
func (r *RLB) Rescale(raw []float64, xDxInv, xDt float64, order int) error {
	return r.Base.Rescale(raw, xDxInv, xDt, order)
}

func (r *RLB) ComputeDeviatoricStress(c *cell.Cell) []float64 { return r.Base.ComputeDeviatoricStress(c) }
func (r *RLB) ComputeHeatFlux(c *cell.Cell) []float64         { return r.Base.ComputeHeatFlux(c) }
func (r *RLB) ComputeTemperature(c *cell.Cell) float64        { return r.Base.ComputeTemperature(c) }

func (r *RLB) GetParameter(which descriptor.ParamID) float64 { return r.Base.GetParameter(which) }
func (r *RLB) SetParameter(which descriptor.ParamID, value float64) {
	r.Base.SetParameter(which, value)
}
