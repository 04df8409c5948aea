package dynamics

import (
	"github.com/san-kum/lbmcore/internal/cell"
	"github.com/san-kum/lbmcore/internal/descriptor"
	"github.com/san-kum/lbmcore/internal/stats"
)

// ExternalMomentBGK is BGK with rho and j read from the cell's external
// scalars instead of derived from the populations; used when an outside
// coupling supplies the moments.
type ExternalMomentBGK struct {
	Omega float64
	desc  descriptor.Descriptor
}

func NewExternalMomentBGK(desc descriptor.Descriptor, omega float64) *ExternalMomentBGK {
	return &ExternalMomentBGK{Omega: omega, desc: desc}
}

func (b *ExternalMomentBGK) Descriptor() descriptor.Descriptor { return b.desc }

func (b *ExternalMomentBGK) Clone() cell.Dynamics {
	c := *b
	return &c
}

func (b *ExternalMomentBGK) ComputeEquilibrium(iPop int, rhoBar float64, j []float64, jSqr float64) float64 {
	invRho := descriptor.InvRho(rhoBar)
	return bgkMa2Equilibrium(b.desc, iPop, rhoBar, invRho, j, jSqr)
}

func (b *ExternalMomentBGK) externalMoments(c *cell.Cell) (rhoBar float64, j []float64) {
	ext := b.desc.External()
	rho := c.GetExternal(ext.DensityBeginsAt)
	j = make([]float64, b.desc.D())
	for k := 0; k < b.desc.D(); k++ {
		j[k] = c.GetExternal(ext.MomentumBeginsAt + k)
	}
	return descriptor.RhoBar(rho), j
}

func (b *ExternalMomentBGK) Collide(c *cell.Cell, st *stats.BlockStatistics, takesStats bool) error {
	rhoBar, j := b.externalMoments(c)
	uSqr := bgkMa2Collision(b.desc, c, rhoBar, descriptor.InvRho(rhoBar), j, b.Omega)
	gatherStatistics(st, takesStats, rhoBar, uSqr)
	return nil
}

func (b *ExternalMomentBGK) Regularize(c *cell.Cell, rhoBar float64, j []float64, piNeq []float64) error {
	return regularize(b, c, rhoBar, j, piNeq)
}

func (b *ExternalMomentBGK) NumDecomposedVariables(order int) int {
	return numDecomposedVariables(b.desc, order)
}
func (b *ExternalMomentBGK) Decompose(c *cell.Cell, order int) ([]float64, error) {
	return decompose(b, c, order)
}
func (b *ExternalMomentBGK) Recompose(c *cell.Cell, raw []float64, order int) error {
	return recompose(b, c, raw, order)
}
func (b *ExternalMomentBGK) Rescale(raw []float64, xDxInv, xDt float64, order int) error {
	return rescale(b.desc, raw, xDxInv, xDt, order)
}

func (b *ExternalMomentBGK) ComputeDeviatoricStress(c *cell.Cell) []float64 {
	return computeDeviatoricStress(b, c)
}
func (b *ExternalMomentBGK) ComputeHeatFlux(c *cell.Cell) []float64  { return computeHeatFlux(b) }
func (b *ExternalMomentBGK) ComputeTemperature(c *cell.Cell) float64 { return computeTemperature() }

func (b *ExternalMomentBGK) GetParameter(which descriptor.ParamID) float64 {
	if which == descriptor.ParamOmegaShear {
		return b.Omega
	}
	return 0
}

func (b *ExternalMomentBGK) SetParameter(which descriptor.ParamID, value float64) {
	if which == descriptor.ParamOmegaShear {
		b.Omega = value
	}
}

