package dynamics

import (
	"github.com/san-kum/lbmcore/internal/cell"
	"github.com/san-kum/lbmcore/internal/descriptor"
	"github.com/san-kum/lbmcore/internal/moments"
	"github.com/san-kum/lbmcore/internal/stats"
)

// IncBGK is the incompressible variant of BGK: identical to BGK except the
// O(Ma^2) equilibrium term uses invRho=1 instead of 1/(1+rhoBar).
type IncBGK struct {
	Omega float64
	desc  descriptor.Descriptor
}

func NewIncBGK(desc descriptor.Descriptor, omega float64) *IncBGK {
	return &IncBGK{Omega: omega, desc: desc}
}

func (b *IncBGK) Descriptor() descriptor.Descriptor { return b.desc }

func (b *IncBGK) Clone() cell.Dynamics {
	c := *b
	return &c
}

func (b *IncBGK) ComputeEquilibrium(iPop int, rhoBar float64, j []float64, jSqr float64) float64 {
	return bgkMa2Equilibrium(b.desc, iPop, rhoBar, 1.0, j, jSqr)
}

func (b *IncBGK) Collide(c *cell.Cell, st *stats.BlockStatistics, takesStats bool) error {
	rhoBar, j := moments.GetRhoBarJ(b.desc, c)
	uSqr := bgkMa2Collision(b.desc, c, rhoBar, 1.0, j, b.Omega)
	gatherStatistics(st, takesStats, rhoBar, uSqr)
	return nil
}

func (b *IncBGK) Regularize(c *cell.Cell, rhoBar float64, j []float64, piNeq []float64) error {
	return regularize(b, c, rhoBar, j, piNeq)
}

func (b *IncBGK) NumDecomposedVariables(order int) int { return numDecomposedVariables(b.desc, order) }
func (b *IncBGK) Decompose(c *cell.Cell, order int) ([]float64, error) {
	return decompose(b, c, order)
}
func (b *IncBGK) Recompose(c *cell.Cell, raw []float64, order int) error {
	return recompose(b, c, raw, order)
}
func (b *IncBGK) Rescale(raw []float64, xDxInv, xDt float64, order int) error {
	return rescale(b.desc, raw, xDxInv, xDt, order)
}

func (b *IncBGK) ComputeDeviatoricStress(c *cell.Cell) []float64 { return computeDeviatoricStress(b, c) }
func (b *IncBGK) ComputeHeatFlux(c *cell.Cell) []float64         { return computeHeatFlux(b) }
func (b *IncBGK) ComputeTemperature(c *cell.Cell) float64        { return computeTemperature() }

func (b *IncBGK) GetParameter(which descriptor.ParamID) float64 {
	if which == descriptor.ParamOmegaShear {
		return b.Omega
	}
	return 0
}

func (b *IncBGK) SetParameter(which descriptor.ParamID, value float64) {
	if which == descriptor.ParamOmegaShear {
		b.Omega = value
	}
}
