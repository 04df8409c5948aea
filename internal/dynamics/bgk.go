package dynamics

import (
	"github.com/san-kum/lbmcore/internal/cell"
	"github.com/san-kum/lbmcore/internal/descriptor"
	"github.com/san-kum/lbmcore/internal/moments"
	"github.com/san-kum/lbmcore/internal/stats"
)

// BGK is the standard compressible BGK collision operator:
// f[i] <- f[i] + omega*(f^eq(i; rhoBar, j) - f[i]).
type BGK struct {
	Omega float64
	desc  descriptor.Descriptor
}

// NewBGK returns a BGK dynamics over desc with relaxation rate omega.
func NewBGK(desc descriptor.Descriptor, omega float64) *BGK {
	return &BGK{Omega: omega, desc: desc}
}

func (b *BGK) Descriptor() descriptor.Descriptor { return b.desc }

func (b *BGK) Clone() cell.Dynamics {
	c := *b
	return &c
}

func (b *BGK) ComputeEquilibrium(iPop int, rhoBar float64, j []float64, jSqr float64) float64 {
	invRho := descriptor.InvRho(rhoBar)
	return bgkMa2Equilibrium(b.desc, iPop, rhoBar, invRho, j, jSqr)
}

func (b *BGK) Collide(c *cell.Cell, st *stats.BlockStatistics, takesStats bool) error {
	rhoBar, j := moments.GetRhoBarJ(b.desc, c)
	uSqr := bgkMa2Collision(b.desc, c, rhoBar, descriptor.InvRho(rhoBar), j, b.Omega)
	gatherStatistics(st, takesStats, rhoBar, uSqr)
	return nil
}

func (b *BGK) Regularize(c *cell.Cell, rhoBar float64, j []float64, piNeq []float64) error {
	return regularize(b, c, rhoBar, j, piNeq)
}

func (b *BGK) NumDecomposedVariables(order int) int { return numDecomposedVariables(b.desc, order) }
func (b *BGK) Decompose(c *cell.Cell, order int) ([]float64, error) { return decompose(b, c, order) }
func (b *BGK) Recompose(c *cell.Cell, raw []float64, order int) error {
	return recompose(b, c, raw, order)
}
func (b *BGK) Rescale(raw []float64, xDxInv, xDt float64, order int) error {
	return rescale(b.desc, raw, xDxInv, xDt, order)
}

func (b *BGK) ComputeDeviatoricStress(c *cell.Cell) []float64 { return computeDeviatoricStress(b, c) }
func (b *BGK) ComputeHeatFlux(c *cell.Cell) []float64         { return computeHeatFlux(b) }
func (b *BGK) ComputeTemperature(c *cell.Cell) float64        { return computeTemperature() }

func (b *BGK) GetParameter(which descriptor.ParamID) float64 {
	if which == descriptor.ParamOmegaShear {
		return b.Omega
	}
	return 0
}

func (b *BGK) SetParameter(which descriptor.ParamID, value float64) {
	if which == descriptor.ParamOmegaShear {
		b.Omega = value
	}
}
