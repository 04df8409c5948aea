package dynamics

import (
	"github.com/san-kum/lbmcore/internal/cell"
	"github.com/san-kum/lbmcore/internal/descriptor"
	"github.com/san-kum/lbmcore/internal/moments"
	"github.com/san-kum/lbmcore/internal/stats"
)

// RegularizedBGK reconstructs populations from (rhoBar, j, PiNeq) before
// relaxing, discarding higher Hermite modes.
type RegularizedBGK struct {
	Omega float64
	desc  descriptor.Descriptor
}

func NewRegularizedBGK(desc descriptor.Descriptor, omega float64) *RegularizedBGK {
	return &RegularizedBGK{Omega: omega, desc: desc}
}

func (b *RegularizedBGK) Descriptor() descriptor.Descriptor { return b.desc }

func (b *RegularizedBGK) Clone() cell.Dynamics {
	c := *b
	return &c
}

func (b *RegularizedBGK) ComputeEquilibrium(iPop int, rhoBar float64, j []float64, jSqr float64) float64 {
	invRho := descriptor.InvRho(rhoBar)
	return bgkMa2Equilibrium(b.desc, iPop, rhoBar, invRho, j, jSqr)
}

func (b *RegularizedBGK) Collide(c *cell.Cell, st *stats.BlockStatistics, takesStats bool) error {
	rhoBar, j, piNeq := moments.ComputeRhoBarJPiNeq(b.desc, c, equilibriumFor(b))
	uSqr, err := rlbCollision(b, c, rhoBar, j, piNeq, b.Omega)
	if err != nil {
		return err
	}
	gatherStatistics(st, takesStats, rhoBar, uSqr)
	return nil
}

func (b *RegularizedBGK) Regularize(c *cell.Cell, rhoBar float64, j []float64, piNeq []float64) error {
	return regularize(b, c, rhoBar, j, piNeq)
}

func (b *RegularizedBGK) NumDecomposedVariables(order int) int {
	return numDecomposedVariables(b.desc, order)
}
func (b *RegularizedBGK) Decompose(c *cell.Cell, order int) ([]float64, error) {
	return decompose(b, c, order)
}
func (b *RegularizedBGK) Recompose(c *cell.Cell, raw []float64, order int) error {
	return recompose(b, c, raw, order)
}
func (b *RegularizedBGK) Rescale(raw []float64, xDxInv, xDt float64, order int) error {
	return rescale(b.desc, raw, xDxInv, xDt, order)
}

func (b *RegularizedBGK) ComputeDeviatoricStress(c *cell.Cell) []float64 {
	return computeDeviatoricStress(b, c)
}
func (b *RegularizedBGK) ComputeHeatFlux(c *cell.Cell) []float64  { return computeHeatFlux(b) }
func (b *RegularizedBGK) ComputeTemperature(c *cell.Cell) float64 { return computeTemperature() }

func (b *RegularizedBGK) GetParameter(which descriptor.ParamID) float64 {
	if which == descriptor.ParamOmegaShear {
		return b.Omega
	}
	return 0
}

func (b *RegularizedBGK) SetParameter(which descriptor.ParamID, value float64) {
	if which == descriptor.ParamOmegaShear {
		b.Omega = value
	}
}
