package dynamics

import (
	"github.com/san-kum/lbmcore/internal/cell"
	"github.com/san-kum/lbmcore/internal/descriptor"
	"github.com/san-kum/lbmcore/internal/moments"
	"github.com/san-kum/lbmcore/internal/stats"
)

// ConstRhoBGK corrects rho toward a global average before collision, using
// the block's *previous* published avRhoBar reading so readers never see a
// partially-updated accumulator (see package stats).
type ConstRhoBGK struct {
	Omega float64
	desc  descriptor.Descriptor
}

func NewConstRhoBGK(desc descriptor.Descriptor, omega float64) *ConstRhoBGK {
	return &ConstRhoBGK{Omega: omega, desc: desc}
}

func (b *ConstRhoBGK) Descriptor() descriptor.Descriptor { return b.desc }

func (b *ConstRhoBGK) Clone() cell.Dynamics {
	c := *b
	return &c
}

func (b *ConstRhoBGK) ComputeEquilibrium(iPop int, rhoBar float64, j []float64, jSqr float64) float64 {
	invRho := descriptor.InvRho(rhoBar)
	return bgkMa2Equilibrium(b.desc, iPop, rhoBar, invRho, j, jSqr)
}

func (b *ConstRhoBGK) Collide(c *cell.Cell, st *stats.BlockStatistics, takesStats bool) error {
	if st == nil {
		return &PreconditionError{Op: "ConstRhoBGK.Collide", Message: "requires a non-nil BlockStatistics to read avRhoBar"}
	}
	rhoBar, j := moments.GetRhoBarJ(b.desc, c)
	rho := descriptor.FullRho(rhoBar)

	deltaRho := -st.GetAverage(stats.AvRhoBar) + (1 - b.desc.SkordosFactor())
	ratioRho := 1 + deltaRho/rho

	uSqr := bgkMa2ConstRhoCollision(b.desc, c, rhoBar, j, ratioRho, b.Omega)
	gatherStatistics(st, takesStats, rhoBar+deltaRho, uSqr)
	return nil
}

func (b *ConstRhoBGK) Regularize(c *cell.Cell, rhoBar float64, j []float64, piNeq []float64) error {
	return regularize(b, c, rhoBar, j, piNeq)
}

func (b *ConstRhoBGK) NumDecomposedVariables(order int) int {
	return numDecomposedVariables(b.desc, order)
}
func (b *ConstRhoBGK) Decompose(c *cell.Cell, order int) ([]float64, error) {
	return decompose(b, c, order)
}
func (b *ConstRhoBGK) Recompose(c *cell.Cell, raw []float64, order int) error {
	return recompose(b, c, raw, order)
}
func (b *ConstRhoBGK) Rescale(raw []float64, xDxInv, xDt float64, order int) error {
	return rescale(b.desc, raw, xDxInv, xDt, order)
}

func (b *ConstRhoBGK) ComputeDeviatoricStress(c *cell.Cell) []float64 {
	return computeDeviatoricStress(b, c)
}
func (b *ConstRhoBGK) ComputeHeatFlux(c *cell.Cell) []float64  { return computeHeatFlux(b) }
func (b *ConstRhoBGK) ComputeTemperature(c *cell.Cell) float64 { return computeTemperature() }

func (b *ConstRhoBGK) GetParameter(which descriptor.ParamID) float64 {
	if which == descriptor.ParamOmegaShear {
		return b.Omega
	}
	return 0
}

func (b *ConstRhoBGK) SetParameter(which descriptor.ParamID, value float64) {
	if which == descriptor.ParamOmegaShear {
		b.Omega = value
	}
}
