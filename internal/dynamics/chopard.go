package dynamics

import (
	"github.com/san-kum/lbmcore/internal/cell"
	"github.com/san-kum/lbmcore/internal/descriptor"
	"github.com/san-kum/lbmcore/internal/moments"
	"github.com/san-kum/lbmcore/internal/stats"
)

// Chopard replaces cs2 with a site-tunable sound speed Vs2 through the
// correction term kappa = Vs2 - cs2. GetParameter/SetParameter expose
// omega_shear and sqrSpeedOfSound as mutually exclusive branches (a
// fallthrough between the two here would silently overwrite the wrong
// field).
type Chopard struct {
	Omega float64
	Vs2   float64
	desc  descriptor.Descriptor
}

func NewChopard(desc descriptor.Descriptor, vs2, omega float64) *Chopard {
	return &Chopard{Omega: omega, Vs2: vs2, desc: desc}
}

func (b *Chopard) Descriptor() descriptor.Descriptor { return b.desc }

func (b *Chopard) Clone() cell.Dynamics {
	c := *b
	return &c
}

func (b *Chopard) chopardEquilibrium(iPop int, rhoBar, invRho float64, j []float64, jSqr float64) float64 {
	desc := b.desc
	kappa := b.Vs2 - desc.Cs2()
	invCs2 := desc.InvCs2()

	if iPop == 0 {
		t0 := desc.T(0)
		return invCs2*(kappa*(t0-1)+rhoBar*(t0*b.Vs2-kappa)-invRho*jSqr*t0/2) + t0
	}

	cj := 0.0
	for k := 0; k < desc.D(); k++ {
		cj += float64(desc.C(iPop, k)) * j[k]
	}
	t := desc.T(iPop)
	return invCs2*t*(kappa+rhoBar*b.Vs2+cj+invRho/2*(invCs2*cj*cj-jSqr)) + t
}

func (b *Chopard) ComputeEquilibrium(iPop int, rhoBar float64, j []float64, jSqr float64) float64 {
	invRho := descriptor.InvRho(rhoBar)
	return b.chopardEquilibrium(iPop, rhoBar, invRho, j, jSqr)
}

func (b *Chopard) chopardBgkCollision(c *cell.Cell, rhoBar float64, j []float64) float64 {
	jSqr := moments.NormSqr(j)
	invRho := descriptor.InvRho(rhoBar)
	for i := 0; i < b.desc.Q(); i++ {
		c.F[i] *= 1 - b.Omega
		c.F[i] += b.Omega * b.chopardEquilibrium(i, rhoBar, invRho, j, jSqr)
	}
	return invRho * invRho * jSqr
}

func (b *Chopard) Collide(c *cell.Cell, st *stats.BlockStatistics, takesStats bool) error {
	rhoBar, j := moments.GetRhoBarJ(b.desc, c)
	uSqr := b.chopardBgkCollision(c, rhoBar, j)
	gatherStatistics(st, takesStats, rhoBar, uSqr)
	return nil
}

func (b *Chopard) Regularize(c *cell.Cell, rhoBar float64, j []float64, piNeq []float64) error {
	return regularize(b, c, rhoBar, j, piNeq)
}

func (b *Chopard) NumDecomposedVariables(order int) int { return numDecomposedVariables(b.desc, order) }
func (b *Chopard) Decompose(c *cell.Cell, order int) ([]float64, error) {
	return decompose(b, c, order)
}
func (b *Chopard) Recompose(c *cell.Cell, raw []float64, order int) error {
	return recompose(b, c, raw, order)
}
func (b *Chopard) Rescale(raw []float64, xDxInv, xDt float64, order int) error {
	return rescale(b.desc, raw, xDxInv, xDt, order)
}

func (b *Chopard) ComputeDeviatoricStress(c *cell.Cell) []float64 { return computeDeviatoricStress(b, c) }
func (b *Chopard) ComputeHeatFlux(c *cell.Cell) []float64         { return computeHeatFlux(b) }
func (b *Chopard) ComputeTemperature(c *cell.Cell) float64        { return computeTemperature() }

// GetParameter/SetParameter deliberately use mutually exclusive branches:
// see the type doc comment.
func (b *Chopard) GetParameter(which descriptor.ParamID) float64 {
	switch which {
	case descriptor.ParamOmegaShear:
		return b.Omega
	case descriptor.ParamSqrSpeedOfSound:
		return b.Vs2
	default:
		return 0
	}
}

func (b *Chopard) SetParameter(which descriptor.ParamID, value float64) {
	switch which {
	case descriptor.ParamOmegaShear:
		b.Omega = value
	case descriptor.ParamSqrSpeedOfSound:
		b.Vs2 = value
	}
}
