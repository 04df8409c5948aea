package boundary

import (
	"github.com/san-kum/lbmcore/internal/block"
	"github.com/san-kum/lbmcore/internal/dataproc"
	"github.com/san-kum/lbmcore/internal/descriptor"
	"github.com/san-kum/lbmcore/internal/dynamics"
	"github.com/san-kum/lbmcore/internal/geom"
)

// ConstantVelocityInlet imposes a fixed macroscopic velocity at every
// cell in domain using the equilibrium scheme: populations are simply
// overwritten with f^eq(rhoBar, j) computed from the cell's own current
// density and the prescribed velocity, discarding the non-equilibrium
// part entirely. Cheap and stable at low Mach number, at the cost of
// suppressing any incoming non-equilibrium information -- the standard
// tradeoff for this scheme.
type ConstantVelocityInlet struct {
	Block    *block.AtomicBlock3D
	Domain   geom.Box3D
	Velocity []float64
}

func NewConstantVelocityInlet(b *block.AtomicBlock3D, domain geom.Box3D, velocity []float64) *ConstantVelocityInlet {
	return &ConstantVelocityInlet{Block: b, Domain: domain, Velocity: append([]float64(nil), velocity...)}
}

func (p *ConstantVelocityInlet) Process() error {
	desc := p.Block.Descriptor()
	j := make([]float64, desc.D())
	for x := p.Domain.X0; x <= p.Domain.X1; x++ {
		for y := p.Domain.Y0; y <= p.Domain.Y1; y++ {
			for z := p.Domain.Z0; z <= p.Domain.Z1; z++ {
				c := p.Block.Get(x, y, z)
				rho := c.SumF()
				rhoBar := descriptor.RhoBar(rho)
				for k := range j {
					j[k] = rho * p.Velocity[k]
				}
				jSqr := 0.0
				for _, jk := range j {
					jSqr += jk * jk
				}
				dyn := c.Dyn.(dynamics.Dynamics)
				for i := 0; i < desc.Q(); i++ {
					c.F[i] = dyn.ComputeEquilibrium(i, rhoBar, j, jSqr)
				}
			}
		}
	}
	return nil
}

func (p *ConstantVelocityInlet) Clone() dataproc.DataProcessor3D {
	c := *p
	c.Velocity = append([]float64(nil), p.Velocity...)
	return &c
}

func (p *ConstantVelocityInlet) Extent() int                       { return 0 }
func (p *ConstantVelocityInlet) ExtentDirection(direction int) int { return 0 }

// NewConstantVelocityInletGenerator builds a dataproc.Generator3D that
// resolves to a ConstantVelocityInlet once Generate is called with a
// single *block.AtomicBlock3D target.
func NewConstantVelocityInletGenerator(domain geom.Box3D, velocity []float64) *dataproc.BoxedGenerator3D {
	g := dataproc.NewBoxedGenerator3D(domain)
	g.NewProcessor = func(d geom.Box3D, blocks []dataproc.Target) (dataproc.DataProcessor3D, error) {
		b, err := singleBlock(blocks, "NewConstantVelocityInletGenerator")
		if err != nil {
			return nil, err
		}
		return NewConstantVelocityInlet(b, d, velocity), nil
	}
	return g
}
