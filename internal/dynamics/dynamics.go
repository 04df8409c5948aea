// Package dynamics implements the polymorphic collision-rule family:
// BGK, regularized BGK, incompressible BGK, constant-density BGK,
// Chopard, and entropic BGK with Newton-Raphson stabilization, plus their
// forced/external-moment variants. Every variant shares the Dynamics
// contract so a block lattice can drive collision without knowing which
// concrete rule is installed on a given cell.
package dynamics

import (
	"github.com/san-kum/lbmcore/internal/cell"
	"github.com/san-kum/lbmcore/internal/descriptor"
	"github.com/san-kum/lbmcore/internal/moments"
	"github.com/san-kum/lbmcore/internal/stats"
)

// Dynamics is the full per-cell collision contract every collision rule
// implements. It embeds cell.Dynamics so a *Cell can hold it directly.
type Dynamics interface {
	cell.Dynamics

	Descriptor() descriptor.Descriptor

	// Collide applies one relaxation step to c, optionally gathering
	// (rhoBar, uSqr) into stats if the cell takes statistics.
	Collide(c *cell.Cell, st *stats.BlockStatistics, takesStats bool) error

	// ComputeEquilibrium evaluates f^eq(iPop; rhoBar, j, jSqr).
	ComputeEquilibrium(iPop int, rhoBar float64, j []float64, jSqr float64) float64

	// Regularize reconstructs c's populations from (rhoBar, j, PiNeq),
	// discarding higher Hermite modes.
	Regularize(c *cell.Cell, rhoBar float64, j []float64, piNeq []float64) error

	NumDecomposedVariables(order int) int
	Decompose(c *cell.Cell, order int) ([]float64, error)
	Recompose(c *cell.Cell, raw []float64, order int) error
	Rescale(raw []float64, xDxInv, xDt float64, order int) error

	ComputeDeviatoricStress(c *cell.Cell) []float64
	ComputeHeatFlux(c *cell.Cell) []float64
	ComputeTemperature(c *cell.Cell) float64

	GetParameter(which descriptor.ParamID) float64
	SetParameter(which descriptor.ParamID, value float64)

	Clone() cell.Dynamics
}

// equilibriumFor adapts a Dynamics' ComputeEquilibrium method to the
// moments.EquilibriumFunc shape used by ComputePiNeq/FromPiToFneq.
func equilibriumFor(dyn Dynamics) moments.EquilibriumFunc {
	return func(iPop int, rhoBar float64, j []float64, jSqr float64) float64 {
		return dyn.ComputeEquilibrium(iPop, rhoBar, j, jSqr)
	}
}

// gatherStatistics feeds one cell's (rhoBar, uSqr) reading into st, the way
// Palabos's collide() implementations finish with
// `if (cell.takesStatistics()) gatherStatistics(statistics, rhoBar, uSqr);`.
func gatherStatistics(st *stats.BlockStatistics, takesStats bool, rhoBar, uSqr float64) {
	if st == nil || !takesStats {
		return
	}
	st.Gather(rhoBar, uSqr)
}
