package dynamics

import (
	"math"

	"github.com/san-kum/lbmcore/internal/cell"
	"github.com/san-kum/lbmcore/internal/descriptor"
	"github.com/san-kum/lbmcore/internal/moments"
	"github.com/san-kum/lbmcore/internal/stats"
)

// newtonRaphsonVar and newtonRaphsonMaxIter follow Palabos's entropic
// solver constants (var=100, max 10000 iterations).
const (
	newtonRaphsonVar      = 100.0
	newtonRaphsonMaxIter  = 10000
	entropicAlphaInitial  = 2.0
)

// entropicEquilibrium is the standard (exact, not O(Ma^2)) discrete
// Maxwellian used by the entropic family, evaluated from physical density
// and velocity rather than (rhoBar, j).
func entropicEquilibrium(desc descriptor.Descriptor, iPop int, rho float64, u []float64) float64 {
	t := desc.T(iPop)
	invCs2 := desc.InvCs2()

	cu := 0.0
	uu := 0.0
	for k := 0; k < desc.D(); k++ {
		cu += float64(desc.C(iPop, k)) * u[k]
		uu += u[k] * u[k]
	}
	return t * rho * (1 + invCs2*cu + 0.5*invCs2*invCs2*cu*cu - 0.5*invCs2*uu)
}

// computeEntropy returns H(f) = sum_i f[i]*log(f[i]/t[i]). Every f[i] must
// be strictly positive at every evaluation during root-finding.
func computeEntropy(desc descriptor.Descriptor, f []float64) (float64, error) {
	h := 0.0
	for i, fi := range f {
		if fi <= 0 {
			return 0, &NumericError{Op: "computeEntropy", Message: "non-positive population during H-function evaluation"}
		}
		h += fi * math.Log(fi/desc.T(i))
	}
	return h, nil
}

func entropyGrowth(desc descriptor.Descriptor, f, fNeq []float64, alpha float64) (float64, error) {
	shifted := make([]float64, len(f))
	for i := range f {
		shifted[i] = f[i] - alpha*fNeq[i]
	}
	hf, err := computeEntropy(desc, f)
	if err != nil {
		return 0, err
	}
	hShifted, err := computeEntropy(desc, shifted)
	if err != nil {
		return 0, err
	}
	return hf - hShifted, nil
}

func entropyGrowthDerivative(desc descriptor.Descriptor, f, fNeq []float64, alpha float64) (float64, error) {
	deriv := 0.0
	for i := range f {
		tmp := f[i] - alpha*fNeq[i]
		if tmp <= 0 {
			return 0, &NumericError{Op: "entropyGrowthDerivative", Message: "non-positive population during H-function evaluation"}
		}
		deriv += fNeq[i] * math.Log(tmp/desc.T(i))
	}
	return deriv, nil
}

// getAlpha runs the entropic stabilization Newton-Raphson iteration,
// returning the converged alpha or a NumericError on failure
// (non-convergence within newtonRaphsonMaxIter iterations, or a
// non-positive population encountered along the way) rather than
// terminating the process.
func getAlpha(desc descriptor.Descriptor, f, fNeq []float64) (float64, error) {
	alpha := entropicAlphaInitial
	epsilon := math.Nextafter(1, 2) - 1
	errorMax := epsilon * newtonRaphsonVar
	errVal := 1.0

	for iter := 0; iter < newtonRaphsonMaxIter; iter++ {
		growth, err := entropyGrowth(desc, f, fNeq, alpha)
		if err != nil {
			return alpha, err
		}
		deriv, err := entropyGrowthDerivative(desc, f, fNeq, alpha)
		if err != nil {
			return alpha, err
		}
		if errVal < errorMax || math.Abs(growth) < newtonRaphsonVar*epsilon {
			return alpha, nil
		}
		next := alpha - growth/deriv
		errVal = math.Abs(alpha - next)
		alpha = next
	}
	return alpha, &NumericError{
		Op: "getAlpha", LastAlpha: alpha, Residual: errVal, Iterations: newtonRaphsonMaxIter,
		Message: "Newton-Raphson entropic solver failed to converge",
	}
}

// Entropic is the Karlin-Succi-Chikatamarla entropic BGK dynamics: it
// solves for a stabilization parameter alpha preserving the discrete
// H-theorem before relaxing.
type Entropic struct {
	Omega float64
	desc  descriptor.Descriptor
}

func NewEntropic(desc descriptor.Descriptor, omega float64) *Entropic {
	return &Entropic{Omega: omega, desc: desc}
}

func (e *Entropic) Descriptor() descriptor.Descriptor { return e.desc }

func (e *Entropic) Clone() cell.Dynamics {
	c := *e
	return &c
}

// ComputeEquilibrium presents the entropic equilibrium through the shared
// (rhoBar, j, jSqr) signature so decompose/recompose/regularize work
// uniformly across every dynamics variant.
func (e *Entropic) ComputeEquilibrium(iPop int, rhoBar float64, j []float64, jSqr float64) float64 {
	rho := descriptor.FullRho(rhoBar)
	invRho := descriptor.InvRho(rhoBar)
	u := make([]float64, e.desc.D())
	for k := range u {
		u[k] = j[k] * invRho
	}
	return entropicEquilibrium(e.desc, iPop, rho, u)
}

func (e *Entropic) Collide(c *cell.Cell, st *stats.BlockStatistics, takesStats bool) error {
	desc := e.desc
	rho, u := moments.ComputeRhoULb(desc, c)
	uSqr := moments.NormSqr(u)

	q := desc.Q()
	f := make([]float64, q)
	fEq := make([]float64, q)
	fNeq := make([]float64, q)
	for i := 0; i < q; i++ {
		fEq[i] = entropicEquilibrium(desc, i, rho, u)
		fNeq[i] = c.F[i] - fEq[i]
		f[i] = c.F[i] + desc.T(i)
		fEq[i] += desc.T(i)
	}

	alpha, err := getAlpha(desc, f, fNeq)
	if err != nil {
		return err
	}

	omegaTot := e.Omega / 2 * alpha
	for i := 0; i < q; i++ {
		c.F[i] *= 1 - omegaTot
		c.F[i] += omegaTot * (fEq[i] - desc.T(i))
	}

	gatherStatistics(st, takesStats, descriptor.RhoBar(rho), uSqr)
	return nil
}

func (e *Entropic) Regularize(c *cell.Cell, rhoBar float64, j []float64, piNeq []float64) error {
	return regularize(e, c, rhoBar, j, piNeq)
}

func (e *Entropic) NumDecomposedVariables(order int) int {
	return numDecomposedVariables(e.desc, order)
}
func (e *Entropic) Decompose(c *cell.Cell, order int) ([]float64, error) {
	return decompose(e, c, order)
}
func (e *Entropic) Recompose(c *cell.Cell, raw []float64, order int) error {
	return recompose(e, c, raw, order)
}
func (e *Entropic) Rescale(raw []float64, xDxInv, xDt float64, order int) error {
	return rescale(e.desc, raw, xDxInv, xDt, order)
}

func (e *Entropic) ComputeDeviatoricStress(c *cell.Cell) []float64 { return computeDeviatoricStress(e, c) }
func (e *Entropic) ComputeHeatFlux(c *cell.Cell) []float64         { return computeHeatFlux(e) }
func (e *Entropic) ComputeTemperature(c *cell.Cell) float64        { return computeTemperature() }

func (e *Entropic) GetParameter(which descriptor.ParamID) float64 {
	if which == descriptor.ParamOmegaShear {
		return e.Omega
	}
	return 0
}

func (e *Entropic) SetParameter(which descriptor.ParamID, value float64) {
	if which == descriptor.ParamOmegaShear {
		e.Omega = value
	}
}
