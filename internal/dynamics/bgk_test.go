package dynamics

import (
	"math"
	"testing"

	"github.com/san-kum/lbmcore/internal/cell"
	"github.com/san-kum/lbmcore/internal/descriptor"
	"github.com/san-kum/lbmcore/internal/moments"
)

func restingCell(desc descriptor.Descriptor, dyn Dynamics) *cell.Cell {
	c := cell.New(dyn)
	for i := 0; i < desc.Q(); i++ {
		c.F[i] = desc.T(i)
	}
	return c
}

// TestBGKRestingFluidIsFixedPoint checks that a resting fluid
// (rhoBar=0, j=0) is an exact fixed point of collision, for any omega.
func TestBGKRestingFluidIsFixedPoint(t *testing.T) {
	desc := descriptor.D2Q9
	dyn := NewBGK(desc, 1.3)
	c := restingCell(desc, dyn)
	before := append([]float64(nil), c.F...)

	if err := dyn.Collide(c, nil, false); err != nil {
		t.Fatalf("Collide returned error: %v", err)
	}
	for i := range c.F {
		if math.Abs(c.F[i]-before[i]) > 1e-12 {
			t.Errorf("population %d drifted: %v -> %v", i, before[i], c.F[i])
		}
	}
}

// TestBGKConservesMassAndMomentum checks that collision only
// redistributes populations among directions: it must not change the
// zeroth (mass) or first (momentum) moment.
func TestBGKConservesMassAndMomentum(t *testing.T) {
	desc := descriptor.D3Q19
	dyn := NewBGK(desc, 1.7)
	c := cell.New(dyn)
	// A non-trivial state: equilibrium plus an arbitrary non-equilibrium
	// perturbation that itself carries no net mass or momentum.
	rhoBar, j := 0.05, []float64{0.02, -0.01, 0.005}
	jSqr := j[0]*j[0] + j[1]*j[1] + j[2]*j[2]
	for i := 0; i < desc.Q(); i++ {
		c.F[i] = dyn.ComputeEquilibrium(i, rhoBar, j, jSqr)
	}
	c.F[0] += 0.001
	c.F[desc.Opposite(1)] -= 0.0005
	c.F[1] -= 0.0005

	rhoBefore, jBefore := sumMoments(desc, c)

	if err := dyn.Collide(c, nil, false); err != nil {
		t.Fatalf("Collide returned error: %v", err)
	}

	rhoAfter, jAfter := sumMoments(desc, c)
	if math.Abs(rhoAfter-rhoBefore) > 1e-10 {
		t.Errorf("mass not conserved: %v -> %v", rhoBefore, rhoAfter)
	}
	for k := range jBefore {
		if math.Abs(jAfter[k]-jBefore[k]) > 1e-10 {
			t.Errorf("momentum component %d not conserved: %v -> %v", k, jBefore[k], jAfter[k])
		}
	}
}

func sumMoments(desc descriptor.Descriptor, c *cell.Cell) (float64, []float64) {
	rho := 0.0
	j := make([]float64, desc.D())
	for i := 0; i < desc.Q(); i++ {
		rho += c.F[i]
		for k := 0; k < desc.D(); k++ {
			j[k] += c.F[i] * float64(desc.C(i, k))
		}
	}
	return rho, j
}

// TestDecomposeRecomposeRoundTripOrder0 checks that order 0 keeps the
// full non-equilibrium population, so recompose reproduces any prior
// state exactly.
func TestDecomposeRecomposeRoundTripOrder0(t *testing.T) {
	desc := descriptor.D2Q9
	dyn := NewBGK(desc, 1.4)
	c := cell.New(dyn)
	for i := 0; i < desc.Q(); i++ {
		c.F[i] = desc.T(i) + 0.001*float64(i)
	}
	before := append([]float64(nil), c.F...)

	raw, err := dyn.Decompose(c, 0)
	if err != nil {
		t.Fatalf("Decompose error: %v", err)
	}
	if err := dyn.Recompose(c, raw, 0); err != nil {
		t.Fatalf("Recompose error: %v", err)
	}

	for i := range c.F {
		if math.Abs(c.F[i]-before[i]) > 1e-9 {
			t.Errorf("population %d round-trip mismatch: %v -> %v", i, before[i], c.F[i])
		}
	}
}

// TestDecomposeRecomposeRoundTripOrder1 checks order 1 on a state that
// already carries no information beyond (rhoBar, j, PiNeq) -- i.e. one
// produced by Regularize -- since order 1 decomposition discards higher
// Hermite modes and is not lossless on an arbitrary population.
func TestDecomposeRecomposeRoundTripOrder1(t *testing.T) {
	desc := descriptor.D2Q9
	dyn := NewRegularizedBGK(desc, 1.4)
	c := cell.New(dyn)
	rhoBar, j := 0.03, []float64{0.01, -0.02}
	piNeq := []float64{0.002, -0.0005, 0.0011}
	if err := dyn.Regularize(c, rhoBar, j, piNeq); err != nil {
		t.Fatalf("Regularize error: %v", err)
	}
	before := append([]float64(nil), c.F...)

	raw, err := dyn.Decompose(c, 1)
	if err != nil {
		t.Fatalf("Decompose error: %v", err)
	}
	if err := dyn.Recompose(c, raw, 1); err != nil {
		t.Fatalf("Recompose error: %v", err)
	}

	for i := range c.F {
		if math.Abs(c.F[i]-before[i]) > 1e-9 {
			t.Errorf("population %d round-trip mismatch: %v -> %v", i, before[i], c.F[i])
		}
	}
}

// TestRescaleIdentity checks that rescaling with xDxInv=1, xDt=1 -- a
// no-op change of unit -- leaves a decomposed buffer unchanged.
func TestRescaleIdentity(t *testing.T) {
	desc := descriptor.D3Q19
	dyn := NewBGK(desc, 1.5)
	c := cell.New(dyn)
	for i := 0; i < desc.Q(); i++ {
		c.F[i] = desc.T(i) + 0.0007*float64(i)
	}

	for _, order := range []int{0, 1} {
		raw, err := dyn.Decompose(c, order)
		if err != nil {
			t.Fatalf("order %d: Decompose error: %v", order, err)
		}
		before := append([]float64(nil), raw...)

		if err := dyn.Rescale(raw, 1, 1, order); err != nil {
			t.Fatalf("order %d: Rescale error: %v", order, err)
		}

		for i := range raw {
			if math.Abs(raw[i]-before[i]) > 1e-12 {
				t.Errorf("order %d: entry %d changed under identity rescale: %v -> %v", order, i, before[i], raw[i])
			}
		}
	}
}

// TestRegularizeIdempotent checks that regularizing an already
// regularized cell is a no-op.
func TestRegularizeIdempotent(t *testing.T) {
	desc := descriptor.D2Q9
	dyn := NewRegularizedBGK(desc, 1.6)
	c := cell.New(dyn)
	rhoBar, j := 0.02, []float64{0.01, -0.005}
	piNeq := []float64{0.001, 0.0002, -0.0008}

	if err := dyn.Regularize(c, rhoBar, j, piNeq); err != nil {
		t.Fatalf("first Regularize: %v", err)
	}
	after1 := append([]float64(nil), c.F...)

	rhoBar2, j2, piNeq2 := moments.ComputeRhoBarJPiNeq(desc, c, equilibriumFor(dyn))
	if err := dyn.Regularize(c, rhoBar2, j2, piNeq2); err != nil {
		t.Fatalf("second Regularize: %v", err)
	}

	for i := range c.F {
		if math.Abs(c.F[i]-after1[i]) > 1e-9 {
			t.Errorf("population %d not idempotent: %v -> %v", i, after1[i], c.F[i])
		}
	}
}
