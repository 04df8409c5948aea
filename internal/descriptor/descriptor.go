// Package descriptor carries the velocity-set geometry, weights, and
// external-scalar layout that parameterize a lattice: space dimension d,
// velocity-set size q, discrete velocities, weights, sound speed, and the
// offsets of a cell's external scalar block. Descriptors are stateless,
// program-wide constants, following the "compile-time template" idiom of
// the original Palabos design ported to a runtime value type.
package descriptor

// ExternalField describes the offsets of a cell's external scalar block.
// A dynamics that needs externally-supplied moments (ExternalMomentBGK) or
// a body force (ForcedEntropic) reads/writes through these offsets.
type ExternalField struct {
	NumScalars      int
	DensityBeginsAt int
	MomentumBeginsAt int
	ForceBeginsAt   int
}

// ParamID enumerates the parameters exposed through Dynamics.GetParameter /
// SetParameter. Unknown IDs return 0 on get and are a no-op on set.
type ParamID int

const (
	ParamOmegaShear ParamID = iota
	ParamOmegaBulk
	ParamSqrSpeedOfSound
	// ParamExternalForceComponent0 and the following d-1 IDs address the
	// components of a per-cell external force parameter.
	ParamExternalForceComponent0
)

// Descriptor is the compile-time/parameterized table consumed by the
// dynamics and moment layers. Implementations are expected to be small
// value types (or pointers to package-level constants) that are safe to
// share across every cell and block using the same lattice.
type Descriptor interface {
	D() int
	Q() int
	T(i int) float64
	C(i, k int) int
	Opposite(i int) int
	Cs2() float64
	InvCs2() float64
	SkordosFactor() float64
	External() ExternalField
	Name() string
}

// InvRho returns 1/(1+rhoBar), the compressible-BGK equilibrium prefactor.
func InvRho(rhoBar float64) float64 { return 1.0 / (1.0 + rhoBar) }

// FullRho returns rho = 1 + rhoBar.
func FullRho(rhoBar float64) float64 { return 1.0 + rhoBar }

// RhoBar returns rhoBar = rho - 1.
func RhoBar(rho float64) float64 { return rho - 1.0 }

// PiNeqSize returns d(d+1)/2, the number of independent components of the
// symmetric non-equilibrium stress tensor for a d-dimensional descriptor.
func PiNeqSize(d int) int { return d * (d + 1) / 2 }
