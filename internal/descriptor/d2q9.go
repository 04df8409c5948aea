package descriptor

var d2q9Weights = [9]float64{
	4.0 / 9.0,
	1.0 / 9.0, 1.0 / 9.0, 1.0 / 9.0, 1.0 / 9.0,
	1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0,
}

var d2q9Velocities = [9][2]int{
	{0, 0},
	{1, 0}, {0, 1}, {-1, 0}, {0, -1},
	{1, 1}, {-1, 1}, {-1, -1}, {1, -1},
}

var d2q9Opposite = [9]int{0, 3, 4, 1, 2, 7, 8, 5, 6}

// D2Q9Descriptor is the standard 2D, 9-velocity lattice.
type D2Q9Descriptor struct{}

// D2Q9 is the shared, program-wide D2Q9 descriptor instance.
var D2Q9 Descriptor = D2Q9Descriptor{}

func (D2Q9Descriptor) D() int { return 2 }
func (D2Q9Descriptor) Q() int { return 9 }

func (D2Q9Descriptor) T(i int) float64 { return d2q9Weights[i] }

func (D2Q9Descriptor) C(i, k int) int { return d2q9Velocities[i][k] }

func (D2Q9Descriptor) Opposite(i int) int { return d2q9Opposite[i] }

func (D2Q9Descriptor) Cs2() float64 { return 1.0 / 3.0 }

func (D2Q9Descriptor) InvCs2() float64 { return 3.0 }

func (D2Q9Descriptor) SkordosFactor() float64 { return 1.0 }

func (D2Q9Descriptor) External() ExternalField {
	return ExternalField{
		NumScalars:       6,
		DensityBeginsAt:  0,
		MomentumBeginsAt: 1,
		ForceBeginsAt:    3,
	}
}

func (D2Q9Descriptor) Name() string { return "D2Q9" }
