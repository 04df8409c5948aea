package descriptor

var d3q19Weights = [19]float64{
	1.0 / 3.0,
	1.0 / 18.0, 1.0 / 18.0, 1.0 / 18.0, 1.0 / 18.0, 1.0 / 18.0, 1.0 / 18.0,
	1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0,
	1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0,
	1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0,
}

var d3q19Velocities = [19][3]int{
	{0, 0, 0},
	{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
	{1, 1, 0}, {-1, -1, 0}, {1, -1, 0}, {-1, 1, 0},
	{1, 0, 1}, {-1, 0, -1}, {1, 0, -1}, {-1, 0, 1},
	{0, 1, 1}, {0, -1, -1}, {0, 1, -1}, {0, -1, 1},
}

var d3q19Opposite = [19]int{
	0,
	2, 1, 4, 3, 6, 5,
	8, 7, 10, 9,
	12, 11, 14, 13,
	16, 15, 18, 17,
}

// D3Q19Descriptor is the standard 3D, 19-velocity lattice.
type D3Q19Descriptor struct{}

// D3Q19 is the shared, program-wide D3Q19 descriptor instance.
var D3Q19 Descriptor = D3Q19Descriptor{}

func (D3Q19Descriptor) D() int { return 3 }
func (D3Q19Descriptor) Q() int { return 19 }

func (D3Q19Descriptor) T(i int) float64 { return d3q19Weights[i] }

func (D3Q19Descriptor) C(i, k int) int { return d3q19Velocities[i][k] }

func (D3Q19Descriptor) Opposite(i int) int { return d3q19Opposite[i] }

func (D3Q19Descriptor) Cs2() float64 { return 1.0 / 3.0 }

func (D3Q19Descriptor) InvCs2() float64 { return 3.0 }

func (D3Q19Descriptor) SkordosFactor() float64 { return 1.0 }

func (D3Q19Descriptor) External() ExternalField {
	return ExternalField{
		NumScalars:       7,
		DensityBeginsAt:  0,
		MomentumBeginsAt: 1,
		ForceBeginsAt:    4,
	}
}

func (D3Q19Descriptor) Name() string { return "D3Q19" }
