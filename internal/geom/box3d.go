// Package geom provides the coordinate primitives shared by atomic blocks
// and data-processor generators: an inclusive integer bounding box and an
// ordered point list, both carrying the same shift/multiply/divide
// transform vocabulary.
package geom

// Box3D is an inclusive integer bounding box: every coordinate with
// X0<=x<=X1, Y0<=y<=Y1, Z0<=z<=Z1 lies inside it.
type Box3D struct {
	X0, X1 int
	Y0, Y1 int
	Z0, Z1 int
}

// NewBox3D builds a Box3D, panicking if the inclusive bounds are inverted.
func NewBox3D(x0, x1, y0, y1, z0, z1 int) Box3D {
	b := Box3D{x0, x1, y0, y1, z0, z1}
	if !b.Valid() {
		panic("geom: invalid Box3D bounds")
	}
	return b
}

// Valid reports whether the box satisfies x0<=x1, y0<=y1, z0<=z1.
func (b Box3D) Valid() bool {
	return b.X0 <= b.X1 && b.Y0 <= b.Y1 && b.Z0 <= b.Z1
}

// Nx, Ny, Nz report the box's extent along each axis.
func (b Box3D) Nx() int { return b.X1 - b.X0 + 1 }
func (b Box3D) Ny() int { return b.Y1 - b.Y0 + 1 }
func (b Box3D) Nz() int { return b.Z1 - b.Z0 + 1 }

// NCells returns the total number of lattice sites in the box.
func (b Box3D) NCells() int { return b.Nx() * b.Ny() * b.Nz() }

// Contains reports whether (x,y,z) lies inside the box.
func (b Box3D) Contains(x, y, z int) bool {
	return x >= b.X0 && x <= b.X1 &&
		y >= b.Y0 && y <= b.Y1 &&
		z >= b.Z0 && z <= b.Z1
}

// Shift translates the box by (dx,dy,dz).
func (b Box3D) Shift(dx, dy, dz int) Box3D {
	return Box3D{b.X0 + dx, b.X1 + dx, b.Y0 + dy, b.Y1 + dy, b.Z0 + dz, b.Z1 + dz}
}

// Multiply scales every coordinate of the box by s.
func (b Box3D) Multiply(s int) Box3D {
	return Box3D{b.X0 * s, b.X1 * s, b.Y0 * s, b.Y1 * s, b.Z0 * s, b.Z1 * s}
}

// Divide performs integer division of every coordinate by s.
func (b Box3D) Divide(s int) Box3D {
	return Box3D{b.X0 / s, b.X1 / s, b.Y0 / s, b.Y1 / s, b.Z0 / s, b.Z1 / s}
}

// Intersect returns the overlap of b and other, and whether it is non-empty.
func (b Box3D) Intersect(other Box3D) (Box3D, bool) {
	r := Box3D{
		X0: max(b.X0, other.X0), X1: min(b.X1, other.X1),
		Y0: max(b.Y0, other.Y0), Y1: min(b.Y1, other.Y1),
		Z0: max(b.Z0, other.Z0), Z1: min(b.Z1, other.Z1),
	}
	return r, r.Valid()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
