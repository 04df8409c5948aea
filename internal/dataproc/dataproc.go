// Package dataproc implements the data-processor scheduling abstraction:
// generic operations over one or more blocks that are neither pure
// collision nor pure streaming (statistics gathering, boundary
// conditions, coupling terms), tagged with enough metadata for a caller
// to schedule them correctly without inspecting their bodies. It mirrors
// Palabos's DataProcessor3D / DataProcessorGenerator3D split: a generator
// describes WHERE and WHEN a processor applies, and produces the
// DataProcessor3D that actually runs.
package dataproc

import "github.com/san-kum/lbmcore/internal/geom"

// DomainType records whether a generator applies to a block's bulk cells
// only, or also touches its envelope (ghost) layer.
type DomainType int

const (
	Bulk DomainType = iota
	BulkAndEnvelope
)

// DataProcessor3D is a scheduled unit of work: process() runs it, extent()
// tells a caller how far outside its declared domain it reads.
type DataProcessor3D interface {
	Process() error
	Clone() DataProcessor3D
	Extent() int
	ExtentDirection(direction int) int
}

// Target is anything a generator can be applied to: an atomic block, in
// practice, but expressed narrowly here to avoid a dataproc -> block
// import cycle (block already imports dataproc to hold a processor list).
type Target interface {
	BoundingBox() geom.Box3D
}

// Generator3D produces a DataProcessor3D bound to a set of blocks and can
// be relocated (shifted, scaled, restricted to a subdomain) before that
// happens -- Palabos schedules processors this way so a single generator
// can be reused across grid levels via rescale.
type Generator3D interface {
	Shift(dx, dy, dz int)
	Multiply(scale int)
	Divide(scale int)
	Extract(sub geom.Box3D) bool
	Generate(blocks []Target) (DataProcessor3D, error)
	Clone() Generator3D
	AppliesTo() DomainType
	Rescale(dxScale, dtScale float64)
	GetModificationPattern() []bool
}

// baseGenerator3D holds the defaults every generator shares: apply to
// bulk only, no rescaling, and a single block is always considered
// written. Embedding it keeps concrete generators from repeating this
// boilerplate, the way DataProcessorGenerator3D provides virtual
// defaults in Palabos.
type baseGenerator3D struct {
	appliesTo DomainType
}

func (g *baseGenerator3D) AppliesTo() DomainType { return g.appliesTo }
func (g *baseGenerator3D) Rescale(dxScale, dtScale float64) {}
func (g *baseGenerator3D) GetModificationPattern() []bool { return []bool{true} }

// BoxedGenerator3D applies to a fixed rectangular domain. It carries no
// processor logic of its own: NewProcessor is the factory a concrete
// boundary/coupling constructor plugs in (see package boundary), so this
// type stays reusable as the shift/multiply/divide/extract machinery
// shared by every boxed generator, the way Palabos's
// BoxedDataProcessorGenerator3D is a template a concrete generator
// subclasses to supply generate().
type BoxedGenerator3D struct {
	baseGenerator3D
	Domain geom.Box3D

	// NewProcessor builds the DataProcessor3D this generator resolves
	// to, given its current (post-shift/extract) domain and the blocks
	// it is applied over. Nil until a concrete constructor sets it.
	NewProcessor func(domain geom.Box3D, blocks []Target) (DataProcessor3D, error)
}

func NewBoxedGenerator3D(domain geom.Box3D) *BoxedGenerator3D {
	return &BoxedGenerator3D{Domain: domain}
}

func (g *BoxedGenerator3D) Shift(dx, dy, dz int) { g.Domain = g.Domain.Shift(dx, dy, dz) }
func (g *BoxedGenerator3D) Multiply(scale int)   { g.Domain = g.Domain.Multiply(scale) }
func (g *BoxedGenerator3D) Divide(scale int)     { g.Domain = g.Domain.Divide(scale) }

func (g *BoxedGenerator3D) Extract(sub geom.Box3D) bool {
	inter, ok := g.Domain.Intersect(sub)
	if ok {
		g.Domain = inter
	}
	return ok
}

// Generate resolves the generator against blocks by calling NewProcessor
// with the generator's current domain.
func (g *BoxedGenerator3D) Generate(blocks []Target) (DataProcessor3D, error) {
	if g.NewProcessor == nil {
		return nil, &PreconditionError{Op: "BoxedGenerator3D.Generate", Message: "no processor factory set"}
	}
	return g.NewProcessor(g.Domain, blocks)
}

func (g *BoxedGenerator3D) Clone() Generator3D {
	c := *g
	return &c
}

// DottedGenerator3D applies to an explicit, possibly non-contiguous list
// of cells rather than a box -- used for coupling terms attached to
// scattered boundary sites.
type DottedGenerator3D struct {
	baseGenerator3D
	Dots geom.DotList3D

	// NewProcessor builds the DataProcessor3D this generator resolves
	// to, given its current (post-shift/extract) dot list and the
	// blocks it is applied over.
	NewProcessor func(dots geom.DotList3D, blocks []Target) (DataProcessor3D, error)
}

func NewDottedGenerator3D(dots geom.DotList3D) *DottedGenerator3D {
	return &DottedGenerator3D{Dots: dots}
}

func (g *DottedGenerator3D) Shift(dx, dy, dz int) { g.Dots = g.Dots.Shift(dx, dy, dz) }
func (g *DottedGenerator3D) Multiply(scale int)   { g.Dots = g.Dots.Multiply(scale) }
func (g *DottedGenerator3D) Divide(scale int)     { g.Dots = g.Dots.Divide(scale) }

func (g *DottedGenerator3D) Extract(sub geom.Box3D) bool {
	extracted, ok := g.Dots.Extract(sub)
	if ok {
		g.Dots = extracted
	}
	return ok
}

func (g *DottedGenerator3D) Generate(blocks []Target) (DataProcessor3D, error) {
	if g.NewProcessor == nil {
		return nil, &PreconditionError{Op: "DottedGenerator3D.Generate", Message: "no processor factory set"}
	}
	return g.NewProcessor(g.Dots, blocks)
}

func (g *DottedGenerator3D) Clone() Generator3D {
	c := *g
	c.Dots = append(geom.DotList3D(nil), g.Dots...)
	return &c
}
