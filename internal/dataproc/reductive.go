package dataproc

import (
	"github.com/san-kum/lbmcore/internal/geom"
	"github.com/san-kum/lbmcore/internal/stats"
)

// ReductiveGenerator3D is a Generator3D that additionally accumulates
// BlockStatistics as it runs, the way ReductiveDataProcessorGenerator3D
// pairs a generator with a statistics handle in Palabos. Kept as a
// separate interface (rather than folding a Statistics() accessor into
// Generator3D) because most generators never reduce anything.
type ReductiveGenerator3D interface {
	Generator3D
	Statistics() *stats.BlockStatistics
}

type baseReductiveGenerator3D struct {
	baseGenerator3D
	stat *stats.BlockStatistics
}

func (g *baseReductiveGenerator3D) Statistics() *stats.BlockStatistics {
	if g.stat == nil {
		g.stat = stats.New()
	}
	return g.stat
}

// BoxedReductiveGenerator3D is BoxedGenerator3D plus a statistics handle.
type BoxedReductiveGenerator3D struct {
	baseReductiveGenerator3D
	Domain geom.Box3D

	// NewProcessor builds the DataProcessor3D this generator resolves
	// to; it is handed the generator's own Statistics() handle so the
	// produced processor accumulates into the same accumulator the
	// generator exposes to its caller.
	NewProcessor func(domain geom.Box3D, blocks []Target, stat *stats.BlockStatistics) (DataProcessor3D, error)
}

func NewBoxedReductiveGenerator3D(domain geom.Box3D) *BoxedReductiveGenerator3D {
	return &BoxedReductiveGenerator3D{Domain: domain}
}

func (g *BoxedReductiveGenerator3D) Shift(dx, dy, dz int) { g.Domain = g.Domain.Shift(dx, dy, dz) }
func (g *BoxedReductiveGenerator3D) Multiply(scale int)   { g.Domain = g.Domain.Multiply(scale) }
func (g *BoxedReductiveGenerator3D) Divide(scale int)     { g.Domain = g.Domain.Divide(scale) }

func (g *BoxedReductiveGenerator3D) Extract(sub geom.Box3D) bool {
	inter, ok := g.Domain.Intersect(sub)
	if ok {
		g.Domain = inter
	}
	return ok
}

func (g *BoxedReductiveGenerator3D) Generate(blocks []Target) (DataProcessor3D, error) {
	if g.NewProcessor == nil {
		return nil, &PreconditionError{Op: "BoxedReductiveGenerator3D.Generate", Message: "no processor factory set"}
	}
	return g.NewProcessor(g.Domain, blocks, g.Statistics())
}

func (g *BoxedReductiveGenerator3D) Clone() Generator3D {
	c := *g
	c.stat = nil
	return &c
}

// DottedReductiveGenerator3D is DottedGenerator3D plus a statistics handle.
type DottedReductiveGenerator3D struct {
	baseReductiveGenerator3D
	Dots geom.DotList3D

	// NewProcessor builds the DataProcessor3D this generator resolves
	// to, handed the generator's own Statistics() handle.
	NewProcessor func(dots geom.DotList3D, blocks []Target, stat *stats.BlockStatistics) (DataProcessor3D, error)
}

func NewDottedReductiveGenerator3D(dots geom.DotList3D) *DottedReductiveGenerator3D {
	return &DottedReductiveGenerator3D{Dots: dots}
}

func (g *DottedReductiveGenerator3D) Shift(dx, dy, dz int) { g.Dots = g.Dots.Shift(dx, dy, dz) }
func (g *DottedReductiveGenerator3D) Multiply(scale int)   { g.Dots = g.Dots.Multiply(scale) }
func (g *DottedReductiveGenerator3D) Divide(scale int)     { g.Dots = g.Dots.Divide(scale) }

func (g *DottedReductiveGenerator3D) Extract(sub geom.Box3D) bool {
	extracted, ok := g.Dots.Extract(sub)
	if ok {
		g.Dots = extracted
	}
	return ok
}

func (g *DottedReductiveGenerator3D) Generate(blocks []Target) (DataProcessor3D, error) {
	if g.NewProcessor == nil {
		return nil, &PreconditionError{Op: "DottedReductiveGenerator3D.Generate", Message: "no processor factory set"}
	}
	return g.NewProcessor(g.Dots, blocks, g.Statistics())
}

func (g *DottedReductiveGenerator3D) Clone() Generator3D {
	c := *g
	c.stat = nil
	c.Dots = append(geom.DotList3D(nil), g.Dots...)
	return &c
}
