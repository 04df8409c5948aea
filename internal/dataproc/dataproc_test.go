package dataproc

import (
	"testing"

	"github.com/san-kum/lbmcore/internal/geom"
)

func TestBoxedGenerator3DShiftMultiplyDivide(t *testing.T) {
	g := NewBoxedGenerator3D(geom.NewBox3D(0, 1, 0, 1, 0, 1))

	g.Shift(2, 3, 4)
	want := geom.NewBox3D(2, 3, 3, 4, 4, 5)
	if g.Domain != want {
		t.Fatalf("after Shift: got %+v, want %+v", g.Domain, want)
	}

	g.Multiply(2)
	want = geom.NewBox3D(4, 6, 6, 8, 8, 10)
	if g.Domain != want {
		t.Fatalf("after Multiply: got %+v, want %+v", g.Domain, want)
	}

	g.Divide(2)
	want = geom.NewBox3D(2, 3, 3, 4, 4, 5)
	if g.Domain != want {
		t.Fatalf("after Divide: got %+v, want %+v", g.Domain, want)
	}
}

func TestBoxedGenerator3DExtract(t *testing.T) {
	g := NewBoxedGenerator3D(geom.NewBox3D(0, 9, 0, 9, 0, 9))

	ok := g.Extract(geom.NewBox3D(5, 15, 5, 15, 0, 9))
	if !ok {
		t.Fatal("Extract should succeed for an overlapping subdomain")
	}
	want := geom.NewBox3D(5, 9, 5, 9, 0, 9)
	if g.Domain != want {
		t.Errorf("Extract narrowed to %+v, want %+v", g.Domain, want)
	}

	g2 := NewBoxedGenerator3D(geom.NewBox3D(0, 1, 0, 1, 0, 1))
	if g2.Extract(geom.NewBox3D(10, 20, 10, 20, 10, 20)) {
		t.Error("Extract should fail for a disjoint subdomain")
	}
}

func TestDottedGenerator3DShiftMultiplyDivide(t *testing.T) {
	dots := geom.DotList3D{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}}
	g := NewDottedGenerator3D(dots)

	g.Shift(1, 1, 1)
	if g.Dots[0] != (geom.Dot3D{X: 1, Y: 1, Z: 1}) || g.Dots[1] != (geom.Dot3D{X: 2, Y: 2, Z: 2}) {
		t.Fatalf("Shift produced unexpected dots: %+v", g.Dots)
	}

	g.Multiply(3)
	if g.Dots[0] != (geom.Dot3D{X: 3, Y: 3, Z: 3}) {
		t.Fatalf("Multiply produced unexpected dots: %+v", g.Dots)
	}

	g.Divide(3)
	if g.Dots[0] != (geom.Dot3D{X: 1, Y: 1, Z: 1}) {
		t.Fatalf("Divide produced unexpected dots: %+v", g.Dots)
	}
}

type fakeTarget struct{ box geom.Box3D }

func (f fakeTarget) BoundingBox() geom.Box3D { return f.box }

func TestBoxedGenerator3DGenerateCallsFactoryWithCurrentDomain(t *testing.T) {
	g := NewBoxedGenerator3D(geom.NewBox3D(0, 1, 0, 1, 0, 1))
	g.Shift(1, 0, 0)

	var gotDomain geom.Box3D
	var gotBlocks []Target
	stub := &stubProcessor{}
	g.NewProcessor = func(domain geom.Box3D, blocks []Target) (DataProcessor3D, error) {
		gotDomain = domain
		gotBlocks = blocks
		return stub, nil
	}

	target := fakeTarget{box: geom.NewBox3D(0, 3, 0, 3, 0, 3)}
	p, err := g.Generate([]Target{target})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p != stub {
		t.Errorf("Generate returned %v, want the stub processor", p)
	}
	if gotDomain != g.Domain {
		t.Errorf("factory saw domain %+v, want %+v", gotDomain, g.Domain)
	}
	if len(gotBlocks) != 1 || gotBlocks[0] != target {
		t.Errorf("factory saw blocks %v, want [%v]", gotBlocks, target)
	}
}

func TestBoxedGenerator3DGenerateWithoutFactoryErrors(t *testing.T) {
	g := NewBoxedGenerator3D(geom.NewBox3D(0, 1, 0, 1, 0, 1))
	if _, err := g.Generate(nil); err == nil {
		t.Fatal("Generate with no NewProcessor set: want error, got nil")
	}
}

func TestBoxedGenerator3DCloneIsIndependent(t *testing.T) {
	g := NewBoxedGenerator3D(geom.NewBox3D(0, 1, 0, 1, 0, 1))
	clone := g.Clone().(*BoxedGenerator3D)
	clone.Shift(5, 5, 5)
	if g.Domain == clone.Domain {
		t.Fatal("Clone shares state with the original generator")
	}
}

func TestDottedGenerator3DCloneDoesNotAliasDots(t *testing.T) {
	dots := geom.DotList3D{{X: 0, Y: 0, Z: 0}}
	g := NewDottedGenerator3D(dots)
	clone := g.Clone().(*DottedGenerator3D)
	clone.Shift(1, 1, 1)
	if g.Dots[0] == clone.Dots[0] {
		t.Fatal("Clone aliases the original generator's dot slice")
	}
}

type stubProcessor struct{}

func (s *stubProcessor) Process() error                    { return nil }
func (s *stubProcessor) Clone() DataProcessor3D             { return s }
func (s *stubProcessor) Extent() int                        { return 0 }
func (s *stubProcessor) ExtentDirection(direction int) int  { return 0 }

func TestGeneratorDefaultsAppliesToBulkAndSingleWritePattern(t *testing.T) {
	g := NewBoxedGenerator3D(geom.NewBox3D(0, 0, 0, 0, 0, 0))
	if g.AppliesTo() != Bulk {
		t.Errorf("AppliesTo() = %v, want Bulk by default", g.AppliesTo())
	}
	pattern := g.GetModificationPattern()
	if len(pattern) != 1 || !pattern[0] {
		t.Errorf("GetModificationPattern() = %v, want [true]", pattern)
	}
}
