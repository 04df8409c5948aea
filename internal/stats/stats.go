// Package stats implements BlockStatistics: the fixed schema of per-step
// scalar observables (average reduced density, average and maximum
// squared velocity) gathered during collision, with associative,
// commutative merge semantics across atomic-block partitions.
//
// A naive accumulator would conflate the sums being written during a
// step with the value read by other cells during that same step (e.g.
// ConstRhoBGK reading avRhoBar). This package makes that a hazard-free
// explicit double buffer: readers always see the *previous* step's
// Publish()-ed values.
package stats

import "math"

// Key identifies one observable in the fixed BlockStatistics schema.
type Key int

const (
	AvRhoBar Key = iota
	AvUSqr
	MaxUSqr
	numKeys
)

// BlockStatistics accumulates scalar observables during a step and
// publishes them for the next step to read.
type BlockStatistics struct {
	sumRhoBar float64
	sumUSqr   float64
	maxUSqr   float64
	numCells  int64

	published [numKeys]float64
}

// New returns a BlockStatistics with all published values at their
// identity (zero average, zero max).
func New() *BlockStatistics {
	return &BlockStatistics{}
}

// Gather accumulates one cell's (rhoBar, uSqr) reading into the current
// (not-yet-published) accumulator.
func (s *BlockStatistics) Gather(rhoBar, uSqr float64) {
	s.sumRhoBar += rhoBar
	s.sumUSqr += uSqr
	s.maxUSqr = math.Max(s.maxUSqr, uSqr)
	s.numCells++
}

// GetAverage returns the value published at the end of the previous step;
// readers during the current step never observe a partially-updated
// accumulator.
func (s *BlockStatistics) GetAverage(k Key) float64 {
	return s.published[k]
}

// Publish computes this step's averages/max from the accumulator and
// makes them visible to GetAverage, then resets the accumulator for the
// next step.
func (s *BlockStatistics) Publish() {
	if s.numCells > 0 {
		s.published[AvRhoBar] = s.sumRhoBar / float64(s.numCells)
		s.published[AvUSqr] = s.sumUSqr / float64(s.numCells)
	} else {
		s.published[AvRhoBar] = 0
		s.published[AvUSqr] = 0
	}
	s.published[MaxUSqr] = s.maxUSqr

	s.sumRhoBar = 0
	s.sumUSqr = 0
	s.maxUSqr = 0
	s.numCells = 0
}

// StoredAverageDensity returns fullRho(avRhoBar).
func (s *BlockStatistics) StoredAverageDensity() float64 {
	return 1.0 + s.GetAverage(AvRhoBar)
}

// StoredAverageEnergy returns 0.5*avUSqr.
func (s *BlockStatistics) StoredAverageEnergy() float64 {
	return 0.5 * s.GetAverage(AvUSqr)
}

// StoredAverageVelocity returns sqrt(avUSqr).
func (s *BlockStatistics) StoredAverageVelocity() float64 {
	return math.Sqrt(s.GetAverage(AvUSqr))
}

// Snapshot returns a fresh BlockStatistics carrying a copy of s's
// currently published values and a zeroed accumulator. Used to hand each
// goroutine of a parallel collide pass its own accumulator while still
// resolving GetAverage against the previous step's published readings.
func Snapshot(s *BlockStatistics) *BlockStatistics {
	return &BlockStatistics{published: s.published}
}

// Accumulate folds other's not-yet-published sums into s, leaving s's own
// published values untouched until the caller calls Publish.
func (s *BlockStatistics) Accumulate(other *BlockStatistics) {
	if other == nil {
		return
	}
	s.sumRhoBar += other.sumRhoBar
	s.sumUSqr += other.sumUSqr
	s.maxUSqr = math.Max(s.maxUSqr, other.maxUSqr)
	s.numCells += other.numCells
}

// Merge combines partition accumulators associatively and commutatively:
// used to fold per-goroutine partial accumulators from a parallel collide
// pass into a single block-level BlockStatistics before Publish.
func Merge(parts ...*BlockStatistics) *BlockStatistics {
	out := New()
	for _, p := range parts {
		if p == nil {
			continue
		}
		out.sumRhoBar += p.sumRhoBar
		out.sumUSqr += p.sumUSqr
		out.maxUSqr = math.Max(out.maxUSqr, p.maxUSqr)
		out.numCells += p.numCells
	}
	return out
}
