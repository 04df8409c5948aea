// Package compute provides the goroutine-chunked ParallelFor primitive
// that block.AtomicBlock3D uses to partition collide work across
// z-slabs.
package compute
