// Package scratch provides the reusable working memory of the frame
// pipeline.
//
// Set owns the per-renderer buffers. Buffers grow on demand and are
// reused while they are large enough, so a renderer drawing the same frame
// size over and over stops allocating after the first frame.
//
// Pool is a sharded keyed cache that hands each rendering goroutine its own
// value, typically a renderer, without allocating on a hit.
package scratch
