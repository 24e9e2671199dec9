// Package filter provides the bloom effect and the box blur it is built on.
//
// All filters are designed for:
//   - Zero-allocation hot paths: every working buffer is supplied by the caller
//   - O(w*h) cost independent of blur radius (sliding-window sums)
//   - Straight-alpha packed ARGB pixels, alpha in the top byte
package filter
