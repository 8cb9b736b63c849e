// Package wide provides SIMD-friendly wide types for batch pixel processing.
//
// This package implements the U16x16 lane type, designed to enable Go compiler
// auto-vectorization. By using fixed-size arrays and simple loops, it allows
// the compiler to generate SIMD instructions on supported architectures
// (SSE2, AVX2, NEON).
//
// # BatchState
//
// BatchState provides Structure-of-Arrays (SoA) layout for processing 16 RGBA
// pixels from two sources and one destination in parallel. The compositing
// kernels load a batch, operate on whole channels at once, and store the
// result back into the row.
//
// # Exactness
//
// Every operation here is exact integer arithmetic. The batch kernels built
// on top of this package must produce the same bytes as the scalar reference
// kernels, so no approximation (such as a +1 error division by 255) is used.
//
// # Usage Example
//
//	var batch wide.BatchState
//	batch.LoadS1(prev)
//	batch.LoadS2(next)
//	batch.D = ... // combine batch.S1 and batch.S2 channel by channel
//	batch.StoreD(out)
package wide
