// Package kernel provides the per-pixel compositing primitives used by the
// transition engine and the sprite compositor.
//
// # Primitives
//
// Six primitives operate on rows of 8-bit RGBA pixels:
//
//   - Mean: dst = (a+b)>>1 per channel
//   - AddTo: dst = min(dst+src, 255) per channel
//   - SubFrom: dst = max(dst-src, 0) per channel
//   - Blend: dst = lerp(dst, src, alpha), alpha optionally scaled by a per-pixel plane
//   - MaskBlend: dst = lerp(s1, s2, level) with level derived from a mask pixel and a threshold
//   - MaskBlendConst: MaskBlend with a mask that is zero everywhere
//
// # Backends
//
// Every primitive has a scalar reference implementation. The SWAR backend
// processes eight bytes per 64-bit word for Mean, AddTo and SubFrom. The wide
// backend processes sixteen pixels per step through [wide.BatchState] and
// covers all six primitives. All backends produce byte-identical output;
// the tests check this exhaustively for the byte-wise primitives and with
// seeded random rows for the rest.
//
// # Capability table
//
// A [Table] maps each primitive to one backend. [Default] builds the table
// once per process from [Probe] and never changes it afterwards. Callers that
// need a specific backend (tests, benchmarks, the -kernel flag of the demo)
// build their own table with [Select] and inject it.
package kernel
