package kernel

import (
	"fmt"
	"math/bits"
	"strings"
	"sync"

	"golang.org/x/sys/cpu"
)

// Features describes the host capabilities that influence backend choice.
type Features struct {
	SSE2   bool
	AVX2   bool
	ASIMD  bool
	Word64 bool
}

// Vector reports whether any vector extension is available.
func (f Features) Vector() bool {
	return f.SSE2 || f.AVX2 || f.ASIMD
}

// Probe detects the features of the running CPU.
func Probe() Features {
	return Features{
		SSE2:   cpu.X86.HasSSE2,
		AVX2:   cpu.X86.HasAVX2,
		ASIMD:  cpu.ARM64.HasASIMD,
		Word64: bits.UintSize == 64,
	}
}

// Backend forces a particular implementation tier.
type Backend int

const (
	// BackendAuto picks the best tier the features allow.
	BackendAuto Backend = iota
	// BackendReference uses the scalar implementation for every primitive.
	BackendReference
	// BackendSWAR uses word-parallel byte primitives where possible.
	BackendSWAR
	// BackendWide uses the batched lane implementation for every primitive.
	BackendWide
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendReference:
		return "reference"
	case BackendSWAR:
		return "swar"
	case BackendWide:
		return "wide"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend converts a backend name into a Backend.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return BackendAuto, nil
	case "reference", "ref", "scalar":
		return BackendReference, nil
	case "swar":
		return BackendSWAR, nil
	case "wide", "simd":
		return BackendWide, nil
	}
	return BackendAuto, fmt.Errorf("kernel: unknown backend %q", s)
}

type impl struct {
	name string
	k    Kernels
}

var (
	implReference = impl{"reference", Reference{}}
	implSWAR      = impl{"swar", SWAR{}}
	implWide      = impl{"wide", Wide{}}
)

// Table binds every primitive to one implementation. The zero value is not
// usable; build tables with Select or Default. A Table is immutable and safe
// for concurrent use.
type Table struct {
	entries [numPrimitives]impl
}

// Select builds the capability table for the given features. A Backend other
// than BackendAuto overrides the detected tier.
func Select(f Features, b Backend) *Table {
	t := &Table{}
	for p := range t.entries {
		t.entries[p] = implReference
	}

	switch b {
	case BackendReference:
		return t
	case BackendSWAR:
		t.setByteWise(implSWAR)
		return t
	case BackendWide:
		t.setAll(implWide)
		return t
	}

	if f.Word64 {
		t.setByteWise(implSWAR)
	}
	if f.Vector() {
		t.setAll(implWide)
	}
	return t
}

func (t *Table) setByteWise(i impl) {
	t.entries[PrimMean] = i
	t.entries[PrimAddTo] = i
	t.entries[PrimSubFrom] = i
}

func (t *Table) setAll(i impl) {
	for p := range t.entries {
		t.entries[p] = i
	}
}

// Name returns the implementation name bound to p.
func (t *Table) Name(p Primitive) string {
	if p < 0 || p >= numPrimitives {
		return "unknown"
	}
	return t.entries[p].name
}

// Mean implements Kernels.
func (t *Table) Mean(dst, a, b []byte) { t.entries[PrimMean].k.Mean(dst, a, b) }

// AddTo implements Kernels.
func (t *Table) AddTo(dst, src []byte) { t.entries[PrimAddTo].k.AddTo(dst, src) }

// SubFrom implements Kernels.
func (t *Table) SubFrom(dst, src []byte) { t.entries[PrimSubFrom].k.SubFrom(dst, src) }

// Blend implements Kernels.
func (t *Table) Blend(dst, src, plane []byte, alpha uint8) {
	t.entries[PrimBlend].k.Blend(dst, src, plane, alpha)
}

// MaskBlend implements Kernels.
func (t *Table) MaskBlend(dst, s1, s2, mask []byte, threshold uint32) {
	t.entries[PrimMaskBlend].k.MaskBlend(dst, s1, s2, mask, threshold)
}

// MaskBlendConst implements Kernels.
func (t *Table) MaskBlendConst(dst, s1, s2 []byte, threshold uint32) {
	t.entries[PrimMaskBlendConst].k.MaskBlendConst(dst, s1, s2, threshold)
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide table for the running CPU.
// It is built once on first use and never changes afterwards.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = Select(Probe(), BackendAuto)
	})
	return defaultTable
}
