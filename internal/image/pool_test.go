package image

import "testing"

func TestPool_Reuse(t *testing.T) {
	p := NewPool(1)
	a := p.Get(4, 4)
	_ = a.SetRGBA(0, 0, 9, 9, 9, 9)
	p.Put(a)

	b := p.Get(4, 4)
	if b != a {
		t.Fatal("pool did not reuse the returned buffer")
	}
	if r, _, _, _ := b.GetRGBA(0, 0); r != 0 {
		t.Error("reused buffer was not cleared")
	}

	// Bucket capacity 1: the second buffer is dropped.
	p.Put(b)
	p.Put(MustNew(4, 4))
	if got := len(p.buckets[poolKey{4, 4}]); got != 1 {
		t.Errorf("bucket size = %d, want 1", got)
	}
}

func TestPool_RejectsViews(t *testing.T) {
	p := NewPool(0)
	parent := MustNew(8, 8)
	p.Put(parent.SubImage(Rect{X: 1, Y: 1, Width: 4, Height: 4}))
	if len(p.buckets) != 0 {
		t.Error("pool accepted a sub-image view")
	}
	if got := p.Get(0, 3); got != nil {
		t.Error("Get with invalid size returned a buffer")
	}
}
