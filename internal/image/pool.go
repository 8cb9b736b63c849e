package image

import "sync"

// Pool is a thread-safe pool for reusing ImageBuf instances.
//
// Pool groups buffers by their dimensions. The transition engine allocates
// its screen-sized frame buffers from a pool so that engines created and
// dropped by the host (for example on a resolution change) recycle memory.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*ImageBuf
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identical image sizes.
type poolKey struct {
	width  int
	height int
}

// NewPool creates a new image buffer pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*ImageBuf),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a cleared image buffer from the pool or creates a new one.
// Returns nil for invalid dimensions.
func (p *Pool) Get(width, height int) *ImageBuf {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		buf.Clear()
		return buf
	}
	p.mu.Unlock()

	buf, err := NewImageBuf(width, height)
	if err != nil {
		return nil
	}
	return buf
}

// Put returns an image buffer to the pool for reuse.
// Sub-image views are discarded since they alias another buffer's memory.
func (p *Pool) Put(buf *ImageBuf) {
	if buf == nil || buf.stride != buf.width*BytesPerPixel || len(buf.data) != buf.stride*buf.height {
		return
	}

	key := poolKey{width: buf.width, height: buf.height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}
