package transit

// DirtyRegion is the bounding box of pixels changed since the last
// presentation, limited to the screen.
type DirtyRegion struct {
	screen Rect
	bounds Rect
}

// NewDirtyRegion creates an empty region for a width x height screen.
func NewDirtyRegion(width, height int) *DirtyRegion {
	return &DirtyRegion{screen: Rect{Width: width, Height: height}}
}

// Add widens the region to include r. Parts outside the screen are dropped.
func (d *DirtyRegion) Add(r Rect) {
	d.bounds = d.bounds.Union(r.Intersect(d.screen))
}

// Fill marks the whole screen dirty.
func (d *DirtyRegion) Fill() {
	d.bounds = d.screen
}

// Clear empties the region.
func (d *DirtyRegion) Clear() {
	d.bounds = Rect{}
}

// Bounds returns the bounding box; the zero Rect when empty.
func (d *DirtyRegion) Bounds() Rect {
	return d.bounds
}

// IsEmpty reports whether nothing is dirty.
func (d *DirtyRegion) IsEmpty() bool {
	return d.bounds.Empty()
}

// IsFull reports whether the whole screen is dirty.
func (d *DirtyRegion) IsFull() bool {
	return d.bounds == d.screen
}
