// Package cache provides the bounded LRU cache shared by the asset loader
// and the sprite compositor.
//
//	c := cache.New[string, *image.ImageBuf](64)
//	img := c.GetOrCreate("bg.png", load)
//
// Decoded images and alpha planes are large and cheap to rebuild, so the
// cache keeps a fixed number of entries and drops the least recently used
// one when a new entry would exceed the limit.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
