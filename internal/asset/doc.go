// Package asset turns sprite descriptors into cel strips.
//
// The Loader reads images from an fs.FS, scales them to the screen ratio,
// applies the descriptor's transparency mode and caches the decoded result.
// Text cels are rendered with the Go Regular font through
// golang.org/x/image/font/opentype.
package asset
