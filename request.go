package transit

// Request describes one transition.
type Request struct {
	// Effect selects the algorithm.
	Effect Effect

	// Duration is the length of the transition in ticks. Zero completes on
	// the first step.
	Duration int

	// No is the intensity of the quake effects. Values below 1 count as 1.
	No int

	// Mask is the grayscale image of the mask effects. The red channel is
	// used; masks smaller than the screen are tiled.
	Mask *ImageBuf

	// MaskPath is loaded through the engine's MaskLoader when Mask is nil.
	MaskPath string

	// Extension names the algorithm of EffectExtension requests.
	Extension Extension
}

// Extension selects a named effect outside the numbered catalog.
type Extension struct {
	// Name is the effect name; a trailing ".dll" is ignored.
	Name string
	// Params is the effect-specific parameter string.
	Params string
}

func quakeNo(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
