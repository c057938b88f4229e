package slice4d

var (
	Debug      = false // set to true for verbose debug output and per-pass trace stats
	Sequential = false // set to true to render on the calling goroutine only
	// background blend driven by the ray's W direction component
	BackgroundA = RGBA{.25, 0, .05, 1} // purple
	BackgroundB = RGBA{0, 0, .3, 1}    // dark blue
	// used when a hit primitive does not implement Colored
	FallbackLight = RGBA{1, 1, 1, 1}
	FallbackDark  = RGBA{.5, .5, .5, 1}
	// Compile time checks for the shapes
	_ Intersectable = (*AlignedHyperbox)(nil)
	_ Intersectable = (*Hypersphere)(nil)
	_ Colored       = (*AlignedHyperbox)(nil)
	_ Colored       = (*Hypersphere)(nil)
)
