package anchormark

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default blue markers
//	r := anchormark.NewRenderer(surface, params)
//
//	// Red markers
//	r := anchormark.NewRenderer(surface, params, anchormark.WithColor(anchormark.Color{R: 255}))
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	color Color
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		color: AnnotationColor,
	}
}

// WithColor sets the color of every marker, dot and line.
func WithColor(c Color) Option {
	return func(o *rendererOptions) {
		o.color = c
	}
}
