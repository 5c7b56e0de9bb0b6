package responsive

// bounds is the clamp interval applied to one scaled magnitude.
type bounds struct {
	min float32
	max float32
}

// BoundOption overrides one side of the default clamp interval for a
// single call.
type BoundOption func(*bounds)

// WithMin replaces the default lower clamp bound.
func WithMin(v float32) BoundOption {
	return func(b *bounds) { b.min = v }
}

// WithMax replaces the default upper clamp bound.
func WithMax(v float32) BoundOption {
	return func(b *bounds) { b.max = v }
}

// boundsFor builds the clamp interval from the per-kind default
// multipliers, then applies any per-call overrides.
func boundsFor(base, minFactor, maxFactor float32, opts []BoundOption) bounds {
	b := bounds{min: base * minFactor, max: base * maxFactor}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}
