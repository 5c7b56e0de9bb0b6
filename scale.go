package responsive

// Default clamp multipliers, relative to each magnitude's own base value.
// These are product constants; preserve them rather than tuning.
const (
	fontMinFactor    = 0.85
	fontMaxFactor    = 2.2
	spacingMinFactor = 0.75
	spacingMaxFactor = 2.4
	imageMinFactor   = 0.7
	imageMaxFactor   = 3.0
	radiusMinFactor  = 0.7
	radiusMaxFactor  = 2.0
)

// ScreenMetrics is the measured logical screen size for one render pass,
// supplied by the host UI layer. Both dimensions must be positive; the
// host guarantees that.
type ScreenMetrics struct {
	Width  float32
	Height float32
}

// EdgeInsets is per-edge padding in design units.
type EdgeInsets struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// Insets returns an EdgeInsets from individual edges.
func Insets(left, top, right, bottom float32) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// InsetsAll returns uniform padding on every edge.
func InsetsAll(v float32) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// InsetsSymmetric returns padding mirrored horizontally and vertically.
func InsetsSymmetric(horizontal, vertical float32) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Scaler converts design-space magnitudes into screen-space ones for a
// single measured screen size. It is a cheap value; create one per render
// pass from the metrics the host just measured.
type Scaler struct {
	metrics ScreenMetrics
	config  Config
}

// NewScaler binds the measured metrics to the active configuration.
func NewScaler(m ScreenMetrics) Scaler {
	return Scaler{metrics: m, config: Current()}
}

// NewScalerWith binds the metrics to an explicit configuration, bypassing
// the ambient store entirely.
func NewScalerWith(m ScreenMetrics, c Config) Scaler {
	return Scaler{metrics: m, config: c}
}

// Metrics returns the screen metrics the scaler was built with.
func (s Scaler) Metrics() ScreenMetrics {
	return s.metrics
}

// Config returns the configuration snapshot the scaler was built with.
func (s Scaler) Config() Config {
	return s.config
}

func (s Scaler) scaleW() float32 {
	return s.metrics.Width / s.config.DesignWidth
}

func (s Scaler) scaleH() float32 {
	return s.metrics.Height / s.config.DesignHeight
}

// Font scales a design-space font size by the width ratio, clamped to
// [base*0.85, base*2.2] unless WithMin or WithMax override a bound.
func (s Scaler) Font(base float32, opts ...BoundOption) float32 {
	return s.scaled(base, fontMinFactor, fontMaxFactor, opts)
}

// Spacing scales a design-space gap or margin by the width ratio, clamped
// to [base*0.75, base*2.4] unless overridden.
func (s Scaler) Spacing(base float32, opts ...BoundOption) float32 {
	return s.scaled(base, spacingMinFactor, spacingMaxFactor, opts)
}

// ImageSize scales a design-space image dimension by the width ratio,
// clamped to [base*0.7, base*3.0] unless overridden.
func (s Scaler) ImageSize(base float32, opts ...BoundOption) float32 {
	return s.scaled(base, imageMinFactor, imageMaxFactor, opts)
}

// IconSize scales an icon dimension. Identical to ImageSize, kept as its
// own name so call sites read correctly.
func (s Scaler) IconSize(base float32, opts ...BoundOption) float32 {
	return s.ImageSize(base, opts...)
}

// Radius scales a design-space corner radius by the width ratio, clamped
// to [base*0.7, base*2.0] unless overridden.
func (s Scaler) Radius(base float32, opts ...BoundOption) float32 {
	return s.scaled(base, radiusMinFactor, radiusMaxFactor, opts)
}

func (s Scaler) scaled(base, minFactor, maxFactor float32, opts []BoundOption) float32 {
	b := boundsFor(base, minFactor, maxFactor, opts)
	return clamp(base*s.scaleW(), b.min, b.max)
}

// Padding scales insets onto the measured screen: horizontal edges by the
// width ratio, vertical edges by the height ratio. No clamping.
func (s Scaler) Padding(in EdgeInsets) EdgeInsets {
	return EdgeInsets{
		Left:   in.Left * s.scaleW(),
		Top:    in.Top * s.scaleH(),
		Right:  in.Right * s.scaleW(),
		Bottom: in.Bottom * s.scaleH(),
	}
}

// WidthUnits converts raw design-width units to screen units. Unclamped.
func (s Scaler) WidthUnits(units float32) float32 {
	return units * s.scaleW()
}

// HeightUnits converts raw design-height units to screen units. Unclamped.
func (s Scaler) HeightUnits(units float32) float32 {
	return units * s.scaleH()
}

// Device classifies the measured width with the scaler's breakpoints.
func (s Scaler) Device() DeviceType {
	return Classify(s.metrics.Width, s.config.Breakpoints)
}

func (s Scaler) IsMobile() bool {
	return s.Device() == DeviceMobile
}

func (s Scaler) IsTablet() bool {
	return s.Device() == DeviceTablet
}

func (s Scaler) IsDesktop() bool {
	return s.Device() == DeviceDesktop
}

// clamp saturates v to the closed interval [lo, hi]. No rounding is
// performed anywhere; callers pixel-snap if they need to.
func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
