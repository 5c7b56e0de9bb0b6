package responsive

// textScaleReferenceWidth is the width at which the suggested text scale
// reaches its configured maximum.
const textScaleReferenceWidth = 1400

// TextScaleFactor suggests a global text multiplier for the measured
// width, capped by the active config's MaxTextScale. The result is
// non-decreasing in width, never below 1, and saturates at the cap for
// widths of 1400 and above.
func TextScaleFactor(width float32) float32 {
	return TextScaleFactorWithMax(width, Current().MaxTextScale)
}

// TextScaleFactorWithMax is TextScaleFactor with an explicit cap instead
// of the active config's.
func TextScaleFactorWithMax(width, maxFactor float32) float32 {
	return clamp(width/textScaleReferenceWidth*maxFactor, 1, maxFactor)
}
