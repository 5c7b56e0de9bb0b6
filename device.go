package responsive

// DeviceType is the coarse device class derived from a screen width.
// It is recomputed per query, never stored.
type DeviceType int

const (
	DeviceMobile DeviceType = iota
	DeviceTablet
	DeviceDesktop
)

func (d DeviceType) String() string {
	switch d {
	case DeviceMobile:
		return "mobile"
	case DeviceTablet:
		return "tablet"
	case DeviceDesktop:
		return "desktop"
	}
	return "unknown"
}

// Classify maps a measured width to its device class. Boundary widths
// belong to the lower class: a width exactly at MobileMax is mobile, and
// exactly at TabletMax is tablet.
func Classify(width float32, bp Breakpoints) DeviceType {
	if width <= bp.MobileMax {
		return DeviceMobile
	}
	if width <= bp.TabletMax {
		return DeviceTablet
	}
	return DeviceDesktop
}

// ClassifyWidth classifies a width against the active config's breakpoints.
func ClassifyWidth(width float32) DeviceType {
	return Classify(width, Current().Breakpoints)
}

// IsMobile reports whether the width classifies as mobile under the active
// config.
func IsMobile(width float32) bool {
	return ClassifyWidth(width) == DeviceMobile
}

// IsTablet reports whether the width classifies as tablet under the active
// config.
func IsTablet(width float32) bool {
	return ClassifyWidth(width) == DeviceTablet
}

// IsDesktop reports whether the width classifies as desktop under the
// active config.
func IsDesktop(width float32) bool {
	return ClassifyWidth(width) == DeviceDesktop
}
