package responsive

// DeviceValue selects a value per device class. Classes left nil fall
// back down the chain: desktop tries Tablet then Mobile, tablet tries
// Mobile, and every class ends at Fallback, which is always set.
type DeviceValue[T any] struct {
	Mobile   *T
	Tablet   *T
	Desktop  *T
	Fallback T
}

// Resolve returns the value for the given device class.
func (v DeviceValue[T]) Resolve(device DeviceType) T {
	switch device {
	case DeviceDesktop:
		if v.Desktop != nil {
			return *v.Desktop
		}
		fallthrough
	case DeviceTablet:
		if v.Tablet != nil {
			return *v.Tablet
		}
		fallthrough
	default:
		if v.Mobile != nil {
			return *v.Mobile
		}
		return v.Fallback
	}
}

// ResolveForWidth classifies the width with the active config's
// breakpoints, then resolves.
func (v DeviceValue[T]) ResolveForWidth(width float32) T {
	return v.Resolve(ClassifyWidth(width))
}

// Ptr returns a pointer to v; convenience for DeviceValue literals.
func Ptr[T any](v T) *T {
	return &v
}
