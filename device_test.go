package responsive

import "testing"

func TestClassify(t *testing.T) {
	bp := DefaultBreakpoints()

	tests := []struct {
		name  string
		width float32
		want  DeviceType
	}{
		{name: "phone width", width: 375, want: DeviceMobile},
		{name: "exactly mobile max", width: 600, want: DeviceMobile},
		{name: "just past mobile max", width: 600.5, want: DeviceTablet},
		{name: "tablet width", width: 800, want: DeviceTablet},
		{name: "exactly tablet max", width: 1024, want: DeviceTablet},
		{name: "just past tablet max", width: 1024.5, want: DeviceDesktop},
		{name: "desktop width", width: 1920, want: DeviceDesktop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.width, bp); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.width, got, tt.want)
			}
		})
	}
}

func TestClassifyCustomBreakpoints(t *testing.T) {
	bp, err := NewBreakpoints(480, 768)
	if err != nil {
		t.Fatalf("NewBreakpoints returned %v", err)
	}

	if got := Classify(480, bp); got != DeviceMobile {
		t.Errorf("Classify(480) = %v, want mobile", got)
	}
	if got := Classify(481, bp); got != DeviceTablet {
		t.Errorf("Classify(481) = %v, want tablet", got)
	}
	if got := Classify(769, bp); got != DeviceDesktop {
		t.Errorf("Classify(769) = %v, want desktop", got)
	}
}

func TestDevicePredicates(t *testing.T) {
	defer Reset()
	Reset()

	// Exactly one predicate holds for any width, and it matches ClassifyWidth.
	for _, width := range []float32{1, 320, 600, 601, 1024, 1025, 2560} {
		device := ClassifyWidth(width)
		preds := map[DeviceType]bool{
			DeviceMobile:  IsMobile(width),
			DeviceTablet:  IsTablet(width),
			DeviceDesktop: IsDesktop(width),
		}
		for d, got := range preds {
			want := device == d
			if got != want {
				t.Errorf("width %v: predicate for %v = %v, want %v", width, d, got, want)
			}
		}
	}
}

func TestDeviceTypeString(t *testing.T) {
	tests := []struct {
		device DeviceType
		want   string
	}{
		{DeviceMobile, "mobile"},
		{DeviceTablet, "tablet"},
		{DeviceDesktop, "desktop"},
		{DeviceType(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.device.String(); got != tt.want {
			t.Errorf("DeviceType(%d).String() = %q, want %q", tt.device, got, tt.want)
		}
	}
}
