// Package responsive computes scaled layout values from a reference design
// screen size and the measured runtime screen size: font sizes, spacing,
// icon and image sizes, border radii, padding and raw unit conversions,
// plus coarse device classification (mobile, tablet, desktop), a
// per-device value picker and a suggested global text-scale multiplier.
//
// The host UI layer owns screen measurement: it reads the current width
// and height each render pass and hands them to a Scaler. The library
// performs no rendering and, beyond the optional config file loader, no
// I/O of its own.
package responsive
