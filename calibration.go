package rawshade

// PrimaryAdjustment is a per-primary hue/saturation offset used by
// ColorCalibration (spec.md §3).
type PrimaryAdjustment struct {
	Hue        float64 // [-1,1]
	Saturation float64 // [-1,1]
}

// ColorCalibration models sensor/primary calibration: a shadow tint and
// per-primary hue/saturation rotation (spec.md §3, "Color calibration"
// sub-operator contract). internal/filter.CalibrationMatrix builds the
// 3x3 primary-rotation matrix this record implies.
type ColorCalibration struct {
	ShadowTint float64 // [-1,1]
	Red        PrimaryAdjustment
	Green      PrimaryAdjustment
	Blue       PrimaryAdjustment
}
