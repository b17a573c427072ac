// Package filter provides matrix-based color transforms used by the
// shading pipeline's color calibration operator.
//
// CalibrationMatrix builds the 3x3 primary-rotation matrix from a
// ColorCalibration record's per-primary hue/saturation parameters
// (spec.md §4.2, "Color calibration"); ApplyShadowTint adds the
// shadows-only temperature tint pass.
package filter
