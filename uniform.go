package rawshade

// MaxMasks is the maximum number of simultaneous per-mask adjustment
// stacks (spec.md §1 Non-goals, §3, §9 "Arena + index for masks"). More
// than eight masks must be flattened by the host before dispatch.
const MaxMasks = 8

// PipelineUniform is the parameter bundle passed by value to each
// dispatch (spec.md §3): global adjustments, up to eight per-mask
// adjustment records, the valid mask count, and tiling metadata.
//
// Invariant: MaskCount equals the number of valid entries in Masks;
// entries at index >= MaskCount are undefined and must not be read by
// the shader core.
type PipelineUniform struct {
	Global GlobalAdjustments
	Masks  [MaxMasks]MaskAdjustments

	// MaskCount is the number of valid Masks entries, in {0..8}.
	MaskCount int

	// TileOffsetX, TileOffsetY locate this tile's (0,0) local pixel in
	// the full image, so the shader can compute absolute coordinates
	// for center-weighted effects, vignette, grain, flare UV, and CA.
	TileOffsetX, TileOffsetY int32

	// AtlasCols is reserved for mask-atlas addressing; unused by the
	// operators themselves (spec.md §9 Open Questions).
	AtlasCols int32
}

// DefaultPipelineUniform returns the identity uniform: default global
// adjustments, no masks, zero tile offset.
func DefaultPipelineUniform() PipelineUniform {
	return PipelineUniform{
		Global: DefaultGlobalAdjustments(),
	}
}

// Validate checks the uniform's structural invariants (spec.md §3, §7):
// mask count bounds and every active curve's shape. Texture presence
// (LUT, flare, mask bindings) is checked by the Dispatcher, which has
// access to the bound resources; Validate only checks what the uniform
// itself can determine.
func (u *PipelineUniform) Validate() error {
	const op = "PipelineUniform.Validate"
	if u.MaskCount < 0 || u.MaskCount > MaxMasks {
		return newPipelineError(ErrDimensionMismatch, op, nil)
	}
	curves := []ToneCurve{u.Global.CurveLuma, u.Global.CurveRed, u.Global.CurveGreen, u.Global.CurveBlue}
	for _, c := range curves {
		if err := c.Validate(op); err != nil {
			return err
		}
	}
	for i := 0; i < u.MaskCount; i++ {
		m := &u.Masks[i]
		mc := []ToneCurve{m.CurveLuma, m.CurveRed, m.CurveGreen, m.CurveBlue}
		for _, c := range mc {
			if err := c.Validate(op); err != nil {
				return err
			}
		}
	}
	if u.Global.LUTIntensity < 0 || u.Global.LUTIntensity > 1 {
		return newPipelineError(ErrDimensionMismatch, op, nil)
	}
	return nil
}
