package shader

// ApplyExposure scales scene-linear data by 2^stops (spec.md §4.2 step
// 5, "Linear exposure").
func ApplyExposure(pixel RGB, stops float64) RGB {
	if stops == 0 {
		return pixel
	}
	return pixel.scale(exp2(stops))
}

// rawPrewarpKnee is the highlight roll-off point used by the RAW
// pre-warp shoulder.
const rawPrewarpKnee = 0.8

// ApplyRawPrewarp softens the top of the scene-linear range before the
// rest of the pipeline runs, standing in for the manufacturer tone
// response a demosaiced RAW frame has not yet received (spec.md §4.2
// step 6, "RAW sRGB pre-warp"). It is a no-op for already-rendered
// (non-RAW) input.
func ApplyRawPrewarp(pixel RGB, isRaw bool) RGB {
	if !isRaw {
		return pixel
	}
	return RGB{
		R: rawPrewarpChannel(pixel.R),
		G: rawPrewarpChannel(pixel.G),
		B: rawPrewarpChannel(pixel.B),
	}
}

func rawPrewarpChannel(x float64) float64 {
	if x <= rawPrewarpKnee {
		return x
	}
	over := x - rawPrewarpKnee
	span := 1 - rawPrewarpKnee
	return rawPrewarpKnee + span*(1-exp2(-over/guard(span)))
}
