package settings

import (
	"github.com/Carmen-Shannon/oxy-gl/gl"
)

// BlendAdd blends with the add equation on both channels: source*src + destination*dst.
// The constant blend color is zero; use BlendCustom to supply one.
//
// Parameters:
//   - src: the source factor
//   - dst: the destination factor
//
// Returns:
//   - Setting: the Blend setting
func BlendAdd(src, dst gl.BlendFactor) Setting {
	return Blend(BlendOptions{
		Equation:    gl.EquationAdd,
		Source:      src,
		Destination: dst,
	}, 0, 0, 0, 0)
}

// BlendSubtract blends with the subtract equation on both channels:
// source*src - destination*dst.
//
// Parameters:
//   - src: the source factor
//   - dst: the destination factor
//
// Returns:
//   - Setting: the Blend setting
func BlendSubtract(src, dst gl.BlendFactor) Setting {
	return Blend(BlendOptions{
		Equation:    gl.EquationSubtract,
		Source:      src,
		Destination: dst,
	}, 0, 0, 0, 0)
}

// BlendReverseSubtract blends with the reverse subtract equation on both channels:
// destination*dst - source*src.
//
// Parameters:
//   - src: the source factor
//   - dst: the destination factor
//
// Returns:
//   - Setting: the Blend setting
func BlendReverseSubtract(src, dst gl.BlendFactor) Setting {
	return Blend(BlendOptions{
		Equation:    gl.EquationReverseSubtract,
		Source:      src,
		Destination: dst,
	}, 0, 0, 0, 0)
}

// BlendCustom blends with fully independent color and alpha blend functions and
// an explicit constant blend color.
//
// Parameters:
//   - r, g, b, a: the constant blend color, each in [0, 1]
//   - color: the blend function for the color channels
//   - alpha: the blend function for the alpha channel
//
// Returns:
//   - Setting: the BlendSeparate setting
func BlendCustom(r, g, b, a float32, color, alpha BlendOptions) Setting {
	return BlendSeparate(color, alpha, r, g, b, a)
}

// AlphaBlending is standard premultiplied-style transparency: source scaled by
// its alpha over the destination scaled by one minus the source alpha.
//
// Returns:
//   - Setting: the Blend setting
func AlphaBlending() Setting {
	return BlendAdd(gl.FactorSrcAlpha, gl.FactorOneMinusSrcAlpha)
}

// DefaultDepth enables the depth test with the graphics API's default state:
// less comparison, depth writes enabled, full depth range.
//
// Returns:
//   - Setting: the Depth setting
func DefaultDepth() Setting {
	return Depth(DefaultDepthOptions())
}
