// package settings models WebGL per-fragment pipeline settings (blending, depth test,
// stencil test, scissor, color mask, face culling, dithering, polygon offset, sample
// coverage) as immutable Setting values. Constructors are total: no runtime validation
// is performed here — out-of-range values are accepted and are the consuming rendering
// layer's responsibility to clamp or reject when issuing commands.
package settings

import (
	"github.com/Carmen-Shannon/oxy-gl/gl"
)

// SettingType identifies which pipeline setting a Setting value configures.
type SettingType int

const (
	// SettingTypeBlend is a single blend function with a constant blend color,
	// applied to both the color and alpha channels.
	SettingTypeBlend SettingType = iota

	// SettingTypeBlendSeparate is an independent blend function for the color
	// channels and the alpha channel, with a shared constant blend color.
	SettingTypeBlendSeparate

	// SettingTypeDepth enables the depth test and sets the depth buffer write policy.
	SettingTypeDepth

	// SettingTypeStencil enables the stencil test with one function and mask set
	// for both polygon faces.
	SettingTypeStencil

	// SettingTypeStencilSeparate enables the stencil test with independent behavior
	// for front-facing and back-facing polygons.
	SettingTypeStencilSeparate

	// SettingTypeScissor restricts fragment drawing to a rectangle with its origin
	// at the lower-left corner of the frame buffer.
	SettingTypeScissor

	// SettingTypeColorMask sets the per-channel write-enable flags for the frame buffer.
	SettingTypeColorMask

	// SettingTypeCullFace culls polygons by winding orientation; counter-clockwise
	// winding is front-facing.
	SettingTypeCullFace

	// SettingTypeDither enables dithering of color components before they are
	// written to the color buffer.
	SettingTypeDither

	// SettingTypePolygonOffset adds a variable plus constant depth offset to each
	// fragment before the depth test.
	SettingTypePolygonOffset

	// SettingTypeSampleCoverage sets the multisample coverage value, optionally
	// inverted, that is ANDed with the fragment coverage.
	SettingTypeSampleCoverage

	// SettingTypeSampleAlphaToCoverage derives a temporary coverage value from the
	// fragment alpha and ANDs it with the fragment coverage.
	SettingTypeSampleAlphaToCoverage
)

// BlendOptions configures one blend function: the equation combining source and
// destination, and the factors scaling each side.
type BlendOptions struct {
	// Equation combines the scaled source and destination values.
	Equation gl.BlendEquation

	// Source scales the incoming fragment color.
	Source gl.BlendFactor

	// Destination scales the color already in the frame buffer.
	Destination gl.BlendFactor
}

// DepthOptions configures the depth test and depth buffer writes.
type DepthOptions struct {
	// Func is the comparison applied between the incoming depth and the stored depth.
	Func gl.CompareMode

	// Mask enables writing to the depth buffer when the test passes.
	Mask bool

	// Near is the mapping of the near clipping plane to window depth, in [0, 1].
	Near float32

	// Far is the mapping of the far clipping plane to window depth, in [0, 1].
	Far float32
}

// StencilOptions configures the stencil test for one polygon face set.
type StencilOptions struct {
	// Func is the comparison applied between Ref and the stored stencil value.
	Func gl.CompareMode

	// Ref is the reference value for the stencil test. The rendering layer clamps
	// it to [0, 2^n - 1] where n is the number of stencil bitplanes.
	Ref int32

	// ValueMask is ANDed with both Ref and the stored stencil value before comparison.
	ValueMask uint32

	// Fail is applied when the stencil test fails.
	Fail gl.StencilOp

	// ZFail is applied when the stencil test passes but the depth test fails.
	ZFail gl.StencilOp

	// ZPass is applied when both the stencil and depth tests pass.
	ZPass gl.StencilOp

	// WriteMask selects which stencil bitplanes can be written.
	WriteMask uint32
}

// DefaultBlendOptions returns the graphics API's default blend state:
// add equation, source factor one, destination factor zero.
//
// Returns:
//   - BlendOptions: {Equation: EquationAdd, Source: FactorOne, Destination: FactorZero}
func DefaultBlendOptions() BlendOptions {
	return BlendOptions{
		Equation:    gl.EquationAdd,
		Source:      gl.FactorOne,
		Destination: gl.FactorZero,
	}
}

// DefaultDepthOptions returns the graphics API's default depth state:
// less comparison, depth writes enabled, full [0, 1] depth range.
//
// Returns:
//   - DepthOptions: {Func: CompareLess, Mask: true, Near: 0, Far: 1}
func DefaultDepthOptions() DepthOptions {
	return DepthOptions{
		Func: gl.CompareLess,
		Mask: true,
		Near: 0,
		Far:  1,
	}
}

// DefaultStencilOptions returns the graphics API's default stencil state:
// always-passing comparison, zero reference, all-ones masks, keep on every outcome.
//
// Returns:
//   - StencilOptions: {Func: CompareAlways, Ref: 0, ValueMask: 0xFFFFFFFF, Fail/ZFail/ZPass: StencilOpKeep, WriteMask: 0xFFFFFFFF}
func DefaultStencilOptions() StencilOptions {
	return StencilOptions{
		Func:      gl.CompareAlways,
		Ref:       0,
		ValueMask: 0xFFFFFFFF,
		Fail:      gl.StencilOpKeep,
		ZFail:     gl.StencilOpKeep,
		ZPass:     gl.StencilOpKeep,
		WriteMask: 0xFFFFFFFF,
	}
}

// Setting is one configured per-fragment pipeline setting. Values are immutable
// once constructed, carry no identity, and compare equal with == exactly when
// built by the same constructor with the same arguments. They are safe to share
// across goroutines and are consumed by a rendering layer that translates them
// into graphics API calls.
type Setting struct {
	// settingType is the variant tag.
	settingType SettingType

	// colorBlend and alphaBlend hold the blend functions for Blend and
	// BlendSeparate. A plain Blend stores the same options in both.
	colorBlend, alphaBlend BlendOptions

	// r, g, b, a is the constant blend color, each in [0, 1].
	r, g, b, a float32

	// depth holds the depth test configuration.
	depth DepthOptions

	// front and back hold the stencil configuration per face set. A plain
	// Stencil stores the same options in both.
	front, back StencilOptions

	// x, y, width, height is the scissor rectangle, origin at lower-left.
	x, y, width, height int32

	// maskR, maskG, maskB, maskA are the color channel write-enable flags.
	maskR, maskG, maskB, maskA bool

	// faceCode is the unwrapped face-mode enum code for CullFace.
	faceCode int32

	// factor and units are the polygon offset parameters.
	factor, units float32

	// coverage is the sample coverage value in [0, 1]; invert flips the coverage mask.
	coverage float32
	invert   bool
}

// Type returns the variant tag identifying which pipeline setting this value configures.
//
// Returns:
//   - SettingType: the variant tag
func (s Setting) Type() SettingType {
	return s.settingType
}

// ColorBlendOptions returns the blend function for the color channels.
// For a plain Blend setting this equals AlphaBlendOptions.
//
// Returns:
//   - BlendOptions: the color channel blend function
func (s Setting) ColorBlendOptions() BlendOptions {
	return s.colorBlend
}

// AlphaBlendOptions returns the blend function for the alpha channel.
// For a plain Blend setting this equals ColorBlendOptions.
//
// Returns:
//   - BlendOptions: the alpha channel blend function
func (s Setting) AlphaBlendOptions() BlendOptions {
	return s.alphaBlend
}

// BlendColor returns the constant blend color.
//
// Returns:
//   - float32: red component in [0, 1]
//   - float32: green component in [0, 1]
//   - float32: blue component in [0, 1]
//   - float32: alpha component in [0, 1]
func (s Setting) BlendColor() (r, g, b, a float32) {
	return s.r, s.g, s.b, s.a
}

// DepthOptions returns the depth test configuration.
//
// Returns:
//   - DepthOptions: the depth test configuration
func (s Setting) DepthOptions() DepthOptions {
	return s.depth
}

// StencilFront returns the stencil configuration for front-facing polygons.
// For a plain Stencil setting this equals StencilBack.
//
// Returns:
//   - StencilOptions: the front face stencil configuration
func (s Setting) StencilFront() StencilOptions {
	return s.front
}

// StencilBack returns the stencil configuration for back-facing polygons.
// For a plain Stencil setting this equals StencilFront.
//
// Returns:
//   - StencilOptions: the back face stencil configuration
func (s Setting) StencilBack() StencilOptions {
	return s.back
}

// Rect returns the scissor rectangle. The origin is the lower-left corner of
// the frame buffer.
//
// Returns:
//   - int32: x of the lower-left corner
//   - int32: y of the lower-left corner
//   - int32: rectangle width in pixels
//   - int32: rectangle height in pixels
func (s Setting) Rect() (x, y, width, height int32) {
	return s.x, s.y, s.width, s.height
}

// ColorMask returns the per-channel write-enable flags.
//
// Returns:
//   - bool: red channel writes enabled
//   - bool: green channel writes enabled
//   - bool: blue channel writes enabled
//   - bool: alpha channel writes enabled
func (s Setting) ColorMask() (r, g, b, a bool) {
	return s.maskR, s.maskG, s.maskB, s.maskA
}

// CullMode returns the unwrapped face-mode enum code selecting which polygon
// orientations are culled.
//
// Returns:
//   - int32: the GLenum code stored by CullFace
func (s Setting) CullMode() int32 {
	return s.faceCode
}

// PolygonOffset returns the depth offset parameters.
//
// Returns:
//   - float32: factor scaling the maximum depth slope of the polygon
//   - float32: units scaling the minimum resolvable depth offset
func (s Setting) PolygonOffset() (factor, units float32) {
	return s.factor, s.units
}

// SampleCoverage returns the multisample coverage parameters.
//
// Returns:
//   - float32: coverage value in [0, 1]
//   - bool: whether the coverage mask is inverted
func (s Setting) SampleCoverage() (value float32, invert bool) {
	return s.coverage, s.invert
}

// Blend applies one blend function to both the color and alpha channels, with
// the given constant blend color. The color components are clamped to [0, 1]
// by the rendering layer, not here.
//
// Parameters:
//   - options: the blend function for all channels
//   - r, g, b, a: the constant blend color
//
// Returns:
//   - Setting: the Blend setting
func Blend(options BlendOptions, r, g, b, a float32) Setting {
	return Setting{
		settingType: SettingTypeBlend,
		colorBlend:  options,
		alphaBlend:  options,
		r:           r,
		g:           g,
		b:           b,
		a:           a,
	}
}

// BlendSeparate applies independent blend functions to the color channels and
// the alpha channel, with a shared constant blend color.
//
// Parameters:
//   - color: the blend function for the red, green, and blue channels
//   - alpha: the blend function for the alpha channel
//   - r, g, b, a: the constant blend color
//
// Returns:
//   - Setting: the BlendSeparate setting
func BlendSeparate(color, alpha BlendOptions, r, g, b, a float32) Setting {
	return Setting{
		settingType: SettingTypeBlendSeparate,
		colorBlend:  color,
		alphaBlend:  alpha,
		r:           r,
		g:           g,
		b:           b,
		a:           a,
	}
}

// Depth enables the depth test with the given configuration.
//
// Parameters:
//   - options: the depth test configuration
//
// Returns:
//   - Setting: the Depth setting
func Depth(options DepthOptions) Setting {
	return Setting{
		settingType: SettingTypeDepth,
		depth:       options,
	}
}

// Stencil enables the stencil test with one configuration for both polygon faces.
//
// Parameters:
//   - options: the stencil configuration for all polygons
//
// Returns:
//   - Setting: the Stencil setting
func Stencil(options StencilOptions) Setting {
	return Setting{
		settingType: SettingTypeStencil,
		front:       options,
		back:        options,
	}
}

// StencilSeparate enables the stencil test with independent configurations for
// front-facing and back-facing polygons.
//
// Parameters:
//   - front: the stencil configuration for front-facing polygons
//   - back: the stencil configuration for back-facing polygons
//
// Returns:
//   - Setting: the StencilSeparate setting
func StencilSeparate(front, back StencilOptions) Setting {
	return Setting{
		settingType: SettingTypeStencilSeparate,
		front:       front,
		back:        back,
	}
}

// Scissor restricts fragment drawing to a rectangle with its origin at the
// lower-left corner of the frame buffer.
//
// Parameters:
//   - x, y: the lower-left corner of the rectangle
//   - width, height: the rectangle size in pixels
//
// Returns:
//   - Setting: the Scissor setting
func Scissor(x, y, width, height int32) Setting {
	return Setting{
		settingType: SettingTypeScissor,
		x:           x,
		y:           y,
		width:       width,
		height:      height,
	}
}

// ColorMask sets which color channels can be written to the frame buffer.
//
// Parameters:
//   - r, g, b, a: write-enable flag per channel
//
// Returns:
//   - Setting: the ColorMask setting
func ColorMask(r, g, b, a bool) Setting {
	return Setting{
		settingType: SettingTypeColorMask,
		maskR:       r,
		maskG:       g,
		maskB:       b,
		maskA:       a,
	}
}

// CullFace culls polygons by winding orientation. Counter-clockwise winding is
// front-facing. The face-mode token is unwrapped here and its enum code stored
// in the payload.
//
// Parameters:
//   - mode: which orientations to cull (gl.FaceFront, gl.FaceBack, or gl.FaceFrontAndBack)
//
// Returns:
//   - Setting: the CullFace setting
func CullFace(mode gl.FaceMode) Setting {
	return Setting{
		settingType: SettingTypeCullFace,
		faceCode:    int32(mode.Code()),
	}
}

// Dither enables dithering of color components before they are written to the
// color buffer.
//
// Returns:
//   - Setting: the Dither setting
func Dither() Setting {
	return Setting{
		settingType: SettingTypeDither,
	}
}

// PolygonOffset adds a depth offset to each fragment before the depth test:
// factor scales the polygon's maximum depth slope and units scales the minimum
// resolvable offset of the depth buffer.
//
// Parameters:
//   - factor: the variable depth offset scale
//   - units: the constant depth offset scale
//
// Returns:
//   - Setting: the PolygonOffset setting
func PolygonOffset(factor, units float32) Setting {
	return Setting{
		settingType: SettingTypePolygonOffset,
		factor:      factor,
		units:       units,
	}
}

// SampleCoverage sets the multisample coverage value that is ANDed with the
// fragment coverage, optionally inverting the coverage mask.
//
// Parameters:
//   - value: the coverage value in [0, 1]
//   - invert: whether to invert the coverage mask
//
// Returns:
//   - Setting: the SampleCoverage setting
func SampleCoverage(value float32, invert bool) Setting {
	return Setting{
		settingType: SettingTypeSampleCoverage,
		coverage:    value,
		invert:      invert,
	}
}

// SampleAlphaToCoverage derives a temporary coverage value from the fragment
// alpha and ANDs it with the fragment coverage.
//
// Returns:
//   - Setting: the SampleAlphaToCoverage setting
func SampleAlphaToCoverage() Setting {
	return Setting{
		settingType: SettingTypeSampleAlphaToCoverage,
	}
}
