// package gl provides the closed sets of WebGL enum tokens consumed by the settings
// package. Each token wraps its underlying GLenum code in an opaque struct so user
// code passes validated tokens around instead of raw integers. The only place a code
// leaves its wrapper is FaceMode.Code, which the CullFace setting uses to carry the
// face selection into its payload.
//
// Enum code reference: https://registry.khronos.org/webgl/specs/latest/1.0/
package gl

// BlendEquation selects how source and destination color values are combined
// by the blend stage.
type BlendEquation struct {
	code uint32
}

var (
	// EquationAdd computes source + destination.
	EquationAdd = BlendEquation{0x8006}
	// EquationSubtract computes source - destination.
	EquationSubtract = BlendEquation{0x800A}
	// EquationReverseSubtract computes destination - source.
	EquationReverseSubtract = BlendEquation{0x800B}
	// EquationMin takes the componentwise minimum of source and destination.
	EquationMin = BlendEquation{0x8007}
	// EquationMax takes the componentwise maximum of source and destination.
	EquationMax = BlendEquation{0x8008}
)

// BlendFactor scales the source or destination color before the blend equation
// is applied.
//
// FactorSrcAlphaSaturate is only valid as a source factor, and the constant-color
// factors must not be combined with the constant-alpha factors as source and
// destination of the same blend function. Neither rule is enforced here; the
// rendering layer that consumes the setting inherits the graphics API's behavior.
type BlendFactor struct {
	code uint32
}

var (
	// FactorZero scales the component to zero.
	FactorZero = BlendFactor{0}
	// FactorOne leaves the component unscaled.
	FactorOne = BlendFactor{1}
	// FactorSrcColor scales by the source color.
	FactorSrcColor = BlendFactor{0x0300}
	// FactorOneMinusSrcColor scales by one minus the source color.
	FactorOneMinusSrcColor = BlendFactor{0x0301}
	// FactorSrcAlpha scales by the source alpha.
	FactorSrcAlpha = BlendFactor{0x0302}
	// FactorOneMinusSrcAlpha scales by one minus the source alpha.
	FactorOneMinusSrcAlpha = BlendFactor{0x0303}
	// FactorDstAlpha scales by the destination alpha.
	FactorDstAlpha = BlendFactor{0x0304}
	// FactorOneMinusDstAlpha scales by one minus the destination alpha.
	FactorOneMinusDstAlpha = BlendFactor{0x0305}
	// FactorDstColor scales by the destination color.
	FactorDstColor = BlendFactor{0x0306}
	// FactorOneMinusDstColor scales by one minus the destination color.
	FactorOneMinusDstColor = BlendFactor{0x0307}
	// FactorSrcAlphaSaturate scales by min(srcAlpha, 1-dstAlpha); source only.
	FactorSrcAlphaSaturate = BlendFactor{0x0308}
	// FactorConstantColor scales by the constant blend color.
	FactorConstantColor = BlendFactor{0x8001}
	// FactorOneMinusConstantColor scales by one minus the constant blend color.
	FactorOneMinusConstantColor = BlendFactor{0x8002}
	// FactorConstantAlpha scales by the constant blend alpha.
	FactorConstantAlpha = BlendFactor{0x8003}
	// FactorOneMinusConstantAlpha scales by one minus the constant blend alpha.
	FactorOneMinusConstantAlpha = BlendFactor{0x8004}
)

// CompareMode is the comparison function used by the depth and stencil tests.
type CompareMode struct {
	code uint32
}

var (
	// CompareNever fails every comparison.
	CompareNever = CompareMode{0x0200}
	// CompareLess passes when the incoming value is strictly less.
	CompareLess = CompareMode{0x0201}
	// CompareEqual passes when the values are equal.
	CompareEqual = CompareMode{0x0202}
	// CompareLessOrEqual passes when the incoming value is less or equal.
	CompareLessOrEqual = CompareMode{0x0203}
	// CompareGreater passes when the incoming value is strictly greater.
	CompareGreater = CompareMode{0x0204}
	// CompareNotEqual passes when the values differ.
	CompareNotEqual = CompareMode{0x0205}
	// CompareGreaterOrEqual passes when the incoming value is greater or equal.
	CompareGreaterOrEqual = CompareMode{0x0206}
	// CompareAlways passes every comparison.
	CompareAlways = CompareMode{0x0207}
)

// StencilOp is the action applied to a stencil buffer value depending on the
// outcome of the stencil and depth tests.
type StencilOp struct {
	code uint32
}

var (
	// StencilOpKeep leaves the stencil value unchanged.
	StencilOpKeep = StencilOp{0x1E00}
	// StencilOpZero sets the stencil value to zero.
	StencilOpZero = StencilOp{0}
	// StencilOpReplace sets the stencil value to the reference value.
	StencilOpReplace = StencilOp{0x1E01}
	// StencilOpIncrement increments the stencil value, clamping at the maximum.
	StencilOpIncrement = StencilOp{0x1E02}
	// StencilOpDecrement decrements the stencil value, clamping at zero.
	StencilOpDecrement = StencilOp{0x1E03}
	// StencilOpInvert bitwise-inverts the stencil value.
	StencilOpInvert = StencilOp{0x150A}
	// StencilOpIncrementWrap increments the stencil value, wrapping to zero past the maximum.
	StencilOpIncrementWrap = StencilOp{0x8507}
	// StencilOpDecrementWrap decrements the stencil value, wrapping to the maximum past zero.
	StencilOpDecrementWrap = StencilOp{0x8508}
)

// FaceMode selects which polygon winding orientations are culled.
// Counter-clockwise winding is front-facing.
type FaceMode struct {
	code uint32
}

var (
	// FaceFront culls front-facing polygons.
	FaceFront = FaceMode{0x0404}
	// FaceBack culls back-facing polygons.
	FaceBack = FaceMode{0x0405}
	// FaceFrontAndBack culls all polygons; lines and points still draw.
	FaceFrontAndBack = FaceMode{0x0408}
)

// Code returns the underlying GLenum code for this face mode. This is the single
// point where a token is unwrapped: the CullFace setting stores the code in its
// payload for the rendering layer.
//
// Returns:
//   - uint32: the GLenum code (GL_FRONT, GL_BACK, or GL_FRONT_AND_BACK)
func (f FaceMode) Code() uint32 {
	return f.code
}
