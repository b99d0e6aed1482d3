// package renderer resolves settings values into WebGPU descriptor state. It is a pure
// translation layer: the output is plain wgpu structs that a render loop plugs into
// pipeline creation and render pass encoding. No GPU commands are issued here.
package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/gl"
	"github.com/Carmen-Shannon/oxy-gl/settings"
	"github.com/cogentcore/webgpu/wgpu"
)

// ScissorRect is a scissor rectangle in WebGL convention: origin at the
// lower-left corner of the frame buffer.
type ScissorRect struct {
	// X, Y is the lower-left corner.
	X, Y uint32
	// Width, Height is the rectangle size in pixels.
	Width, Height uint32
}

// FlipY converts the rectangle from WebGL's lower-left origin to WebGPU's
// top-left origin, as expected by RenderPassEncoder.SetScissorRect.
//
// Parameters:
//   - surfaceHeight: the render target height in pixels
//
// Returns:
//   - ScissorRect: the equivalent rectangle with a top-left origin
func (r ScissorRect) FlipY(surfaceHeight uint32) ScissorRect {
	flipped := r
	if surfaceHeight >= r.Y+r.Height {
		flipped.Y = surfaceHeight - r.Y - r.Height
	} else {
		flipped.Y = 0
	}
	return flipped
}

// PipelineState is the WebGPU state resolved from a list of settings. Zero
// settings resolve to WebGPU defaults: no blending, write-all color mask, no
// depth/stencil state, no culling, counter-clockwise front faces, full depth
// range, and no scissor.
type PipelineState struct {
	// Blend is the color target blend state, or nil when blending is disabled.
	Blend *wgpu.BlendState

	// BlendConstant is the constant blend color for RenderPassEncoder.SetBlendConstant.
	BlendConstant wgpu.Color

	// WriteMask is the color target write mask.
	WriteMask wgpu.ColorWriteMask

	// DepthStencil is the depth/stencil state for the pipeline descriptor, or nil
	// when neither the depth test, the stencil test, nor polygon offset is configured.
	// Its Format is Depth24Plus, or Depth24PlusStencil8 when the stencil test is on.
	DepthStencil *wgpu.DepthStencilState

	// StencilReference is the reference value for RenderPassEncoder.SetStencilReference.
	StencilReference uint32

	// DepthRange is the near/far window depth mapping for the viewport.
	DepthRange [2]float32

	// CullMode selects which polygon orientations are culled.
	CullMode wgpu.CullMode

	// FrontFace is the winding order of front-facing polygons. Always CCW, matching
	// the WebGL convention the settings are defined against.
	FrontFace wgpu.FrontFace

	// AlphaToCoverage enables deriving sample coverage from the fragment alpha.
	AlphaToCoverage bool

	// Scissor is the scissor rectangle in WebGL lower-left convention, or nil when
	// scissoring is disabled. Use FlipY before handing it to a render pass.
	Scissor *ScissorRect
}

// ColorTarget builds the color target descriptor for this state.
//
// Parameters:
//   - format: the render target texture format
//
// Returns:
//   - wgpu.ColorTargetState: the color target with this state's blend and write mask
func (s *PipelineState) ColorTarget(format wgpu.TextureFormat) wgpu.ColorTargetState {
	return wgpu.ColorTargetState{
		Format:    format,
		Blend:     s.Blend,
		WriteMask: s.WriteMask,
	}
}

// ResolveState translates settings into WebGPU descriptor state. Later settings
// of the same kind overwrite earlier ones. Settings WebGPU cannot express are
// rejected: culling both faces, per-face stencil masks or references that
// differ, and explicit sample coverage. Dithering resolves to a no-op since
// WebGPU manages dithering itself.
//
// Parameters:
//   - sets: the settings to resolve
//
// Returns:
//   - *PipelineState: the resolved state
//   - error: an error if a setting has no WebGPU equivalent
func ResolveState(sets ...settings.Setting) (*PipelineState, error) {
	state := &PipelineState{
		WriteMask:  wgpu.ColorWriteMaskAll,
		DepthRange: [2]float32{0, 1},
		CullMode:   wgpu.CullModeNone,
		FrontFace:  wgpu.FrontFaceCCW,
	}

	for _, s := range sets {
		switch s.Type() {
		case settings.SettingTypeBlend, settings.SettingTypeBlendSeparate:
			if err := resolveBlend(state, s); err != nil {
				return nil, err
			}

		case settings.SettingTypeDepth:
			opts := s.DepthOptions()
			compare, err := compareFunction(opts.Func)
			if err != nil {
				return nil, err
			}
			ds := ensureDepthStencil(state)
			ds.DepthCompare = compare
			ds.DepthWriteEnabled = opts.Mask
			state.DepthRange = [2]float32{opts.Near, opts.Far}

		case settings.SettingTypeStencil, settings.SettingTypeStencilSeparate:
			if err := resolveStencil(state, s); err != nil {
				return nil, err
			}

		case settings.SettingTypeScissor:
			x, y, width, height := s.Rect()
			state.Scissor = &ScissorRect{
				X:      clampToUint32(x),
				Y:      clampToUint32(y),
				Width:  clampToUint32(width),
				Height: clampToUint32(height),
			}

		case settings.SettingTypeColorMask:
			state.WriteMask = colorWriteMask(s.ColorMask())

		case settings.SettingTypeCullFace:
			mode, err := cullMode(s.CullMode())
			if err != nil {
				return nil, err
			}
			state.CullMode = mode

		case settings.SettingTypeDither:
			// WebGPU has no dither toggle; implementations dither as they see fit.

		case settings.SettingTypePolygonOffset:
			factor, units := s.PolygonOffset()
			ds := ensureDepthStencil(state)
			ds.DepthBias = int32(units)
			ds.DepthBiasSlopeScale = factor

		case settings.SettingTypeSampleCoverage:
			return nil, fmt.Errorf("sample coverage is not expressible in WebGPU")

		case settings.SettingTypeSampleAlphaToCoverage:
			state.AlphaToCoverage = true

		default:
			return nil, fmt.Errorf("unknown setting type %d", s.Type())
		}
	}

	return state, nil
}

// resolveBlend fills the blend state and constant from a Blend or BlendSeparate setting.
func resolveBlend(state *PipelineState, s settings.Setting) error {
	color, err := blendComponent(s.ColorBlendOptions())
	if err != nil {
		return err
	}
	alpha, err := blendComponent(s.AlphaBlendOptions())
	if err != nil {
		return err
	}

	r, g, b, a := s.BlendColor()
	state.Blend = &wgpu.BlendState{
		Color: color,
		Alpha: alpha,
	}
	state.BlendConstant = wgpu.Color{
		R: float64(r),
		G: float64(g),
		B: float64(b),
		A: float64(a),
	}
	return nil
}

// resolveStencil fills the stencil faces of the depth/stencil state from a
// Stencil or StencilSeparate setting. WebGPU shares one read mask, one write
// mask, and one reference value between both faces, so per-face values that
// differ cannot be expressed.
func resolveStencil(state *PipelineState, s settings.Setting) error {
	front := s.StencilFront()
	back := s.StencilBack()

	if front.ValueMask != back.ValueMask {
		return fmt.Errorf("WebGPU shares one stencil read mask between faces: front 0x%X, back 0x%X", front.ValueMask, back.ValueMask)
	}
	if front.WriteMask != back.WriteMask {
		return fmt.Errorf("WebGPU shares one stencil write mask between faces: front 0x%X, back 0x%X", front.WriteMask, back.WriteMask)
	}
	if front.Ref != back.Ref {
		return fmt.Errorf("WebGPU shares one stencil reference between faces: front %d, back %d", front.Ref, back.Ref)
	}

	frontFace, err := stencilFace(front)
	if err != nil {
		return err
	}
	backFace, err := stencilFace(back)
	if err != nil {
		return err
	}

	ds := ensureDepthStencil(state)
	ds.Format = wgpu.TextureFormatDepth24PlusStencil8
	ds.StencilFront = frontFace
	ds.StencilBack = backFace
	ds.StencilReadMask = front.ValueMask
	ds.StencilWriteMask = front.WriteMask
	state.StencilReference = clampToUint32(front.Ref)
	return nil
}

// ensureDepthStencil returns the state's depth/stencil descriptor, creating it
// with pass-through defaults on first use: always-passing depth compare, no
// depth writes, keep-everything stencil faces.
func ensureDepthStencil(state *PipelineState) *wgpu.DepthStencilState {
	if state.DepthStencil == nil {
		passThrough := wgpu.StencilFaceState{
			Compare:     wgpu.CompareFunctionAlways,
			FailOp:      wgpu.StencilOperationKeep,
			DepthFailOp: wgpu.StencilOperationKeep,
			PassOp:      wgpu.StencilOperationKeep,
		}
		state.DepthStencil = &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: false,
			DepthCompare:      wgpu.CompareFunctionAlways,
			StencilFront:      passThrough,
			StencilBack:       passThrough,
			StencilReadMask:   0xFFFFFFFF,
			StencilWriteMask:  0xFFFFFFFF,
		}
	}
	return state.DepthStencil
}

// stencilFace maps one face's stencil options onto a wgpu stencil face descriptor.
func stencilFace(opts settings.StencilOptions) (wgpu.StencilFaceState, error) {
	compare, err := compareFunction(opts.Func)
	if err != nil {
		return wgpu.StencilFaceState{}, err
	}
	fail, err := stencilOperation(opts.Fail)
	if err != nil {
		return wgpu.StencilFaceState{}, err
	}
	zfail, err := stencilOperation(opts.ZFail)
	if err != nil {
		return wgpu.StencilFaceState{}, err
	}
	zpass, err := stencilOperation(opts.ZPass)
	if err != nil {
		return wgpu.StencilFaceState{}, err
	}
	return wgpu.StencilFaceState{
		Compare:     compare,
		FailOp:      fail,
		DepthFailOp: zfail,
		PassOp:      zpass,
	}, nil
}

// blendComponent maps one blend function onto a wgpu blend component.
func blendComponent(opts settings.BlendOptions) (wgpu.BlendComponent, error) {
	op, err := blendOperation(opts.Equation)
	if err != nil {
		return wgpu.BlendComponent{}, err
	}
	src, err := blendFactor(opts.Source)
	if err != nil {
		return wgpu.BlendComponent{}, err
	}
	dst, err := blendFactor(opts.Destination)
	if err != nil {
		return wgpu.BlendComponent{}, err
	}
	return wgpu.BlendComponent{
		Operation: op,
		SrcFactor: src,
		DstFactor: dst,
	}, nil
}

// blendOperation maps a blend equation token onto the wgpu blend operation.
func blendOperation(eq gl.BlendEquation) (wgpu.BlendOperation, error) {
	switch eq {
	case gl.EquationAdd:
		return wgpu.BlendOperationAdd, nil
	case gl.EquationSubtract:
		return wgpu.BlendOperationSubtract, nil
	case gl.EquationReverseSubtract:
		return wgpu.BlendOperationReverseSubtract, nil
	case gl.EquationMin:
		return wgpu.BlendOperationMin, nil
	case gl.EquationMax:
		return wgpu.BlendOperationMax, nil
	default:
		return 0, fmt.Errorf("unknown blend equation token")
	}
}

// blendFactor maps a blend factor token onto the wgpu blend factor. WebGPU has a
// single constant blend color, so the constant-color and constant-alpha factors
// both map onto the constant factor.
func blendFactor(f gl.BlendFactor) (wgpu.BlendFactor, error) {
	switch f {
	case gl.FactorZero:
		return wgpu.BlendFactorZero, nil
	case gl.FactorOne:
		return wgpu.BlendFactorOne, nil
	case gl.FactorSrcColor:
		return wgpu.BlendFactorSrc, nil
	case gl.FactorOneMinusSrcColor:
		return wgpu.BlendFactorOneMinusSrc, nil
	case gl.FactorSrcAlpha:
		return wgpu.BlendFactorSrcAlpha, nil
	case gl.FactorOneMinusSrcAlpha:
		return wgpu.BlendFactorOneMinusSrcAlpha, nil
	case gl.FactorDstAlpha:
		return wgpu.BlendFactorDstAlpha, nil
	case gl.FactorOneMinusDstAlpha:
		return wgpu.BlendFactorOneMinusDstAlpha, nil
	case gl.FactorDstColor:
		return wgpu.BlendFactorDst, nil
	case gl.FactorOneMinusDstColor:
		return wgpu.BlendFactorOneMinusDst, nil
	case gl.FactorSrcAlphaSaturate:
		return wgpu.BlendFactorSrcAlphaSaturated, nil
	case gl.FactorConstantColor, gl.FactorConstantAlpha:
		return wgpu.BlendFactorConstant, nil
	case gl.FactorOneMinusConstantColor, gl.FactorOneMinusConstantAlpha:
		return wgpu.BlendFactorOneMinusConstant, nil
	default:
		return 0, fmt.Errorf("unknown blend factor token")
	}
}

// compareFunction maps a compare mode token onto the wgpu compare function.
func compareFunction(c gl.CompareMode) (wgpu.CompareFunction, error) {
	switch c {
	case gl.CompareNever:
		return wgpu.CompareFunctionNever, nil
	case gl.CompareLess:
		return wgpu.CompareFunctionLess, nil
	case gl.CompareEqual:
		return wgpu.CompareFunctionEqual, nil
	case gl.CompareLessOrEqual:
		return wgpu.CompareFunctionLessEqual, nil
	case gl.CompareGreater:
		return wgpu.CompareFunctionGreater, nil
	case gl.CompareNotEqual:
		return wgpu.CompareFunctionNotEqual, nil
	case gl.CompareGreaterOrEqual:
		return wgpu.CompareFunctionGreaterEqual, nil
	case gl.CompareAlways:
		return wgpu.CompareFunctionAlways, nil
	default:
		return 0, fmt.Errorf("unknown compare mode token")
	}
}

// stencilOperation maps a stencil op token onto the wgpu stencil operation.
func stencilOperation(op gl.StencilOp) (wgpu.StencilOperation, error) {
	switch op {
	case gl.StencilOpKeep:
		return wgpu.StencilOperationKeep, nil
	case gl.StencilOpZero:
		return wgpu.StencilOperationZero, nil
	case gl.StencilOpReplace:
		return wgpu.StencilOperationReplace, nil
	case gl.StencilOpIncrement:
		return wgpu.StencilOperationIncrementClamp, nil
	case gl.StencilOpDecrement:
		return wgpu.StencilOperationDecrementClamp, nil
	case gl.StencilOpInvert:
		return wgpu.StencilOperationInvert, nil
	case gl.StencilOpIncrementWrap:
		return wgpu.StencilOperationIncrementWrap, nil
	case gl.StencilOpDecrementWrap:
		return wgpu.StencilOperationDecrementWrap, nil
	default:
		return 0, fmt.Errorf("unknown stencil op token")
	}
}

// colorWriteMask builds the wgpu color write mask from per-channel flags.
func colorWriteMask(r, g, b, a bool) wgpu.ColorWriteMask {
	mask := wgpu.ColorWriteMaskNone
	if r {
		mask |= wgpu.ColorWriteMaskRed
	}
	if g {
		mask |= wgpu.ColorWriteMaskGreen
	}
	if b {
		mask |= wgpu.ColorWriteMaskBlue
	}
	if a {
		mask |= wgpu.ColorWriteMaskAlpha
	}
	return mask
}

// cullMode maps a face-mode enum code onto the wgpu cull mode. WebGPU cannot
// cull both faces at once.
func cullMode(code int32) (wgpu.CullMode, error) {
	switch uint32(code) {
	case gl.FaceFront.Code():
		return wgpu.CullModeFront, nil
	case gl.FaceBack.Code():
		return wgpu.CullModeBack, nil
	case gl.FaceFrontAndBack.Code():
		return 0, fmt.Errorf("WebGPU cannot cull both front and back faces")
	default:
		return 0, fmt.Errorf("unknown face mode code 0x%X", code)
	}
}

// clampToUint32 clamps a possibly negative scissor coordinate to zero.
func clampToUint32(v int32) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}
