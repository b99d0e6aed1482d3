package settings

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/gl"
	"github.com/stretchr/testify/assert"
)

func TestDefaultBlendOptions(t *testing.T) {
	assert.Equal(t, BlendOptions{
		Equation:    gl.EquationAdd,
		Source:      gl.FactorOne,
		Destination: gl.FactorZero,
	}, DefaultBlendOptions())
}

func TestDefaultDepthOptions(t *testing.T) {
	assert.Equal(t, DepthOptions{
		Func: gl.CompareLess,
		Mask: true,
		Near: 0,
		Far:  1,
	}, DefaultDepthOptions())
}

func TestDefaultStencilOptions(t *testing.T) {
	opts := DefaultStencilOptions()
	assert.Equal(t, gl.CompareAlways, opts.Func)
	assert.Equal(t, int32(0), opts.Ref)
	assert.Equal(t, uint32(0xFFFFFFFF), opts.ValueMask)
	assert.Equal(t, gl.StencilOpKeep, opts.Fail)
	assert.Equal(t, gl.StencilOpKeep, opts.ZFail)
	assert.Equal(t, gl.StencilOpKeep, opts.ZPass)
	assert.Equal(t, uint32(0xFFFFFFFF), opts.WriteMask)
}

func TestBlend_RoundTrip(t *testing.T) {
	s := Blend(DefaultBlendOptions(), 1, 0, 0, 0.5)

	assert.Equal(t, SettingTypeBlend, s.Type())
	assert.Equal(t, DefaultBlendOptions(), s.ColorBlendOptions())
	assert.Equal(t, DefaultBlendOptions(), s.AlphaBlendOptions())

	r, g, b, a := s.BlendColor()
	assert.Equal(t, float32(1), r)
	assert.Equal(t, float32(0), g)
	assert.Equal(t, float32(0), b)
	assert.Equal(t, float32(0.5), a)
}

func TestBlendSeparate_RoundTrip(t *testing.T) {
	color := BlendOptions{
		Equation:    gl.EquationAdd,
		Source:      gl.FactorSrcAlpha,
		Destination: gl.FactorOneMinusSrcAlpha,
	}
	alpha := BlendOptions{
		Equation:    gl.EquationReverseSubtract,
		Source:      gl.FactorOne,
		Destination: gl.FactorOne,
	}
	s := BlendSeparate(color, alpha, 0.1, 0.2, 0.3, 0.4)

	assert.Equal(t, SettingTypeBlendSeparate, s.Type())
	assert.Equal(t, color, s.ColorBlendOptions())
	assert.Equal(t, alpha, s.AlphaBlendOptions())

	r, g, b, a := s.BlendColor()
	assert.Equal(t, float32(0.1), r)
	assert.Equal(t, float32(0.2), g)
	assert.Equal(t, float32(0.3), b)
	assert.Equal(t, float32(0.4), a)
}

func TestDepth_RoundTrip(t *testing.T) {
	opts := DepthOptions{
		Func: gl.CompareLessOrEqual,
		Mask: false,
		Near: 0.25,
		Far:  0.75,
	}
	s := Depth(opts)

	assert.Equal(t, SettingTypeDepth, s.Type())
	assert.Equal(t, opts, s.DepthOptions())
}

func TestStencil_RoundTrip(t *testing.T) {
	opts := StencilOptions{
		Func:      gl.CompareEqual,
		Ref:       3,
		ValueMask: 0xFF,
		Fail:      gl.StencilOpZero,
		ZFail:     gl.StencilOpInvert,
		ZPass:     gl.StencilOpReplace,
		WriteMask: 0xFF,
	}
	s := Stencil(opts)

	assert.Equal(t, SettingTypeStencil, s.Type())
	assert.Equal(t, opts, s.StencilFront())
	assert.Equal(t, opts, s.StencilBack())
}

func TestStencilSeparate_PreservesFaces(t *testing.T) {
	front := StencilOptions{
		Func:      gl.CompareGreater,
		Ref:       1,
		ValueMask: 0x0F,
		Fail:      gl.StencilOpIncrement,
		ZFail:     gl.StencilOpDecrement,
		ZPass:     gl.StencilOpIncrementWrap,
		WriteMask: 0x0F,
	}
	back := StencilOptions{
		Func:      gl.CompareNotEqual,
		Ref:       2,
		ValueMask: 0xF0,
		Fail:      gl.StencilOpDecrementWrap,
		ZFail:     gl.StencilOpKeep,
		ZPass:     gl.StencilOpZero,
		WriteMask: 0xF0,
	}
	s := StencilSeparate(front, back)

	assert.Equal(t, SettingTypeStencilSeparate, s.Type())
	assert.Equal(t, front, s.StencilFront())
	assert.Equal(t, back, s.StencilBack())
}

func TestScissor_RoundTrip(t *testing.T) {
	s := Scissor(0, 0, 100, 50)

	assert.Equal(t, SettingTypeScissor, s.Type())
	x, y, width, height := s.Rect()
	assert.Equal(t, int32(0), x)
	assert.Equal(t, int32(0), y)
	assert.Equal(t, int32(100), width)
	assert.Equal(t, int32(50), height)
}

func TestColorMask_RoundTrip(t *testing.T) {
	s := ColorMask(true, false, true, false)

	assert.Equal(t, SettingTypeColorMask, s.Type())
	r, g, b, a := s.ColorMask()
	assert.True(t, r)
	assert.False(t, g)
	assert.True(t, b)
	assert.False(t, a)
}

func TestCullFace_StoresFaceCode(t *testing.T) {
	assert.Equal(t, int32(gl.FaceFront.Code()), CullFace(gl.FaceFront).CullMode())
	assert.Equal(t, int32(gl.FaceBack.Code()), CullFace(gl.FaceBack).CullMode())
	assert.Equal(t, int32(gl.FaceFrontAndBack.Code()), CullFace(gl.FaceFrontAndBack).CullMode())
}

func TestPolygonOffset_RoundTrip(t *testing.T) {
	s := PolygonOffset(1.5, 2)

	assert.Equal(t, SettingTypePolygonOffset, s.Type())
	factor, units := s.PolygonOffset()
	assert.Equal(t, float32(1.5), factor)
	assert.Equal(t, float32(2), units)
}

func TestSampleCoverage_RoundTrip(t *testing.T) {
	s := SampleCoverage(0.5, true)

	assert.Equal(t, SettingTypeSampleCoverage, s.Type())
	value, invert := s.SampleCoverage()
	assert.Equal(t, float32(0.5), value)
	assert.True(t, invert)
}

func TestSetting_ValueEquality(t *testing.T) {
	assert.Equal(t, Blend(DefaultBlendOptions(), 1, 0, 0, 0.5), Blend(DefaultBlendOptions(), 1, 0, 0, 0.5))
	assert.Equal(t, Dither(), Dither())
	assert.Equal(t, SampleAlphaToCoverage(), SampleAlphaToCoverage())
	assert.NotEqual(t, Dither(), SampleAlphaToCoverage())

	// Blend and BlendSeparate carry distinct tags even with identical payloads.
	opts := DefaultBlendOptions()
	assert.NotEqual(t, Blend(opts, 0, 0, 0, 0), BlendSeparate(opts, opts, 0, 0, 0, 0))

	// == works directly: settings are flat comparable values.
	assert.True(t, Scissor(0, 0, 100, 50) == Scissor(0, 0, 100, 50))
	assert.False(t, Scissor(0, 0, 100, 50) == Scissor(0, 0, 50, 100))
}

func TestPayloadKinds_DoNotCollide(t *testing.T) {
	// A scissor rectangle and a color mask must never compare equal just because
	// their unused payload fields are both zero.
	assert.NotEqual(t, Scissor(0, 0, 0, 0), ColorMask(false, false, false, false))
	assert.NotEqual(t, Depth(DepthOptions{}), Stencil(StencilOptions{}))
}
