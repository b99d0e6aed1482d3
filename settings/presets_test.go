package settings

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/gl"
	"github.com/stretchr/testify/assert"
)

func TestBlendAdd(t *testing.T) {
	expected := Blend(BlendOptions{
		Equation:    gl.EquationAdd,
		Source:      gl.FactorSrcAlpha,
		Destination: gl.FactorOneMinusSrcAlpha,
	}, 0, 0, 0, 0)
	assert.Equal(t, expected, BlendAdd(gl.FactorSrcAlpha, gl.FactorOneMinusSrcAlpha))
}

func TestBlendSubtract(t *testing.T) {
	expected := Blend(BlendOptions{
		Equation:    gl.EquationSubtract,
		Source:      gl.FactorOne,
		Destination: gl.FactorOne,
	}, 0, 0, 0, 0)
	assert.Equal(t, expected, BlendSubtract(gl.FactorOne, gl.FactorOne))
}

func TestBlendReverseSubtract(t *testing.T) {
	expected := Blend(BlendOptions{
		Equation:    gl.EquationReverseSubtract,
		Source:      gl.FactorDstColor,
		Destination: gl.FactorSrcColor,
	}, 0, 0, 0, 0)
	assert.Equal(t, expected, BlendReverseSubtract(gl.FactorDstColor, gl.FactorSrcColor))
}

func TestBlendCustom(t *testing.T) {
	color := BlendOptions{
		Equation:    gl.EquationAdd,
		Source:      gl.FactorConstantColor,
		Destination: gl.FactorOneMinusConstantColor,
	}
	alpha := BlendOptions{
		Equation:    gl.EquationMax,
		Source:      gl.FactorOne,
		Destination: gl.FactorOne,
	}
	assert.Equal(t,
		BlendSeparate(color, alpha, 0.5, 0.5, 0.5, 1),
		BlendCustom(0.5, 0.5, 0.5, 1, color, alpha),
	)
}

func TestAlphaBlending(t *testing.T) {
	assert.Equal(t, BlendAdd(gl.FactorSrcAlpha, gl.FactorOneMinusSrcAlpha), AlphaBlending())
}

func TestDefaultDepth(t *testing.T) {
	assert.Equal(t, Depth(DefaultDepthOptions()), DefaultDepth())
}
