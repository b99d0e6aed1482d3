package gl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFaceMode_Code(t *testing.T) {
	assert.Equal(t, uint32(0x0404), FaceFront.Code())
	assert.Equal(t, uint32(0x0405), FaceBack.Code())
	assert.Equal(t, uint32(0x0408), FaceFrontAndBack.Code())
}

func TestBlendEquation_Distinct(t *testing.T) {
	equations := []BlendEquation{
		EquationAdd,
		EquationSubtract,
		EquationReverseSubtract,
		EquationMin,
		EquationMax,
	}
	seen := make(map[BlendEquation]bool)
	for _, eq := range equations {
		assert.False(t, seen[eq], "duplicate blend equation token")
		seen[eq] = true
	}
	assert.Len(t, seen, 5)
}

func TestBlendFactor_Distinct(t *testing.T) {
	factors := []BlendFactor{
		FactorZero,
		FactorOne,
		FactorSrcColor,
		FactorOneMinusSrcColor,
		FactorSrcAlpha,
		FactorOneMinusSrcAlpha,
		FactorDstAlpha,
		FactorOneMinusDstAlpha,
		FactorDstColor,
		FactorOneMinusDstColor,
		FactorSrcAlphaSaturate,
		FactorConstantColor,
		FactorOneMinusConstantColor,
		FactorConstantAlpha,
		FactorOneMinusConstantAlpha,
	}
	seen := make(map[BlendFactor]bool)
	for _, f := range factors {
		assert.False(t, seen[f], "duplicate blend factor token")
		seen[f] = true
	}
	assert.Len(t, seen, 15)
}

func TestCompareMode_Distinct(t *testing.T) {
	modes := []CompareMode{
		CompareNever,
		CompareLess,
		CompareEqual,
		CompareLessOrEqual,
		CompareGreater,
		CompareNotEqual,
		CompareGreaterOrEqual,
		CompareAlways,
	}
	seen := make(map[CompareMode]bool)
	for _, m := range modes {
		assert.False(t, seen[m], "duplicate compare mode token")
		seen[m] = true
	}
	assert.Len(t, seen, 8)
}

func TestStencilOp_Distinct(t *testing.T) {
	ops := []StencilOp{
		StencilOpKeep,
		StencilOpZero,
		StencilOpReplace,
		StencilOpIncrement,
		StencilOpDecrement,
		StencilOpInvert,
		StencilOpIncrementWrap,
		StencilOpDecrementWrap,
	}
	seen := make(map[StencilOp]bool)
	for _, op := range ops {
		assert.False(t, seen[op], "duplicate stencil op token")
		seen[op] = true
	}
	assert.Len(t, seen, 8)
}
