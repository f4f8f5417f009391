package usbrelay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantFor(t *testing.T) {
	assert.Equal(t, VariantTwoRelay, variantFor(0xAD))
	assert.Equal(t, VariantFourRelay, variantFor(0xAB))
	assert.Equal(t, VariantEightRelay, variantFor(0xAC))
	assert.Equal(t, VariantUnknown, variantFor(0x00))
	assert.Equal(t, VariantUnknown, variantFor(0x50))
}

func TestVariantForCount(t *testing.T) {
	assert.Equal(t, VariantTwoRelay, variantForCount(2))
	assert.Equal(t, VariantFourRelay, variantForCount(4))
	assert.Equal(t, VariantEightRelay, variantForCount(8))
	assert.Equal(t, VariantUnknown, variantForCount(0))
	assert.Equal(t, VariantUnknown, variantForCount(3))
}

func TestVariantRelays(t *testing.T) {
	assert.Equal(t, 0, VariantUnknown.Relays())
	assert.Equal(t, 2, VariantTwoRelay.Relays())
	assert.Equal(t, 4, VariantFourRelay.Relays())
	assert.Equal(t, 8, VariantEightRelay.Relays())
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "8-relay board", VariantEightRelay.String())
	assert.Equal(t, "unknown board", VariantUnknown.String())
}
