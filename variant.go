package usbrelay

import "strconv"

// Variant identifies a relay board model. The zero value is
// VariantUnknown, which is what a Controller holds before a successful
// handshake (unless the caller seeded a relay count).
type Variant int

const (
	VariantUnknown Variant = iota
	VariantTwoRelay
	VariantFourRelay
	VariantEightRelay
)

// Relays returns the number of relays on the board, or 0 for
// VariantUnknown.
func (v Variant) Relays() int {
	switch v {
	case VariantTwoRelay:
		return 2
	case VariantFourRelay:
		return 4
	case VariantEightRelay:
		return 8
	}
	return 0
}

func (v Variant) String() string {
	if n := v.Relays(); n != 0 {
		return strconv.Itoa(n) + "-relay board"
	}
	return "unknown board"
}

// variantFor maps the board's answer to the probe byte onto a Variant.
// Unlisted bytes map to VariantUnknown.
func variantFor(id byte) Variant {
	switch id {
	case idTwoRelay:
		return VariantTwoRelay
	case idFourRelay:
		return VariantFourRelay
	case idEightRelay:
		return VariantEightRelay
	}
	return VariantUnknown
}

// variantForCount is the inverse used for caller-supplied relay count
// guesses. Counts other than 2, 4 and 8 map to VariantUnknown.
func variantForCount(n int) Variant {
	switch n {
	case 2:
		return VariantTwoRelay
	case 4:
		return VariantFourRelay
	case 8:
		return VariantEightRelay
	}
	return VariantUnknown
}
