package cards

// Confidence grades how strongly a row's evidence pins down a printing.
type Confidence int

const (
	ConfidenceNone Confidence = iota
	ConfidenceLow
	ConfidenceMedium
	ConfidenceHigh
	ConfidenceExact
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceExact:
		return "exact"
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Lower returns the next tier down. Successful matches never drop below Low,
// so Low is the floor for everything above None.
func (c Confidence) Lower() Confidence {
	if c <= ConfidenceLow {
		return c
	}
	return c - 1
}

// Max returns the higher of two tiers.
func (c Confidence) Max(other Confidence) Confidence {
	if other > c {
		return other
	}
	return c
}
