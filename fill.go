package convexaa

// FillRule describes how a path's interior is resolved when filling.
type FillRule int

const (
	// FillWinding fills where the winding number is non-zero.
	FillWinding FillRule = iota
	// FillEvenOdd fills where the winding number is odd.
	FillEvenOdd
	// FillInverseWinding fills the complement of FillWinding.
	FillInverseWinding
	// FillInverseEvenOdd fills the complement of FillEvenOdd.
	FillInverseEvenOdd
	// FillHairline strokes the outline one pixel wide instead of filling.
	FillHairline
)

// IsInverted reports whether the rule fills the outside of the outline.
func (f FillRule) IsInverted() bool {
	return f == FillInverseWinding || f == FillInverseEvenOdd
}

func (f FillRule) String() string {
	switch f {
	case FillWinding:
		return "winding"
	case FillEvenOdd:
		return "evenodd"
	case FillInverseWinding:
		return "inverse-winding"
	case FillInverseEvenOdd:
		return "inverse-evenodd"
	case FillHairline:
		return "hairline"
	}
	return "unknown"
}
