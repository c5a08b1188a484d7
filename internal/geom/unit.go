package geom

// Unit identifies a physical length unit.
type Unit uint8

const (
	UnitPt Unit = iota
	UnitMm
	UnitCm
	UnitIn
)

// String returns the unit suffix as it appears in source text.
func (u Unit) String() string {
	switch u {
	case UnitPt:
		return "pt"
	case UnitMm:
		return "mm"
	case UnitCm:
		return "cm"
	case UnitIn:
		return "in"
	}
	return "pt"
}

// Valid reports whether u is one of the defined units.
func (u Unit) Valid() bool {
	return u <= UnitIn
}

// ParseUnit maps a unit suffix back to its Unit.
func ParseUnit(s string) (Unit, bool) {
	switch s {
	case "pt":
		return UnitPt, true
	case "mm":
		return UnitMm, true
	case "cm":
		return UnitCm, true
	case "in":
		return UnitIn, true
	}
	return 0, false
}
