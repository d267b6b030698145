// Package calc implements the markup cascade: commercial prices derived from base
// costs and markup percentages. Everything here is pure and safe for concurrent use.
package calc

// Form is how a stage applies its percentage to its base.
type Form int

const (
	// Scale yields an increment: base × pct/100.
	Scale Form = iota
	// Grow yields a new total including the base: base × (1 + pct/100).
	Grow
)

func (f Form) String() string {
	switch f {
	case Scale:
		return "scale"
	case Grow:
		return "grow"
	default:
		return "unknown"
	}
}

// Apply applies pct to base using the form.
func (f Form) Apply(base, pct float64) float64 {
	if f == Grow {
		return base * (1 + pct/100)
	}
	return base * (pct / 100)
}
