package units

import (
	"strconv"
	"strings"
)

// Dimension is the exponent triple over the MKS base units.
//
// Two dimensions are equal iff all three exponents match, so Dimension values can be
// compared with ==.
type Dimension struct {
	Metre    int
	Kilogram int
	Second   int
}

// Dimensionless is the dimension of pure numbers.
var Dimensionless = Dimension{}

// Times returns the dimension of a product: exponents are added component-wise.
func (d Dimension) Times(o Dimension) Dimension {
	return Dimension{
		Metre:    d.Metre + o.Metre,
		Kilogram: d.Kilogram + o.Kilogram,
		Second:   d.Second + o.Second,
	}
}

// Per returns the dimension of a quotient: exponents are subtracted component-wise.
func (d Dimension) Per(o Dimension) Dimension {
	return Dimension{
		Metre:    d.Metre - o.Metre,
		Kilogram: d.Kilogram - o.Kilogram,
		Second:   d.Second - o.Second,
	}
}

// IsDimensionless reports whether all exponents are zero.
func (d Dimension) IsDimensionless() bool { return d == Dimensionless }

// String renders the dimension as base units joined by a middle dot, e.g. "m·kg·s^-2".
// A dimensionless value renders as "1".
func (d Dimension) String() string {
	if d.IsDimensionless() {
		return "1"
	}

	parts := make([]string, 0, 3)
	for _, p := range []struct {
		symbol string
		exp    int
	}{
		{"m", d.Metre},
		{"kg", d.Kilogram},
		{"s", d.Second},
	} {
		switch p.exp {
		case 0:
		case 1:
			parts = append(parts, p.symbol)
		default:
			parts = append(parts, p.symbol+"^"+strconv.Itoa(p.exp))
		}
	}
	return strings.Join(parts, "·")
}
