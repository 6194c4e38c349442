package units

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

//go:generate go run ../cmd/unitgen -spec units.yaml -out units.gen.go

// Unit is the type-level dimension tag carried by a Value.
//
// The interface is sealed: tags are generated into this package from units.yaml and
// code outside the package cannot add new ones, so every tag maps to exactly one
// exponent triple.
type Unit interface {
	// Dimension returns the exponents described by the tag.
	Dimension() Dimension

	// Symbol returns the conventional unit symbol ("m", "N·s", ...). It is empty for
	// dimensionless quantities.
	Symbol() string

	unit()
}

// Quantity is the read-only view shared by every Value instantiation.
type Quantity interface {
	Magnitude() float64
	Dimension() Dimension
}

// Value is an immutable magnitude whose dimension is fixed by U.
//
// Value[LengthUnit] and Value[TimeUnit] are distinct types, so adding a length to a time
// is rejected by the compiler. The zero Value has magnitude 0. Build values with the
// literal constructors or New.
type Value[U Unit] struct {
	magnitude float64
}

// New builds a Value[U] from any integer or floating-point magnitude, widening it to
// float64.
//
// Unlike the literal constructors (M, S, Ns, ...) it accepts integers, so
// New[MomentumUnit](5) compiles and holds 5. The unit still comes from U, never from the
// argument.
func New[U Unit, N constraints.Integer | constraints.Float](magnitude N) Value[U] {
	return Value[U]{magnitude: float64(magnitude)}
}

// Magnitude returns the stored magnitude.
func (v Value[U]) Magnitude() float64 { return v.magnitude }

// Dimension returns the exponents of U.
func (v Value[U]) Dimension() Dimension {
	var u U
	return u.Dimension()
}

// Add returns v + o. Both operands share the dimension U.
func (v Value[U]) Add(o Value[U]) Value[U] {
	return Value[U]{magnitude: v.magnitude + o.magnitude}
}

// Sub returns v - o. Both operands share the dimension U.
func (v Value[U]) Sub(o Value[U]) Value[U] {
	return Value[U]{magnitude: v.magnitude - o.magnitude}
}

// String formats the magnitude with the shortest exact representation followed by the
// unit symbol, e.g. "150 N·s".
func (v Value[U]) String() string {
	var u U
	s := strconv.FormatFloat(v.magnitude, 'g', -1, 64)
	if sym := u.Symbol(); sym != "" {
		return s + " " + sym
	}
	return s
}

// Op identifies the arithmetic operator of a Law.
type Op byte

const (
	OpTimes Op = '*'
	OpPer   Op = '/'
)

// String implements fmt.Stringer.
func (o Op) String() string { return string(o) }

// Law describes one generated product or quotient between named dimensions.
type Law struct {
	// Name is the generated function name, e.g. "ForceTimesTime".
	Name string

	Op     Op
	Left   Dimension
	Right  Dimension
	Result Dimension

	// Eval builds both operands from raw magnitudes via their literal constructors and
	// applies the generated function.
	Eval func(left, right float64) Quantity
}

// Laws returns a copy of the generated law table in generation order.
func Laws() []Law {
	out := make([]Law, len(laws))
	copy(out, laws)
	return out
}

// LookupLaw returns the law generated under name.
func LookupLaw(name string) (Law, bool) {
	for _, l := range laws {
		if l.Name == name {
			return l, true
		}
	}
	return Law{}, false
}
