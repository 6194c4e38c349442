// Package units attaches physical dimensions to floating-point magnitudes at the type level.
//
// A quantity is a Value[U] where U is a unit tag: an empty struct type describing the
// exponents of metre, kilogram and second. Because the tag is part of the type, mixing
// dimensions is a compile error rather than a runtime check:
//
//	d := units.M(3.0)
//	t := units.S(2.0)
//	d.Add(t) // does not compile: Value[TimeUnit] is not Value[LengthUnit]
//
// Go has no compile-time integer generics, so products and quotients cannot be derived
// from the exponents by the compiler. Instead cmd/unitgen reads units.yaml and generates
// one function per pair of named dimensions whose product (or quotient) is itself a named
// dimension:
//
//	p := units.ForceTimesTime(units.N(30.0), units.S(5.0)) // Momentum, 150
//	f := units.DimensionlessQuantityPerTime(units.Scalar(1.0), units.S(5.0)) // Frequency, 0.2
//
// A combination without a generated function has no named result type and therefore does
// not compile either.
//
// Construction
//
// The magnitude is unexported. Literal constructors (M, Kg, S, N, Ns, ...) accept
// floating-point arguments only:
//
//	units.Ns(3.0) // ok
//	units.Ns(3)   // does not compile: int does not satisfy constraints.Float
//
// New takes the unit as a type argument and accepts integers too, widening them:
//
//	units.New[units.MomentumUnit](5) // Momentum, 5
//
// Import
//
//	"github.com/sghaida/semtypes/units"
package units
