// Package semtypes collects two small, explicit Go idioms as runnable examples.
//
//   - switchable: dependency inversion through a capability interface. A Switch toggles
//     any device implementing On/Off (Lamp, Fan, or your own) without knowing its type.
//   - units: semantic types. Physical dimensions (metre, kilogram, second exponents) are
//     part of a quantity's type, so adding a length to a time, or passing a force where a
//     momentum is expected, does not compile.
//
// Go has no compile-time integer generics, so the product and quotient table of units is
// generated by cmd/unitgen from units/units.yaml.
//
// Start with the examples:
//   - examples/toggle: one Switch per configured device
//   - examples/units: a spacecraft that only accepts momentum
//
// Package semtypes See subpackages:
//   - switchable, units: library packages used by the examples
//   - cmd/unitgen: code generator for the units table
//   - examples/*: runnable examples
package semtypes
