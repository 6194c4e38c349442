// Command unitgen generates the dimension table of package units.
//
// Go cannot do arithmetic on type parameters, so a product such as Force × Time cannot be
// typed as Momentum by a single generic function. unitgen closes that gap at generate time:
// it reads a YAML list of named dimensions and emits, for each of them,
//
//   - a unit tag type implementing units.Unit
//   - an alias Name = Value[Tag]
//   - a literal constructor accepting floating-point magnitudes only
//
// and, for every ordered pair of named dimensions whose product (or quotient) is also a
// named dimension, a function <Left>Times<Right> (or <Left>Per<Right>) returning the
// correctly typed result. Combinations without a named result get no function, so they
// fail to compile.
//
// Usage
//
//	//go:generate go run ../cmd/unitgen -spec units.yaml -out units.gen.go
//
// Spec format (units.yaml)
//
//	package: units
//	dimensions:
//	  - name: Length        # alias name
//	    unit: LengthUnit    # tag type
//	    constructor: M      # literal constructor
//	    symbol: m
//	    metre: 1
//	    kilogram: 0
//	    second: 0
//
// Exit codes: 0 success, 1 invalid spec or generation failure, 2 usage error.
package main
