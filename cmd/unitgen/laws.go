package main

// law is one generated product or quotient.
type law struct {
	Left   DimensionSpec
	Right  DimensionSpec
	Result DimensionSpec

	// Op is the Go operator applied to magnitudes, "*" or "/".
	Op string
}

// Name is the generated function name.
func (l law) Name() string {
	if l.Op == "*" {
		return l.Left.Name + "Times" + l.Right.Name
	}
	return l.Left.Name + "Per" + l.Right.Name
}

// OpConst is the units.Op constant naming the operator.
func (l law) OpConst() string {
	if l.Op == "*" {
		return "OpTimes"
	}
	return "OpPer"
}

// Verb is used in the generated doc comment.
func (l law) Verb() string {
	if l.Op == "*" {
		return "multiplies"
	}
	return "divides"
}

// deriveLaws enumerates ordered pairs in spec order and keeps those whose product or
// quotient is itself a named dimension. For each pair the product precedes the quotient.
func deriveLaws(dims []DimensionSpec) []law {
	byExponents := make(map[Exponents]DimensionSpec, len(dims))
	for _, d := range dims {
		byExponents[d.Exponents()] = d
	}

	var laws []law
	for _, left := range dims {
		for _, right := range dims {
			if res, ok := byExponents[left.Exponents().plus(right.Exponents())]; ok {
				laws = append(laws, law{Left: left, Right: right, Result: res, Op: "*"})
			}
			if res, ok := byExponents[left.Exponents().minus(right.Exponents())]; ok {
				laws = append(laws, law{Left: left, Right: right, Result: res, Op: "/"})
			}
		}
	}
	return laws
}
