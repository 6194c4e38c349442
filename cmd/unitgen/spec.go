package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Exponents is the (metre, kilogram, second) triple of a dimension.
type Exponents struct {
	Metre    int
	Kilogram int
	Second   int
}

func (e Exponents) plus(o Exponents) Exponents {
	return Exponents{e.Metre + o.Metre, e.Kilogram + o.Kilogram, e.Second + o.Second}
}

func (e Exponents) minus(o Exponents) Exponents {
	return Exponents{e.Metre - o.Metre, e.Kilogram - o.Kilogram, e.Second - o.Second}
}

// String renders the triple as used in generated doc comments.
func (e Exponents) String() string {
	return fmt.Sprintf("m^%d kg^%d s^%d", e.Metre, e.Kilogram, e.Second)
}

// DimensionSpec describes one named dimension.
type DimensionSpec struct {
	// Name is the generated alias, e.g. Length.
	Name string `yaml:"name"`

	// Unit is the generated tag type, e.g. LengthUnit.
	Unit string `yaml:"unit"`

	// Constructor is the literal constructor, e.g. M.
	Constructor string `yaml:"constructor"`

	// Symbol is returned by the tag's Symbol method. Empty for dimensionless.
	Symbol string `yaml:"symbol"`

	Metre    int `yaml:"metre"`
	Kilogram int `yaml:"kilogram"`
	Second   int `yaml:"second"`
}

// Exponents returns the dimension triple.
func (d DimensionSpec) Exponents() Exponents {
	return Exponents{Metre: d.Metre, Kilogram: d.Kilogram, Second: d.Second}
}

// Spec is the full input schema consumed by the generator.
type Spec struct {
	Package    string          `yaml:"package"`
	Dimensions []DimensionSpec `yaml:"dimensions"`
}

// SpecError collects every validation problem found in a spec.
type SpecError struct {
	Problems []string
}

// Error implements the error interface.
func (e *SpecError) Error() string {
	return "unitgen: invalid spec: " + strings.Join(e.Problems, "; ")
}

func (e *SpecError) addf(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// parseSpec decodes a YAML spec. Unknown fields are rejected; an empty document yields
// an empty Spec, which validateSpec then reports.
func parseSpec(data []byte) (Spec, error) {
	var spec Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return Spec{}, fmt.Errorf("unitgen: decode spec: %w", err)
	}
	return spec, nil
}

// validateSpec checks the spec for semantic correctness and returns a *SpecError
// listing all problems, or nil.
func validateSpec(spec *Spec) error {
	problems := &SpecError{}

	if strings.TrimSpace(spec.Package) == "" {
		problems.addf("package is required")
	} else if !token.IsIdentifier(spec.Package) {
		problems.addf("package %q is not a valid identifier", spec.Package)
	}

	if len(spec.Dimensions) == 0 {
		problems.addf("dimensions must have at least 1 entry")
	}

	seenIdents := make(map[string]int, 3*len(spec.Dimensions))
	seenExponents := make(map[Exponents]string, len(spec.Dimensions))

	checkIdent := func(i int, field, ident string) {
		switch {
		case ident == "":
			problems.addf("dimensions[%d].%s is required", i, field)
			return
		case !token.IsIdentifier(ident) || !token.IsExported(ident):
			problems.addf("dimensions[%d].%s %q is not an exported Go identifier", i, field, ident)
			return
		}
		if prev, ok := seenIdents[ident]; ok {
			problems.addf("dimensions[%d].%s %q already declared by dimensions[%d]", i, field, ident, prev)
			return
		}
		seenIdents[ident] = i
	}

	for i, dim := range spec.Dimensions {
		checkIdent(i, "name", dim.Name)
		checkIdent(i, "unit", dim.Unit)
		checkIdent(i, "constructor", dim.Constructor)

		exp := dim.Exponents()
		if prev, ok := seenExponents[exp]; ok {
			problems.addf("dimensions[%d] %s has the same exponents (%s) as %s", i, dim.Name, exp, prev)
			continue
		}
		seenExponents[exp] = dim.Name
	}

	if len(problems.Problems) > 0 {
		return problems
	}
	return nil
}
