package typesystem

import (
	"math"
	"reflect"
	"slices"
	"strings"
)

// Descriptor is a single domain predicate with the description reported on violation.
// Canonical, when set, maps an accepted value to its stored form.
type Descriptor struct {
	Name      string
	Expected  string
	Check     func(v any) bool
	Canonical func(v any) any
}

// Admits reports whether v lies in the descriptor's domain.
func (d Descriptor) Admits(v any) bool {
	if d.Check == nil {
		return true
	}
	return d.Check(v)
}

func (d Descriptor) canonical(v any) any {
	if d.Canonical == nil {
		return v
	}
	return d.Canonical(v)
}

var (
	// Real admits any finite or infinite real number of a Go numeric kind. NaN is rejected.
	Real = Descriptor{
		Name:     "Real",
		Expected: "a real number",
		Check: func(v any) bool {
			_, ok := AsReal(v)
			return ok
		},
		Canonical: canonicalReal,
	}

	// UnsignedReal admits real numbers >= 0.
	UnsignedReal = Descriptor{
		Name:     "UnsignedReal",
		Expected: "a real number >= 0",
		Check: func(v any) bool {
			f, ok := AsReal(v)
			return ok && f >= 0
		},
		Canonical: canonicalReal,
	}

	// PositiveReal admits real numbers > 0.
	PositiveReal = Descriptor{
		Name:     "PositiveReal",
		Expected: "a real number > 0",
		Check: func(v any) bool {
			f, ok := AsReal(v)
			return ok && f > 0
		},
		Canonical: canonicalReal,
	}

	// String admits text.
	String = Descriptor{
		Name:     "String",
		Expected: "a text string",
		Check: func(v any) bool {
			return v != nil && reflect.TypeOf(v).Kind() == reflect.String
		},
		Canonical: func(v any) any {
			return reflect.ValueOf(v).String()
		},
	}

	// Vector admits exactly three real components (array, slice, or YAML sequence).
	Vector = Descriptor{
		Name:     "Vector",
		Expected: "a vector of three real numbers",
		Check: func(v any) bool {
			_, ok := AsVector(v)
			return ok
		},
		Canonical: func(v any) any {
			vec, _ := AsVector(v)
			return vec
		},
	}
)

// OneOf admits text equal to one of values.
func OneOf(values ...string) Descriptor {
	allowed := slices.Clone(values)
	return Descriptor{
		Name:     "OneOf",
		Expected: "one of {" + strings.Join(allowed, ", ") + "}",
		Check: func(v any) bool {
			if !String.Admits(v) {
				return false
			}
			return slices.Contains(allowed, reflect.ValueOf(v).String())
		},
		Canonical: String.Canonical,
	}
}

// AsReal converts any Go integer or float kind to float64. Booleans and NaN are not reals.
func AsReal(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	var f float64
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f = float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		f = rv.Float()
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// AsVector converts a three-element array or slice of reals to [3]float64.
func AsVector(v any) ([3]float64, bool) {
	var out [3]float64
	if v == nil {
		return out, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Array && rv.Kind() != reflect.Slice {
		return out, false
	}
	if rv.Len() != 3 {
		return out, false
	}
	for i := range 3 {
		f, ok := AsReal(rv.Index(i).Interface())
		if !ok {
			return out, false
		}
		out[i] = f
	}
	return out, true
}

func canonicalReal(v any) any {
	f, _ := AsReal(v)
	return f
}
