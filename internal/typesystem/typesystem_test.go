package typesystem

import (
	"errors"
	"math"
	"testing"
)

type tesla float64

func TestUnsignedReal(t *testing.T) {
	tests := []struct {
		name  string
		value any
		valid bool
	}{
		{"zero", 0, true},
		{"positive float", 1e-12, true},
		{"positive int", 3, true},
		{"uint", uint8(7), true},
		{"named float", tesla(1.5), true},
		{"infinity", math.Inf(1), true},
		{"negative", -0.1, false},
		{"negative int", -1, false},
		{"NaN", math.NaN(), false},
		{"string", "1.0", false},
		{"bool", true, false},
		{"nil", nil, false},
		{"slice", []float64{1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnsignedReal.Admits(tt.value); got != tt.valid {
				t.Errorf("UnsignedReal.Admits(%#v) = %v, want %v", tt.value, got, tt.valid)
			}
		})
	}
}

func TestString(t *testing.T) {
	type label string
	tests := []struct {
		value any
		valid bool
	}{
		{"exchange", true},
		{"", true},
		{label("ex"), true},
		{1, false},
		{nil, false},
		{[]byte("ex"), false},
	}

	for _, tt := range tests {
		if got := String.Admits(tt.value); got != tt.valid {
			t.Errorf("String.Admits(%#v) = %v, want %v", tt.value, got, tt.valid)
		}
	}
}

func TestVectorAndOneOf(t *testing.T) {
	if !Vector.Admits([3]float64{0, 0, 1}) {
		t.Error("array should be a vector")
	}
	if !Vector.Admits([]any{0, 0.5, 1}) {
		t.Error("mixed numeric sequence should be a vector")
	}
	if Vector.Admits([]float64{1, 2}) {
		t.Error("two components should not be a vector")
	}
	if Vector.Admits([]any{1, "2", 3}) {
		t.Error("non-numeric component should not be a vector")
	}

	cls := OneOf("T", "Cnv")
	if !cls.Admits("Cnv") || cls.Admits("D2d") || cls.Admits(1) {
		t.Error("OneOf admitted the wrong values")
	}
	if cls.Expected != "one of {T, Cnv}" {
		t.Errorf("Expected = %q", cls.Expected)
	}
}

func newDampingSchema() *Schema {
	return Declare("Damping", Fields{"alpha": UnsignedReal, "name": String})
}

func TestRecord_RoundTrip(t *testing.T) {
	rec, err := NewRecord(newDampingSchema(), map[string]any{"alpha": 0.5, "name": "damping"})
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	if got := rec.Float("alpha"); got != 0.5 {
		t.Errorf("alpha = %v, want 0.5", got)
	}
	if got := rec.Text("name"); got != "damping" {
		t.Errorf("name = %q", got)
	}

	if err := rec.Set("alpha", 0); err != nil {
		t.Fatalf("Set(0): %v", err)
	}
	v, _ := rec.Get("alpha")
	if v != 0.0 {
		t.Errorf("alpha stored as %#v, want float64 0", v)
	}
}

func TestRecord_SetRejectsAndKeepsPrior(t *testing.T) {
	rec, err := NewRecord(newDampingSchema(), map[string]any{"alpha": 0.5, "name": "damping"})
	if err != nil {
		t.Fatal(err)
	}

	err = rec.Set("alpha", -0.1)
	var cv *ConstraintViolation
	if !errors.As(err, &cv) {
		t.Fatalf("expected *ConstraintViolation, got %v", err)
	}
	if !errors.Is(err, ErrConstraintViolation) {
		t.Error("violation should wrap ErrConstraintViolation")
	}
	if cv.Attribute != "alpha" || cv.Value != -0.1 || cv.Expected != UnsignedReal.Expected {
		t.Errorf("unexpected violation details: %+v", cv)
	}
	if rec.Float("alpha") != 0.5 {
		t.Errorf("alpha changed to %v after rejected write", rec.Float("alpha"))
	}

	if err := rec.Set("name", 42); !errors.Is(err, ErrConstraintViolation) {
		t.Errorf("Set(name, 42) = %v", err)
	}
	if err := rec.Set("beta", 1.0); !errors.Is(err, ErrUnknownAttribute) {
		t.Errorf("Set(beta) = %v, want ErrUnknownAttribute", err)
	}
}

func TestNewRecord_Failures(t *testing.T) {
	schema := newDampingSchema()
	tests := []struct {
		name   string
		values map[string]any
		want   error
	}{
		{"negative", map[string]any{"alpha": -0.1, "name": "d"}, ErrConstraintViolation},
		{"non-numeric", map[string]any{"alpha": "big", "name": "d"}, ErrConstraintViolation},
		{"missing", map[string]any{"name": "d"}, ErrMissingAttribute},
		{"unknown", map[string]any{"alpha": 1.0, "name": "d", "gamma": 2.0}, ErrUnknownAttribute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := NewRecord(schema, tt.values)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if rec != nil {
				t.Error("record returned alongside error")
			}
		})
	}
}

func TestSchema_ExtendComposes(t *testing.T) {
	base := Declare("Term", Fields{"name": String})
	short := Descriptor{
		Name:     "Short",
		Expected: "at most 4 characters",
		Check: func(v any) bool {
			s, ok := v.(string)
			return ok && len(s) <= 4
		},
	}
	child := base.Extend("Exchange", Fields{"A": UnsignedReal, "name": short})

	if got := child.Attributes(); len(got) != 2 || got[0] != "name" || got[1] != "A" {
		t.Errorf("Attributes() = %v, want [name A]", got)
	}
	if n := len(child.Constraints("name")); n != 2 {
		t.Fatalf("name has %d constraints, want 2", n)
	}
	if child.Constraints("name")[0].Owner != "Term" {
		t.Error("inherited constraint should come first")
	}

	if _, err := child.Validate("name", 12); !errors.Is(err, ErrConstraintViolation) {
		t.Error("inherited String constraint was dropped")
	}
	if _, err := child.Validate("name", "exchange"); !errors.Is(err, ErrConstraintViolation) {
		t.Error("added constraint was not applied")
	}
	if _, err := child.Validate("name", "ex"); err != nil {
		t.Errorf("Validate(name, ex) = %v", err)
	}

	if base.Governs("A") {
		t.Error("extending leaked attributes into the base schema")
	}
	if child.Parent() != base || child.Owner() != "Exchange" {
		t.Error("parent or owner not recorded")
	}
}

func TestRecord_Clone(t *testing.T) {
	schema := Declare("Zeeman", Fields{"H": Vector})
	rec, err := NewRecord(schema, map[string]any{"H": []any{0, 0, 1e6}})
	if err != nil {
		t.Fatal(err)
	}
	cp := rec.Clone()
	if err := cp.Set("H", [3]float64{1, 0, 0}); err != nil {
		t.Fatal(err)
	}
	if rec.Vector("H") != [3]float64{0, 0, 1e6} {
		t.Errorf("original changed: %v", rec.Vector("H"))
	}
}
