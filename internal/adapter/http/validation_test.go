package http

import (
	"errors"
	"strings"
	"testing"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		Reference string `validate:"hex32"`
	}
	cv := NewValidator()

	// valid: 32-char lowercase hex
	if err := cv.Validate(P{Reference: strings.Repeat("a", 32)}); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	// invalid samples
	for _, s := range []string{
		"",                      // empty
		strings.Repeat("A", 32), // uppercase
		"deadbeef",              // too short
		strings.Repeat("g", 32), // non-hex char
	} {
		err := cv.Validate(P{Reference: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if !containsFieldMsg(ToFieldErrors(err), "Reference", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q", s)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Amount float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{40000, 2.00, 0.9, 1.25} {
		if err := cv.Validate(P{Amount: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999} {
		err := cv.Validate(P{Amount: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		if !containsFieldMsg(ToFieldErrors(err), "Amount", "at most 2 decimal places") {
			t.Fatalf("expected dec2 message for %v", v)
		}
	}
}

func TestIntLikeValidation(t *testing.T) {
	type P struct {
		Term float64 `validate:"intlike"`
	}
	cv := NewValidator()

	for _, v := range []float64{0, 12, 36.0} {
		if err := cv.Validate(P{Term: v}); err != nil {
			t.Fatalf("expected intlike OK for %v, got %v", v, err)
		}
	}
	err := cv.Validate(P{Term: 12.5})
	if err == nil {
		t.Fatal("expected intlike error for 12.5")
	}
	if !containsFieldMsg(ToFieldErrors(err), "Term", "integer value") {
		t.Fatal("expected 'integer value' message")
	}
}

func TestMessageMapping(t *testing.T) {
	type P struct {
		Name  string  `validate:"required"`
		Freq  string  `validate:"oneof=weekly monthly"`
		Start string  `validate:"datetime=2006-01-02"`
		Min   int     `validate:"gte=10"`
		Rate  float64 `validate:"gt=0"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Name: "", Freq: "fortnightly", Start: "01/03/2026", Min: 9, Rate: -1})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing required message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Freq", "one of: weekly monthly") {
		t.Fatalf("missing oneof message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Start", "must match format 2006-01-02") {
		t.Fatalf("missing datetime message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Min", "greater than or equal to 10") {
		t.Fatalf("missing gte message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Rate", "greater than 0") {
		t.Fatalf("missing gt message: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
