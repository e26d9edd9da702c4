package access

import (
	"errors"
	"testing"

	"github.com/zoobzio/fastersql/internal/render"
	"github.com/zoobzio/fastersql/internal/types"
)

func TestNew(t *testing.T) {
	d := New()

	if d.Supports(render.LimitOffset) {
		t.Error("Unexpected limit/offset")
	}
	if _, ok := d.RowNumLiteral(); ok {
		t.Error("Unexpected rownum literal")
	}
	if !d.Supports(render.ExponentiationOperator) {
		t.Error("Expected ^ operator")
	}
}

func TestFormatters(t *testing.T) {
	d := New()

	tests := []struct {
		name string
		got  func() (string, error)
		want string
	}{
		{"to_number", func() (string, error) { return d.ToNumber("x", 5, 2) }, "cdbl(x)"},
		{"to_char", func() (string, error) { return d.ToChar("x", "yyyy") }, "format(x, 'yyyy')"},
		{"substring", func() (string, error) { return d.Substring("x", 1, 2) }, "mid(x, 1, 2)"},
		{"length", func() (string, error) { return d.Length("x") }, "len(x)"},
		{"power", func() (string, error) { return d.Power("a", "b") }, "a ^ b"},
		{"modulo", func() (string, error) { return d.Modulo("a", "b") }, "(a mod b)"},
		{"modulo compound", func() (string, error) { return d.Modulo("a + ?", "b") }, "((a + ?) mod b)"},
		{"current date", d.CurrentDate, "date()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnsupported(t *testing.T) {
	d := New()

	_, err := d.Concat("a", "b")
	var uerr *render.UnsupportedConstructError
	if !errors.As(err, &uerr) || uerr.Hint == "" {
		t.Errorf("concat: %v", err)
	}
	if _, err := d.Ceil("x"); !errors.Is(err, render.ErrUnsupported) {
		t.Errorf("ceil: %v", err)
	}
	if _, err := d.DataType(types.TypeInteger); !errors.Is(err, render.ErrUnsupported) {
		t.Errorf("cast: %v", err)
	}
	if _, err := d.SetOperator(types.SetExcept); !errors.Is(err, render.ErrUnsupported) {
		t.Errorf("except: %v", err)
	}
}
