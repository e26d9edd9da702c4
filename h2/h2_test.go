package h2

import (
	"errors"
	"testing"

	"github.com/zoobzio/fastersql/internal/render"
	"github.com/zoobzio/fastersql/internal/types"
)

func TestNew(t *testing.T) {
	d := New()

	if d.Name() != "H2" {
		t.Errorf("Name = %q", d.Name())
	}
	if d.Supports(render.FullOuterJoin) {
		t.Error("Unexpected full outer join")
	}
	if got, _ := d.ToChar("x", "yyyy"); got != "to_char(x, 'yyyy')" {
		t.Errorf("ToChar = %q", got)
	}
	if got, _ := d.DataType(types.TypeBoolean); got != "boolean" {
		t.Errorf("DataType = %q", got)
	}
	if _, err := New().Base.ToChar("x", "y"); !errors.Is(err, render.ErrUnsupported) {
		t.Errorf("base to_char: %v", err)
	}
}
