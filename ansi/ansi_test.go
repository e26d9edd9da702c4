package ansi

import (
	"testing"

	"github.com/zoobzio/fastersql/internal/render"
)

func TestNew(t *testing.T) {
	d := New()

	if !d.OffsetBeforeLimit() {
		t.Error("ANSI renders offset before fetch first")
	}
	if d.Supports(render.LimitRequiresOffset) || d.Supports(render.OffsetRequiresLimit) {
		t.Error("ANSI clauses are independent")
	}
	if got, _ := d.Substring("x", 2, 3); got != "substring(x from 2 for 3)" {
		t.Errorf("Substring = %q", got)
	}
	if got, _ := d.Length("x"); got != "char_length(x)" {
		t.Errorf("Length = %q", got)
	}
	if got, _ := d.Ceil("x"); got != "ceiling(x)" {
		t.Errorf("Ceil = %q", got)
	}
}
