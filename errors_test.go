package spvbuild

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

var (
	_ Error = (*IOError)(nil)
	_ Error = (*CompileError)(nil)
)

func TestIOErrorMessage(t *testing.T) {
	cause := errors.New("open shaders/a.vert: permission denied")
	e := &IOError{Path: "shaders/a.vert", Err: cause}

	if got, want := e.Error(), "IO error: open shaders/a.vert: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(e, cause) {
		t.Error("errors.Is should find the underlying cause")
	}
}

func TestCompileErrorMessage(t *testing.T) {
	diag := errors.New("1:3: unexpected token")
	e := &CompileError{Path: "shaders/bad.frag", Diag: diag}

	want := `Error compiling shader at "shaders/bad.frag": 1:3: unexpected token`
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(e, diag) {
		t.Error("errors.Is should find the compiler diagnostic")
	}
}

// TestReportOrder checks that the report preserves encounter order,
// one line per failure.
func TestReportOrder(t *testing.T) {
	errs := []Error{
		&IOError{Path: "a.vert", Err: errors.New("read failed")},
		&CompileError{Path: "b.frag", Diag: errors.New("bad syntax")},
		&IOError{Path: "c.comp", Err: errors.New("write failed")},
	}

	var b strings.Builder
	Report(&b, errs)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != len(errs) {
		t.Fatalf("got %d report lines, want %d:\n%s", len(lines), len(errs), b.String())
	}
	for i, e := range errs {
		if lines[i] != e.Error() {
			t.Errorf("line %d = %q, want %q", i, lines[i], e.Error())
		}
	}
}

func TestReportEmpty(t *testing.T) {
	var b strings.Builder
	Report(&b, nil)
	if b.Len() != 0 {
		t.Errorf("Report(nil) wrote %q, want nothing", b.String())
	}
}

func TestErrorsAsTargets(t *testing.T) {
	errs := []Error{
		&CompileError{Path: "x.vert", Diag: fmt.Errorf("boom")},
	}

	var ce *CompileError
	if !errors.As(errs[0], &ce) {
		t.Fatal("errors.As failed for CompileError")
	}
	if ce.Path != "x.vert" {
		t.Errorf("Path = %q, want x.vert", ce.Path)
	}
}
