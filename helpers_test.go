package fastersql_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/zoobzio/fastersql"
	"github.com/zoobzio/fastersql/access"
	"github.com/zoobzio/fastersql/ansi"
	"github.com/zoobzio/fastersql/h2"
	"github.com/zoobzio/fastersql/mariadb"
	"github.com/zoobzio/fastersql/mssql"
	"github.com/zoobzio/fastersql/mysql"
	"github.com/zoobzio/fastersql/oracle"
	"github.com/zoobzio/fastersql/postgres"
	"github.com/zoobzio/fastersql/sqlite"
)

var (
	person  = fastersql.NewTable("PERSON", "ID", "SSN", "NAME", "AGE")
	address = fastersql.NewTable("ADDRESS", "ID", "PERSON_ID", "STREET", "CITY")
	t1      = fastersql.NewTable("T", "A", "B", "C", "S", "D", "N")
	u1      = fastersql.NewTable("U", "A", "B")
)

func dialects() []fastersql.Dialect {
	return []fastersql.Dialect{
		ansi.New(),
		h2.New(),
		mysql.New(),
		mariadb.New(),
		oracle.New(),
		postgres.New(),
		mssql.New(),
		sqlite.New(),
		access.New(),
	}
}

func mustRender(t *testing.T, stmt fastersql.Statement, d fastersql.Dialect) *fastersql.Result {
	t.Helper()
	result, err := fastersql.Render(stmt, d)
	if err != nil {
		t.Fatalf("Render failed for %s: %v", d.Name(), err)
	}
	return result
}

func nodeSQL(t *testing.T, n fastersql.Node, d fastersql.Dialect) (string, []any) {
	t.Helper()
	ctx := fastersql.NewContext(d)
	sql, err := n.SQL(ctx)
	if err != nil {
		t.Fatalf("SQL failed for %s: %v", d.Name(), err)
	}
	return sql, n.Params(ctx)
}

func assertSQL(t *testing.T, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("SQL mismatch\n got: %s\nwant: %s", got, want)
	}
}

func assertParams(t *testing.T, got []any, want ...any) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Params = %#v, want %#v", got, want)
	}
}

func assertParity(t *testing.T, result *fastersql.Result) {
	t.Helper()
	if n := strings.Count(result.SQL, "?"); n != len(result.Params) {
		t.Errorf("%d placeholders but %d params in %q", n, len(result.Params), result.SQL)
	}
}

func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Errorf("Expected error wrapping %v, got %v", target, err)
	}
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic")
		}
		if err, ok := r.(error); !ok || !errors.Is(err, fastersql.ErrConstruction) {
			t.Errorf("Expected construction error panic, got %v", r)
		}
	}()
	fn()
}
