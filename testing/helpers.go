// Package testing provides test utilities for fastersql.
package testing

import (
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/fastersql"
	"github.com/zoobzio/fastersql/schema"
)

// TestProject returns the DBML project behind TestCatalog.
// Includes users, posts, comments, orders, and products tables.
func TestProject() *dbml.Project {
	project := dbml.NewProject("test")

	// Users table
	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	users.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(users)

	// Posts table
	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	posts.AddColumn(dbml.NewColumn("body", "text"))
	posts.AddColumn(dbml.NewColumn("published", "boolean"))
	posts.AddColumn(dbml.NewColumn("views", "int"))
	project.AddTable(posts)

	// Comments table
	comments := dbml.NewTable("comments")
	comments.AddColumn(dbml.NewColumn("id", "bigint"))
	comments.AddColumn(dbml.NewColumn("post_id", "bigint"))
	comments.AddColumn(dbml.NewColumn("user_id", "bigint"))
	comments.AddColumn(dbml.NewColumn("body", "text"))
	project.AddTable(comments)

	// Orders table
	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	project.AddTable(orders)

	// Products table
	products := dbml.NewTable("products")
	products.AddColumn(dbml.NewColumn("id", "bigint"))
	products.AddColumn(dbml.NewColumn("name", "varchar"))
	products.AddColumn(dbml.NewColumn("price", "numeric"))
	products.AddColumn(dbml.NewColumn("category", "varchar"))
	products.AddColumn(dbml.NewColumn("stock", "int"))
	project.AddTable(products)

	return project
}

// TestCatalog creates a catalog of the TestProject tables.
func TestCatalog(t testing.TB) *schema.Catalog {
	t.Helper()
	catalog, err := schema.FromDBML(TestProject())
	if err != nil {
		t.Fatalf("Failed to create test catalog: %v", err)
	}
	return catalog
}

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t testing.TB, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertParams checks that bound values match expected, in order.
func AssertParams(t testing.TB, expected, actual []any) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Errorf("Param count mismatch: expected %d, got %d\nExpected: %v\nActual: %v",
			len(expected), len(actual), expected, actual)
		return
	}
	for i := range expected {
		if !reflect.DeepEqual(expected[i], actual[i]) {
			t.Errorf("Param %d: expected %#v, got %#v", i, expected[i], actual[i])
		}
	}
}

// Placeholders counts the ? placeholders of sql outside quoted literals.
func Placeholders(sql string) int {
	n := 0
	quoted := false
	for i := 0; i < len(sql); i++ {
		switch sql[i] {
		case '\'':
			quoted = !quoted
		case '?':
			if !quoted {
				n++
			}
		}
	}
	return n
}

// AssertPlaceholderParity checks that a rendered statement binds exactly
// one value per placeholder.
func AssertPlaceholderParity(t testing.TB, result *fastersql.Result) {
	t.Helper()
	if got := Placeholders(result.SQL); got != len(result.Params) {
		t.Errorf("Placeholder mismatch: %d placeholders, %d params\nSQL: %s", got, len(result.Params), result.SQL)
	}
}

// AssertRenders renders stmt for every dialect, checking placeholder parity.
func AssertRenders(t testing.TB, stmt fastersql.Statement, dialects ...fastersql.Dialect) {
	t.Helper()
	for _, d := range dialects {
		result, err := fastersql.Render(stmt, d)
		if err != nil {
			t.Errorf("%s: %v", d.Name(), err)
			continue
		}
		AssertPlaceholderParity(t, result)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertErrorIs checks that err matches target.
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("Expected error matching %v, got: %v", target, err)
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t testing.TB, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertPanics verifies that a function panics with a construction error.
func AssertPanics(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Error("Expected panic but function completed normally")
			return
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, fastersql.ErrConstruction) {
			t.Errorf("Expected construction error panic, got: %v", r)
		}
	}()
	fn()
}
