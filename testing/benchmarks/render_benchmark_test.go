// Package benchmarks provides performance benchmarks for fastersql.
package benchmarks

import (
	"testing"

	"github.com/zoobzio/fastersql"
	"github.com/zoobzio/fastersql/mssql"
	"github.com/zoobzio/fastersql/oracle"
	"github.com/zoobzio/fastersql/postgres"
	"github.com/zoobzio/fastersql/schema"
	fastertesting "github.com/zoobzio/fastersql/testing"
)

func createBenchmarkCatalog(b *testing.B) *schema.Catalog {
	b.Helper()
	return fastertesting.TestCatalog(b)
}

func render(b *testing.B, stmt fastersql.Statement, d fastersql.Dialect) {
	b.Helper()
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := fastersql.Render(stmt, d); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSimpleSelect measures simple SELECT query rendering.
func BenchmarkSimpleSelect(b *testing.B) {
	users := createBenchmarkCatalog(b).Table("users")

	render(b, fastersql.Select(users.Column("id")).From(users), postgres.New())
}

// BenchmarkSelectWithColumns measures SELECT with several projections.
func BenchmarkSelectWithColumns(b *testing.B) {
	users := createBenchmarkCatalog(b).Table("users")

	render(b, fastersql.Select(
		users.Column("id"),
		users.Column("username"),
		users.Column("email"),
		users.Column("age"),
	).From(users), postgres.New())
}

// BenchmarkSelectWithMultipleConditions measures SELECT with a nested WHERE.
func BenchmarkSelectWithMultipleConditions(b *testing.B) {
	users := createBenchmarkCatalog(b).Table("users")

	render(b, fastersql.Select(users.Column("id")).
		From(users).
		Where(
			users.Column("active").Eq(true),
			fastersql.Or(users.Column("age").Gt(18), users.Column("username").Like("adm")),
		), postgres.New())
}

// BenchmarkSelectWithJoin measures SELECT with a join.
func BenchmarkSelectWithJoin(b *testing.B) {
	catalog := createBenchmarkCatalog(b)
	u, p := catalog.Table("users").As("u"), catalog.Table("posts").As("p")

	render(b, fastersql.Select(u.Column("username"), p.Column("title")).
		From(u).
		Join(u.Column("id").On(p.Column("user_id")).LeftOuter()).
		Where(p.Column("published").Eq(true)), postgres.New())
}

// BenchmarkLimitOffset compares limit/offset strategies.
func BenchmarkLimitOffset(b *testing.B) {
	users := createBenchmarkCatalog(b).Table("users")
	stmt := fastersql.Select(users.Column("username")).
		From(users).
		OrderBy(users.Column("id").Asc()).
		Limit(10).
		Offset(20)

	for _, d := range []fastersql.Dialect{postgres.New(), mssql.New(), oracle.New()} {
		b.Run(d.Name(), func(b *testing.B) {
			render(b, stmt, d)
		})
	}
}

// BenchmarkSelectWithAggregates measures GROUP BY and HAVING.
func BenchmarkSelectWithAggregates(b *testing.B) {
	orders := createBenchmarkCatalog(b).Table("orders")
	userID := orders.Column("user_id")

	render(b, fastersql.Select(userID, fastersql.Sum(orders.Column("total")), fastersql.CountAll()).
		From(orders).
		GroupBy(userID).
		Having(fastersql.Gt(fastersql.CountAll(), 1)), postgres.New())
}

// BenchmarkCaseExpression measures a searched CASE projection.
func BenchmarkCaseExpression(b *testing.B) {
	users := createBenchmarkCatalog(b).Table("users")
	band := fastersql.Case().
		When(users.Column("age").Lt(18), "minor").
		When(users.Column("age").Lt(65), "adult").
		Else("senior")

	render(b, fastersql.Select(fastersql.As(band, "BAND")).From(users), postgres.New())
}

// BenchmarkSubquery measures a correlated EXISTS.
func BenchmarkSubquery(b *testing.B) {
	catalog := createBenchmarkCatalog(b)
	users, posts := catalog.Table("users"), catalog.Table("posts")
	inner := fastersql.Select(posts.Column("id")).From(posts).Where(posts.Column("user_id").Eq(users.Column("id")))

	render(b, fastersql.Select(users.Column("username")).From(users).Where(fastersql.Exists(inner)), postgres.New())
}

// BenchmarkUnion measures a set operation with trailing order.
func BenchmarkUnion(b *testing.B) {
	catalog := createBenchmarkCatalog(b)
	users, posts := catalog.Table("users"), catalog.Table("posts")

	render(b, fastersql.Select(users.Column("username")).From(users).
		Union(fastersql.Select(posts.Column("title")).From(posts)).
		OrderBy(fastersql.AscPosition(1)), postgres.New())
}

// BenchmarkNullsOrdering measures emulated NULLS FIRST.
func BenchmarkNullsOrdering(b *testing.B) {
	users := createBenchmarkCatalog(b).Table("users")

	render(b, fastersql.Select(users.Column("username")).
		From(users).
		OrderBy(users.Column("age").Asc().NullsFirst()), mssql.New())
}

// BenchmarkInsert measures single-row INSERT.
func BenchmarkInsert(b *testing.B) {
	users := createBenchmarkCatalog(b).Table("users")

	render(b, fastersql.InsertInto(users).
		Value(users.Column("username"), "alice").
		Value(users.Column("email"), "alice@example.com").
		Value(users.Column("age"), 30), postgres.New())
}

// BenchmarkInsertBatch measures a 100-row batch insert.
func BenchmarkInsertBatch(b *testing.B) {
	users := createBenchmarkCatalog(b).Table("users")
	rows := make([]int, 100)
	for i := range rows {
		rows[i] = i
	}
	stmt := fastersql.InsertBatch(rows).
		Into(users).
		Value(users.Column("id"), func(i int) any { return i }).
		Value(users.Column("age"), func(i int) any { return i % 90 })

	for _, d := range []fastersql.Dialect{postgres.New(), oracle.New()} {
		b.Run(d.Name(), func(b *testing.B) {
			render(b, stmt, d)
		})
	}
}

// BenchmarkUpdate measures UPDATE with arithmetic.
func BenchmarkUpdate(b *testing.B) {
	posts := createBenchmarkCatalog(b).Table("posts")

	render(b, fastersql.Update(posts).
		Set(posts.Column("views"), fastersql.Plus(posts.Column("views"), 1)).
		Where(posts.Column("id").Eq(1)), postgres.New())
}

// BenchmarkDelete measures DELETE with a WHERE clause.
func BenchmarkDelete(b *testing.B) {
	users := createBenchmarkCatalog(b).Table("users")

	render(b, fastersql.Delete().From(users).Where(users.Column("active").Eq(false)), postgres.New())
}

// BenchmarkColumnCreation measures column lookup on a declared table.
func BenchmarkColumnCreation(b *testing.B) {
	users := createBenchmarkCatalog(b).Table("users")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = users.Column("username")
	}
}

// BenchmarkPredicateCreation measures predicate construction.
func BenchmarkPredicateCreation(b *testing.B) {
	age := createBenchmarkCatalog(b).Table("users").Column("age")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = fastersql.And(age.Ge(18), age.Lt(65))
	}
}
