package integration

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/dbml"

	"github.com/zoobzio/fastersql"
	"github.com/zoobzio/fastersql/executor"
	"github.com/zoobzio/fastersql/schema"
)

// backend describes how to build the test schema on one database.
type backend struct {
	exec     *executor.Executor
	ddl      []string
	truncate bool
}

type user struct {
	id       int
	username string
	email    string
	age      int
	active   bool
}

type post struct {
	id        int
	userID    int
	title     string
	views     int
	published bool
}

type order struct {
	id     int
	userID int
	total  float64
	status string
}

var (
	seedUsers = []user{
		{1, "alice", "alice@example.com", 30, true},
		{2, "bob", "bob@example.com", 25, true},
		{3, "charlie", "charlie@example.com", 35, false},
		{4, "diana", "diana@example.com", 28, true},
	}
	seedPosts = []post{
		{1, 1, "First Post", 100, true},
		{2, 1, "Second Post", 50, true},
		{3, 2, "Bobs Post", 75, true},
		{4, 3, "Draft Post", 0, false},
	}
	seedOrders = []order{
		{1, 1, 99.99, "completed"},
		{2, 1, 149.99, "completed"},
		{3, 2, 49.99, "pending"},
		{4, 4, 199.99, "completed"},
	}
)

// createCatalog declares the tables shared by every backend.
func createCatalog(t *testing.T) *schema.Catalog {
	t.Helper()

	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	project.AddTable(users)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	posts.AddColumn(dbml.NewColumn("views", "int"))
	posts.AddColumn(dbml.NewColumn("published", "boolean"))
	project.AddTable(posts)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "decimal"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	project.AddTable(orders)

	catalog, err := schema.FromDBML(project)
	require.NoError(t, err)
	return catalog
}

// runScenarios rebuilds the schema, seeds it through batch inserts and
// exercises every statement kind against the backend.
func runScenarios(t *testing.T, b backend) {
	ctx := context.Background()
	catalog := createCatalog(t)
	users, posts, orders := catalog.Table("users"), catalog.Table("posts"), catalog.Table("orders")
	e := b.exec

	setup := func(t *testing.T) {
		t.Helper()
		for _, stmt := range b.ddl {
			_, err := e.DB().ExecContext(ctx, stmt)
			require.NoError(t, err, stmt)
		}
		seed(ctx, t, e, users, posts, orders)
	}

	t.Run("select where order", func(t *testing.T) {
		setup(t)
		rows, err := e.Query(ctx, fastersql.Select(users.Column("username")).
			From(users).
			Where(users.Column("active").Eq(true)).
			OrderBy(users.Column("username").Asc()))
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "bob", "diana"}, scanStrings(t, rows))
	})

	t.Run("join", func(t *testing.T) {
		setup(t)
		u, p := users.As("u"), posts.As("p")
		rows, err := e.Query(ctx, fastersql.Select(u.Column("username"), p.Column("title")).
			From(u).
			Join(u.Column("id").On(p.Column("user_id"))).
			Where(p.Column("published").Eq(true)).
			OrderBy(p.Column("title").Asc()))
		require.NoError(t, err)
		assert.Equal(t, []string{"bob Bobs Post", "alice First Post", "alice Second Post"}, scanStrings(t, rows))
	})

	t.Run("left outer join", func(t *testing.T) {
		setup(t)
		rows, err := e.Query(ctx, fastersql.Select(users.Column("username")).
			From(users).
			Join(users.Column("id").On(orders.Column("user_id")).LeftOuter()).
			Where(orders.Column("id").IsNull()))
		require.NoError(t, err)
		assert.Equal(t, []string{"charlie"}, scanStrings(t, rows))
	})

	t.Run("pagination", func(t *testing.T) {
		setup(t)
		rows, err := e.Query(ctx, fastersql.Select(users.Column("username")).
			From(users).
			OrderBy(users.Column("id").Asc()).
			Limit(2).
			Offset(1))
		require.NoError(t, err)
		assert.Equal(t, []string{"bob", "charlie"}, scanStrings(t, rows))
	})

	t.Run("limit only", func(t *testing.T) {
		setup(t)
		rows, err := e.Query(ctx, fastersql.Select(users.Column("username")).
			From(users).
			OrderBy(users.Column("age").Desc()).
			Limit(1))
		require.NoError(t, err)
		assert.Equal(t, []string{"charlie"}, scanStrings(t, rows))
	})

	t.Run("group by having", func(t *testing.T) {
		setup(t)
		userID := orders.Column("user_id")
		rows, err := e.Query(ctx, fastersql.Select(userID, fastersql.As(fastersql.CountAll(), "N")).
			From(orders).
			GroupBy(userID).
			Having(fastersql.Gt(fastersql.CountAll(), 1)))
		require.NoError(t, err)
		assert.Equal(t, [][2]int{{1, 2}}, intPairs(t, rows))
	})

	t.Run("case", func(t *testing.T) {
		setup(t)
		band := fastersql.Case().When(users.Column("age").Ge(30), "senior").Else("junior")
		rows, err := e.Query(ctx, fastersql.Select(fastersql.As(band, "BAND")).
			From(users).
			OrderBy(users.Column("id").Asc()))
		require.NoError(t, err)
		assert.Equal(t, []string{"senior", "junior", "senior", "junior"}, scanStrings(t, rows))
	})

	t.Run("like and in", func(t *testing.T) {
		setup(t)
		rows, err := e.Query(ctx, fastersql.Select(users.Column("username")).
			From(users).
			Where(users.Column("username").Like("a"), users.Column("id").In(1, 2, 3)).
			OrderBy(users.Column("id").Asc()))
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "charlie"}, scanStrings(t, rows))
	})

	t.Run("union", func(t *testing.T) {
		setup(t)
		young := fastersql.Select(users.Column("username")).From(users).Where(users.Column("age").Lt(28))
		popular := fastersql.Select(posts.Column("title")).From(posts).Where(posts.Column("views").Gt(90))
		rows, err := e.Query(ctx, young.Union(popular).OrderBy(fastersql.AscPosition(1)))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"bob", "First Post"}, scanStrings(t, rows))
	})

	t.Run("update with subquery", func(t *testing.T) {
		setup(t)
		inactive := fastersql.Select(users.Column("id")).From(users).Where(users.Column("active").Eq(false))
		res, err := e.Exec(ctx, fastersql.Update(posts).
			Set(posts.Column("views"), fastersql.Plus(posts.Column("views"), 1)).
			Where(fastersql.InQuery(posts.Column("user_id"), inactive)))
		require.NoError(t, err)
		affected, err := res.RowsAffected()
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("delete not exists", func(t *testing.T) {
		setup(t)
		authored := fastersql.Select(posts.Column("id")).From(posts).Where(posts.Column("user_id").Eq(users.Column("id")))
		_, err := e.Exec(ctx, fastersql.Delete().From(users).Where(fastersql.Not(fastersql.Exists(authored))))
		require.NoError(t, err)
		assert.Equal(t, 3, count(ctx, t, e, users))
	})

	if b.truncate {
		t.Run("truncate", func(t *testing.T) {
			setup(t)
			_, err := e.Exec(ctx, fastersql.Truncate().Table(orders))
			require.NoError(t, err)
			assert.Equal(t, 0, count(ctx, t, e, orders))
		})
	}
}

func seed(ctx context.Context, t *testing.T, e *executor.Executor, users, posts, orders fastersql.Table) {
	t.Helper()

	_, err := e.Exec(ctx, fastersql.InsertBatch(seedUsers).
		Into(users).
		Value(users.Column("id"), func(u user) any { return u.id }).
		Value(users.Column("username"), func(u user) any { return u.username }).
		Value(users.Column("email"), func(u user) any { return u.email }).
		Value(users.Column("age"), func(u user) any { return u.age }).
		Value(users.Column("active"), func(u user) any { return u.active }))
	require.NoError(t, err)

	_, err = e.Exec(ctx, fastersql.InsertBatch(seedPosts).
		Into(posts).
		Value(posts.Column("id"), func(p post) any { return p.id }).
		Value(posts.Column("user_id"), func(p post) any { return p.userID }).
		Value(posts.Column("title"), func(p post) any { return p.title }).
		Value(posts.Column("views"), func(p post) any { return p.views }).
		Value(posts.Column("published"), func(p post) any { return p.published }))
	require.NoError(t, err)

	for _, o := range seedOrders {
		_, err = e.Exec(ctx, fastersql.InsertInto(orders).
			Value(orders.Column("id"), o.id).
			Value(orders.Column("user_id"), o.userID).
			Value(orders.Column("total"), o.total).
			Value(orders.Column("status"), o.status))
		require.NoError(t, err)
	}
}

func count(ctx context.Context, t *testing.T, e *executor.Executor, table fastersql.Table) int {
	t.Helper()
	row, err := e.QueryRow(ctx, fastersql.Select(fastersql.As(fastersql.CountAll(), "N")).From(table))
	require.NoError(t, err)
	var n int
	require.NoError(t, row.Scan(&n))
	return n
}

// scanStrings scans every row, joining multiple columns with a space.
func scanStrings(t *testing.T, rows *sql.Rows) []string {
	t.Helper()
	defer rows.Close()

	cols, err := rows.Columns()
	require.NoError(t, err)

	var out []string
	for rows.Next() {
		values := make([]string, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		require.NoError(t, rows.Scan(ptrs...))

		line := values[0]
		for _, v := range values[1:] {
			line += " " + v
		}
		out = append(out, line)
	}
	require.NoError(t, rows.Err())
	return out
}

func intPairs(t *testing.T, rows *sql.Rows) [][2]int {
	t.Helper()
	defer rows.Close()

	var out [][2]int
	for rows.Next() {
		var pair [2]int
		require.NoError(t, rows.Scan(&pair[0], &pair[1]))
		out = append(out, pair)
	}
	require.NoError(t, rows.Err())
	return out
}
