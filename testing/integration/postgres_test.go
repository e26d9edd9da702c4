package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/fastersql"
	"github.com/zoobzio/fastersql/resolve"
)

var postgresDDL = []string{
	`DROP TABLE IF EXISTS orders, posts, users`,
	`CREATE TABLE users (
		id BIGINT PRIMARY KEY,
		username VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		age INT,
		active BOOLEAN DEFAULT true
	)`,
	`CREATE TABLE posts (
		id BIGINT PRIMARY KEY,
		user_id BIGINT,
		title VARCHAR(255) NOT NULL,
		views INT DEFAULT 0,
		published BOOLEAN DEFAULT false
	)`,
	`CREATE TABLE orders (
		id BIGINT PRIMARY KEY,
		user_id BIGINT,
		total NUMERIC(10,2) NOT NULL,
		status VARCHAR(50) DEFAULT 'pending'
	)`,
}

func TestPostgresIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	e := postgresExecutor(t)
	assert.Equal(t, "PostgreSQL", e.Dialect().Name())

	runScenarios(t, backend{exec: e, ddl: postgresDDL, truncate: true})
}

func TestPostgresIntegration_Detection(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	e := postgresExecutor(t)
	product, err := resolve.ProductName(context.Background(), e.DB())
	require.NoError(t, err)
	assert.Contains(t, product, "PostgreSQL")
}

func TestPostgresIntegration_NullOrdering(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	e := postgresExecutor(t)
	for _, stmt := range postgresDDL {
		_, err := e.DB().ExecContext(ctx, stmt)
		require.NoError(t, err)
	}
	catalog := createCatalog(t)
	users := catalog.Table("users")

	_, err := e.Exec(ctx, fastersql.InsertBatch([]user{{1, "alice", "a@example.com", 30, true}, {2, "bob", "b@example.com", 0, true}}).
		Into(users).
		Value(users.Column("id"), func(u user) any { return u.id }).
		Value(users.Column("username"), func(u user) any { return u.username }).
		Value(users.Column("email"), func(u user) any { return u.email }).
		Value(users.Column("age"), func(u user) any {
			if u.age == 0 {
				return nil
			}
			return u.age
		}))
	require.NoError(t, err)

	rows, err := e.Query(ctx, fastersql.Select(users.Column("username")).
		From(users).
		OrderBy(users.Column("age").Asc().NullsFirst()))
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "alice"}, scanStrings(t, rows))
}

func TestPostgresIntegration_ForUpdate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	e := postgresExecutor(t)
	for _, stmt := range postgresDDL {
		_, err := e.DB().ExecContext(ctx, stmt)
		require.NoError(t, err)
	}
	catalog := createCatalog(t)
	users := catalog.Table("users")
	seed(ctx, t, e, users, catalog.Table("posts"), catalog.Table("orders"))

	query, args, err := e.Render(fastersql.Select(users.Column("username")).
		From(users).
		Where(users.Column("id").Eq(1)).
		ForUpdate())
	require.NoError(t, err)

	tx, err := e.DB().BeginTx(ctx, nil)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	var name string
	require.NoError(t, tx.QueryRowContext(ctx, query, args...).Scan(&name))
	assert.Equal(t, "alice", name)
}
