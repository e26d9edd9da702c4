package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var mssqlDDL = []string{
	`DROP TABLE IF EXISTS orders, posts, users`,
	`CREATE TABLE users (
		id BIGINT PRIMARY KEY,
		username NVARCHAR(255) NOT NULL,
		email NVARCHAR(255) NOT NULL UNIQUE,
		age INT,
		active BIT DEFAULT 1
	)`,
	`CREATE TABLE posts (
		id BIGINT PRIMARY KEY,
		user_id BIGINT,
		title NVARCHAR(255) NOT NULL,
		views INT DEFAULT 0,
		published BIT DEFAULT 0
	)`,
	`CREATE TABLE orders (
		id BIGINT PRIMARY KEY,
		user_id BIGINT,
		total DECIMAL(10,2) NOT NULL,
		status NVARCHAR(50) DEFAULT 'pending'
	)`,
}

func TestMSSQLIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	e := mssqlExecutor(t)
	assert.Equal(t, "Microsoft SQL Server", e.Dialect().Name())

	runScenarios(t, backend{exec: e, ddl: mssqlDDL, truncate: true})
}
