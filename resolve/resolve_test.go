package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		product string
	}{
		{"postgres", "PostgreSQL"},
		{"PostgreSQL", "PostgreSQL"},
		{" mysql ", "MySQL"},
		{"mariadb", "MariaDB"},
		{"sqlserver", "Microsoft SQL Server"},
		{"mssql", "Microsoft SQL Server"},
		{"oracle", "Oracle"},
		{"sqlite", "SQLite"},
		{"h2", "H2"},
		{"access", "Access"},
		{"ansi", "ANSI"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ByName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.product, d.Name())
		})
	}

	_, err := ByName("db2")
	assert.ErrorIs(t, err, ErrUnsupportedProduct)
	assert.EqualError(t, err, `no dialect for database product "db2"`)
}

func TestNames(t *testing.T) {
	names := Names()

	assert.Len(t, names, len(byName))
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "postgres")
}

func TestAll(t *testing.T) {
	dialects := All()

	require.Len(t, dialects, len(Canonical))
	seen := map[string]bool{}
	for _, d := range dialects {
		assert.False(t, seen[d.Name()], "duplicate dialect %s", d.Name())
		seen[d.Name()] = true
	}
	assert.Equal(t, "ANSI", dialects[0].Name())
}

func TestFromProductName(t *testing.T) {
	tests := []struct {
		banner  string
		product string
	}{
		{"Oracle Database 19c Enterprise Edition Release 19.0.0.0.0", "Oracle"},
		{"PostgreSQL 16.2 on x86_64-pc-linux-gnu", "PostgreSQL"},
		{"mariadb.org binary distribution", "MariaDB"},
		{"10.11.6-MariaDB-0+deb12u1", "MariaDB"},
		{"MySQL Community Server - GPL", "MySQL"},
		{"Microsoft SQL Server 2022 (RTM) - 16.0.1000.6", "Microsoft SQL Server"},
		{"SQLite 3.45.1", "SQLite"},
		{"ACCESS", "Access"},
		{"H2 2.2.224", "H2"},
	}
	for _, tt := range tests {
		t.Run(tt.banner, func(t *testing.T) {
			d, err := FromProductName(tt.banner)
			require.NoError(t, err)
			assert.Equal(t, tt.product, d.Name())
		})
	}

	_, err := FromProductName("Informix Dynamic Server")
	var rerr *ResolutionError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "Informix Dynamic Server", rerr.Product)
}
