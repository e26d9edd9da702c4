// Package mariadb provides the MariaDB dialect.
package mariadb

import "github.com/zoobzio/fastersql/mysql"

// Dialect implements the MariaDB dialect, which follows MySQL formatting.
type Dialect struct {
	mysql.Dialect
}

// New creates a new MariaDB dialect.
func New() *Dialect {
	d := &Dialect{Dialect: *mysql.New()}
	d.Product = "MariaDB"
	return d
}
