package executor

import (
	"strconv"
	"strings"
)

// Bind is a driver placeholder style.
type Bind int

const (
	// BindQuestion keeps ? placeholders (MySQL, SQLite).
	BindQuestion Bind = iota
	// BindDollar numbers placeholders as $1, $2 (pgx).
	BindDollar
	// BindAt numbers placeholders as @p1, @p2 (go-mssqldb).
	BindAt
)

// BindFor returns the placeholder style of a database/sql driver name.
func BindFor(driver string) Bind {
	switch driver {
	case "pgx", "postgres":
		return BindDollar
	case "sqlserver":
		return BindAt
	default:
		return BindQuestion
	}
}

// Rebind rewrites the ? placeholders of rendered SQL into the driver's
// style. Question marks inside single-quoted literals are left alone.
func Rebind(bind Bind, query string) string {
	if bind == BindQuestion {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	quoted := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			quoted = !quoted
		case c == '?' && !quoted:
			n++
			if bind == BindDollar {
				b.WriteByte('$')
			} else {
				b.WriteString("@p")
			}
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
