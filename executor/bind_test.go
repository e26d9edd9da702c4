package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindFor(t *testing.T) {
	assert.Equal(t, BindDollar, BindFor("pgx"))
	assert.Equal(t, BindAt, BindFor("sqlserver"))
	assert.Equal(t, BindQuestion, BindFor("mysql"))
	assert.Equal(t, BindQuestion, BindFor("sqlite"))
}

func TestRebind(t *testing.T) {
	tests := []struct {
		name  string
		bind  Bind
		query string
		want  string
	}{
		{
			name:  "question unchanged",
			bind:  BindQuestion,
			query: "select T.A T_A from T where T.A = ? and T.B = ?",
			want:  "select T.A T_A from T where T.A = ? and T.B = ?",
		},
		{
			name:  "dollar",
			bind:  BindDollar,
			query: "select T.A T_A from T where T.A = ? and T.B = ? limit ?",
			want:  "select T.A T_A from T where T.A = $1 and T.B = $2 limit $3",
		},
		{
			name:  "at",
			bind:  BindAt,
			query: "select T.A T_A from T order by T.A offset ? rows fetch next ? rows only",
			want:  "select T.A T_A from T order by T.A offset @p1 rows fetch next @p2 rows only",
		},
		{
			name:  "quoted literal",
			bind:  BindDollar,
			query: "select to_char(T.D, 'YYYY?') from T where T.S = 'it''s?' and T.A = ?",
			want:  "select to_char(T.D, 'YYYY?') from T where T.S = 'it''s?' and T.A = $1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rebind(tt.bind, tt.query))
		})
	}
}
