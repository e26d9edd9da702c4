package fastersql

import (
	"strings"

	"github.com/google/uuid"
)

type aliased struct {
	Expression
	alias ColumnAlias
}

// As projects e under alias.
func As(e Expression, alias string) Projection {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		panic(constructionError("projection", "alias is blank"))
	}
	if c, ok := e.(Column); ok {
		return c.As(alias)
	}
	return aliased{Expression: required("projection", e), alias: ColumnAlias(alias)}
}

func (a aliased) Alias() ColumnAlias {
	return a.alias
}

// project gives e a generated alias unless it already has one.
func project(e Expression) Projection {
	if p, ok := e.(Projection); ok {
		return p
	}
	return aliased{Expression: required("projection", e), alias: generatedAlias()}
}

func generatedAlias() ColumnAlias {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return ColumnAlias("COL_" + strings.ToUpper(id[:8]))
}
