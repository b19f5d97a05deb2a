package query

import (
	"strconv"
	"strings"
)

// Query is SQL text together with its positional arguments.
type Query struct {
	SQL  string
	Args []any
}

// builder accumulates SQL text and assigns $n placeholders in bind order.
type builder struct {
	sb   strings.Builder
	args []any
}

func (b *builder) write(parts ...string) {
	for _, p := range parts {
		b.sb.WriteString(p)
	}
}

// bind records v as the next argument and returns its placeholder.
func (b *builder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *builder) query() Query {
	return Query{SQL: b.sb.String(), Args: b.args}
}
