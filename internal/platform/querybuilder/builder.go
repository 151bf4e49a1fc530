package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Condition is one AND-ed term of a WHERE clause.
type Condition interface {
	appendSQL(buf *strings.Builder, args *[]any, argIndex *int)
}

type exprCondition struct {
	expr string
	args []any
}

// Expr is a raw SQL term; each '?' is bound to the next arg.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(bindPlaceholders(c.expr, c.args, args, argIndex))
}

type betweenCondition struct {
	column string
	lo, hi any
}

// Between matches lo <= column <= hi.
func Between(column string, lo, hi any) Condition {
	return betweenCondition{column: column, lo: lo, hi: hi}
}

func (c betweenCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(c.column)
	buf.WriteString(" BETWEEN ")
	buf.WriteString(placeholder(*argIndex))
	buf.WriteString(" AND ")
	buf.WriteString(placeholder(*argIndex + 1))
	*args = append(*args, c.lo, c.hi)
	*argIndex += 2
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	groupBy []string
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) GroupBy(parts ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, parts...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var buf strings.Builder
	buf.WriteString("SELECT ")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(" FROM ")
	buf.WriteString(b.table)

	var args []any
	argIndex := 1
	for i, c := range b.where {
		if i == 0 {
			buf.WriteString(" WHERE ")
		} else {
			buf.WriteString(" AND ")
		}
		c.appendSQL(&buf, &args, &argIndex)
	}
	writeList(&buf, " GROUP BY ", b.groupBy)
	writeList(&buf, " ORDER BY ", b.orderBy)
	if b.limit > 0 {
		buf.WriteString(" LIMIT ")
		buf.WriteString(strconv.Itoa(b.limit))
	}

	return buf.String(), args, nil
}

func writeList(buf *strings.Builder, keyword string, parts []string) {
	if len(parts) == 0 {
		return
	}
	buf.WriteString(keyword)
	buf.WriteString(strings.Join(parts, ", "))
}

func placeholder(i int) string {
	return "$" + strconv.Itoa(i)
}

func bindPlaceholders(expr string, exprArgs []any, args *[]any, argIndex *int) string {
	if len(exprArgs) == 0 {
		return expr
	}

	var out strings.Builder
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] != '?' || next >= len(exprArgs) {
			out.WriteByte(expr[i])
			continue
		}
		out.WriteString(placeholder(*argIndex))
		*args = append(*args, exprArgs[next])
		*argIndex++
		next++
	}
	return out.String()
}
