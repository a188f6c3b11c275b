// Package migrate carries the SQL schema for deployments that keep
// businesses in a SQL database. Nothing here executes SQL: the schema is
// printed for an operator to run by hand.
package migrate

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
)

//go:embed schema.sql
var schema string

const rule = "============================================================"

// Schema returns the raw SQL.
func Schema() string { return schema }

// Statements splits the schema on top-level semicolons, skipping comment-only
// chunks. Dollar-quoted function bodies are kept whole.
func Statements() []string {
	var (
		out      []string
		current  strings.Builder
		inDollar bool
	)
	for _, line := range strings.Split(schema, "\n") {
		trimmed := strings.TrimSpace(line)
		if !inDollar && (trimmed == "" || strings.HasPrefix(trimmed, "--")) {
			continue
		}
		if strings.Count(line, "$$")%2 == 1 {
			inDollar = !inDollar
		}
		current.WriteString(line)
		current.WriteByte('\n')
		if !inDollar && strings.HasSuffix(trimmed, ";") {
			out = append(out, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		out = append(out, rest)
	}
	return out
}

// Print writes the run-by-hand instructions followed by the schema.
func Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "📝 Found %d SQL statements\n"+
		"⚠️  Migrations require manual execution: paste the block below into your SQL editor and run it.\n\n"+
		"%s\n-- TapBook migration\n%s%s\n",
		len(Statements()), rule, schema, rule)
	return err
}
