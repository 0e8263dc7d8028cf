package database

import (
	"context"
	"fmt"
	"strings"
)

// Batches are BATCH-BASED, not connection-level: statements accumulate in
// memory and are sent as one BEGIN/COMMIT TRANSACTION block on Execute.
// There is no isolation between Add calls.

// TxBuilder builds atomic transaction queries with automatic variable namespacing,
// so two statements that both use $number do not collide ($v1_number, $v2_number).
type TxBuilder struct {
	statements []string
	vars       map[string]interface{}
	varCounter uint64
}

// NewTxBuilder creates a new transaction builder
func NewTxBuilder() *TxBuilder {
	return &TxBuilder{
		statements: make([]string, 0),
		vars:       make(map[string]interface{}),
	}
}

// Add appends a statement, renaming its variables to avoid collisions
func (tb *TxBuilder) Add(query string, vars map[string]interface{}) {
	newQuery := query
	for varName, varValue := range vars {
		tb.varCounter++
		newVarName := fmt.Sprintf("v%d_%s", tb.varCounter, varName)
		newQuery = strings.ReplaceAll(newQuery, "$"+varName, "$"+newVarName)
		tb.vars[newVarName] = varValue
	}
	tb.statements = append(tb.statements, newQuery)
}

// Build returns the complete transaction query and merged variables
func (tb *TxBuilder) Build() (string, map[string]interface{}) {
	if len(tb.statements) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range tb.statements {
		stmt = strings.TrimSpace(stmt)
		sb.WriteString(stmt)
		if !strings.HasSuffix(stmt, ";") {
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("COMMIT TRANSACTION;")

	return sb.String(), tb.vars
}

// AtomicBatch is a fluent wrapper around TxBuilder for a handful of statements
// that must succeed together
type AtomicBatch struct {
	builder *TxBuilder
	n       int
}

// NewAtomicBatch creates a new atomic batch
func NewAtomicBatch() *AtomicBatch {
	return &AtomicBatch{builder: NewTxBuilder()}
}

// Add adds a query to the batch
func (ab *AtomicBatch) Add(query string, vars map[string]interface{}) *AtomicBatch {
	ab.builder.Add(query, vars)
	ab.n++
	return ab
}

// Execute runs all queries as a single transaction
func (ab *AtomicBatch) Execute(ctx context.Context, db Database) error {
	query, vars := ab.builder.Build()
	if query == "" {
		return nil
	}
	return db.Execute(ctx, query, vars)
}

// Len returns the number of queries in the batch
func (ab *AtomicBatch) Len() int {
	return ab.n
}
