// Package repokit provides common types and helpers for repository implementations
package repokit

import "cubewars/internal/platform/store"

type (
	// Queryer is the minimal read and write surface for SQL repos
	Queryer = store.RowQuerier

	// Warehouse is the ClickHouse seam report repos read through
	Warehouse = store.Clickhouse

	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row
)
