package errors

// Helpers for classifying warehouse (clickhouse) and postgres failures

import (
	"context"
	stderrs "errors"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

// MsgInternal is the only text a caller ever sees for a failed query
const MsgInternal = "Internal server error"

// clickhouse server exception codes we classify
const (
	chTimeoutExceeded       int32 = 159
	chTooManyQueries        int32 = 202
	chMemoryLimitExceeded   int32 = 241
	chUnknownIdentifier     int32 = 47
	chUnknownTable          int32 = 60
	chSyntaxError           int32 = 62
	chTypeMismatch          int32 = 53
	chIllegalTypeOfArgument int32 = 43
)

// postgres SQLSTATE codes we classify
const (
	pgUndefinedTable    = "42P01"
	pgCannotConnectNow  = "57P03"
	pgAdminShutdown     = "57P01"
	pgTooManyConnection = "53300"
)

// WarehouseException returns the server exception when err carries one
func WarehouseException(err error) (*clickhouse.Exception, bool) {
	var ex *clickhouse.Exception
	if stderrs.As(err, &ex) {
		return ex, true
	}
	return nil, false
}

// IsWarehouseOverload reports resource limits on the server side: timeouts, memory, concurrency
func IsWarehouseOverload(err error) bool {
	if stderrs.Is(err, context.DeadlineExceeded) {
		return true
	}
	ex, ok := WarehouseException(err)
	if !ok {
		return false
	}
	switch ex.Code {
	case chTimeoutExceeded, chTooManyQueries, chMemoryLimitExceeded:
		return true
	}
	return false
}

// IsQueryBug reports a statement the server rejected as malformed
// always a programming error on our side, never user input
func IsQueryBug(err error) bool {
	ex, ok := WarehouseException(err)
	if !ok {
		return false
	}
	switch ex.Code {
	case chSyntaxError, chUnknownIdentifier, chUnknownTable, chTypeMismatch, chIllegalTypeOfArgument:
		return true
	}
	return false
}

// FromWarehouse wraps a failed analytical query
// the cause is kept for logs, the wire message is always MsgInternal
func FromWarehouse(err error, op string) error {
	if err == nil {
		return nil
	}
	return WithOp(Wrap(err, ErrorCodeDB, MsgInternal), op)
}

// ExtractPgError returns the postgres error at the root of err
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a postgres error with the given SQLSTATE
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsUndefinedTable reports a query against a table that does not exist
func IsUndefinedTable(err error) bool { return IsSQLState(err, pgUndefinedTable) }

// IsPgUnavailable reports a server that is starting, stopping or out of connections
func IsPgUnavailable(err error) bool {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return false
	}
	switch pgErr.Code {
	case pgCannotConnectNow, pgAdminShutdown, pgTooManyConnection:
		return true
	}
	return false
}

// FromPostgres wraps a postgres failure, Unavailable for transient server states and DB otherwise
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if IsPgUnavailable(err) {
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}
