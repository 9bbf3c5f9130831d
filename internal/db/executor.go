package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type ResultKind int

const (
	// KindRows is a statement that reported column metadata.
	KindRows ResultKind = iota
	// KindAck is a statement that reported none. It has been committed
	// by the time it is reported.
	KindAck
)

func (k ResultKind) String() string {
	if k == KindRows {
		return "read"
	}
	return "write"
}

// Result is the outcome of one statement. Columns, ColumnTypes and Rows are
// only set for KindRows; every row has len(Columns) values.
type Result struct {
	Kind        ResultKind
	Columns     []string
	ColumnTypes []string
	Rows        [][]Value
}

// errRowsWithoutColumns is reported when a statement that described no
// columns still claims to have a row, as SQLite does for a statement that
// holds only whitespace or comments.
var errRowsWithoutColumns = errors.New("statement produced rows without columns")

// Execute submits statement verbatim on conn, outside of any explicit
// transaction. Whether the backend described result columns decides if the
// statement was a read (rows are fetched and no commit is sent) or a write
// (committed when the backend session does not autocommit). The
// cursor is always closed before Execute returns.
func Execute(ctx context.Context, conn *Connection, statement string) (*Result, error) {
	fail := func(err error) error {
		return &ExecutionError{Backend: conn.backend, Statement: statement, Cause: err}
	}

	rows, err := conn.conn.QueryxContext(ctx, statement)
	if err != nil {
		return nil, fail(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fail(err)
	}

	if len(columns) == 0 {
		// Some drivers only run the statement once the cursor is stepped.
		if rows.Next() {
			return nil, fail(errRowsWithoutColumns)
		}
		if err := rows.Err(); err != nil {
			return nil, fail(err)
		}
		if err := rows.Close(); err != nil {
			return nil, fail(err)
		}
		if conn.commit != "" {
			if _, err := conn.conn.ExecContext(ctx, conn.commit); err != nil {
				return nil, fail(err)
			}
		}
		return &Result{Kind: KindAck}, nil
	}

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fail(err)
	}
	typeNames := databaseTypeNames(columnTypes)

	data := make([][]Value, 0)
	for rows.Next() {
		raw, err := rows.SliceScan()
		if err != nil {
			return nil, fail(err)
		}
		if len(raw) != len(columns) {
			return nil, fail(fmt.Errorf("scanned %d values for %d columns", len(raw), len(columns)))
		}
		row := make([]Value, len(raw))
		for i, v := range raw {
			row[i] = NewValue(v, typeNames[i])
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fail(err)
	}

	return &Result{
		Kind:        KindRows,
		Columns:     columns,
		ColumnTypes: typeNames,
		Rows:        data,
	}, nil
}

func databaseTypeNames(columnTypes []*sql.ColumnType) []string {
	names := make([]string, len(columnTypes))
	for i, ct := range columnTypes {
		if ct != nil {
			names[i] = ct.DatabaseTypeName()
		}
	}
	return names
}
