//go:build cgo

package db

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/config"
)

func newSQLiteFactory(t *testing.T) Factory {
	t.Helper()
	f, err := CreateFactory(config.Database{
		Driver: "sqlite",
		Name:   filepath.Join(t.TempDir(), "gateway.db"),
	})
	require.NoError(t, err)
	return f
}

// run opens a connection, executes one statement and releases it, the way
// every request does.
func run(t *testing.T, f Factory, statement string) (*Result, error) {
	t.Helper()
	conn, err := f.Open(context.Background())
	require.NoError(t, err)
	defer func() {
		require.NoError(t, conn.Close())
	}()
	return Execute(context.Background(), conn, statement)
}

func TestSQLite_SelectLiteral(t *testing.T) {
	f := newSQLiteFactory(t)

	result, err := run(t, f, "SELECT 1 AS x")
	require.NoError(t, err)
	assert.Equal(t, KindRows, result.Kind)
	assert.Equal(t, []string{"x"}, result.Columns)
	assert.Equal(t, [][]Value{{Int(1)}}, result.Rows)
}

func TestSQLite_WriteThenRead(t *testing.T) {
	f := newSQLiteFactory(t)

	result, err := run(t, f, "CREATE TABLE t (a INTEGER, b TEXT)")
	require.NoError(t, err)
	assert.Equal(t, KindAck, result.Kind)

	result, err = run(t, f, "INSERT INTO t(a, b) VALUES (1, 'one'), (2, NULL)")
	require.NoError(t, err)
	assert.Equal(t, KindAck, result.Kind)

	// A later request on a fresh connection sees the committed rows.
	result, err = run(t, f, "SELECT a, b FROM t ORDER BY a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, result.Columns)
	assert.Equal(t, []string{"INTEGER", "TEXT"}, result.ColumnTypes)
	assert.Equal(t, [][]Value{
		{Int(1), Text("one")},
		{Int(2), Null()},
	}, result.Rows)
}

func TestSQLite_ReadsFollowSessionAutocommit(t *testing.T) {
	f := newSQLiteFactory(t)

	_, err := run(t, f, "CREATE TABLE t (a INTEGER)")
	require.NoError(t, err)

	// RETURNING makes the backend describe columns, so this is handled as a
	// read. No commit is sent, but the session autocommits.
	result, err := run(t, f, "INSERT INTO t(a) VALUES (7) RETURNING a")
	require.NoError(t, err)
	assert.Equal(t, KindRows, result.Kind)
	assert.Equal(t, [][]Value{{Int(7)}}, result.Rows)

	result, err = run(t, f, "SELECT COUNT(*) AS n FROM t")
	require.NoError(t, err)
	assert.Equal(t, [][]Value{{Int(1)}}, result.Rows)
}

func TestSQLite_StatementsThatRefuseTransactions(t *testing.T) {
	f := newSQLiteFactory(t)

	_, err := run(t, f, "CREATE TABLE t (a INTEGER)")
	require.NoError(t, err)

	for _, statement := range []string{"VACUUM", "PRAGMA journal_mode = DELETE"} {
		result, err := run(t, f, statement)
		require.NoError(t, err, statement)
		assert.NotNil(t, result, statement)
	}
}

func TestSQLite_BlankStatementsFailPromptly(t *testing.T) {
	f := newSQLiteFactory(t)

	tests := []struct {
		name      string
		statement string
	}{
		{name: "empty", statement: ""},
		{name: "whitespace", statement: "   \n\t"},
		{name: "line comment", statement: "-- c"},
		{name: "block comment", statement: "/* nothing to run */"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := f.Open(context.Background())
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			done := make(chan error, 1)
			go func() {
				_, err := Execute(ctx, conn, tt.statement)
				done <- err
			}()

			select {
			case err := <-done:
				report, ok := Classify(err)
				require.True(t, ok, "error %v is not a backend failure", err)
				assert.True(t, strings.HasPrefix(report.Message, "SQLite error: "), report.Message)
			case <-time.After(10 * time.Second):
				t.Fatalf("Execute(%q) did not return", tt.statement)
			}

			require.NoError(t, conn.Close())
		})
	}
}

func TestSQLite_NonexistentTable(t *testing.T) {
	f := newSQLiteFactory(t)

	result, err := run(t, f, "SELECT * FROM missing")
	require.Nil(t, result)

	report, ok := Classify(err)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(report.Message, "SQLite error: no such table: missing"), report.Message)
}

func TestSQLite_ConcurrentRequestsAreIsolated(t *testing.T) {
	f := newSQLiteFactory(t)

	_, err := run(t, f, "CREATE TABLE t (a INTEGER)")
	require.NoError(t, err)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers*2)

	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			conn, err := f.Open(context.Background())
			if err != nil {
				errs <- err
				return
			}
			defer conn.Close()
			if _, err := Execute(context.Background(), conn, fmt.Sprintf("INSERT INTO t(a) VALUES (%d)", i)); err != nil {
				errs <- err
			}
		}(i)
		go func() {
			defer wg.Done()
			conn, err := f.Open(context.Background())
			if err != nil {
				errs <- err
				return
			}
			defer conn.Close()
			result, err := Execute(context.Background(), conn, "SELECT 1 AS x")
			if err != nil {
				errs <- err
				return
			}
			if len(result.Rows) != 1 || len(result.Rows[0]) != 1 {
				errs <- fmt.Errorf("unexpected shape %v", result.Rows)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	result, err := run(t, f, "SELECT COUNT(*) AS n FROM t")
	require.NoError(t, err)
	assert.Equal(t, [][]Value{{Int(workers)}}, result.Rows)
}
