package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestFactoryOpen_HandleFailureIsAConnectionError(t *testing.T) {
	factory := NewFactory(backendMySQL, "mysql", func() (*sql.DB, error) {
		return nil, errors.New("dial tcp 10.0.0.1:3306: connect: connection refused")
	})

	conn, err := factory.Open(context.Background())
	require.Nil(t, conn)

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)

	report, ok := Classify(err)
	require.True(t, ok)
	require.Equal(t, "MySQL error: dial tcp 10.0.0.1:3306: connect: connection refused", report.Message)
}

func TestFactoryOpen_PingFailureReleasesHandle(t *testing.T) {
	raw, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing().WillReturnError(errors.New("access denied for user 'app'"))
	mock.ExpectClose()

	factory := NewFactory(backendMySQL, "mysql", func() (*sql.DB, error) {
		return raw, nil
	})
	conn, err := factory.Open(context.Background())
	require.Nil(t, conn)

	report, ok := Classify(err)
	require.True(t, ok)
	require.Equal(t, "MySQL error: access denied for user 'app'", report.Message)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectionClose_OnlyOnce(t *testing.T) {
	conn, mock := newMockConnection(t)
	mock.ExpectClose()

	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectionClose_ReportsDriverFailure(t *testing.T) {
	conn, mock := newMockConnection(t)
	mock.ExpectClose().WillReturnError(errors.New("broken pipe"))

	err := conn.Close()
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken pipe")

	// Later calls see the same outcome without touching the driver again.
	require.Equal(t, err, conn.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnection_Backend(t *testing.T) {
	conn, mock := newMockConnection(t)
	mock.ExpectClose()

	require.Equal(t, "MySQL", conn.Backend())
	require.NoError(t, conn.Close())
}
