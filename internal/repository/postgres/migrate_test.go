package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS events`).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, Migrate(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE`).WillReturnError(sql.ErrConnDone)
	err = Migrate(context.Background(), db)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestSchema_Constraints(t *testing.T) {
	assert.Contains(t, schemaSQL, "UNIQUE (event_id, email)")
	assert.Contains(t, schemaSQL, "UNIQUE (invite_token)")
	assert.Contains(t, schemaSQL, "ON DELETE SET NULL")
}
