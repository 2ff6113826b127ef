package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe_OK(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT now()::text")).
		WillReturnRows(sqlmock.NewRows([]string{"now"}).AddRow("2026-03-02 10:00:00+00"))

	now, err := Probe(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02 10:00:00+00", now)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProbe_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT now()::text")).
		WillReturnError(errors.New("connection refused"))

	_, err = Probe(context.Background(), db)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
