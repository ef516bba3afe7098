package storage

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresKVGetHit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("lembrete-consorcio-leads").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("[]"))

	kv := NewPostgresKVFromDB(db)
	got, ok, err := kv.Get(context.Background(), "lembrete-consorcio-leads")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresKVGetMiss(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("nada").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	kv := NewPostgresKVFromDB(db)
	_, ok, err := kv.Get(context.Background(), "nada")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPostgresKVSetUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs("k", "v").
		WillReturnResult(sqlmock.NewResult(0, 1))

	kv := NewPostgresKVFromDB(db)
	require.NoError(t, kv.Set(context.Background(), "k", "v"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
