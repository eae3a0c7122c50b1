package repository

import (
	"bank-admin-api/model"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func transactionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "tx_type", "amount", "currency", "counterparty", "date", "description", "created_at",
	})
}

func TestTransactionRepository_List(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	newer := time.Date(2024, time.February, 8, 13, 44, 0, 0, time.UTC)
	older := time.Date(2024, time.February, 8, 13, 41, 0, 0, time.UTC)

	dbMock.ExpectQuery(`SELECT (.+) FROM transactions ORDER BY created_at DESC`).
		WillReturnRows(transactionRows().
			AddRow(1, "sent", -48.05, "USD", "AZVQ...C8bB", "08 Feb - 01:44 PM", "Sent", newer).
			AddRow(2, "received", 49.00, "USDT", "TK4y...n3qJ", "08 Feb - 01:41 PM", "Received", older))

	repo := NewTransactionRepository(db)
	transactions, err := repo.List()

	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, model.TxTypeSent, transactions[0].TxType)
	assert.Equal(t, -48.05, transactions[0].Amount)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTransactionRepository_CreateBatch(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	created := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	batch := []*model.Transaction{
		{TxType: "received", Amount: 40.00, Currency: "USD", CreatedAt: created},
		{TxType: "sent", Amount: -9.99, Currency: "USD", CreatedAt: created.Add(time.Minute)},
	}

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(`INSERT INTO transactions`).
		WithArgs("received", 40.00, "USD", "", "", "", created).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	dbMock.ExpectQuery(`INSERT INTO transactions`).
		WithArgs("sent", -9.99, "USD", "", "", "", created.Add(time.Minute)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	dbMock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	repo := NewTransactionRepository(db)
	assert.NoError(t, repo.CreateBatch(tx, batch))
	assert.NoError(t, tx.Commit())

	assert.Equal(t, 10, batch[0].ID)
	assert.Equal(t, 11, batch[1].ID)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTransactionRepository_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectExec(`DELETE FROM transactions WHERE id = \$1`).
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewTransactionRepository(db)
		assert.NoError(t, repo.Delete(3))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("missing row reports ErrNoRows", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectExec(`DELETE FROM transactions WHERE id = \$1`).
			WithArgs(404).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewTransactionRepository(db)
		assert.Equal(t, sql.ErrNoRows, repo.Delete(404))
	})
}

func TestTransactionRepository_Clear(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbMock.ExpectExec(`DELETE FROM transactions`).
		WillReturnResult(sqlmock.NewResult(0, 7))

	repo := NewTransactionRepository(db)
	count, err := repo.Clear()

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
