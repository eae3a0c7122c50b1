package repository

import (
	"bank-admin-api/model"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func accountRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "holder_name", "account_number", "routing_number", "holder_address",
		"bank_name", "bank_address", "country", "balance", "currency",
		"first_name", "last_name", "date_of_birth", "email", "phone_number", "address",
	})
}

func TestAccountRepository_Get(t *testing.T) {
	t.Run("returns the single row", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectQuery("SELECT (.+) FROM accounts ORDER BY id LIMIT 1").
			WillReturnRows(accountRows().AddRow(
				1, "AMY VANESSA DAVIS", "215979558875", "101019644", "PTB 24692",
				"Lead Bank in the USA", "1801 Main St.", "USA", 0.95, "USD",
				"Minlan", "Zhou", "3 Dec 1998", "rxehjqv4297@hotmail.com", "+18633890587", "123 Main St",
			))

		repo := NewAccountRepository(db)
		account, err := repo.Get()

		assert.NoError(t, err)
		assert.Equal(t, 1, account.ID)
		assert.Equal(t, "AMY VANESSA DAVIS", account.HolderName)
		assert.Equal(t, 0.95, account.Balance)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("propagates ErrNoRows when absent", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectQuery("SELECT (.+) FROM accounts ORDER BY id LIMIT 1").
			WillReturnError(sql.ErrNoRows)

		repo := NewAccountRepository(db)
		_, getErr := repo.Get()

		assert.Equal(t, sql.ErrNoRows, getErr)
	})
}

func TestAccountRepository_Update(t *testing.T) {
	t.Run("sets only the supplied fields", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		balance := 2500.00
		currency := "EUR"
		patch := &model.AccountPatch{Balance: &balance, Currency: &currency}

		dbMock.ExpectQuery(`UPDATE accounts SET balance = \$1, currency = \$2 WHERE id = \$3 RETURNING`).
			WithArgs(2500.00, "EUR", 1).
			WillReturnRows(accountRows().AddRow(
				1, "AMY VANESSA DAVIS", "215979558875", "101019644", "PTB 24692",
				"Lead Bank in the USA", "1801 Main St.", "USA", 2500.00, "EUR",
				"", "", "", "", "", "",
			))

		repo := NewAccountRepository(db)
		account, err := repo.Update(1, patch)

		assert.NoError(t, err)
		assert.Equal(t, 2500.00, account.Balance)
		assert.Equal(t, "EUR", account.Currency)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("empty patch reads back the current row", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectQuery("SELECT (.+) FROM accounts ORDER BY id LIMIT 1").
			WillReturnRows(accountRows().AddRow(
				1, "AMY VANESSA DAVIS", "215979558875", "101019644", "PTB 24692",
				"Lead Bank in the USA", "1801 Main St.", "USA", 0.95, "USD",
				"", "", "", "", "", "",
			))

		repo := NewAccountRepository(db)
		account, err := repo.Update(1, &model.AccountPatch{})

		assert.NoError(t, err)
		assert.Equal(t, 0.95, account.Balance)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}
