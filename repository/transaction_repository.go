package repository

import (
	"bank-admin-api/logger"
	"bank-admin-api/model"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ITransactionRepository defines the contract for ledger database operations.
type ITransactionRepository interface {
	List() ([]*model.Transaction, error)
	GetByID(id int) (*model.Transaction, error)
	Create(transaction *model.Transaction) error
	CreateBatch(tx *sql.Tx, transactions []*model.Transaction) error
	Update(id int, patch *model.TransactionPatch) (*model.Transaction, error)
	Delete(id int) error
	Clear() (int64, error)
}

// TransactionRepository implements ITransactionRepository.
type TransactionRepository struct {
	DB *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

const transactionColumns = `id, tx_type, amount, currency, counterparty, date, description, created_at`

// List retrieves the full ledger, newest first.
func (r *TransactionRepository) List() ([]*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY created_at DESC`

	rows, err := r.DB.Query(query)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for transactions")
		return nil, err
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.TxType, &t.Amount, &t.Currency, &t.Counterparty,
			&t.Date, &t.Description, &t.CreatedAt); err != nil {
			logger.Log.WithError(err).Error("Failed to scan transaction row")
			return nil, err
		}
		transactions = append(transactions, &t)
	}

	return transactions, rows.Err()
}

// GetByID retrieves a single ledger entry. Returns sql.ErrNoRows when absent.
func (r *TransactionRepository) GetByID(id int) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	var t model.Transaction
	err := r.DB.QueryRow(query, id).Scan(&t.ID, &t.TxType, &t.Amount, &t.Currency,
		&t.Counterparty, &t.Date, &t.Description, &t.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("transaction_id", id).Error("Failed to execute get transaction query")
		}
		return nil, err
	}
	return &t, nil
}

// Create inserts a single ledger entry.
func (r *TransactionRepository) Create(transaction *model.Transaction) error {
	log := logger.Log.WithFields(logrus.Fields{
		"tx_type": transaction.TxType,
		"amount":  transaction.Amount,
	})
	log.Info("Executing query to create a new transaction")

	query := `INSERT INTO transactions (tx_type, amount, currency, counterparty, date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.DB.QueryRow(query, transaction.TxType, transaction.Amount, transaction.Currency,
		transaction.Counterparty, transaction.Date, transaction.Description, transaction.CreatedAt).
		Scan(&transaction.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute create transaction query")
		return err
	}
	return nil
}

// CreateBatch inserts all rows inside the caller's database transaction so a
// generation run is visible all-or-nothing.
func (r *TransactionRepository) CreateBatch(tx *sql.Tx, transactions []*model.Transaction) error {
	log := logger.Log.WithField("count", len(transactions))
	log.Info("Executing batch insert of generated transactions")

	query := `INSERT INTO transactions (tx_type, amount, currency, counterparty, date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	for _, t := range transactions {
		err := tx.QueryRow(query, t.TxType, t.Amount, t.Currency, t.Counterparty,
			t.Date, t.Description, t.CreatedAt).Scan(&t.ID)
		if err != nil {
			log.WithError(err).Error("Failed to insert generated transaction")
			return err
		}
	}
	return nil
}

// Update applies a partial patch to a ledger entry, building the SET clause
// from the supplied fields only.
func (r *TransactionRepository) Update(id int, patch *model.TransactionPatch) (*model.Transaction, error) {
	log := logger.Log.WithField("transaction_id", id)

	set := make([]string, 0, 6)
	args := make([]interface{}, 0, 7)

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.TxType != nil {
		add("tx_type", *patch.TxType)
	}
	if patch.Amount != nil {
		add("amount", *patch.Amount)
	}
	if patch.Currency != nil {
		add("currency", *patch.Currency)
	}
	if patch.Counterparty != nil {
		add("counterparty", *patch.Counterparty)
	}
	if patch.Date != nil {
		add("date", *patch.Date)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}

	if len(set) == 0 {
		return r.GetByID(id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE transactions SET %s WHERE id = $%d RETURNING `+transactionColumns,
		strings.Join(set, ", "), len(args))

	log.WithField("fields", len(set)).Info("Executing query to update transaction")

	var t model.Transaction
	err := r.DB.QueryRow(query, args...).Scan(&t.ID, &t.TxType, &t.Amount, &t.Currency,
		&t.Counterparty, &t.Date, &t.Description, &t.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute update transaction query")
		}
		return nil, err
	}
	return &t, nil
}

// Delete removes a single ledger entry. Returns sql.ErrNoRows when nothing
// was deleted.
func (r *TransactionRepository) Delete(id int) error {
	log := logger.Log.WithField("transaction_id", id)
	log.Info("Executing query to delete transaction")

	result, err := r.DB.Exec(`DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete transaction query")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Clear removes every ledger entry and reports how many were deleted.
func (r *TransactionRepository) Clear() (int64, error) {
	logger.Log.Info("Executing query to clear all transactions")

	result, err := r.DB.Exec(`DELETE FROM transactions`)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute clear transactions query")
		return 0, err
	}

	return result.RowsAffected()
}
