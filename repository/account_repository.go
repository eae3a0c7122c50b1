package repository

import (
	"bank-admin-api/logger"
	"bank-admin-api/model"
	"database/sql"
	"fmt"
	"strings"
)

// IAccountRepository defines the contract for account database operations.
// The service manages at most one account row.
type IAccountRepository interface {
	Get() (*model.Account, error)
	Create(account *model.Account) error
	Update(id int, patch *model.AccountPatch) (*model.Account, error)
}

// AccountRepository implements IAccountRepository over postgres.
type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

const accountColumns = `id, holder_name, account_number, routing_number, holder_address,
	bank_name, bank_address, country, balance, currency,
	first_name, last_name, date_of_birth, email, phone_number, address`

func scanAccount(row *sql.Row) (*model.Account, error) {
	acc := &model.Account{}
	err := row.Scan(
		&acc.ID, &acc.HolderName, &acc.AccountNumber, &acc.RoutingNumber, &acc.HolderAddress,
		&acc.BankName, &acc.BankAddress, &acc.Country, &acc.Balance, &acc.Currency,
		&acc.FirstName, &acc.LastName, &acc.DateOfBirth, &acc.Email, &acc.PhoneNumber, &acc.Address,
	)
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// Get retrieves the single account row. Returns sql.ErrNoRows when the
// account has not been created yet.
func (r *AccountRepository) Get() (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY id LIMIT 1`
	account, err := scanAccount(r.DB.QueryRow(query))
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).Error("Failed to execute get account query")
		}
		return nil, err
	}
	return account, nil
}

// Create inserts the account row. Used only by startup seeding.
func (r *AccountRepository) Create(account *model.Account) error {
	log := logger.Log.WithField("holder_name", account.HolderName)
	log.Info("Executing query to create the account")

	query := `INSERT INTO accounts (holder_name, account_number, routing_number, holder_address,
		bank_name, bank_address, country, balance, currency,
		first_name, last_name, date_of_birth, email, phone_number, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	err := r.DB.QueryRow(query,
		account.HolderName, account.AccountNumber, account.RoutingNumber, account.HolderAddress,
		account.BankName, account.BankAddress, account.Country, account.Balance, account.Currency,
		account.FirstName, account.LastName, account.DateOfBirth, account.Email, account.PhoneNumber, account.Address,
	).Scan(&account.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return err
	}
	return nil
}

// Update applies a partial patch to the account row. The SET clause is built
// explicitly from the supplied fields; nil fields are left untouched.
func (r *AccountRepository) Update(id int, patch *model.AccountPatch) (*model.Account, error) {
	log := logger.Log.WithField("account_id", id)

	set := make([]string, 0, 15)
	args := make([]interface{}, 0, 16)

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.HolderName != nil {
		add("holder_name", *patch.HolderName)
	}
	if patch.AccountNumber != nil {
		add("account_number", *patch.AccountNumber)
	}
	if patch.RoutingNumber != nil {
		add("routing_number", *patch.RoutingNumber)
	}
	if patch.HolderAddress != nil {
		add("holder_address", *patch.HolderAddress)
	}
	if patch.BankName != nil {
		add("bank_name", *patch.BankName)
	}
	if patch.BankAddress != nil {
		add("bank_address", *patch.BankAddress)
	}
	if patch.Country != nil {
		add("country", *patch.Country)
	}
	if patch.Balance != nil {
		add("balance", *patch.Balance)
	}
	if patch.Currency != nil {
		add("currency", *patch.Currency)
	}
	if patch.FirstName != nil {
		add("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		add("last_name", *patch.LastName)
	}
	if patch.DateOfBirth != nil {
		add("date_of_birth", *patch.DateOfBirth)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.PhoneNumber != nil {
		add("phone_number", *patch.PhoneNumber)
	}
	if patch.Address != nil {
		add("address", *patch.Address)
	}

	if len(set) == 0 {
		// Nothing supplied; return the current row unchanged.
		return r.Get()
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE accounts SET %s WHERE id = $%d RETURNING `+accountColumns,
		strings.Join(set, ", "), len(args))

	log.WithField("fields", len(set)).Info("Executing query to update the account")

	account, err := scanAccount(r.DB.QueryRow(query, args...))
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute update account query")
		}
		return nil, err
	}
	return account, nil
}
