// file: service/account_service.go

package service

import (
	"bank-admin-api/model"
	"bank-admin-api/repository"
	"context"
	"database/sql"
	"errors"
)

var ErrAccountNotFound = errors.New("account not found")

// AccountService handles reads and partial updates of the single account row,
// plus the combined dashboard payload with its cache-aside layer.
type AccountService struct {
	accountRepo repository.IAccountRepository
	txRepo      repository.ITransactionRepository
	cache       *DashboardCache
}

func NewAccountService(accountRepo repository.IAccountRepository, txRepo repository.ITransactionRepository, cache *DashboardCache) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		cache:       cache,
	}
}

func (s *AccountService) Get() (*model.Account, error) {
	account, err := s.accountRepo.Get()
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// Update applies the supplied fields to the account and invalidates the
// dashboard cache.
func (s *AccountService) Update(ctx context.Context, patch *model.AccountPatch) (*model.Account, error) {
	account, err := s.accountRepo.Get()
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	updated, err := s.accountRepo.Update(account.ID, patch)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return updated, nil
}

// Dashboard returns the account together with the full ledger, newest first,
// using a cache-aside strategy.
func (s *AccountService) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	if dashboard, ok := s.cache.Get(ctx); ok {
		return dashboard, nil
	}

	account, err := s.Get()
	if err != nil {
		return nil, err
	}

	transactions, err := s.txRepo.List()
	if err != nil {
		return nil, err
	}

	dashboard := &model.Dashboard{
		Account:      account,
		Transactions: transactions,
	}
	s.cache.Set(ctx, dashboard)

	return dashboard, nil
}
