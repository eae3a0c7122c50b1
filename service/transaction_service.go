package service

import (
	"bank-admin-api/logger"
	"bank-admin-api/model"
	"bank-admin-api/repository"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionService handles ledger CRUD. Every mutation invalidates the
// dashboard cache.
type TransactionService struct {
	txRepo repository.ITransactionRepository
	cache  *DashboardCache
}

func NewTransactionService(txRepo repository.ITransactionRepository, cache *DashboardCache) *TransactionService {
	return &TransactionService{txRepo: txRepo, cache: cache}
}

// List retrieves the full ledger ordered by created_at descending.
func (s *TransactionService) List() ([]*model.Transaction, error) {
	return s.txRepo.List()
}

// Create records a new ledger entry from a manual API call.
func (s *TransactionService) Create(ctx context.Context, req *model.TransactionCreateRequest) (*model.Transaction, error) {
	transaction := &model.Transaction{
		TxType:       req.TxType,
		Amount:       req.Amount,
		Currency:     req.Currency,
		Counterparty: req.Counterparty,
		Date:         req.Date,
		Description:  req.Description,
		CreatedAt:    time.Now(),
	}

	if err := s.txRepo.Create(transaction); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return transaction, nil
}

// Update applies the supplied fields to a ledger entry.
func (s *TransactionService) Update(ctx context.Context, id int, patch *model.TransactionPatch) (*model.Transaction, error) {
	transaction, err := s.txRepo.Update(id, patch)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return transaction, nil
}

// Delete removes a single ledger entry.
func (s *TransactionService) Delete(ctx context.Context, id int) error {
	err := s.txRepo.Delete(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrTransactionNotFound
		}
		return err
	}

	s.cache.Invalidate(ctx)
	return nil
}

// Clear removes every ledger entry and reports how many were deleted.
func (s *TransactionService) Clear(ctx context.Context) (int64, error) {
	count, err := s.txRepo.Clear()
	if err != nil {
		return 0, err
	}

	logger.Log.WithFields(logrus.Fields{"cleared": count}).Info("Cleared all transactions")
	s.cache.Invalidate(ctx)
	return count, nil
}
