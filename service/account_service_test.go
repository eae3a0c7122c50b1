// file: service/account_service_test.go

package service

import (
	"bank-admin-api/model"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockAccountRepoForAccountSvc is a mock implementation of IAccountRepository.
type mockAccountRepoForAccountSvc struct{ mock.Mock }

func (m *mockAccountRepoForAccountSvc) Get() (*model.Account, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountRepoForAccountSvc) Create(account *model.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *mockAccountRepoForAccountSvc) Update(id int, patch *model.AccountPatch) (*model.Account, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

// mockTxRepoForAccountSvc satisfies ITransactionRepository.
type mockTxRepoForAccountSvc struct{ mock.Mock }

func (m *mockTxRepoForAccountSvc) List() ([]*model.Transaction, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaction), args.Error(1)
}

func (m *mockTxRepoForAccountSvc) GetByID(int) (*model.Transaction, error) { return nil, nil }
func (m *mockTxRepoForAccountSvc) Create(*model.Transaction) error         { return nil }
func (m *mockTxRepoForAccountSvc) CreateBatch(*sql.Tx, []*model.Transaction) error {
	return nil
}
func (m *mockTxRepoForAccountSvc) Update(int, *model.TransactionPatch) (*model.Transaction, error) {
	return nil, nil
}
func (m *mockTxRepoForAccountSvc) Delete(int) error      { return nil }
func (m *mockTxRepoForAccountSvc) Clear() (int64, error) { return 0, nil }

func TestAccountService_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		svc := NewAccountService(mockRepo, nil, NewDashboardCache(nil))

		expected := &model.Account{ID: 1, HolderName: "AMY VANESSA DAVIS", Balance: 0.95}
		mockRepo.On("Get").Return(expected, nil).Once()

		account, err := svc.Get()

		assert.NoError(t, err)
		assert.Equal(t, expected, account)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		svc := NewAccountService(mockRepo, nil, NewDashboardCache(nil))

		mockRepo.On("Get").Return(nil, sql.ErrNoRows).Once()

		_, err := svc.Get()

		assert.Equal(t, ErrAccountNotFound, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestAccountService_Update(t *testing.T) {
	t.Run("applies patch to existing account", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		svc := NewAccountService(mockRepo, nil, NewDashboardCache(nil))

		balance := 2500.00
		patch := &model.AccountPatch{Balance: &balance}

		current := &model.Account{ID: 1, Balance: 0.95}
		updated := &model.Account{ID: 1, Balance: 2500.00}

		mockRepo.On("Get").Return(current, nil).Once()
		mockRepo.On("Update", 1, patch).Return(updated, nil).Once()

		account, err := svc.Update(context.Background(), patch)

		assert.NoError(t, err)
		assert.Equal(t, 2500.00, account.Balance)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		svc := NewAccountService(mockRepo, nil, NewDashboardCache(nil))

		mockRepo.On("Get").Return(nil, sql.ErrNoRows).Once()

		_, err := svc.Update(context.Background(), &model.AccountPatch{})

		assert.Equal(t, ErrAccountNotFound, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error passes through", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		svc := NewAccountService(mockRepo, nil, NewDashboardCache(nil))

		repoErr := errors.New("connection reset")
		mockRepo.On("Get").Return(&model.Account{ID: 1}, nil).Once()
		mockRepo.On("Update", 1, mock.Anything).Return(nil, repoErr).Once()

		_, err := svc.Update(context.Background(), &model.AccountPatch{})

		assert.Equal(t, repoErr, err)
	})
}

func TestAccountService_Dashboard(t *testing.T) {
	mockAccountRepo := new(mockAccountRepoForAccountSvc)
	mockTxRepo := new(mockTxRepoForAccountSvc)
	svc := NewAccountService(mockAccountRepo, mockTxRepo, NewDashboardCache(nil))

	account := &model.Account{ID: 1, Balance: 100.00, Currency: "USD"}
	transactions := []*model.Transaction{
		{ID: 2, TxType: model.TxTypeReceived, Amount: 49.00},
		{ID: 1, TxType: model.TxTypeSent, Amount: -48.05},
	}

	mockAccountRepo.On("Get").Return(account, nil).Once()
	mockTxRepo.On("List").Return(transactions, nil).Once()

	dashboard, err := svc.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, account, dashboard.Account)
	assert.Len(t, dashboard.Transactions, 2)
	mockAccountRepo.AssertExpectations(t)
	mockTxRepo.AssertExpectations(t)
}
