package db

import (
	"bank-admin-api/logger"
	"bank-admin-api/model"
	"bank-admin-api/repository"
	"database/sql"
	"time"
)

// Seed inserts the demo account and a few sample transactions when the store
// is empty. Safe to call on every startup; errors are logged and swallowed so
// a seeding problem never stops the service.
func Seed(accountRepo repository.IAccountRepository, txRepo repository.ITransactionRepository) {
	if _, err := accountRepo.Get(); err == nil {
		logger.Log.Info("Account already present, skipping seed")
		return
	} else if err != sql.ErrNoRows {
		logger.Log.WithError(err).Warn("Seed check failed (non-fatal)")
		return
	}

	account := &model.Account{
		HolderName:    "AMY VANESSA DAVIS",
		AccountNumber: "215979558875",
		RoutingNumber: "101019644",
		HolderAddress: "PTB 24692, Jalan Senyum, Johor Bahru, Johor 80300",
		BankName:      "Lead Bank in the USA",
		BankAddress:   "1801 Main St., Kansas City, MO 64108",
		Country:       "USA",
		Balance:       0.95,
		Currency:      "USD",
		FirstName:     "Minlan",
		LastName:      "Zhou",
		DateOfBirth:   "3 Dec 1998",
		Email:         "rxehjqv4297@hotmail.com",
		PhoneNumber:   "+18633890587",
		Address:       "123 Main St, San Francisco, CA 94102",
	}
	if err := accountRepo.Create(account); err != nil {
		logger.Log.WithError(err).Warn("Seeding account failed (non-fatal)")
		return
	}

	transactions := []*model.Transaction{
		{
			TxType:       model.TxTypeSent,
			Amount:       -48.05,
			Currency:     "USD",
			Counterparty: "AZVQ...C8bB",
			Date:         "08 Feb - 01:44 PM",
			Description:  "Sent",
			CreatedAt:    time.Date(2024, time.February, 8, 13, 44, 0, 0, time.UTC),
		},
		{
			TxType:       model.TxTypeReceived,
			Amount:       49.00,
			Currency:     "USDT",
			Counterparty: "TK4y...n3qJ",
			Date:         "08 Feb - 01:41 PM",
			Description:  "Received",
			CreatedAt:    time.Date(2024, time.February, 8, 13, 41, 0, 0, time.UTC),
		},
		{
			TxType:       model.TxTypeFee,
			Amount:       0.00,
			Currency:     "USD",
			Counterparty: "",
			Date:         "04 Feb - 02:03 AM",
			Description:  "Card fee",
			CreatedAt:    time.Date(2024, time.February, 4, 2, 3, 0, 0, time.UTC),
		},
	}
	for _, t := range transactions {
		if err := txRepo.Create(t); err != nil {
			logger.Log.WithError(err).Warn("Seeding transaction failed (non-fatal)")
			return
		}
	}

	logger.Log.Info("Demo data seeded successfully")
}
