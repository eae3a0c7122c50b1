// file: model/request.go

package model

// AccountPatch carries a partial account update. Only non-nil fields are
// applied; the merge is explicit field by field, never reflective.
type AccountPatch struct {
	HolderName    *string  `json:"holder_name"`
	AccountNumber *string  `json:"account_number"`
	RoutingNumber *string  `json:"routing_number"`
	HolderAddress *string  `json:"holder_address"`
	BankName      *string  `json:"bank_name"`
	BankAddress   *string  `json:"bank_address"`
	Country       *string  `json:"country"`
	Balance       *float64 `json:"balance"`
	Currency      *string  `json:"currency"`
	FirstName     *string  `json:"first_name"`
	LastName      *string  `json:"last_name"`
	DateOfBirth   *string  `json:"date_of_birth"`
	Email         *string  `json:"email"`
	PhoneNumber   *string  `json:"phone_number"`
	Address       *string  `json:"address"`
}

// TransactionCreateRequest defines the payload for recording a ledger entry
// by hand. Validation happens at the entry point.
type TransactionCreateRequest struct {
	TxType       string  `json:"tx_type" validate:"required,oneof=sent received fee"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency" validate:"required,min=3,max=8"`
	Counterparty string  `json:"counterparty"`
	Date         string  `json:"date"`
	Description  string  `json:"description"`
}

// TransactionPatch carries a partial transaction update.
type TransactionPatch struct {
	TxType       *string  `json:"tx_type"`
	Amount       *float64 `json:"amount"`
	Currency     *string  `json:"currency"`
	Counterparty *string  `json:"counterparty"`
	Date         *string  `json:"date"`
	Description  *string  `json:"description"`
}

// LoginRequest defines the admin login form fields.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// GenerateResult summarizes one ledger balancing run.
type GenerateResult struct {
	Message       string  `json:"message"`
	Generated     int     `json:"generated"`
	ReceivedCount int     `json:"received_count"`
	SentCount     int     `json:"sent_count"`
	TotalReceived float64 `json:"total_received"`
	TotalSent     float64 `json:"total_sent"`
}
