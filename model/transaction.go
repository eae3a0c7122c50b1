package model

import "time"

// Transaction types. Amounts are stored already signed by convention: "sent"
// rows carry negative amounts in balance arithmetic, "received" and "fee"
// rows carry positive ones.
const (
	TxTypeSent     = "sent"
	TxTypeReceived = "received"
	TxTypeFee      = "fee"
)

type Transaction struct {
	ID           int       `json:"id"`
	TxType       string    `json:"tx_type"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	Counterparty string    `json:"counterparty"`
	Date         string    `json:"date"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

// Dashboard is the combined read payload consumed by the admin frontend.
type Dashboard struct {
	Account      *Account       `json:"account"`
	Transactions []*Transaction `json:"transactions"`
}
