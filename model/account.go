package model

// Account is the single banking profile the service manages. It is created
// once at startup if absent and only ever updated after that.
type Account struct {
	ID            int     `json:"id"`
	HolderName    string  `json:"holder_name"`
	AccountNumber string  `json:"account_number"`
	RoutingNumber string  `json:"routing_number"`
	HolderAddress string  `json:"holder_address"`
	BankName      string  `json:"bank_name"`
	BankAddress   string  `json:"bank_address"`
	Country       string  `json:"country"`
	Balance       float64 `json:"balance"`
	Currency      string  `json:"currency"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	DateOfBirth   string  `json:"date_of_birth"`
	Email         string  `json:"email"`
	PhoneNumber   string  `json:"phone_number"`
	Address       string  `json:"address"`
}
