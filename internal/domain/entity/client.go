package entity

import "time"

// Client is a customer the back office sells to.
type Client struct {
	ID         uint
	Name       string
	Email      string
	MainNumber string // Main contact phone number.
	TaxID      string // CPF/CNPJ style tax identifier.
	CreatedAt  time.Time
}

// Address is a delivery address owned by a Client.
type Address struct {
	ID        uint
	ClientID  uint
	Street    string
	Number    string
	District  string
	City      string
	Zip       string
	Phone     string
	CreatedAt time.Time
}

// BelongsTo reports whether the address is owned by the given client.
func (a *Address) BelongsTo(clientID uint) bool {
	return a != nil && a.ClientID == clientID
}
