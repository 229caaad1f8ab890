package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// CreateClientInput defines the data required to register a client.
type CreateClientInput struct {
	Name       string
	Email      string
	MainNumber string
	TaxID      string
}

// CreateAddressInput defines the data required to attach an address to a client.
type CreateAddressInput struct {
	ClientID uint
	Street   string
	Number   string
	District string
	City     string
	Zip      string
	Phone    string
}

// ClientUsecase defines client registration and listing.
type ClientUsecase interface {
	CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error)
	ListClients(ctx context.Context) ([]*entity.Client, error)
}

// AddressUsecase defines address operations. Every address belongs to one client.
type AddressUsecase interface {
	CreateAddress(ctx context.Context, input *CreateAddressInput) (*entity.Address, error)
	ListAddressesByClient(ctx context.Context, clientID uint) ([]*entity.Address, error)
}
