package impl

import (
	"context"
	"log/slog"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// clientService implements ClientUsecase and AddressUsecase; addresses only exist under a client.
type clientService struct {
	clientRepo  repository.ClientRepository
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// ClientServiceParams holds dependencies for the client service.
type ClientServiceParams struct {
	fx.In

	ClientRepo  repository.ClientRepository
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewClientService creates a new client service.
func NewClientService(params ClientServiceParams) usecase.ClientUsecase {
	return newClientService(params)
}

// NewAddressService creates a new address service backed by the same client rules.
func NewAddressService(params ClientServiceParams) usecase.AddressUsecase {
	return newClientService(params)
}

func newClientService(params ClientServiceParams) *clientService {
	return &clientService{
		clientRepo:  params.ClientRepo,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *clientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateClient inserts directly; the unique indexes on name, email and tax id reject duplicates.
func (srv *clientService) CreateClient(ctx context.Context, input *usecase.CreateClientInput) (*entity.Client, error) {
	client := &entity.Client{
		Name:       input.Name,
		Email:      input.Email,
		MainNumber: input.MainNumber,
		TaxID:      input.TaxID,
	}
	if err := srv.clientRepo.Create(ctx, client); err != nil {
		return nil, errors.Wrap(err, "failed to create client")
	}

	srv.log(ctx).Info("Client created", slog.Uint64("clientID", uint64(client.ID)))

	return client, nil
}

func (srv *clientService) ListClients(ctx context.Context) ([]*entity.Client, error) {
	clients, err := srv.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	return clients, nil
}

// CreateAddress attaches an address to an existing client.
func (srv *clientService) CreateAddress(ctx context.Context, input *usecase.CreateAddressInput) (*entity.Address, error) {
	if _, err := srv.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		return nil, errors.Wrap(err, "failed to find address owner")
	}

	address := &entity.Address{
		ClientID: input.ClientID,
		Street:   input.Street,
		Number:   input.Number,
		District: input.District,
		City:     input.City,
		Zip:      input.Zip,
		Phone:    input.Phone,
	}
	if err := srv.addressRepo.Create(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	return address, nil
}

// ListAddressesByClient returns ErrClientNotFound for an unknown client rather than an empty list.
func (srv *clientService) ListAddressesByClient(ctx context.Context, clientID uint) ([]*entity.Address, error) {
	if _, err := srv.clientRepo.FindByID(ctx, clientID); err != nil {
		return nil, errors.Wrap(err, "failed to find client")
	}

	addresses, err := srv.addressRepo.FindByClient(ctx, clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}
