package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestClientParams(t *testing.T) (ClientServiceParams, *mockRepo.MockClientRepository, *mockRepo.MockAddressRepository) {
	clientRepo := mockRepo.NewMockClientRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)

	return ClientServiceParams{
		ClientRepo:  clientRepo,
		AddressRepo: addressRepo,
		Logger:      newDiscardLogger(),
	}, clientRepo, addressRepo
}

func TestClientService_CreateClient_Duplicate(t *testing.T) {
	params, clientRepo, _ := newTestClientParams(t)
	ctx := context.Background()

	clientRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrClientAlreadyExists.WrapMessage("duplicate"))

	_, err := NewClientService(params).CreateClient(ctx, &usecase.CreateClientInput{Name: "Acme"})
	assert.True(t, errors.Is(err, domainerrors.ErrClientAlreadyExists))
}

func TestClientService_CreateAddress(t *testing.T) {
	t.Run("unknown client", func(t *testing.T) {
		params, clientRepo, _ := newTestClientParams(t)
		ctx := context.Background()
		clientRepo.EXPECT().FindByID(ctx, uint(4)).Return(nil, domainerrors.ErrClientNotFound)

		_, err := NewAddressService(params).CreateAddress(ctx, &usecase.CreateAddressInput{ClientID: 4})
		assert.True(t, errors.Is(err, domainerrors.ErrClientNotFound))
	})

	t.Run("created under client", func(t *testing.T) {
		params, clientRepo, addressRepo := newTestClientParams(t)
		ctx := context.Background()
		clientRepo.EXPECT().FindByID(ctx, uint(4)).Return(&entity.Client{ID: 4}, nil)
		addressRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(a *entity.Address) bool { return a.ClientID == 4 && a.City == "Recife" })).
			Run(func(_ context.Context, a *entity.Address) { a.ID = 8 }).
			Return(nil)

		address, err := NewAddressService(params).CreateAddress(ctx, &usecase.CreateAddressInput{ClientID: 4, City: "Recife"})
		require.NoError(t, err)
		assert.Equal(t, uint(8), address.ID)
	})
}

func TestClientService_ListAddressesByClient(t *testing.T) {
	params, clientRepo, addressRepo := newTestClientParams(t)
	ctx := context.Background()

	clientRepo.EXPECT().FindByID(ctx, uint(4)).Return(&entity.Client{ID: 4}, nil)
	addressRepo.EXPECT().FindByClient(ctx, uint(4)).Return([]*entity.Address{{ID: 1, ClientID: 4}}, nil)

	addresses, err := NewAddressService(params).ListAddressesByClient(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, addresses, 1)
}
