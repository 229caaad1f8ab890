package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// addressRepository implements the domain.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates a new address repository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// Create persists an address. A missing owner surfaces as ErrClientNotFound when the database enforces the foreign key.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrClientNotFound.WrapMessage("address owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt

	return nil
}

// FindByIDAndClient filters on both columns so a foreign address reads the same as a missing one.
func (repo *addressRepository) FindByIDAndClient(ctx context.Context, id, clientID uint) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", id, clientID).
		First(&addressM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find address")
	}

	return toAddressDomain(&addressM), nil
}

// FindByClient retrieves all addresses for a client.
func (repo *addressRepository) FindByClient(ctx context.Context, clientID uint) ([]*entity.Address, error) {
	var addressMs []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("id").
		Find(&addressMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list addresses by client")
	}

	addresses := make([]*entity.Address, len(addressMs))
	for i, addressM := range addressMs {
		addresses[i] = toAddressDomain(addressM)
	}

	return addresses, nil
}

// --- Mapper Functions ---

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:        data.ID,
		ClientID:  data.ClientID,
		Street:    data.Street,
		Number:    data.Number,
		District:  data.District,
		City:      data.City,
		Zip:       data.Zip,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:        data.ID,
		ClientID:  data.ClientID,
		Street:    data.Street,
		Number:    data.Number,
		District:  data.District,
		City:      data.City,
		Zip:       data.Zip,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
	}
}
