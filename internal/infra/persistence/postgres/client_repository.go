package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

// Create persists a client. Name, email and tax id are guarded by unique indexes.
func (repo *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	if err := repo.db.WithContext(ctx).Create(clientM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrClientAlreadyExists.WrapMessage("client name, email or tax id already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required client information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create client")
	}

	client.ID = clientM.ID
	client.CreatedAt = clientM.CreatedAt

	return nil
}

func (repo *clientRepository) FindByID(ctx context.Context, id uint) (*entity.Client, error) {
	var clientM model.ClientModel
	if err := repo.db.WithContext(ctx).First(&clientM, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrClientNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find client by id")
	}

	return toClientDomain(&clientM), nil
}

func (repo *clientRepository) FindAll(ctx context.Context) ([]*entity.Client, error) {
	var clientMs []*model.ClientModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&clientMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list clients")
	}

	clients := make([]*entity.Client, len(clientMs))
	for i, clientM := range clientMs {
		clients[i] = toClientDomain(clientM)
	}

	return clients, nil
}

// --- Mapper Functions ---

func toClientDomain(data *model.ClientModel) *entity.Client {
	if data == nil {
		return nil
	}

	return &entity.Client{
		ID:         data.ID,
		Name:       data.Name,
		Email:      data.Email,
		MainNumber: data.MainNumber,
		TaxID:      data.TaxID,
		CreatedAt:  data.CreatedAt,
	}
}

func fromClientDomain(data *entity.Client) *model.ClientModel {
	if data == nil {
		return nil
	}

	return &model.ClientModel{
		ID:         data.ID,
		Name:       data.Name,
		Email:      data.Email,
		MainNumber: data.MainNumber,
		TaxID:      data.TaxID,
		CreatedAt:  data.CreatedAt,
	}
}
