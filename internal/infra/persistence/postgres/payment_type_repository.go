package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type paymentTypeRepository struct {
	db *gorm.DB
}

// NewPaymentTypeRepository creates a new payment type repository.
func NewPaymentTypeRepository(db *gorm.DB) repository.PaymentTypeRepository {
	return &paymentTypeRepository{db: db}
}

func (repo *paymentTypeRepository) Create(ctx context.Context, paymentType *entity.PaymentType) error {
	paymentTypeM := fromPaymentTypeDomain(paymentType)

	if err := repo.db.WithContext(ctx).Create(paymentTypeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPaymentTypeAlreadyExists.WrapMessage("payment type already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment type")
	}

	paymentType.ID = paymentTypeM.ID
	paymentType.CreatedAt = paymentTypeM.CreatedAt

	return nil
}

func (repo *paymentTypeRepository) FindAll(ctx context.Context) ([]*entity.PaymentType, error) {
	var paymentTypeMs []*model.PaymentTypeModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&paymentTypeMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list payment types")
	}

	paymentTypes := make([]*entity.PaymentType, len(paymentTypeMs))
	for i, paymentTypeM := range paymentTypeMs {
		paymentTypes[i] = toPaymentTypeDomain(paymentTypeM)
	}

	return paymentTypes, nil
}

func (repo *paymentTypeRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PaymentTypeModel{}).
		Where("id IN ?", ids).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count payment types")
	}

	return count, nil
}

// --- Mapper Functions ---

func toPaymentTypeDomain(data *model.PaymentTypeModel) *entity.PaymentType {
	if data == nil {
		return nil
	}

	return &entity.PaymentType{
		ID:        data.ID,
		Type:      data.Type,
		CreatedAt: data.CreatedAt,
	}
}

func fromPaymentTypeDomain(data *entity.PaymentType) *model.PaymentTypeModel {
	if data == nil {
		return nil
	}

	return &model.PaymentTypeModel{
		ID:        data.ID,
		Type:      data.Type,
		CreatedAt: data.CreatedAt,
	}
}
