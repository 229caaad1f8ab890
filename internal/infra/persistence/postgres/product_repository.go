package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductAlreadyExists.WrapMessage("product code or name already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt

	return nil
}

func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&productMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	products := make([]*entity.Product, len(productMs))
	for i, productM := range productMs {
		products[i] = toProductDomain(productM)
	}

	return products, nil
}

// CountByIDs counts existing rows among ids. Callers pass distinct ids.
func (repo *productRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id IN ?", ids).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count products")
	}

	return count, nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:           data.ID,
		Code:         data.Code,
		Name:         data.Name,
		DefaultPrice: data.DefaultPrice,
		Height:       data.Height,
		Width:        data.Width,
		Depth:        data.Depth,
		CreatedAt:    data.CreatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:           data.ID,
		Code:         data.Code,
		Name:         data.Name,
		DefaultPrice: data.DefaultPrice,
		Height:       data.Height,
		Width:        data.Width,
		Depth:        data.Depth,
		CreatedAt:    data.CreatedAt,
	}
}
