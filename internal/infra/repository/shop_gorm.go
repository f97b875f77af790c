package repository

import (
	"context"
	"errors"

	"delivery/internal/domain/model"
	repo "delivery/internal/repository"

	"gorm.io/gorm"
)

type ShopGormRepository struct {
	db *gorm.DB
}

func NewShopGormRepository(db *gorm.DB) *ShopGormRepository {
	return &ShopGormRepository{db: db}
}

func (r *ShopGormRepository) List(ctx context.Context) ([]model.Shop, error) {
	var items []model.Shop
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return []model.Shop{}, err
	}
	return items, nil
}

func (r *ShopGormRepository) FindByID(ctx context.Context, id int64) (model.Shop, error) {
	var s model.Shop
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shop{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shop{}, err
	}
	return s, nil
}

func (r *ShopGormRepository) Create(ctx context.Context, s model.Shop) (model.Shop, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Shop{}, err
	}
	return s, nil
}
