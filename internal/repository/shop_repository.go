package repository

import (
	"context"

	"delivery/internal/domain/model"
)

type ShopRepository interface {
	List(ctx context.Context) ([]model.Shop, error)
	FindByID(ctx context.Context, id int64) (model.Shop, error)
	Create(ctx context.Context, s model.Shop) (model.Shop, error)
}
