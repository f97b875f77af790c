package repository

import (
	"context"

	"delivery/internal/domain/model"
)

type FavoriteRepository interface {
	Create(ctx context.Context, f model.Favorite) error
	ExistsByUserAndProduct(ctx context.Context, userID int64, productID int64) (bool, error)
	DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error
	// お気に入り対象の商品をまとめて返す
	ListProductsByUserID(ctx context.Context, userID int64) ([]model.Product, error)
}
