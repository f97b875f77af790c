package repository

import (
	"context"

	"delivery/internal/domain/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, r model.Review) (model.Review, error)
	// 同一ユーザー×商品のレビュー有無
	ExistsByUserAndProduct(ctx context.Context, userID int64, productID int64) (bool, error)
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Review, error)
}
