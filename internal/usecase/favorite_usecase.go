package usecase

import (
	"context"
	"errors"
	"net/http"

	"delivery/internal/domain/model"
	repo "delivery/internal/repository"

	"go.uber.org/zap"
)

type FavoriteUsecase struct {
	favoriteRepo repo.FavoriteRepository
	productRepo  repo.ProductRepository
	log          *zap.Logger
}

func NewFavoriteUsecase(favoriteRepo repo.FavoriteRepository, productRepo repo.ProductRepository, log *zap.Logger) *FavoriteUsecase {
	return &FavoriteUsecase{favoriteRepo: favoriteRepo, productRepo: productRepo, log: log}
}

func (u *FavoriteUsecase) Add(ctx context.Context, userID int64, productID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//商品の存在確認
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//二重追加は拒否
	exists, err := u.favoriteRepo.ExistsByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if exists {
		return NewHTTPError(http.StatusBadRequest, "product already in favorites")
	}

	if err := u.favoriteRepo.Create(ctx, model.Favorite{UserID: userID, ProductID: productID}); err != nil {
		u.log.Error("add favorite failed", zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *FavoriteUsecase) Remove(ctx context.Context, userID int64, productID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	err := u.favoriteRepo.DeleteByUserAndProduct(ctx, userID, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not in favorites")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// List はお気に入り済みの商品一覧を返す。
func (u *FavoriteUsecase) List(ctx context.Context, userID int64) ([]ProductOutput, error) {
	if userID <= 0 {
		return []ProductOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	products, err := u.favoriteRepo.ListProductsByUserID(ctx, userID)
	if err != nil {
		return []ProductOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]ProductOutput, 0, len(products))
	for _, p := range products {
		outs = append(outs, toProductOutput(p))
	}
	return outs, nil
}
