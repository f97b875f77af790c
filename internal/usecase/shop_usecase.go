package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"delivery/internal/domain/model"
	repo "delivery/internal/repository"

	"go.uber.org/zap"
)

type ShopUsecase struct {
	shopRepo repo.ShopRepository
	log      *zap.Logger
}

func NewShopUsecase(shopRepo repo.ShopRepository, log *zap.Logger) *ShopUsecase {
	return &ShopUsecase{shopRepo: shopRepo, log: log}
}

type CreateShopInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}

func (u *ShopUsecase) List(ctx context.Context) ([]model.Shop, error) {
	shops, err := u.shopRepo.List(ctx)
	if err != nil {
		u.log.Error("list shops failed", zap.Error(err))
		return []model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return shops, nil
}

func (u *ShopUsecase) Get(ctx context.Context, id int64) (model.Shop, error) {
	if id <= 0 {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	s, err := u.shopRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Shop{}, NewHTTPError(http.StatusNotFound, "shop not found")
	}
	if err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *ShopUsecase) Create(ctx context.Context, in CreateShopInput) (model.Shop, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	s := model.Shop{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Address:     in.Address,
		Phone:       in.Phone,
	}

	created, err := u.shopRepo.Create(ctx, s)
	if err != nil {
		u.log.Error("create shop failed", zap.Error(err))
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}
