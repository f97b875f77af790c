package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"delivery/internal/domain/model"
	repo "delivery/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
	shopRepo    repo.ShopRepository
	log         *zap.Logger
}

func NewProductUsecase(productRepo repo.ProductRepository, shopRepo repo.ShopRepository, log *zap.Logger) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo, shopRepo: shopRepo, log: log}
}

type ProductOutput struct {
	ID          int64     `json:"id"`
	ShopID      int64     `json:"shop_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int64     `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateProductInput struct {
	ShopID      int64   `json:"shop_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
}

type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int64   `json:"stock"`
}

func (u *ProductUsecase) List(ctx context.Context, shopID *int64) ([]ProductOutput, error) {
	items, err := u.productRepo.List(ctx, repo.ProductListQuery{ShopID: shopID})
	if err != nil {
		u.log.Error("list products failed", zap.Error(err))
		return []ProductOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]ProductOutput, 0, len(items))
	for _, p := range items {
		outs = append(outs, toProductOutput(p))
	}
	return outs, nil
}

func (u *ProductUsecase) Get(ctx context.Context, id int64) (ProductOutput, error) {
	if id <= 0 {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return ProductOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toProductOutput(p), nil
}

func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (ProductOutput, error) {
	if strings.TrimSpace(in.Name) == "" {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if in.Stock < 0 {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "invalid stock")
	}

	//所属ショップの存在確認
	if _, err := u.shopRepo.FindByID(ctx, in.ShopID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ProductOutput{}, NewHTTPError(http.StatusNotFound, "shop not found")
		}
		return ProductOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p := model.Product{
		ShopID:      in.ShopID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       decimal.NewFromFloat(in.Price),
		Stock:       in.Stock,
	}

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		u.log.Error("create product failed", zap.Error(err))
		return ProductOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toProductOutput(created), nil
}

func (u *ProductUsecase) Update(ctx context.Context, id int64, in UpdateProductInput) (ProductOutput, error) {
	if id <= 0 {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return ProductOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "name required")
		}
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "invalid price")
		}
		p.Price = decimal.NewFromFloat(*in.Price)
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "invalid stock")
		}
		p.Stock = *in.Stock
	}

	if err := u.productRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ProductOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		u.log.Error("update product failed", zap.Int64("product_id", id), zap.Error(err))
		return ProductOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toProductOutput(p), nil
}

func toProductOutput(p model.Product) ProductOutput {
	return ProductOutput{
		ID:          p.ID,
		ShopID:      p.ShopID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
	}
}
