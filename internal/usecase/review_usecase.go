package usecase

import (
	"context"
	"errors"
	"net/http"

	"delivery/internal/domain/model"
	repo "delivery/internal/repository"

	"go.uber.org/zap"
)

type ReviewUsecase struct {
	reviewRepo  repo.ReviewRepository
	productRepo repo.ProductRepository
	log         *zap.Logger
}

func NewReviewUsecase(reviewRepo repo.ReviewRepository, productRepo repo.ProductRepository, log *zap.Logger) *ReviewUsecase {
	return &ReviewUsecase{reviewRepo: reviewRepo, productRepo: productRepo, log: log}
}

type CreateReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (u *ReviewUsecase) Create(ctx context.Context, userID int64, productID int64, in CreateReviewInput) (model.Review, error) {
	if userID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	//商品の存在確認
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Review{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//同じ商品への二重レビューは拒否
	exists, err := u.reviewRepo.ExistsByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if exists {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "you have already reviewed this product")
	}

	created, err := u.reviewRepo.Create(ctx, model.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	})
	if err != nil {
		u.log.Error("create review failed", zap.Error(err))
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *ReviewUsecase) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	if productID <= 0 {
		return []model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	items, err := u.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return []model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ReviewUsecase) ListByUser(ctx context.Context, userID int64) ([]model.Review, error) {
	if userID <= 0 {
		return []model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.reviewRepo.ListByUserID(ctx, userID)
	if err != nil {
		return []model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}
