package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"delivery/internal/domain/model"
	repo "delivery/internal/repository"
	"delivery/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type ReviewRepoMock struct{ mock.Mock }

func (m *ReviewRepoMock) Create(ctx context.Context, r model.Review) (model.Review, error) {
	args := m.Called(ctx, r)
	created, _ := args.Get(0).(model.Review)
	return created, args.Error(1)
}

func (m *ReviewRepoMock) ExistsByUserAndProduct(ctx context.Context, userID int64, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *ReviewRepoMock) ListByProductID(ctx context.Context, productID int64) ([]model.Review, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.Review)
	return items, args.Error(1)
}

func (m *ReviewRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Review, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.Review)
	return items, args.Error(1)
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	uc := usecase.NewReviewUsecase(new(ReviewRepoMock), new(ProductRepoMock), zap.NewNop())

	_, err := uc.Create(context.Background(), 5, 1, usecase.CreateReviewInput{Rating: 0})
	assertHTTPError(t, err, http.StatusBadRequest, "rating must be between 1 and 5")

	_, err = uc.Create(context.Background(), 5, 1, usecase.CreateReviewInput{Rating: 6})
	assertHTTPError(t, err, http.StatusBadRequest, "rating must be between 1 and 5")
}

func TestCreateReview_ProductNotFound(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewReviewUsecase(new(ReviewRepoMock), products, zap.NewNop())

	_, err := uc.Create(context.Background(), 5, 99, usecase.CreateReviewInput{Rating: 4})
	assertHTTPError(t, err, http.StatusNotFound, "product not found")
}

func TestCreateReview_DuplicateRejected(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1}, nil)

	reviews := new(ReviewRepoMock)
	reviews.On("ExistsByUserAndProduct", mock.Anything, int64(5), int64(1)).Return(true, nil)

	uc := usecase.NewReviewUsecase(reviews, products, zap.NewNop())

	_, err := uc.Create(context.Background(), 5, 1, usecase.CreateReviewInput{Rating: 4})
	assertHTTPError(t, err, http.StatusBadRequest, "you have already reviewed this product")

	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReview_Success(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1}, nil)

	reviews := new(ReviewRepoMock)
	reviews.On("ExistsByUserAndProduct", mock.Anything, int64(5), int64(1)).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(model.Review{ID: 3, UserID: 5, ProductID: 1, Rating: 4, Comment: "good"}, nil)

	uc := usecase.NewReviewUsecase(reviews, products, zap.NewNop())

	out, err := uc.Create(context.Background(), 5, 1, usecase.CreateReviewInput{Rating: 4, Comment: "good"})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), out.ID)
	assert.Equal(t, 4, out.Rating)

	reviews.AssertExpectations(t)
}
