package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"delivery/internal/domain/model"
	repo "delivery/internal/repository"
	"delivery/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type FavoriteRepoMock struct{ mock.Mock }

func (m *FavoriteRepoMock) Create(ctx context.Context, f model.Favorite) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *FavoriteRepoMock) ExistsByUserAndProduct(ctx context.Context, userID int64, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *FavoriteRepoMock) DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *FavoriteRepoMock) ListProductsByUserID(ctx context.Context, userID int64) ([]model.Product, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func TestAddFavorite_ProductNotFound(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewFavoriteUsecase(new(FavoriteRepoMock), products, zap.NewNop())

	err := uc.Add(context.Background(), 5, 99)
	assertHTTPError(t, err, http.StatusNotFound, "product not found")
}

func TestAddFavorite_DuplicateRejected(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1}, nil)

	favs := new(FavoriteRepoMock)
	favs.On("ExistsByUserAndProduct", mock.Anything, int64(5), int64(1)).Return(true, nil)

	uc := usecase.NewFavoriteUsecase(favs, products, zap.NewNop())

	err := uc.Add(context.Background(), 5, 1)
	assertHTTPError(t, err, http.StatusBadRequest, "product already in favorites")

	favs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddFavorite_Success(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1}, nil)

	favs := new(FavoriteRepoMock)
	favs.On("ExistsByUserAndProduct", mock.Anything, int64(5), int64(1)).Return(false, nil)
	favs.On("Create", mock.Anything, model.Favorite{UserID: 5, ProductID: 1}).Return(nil)

	uc := usecase.NewFavoriteUsecase(favs, products, zap.NewNop())

	err := uc.Add(context.Background(), 5, 1)
	assert.NoError(t, err)

	favs.AssertExpectations(t)
}

func TestRemoveFavorite_NotInFavorites(t *testing.T) {
	favs := new(FavoriteRepoMock)
	favs.On("DeleteByUserAndProduct", mock.Anything, int64(5), int64(1)).Return(repo.ErrNotFound)

	uc := usecase.NewFavoriteUsecase(favs, new(ProductRepoMock), zap.NewNop())

	err := uc.Remove(context.Background(), 5, 1)
	assertHTTPError(t, err, http.StatusNotFound, "product not in favorites")
}

func TestListFavorites_ReturnsProducts(t *testing.T) {
	favs := new(FavoriteRepoMock)
	favs.On("ListProductsByUserID", mock.Anything, int64(5)).Return([]model.Product{
		{ID: 1, ShopID: 10, Name: "Latte", Price: decimal.NewFromFloat(10.99), Stock: 3},
	}, nil)

	uc := usecase.NewFavoriteUsecase(favs, new(ProductRepoMock), zap.NewNop())

	out, err := uc.List(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "Latte", out[0].Name)
	assert.Equal(t, 10.99, out[0].Price)
}
