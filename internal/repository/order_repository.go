package repository

import (
	"context"

	"delivery/internal/domain/model"

	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	// idのみで取得（ベンダー操作用）
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// idと所有者で取得。他人の注文は「存在しない扱い」
	FindByIDForUser(ctx context.Context, orderID int64, userID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	UpdateTip(ctx context.Context, orderID int64, tip decimal.Decimal) error
}
