package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusAccepted       OrderStatus = "ACCEPTED"
	OrderStatusPreparing      OrderStatus = "PREPARING"
	OrderStatusReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	OrderStatusInDelivery     OrderStatus = "IN_DELIVERY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
	PaymentMethodCard           PaymentMethod = "CARD"
	PaymentMethodWallet         PaymentMethod = "WALLET"
	PaymentMethodBankTransfer   PaymentMethod = "BANK_TRANSFER"
)

// 遷移表（CANCELLED→ACCEPTEDはベンダーのキャンセル却下専用）
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusAccepted, OrderStatusCancelled},
	OrderStatusAccepted:       {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:      {OrderStatusReadyForPickup},
	OrderStatusInDelivery:     {OrderStatusDelivered},
	OrderStatusReadyForPickup: {OrderStatusInDelivery},
	OrderStatusDelivered:      {},
	OrderStatusCancelled:      {OrderStatusAccepted},
}

// IsValidOrderStatus は既知のステータス値かどうか。
func IsValidOrderStatus(s OrderStatus) bool {
	_, ok := orderStatusTransitions[s]
	return ok
}

// CanTransition は遷移表にあるエッジだけを許可する。
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range orderStatusTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// IsCancellable はキャンセル可能な状態（PENDING/ACCEPTED）かどうか。
func (s OrderStatus) IsCancellable() bool {
	return s == OrderStatusPending || s == OrderStatusAccepted
}

func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCashOnDelivery, PaymentMethodCard, PaymentMethodWallet, PaymentMethodBankTransfer:
		return true
	default:
		return false
	}
}

type Order struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        int64           `gorm:"not null;index" json:"user_id"`
	ShopID        int64           `gorm:"not null;index" json:"shop_id"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(20);not null" json:"payment_method"`
	TipAmount     decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"tip_amount"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
