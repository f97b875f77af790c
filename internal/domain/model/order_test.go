package model_test

import (
	"testing"

	"delivery/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	//許可されるエッジ
	assert.True(t, model.OrderStatusPending.CanTransition(model.OrderStatusAccepted))
	assert.True(t, model.OrderStatusPending.CanTransition(model.OrderStatusCancelled))
	assert.True(t, model.OrderStatusAccepted.CanTransition(model.OrderStatusPreparing))
	assert.True(t, model.OrderStatusAccepted.CanTransition(model.OrderStatusCancelled))
	assert.True(t, model.OrderStatusPreparing.CanTransition(model.OrderStatusReadyForPickup))
	assert.True(t, model.OrderStatusReadyForPickup.CanTransition(model.OrderStatusInDelivery))
	assert.True(t, model.OrderStatusInDelivery.CanTransition(model.OrderStatusDelivered))
	//キャンセル却下
	assert.True(t, model.OrderStatusCancelled.CanTransition(model.OrderStatusAccepted))

	//飛ばし・逆行は不可
	assert.False(t, model.OrderStatusPending.CanTransition(model.OrderStatusDelivered))
	assert.False(t, model.OrderStatusPreparing.CanTransition(model.OrderStatusAccepted))
	assert.False(t, model.OrderStatusDelivered.CanTransition(model.OrderStatusPending))
	assert.False(t, model.OrderStatusDelivered.CanTransition(model.OrderStatusCancelled))
	assert.False(t, model.OrderStatusCancelled.CanTransition(model.OrderStatusPending))
}

func TestOrderStatus_IsCancellable(t *testing.T) {
	assert.True(t, model.OrderStatusPending.IsCancellable())
	assert.True(t, model.OrderStatusAccepted.IsCancellable())

	assert.False(t, model.OrderStatusPreparing.IsCancellable())
	assert.False(t, model.OrderStatusReadyForPickup.IsCancellable())
	assert.False(t, model.OrderStatusInDelivery.IsCancellable())
	assert.False(t, model.OrderStatusDelivered.IsCancellable())
	assert.False(t, model.OrderStatusCancelled.IsCancellable())
}

func TestIsValidOrderStatus(t *testing.T) {
	assert.True(t, model.IsValidOrderStatus(model.OrderStatusPending))
	assert.True(t, model.IsValidOrderStatus(model.OrderStatusReadyForPickup))

	assert.False(t, model.IsValidOrderStatus(model.OrderStatus("SHIPPED")))
	assert.False(t, model.IsValidOrderStatus(model.OrderStatus("")))
	//小文字は別物
	assert.False(t, model.IsValidOrderStatus(model.OrderStatus("pending")))
}

func TestIsValidPaymentMethod(t *testing.T) {
	assert.True(t, model.IsValidPaymentMethod(model.PaymentMethodCashOnDelivery))
	assert.True(t, model.IsValidPaymentMethod(model.PaymentMethodCard))
	assert.True(t, model.IsValidPaymentMethod(model.PaymentMethodWallet))
	assert.True(t, model.IsValidPaymentMethod(model.PaymentMethodBankTransfer))

	assert.False(t, model.IsValidPaymentMethod(model.PaymentMethod("BITCOIN")))
	assert.False(t, model.IsValidPaymentMethod(model.PaymentMethod("")))
}
