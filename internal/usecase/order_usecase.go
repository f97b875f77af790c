package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"delivery/internal/domain/model"
	repo "delivery/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderUsecase struct {
	tx  repo.TransactionManager
	log *zap.Logger
}

func NewOrderUsecase(tx repo.TransactionManager, log *zap.Logger) *OrderUsecase {
	return &OrderUsecase{tx: tx, log: log}
}

type OrderItemInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type CreateOrderInput struct {
	Items         []OrderItemInput
	PaymentMethod string
}

type OrderItemOutput struct {
	ProductID   int64   `json:"product_id"`
	Quantity    int64   `json:"quantity"`
	PriceAtTime float64 `json:"price_at_time"`
}

type OrderOutput struct {
	ID            int64             `json:"id"`
	UserID        int64             `json:"user_id"`
	ShopID        int64             `json:"shop_id"`
	Status        string            `json:"status"`
	PaymentMethod string            `json:"payment_method"`
	TipAmount     float64           `json:"tip_amount"`
	TotalAmount   float64           `json:"total_amount"`
	CreatedAt     time.Time         `json:"created_at"`
	Items         []OrderItemOutput `json:"items"`
}

// CreateOrder は在庫を条件付きで確保しつつ注文＋明細を1トランザクションで作る。
func (u *OrderUsecase) CreateOrder(ctx context.Context, userID int64, in CreateOrderInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if len(in.Items) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "items required")
	}
	payment := model.PaymentMethod(in.PaymentMethod)
	if !model.IsValidPaymentMethod(payment) {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment_method")
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
	}

	var out OrderOutput

	//注文処理はトランザクション（途中で失敗したら注文もヘッダも残らない）
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orderItems := make([]model.OrderItem, 0, len(in.Items))
		total := decimal.Zero
		var shopID int64

		for _, it := range in.Items {
			//商品取得
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, fmt.Sprintf("product %d not found", it.ProductID))
			}
			if err != nil {
				u.log.Error("find product failed", zap.Int64("product_id", it.ProductID), zap.Error(err))
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//複数ショップ混在は拒否
			if shopID != 0 && p.ShopID != shopID {
				return NewHTTPError(http.StatusBadRequest, "all items must belong to the same shop")
			}
			shopID = p.ShopID

			//在庫確保（足りないなら false。確保と判定を1回のUPDATEで行う）
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, it.ProductID, it.Quantity)
			if err != nil {
				u.log.Error("decrease stock failed", zap.Int64("product_id", it.ProductID), zap.Error(err))
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("insufficient stock for product %s", p.Name))
			}

			//単価スナップショット
			orderItems = append(orderItems, model.OrderItem{
				ProductID:   it.ProductID,
				Quantity:    it.Quantity,
				PriceAtTime: p.Price,
			})

			total = total.Add(p.Price.Mul(decimal.NewFromInt(it.Quantity)))
		}

		//注文作成
		now := time.Now()
		order := model.Order{
			UserID:        userID,
			ShopID:        shopID,
			Status:        model.OrderStatusPending,
			PaymentMethod: payment,
			TipAmount:     decimal.Zero,
			TotalAmount:   total,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			u.log.Error("create order failed", zap.Error(err))
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//注文明細一括作成
		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			u.log.Error("create order items failed", zap.Int64("order_id", orderID), zap.Error(err))
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		order.ID = orderID
		out = toOrderOutput(order, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func (u *OrderUsecase) GetMyOrder(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//他人の注文は「存在しない扱い」にする
		o, err := r.Orders().FindByIDForUser(ctx, orderID, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// UpdateStatus は遷移表にあるエッジだけを通す。CANCELLEDへの遷移はキャンセルAPI専用。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, userID int64, orderID int64, newStatus string) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	status := model.OrderStatus(newStatus)
	if !model.IsValidOrderStatus(status) {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByIDForUser(ctx, orderID, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//キャンセルは専用APIのみ（在庫戻しを伴うため）
		if status == model.OrderStatusCancelled {
			return NewHTTPError(http.StatusBadRequest, "use the cancel endpoint to cancel an order")
		}
		if !o.Status.CanTransition(status) {
			return NewHTTPError(http.StatusBadRequest, "invalid status transition")
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, status); err != nil {
			u.log.Error("update status failed", zap.Int64("order_id", orderID), zap.Error(err))
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o.Status = status
		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// UpdateTip はDELIVEREDのときだけチップを上書きする（加算ではない）。
func (u *OrderUsecase) UpdateTip(ctx context.Context, userID int64, orderID int64, tipAmount float64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if tipAmount < 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid tip_amount")
	}

	tip := decimal.NewFromFloat(tipAmount)
	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByIDForUser(ctx, orderID, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if o.Status != model.OrderStatusDelivered {
			return NewHTTPError(http.StatusBadRequest, "can only add tip to delivered orders")
		}

		if err := r.Orders().UpdateTip(ctx, orderID, tip); err != nil {
			u.log.Error("update tip failed", zap.Int64("order_id", orderID), zap.Error(err))
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o.TipAmount = tip
		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// CancelOrder はユーザー自身のキャンセル。PENDING/ACCEPTEDのみ。在庫を戻す。
func (u *OrderUsecase) CancelOrder(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByIDForUser(ctx, orderID, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return u.cancelInTx(ctx, r, o, &out)
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// VendorCancelOrder はベンダー側キャンセル。所有フィルタなし（idのみ）。
func (u *OrderUsecase) VendorCancelOrder(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return u.cancelInTx(ctx, r, o, &out)
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// RejectCancellation はキャンセルを取り消してACCEPTEDへ戻す。在庫を取り直す。
func (u *OrderUsecase) RejectCancellation(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if o.Status != model.OrderStatusCancelled {
			return NewHTTPError(http.StatusBadRequest, "order is not cancelled")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//キャンセル時に戻した在庫を取り直す。足りなければ却下できない
		for _, it := range items {
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, it.ProductID, it.Quantity)
			if err != nil {
				u.log.Error("decrease stock failed", zap.Int64("product_id", it.ProductID), zap.Error(err))
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusBadRequest, "insufficient stock to reject cancellation")
			}
		}

		if err := r.Orders().UpdateStatus(ctx, o.ID, model.OrderStatusAccepted); err != nil {
			u.log.Error("update status failed", zap.Int64("order_id", o.ID), zap.Error(err))
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o.Status = model.OrderStatusAccepted
		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// cancelInTx はtx内の共通キャンセル処理（状態チェック＋在庫戻し＋CANCELLED）。
func (u *OrderUsecase) cancelInTx(ctx context.Context, r repo.TxRepos, o model.Order, out *OrderOutput) error {
	if !o.Status.IsCancellable() {
		return NewHTTPError(http.StatusBadRequest, "can only cancel pending or accepted orders")
	}

	items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//在庫戻し
	for _, it := range items {
		if err := r.Inventory().IncreaseStock(ctx, it.ProductID, it.Quantity); err != nil {
			u.log.Error("increase stock failed", zap.Int64("product_id", it.ProductID), zap.Error(err))
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	if err := r.Orders().UpdateStatus(ctx, o.ID, model.OrderStatusCancelled); err != nil {
		u.log.Error("update status failed", zap.Int64("order_id", o.ID), zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	o.Status = model.OrderStatusCancelled
	*out = toOrderOutput(o, items)
	return nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			PriceAtTime: it.PriceAtTime.InexactFloat64(),
		})
	}

	return OrderOutput{
		ID:            o.ID,
		UserID:        o.UserID,
		ShopID:        o.ShopID,
		Status:        string(o.Status),
		PaymentMethod: string(o.PaymentMethod),
		TipAmount:     o.TipAmount.InexactFloat64(),
		TotalAmount:   o.TotalAmount.InexactFloat64(),
		CreatedAt:     o.CreatedAt,
		Items:         outItems,
	}
}
