package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stockroom/internal/apperr"
	"stockroom/internal/domain"
	"stockroom/internal/repos"
)

// Purchase orders are always associated with the primary warehouse.
const defaultWarehouseID = 1

// PurchaseOrderInput is the creation payload. Pointers distinguish
// absent fields from zero values.
type PurchaseOrderInput struct {
	SupplierID  *int64           `json:"supplier_id"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
}

type OrderService struct {
	Orders *repos.PurchaseOrderRepo
}

func NewOrderService(orders *repos.PurchaseOrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

func (s *OrderService) Create(in PurchaseOrderInput) (domain.PurchaseOrder, error) {
	if in.SupplierID == nil || in.TotalAmount == nil || !in.TotalAmount.IsPositive() {
		return domain.PurchaseOrder{}, apperr.Validation("supplier_id and a positive total_amount are required")
	}

	ok, err := s.Orders.SupplierExists(*in.SupplierID)
	if err != nil {
		return domain.PurchaseOrder{}, apperr.Store(err)
	}
	if !ok {
		return domain.PurchaseOrder{}, apperr.NotFound("supplier not found")
	}

	po, err := s.Orders.Create(uuid.NewString(), *in.SupplierID, defaultWarehouseID, *in.TotalAmount)
	if err != nil {
		// Constraint violations here stem from caller input, not the store.
		return domain.PurchaseOrder{}, apperr.Validation(err.Error())
	}
	return po, nil
}
