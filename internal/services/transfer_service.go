package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"stockroom/internal/apperr"
	"stockroom/internal/domain"
	"stockroom/internal/repos"
)

// TransferService moves product quantities between warehouses. The whole
// multi-item request runs inside one transaction: the first failing item
// rolls back every item processed before it.
type TransferService struct {
	DB  *sqlx.DB
	Inv *repos.InventoryRepo
	Wh  *repos.WarehouseRepo
}

func NewTransferService(db *sqlx.DB, inv *repos.InventoryRepo, wh *repos.WarehouseRepo) *TransferService {
	return &TransferService{DB: db, Inv: inv, Wh: wh}
}

var requiredTransferFields = []string{"from_warehouse", "to_warehouse", "products_to_get"}

func (s *TransferService) Transfer(ctx context.Context, req domain.TransferRequest) ([]domain.Transfer, error) {
	if req.FromWarehouse == nil || req.ToWarehouse == nil || req.Products == nil {
		return nil, apperr.ValidationWith("missing required fields",
			map[string]any{"required": requiredTransferFields})
	}
	if len(req.Products) == 0 {
		return nil, apperr.Validation("products_to_get must not be empty")
	}

	from, to := *req.FromWarehouse, *req.ToWarehouse
	if from == to {
		return nil, apperr.Conflict("source and destination warehouses must be different", nil)
	}

	names, err := s.Wh.NamesByIDs(from, to)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if len(names) != 2 {
		return nil, apperr.NotFound("one or both warehouses do not exist")
	}

	tx, err := s.DB.Beginx()
	if err != nil {
		return nil, apperr.Store(err)
	}
	defer tx.Rollback()

	transfers := make([]domain.Transfer, 0, len(req.Products))
	for _, item := range req.Products {
		if item.QuantityNeeded <= 0 {
			return nil, apperr.Validation(
				fmt.Sprintf("invalid quantity for product %d: must be greater than 0", item.ProductID))
		}

		src, err := s.Inv.Source(tx, from, item.ProductID)
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound(
				fmt.Sprintf("product %d not found in source warehouse", item.ProductID))
		}
		if err != nil {
			return nil, apperr.Store(err)
		}

		if src.Quantity < item.QuantityNeeded {
			return nil, apperr.Conflict(
				fmt.Sprintf("insufficient inventory for product %d", item.ProductID),
				map[string]any{"available": src.Quantity, "requested": item.QuantityNeeded})
		}

		if err := s.Inv.Decrement(tx, from, item.ProductID, item.QuantityNeeded); err != nil {
			return nil, apperr.Store(err)
		}
		if err := s.Inv.UpsertAdd(tx, to, item.ProductID, item.QuantityNeeded); err != nil {
			return nil, apperr.Store(err)
		}

		// Recompute capacity status, source side first.
		if err := s.Inv.RefreshStatus(tx, from, item.ProductID); err != nil {
			return nil, apperr.Store(err)
		}
		if err := s.Inv.RefreshStatus(tx, to, item.ProductID); err != nil {
			return nil, apperr.Store(err)
		}

		transfers = append(transfers, domain.Transfer{
			ProductID:     item.ProductID,
			ProductName:   src.ProductName,
			Quantity:      item.QuantityNeeded,
			FromWarehouse: names[from],
			ToWarehouse:   names[to],
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, apperr.Store(err)
	}

	s.Wh.InvalidateHome(ctx)
	return transfers, nil
}
