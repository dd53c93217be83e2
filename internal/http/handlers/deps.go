package handlers

import (
	"time"

	"github.com/jmoiron/sqlx"

	"stockroom/internal/cache"
	"stockroom/internal/repos"
	"stockroom/internal/services"
)

type Deps struct {
	Admin     *AdminHandler
	Warehouse *WarehouseHandler
}

// NewDeps wires repos -> services -> handlers. cacheClient may be nil.
func NewDeps(db *sqlx.DB, cacheClient cache.Client, cacheTTL time.Duration) *Deps {
	whRepo := repos.NewWarehouseRepo(db, cacheClient, cacheTTL)
	invRepo := repos.NewInventoryRepo(db)
	receiptRepo := repos.NewReceiptRepo(db)
	orderRepo := repos.NewPurchaseOrderRepo(db)

	orderSvc := services.NewOrderService(orderRepo)
	transferSvc := services.NewTransferService(db, invRepo, whRepo)

	return &Deps{
		Admin: &AdminHandler{
			Wh:       whRepo,
			Inv:      invRepo,
			Receipts: receiptRepo,
			Orders:   orderSvc,
		},
		Warehouse: &WarehouseHandler{
			Wh:        whRepo,
			Inv:       invRepo,
			Transfers: transferSvc,
		},
	}
}
