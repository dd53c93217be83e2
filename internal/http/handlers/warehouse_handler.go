package handlers

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/apperr"
	"stockroom/internal/domain"
	applog "stockroom/internal/log"
	"stockroom/internal/repos"
	"stockroom/internal/services"
	"stockroom/internal/validate"
)

type WarehouseHandler struct {
	Wh        *repos.WarehouseRepo
	Inv       *repos.InventoryRepo
	Transfers *services.TransferService
}

// GET /v1/warehouse/fill_capacity/?warehouse_id=
func (h *WarehouseHandler) FillCapacity(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Query("warehouse_id"))
	if !ok {
		return respondErr(c, apperr.Validation("warehouse_id query parameter is required"))
	}

	if _, err := h.Wh.Name(id); err != nil {
		if err == sql.ErrNoRows {
			return respondErr(c, apperr.NotFound("warehouse not found"))
		}
		applog.Error(c, "warehouse.fill_capacity.fail", err, map[string]any{"warehouse_id": id})
		return respondErr(c, err)
	}

	rows, err := h.Inv.FillCapacity(id)
	if err != nil {
		applog.Error(c, "warehouse.fill_capacity.fail", err, map[string]any{"warehouse_id": id})
		return respondErr(c, err)
	}
	return c.JSON(rows)
}

// PUT /v1/warehouse/transfer/
func (h *WarehouseHandler) Transfer(c *fiber.Ctx) error {
	var req domain.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid JSON body"))
	}

	transfers, err := h.Transfers.Transfer(c.Context(), req)
	if err != nil {
		applog.Error(c, "warehouse.transfer.fail", err, nil)
		return respondErr(c, err)
	}

	applog.Audit(c, "warehouse.transfer", map[string]any{
		"from_warehouse": req.FromWarehouse, "to_warehouse": req.ToWarehouse, "items": len(transfers),
	})
	return c.JSON(fiber.Map{
		"status":    "success",
		"message":   "products transferred successfully",
		"transfers": transfers,
	})
}
