package handlers

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/apperr"
	applog "stockroom/internal/log"
	"stockroom/internal/repos"
	"stockroom/internal/services"
	"stockroom/internal/validate"
)

type AdminHandler struct {
	Wh       *repos.WarehouseRepo
	Inv      *repos.InventoryRepo
	Receipts *repos.ReceiptRepo
	Orders   *services.OrderService
}

// GET /v1/administrative/home/
func (h *AdminHandler) Home(c *fiber.Ctx) error {
	rows, err := h.Wh.HomeSummaries(c.Context())
	if err != nil {
		applog.Error(c, "admin.home.fail", err, nil)
		return respondErr(c, err)
	}
	return c.JSON(rows)
}

// GET /v1/administrative/warehouse/products/?warehouse_id=
func (h *AdminHandler) WarehouseProducts(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Query("warehouse_id"))
	if !ok {
		return respondErr(c, apperr.Validation("warehouse_id query parameter is required"))
	}

	name, err := h.Wh.Name(id)
	if err == sql.ErrNoRows {
		return respondErr(c, apperr.NotFound("warehouse not found"))
	}
	if err != nil {
		applog.Error(c, "admin.warehouse.products.fail", err, map[string]any{"warehouse_id": id})
		return respondErr(c, err)
	}

	products, err := h.Inv.ListByWarehouse(id)
	if err != nil {
		applog.Error(c, "admin.warehouse.products.fail", err, map[string]any{"warehouse_id": id})
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{
		"warehouse_name": name,
		"products":       products,
	})
}

// GET /v1/administrative/product_receipt/detail/?receipt_id=
func (h *AdminHandler) ReceiptDetail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Query("receipt_id"))
	if !ok {
		return respondErr(c, apperr.Validation("receipt_id query parameter is required"))
	}

	detail, err := h.Receipts.Detail(id)
	if err == sql.ErrNoRows {
		return respondErr(c, apperr.NotFound("product receipt not found"))
	}
	if err != nil {
		applog.Error(c, "admin.receipt.detail.fail", err, map[string]any{"receipt_id": id})
		return respondErr(c, err)
	}
	return c.JSON(detail)
}

// POST /v1/administrative/purchase_order/create/
func (h *AdminHandler) CreatePurchaseOrder(c *fiber.Ctx) error {
	var in services.PurchaseOrderInput
	if err := c.BodyParser(&in); err != nil {
		return respondErr(c, apperr.Validation("invalid JSON body"))
	}

	po, err := h.Orders.Create(in)
	if err != nil {
		applog.Error(c, "admin.purchase_order.create.fail", err, nil)
		return respondErr(c, err)
	}

	applog.Audit(c, "admin.purchase_order.create", map[string]any{
		"order_id": po.ID, "supplier_id": po.SupplierID, "total_amount": po.TotalAmount.String(),
	})
	return c.Status(fiber.StatusCreated).JSON(po)
}
