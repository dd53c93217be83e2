package domain

import "github.com/shopspring/decimal"

// Inventory capacity statuses.
const (
	StatusGoodCapacity = "GOOD_CAPACITY"
	StatusLowCapacity  = "LOW_CAPACITY"
)

type Warehouse struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"warehouse_name" json:"warehouse_name"`
}

type Product struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"product_name" json:"product_name"`
}

type Supplier struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"supplier_name" json:"supplier_name"`
}

// Inventory is the quantity and status of one product in one warehouse.
// Unique per (warehouse_id, product_id).
type Inventory struct {
	ID          int64  `db:"id" json:"id"`
	WarehouseID int64  `db:"warehouse_id" json:"warehouse_id"`
	ProductID   int64  `db:"product_id" json:"product_id"`
	Quantity    int    `db:"quantity" json:"quantity"`
	Status      string `db:"status" json:"status"`
}

// WarehouseCapacity holds the thresholds used to classify Inventory
// status for one (warehouse, product) pair.
type WarehouseCapacity struct {
	ID                 int64   `db:"id" json:"id"`
	WarehouseID        int64   `db:"warehouse_id" json:"warehouse_id"`
	ProductID          int64   `db:"product_id" json:"product_id"`
	MaxCapacity        int     `db:"max_capacity" json:"max_capacity"`
	CapacityPercentage float64 `db:"capacity_percentage" json:"capacity_percentage"`
}

// StatusFor classifies a quantity against its capacity thresholds.
// GOOD_CAPACITY only when occupancy strictly exceeds the threshold:
// at max 100 / threshold 50, quantity 51 is GOOD and 50 is LOW.
func StatusFor(quantity, maxCapacity int, threshold float64) string {
	occupancy := float64(quantity) / float64(maxCapacity) * 100
	if occupancy > threshold {
		return StatusGoodCapacity
	}
	return StatusLowCapacity
}

type PurchaseOrder struct {
	ID          int64           `db:"id" json:"id"`
	Reference   string          `db:"reference" json:"reference"`
	SupplierID  int64           `db:"supplier_id" json:"supplier_id"`
	WarehouseID int64           `db:"warehouse_id" json:"warehouse_id"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"`
	CreatedAt   string          `db:"created_at" json:"created_at"`
}

// ReceiptItem is one line of a receipt's embedded items blob.
type ReceiptItem struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// ReceiptDetail is the receipt view with the items blob decoded.
type ReceiptDetail struct {
	ID              int64         `json:"id"`
	PurchaseOrderID int64         `json:"purchase_order_id"`
	SupplierName    string        `json:"supplier_name"`
	ReceivedAt      string        `json:"received_at"`
	Items           []ReceiptItem `json:"items"`
}

// TransferItem is one requested (product, quantity) movement.
type TransferItem struct {
	ProductID      int64 `json:"product_id"`
	QuantityNeeded int   `json:"quantity_needed"`
}

// TransferRequest is the transfer endpoint payload. Pointers distinguish
// absent fields from zero values.
type TransferRequest struct {
	FromWarehouse *int64         `json:"from_warehouse"`
	ToWarehouse   *int64         `json:"to_warehouse"`
	Products      []TransferItem `json:"products_to_get"`
}

// Transfer is one processed movement in the transfer result.
type Transfer struct {
	ProductID     int64  `json:"product_id"`
	ProductName   string `json:"product_name"`
	Quantity      int    `json:"quantity"`
	FromWarehouse string `json:"from_warehouse"`
	ToWarehouse   string `json:"to_warehouse"`
}
