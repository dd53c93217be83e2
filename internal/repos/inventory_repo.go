package repos

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"stockroom/internal/domain"
)

type InventoryRepo struct{ db *sqlx.DB }

func NewInventoryRepo(db *sqlx.DB) *InventoryRepo { return &InventoryRepo{db: db} }

// WarehouseProductRow is one line of the per-warehouse product listing.
// Capacity columns are nullable: not every inventory row has thresholds.
type WarehouseProductRow struct {
	ProductID          int64    `db:"product_id" json:"product_id"`
	ProductName        string   `db:"product_name" json:"product_name"`
	Quantity           int      `db:"quantity" json:"quantity"`
	Status             string   `db:"status" json:"status"`
	MaxCapacity        *int     `db:"max_capacity" json:"max_capacity"`
	CapacityPercentage *float64 `db:"capacity_percentage" json:"capacity_percentage"`
}

func (r *InventoryRepo) ListByWarehouse(warehouseID int64) ([]WarehouseProductRow, error) {
	var rows []WarehouseProductRow
	err := r.db.Select(&rows, `
		SELECT i.product_id, p.product_name, i.quantity, i.status,
		       wc.max_capacity, wc.capacity_percentage
		FROM Inventory i
		JOIN Product p ON p.id = i.product_id
		LEFT JOIN WarehouseCapacity wc
		  ON wc.warehouse_id = i.warehouse_id AND wc.product_id = i.product_id
		WHERE i.warehouse_id = ?
		ORDER BY p.product_name
	`, warehouseID)
	return rows, err
}

// FillRow is one replenishment candidate.
type FillRow struct {
	ProductID          int64   `db:"product_id" json:"product_id"`
	ProductName        string  `db:"product_name" json:"product_name"`
	Quantity           int     `db:"quantity" json:"quantity"`
	MaxCapacity        int     `db:"max_capacity" json:"max_capacity"`
	CapacityPercentage float64 `db:"capacity_percentage" json:"capacity_percentage"`
	QuantityToFill     int     `db:"quantity_to_fill" json:"quantity_to_fill"`
}

// FillCapacity lists inventory rows at or below their capacity threshold.
// The predicate avoids division: qty*100 <= max*pct.
func (r *InventoryRepo) FillCapacity(warehouseID int64) ([]FillRow, error) {
	var rows []FillRow
	err := r.db.Select(&rows, `
		SELECT i.product_id, p.product_name, i.quantity,
		       wc.max_capacity, wc.capacity_percentage,
		       (wc.max_capacity - i.quantity) AS quantity_to_fill
		FROM Inventory i
		JOIN Product p ON p.id = i.product_id
		JOIN WarehouseCapacity wc
		  ON wc.warehouse_id = i.warehouse_id AND wc.product_id = i.product_id
		WHERE i.warehouse_id = ?
		  AND i.quantity * 100 <= wc.max_capacity * wc.capacity_percentage
		ORDER BY p.product_name
	`, warehouseID)
	return rows, err
}

// SourceRow is the source-side lookup for one transfer item.
type SourceRow struct {
	Quantity    int    `db:"quantity"`
	ProductName string `db:"product_name"`
}

// Source returns the available quantity and product name in the source
// warehouse. Returns sql.ErrNoRows when no inventory row exists there.
// Runs on q so callers can scope it to a transaction.
func (r *InventoryRepo) Source(q sqlx.Ext, warehouseID, productID int64) (SourceRow, error) {
	var row SourceRow
	err := sqlx.Get(q, &row, `
		SELECT i.quantity, p.product_name
		FROM Inventory i
		JOIN Product p ON p.id = i.product_id
		WHERE i.warehouse_id = ? AND i.product_id = ?
	`, warehouseID, productID)
	return row, err
}

// Qty returns the current quantity for a (warehouse, product) pair.
func (r *InventoryRepo) Qty(warehouseID, productID int64) (int, error) {
	var qty int
	err := r.db.Get(&qty, `
		SELECT quantity FROM Inventory
		WHERE warehouse_id = ? AND product_id = ?
	`, warehouseID, productID)
	return qty, err
}

// Status returns the current status for a (warehouse, product) pair.
func (r *InventoryRepo) Status(warehouseID, productID int64) (string, error) {
	var status string
	err := r.db.Get(&status, `
		SELECT status FROM Inventory
		WHERE warehouse_id = ? AND product_id = ?
	`, warehouseID, productID)
	return status, err
}

// Decrement subtracts "by" units if enough stock exists.
func (r *InventoryRepo) Decrement(q sqlx.Ext, warehouseID, productID int64, by int) error {
	res, err := q.Exec(`
		UPDATE Inventory
		SET quantity = quantity - ?
		WHERE warehouse_id = ? AND product_id = ? AND quantity >= ?
	`, by, warehouseID, productID, by)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("insufficient stock for product %d in warehouse %d", productID, warehouseID)
	}
	return nil
}

// UpsertAdd adds qty to the destination row, creating it with
// GOOD_CAPACITY status if the warehouse had none of the product.
func (r *InventoryRepo) UpsertAdd(q sqlx.Ext, warehouseID, productID int64, qty int) error {
	_, err := q.Exec(`
		INSERT INTO Inventory(warehouse_id, product_id, quantity, status)
		VALUES (?, ?, ?, 'GOOD_CAPACITY')
		ON CONFLICT(warehouse_id, product_id)
		DO UPDATE SET quantity = quantity + excluded.quantity
	`, warehouseID, productID, qty)
	return err
}

type capacityRow struct {
	Quantity           int     `db:"quantity"`
	MaxCapacity        int     `db:"max_capacity"`
	CapacityPercentage float64 `db:"capacity_percentage"`
}

// RefreshStatus recomputes the capacity status from the current quantity.
// A pair without a WarehouseCapacity row is left untouched.
func (r *InventoryRepo) RefreshStatus(q sqlx.Ext, warehouseID, productID int64) error {
	var row capacityRow
	err := sqlx.Get(q, &row, `
		SELECT i.quantity, wc.max_capacity, wc.capacity_percentage
		FROM Inventory i
		JOIN WarehouseCapacity wc
		  ON wc.warehouse_id = i.warehouse_id AND wc.product_id = i.product_id
		WHERE i.warehouse_id = ? AND i.product_id = ?
	`, warehouseID, productID)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}

	status := domain.StatusFor(row.Quantity, row.MaxCapacity, row.CapacityPercentage)
	_, err = q.Exec(`
		UPDATE Inventory SET status = ?
		WHERE warehouse_id = ? AND product_id = ?
	`, status, warehouseID, productID)
	return err
}
