package repos

import (
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"stockroom/internal/domain"
)

type PurchaseOrderRepo struct{ db *sqlx.DB }

func NewPurchaseOrderRepo(db *sqlx.DB) *PurchaseOrderRepo { return &PurchaseOrderRepo{db: db} }

// SupplierExists reports whether a supplier id resolves.
func (r *PurchaseOrderRepo) SupplierExists(id int64) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM Supplier WHERE id = ?`, id); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts a purchase order and returns the created row,
// generated id included.
func (r *PurchaseOrderRepo) Create(reference string, supplierID, warehouseID int64, total decimal.Decimal) (domain.PurchaseOrder, error) {
	var po domain.PurchaseOrder
	err := r.db.QueryRowx(`
		INSERT INTO PurchaseOrder(reference, supplier_id, warehouse_id, total_amount, created_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		RETURNING id, reference, supplier_id, warehouse_id, total_amount, created_at
	`, reference, supplierID, warehouseID, total).StructScan(&po)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}
	return po, nil
}
