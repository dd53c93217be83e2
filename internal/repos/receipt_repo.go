package repos

import (
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"stockroom/internal/domain"
)

type ReceiptRepo struct{ db *sqlx.DB }

func NewReceiptRepo(db *sqlx.DB) *ReceiptRepo { return &ReceiptRepo{db: db} }

// Detail returns one receipt with its items blob decoded into a list.
// Returns sql.ErrNoRows if the receipt id does not resolve.
func (r *ReceiptRepo) Detail(receiptID int64) (domain.ReceiptDetail, error) {
	var row struct {
		ID              int64  `db:"id"`
		PurchaseOrderID int64  `db:"purchase_order_id"`
		SupplierName    string `db:"supplier_name"`
		ReceivedAt      string `db:"received_at"`
		Items           string `db:"items"`
	}
	err := r.db.Get(&row, `
		SELECT pr.id, pr.purchase_order_id, s.supplier_name, pr.received_at, pr.items
		FROM ProductReceipt pr
		JOIN PurchaseOrder po ON po.id = pr.purchase_order_id
		JOIN Supplier s ON s.id = po.supplier_id
		WHERE pr.id = ?
	`, receiptID)
	if err != nil {
		return domain.ReceiptDetail{}, err
	}

	d := domain.ReceiptDetail{
		ID:              row.ID,
		PurchaseOrderID: row.PurchaseOrderID,
		SupplierName:    row.SupplierName,
		ReceivedAt:      row.ReceivedAt,
	}
	if err := json.Unmarshal([]byte(row.Items), &d.Items); err != nil {
		return domain.ReceiptDetail{}, fmt.Errorf("decode receipt %d items: %w", receiptID, err)
	}
	return d, nil
}
