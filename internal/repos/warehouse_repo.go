package repos

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"stockroom/internal/cache"
	"stockroom/internal/domain"
)

const homeCacheKey = "home:summaries"

type WarehouseRepo struct {
	db    *sqlx.DB
	cache cache.Client // nil disables caching
	ttl   time.Duration
}

func NewWarehouseRepo(db *sqlx.DB, c cache.Client, ttl time.Duration) *WarehouseRepo {
	return &WarehouseRepo{db: db, cache: c, ttl: ttl}
}

// WarehouseSummary is one home-dashboard row.
type WarehouseSummary struct {
	ID               int64  `db:"id" json:"id"`
	Name             string `db:"warehouse_name" json:"warehouse_name"`
	ProductCount     int    `db:"product_count" json:"product_count"`
	TotalQuantity    int    `db:"total_quantity" json:"total_quantity"`
	LowCapacityCount int    `db:"low_capacity_count" json:"low_capacity_count"`
}

// HomeSummaries returns every warehouse with inventory rollups,
// read-through cached when a cache client is configured.
func (r *WarehouseRepo) HomeSummaries(ctx context.Context) ([]WarehouseSummary, error) {
	if r.cache != nil {
		if raw, err := r.cache.Get(ctx, homeCacheKey); err == nil {
			var rows []WarehouseSummary
			if json.Unmarshal([]byte(raw), &rows) == nil {
				return rows, nil
			}
		}
		// miss or a real cache error: fall through to the store
	}

	var rows []WarehouseSummary
	err := r.db.Select(&rows, `
		SELECT w.id, w.warehouse_name,
		       COUNT(i.id) AS product_count,
		       COALESCE(SUM(i.quantity), 0) AS total_quantity,
		       COALESCE(SUM(CASE WHEN i.status = 'LOW_CAPACITY' THEN 1 ELSE 0 END), 0) AS low_capacity_count
		FROM Warehouse w
		LEFT JOIN Inventory i ON i.warehouse_id = w.id
		GROUP BY w.id, w.warehouse_name
		ORDER BY w.id
	`)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if b, err := json.Marshal(rows); err == nil {
			_ = r.cache.Set(ctx, homeCacheKey, string(b), r.ttl)
		}
	}
	return rows, nil
}

// InvalidateHome drops the cached dashboard after inventory mutations.
func (r *WarehouseRepo) InvalidateHome(ctx context.Context) {
	if r.cache != nil {
		_ = r.cache.Delete(ctx, homeCacheKey)
	}
}

// Name returns the display name for a warehouse id.
// Returns sql.ErrNoRows if the id does not resolve.
func (r *WarehouseRepo) Name(id int64) (string, error) {
	var name string
	err := r.db.Get(&name, `SELECT warehouse_name FROM Warehouse WHERE id = ?`, id)
	return name, err
}

// NamesByIDs resolves the given pair of warehouse ids to display names.
// Missing ids are simply absent from the result map.
func (r *WarehouseRepo) NamesByIDs(a, b int64) (map[int64]string, error) {
	var rows []domain.Warehouse
	err := r.db.Select(&rows, `SELECT id, warehouse_name FROM Warehouse WHERE id IN (?, ?)`, a, b)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(rows))
	for _, w := range rows {
		names[w.ID] = w.Name
	}
	return names, nil
}
