package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"stockroom/internal/apperr"
	"stockroom/internal/domain"
	"stockroom/internal/repos"
	"stockroom/internal/services"
)

type transferEnv struct {
	db  *sqlx.DB
	inv *repos.InventoryRepo
	svc *services.TransferService
}

// Seeded fixture: warehouse 1 "Central Depot" holds Pallet Jack (40/50 cap,
// 50% threshold) and Shrink Wrap Roll (12); warehouse 2 "Harbor Annex"
// holds Pallet Jack (5/40 cap, 25% threshold) and Safety Cone (30).
func newTransferEnv(t *testing.T) transferEnv {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	inv := repos.NewInventoryRepo(db)
	wh := repos.NewWarehouseRepo(db, nil, 0)
	return transferEnv{db: db, inv: inv, svc: services.NewTransferService(db, inv, wh)}
}

func transferReq(from, to int64, items ...domain.TransferItem) domain.TransferRequest {
	return domain.TransferRequest{FromWarehouse: &from, ToWarehouse: &to, Products: items}
}

func appStatus(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	return apperr.From(err).Status
}

func TestTransferMovesQuantity(t *testing.T) {
	env := newTransferEnv(t)

	out, err := env.svc.Transfer(context.Background(),
		transferReq(1, 2, domain.TransferItem{ProductID: 1, QuantityNeeded: 10}))
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, domain.Transfer{
		ProductID:     1,
		ProductName:   "Pallet Jack",
		Quantity:      10,
		FromWarehouse: "Central Depot",
		ToWarehouse:   "Harbor Annex",
	}, out[0])

	// sum conserved across the two warehouses
	srcQty, err := env.inv.Qty(1, 1)
	require.NoError(t, err)
	dstQty, err := env.inv.Qty(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 30, srcQty)
	assert.Equal(t, 15, dstQty)

	// 30/50 = 60% > 50 stays GOOD; 15/40 = 37.5% > 25 flips to GOOD
	srcStatus, _ := env.inv.Status(1, 1)
	dstStatus, _ := env.inv.Status(2, 1)
	assert.Equal(t, domain.StatusGoodCapacity, srcStatus)
	assert.Equal(t, domain.StatusGoodCapacity, dstStatus)
}

func TestTransferCreatesDestinationRow(t *testing.T) {
	env := newTransferEnv(t)

	// Harbor Annex has no Shrink Wrap Roll row before the transfer
	out, err := env.svc.Transfer(context.Background(),
		transferReq(1, 2, domain.TransferItem{ProductID: 2, QuantityNeeded: 10}))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 10, out[0].Quantity)

	dstQty, err := env.inv.Qty(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, dstQty)
	dstStatus, err := env.inv.Status(2, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusGoodCapacity, dstStatus)

	srcQty, err := env.inv.Qty(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, srcQty)
}

func TestTransferExactAvailableQuantity(t *testing.T) {
	env := newTransferEnv(t)

	_, err := env.svc.Transfer(context.Background(),
		transferReq(1, 2, domain.TransferItem{ProductID: 1, QuantityNeeded: 40}))
	require.NoError(t, err)

	srcQty, err := env.inv.Qty(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, srcQty)
	srcStatus, _ := env.inv.Status(1, 1)
	assert.Equal(t, domain.StatusLowCapacity, srcStatus)
}

func TestTransferMissingFields(t *testing.T) {
	env := newTransferEnv(t)

	from := int64(1)
	_, err := env.svc.Transfer(context.Background(), domain.TransferRequest{FromWarehouse: &from})
	assert.Equal(t, http.StatusBadRequest, appStatus(t, err))
	assert.Equal(t, []string{"from_warehouse", "to_warehouse", "products_to_get"},
		apperr.From(err).Fields["required"])
}

func TestTransferSameWarehouse(t *testing.T) {
	env := newTransferEnv(t)

	_, err := env.svc.Transfer(context.Background(),
		transferReq(1, 1, domain.TransferItem{ProductID: 1, QuantityNeeded: 5}))
	assert.Equal(t, http.StatusBadRequest, appStatus(t, err))

	qty, _ := env.inv.Qty(1, 1)
	assert.Equal(t, 40, qty)
}

func TestTransferUnknownWarehouse(t *testing.T) {
	env := newTransferEnv(t)

	_, err := env.svc.Transfer(context.Background(),
		transferReq(1, 99, domain.TransferItem{ProductID: 1, QuantityNeeded: 5}))
	assert.Equal(t, http.StatusNotFound, appStatus(t, err))
}

func TestTransferInvalidQuantity(t *testing.T) {
	env := newTransferEnv(t)

	for _, qty := range []int{0, -3} {
		_, err := env.svc.Transfer(context.Background(),
			transferReq(1, 2, domain.TransferItem{ProductID: 1, QuantityNeeded: qty}))
		assert.Equal(t, http.StatusBadRequest, appStatus(t, err))
	}

	srcQty, _ := env.inv.Qty(1, 1)
	assert.Equal(t, 40, srcQty)
}

func TestTransferInsufficientInventory(t *testing.T) {
	env := newTransferEnv(t)

	_, err := env.svc.Transfer(context.Background(),
		transferReq(1, 2, domain.TransferItem{ProductID: 1, QuantityNeeded: 100}))
	assert.Equal(t, http.StatusBadRequest, appStatus(t, err))
	assert.Equal(t, 40, apperr.From(err).Fields["available"])
	assert.Equal(t, 100, apperr.From(err).Fields["requested"])

	srcQty, _ := env.inv.Qty(1, 1)
	assert.Equal(t, 40, srcQty)
}

func TestTransferRollsBackEarlierItemsOnFailure(t *testing.T) {
	env := newTransferEnv(t)

	// first item would succeed, second references a product the source
	// warehouse does not stock: nothing may persist
	_, err := env.svc.Transfer(context.Background(), transferReq(1, 2,
		domain.TransferItem{ProductID: 1, QuantityNeeded: 5},
		domain.TransferItem{ProductID: 3, QuantityNeeded: 1},
	))
	assert.Equal(t, http.StatusNotFound, appStatus(t, err))

	srcQty, err := env.inv.Qty(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 40, srcQty)
	dstQty, err := env.inv.Qty(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, dstQty)
}

func TestTransferMultipleItemsInOrder(t *testing.T) {
	env := newTransferEnv(t)

	out, err := env.svc.Transfer(context.Background(), transferReq(1, 2,
		domain.TransferItem{ProductID: 2, QuantityNeeded: 4},
		domain.TransferItem{ProductID: 1, QuantityNeeded: 3},
	))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ProductID)
	assert.Equal(t, int64(1), out[1].ProductID)
}
