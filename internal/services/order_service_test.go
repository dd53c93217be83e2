package services_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/repos"
	"stockroom/internal/services"
)

func newOrderService(t *testing.T) *services.OrderService {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return services.NewOrderService(repos.NewPurchaseOrderRepo(db))
}

func orderInput(supplierID int64, amount string) services.PurchaseOrderInput {
	d := decimal.RequireFromString(amount)
	return services.PurchaseOrderInput{SupplierID: &supplierID, TotalAmount: &d}
}

func TestCreatePurchaseOrder(t *testing.T) {
	svc := newOrderService(t)

	po, err := svc.Create(orderInput(1, "150.50"))
	require.NoError(t, err)

	assert.Greater(t, po.ID, int64(1)) // id 1 is seeded
	assert.Equal(t, int64(1), po.SupplierID)
	assert.Equal(t, int64(1), po.WarehouseID) // default warehouse
	assert.True(t, po.TotalAmount.Equal(decimal.RequireFromString("150.50")))
	assert.NotEmpty(t, po.CreatedAt)
	_, err = uuid.Parse(po.Reference)
	assert.NoError(t, err)
}

func TestCreatePurchaseOrderMissingFields(t *testing.T) {
	svc := newOrderService(t)

	_, err := svc.Create(services.PurchaseOrderInput{})
	assert.Equal(t, http.StatusBadRequest, appStatus(t, err))

	// zero amount counts as missing
	_, err = svc.Create(orderInput(1, "0"))
	assert.Equal(t, http.StatusBadRequest, appStatus(t, err))
}

func TestCreatePurchaseOrderUnknownSupplier(t *testing.T) {
	svc := newOrderService(t)

	_, err := svc.Create(orderInput(99, "10"))
	assert.Equal(t, http.StatusNotFound, appStatus(t, err))
}
