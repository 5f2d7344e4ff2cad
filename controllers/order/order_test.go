package orderControllers_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	orderControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/order"
	"github.com/nanoflowsai-afk/prince-and-princess-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(
		sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())),
		&gorm.Config{TranslateError: true},
	)
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, ref string) models.Order {
	items, _ := json.Marshal([]models.OrderLine{{ProductID: 1, Name: "Frock", Price: 499, Quantity: 1}})
	order := models.Order{
		OrderRef:        ref,
		CustomerName:    "Meera Iyer",
		CustomerEmail:   "meera@example.com",
		ShippingAddress: "4 Beach Road, Chennai",
		Items:           items,
		Total:           499,
		Status:          models.OrderStatusPaid,
		PaymentStatus:   models.PaymentStatusSuccess,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	return order
}

func TestUpdateOrderStatusWhitelist(t *testing.T) {
	db := newTestDB(t)
	seedOrder(t, db, "ORD_TEST_1")

	// Unknown status is rejected and the row stays untouched.
	updated, err := orderControllers.UpdateOrderStatus(db, "ORD_TEST_1", "teleported")
	assert.ErrorIs(t, err, orderControllers.ErrInvalidStatus)
	assert.Nil(t, updated)

	current, err := orderControllers.GetOrderByRef(db, "ORD_TEST_1")
	assert.NoError(t, err)
	if assert.NotNil(t, current) {
		assert.Equal(t, models.OrderStatusPaid, current.Status)
	}

	// Whitelisted values apply, case-insensitively.
	updated, err = orderControllers.UpdateOrderStatus(db, "ORD_TEST_1", "Shipped")
	assert.NoError(t, err)
	if assert.NotNil(t, updated) {
		assert.Equal(t, models.OrderStatusShipped, updated.Status)
	}
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	db := newTestDB(t)

	updated, err := orderControllers.UpdateOrderStatus(db, "ORD_MISSING", "shipped")
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUpdatePaymentStatusIndependentOfOrderStatus(t *testing.T) {
	db := newTestDB(t)
	seedOrder(t, db, "ORD_TEST_2")

	updated, err := orderControllers.UpdatePaymentStatus(db, "ORD_TEST_2", "refunded")
	assert.NoError(t, err)
	if assert.NotNil(t, updated) {
		assert.Equal(t, models.PaymentStatusRefunded, updated.PaymentStatus)
		assert.Equal(t, models.OrderStatusPaid, updated.Status, "order status must be untouched")
	}

	updated, err = orderControllers.UpdatePaymentStatus(db, "ORD_TEST_2", "charged-back")
	assert.ErrorIs(t, err, orderControllers.ErrInvalidPaymentStatus)
	assert.Nil(t, updated)
}

func TestApplyOrderPatch(t *testing.T) {
	db := newTestDB(t)
	seedOrder(t, db, "ORD_TEST_3")

	status := "delivered"
	paymentRef := "pay_patch"
	ok, err := orderControllers.ApplyOrderPatch(db, "ORD_TEST_3", orderControllers.OrderPatch{
		Status:            &status,
		RazorpayPaymentID: &paymentRef,
	})
	assert.NoError(t, err)
	assert.True(t, ok)

	current, err := orderControllers.GetOrderByRef(db, "ORD_TEST_3")
	assert.NoError(t, err)
	if assert.NotNil(t, current) {
		assert.Equal(t, models.OrderStatusDelivered, current.Status)
		if assert.NotNil(t, current.RazorpayPaymentID) {
			assert.Equal(t, "pay_patch", *current.RazorpayPaymentID)
		}
		// Untouched fields keep their values.
		assert.Equal(t, models.PaymentStatusSuccess, current.PaymentStatus)
	}
}

func TestApplyOrderPatchEmptyAndInvalid(t *testing.T) {
	db := newTestDB(t)
	seedOrder(t, db, "ORD_TEST_4")

	// A patch with no fields set writes nothing.
	ok, err := orderControllers.ApplyOrderPatch(db, "ORD_TEST_4", orderControllers.OrderPatch{})
	assert.NoError(t, err)
	assert.False(t, ok)

	// An invalid status poisons the whole patch.
	bad := "lost-in-transit"
	customerID := uint(9)
	ok, err = orderControllers.ApplyOrderPatch(db, "ORD_TEST_4", orderControllers.OrderPatch{
		CustomerID: &customerID,
		Status:     &bad,
	})
	assert.ErrorIs(t, err, orderControllers.ErrInvalidStatus)
	assert.False(t, ok)

	current, err := orderControllers.GetOrderByRef(db, "ORD_TEST_4")
	assert.NoError(t, err)
	if assert.NotNil(t, current) {
		assert.Nil(t, current.CustomerID, "rejected patch must not apply partially")
	}
}

func TestGetOrdersByCustomerID(t *testing.T) {
	db := newTestDB(t)

	customerID := uint(5)
	first := seedOrder(t, db, "ORD_CUST_1")
	assert.NoError(t, db.Model(&first).Update("customer_id", customerID).Error)
	seedOrder(t, db, "ORD_CUST_2") // belongs to nobody

	orders, err := orderControllers.GetOrdersByCustomerID(db, customerID)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "ORD_CUST_1", orders[0].OrderRef)
}
