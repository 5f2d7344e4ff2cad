package orderControllers

import (
	"errors"
	"strings"

	"github.com/nanoflowsai-afk/prince-and-princess-backend/models"
	"gorm.io/gorm"
)

// ErrInvalidStatus is returned for a status value outside the fixed
// vocabulary; the order row stays untouched.
var ErrInvalidStatus = errors.New("invalid order status")

// ErrInvalidPaymentStatus is the payment_status counterpart.
var ErrInvalidPaymentStatus = errors.New("invalid payment status")

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusPaid):
		return models.OrderStatusPaid, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	case string(models.OrderStatusFailed):
		return models.OrderStatusFailed, nil
	default:
		return "", ErrInvalidStatus
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.PaymentStatusPending):
		return models.PaymentStatusPending, nil
	case string(models.PaymentStatusSuccess):
		return models.PaymentStatusSuccess, nil
	case string(models.PaymentStatusFailed):
		return models.PaymentStatusFailed, nil
	case string(models.PaymentStatusRefunded):
		return models.PaymentStatusRefunded, nil
	default:
		return "", ErrInvalidPaymentStatus
	}
}

func GetAllOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func GetOrderByRef(db *gorm.DB, orderRef string) (*models.Order, error) {
	var order models.Order
	err := db.Where("order_ref = ?", orderRef).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func GetOrdersByCustomerID(db *gorm.DB, customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.Where("customer_id = ?", customerID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// UpdateOrderStatus sets the order status after whitelisting the target
// value. Returns the updated order, or nil when no such order exists.
func UpdateOrderStatus(db *gorm.DB, orderRef, status string) (*models.Order, error) {
	newStatus, err := mapOrderStatus(status)
	if err != nil {
		return nil, err
	}
	result := db.Model(&models.Order{}).Where("order_ref = ?", orderRef).
		Update("status", newStatus)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return GetOrderByRef(db, orderRef)
}

// UpdatePaymentStatus sets payment_status, which is independent of the
// order status.
func UpdatePaymentStatus(db *gorm.DB, orderRef, paymentStatus string) (*models.Order, error) {
	newStatus, err := mapPaymentStatus(paymentStatus)
	if err != nil {
		return nil, err
	}
	result := db.Model(&models.Order{}).Where("order_ref = ?", orderRef).
		Update("payment_status", newStatus)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return GetOrderByRef(db, orderRef)
}

// OrderPatch is a partial update; only non-nil fields are written.
type OrderPatch struct {
	CustomerID        *uint   `json:"customer_id"`
	RazorpayOrderID   *string `json:"razorpay_order_id"`
	RazorpayPaymentID *string `json:"razorpay_payment_id"`
	Status            *string `json:"status"`
	PaymentStatus     *string `json:"payment_status"`
}

// ApplyOrderPatch builds a parameterized update from the present fields.
// An empty patch reports false. Status fields go through the same
// whitelists as the dedicated setters.
func ApplyOrderPatch(db *gorm.DB, orderRef string, patch OrderPatch) (bool, error) {
	updates := make(map[string]interface{})

	if patch.CustomerID != nil {
		updates["customer_id"] = *patch.CustomerID
	}
	if patch.RazorpayOrderID != nil {
		updates["razorpay_order_id"] = *patch.RazorpayOrderID
	}
	if patch.RazorpayPaymentID != nil {
		updates["razorpay_payment_id"] = *patch.RazorpayPaymentID
	}
	if patch.Status != nil {
		status, err := mapOrderStatus(*patch.Status)
		if err != nil {
			return false, err
		}
		updates["status"] = status
	}
	if patch.PaymentStatus != nil {
		status, err := mapPaymentStatus(*patch.PaymentStatus)
		if err != nil {
			return false, err
		}
		updates["payment_status"] = status
	}

	if len(updates) == 0 {
		return false, nil
	}

	result := db.Model(&models.Order{}).Where("order_ref = ?", orderRef).Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
