package paymentControllers

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nanoflowsai-afk/prince-and-princess-backend/models"
	"gorm.io/gorm"
)

// ErrInvalidSignature means the callback failed HMAC verification; no
// order is ever persisted on this path.
var ErrInvalidSignature = errors.New("invalid payment signature")

// OrderDraft is the order content the client assembled before paying.
type OrderDraft struct {
	CustomerID      *uint           `json:"customer_id"`
	CustomerName    string          `json:"customer_name" binding:"required"`
	CustomerEmail   string          `json:"customer_email" binding:"required,email"`
	CustomerPhone   *string         `json:"customer_phone"`
	ShippingAddress string          `json:"shipping_address" binding:"required"`
	ShippingCity    *string         `json:"shipping_city"`
	ShippingState   *string         `json:"shipping_state"`
	ShippingZip     *string         `json:"shipping_zip"`
	ShippingCountry *string         `json:"shipping_country"`
	Items           json.RawMessage `json:"items" binding:"required"`
	Subtotal        float64         `json:"subtotal" binding:"min=0"`
	Shipping        float64         `json:"shipping" binding:"min=0"`
	Tax             float64         `json:"tax" binding:"min=0"`
	Total           float64         `json:"total" binding:"min=0"`
}

// VerifyPaymentInput carries the gateway references, the gateway
// signature, and the draft to persist on success.
type VerifyPaymentInput struct {
	GatewayOrderRef   string
	GatewayPaymentRef string
	Signature         string
	Draft             OrderDraft
}

func generateOrderRef() string {
	return "ORD_" + time.Now().Format("20060102150405") + "_" + uuid.NewString()[:8]
}

// VerifyPaymentAndCreateOrder authenticates the callback and persists a
// paid order exactly once per gateway payment reference: a duplicate
// delivery returns the already-created order instead of inserting a
// second row. Returns the order and whether this call created it.
func VerifyPaymentAndCreateOrder(db *gorm.DB, secret string, input VerifyPaymentInput) (*models.Order, bool, error) {
	if !VerifySignature(input.GatewayOrderRef, input.GatewayPaymentRef, input.Signature, secret) {
		return nil, false, ErrInvalidSignature
	}

	var order models.Order
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("razorpay_payment_id = ?", input.GatewayPaymentRef).First(&order).Error
		if err == nil {
			return nil // duplicate callback; keep the existing order
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		draft := input.Draft
		country := draft.ShippingCountry
		if country == nil {
			india := "India"
			country = &india
		}

		order = models.Order{
			OrderRef:          generateOrderRef(),
			CustomerID:        draft.CustomerID,
			RazorpayOrderID:   &input.GatewayOrderRef,
			RazorpayPaymentID: &input.GatewayPaymentRef,
			RazorpaySignature: &input.Signature,
			CustomerName:      draft.CustomerName,
			CustomerEmail:     draft.CustomerEmail,
			CustomerPhone:     draft.CustomerPhone,
			ShippingAddress:   draft.ShippingAddress,
			ShippingCity:      draft.ShippingCity,
			ShippingState:     draft.ShippingState,
			ShippingZip:       draft.ShippingZip,
			ShippingCountry:   country,
			Items:             draft.Items,
			Subtotal:          draft.Subtotal,
			Shipping:          draft.Shipping,
			Tax:               draft.Tax,
			Total:             draft.Total,
			Status:            models.OrderStatusPaid,
			PaymentStatus:     models.PaymentStatusSuccess,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &order, created, nil
}
