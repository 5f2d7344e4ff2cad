package models

import (
	"encoding/json"
	"time"
)

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses
	OrderStatusPending    OrderStatus = "pending"    // placed, awaiting payment
	OrderStatusProcessing OrderStatus = "processing" // payment in flight
	OrderStatusPaid       OrderStatus = "paid"       // payment verified
	OrderStatusShipped    OrderStatus = "shipped"    // out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // customer received the items
	OrderStatusCancelled  OrderStatus = "cancelled"  // cancelled before shipping
	OrderStatusFailed     OrderStatus = "failed"     // administratively failed

	// Payment statuses (independent of order status)
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusSuccess  PaymentStatus = "success"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef   string `gorm:"uniqueIndex;not null" json:"order_id"`
	CustomerID *uint  `gorm:"index" json:"customer_id"`

	// Gateway references from the payment processor.
	RazorpayOrderID   *string `gorm:"index" json:"razorpay_order_id"`
	RazorpayPaymentID *string `gorm:"uniqueIndex" json:"razorpay_payment_id"`
	RazorpaySignature *string `json:"-"`

	CustomerName  string  `gorm:"not null" json:"customer_name"`
	CustomerEmail string  `gorm:"not null" json:"customer_email"`
	CustomerPhone *string `json:"customer_phone"`

	ShippingAddress string  `gorm:"not null" json:"shipping_address"`
	ShippingCity    *string `json:"shipping_city"`
	ShippingState   *string `json:"shipping_state"`
	ShippingZip     *string `json:"shipping_zip"`
	ShippingCountry *string `json:"shipping_country"`

	// Items is an immutable snapshot of the purchased lines; later
	// catalog edits never change historical order content.
	Items json.RawMessage `gorm:"type:text" json:"items"`

	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`

	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderLine is one entry of the Items snapshot.
type OrderLine struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      *string `json:"size,omitempty"`
	Color     *string `json:"color,omitempty"`
	Image     string  `json:"image,omitempty"`
}
