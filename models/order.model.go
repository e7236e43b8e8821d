package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment statuses
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

var orderStatuses = map[string]bool{
	OrderStatusPending:    true,
	OrderStatusProcessing: true,
	OrderStatusShipped:    true,
	OrderStatusDelivered:  true,
	OrderStatusCancelled:  true,
}

var paymentStatuses = map[string]bool{
	PaymentStatusPending:  true,
	PaymentStatusPaid:     true,
	PaymentStatusFailed:   true,
	PaymentStatusRefunded: true,
}

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool { return orderStatuses[s] }

// ValidPaymentStatus reports whether s is one of the known payment statuses.
func ValidPaymentStatus(s string) bool { return paymentStatuses[s] }

// Order is a customer order. OrderNumber is generated server-side at
// creation and is the externally visible identifier.
type Order struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	OrderNumber     string    `gorm:"size:100;not null;unique" json:"orderNumber"`
	CustomerID      string    `gorm:"size:36;not null;index" json:"customerId"`
	Status          string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	PaymentStatus   string    `gorm:"size:20;not null;default:'pending'" json:"paymentStatus"`
	PaymentMethod   *string   `gorm:"size:50" json:"paymentMethod"`
	Subtotal        string    `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Tax             string    `gorm:"type:decimal(10,2);default:0" json:"tax"`
	Shipping        string    `gorm:"type:decimal(10,2);default:0" json:"shipping"`
	Discount        string    `gorm:"type:decimal(10,2);default:0" json:"discount"`
	Total           string    `gorm:"type:decimal(10,2);not null" json:"total"`
	ShippingAddress *string   `gorm:"type:text" json:"shippingAddress"`
	BillingAddress  *string   `gorm:"type:text" json:"billingAddress"`
	Notes           *string   `gorm:"type:text" json:"notes"`
	TrackingNumber  *string   `gorm:"size:100" json:"trackingNumber"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem is an immutable snapshot of a product at order time, so later
// product edits never change historical orders.
type OrderItem struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	OrderID     string    `gorm:"size:36;not null;index" json:"orderId"`
	ProductID   string    `gorm:"size:36;not null" json:"productId"`
	ProductName string    `gorm:"size:255;not null" json:"productName"`
	ProductSKU  *string   `gorm:"column:product_sku;size:100" json:"productSku"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Price       string    `gorm:"type:decimal(10,2);not null" json:"price"`
	Total       string    `gorm:"type:decimal(10,2);not null" json:"total"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// InsertOrder is the creation payload for an order (order number excluded,
// always generated server-side).
type InsertOrder struct {
	CustomerID      string  `json:"customerId"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	PaymentMethod   *string `json:"paymentMethod"`
	Subtotal        Money   `json:"subtotal"`
	Tax             *Money  `json:"tax"`
	Shipping        *Money  `json:"shipping"`
	Discount        *Money  `json:"discount"`
	Total           Money   `json:"total"`
	ShippingAddress *string `json:"shippingAddress"`
	BillingAddress  *string `json:"billingAddress"`
	Notes           *string `json:"notes"`
	TrackingNumber  *string `json:"trackingNumber"`
}

func (in *InsertOrder) Validate() []ErrorDetail {
	var details []ErrorDetail
	if in.CustomerID == "" {
		details = append(details, required("customerId", "Le client est requis"))
	}
	if !in.Subtotal.Valid() {
		details = append(details, invalid("subtotal", "Le sous-total doit être un nombre décimal valide"))
	}
	if !in.Total.Valid() {
		details = append(details, invalid("total", "Le total doit être un nombre décimal valide"))
	}
	if in.Status != "" && !orderStatuses[in.Status] {
		details = append(details, invalid("status", "Statut de commande invalide"))
	}
	if in.PaymentStatus != "" && !paymentStatuses[in.PaymentStatus] {
		details = append(details, invalid("paymentStatus", "Statut de paiement invalide"))
	}
	return details
}

func (in *InsertOrder) Model() *Order {
	o := &Order{
		CustomerID:      in.CustomerID,
		Status:          in.Status,
		PaymentStatus:   in.PaymentStatus,
		PaymentMethod:   in.PaymentMethod,
		Subtotal:        string(in.Subtotal),
		Tax:             orZero(in.Tax),
		Shipping:        orZero(in.Shipping),
		Discount:        orZero(in.Discount),
		Total:           string(in.Total),
		ShippingAddress: in.ShippingAddress,
		BillingAddress:  in.BillingAddress,
		Notes:           in.Notes,
		TrackingNumber:  in.TrackingNumber,
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentStatusPending
	}
	return o
}

// InsertOrderItem is the creation payload for one line of an order.
// OrderID is assigned server-side from the enclosing order.
type InsertOrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	ProductSKU  *string `json:"productSku"`
	Quantity    int     `json:"quantity"`
	Price       Money   `json:"price"`
	Total       Money   `json:"total"`
}

func (in *InsertOrderItem) Validate() []ErrorDetail {
	var details []ErrorDetail
	if in.ProductID == "" {
		details = append(details, required("productId", "Le produit est requis"))
	}
	if in.ProductName == "" {
		details = append(details, required("productName", "Le nom du produit est requis"))
	}
	if in.Quantity <= 0 {
		details = append(details, invalid("quantity", "La quantité doit être supérieure à zéro"))
	}
	if !in.Price.Valid() {
		details = append(details, invalid("price", "Le prix doit être un nombre décimal valide"))
	}
	if !in.Total.Valid() {
		details = append(details, invalid("total", "Le total doit être un nombre décimal valide"))
	}
	return details
}

func (in *InsertOrderItem) Model() *OrderItem {
	return &OrderItem{
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
		ProductSKU:  in.ProductSKU,
		Quantity:    in.Quantity,
		Price:       string(in.Price),
		Total:       string(in.Total),
	}
}
