package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

type ShippingAddress struct {
	Address    string `bson:"address" json:"address" validate:"required"`
	City       string `bson:"city" json:"city" validate:"required"`
	PostalCode string `bson:"postalCode" json:"postalCode" validate:"required"`
	Country    string `bson:"country" json:"country" validate:"required"`
}

// OrderItem carries its own fulfillment status, independent from the
// order-level status: a vendor marks only their own line items while the
// order-level status is set by an administrator.
type OrderItem struct {
	Id       primitive.ObjectID `bson:"_id" json:"_id"`
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Name     string             `bson:"name" json:"name"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Price    float64            `bson:"price" json:"price"`
	Status   string             `bson:"status" json:"status"`
}

type Order struct {
	Id              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	User            primitive.ObjectID `bson:"user" json:"user"`
	OrderItems      []OrderItem        `bson:"orderItems" json:"orderItems"`
	ShippingAddress ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	ItemPrice       float64            `bson:"itemPrice" json:"itemPrice"`
	TaxPrice        float64            `bson:"taxPrice" json:"taxPrice"`
	ShippingCharge  float64            `bson:"shippingCharge" json:"shippingCharge"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice"`
	IsPaid          bool               `bson:"isPaid" json:"isPaid"`
	PaidAt          *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	IsDelivered     bool               `bson:"isDelivered" json:"isDelivered"`
	DeliveredAt     *time.Time         `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SetStatus applies an order-level status change. Delivery implies payment
// completion: "delivered" stamps both timestamps and flips both flags.
func (o *Order) SetStatus(status string, now time.Time) {
	o.Status = status
	if status == OrderStatusDelivered {
		o.IsDelivered = true
		o.IsPaid = true
		o.DeliveredAt = &now
		o.PaidAt = &now
	}
	o.UpdatedAt = now
}

// OrderItemInput is a cart line as the client sends it. The _id field is the
// product id; it is stripped and re-bound during normalization.
type OrderItemInput struct {
	Id       string  `json:"_id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"gte=0"`
}

// NormalizeOrderItems turns the client cart into order line items: the
// client-supplied id becomes the product reference, each line gets a fresh id
// and starts in the pending state.
func NormalizeOrderItems(items []OrderItemInput) ([]OrderItem, error) {
	normalized := make([]OrderItem, 0, len(items))
	for _, item := range items {
		productId, err := primitive.ObjectIDFromHex(item.Id)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, OrderItem{
			Id:       primitive.NewObjectID(),
			Product:  productId,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Status:   OrderStatusPending,
		})
	}
	return normalized, nil
}

// ContainsVendorItem reports whether any line item references one of the
// given product ids.
func (o Order) ContainsVendorItem(owned map[primitive.ObjectID]bool) bool {
	for _, item := range o.OrderItems {
		if owned[item.Product] {
			return true
		}
	}
	return false
}

// VendorRevenue sums price*quantity over only the line items whose product is
// in the owned set, across all given orders. Items belonging to other vendors
// never count.
func VendorRevenue(orders []Order, owned map[primitive.ObjectID]bool) float64 {
	total := 0.0
	for _, order := range orders {
		for _, item := range order.OrderItems {
			if owned[item.Product] {
				total += item.Price * float64(item.Quantity)
			}
		}
	}
	return total
}
