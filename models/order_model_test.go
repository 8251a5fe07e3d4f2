package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOrder_SetStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("DeliveredImpliesPaid", func(t *testing.T) {
		o := Order{Status: OrderStatusShipped}
		o.SetStatus(OrderStatusDelivered, now)

		assert.Equal(t, OrderStatusDelivered, o.Status)
		assert.True(t, o.IsDelivered)
		assert.True(t, o.IsPaid)
		require.NotNil(t, o.DeliveredAt)
		require.NotNil(t, o.PaidAt)
		assert.Equal(t, now, *o.DeliveredAt)
		assert.Equal(t, now, *o.PaidAt)
	})

	t.Run("DeliveredStampsEvenWhenAlreadyPaid", func(t *testing.T) {
		earlier := now.Add(-24 * time.Hour)
		o := Order{Status: OrderStatusShipped, IsPaid: true, PaidAt: &earlier}
		o.SetStatus(OrderStatusDelivered, now)

		assert.True(t, o.IsPaid)
		assert.Equal(t, now, *o.PaidAt)
	})

	t.Run("OtherStatusesDoNotStamp", func(t *testing.T) {
		o := Order{Status: OrderStatusPending}
		o.SetStatus(OrderStatusProcessing, now)

		assert.Equal(t, OrderStatusProcessing, o.Status)
		assert.False(t, o.IsPaid)
		assert.False(t, o.IsDelivered)
		assert.Nil(t, o.PaidAt)
		assert.Nil(t, o.DeliveredAt)
	})
}

func TestNormalizeOrderItems(t *testing.T) {
	productId := primitive.NewObjectID()

	t.Run("BindsProductAndAssignsFreshId", func(t *testing.T) {
		items, err := NormalizeOrderItems([]OrderItemInput{
			{Id: productId.Hex(), Name: "widget", Quantity: 2, Price: 9.5},
		})
		require.NoError(t, err)
		require.Len(t, items, 1)

		assert.Equal(t, productId, items[0].Product)
		assert.NotEqual(t, productId, items[0].Id)
		assert.False(t, items[0].Id.IsZero())
		assert.Equal(t, "widget", items[0].Name)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, 9.5, items[0].Price)
		assert.Equal(t, OrderStatusPending, items[0].Status)
	})

	t.Run("RejectsMalformedProductId", func(t *testing.T) {
		_, err := NormalizeOrderItems([]OrderItemInput{{Id: "nope", Name: "x", Quantity: 1}})
		assert.Error(t, err)
	})
}

func TestVendorRevenue(t *testing.T) {
	vendorA := primitive.NewObjectID()
	vendorB := primitive.NewObjectID()
	ownedA := map[primitive.ObjectID]bool{vendorA: true}
	ownedB := map[primitive.ObjectID]bool{vendorB: true}

	// one order mixing both vendors' items
	mixed := Order{OrderItems: []OrderItem{
		{Product: vendorA, Price: 10, Quantity: 2},
		{Product: vendorB, Price: 100, Quantity: 1},
	}}
	onlyB := Order{OrderItems: []OrderItem{
		{Product: vendorB, Price: 5, Quantity: 3},
	}}
	orders := []Order{mixed, onlyB}

	t.Run("AttributesOnlyOwnItems", func(t *testing.T) {
		assert.Equal(t, 20.0, VendorRevenue(orders, ownedA))
		assert.Equal(t, 115.0, VendorRevenue(orders, ownedB))
	})

	t.Run("ContainsVendorItem", func(t *testing.T) {
		assert.True(t, mixed.ContainsVendorItem(ownedA))
		assert.True(t, mixed.ContainsVendorItem(ownedB))
		assert.False(t, onlyB.ContainsVendorItem(ownedA))
	})

	t.Run("NoOwnedProducts", func(t *testing.T) {
		assert.Equal(t, 0.0, VendorRevenue(orders, map[primitive.ObjectID]bool{}))
	})
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered} {
		assert.True(t, ValidOrderStatus(s), s)
	}
	assert.False(t, ValidOrderStatus("cancelled"))
	assert.False(t, ValidOrderStatus(""))
}
