package controllers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/configs"
	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/middlewares"
	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/models"
	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/responses"
)

var validate = validator.New()

func orderCollection() *mongo.Collection {
	return configs.GetCollection("orders")
}

func productCollection() *mongo.Collection {
	return configs.GetCollection("products")
}

func userCollection() *mongo.Collection {
	return configs.GetCollection("users")
}

type addOrderRequest struct {
	OrderItems      []models.OrderItemInput `json:"orderItems" validate:"required,min=1,dive"`
	ShippingAddress models.ShippingAddress  `json:"shippingAddress"`
	PaymentMethod   string                  `json:"paymentMethod" validate:"required"`
	ItemPrice       float64                 `json:"itemPrice"`
	TaxPrice        float64                 `json:"taxPrice"`
	ShippingCharge  float64                 `json:"shippingCharge"`
	TotalPrice      float64                 `json:"totalPrice"`
}

// AddOrders places an order from the caller's cart payload. Line items are
// normalized (client id stripped, product reference bound) and every
// referenced product must exist. Totals are stored as supplied by the client.
func AddOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	identity, ok := middlewares.CurrentIdentity(c)
	if !ok {
		return responses.NewApiError(fiber.StatusUnauthorized, "you must be logged in!")
	}

	var reqBody addOrderRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(reqBody); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, err.Error())
	}

	items, err := models.NormalizeOrderItems(reqBody.OrderItems)
	if err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, "invalid product id in order items")
	}

	distinct := map[primitive.ObjectID]bool{}
	ids := bson.A{}
	for _, item := range items {
		if !distinct[item.Product] {
			distinct[item.Product] = true
			ids = append(ids, item.Product)
		}
	}
	count, err := productCollection().CountDocuments(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return responses.NewApiError(fiber.StatusNotFound, "product not found!")
	}

	now := time.Now()
	order := models.Order{
		Id:              primitive.NewObjectID(),
		User:            identity.Id,
		OrderItems:      items,
		ShippingAddress: reqBody.ShippingAddress,
		PaymentMethod:   reqBody.PaymentMethod,
		ItemPrice:       reqBody.ItemPrice,
		TaxPrice:        reqBody.TaxPrice,
		ShippingCharge:  reqBody.ShippingCharge,
		TotalPrice:      reqBody.TotalPrice,
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := orderCollection().InsertOne(ctx, order); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed with id " + order.Id.Hex(),
		"orderId": order.Id,
	})
}

type buyerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type orderWithBuyer struct {
	models.Order
	User buyerInfo `json:"user"`
}

// attachBuyers joins each order's buyer name and email in memory, leaving the
// buyer's internal id out of the joined view. The two reads are not atomic;
// per-document atomicity is all the store guarantees.
func attachBuyers(ctx context.Context, users *mongo.Collection, orders []models.Order) ([]orderWithBuyer, error) {
	distinct := map[primitive.ObjectID]bool{}
	ids := bson.A{}
	for _, order := range orders {
		if !distinct[order.User] {
			distinct[order.User] = true
			ids = append(ids, order.User)
		}
	}

	buyers := map[primitive.ObjectID]buyerInfo{}
	if len(ids) > 0 {
		findOptions := options.Find().SetProjection(bson.M{"name": 1, "email": 1})
		cursor, err := users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, findOptions)
		if err != nil {
			return nil, err
		}
		var docs []models.User
		if err = cursor.All(ctx, &docs); err != nil {
			return nil, err
		}
		for _, u := range docs {
			buyers[u.Id] = buyerInfo{Name: u.Name, Email: u.Email}
		}
	}

	joined := make([]orderWithBuyer, 0, len(orders))
	for _, order := range orders {
		joined = append(joined, orderWithBuyer{Order: order, User: buyers[order.User]})
	}
	return joined, nil
}

// GetOrders returns every order with the buyer joined in.
func GetOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	cursor, err := orderCollection().Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	orders := []models.Order{}
	if err = cursor.All(ctx, &orders); err != nil {
		return err
	}

	joined, err := attachBuyers(ctx, userCollection(), orders)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(joined)
}

// GetMyOrders returns only the caller's orders.
func GetMyOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	identity, ok := middlewares.CurrentIdentity(c)
	if !ok {
		return responses.NewApiError(fiber.StatusUnauthorized, "you must be logged in!")
	}

	cursor, err := orderCollection().Find(ctx, bson.M{"user": identity.Id})
	if err != nil {
		return err
	}
	orders := []models.Order{}
	if err = cursor.All(ctx, &orders); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(orders)
}

func GetOrdersById(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.NewApiError(fiber.StatusNotFound, "Order not found!")
	}

	var order models.Order
	err = orderCollection().FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return responses.NewApiError(fiber.StatusNotFound, "Order not found!")
	} else if err != nil {
		return err
	}

	joined, err := attachBuyers(ctx, userCollection(), []models.Order{order})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(joined[0])
}

type updateOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered"`
}

// UpdateOrders sets the order-level status. Marking an order delivered also
// marks it paid and stamps both timestamps.
func UpdateOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.NewApiError(fiber.StatusNotFound, "Order not found!")
	}

	var reqBody updateOrderRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(reqBody); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, err.Error())
	}

	var order models.Order
	err = orderCollection().FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return responses.NewApiError(fiber.StatusNotFound, "Order not found!")
	} else if err != nil {
		return err
	}

	order.SetStatus(reqBody.Status, time.Now())

	if _, err := orderCollection().ReplaceOne(ctx, bson.M{"_id": order.Id}, order); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Order status updated to " + reqBody.Status,
		"data":    order,
	})
}
