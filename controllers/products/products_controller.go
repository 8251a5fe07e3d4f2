package controllers

import (
	"context"
	"strconv"
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

func productCollection() *mongo.Collection {
	return configs.GetCollection("products")
}

// GetProducts lists the catalog: keyword matches name or description
// case-insensitively, category matches exactly, and a vendor caller is
// implicitly scoped to their own products.
func GetProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	keyword := c.Query("keyword")
	category := c.Query("category")

	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}
	skip := (page - 1) * limit

	filter := bson.M{}
	if keyword != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": keyword, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": keyword, "$options": "i"}},
		}
	}
	if category != "" {
		filter["category"] = category
	}
	if identity, ok := middlewares.CurrentIdentity(c); ok && identity.Role == models.RoleVendor {
		filter["user"] = identity.Id
	}

	count, err := productCollection().CountDocuments(ctx, filter)
	if err != nil {
		return err
	}

	findOptions := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := productCollection().Find(ctx, filter, findOptions)
	if err != nil {
		return err
	}

	products := []models.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   count,
		"pages":   models.PageCount(count, limit),
		"data":    products,
	})
}

func GetProductById(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.NewApiError(fiber.StatusNotFound, "Product not Found!")
	}

	var product models.Product
	err = productCollection().FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return responses.NewApiError(fiber.StatusNotFound, "Product not Found!")
	} else if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// CreateProduct persists a product owned by the caller. Price and stock are
// taken as given; only the store schema rules apply.
func CreateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	identity, ok := middlewares.CurrentIdentity(c)
	if !ok {
		return responses.NewApiError(fiber.StatusUnauthorized, "you must be logged in!")
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, "Error parsing product data")
	}

	now := time.Now()
	product.Id = primitive.NewObjectID()
	product.User = identity.Id
	product.Reviews = []models.Review{}
	product.NumReviews = 0
	product.Rating = 0
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := validate.Struct(product); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, err.Error())
	}

	if _, err := productCollection().InsertOne(ctx, product); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "product created successfully!",
		"product": product,
	})
}

// UpdateProduct patches the mutable fields; absent fields keep their value.
func UpdateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.NewApiError(fiber.StatusNotFound, "product not found")
	}

	var patch models.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, "Error parsing product data")
	}
	if err := validate.Struct(patch); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, err.Error())
	}

	var product models.Product
	err = productCollection().FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return responses.NewApiError(fiber.StatusNotFound, "product not found")
	} else if err != nil {
		return err
	}

	patch.Apply(&product)
	product.UpdatedAt = time.Now()

	if _, err := productCollection().ReplaceOne(ctx, bson.M{"_id": product.Id}, product); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Product updated successfully!",
		"product": product,
	})
}

func DeleteProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.NewApiError(fiber.StatusNotFound, "product not found!")
	}

	result, err := productCollection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return responses.NewApiError(fiber.StatusNotFound, "product not found!")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "product deleted successfully!"})
}

// GetTopProducts returns the highest rated products, three by default.
func GetTopProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Limit int64 `json:"limit"`
	}
	limit := int64(3)
	if err := c.BodyParser(&reqBody); err == nil && reqBody.Limit > 0 {
		limit = reqBody.Limit
	}

	findOptions := options.Find().SetSort(bson.M{"rating": -1}).SetLimit(limit)
	cursor, err := productCollection().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return err
	}

	products := []models.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

type reviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// AddProductReview appends the caller's review, snapshotting their current
// name, and recomputes numReviews and the 2-decimal mean rating.
func AddProductReview(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	identity, ok := middlewares.CurrentIdentity(c)
	if !ok {
		return responses.NewApiError(fiber.StatusUnauthorized, "you must be logged in!")
	}

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.NewApiError(fiber.StatusNotFound, "product not found!")
	}

	var reqBody reviewRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(reqBody); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, err.Error())
	}

	var product models.Product
	err = productCollection().FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return responses.NewApiError(fiber.StatusNotFound, "product not found!")
	} else if err != nil {
		return err
	}

	review := models.Review{
		Name:      identity.Name,
		Rating:    reqBody.Rating,
		Comment:   reqBody.Comment,
		User:      identity.Id,
		CreatedAt: time.Now(),
	}
	if err := product.AddReview(review); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, err.Error())
	}
	product.UpdatedAt = time.Now()

	if _, err := productCollection().ReplaceOne(ctx, bson.M{"_id": product.Id}, product); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "product reviewed successfully!"})
}
