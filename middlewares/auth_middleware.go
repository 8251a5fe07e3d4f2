package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/configs"
	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/models"
	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/responses"
	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/utils"
)

const identityKey = "user"

func userCollection() *mongo.Collection {
	return configs.GetCollection("users")
}

// resolveIdentity verifies the session token and loads the subject. Every
// failure mode returns the same error so callers cannot tell which check
// tripped.
func resolveIdentity(ctx context.Context, tokenString string) (models.Identity, error) {
	userId, err := utils.ParseToken(tokenString, configs.EnvJWTSecret())
	if err != nil {
		return models.Identity{}, err
	}

	objId, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return models.Identity{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var user models.User
	if err := userCollection().FindOne(ctx, bson.M{"_id": objId}).Decode(&user); err != nil {
		return models.Identity{}, err
	}
	return user.Identity(), nil
}

// CheckAuth rejects the request unless the jwt cookie resolves to a known
// user, then attaches the immutable identity to the request.
func CheckAuth(c *fiber.Ctx) error {
	tokenString := c.Cookies(utils.TokenCookie)
	if tokenString == "" {
		return responses.NewApiError(fiber.StatusUnauthorized, "you must be logged in!")
	}

	identity, err := resolveIdentity(c.Context(), tokenString)
	if err != nil {
		return responses.NewApiError(fiber.StatusUnauthorized, "Invalid Token!")
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// CheckAuthOptional resolves an identity when a valid cookie is present and
// continues anonymously otherwise. Used by the public product listing so
// vendor scoping applies when a vendor browses.
func CheckAuthOptional(c *fiber.Ctx) error {
	tokenString := c.Cookies(utils.TokenCookie)
	if tokenString == "" {
		return c.Next()
	}

	if identity, err := resolveIdentity(c.Context(), tokenString); err == nil {
		c.Locals(identityKey, identity)
	}
	return c.Next()
}

// CheckAdmin only reads the already-resolved identity; it never hits the
// store.
func CheckAdmin(c *fiber.Ctx) error {
	identity, ok := CurrentIdentity(c)
	if !ok || identity.Role != models.RoleAdmin {
		return responses.NewApiError(fiber.StatusForbidden, "you are not authorized to perform this operation!")
	}
	return c.Next()
}

func CheckVendor(c *fiber.Ctx) error {
	identity, ok := CurrentIdentity(c)
	if !ok || identity.Role != models.RoleVendor {
		return responses.NewApiError(fiber.StatusForbidden, "Only vendors are allowed to perform this operation!")
	}
	return c.Next()
}

// CurrentIdentity returns the identity CheckAuth attached, if any.
func CurrentIdentity(c *fiber.Ctx) (models.Identity, bool) {
	identity, ok := c.Locals(identityKey).(models.Identity)
	return identity, ok
}
