package controllers

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/configs"
	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/middlewares"
	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/models"
	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/responses"
	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/utils"
)

var validate = validator.New()

func userCollection() *mongo.Collection {
	return configs.GetCollection("users")
}

type signupRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin vendor customer"`
}

// Signup registers a new user. The email must be unused; the password is
// stored only as a bcrypt hash.
func Signup(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody signupRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(reqBody); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, err.Error())
	}

	count, err := userCollection().CountDocuments(ctx, bson.M{"email": reqBody.Email})
	if err != nil {
		return err
	}
	if count > 0 {
		return responses.NewApiError(fiber.StatusConflict, fmt.Sprintf("User with email %s already exists", reqBody.Email))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(reqBody.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	role := reqBody.Role
	if role == "" {
		role = models.RoleCustomer
	}

	now := time.Now()
	user := models.User{
		Id:        primitive.NewObjectID(),
		Name:      reqBody.Name,
		Email:     reqBody.Email,
		Password:  string(hashed),
		Role:      role,
		Status:    models.UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := user.ValidateNew(); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, err.Error())
	}

	if _, err := userCollection().InsertOne(ctx, user); err != nil {
		return err
	}

	if err := utils.CreateToken(c, user.Id); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user.Profile(),
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates by email and password. The failure message is the same
// for an unknown email and a wrong password.
func Login(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody loginRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(reqBody); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, err.Error())
	}

	var user models.User
	err := userCollection().FindOne(ctx, bson.M{"email": reqBody.Email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return responses.NewApiError(fiber.StatusUnauthorized, "Invalid email or password")
	} else if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqBody.Password)) != nil {
		return responses.NewApiError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	if err := utils.CreateToken(c, user.Id); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"user":    user.Profile(),
	})
}

// Logout clears the session cookie.
func Logout(c *fiber.Ctx) error {
	utils.ClearToken(c)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logout successful"})
}

// GetUsers returns every user, password excluded. Admin only.
func GetUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := userCollection().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return err
	}

	users := []models.User{}
	if err = cursor.All(ctx, &users); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// UpdateUserProfile patches the caller's own name, email or password. Fields
// absent from the payload are untouched; role is not patchable here.
func UpdateUserProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	identity, ok := middlewares.CurrentIdentity(c)
	if !ok {
		return responses.NewApiError(fiber.StatusUnauthorized, "you must be logged in!")
	}

	var patch models.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(patch); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, err.Error())
	}

	var user models.User
	err := userCollection().FindOne(ctx, bson.M{"_id": identity.Id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return responses.NewApiError(fiber.StatusNotFound, "User not Found")
	} else if err != nil {
		return err
	}

	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hashedStr := string(hashed)
		patch.Password = &hashedStr
	}

	patch.Apply(&user)
	user.UpdatedAt = time.Now()

	if _, err := userCollection().ReplaceOne(ctx, bson.M{"_id": user.Id}, user); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User updated!",
		"user": fiber.Map{
			"_id":   user.Id,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// UpdateUser is the admin-side patch: name, email, role, status and
// isApproved, each applied only when present.
func UpdateUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.NewApiError(fiber.StatusNotFound, "User not Found!")
	}

	var patch models.AdminUserPatch
	if err := c.BodyParser(&patch); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(patch); err != nil {
		return responses.NewApiError(fiber.StatusBadRequest, err.Error())
	}

	var user models.User
	err = userCollection().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return responses.NewApiError(fiber.StatusNotFound, "User not Found!")
	} else if err != nil {
		return err
	}

	patch.Apply(&user)
	user.UpdatedAt = time.Now()

	if _, err := userCollection().ReplaceOne(ctx, bson.M{"_id": user.Id}, user); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User updated successfully",
		"user": fiber.Map{
			"_id":        user.Id,
			"name":       user.Name,
			"email":      user.Email,
			"role":       user.Role,
			"status":     user.Status,
			"isApproved": user.IsApproved,
		},
	})
}

// DeleteUser removes a user. Admin accounts are undeletable.
func DeleteUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.NewApiError(fiber.StatusNotFound, "User not found!")
	}

	var user models.User
	err = userCollection().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return responses.NewApiError(fiber.StatusNotFound, "User not found!")
	} else if err != nil {
		return err
	}

	if user.Role == models.RoleAdmin {
		return responses.NewApiError(fiber.StatusBadRequest, "Cannot delete admin")
	}

	if _, err := userCollection().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "user deleted"})
}

// GetPendingVendors lists vendor accounts still awaiting approval.
func GetPendingVendors(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"role": models.RoleVendor, "isApproved": false}
	findOptions := options.Find().SetProjection(bson.M{"password": 0})

	cursor, err := userCollection().Find(ctx, filter, findOptions)
	if err != nil {
		return err
	}

	vendors := []models.User{}
	if err = cursor.All(ctx, &vendors); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   len(vendors),
		"data":    vendors,
	})
}
