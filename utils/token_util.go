package utils

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/configs"
)

const (
	TokenCookie = "jwt"
	tokenTTL    = 30 * 24 * time.Hour
)

// SignToken issues an HS256 token whose userId claim identifies the subject.
func SignToken(userId, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"userId": userId,
		"exp":    time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the userId claim.
func ParseToken(tokenString, secret string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	userId, ok := claims["userId"].(string)
	if !ok || userId == "" {
		return "", errors.New("invalid token")
	}
	return userId, nil
}

// CreateToken signs a session token for the user and sets it as an HTTP-only
// SameSite=Strict cookie.
func CreateToken(c *fiber.Ctx, userId primitive.ObjectID) error {
	signed, err := SignToken(userId.Hex(), configs.EnvJWTSecret(), tokenTTL)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    signed,
		Path:     "/",
		Expires:  time.Now().Add(tokenTTL),
		HTTPOnly: true,
		Secure:   configs.EnvAppEnv() == "production",
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return nil
}

// ClearToken expires the session cookie. Logout is client-side only; the
// token itself stays valid until its exp.
func ClearToken(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   configs.EnvAppEnv() == "production",
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
