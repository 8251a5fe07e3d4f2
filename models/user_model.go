package models

import (
	"errors"
	"regexp"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin    = "admin"
	RoleVendor   = "vendor"
	RoleCustomer = "customer"
)

const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
	UserStatusPending   = "pending"
)

var emailRegex = regexp.MustCompile(`^(([^<>()[\]\.,;:\s@\"]+(\.[^<>()[\]\.,;:\s@\"]+)*)|(\".+\"))@(([^<>()[\]\.,;:\s@\"]+\.)+[^<>()[\]\.,;:\s@\"]{2,})$`)

type User struct {
	Id               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name             string             `bson:"name" json:"name" validate:"required,min=3"`
	Email            string             `bson:"email" json:"email" validate:"required,email"`
	Password         string             `bson:"password" json:"-"`
	Role             string             `bson:"role" json:"role" validate:"required,oneof=admin vendor customer"`
	Status           string             `bson:"status" json:"status" validate:"required,oneof=active suspended pending"`
	IsApproved       bool               `bson:"isApproved" json:"isApproved"`
	StoreName        string             `bson:"storeName,omitempty" json:"storeName,omitempty"`
	StoreDescription string             `bson:"storeDescription,omitempty" json:"storeDescription,omitempty"`
	Avatar           string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Identity is the immutable tuple attached to a request after token
// resolution. It never carries the password hash.
type Identity struct {
	Id    primitive.ObjectID
	Name  string
	Email string
	Role  string
}

// PublicProfile is the user shape returned by signup and login.
type PublicProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u User) Profile() PublicProfile {
	return PublicProfile{Name: u.Name, Email: u.Email, Role: u.Role}
}

func (u User) Identity() Identity {
	return Identity{Id: u.Id, Name: u.Name, Email: u.Email, Role: u.Role}
}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleVendor || role == RoleCustomer
}

func ValidUserStatus(status string) bool {
	return status == UserStatusActive || status == UserStatusSuspended || status == UserStatusPending
}

// ValidateNew checks the rules the store requires before a user is persisted.
func (u User) ValidateNew() error {
	if utf8.RuneCountInString(u.Name) < 3 {
		return errors.New("name must be at least 3 characters long")
	}
	if !emailRegex.MatchString(u.Email) {
		return errors.New("invalid email address")
	}
	if u.Password == "" {
		return errors.New("password is required")
	}
	if !ValidRole(u.Role) {
		return errors.New("invalid role")
	}
	if !ValidUserStatus(u.Status) {
		return errors.New("invalid status")
	}
	return nil
}

// UserPatch is a self-service profile patch. A field is applied only when it
// is present in the request payload. Password hashing happens in the handler
// before Apply is called.
type UserPatch struct {
	Name     *string `json:"name" validate:"omitempty,min=3"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password"`
}

func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
}

// AdminUserPatch is the admin-side patch. Every field follows the same
// presence rule, so a provided false isApproved is applied.
type AdminUserPatch struct {
	Name       *string `json:"name" validate:"omitempty,min=3"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Role       *string `json:"role" validate:"omitempty,oneof=admin vendor customer"`
	Status     *string `json:"status" validate:"omitempty,oneof=active suspended pending"`
	IsApproved *bool   `json:"isApproved"`
}

func (p AdminUserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.IsApproved != nil {
		u.IsApproved = *p.IsApproved
	}
}
