package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_ValidateNew(t *testing.T) {
	valid := User{Name: "Asha", Email: "asha@example.com", Password: "hashed", Role: RoleCustomer, Status: UserStatusActive}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid.ValidateNew())
	})

	t.Run("ShortName", func(t *testing.T) {
		u := valid
		u.Name = "Al"
		assert.Error(t, u.ValidateNew())
	})

	t.Run("BadEmail", func(t *testing.T) {
		u := valid
		u.Email = "not-an-email"
		assert.Error(t, u.ValidateNew())
	})

	t.Run("MissingPassword", func(t *testing.T) {
		u := valid
		u.Password = ""
		assert.Error(t, u.ValidateNew())
	})

	t.Run("UnknownRole", func(t *testing.T) {
		u := valid
		u.Role = "superuser"
		assert.Error(t, u.ValidateNew())
	})
}

func TestUser_PasswordNeverSerialized(t *testing.T) {
	u := User{Name: "Asha", Email: "asha@example.com", Password: "$2a$10$secret", Role: RoleCustomer}

	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")
}

func TestUserPatch_Apply(t *testing.T) {
	u := User{Name: "Asha", Email: "asha@example.com", Password: "old-hash"}

	name := "Asha K"
	UserPatch{Name: &name}.Apply(&u)

	assert.Equal(t, "Asha K", u.Name)
	assert.Equal(t, "asha@example.com", u.Email)
	assert.Equal(t, "old-hash", u.Password)
}

func TestAdminUserPatch_Apply(t *testing.T) {
	t.Run("IsApprovedFalseIsApplied", func(t *testing.T) {
		u := User{Name: "Vee", Role: RoleVendor, IsApproved: true}
		approved := false
		AdminUserPatch{IsApproved: &approved}.Apply(&u)

		assert.False(t, u.IsApproved)
		assert.Equal(t, RoleVendor, u.Role)
	})

	t.Run("AbsentFieldsUntouched", func(t *testing.T) {
		u := User{Name: "Vee", Email: "vee@example.com", Role: RoleVendor, Status: UserStatusActive}
		role := RoleCustomer
		AdminUserPatch{Role: &role}.Apply(&u)

		assert.Equal(t, RoleCustomer, u.Role)
		assert.Equal(t, "Vee", u.Name)
		assert.Equal(t, UserStatusActive, u.Status)
	})
}

func TestIdentity(t *testing.T) {
	u := User{Name: "Asha", Email: "asha@example.com", Password: "hash", Role: RoleAdmin}
	id := u.Identity()

	assert.Equal(t, "Asha", id.Name)
	assert.Equal(t, "asha@example.com", id.Email)
	assert.Equal(t, RoleAdmin, id.Role)
}
