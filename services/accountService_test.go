package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velmart/velmart-api/models"
	"golang.org/x/crypto/bcrypt"
)

func TestRoleForEmailCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db, []string{"Boss@Example.com"})

	assert.Equal(t, models.RoleAdmin, accounts.RoleForEmail("boss@example.com"))
	assert.Equal(t, models.RoleAdmin, accounts.RoleForEmail("BOSS@EXAMPLE.COM"))
	assert.Equal(t, models.RoleClient, accounts.RoleForEmail("visitor@example.com"))
}

func TestRegisterAssignsRoleAndHashesPassword(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db, []string{"boss@example.com"})

	admin, err := accounts.Register("boss", "boss@example.com", "sup3rsecret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NotEqual(t, "sup3rsecret", admin.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("sup3rsecret")))

	client, err := accounts.Register("alice", "alice@example.com", "sup3rsecret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleClient, client.Role)
}

func TestRegisterDuplicate(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db, nil)

	_, err := accounts.Register("alice", "alice@example.com", "sup3rsecret")
	require.NoError(t, err)

	_, err = accounts.Register("alice2", "alice@example.com", "sup3rsecret")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = accounts.Register("alice", "other@example.com", "sup3rsecret")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db, nil)

	_, err := accounts.Register("alice", "alice@example.com", "sup3rsecret")
	require.NoError(t, err)

	user, err := accounts.Authenticate("alice@example.com", "sup3rsecret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = accounts.Authenticate("alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = accounts.Authenticate("nobody@example.com", "sup3rsecret")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoginWithGoogleCreatesAccountOnce(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db, []string{"boss@example.com"})

	user, err := accounts.LoginWithGoogle("boss@example.com", "Boss", "google-sub-1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	again, err := accounts.LoginWithGoogle("boss@example.com", "Boss", "google-sub-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPromoteByEmail(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db, nil)

	assert.ErrorIs(t, accounts.PromoteByEmail("ghost@example.com"), ErrNotFound)

	user, err := accounts.Register("alice", "Alice@Example.com", "sup3rsecret")
	require.NoError(t, err)
	require.Equal(t, models.RoleClient, user.Role)

	require.NoError(t, accounts.PromoteByEmail("alice@example.com"))

	reloaded, err := accounts.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, reloaded.Role)
}

func TestRevokeAdminSelfLockout(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db, []string{"boss@example.com"})

	boss, err := accounts.Register("boss", "boss@example.com", "sup3rsecret")
	require.NoError(t, err)

	err = accounts.RevokeAdmin(boss.ID, boss.ID)
	assert.ErrorIs(t, err, ErrSelfRevoke)

	reloaded, err := accounts.GetByID(boss.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, reloaded.Role, "self-revocation must leave the role unchanged")
}

func TestRevokeAdmin(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db, []string{"boss@example.com", "second@example.com"})

	boss, err := accounts.Register("boss", "boss@example.com", "sup3rsecret")
	require.NoError(t, err)
	second, err := accounts.Register("second", "second@example.com", "sup3rsecret")
	require.NoError(t, err)

	require.NoError(t, accounts.RevokeAdmin(boss.ID, second.ID))

	reloaded, err := accounts.GetByID(second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleClient, reloaded.Role)
}

func TestResetPasswordSingleUse(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db, nil)

	_, err := accounts.Register("alice", "alice@example.com", "oldpassword")
	require.NoError(t, err)

	_, token, err := accounts.CreateResetToken("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, accounts.ResetPassword(token, "newpassword"))

	_, err = accounts.Authenticate("alice@example.com", "newpassword")
	require.NoError(t, err)
	_, err = accounts.Authenticate("alice@example.com", "oldpassword")
	assert.ErrorIs(t, err, ErrWrongPassword)

	assert.ErrorIs(t, accounts.ResetPassword(token, "anotherpassword"), ErrNotFound, "a reset token is single-use")
	assert.ErrorIs(t, accounts.ResetPassword("bogus-token", "whatever"), ErrNotFound)
}

func TestUpdateProfilePasswordChangeRequiresCurrent(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db, nil)

	user, err := accounts.Register("alice", "alice@example.com", "oldpassword")
	require.NoError(t, err)

	err = accounts.UpdateProfile(user.ID, "alice", "alice@example.com", "wrong", "newpassword")
	assert.ErrorIs(t, err, ErrWrongPassword)

	require.NoError(t, accounts.UpdateProfile(user.ID, "alicia", "alicia@example.com", "oldpassword", "newpassword"))

	updated, err := accounts.Authenticate("alicia@example.com", "newpassword")
	require.NoError(t, err)
	assert.Equal(t, "alicia", updated.Username)
}
