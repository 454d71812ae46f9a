package services

import (
	"testing"
	"time"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/apperrors"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T, adminEmail string) *AuthService {
	t.Helper()
	db := setupTestDB(t)
	tokens := token.NewService("test-secret", time.Hour)
	return NewAuthService(db, tokens, adminEmail)
}

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	svc := newAuthService(t, "")

	registered, tok, err := svc.Register("Alice", "alice@x.com", "secret1", models.RoleCustomer)
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.Equal(t, models.RoleCustomer, registered.Role)

	loggedIn, tok2, err := svc.Login("alice@x.com", "secret1", models.RoleCustomer)
	require.NoError(t, err)
	assert.NotEmpty(t, tok2)
	assert.Equal(t, registered.ID, loggedIn.ID)
}

func TestRegisterStoresNoPlaintextPassword(t *testing.T) {
	svc := newAuthService(t, "")

	user, _, err := svc.Register("Alice", "alice@x.com", "secret1", models.RoleCustomer)
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, svc.db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "secret1")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t, "")

	_, _, err := svc.Register("Alice", "alice@x.com", "secret1", models.RoleCustomer)
	require.NoError(t, err)

	_, _, err = svc.Register("Other Alice", "alice@x.com", "secret2", models.RoleOwner)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindDuplicate, apperrors.KindOf(err))

	// Case-insensitive and trimmed
	_, _, err = svc.Register("Alice", "  ALICE@X.COM ", "secret3", models.RoleCustomer)
	assert.Equal(t, apperrors.KindDuplicate, apperrors.KindOf(err))
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc := newAuthService(t, "")

	_, _, err := svc.Register("Eve", "eve@x.com", "secret1", models.RoleAdmin)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestRegisterPromotesInitialAdmin(t *testing.T) {
	svc := newAuthService(t, "root@x.com")

	user, _, err := svc.Register("Root", "root@x.com", "secret1", models.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	svc := newAuthService(t, "")

	_, _, err := svc.Register("Alice", "alice@x.com", "secret1", models.RoleCustomer)
	require.NoError(t, err)

	_, _, errUnknown := svc.Login("nobody@x.com", "secret1", "")
	_, _, errBadPass := svc.Login("alice@x.com", "wrong", "")
	_, _, errBadRole := svc.Login("alice@x.com", "secret1", models.RoleOwner)

	for _, err := range []error{errUnknown, errBadPass, errBadRole} {
		assert.Error(t, err)
		assert.Equal(t, apperrors.KindInvalidCredentials, apperrors.KindOf(err))
		assert.Equal(t, "invalid credentials", apperrors.MessageOf(err))
	}
}
