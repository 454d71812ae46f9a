package token

import (
	"testing"
	"time"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/apperrors"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("secret", time.Hour)

	tok, err := svc.Issue(42, "Alice", models.RoleCustomer)
	assert.NoError(t, err)
	assert.NotEmpty(t, tok)

	identity, err := svc.Verify(tok)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), identity.AccountID)
	assert.Equal(t, "Alice", identity.Name)
	assert.Equal(t, models.RoleCustomer, identity.Role)
}

func TestVerifyMalformedToken(t *testing.T) {
	svc := NewService("secret", time.Hour)

	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthenticated, apperrors.KindOf(err))
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewService("secret", -time.Hour)

	tok, err := svc.Issue(1, "Bob", models.RoleOwner)
	assert.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthenticated, apperrors.KindOf(err))
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewService("secret-one", time.Hour)
	verifier := NewService("secret-two", time.Hour)

	tok, err := issuer.Issue(1, "Bob", models.RoleOwner)
	assert.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.Error(t, err)
}
