package services

import (
	"testing"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/apperrors"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactCreateRequiresAllFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContactService(db)
	user := createUser(t, db, "Carla", "carla@x.com", models.RoleCustomer)

	cases := []struct {
		name    string
		userID  uint
		author  string
		email   string
		message string
	}{
		{"no user", 0, "Carla", "carla@x.com", "hello"},
		{"no name", user.ID, "", "carla@x.com", "hello"},
		{"no email", user.ID, "Carla", "", "hello"},
		{"no message", user.ID, "Carla", "carla@x.com", ""},
	}
	for _, tc := range cases {
		_, err := svc.Create(tc.userID, tc.author, tc.email, tc.message)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err), tc.name)
	}

	contact, err := svc.Create(user.ID, "Carla", "carla@x.com", "delivery was late")
	require.NoError(t, err)
	assert.Equal(t, user.ID, contact.UserID)
}

func TestContactGroupByUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContactService(db)
	carla := createUser(t, db, "Carla", "carla@x.com", models.RoleCustomer)
	dana := createUser(t, db, "Dana", "dana@x.com", models.RoleCustomer)

	for _, msg := range []string{"first", "second"} {
		_, err := svc.Create(carla.ID, "Carla", "carla@x.com", msg)
		require.NoError(t, err)
	}
	_, err := svc.Create(dana.ID, "Dana", "dana@x.com", "only one")
	require.NoError(t, err)

	groups, err := svc.GroupByUser()
	require.NoError(t, err)
	require.Len(t, groups, 2)

	byUser := map[uint]ContactGroup{}
	for _, g := range groups {
		byUser[g.User.ID] = g
	}
	assert.Equal(t, 2, byUser[carla.ID].MessageCount)
	assert.Len(t, byUser[carla.ID].Messages, 2)
	assert.Equal(t, "Carla", byUser[carla.ID].User.Name)
	assert.Equal(t, 1, byUser[dana.ID].MessageCount)
}

func TestContactDeleteAndStatistics(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContactService(db)
	carla := createUser(t, db, "Carla", "carla@x.com", models.RoleCustomer)
	dana := createUser(t, db, "Dana", "dana@x.com", models.RoleCustomer)

	first, err := svc.Create(carla.ID, "Carla", "carla@x.com", "first")
	require.NoError(t, err)
	_, err = svc.Create(carla.ID, "Carla", "carla@x.com", "second")
	require.NoError(t, err)
	_, err = svc.Create(dana.ID, "Dana", "dana@x.com", "third")
	require.NoError(t, err)

	stats, err := svc.Statistics()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalContacts)
	assert.Equal(t, int64(2), stats.UniqueUsers)

	require.NoError(t, svc.Delete(first.ID))
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(svc.Delete(first.ID)))

	deleted, err := svc.DeleteAll()
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	stats, err = svc.Statistics()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalContacts)
}
