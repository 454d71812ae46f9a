package statemachine

import (
	"testing"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/apperrors"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestAllowedTransitions(t *testing.T) {
	assert.NoError(t, CanTransition(models.StatusPlaced, models.StatusPreparing))
	assert.NoError(t, CanTransition(models.StatusPlaced, models.StatusCancelled))
	assert.NoError(t, CanTransition(models.StatusPreparing, models.StatusDelivered))
	assert.NoError(t, CanTransition(models.StatusPreparing, models.StatusCancelled))
}

func TestRejectedTransitions(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
	}{
		{models.StatusPlaced, models.StatusDelivered},
		{models.StatusDelivered, models.StatusPlaced},
		{models.StatusDelivered, models.StatusCancelled},
		{models.StatusCancelled, models.StatusPlaced},
		{models.StatusCancelled, models.StatusPreparing},
		{models.StatusPreparing, models.StatusPlaced},
	}
	for _, tc := range cases {
		err := CanTransition(tc.from, tc.to)
		assert.Error(t, err, "expected %s -> %s to be rejected", tc.from, tc.to)
		assert.Equal(t, apperrors.KindInvalidTransition, apperrors.KindOf(err))
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.StatusPreparing, models.StatusCancelled},
		ValidTransitionsFrom(models.StatusPlaced))
	assert.Empty(t, ValidTransitionsFrom(models.StatusDelivered))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCancelled))
}
