package orderControllers

import (
	"testing"

	"github.com/noOne-33/stylora-api/apperr"
	"github.com/noOne-33/stylora-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanCancel(t *testing.T) {
	cancellable := []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusProcessing,
	}
	for _, s := range cancellable {
		assert.True(t, s.CanCancel(), "expected %s to be cancellable", s)
	}

	locked := []models.OrderStatus{
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
		models.OrderStatusFailed,
	}
	for _, s := range locked {
		assert.False(t, s.CanCancel(), "expected %s not to be cancellable", s)
	}
}

func TestMapOrderStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Processing", "Shipped", "Delivered", "Cancelled", "Failed"} {
		status, err := mapOrderStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatus(valid), status)
	}

	_, err := mapOrderStatus("Returned")
	require.Error(t, err)
	assert.Equal(t, apperr.Invalid, apperr.KindOf(err))

	// enum values are case sensitive
	_, err = mapOrderStatus("pending")
	assert.Error(t, err)
}

func TestGenerateOrderRef(t *testing.T) {
	a := generateOrderRef()
	b := generateOrderRef()
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^\d{14}-`, a)
}
