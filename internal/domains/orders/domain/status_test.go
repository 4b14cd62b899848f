package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Lifecycle(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, StatusInvalid.IsValid())
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("Pending").IsValid())

	assert.True(t, StatusDelivered.IsFinal())
	assert.False(t, StatusOutForDelivery.IsFinal())

	assert.True(t, StatusPending.CanDelete())
	assert.False(t, StatusPreparing.CanDelete())
	assert.False(t, StatusDelivered.CanDelete())

	assert.Equal(t, "pending, preparing, out-for-delivery, delivered", StatusList())
}
