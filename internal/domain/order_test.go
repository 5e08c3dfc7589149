package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanAdvanceTo(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderDraft, OrderConfirmed, true},
		{OrderDraft, OrderDelivered, true},
		{OrderConfirmed, OrderPacked, true},
		{OrderPacked, OrderDelivered, true},
		{OrderConfirmed, OrderDraft, false},
		{OrderPacked, OrderConfirmed, false},
		{OrderDelivered, OrderPacked, false},
		{OrderConfirmed, OrderConfirmed, false},
		{OrderConfirmed, OrderStatus("bogus"), false},
		{OrderStatus("bogus"), OrderConfirmed, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanAdvanceTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestOrder_Validate(t *testing.T) {
	valid := Order{
		ID:           "o1",
		CustomerID:   "c1",
		VarietyID:    "v1",
		Quantity:     4,
		DeliveryDate: MustDay("2025-03-19"),
		Status:       OrderConfirmed,
	}
	require.NoError(t, valid.Validate())

	zeroQty := valid
	zeroQty.Quantity = 0
	assert.ErrorIs(t, zeroQty.Validate(), ErrInvalidQuantity)

	negQty := valid
	negQty.Quantity = -2
	assert.ErrorIs(t, negQty.Validate(), ErrInvalidQuantity)

	badStatus := valid
	badStatus.Status = "shipped"
	assert.Error(t, badStatus.Validate())

	noDate := valid
	noDate.DeliveryDate = Day{}
	assert.Error(t, noDate.Validate())
}

func TestOrder_AdvanceTo(t *testing.T) {
	now := time.Now().UTC()
	o := Order{Status: OrderConfirmed}

	require.NoError(t, o.AdvanceTo(OrderPacked, now))
	assert.Equal(t, OrderPacked, o.Status)
	assert.Equal(t, now, o.UpdatedAt)

	err := o.AdvanceTo(OrderConfirmed, now)
	assert.ErrorIs(t, err, ErrStatusRegression)
	assert.Equal(t, OrderPacked, o.Status, "failed advance must not mutate")
}

func TestPhase_TaskType(t *testing.T) {
	assert.Equal(t, TaskTypeDelivery, PhaseDeliver.TaskType())
	assert.Equal(t, TaskTypeSow, PhaseSow.TaskType())
	assert.Equal(t, TaskTypeWater, PhaseWater.TaskType())
}

func TestAllPhases_ExecutionOrder(t *testing.T) {
	want := []Phase{PhaseSoak, PhaseSow, PhaseSpray, PhaseLightsOn, PhaseWater, PhaseHarvest, PhaseDeliver}
	assert.Equal(t, want, AllPhases)
}
