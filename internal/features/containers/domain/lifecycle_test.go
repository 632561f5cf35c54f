package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateInput() CreateInput {
	return CreateInput{
		ID:          "cont-01-w24/24",
		Supplier:    "Madeireira Sul",
		WindowStart: "2024-06-10",
		WindowEnd:   "2024-06-14",
		Items: []Item{
			{Description: "Plank A 1000x250x200", RequestedQuantity: "10", ExplicitVolume: "0,5"},
			{Description: "  ", RequestedQuantity: "3"},
			{Description: "Viga 3000x100x50", RequestedQuantity: "4", ExplicitVolume: "0.06"},
		},
	}
}

func TestNewContainer(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		c, err := NewContainer(validCreateInput())
		require.NoError(t, err)

		assert.Equal(t, "CONT-01-W24/24", c.ID)
		assert.Equal(t, StatusPlanning, c.Status)
		assert.Equal(t, DefaultPriority, c.Priority)
		require.Len(t, c.Items, 2)
		assert.False(t, c.Items[0].IsExtra)
		assert.Empty(t, c.Items[0].ShippedQuantity)
		assert.True(t, decimal.RequireFromString("0.56").Equal(c.TotalPlannedVolume()))
	})

	tests := []struct {
		name   string
		mutate func(in *CreateInput)
		err    error
	}{
		{name: "Missing supplier", mutate: func(in *CreateInput) { in.Supplier = " " }, err: ErrSupplierRequired},
		{name: "Missing start", mutate: func(in *CreateInput) { in.WindowStart = "" }, err: ErrInvalidWindow},
		{name: "End before start", mutate: func(in *CreateInput) { in.WindowEnd = "2024-06-09" }, err: ErrInvalidWindow},
		{name: "No items", mutate: func(in *CreateInput) { in.Items = []Item{{Description: ""}} }, err: ErrNoPlannedItems},
		{
			name: "Duplicate material after normalization",
			mutate: func(in *CreateInput) {
				in.Items = append(in.Items, Item{Description: "plank a 1000X250X200", RequestedQuantity: "1"})
			},
			err: ErrDuplicateMaterial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreateInput()
			tt.mutate(&in)

			c, err := NewContainer(in)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, c)
		})
	}
}

func TestContainer_RegisterShipment(t *testing.T) {
	t.Run("Moves planning to transit", func(t *testing.T) {
		c, err := NewContainer(validCreateInput())
		require.NoError(t, err)

		err = c.RegisterShipment(ShipmentInput{
			Invoice:           "NF 1234",
			PickupDate:        "2024-06-12",
			ArrivalDate:       "2024-07-20",
			ShippedQuantities: []string{"12", " 4 "},
			Extras: []Item{
				{Description: "Plank Z 1000x100x100", RequestedQuantity: "5"},
				{Description: ""},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, StatusTransit, c.Status)
		assert.Equal(t, "NF 1234", c.Invoice)
		assert.Equal(t, "2024-07-20", c.ArrivalDate)
		require.Len(t, c.Items, 3)
		assert.Equal(t, "12", c.Items[0].ShippedQuantity)
		assert.Equal(t, "4", c.Items[1].ShippedQuantity)
		assert.Equal(t, Item{Description: "Plank Z 1000x100x100", ShippedQuantity: "5", IsExtra: true}, c.Items[2])
		assert.Len(t, c.PlannedItems(), 2)
		assert.Len(t, c.ExtraItems(), 1)
	})

	t.Run("Re-registering replaces extras", func(t *testing.T) {
		c, _ := NewContainer(validCreateInput())
		require.NoError(t, c.RegisterShipment(ShipmentInput{Invoice: "1", PickupDate: "2024-06-12", Extras: []Item{{Description: "Z", ShippedQuantity: "1"}}}))
		require.NoError(t, c.RegisterShipment(ShipmentInput{Invoice: "1", PickupDate: "2024-06-12", Extras: []Item{}}))

		assert.Empty(t, c.ExtraItems())
	})

	t.Run("Re-registering without extras keeps them", func(t *testing.T) {
		c, _ := NewContainer(validCreateInput())
		require.NoError(t, c.RegisterShipment(ShipmentInput{Invoice: "1", PickupDate: "2024-06-12", Extras: []Item{{Description: "Z", ShippedQuantity: "1"}}}))
		require.NoError(t, c.RegisterShipment(ShipmentInput{Invoice: "2", PickupDate: "2024-06-13"}))

		require.Len(t, c.ExtraItems(), 1)
		assert.Equal(t, "Z", c.ExtraItems()[0].Description)
	})

	t.Run("Requires invoice", func(t *testing.T) {
		c, _ := NewContainer(validCreateInput())
		assert.ErrorIs(t, c.RegisterShipment(ShipmentInput{PickupDate: "2024-06-12"}), ErrInvoiceRequired)
		assert.Equal(t, StatusPlanning, c.Status)
	})

	t.Run("Requires pickup date", func(t *testing.T) {
		c, _ := NewContainer(validCreateInput())
		assert.ErrorIs(t, c.RegisterShipment(ShipmentInput{Invoice: "1", PickupDate: "ontem"}), ErrPickupDateRequired)
	})

	t.Run("Cannot move back from yard", func(t *testing.T) {
		c := &Container{Status: StatusYard}
		assert.ErrorIs(t, c.RegisterShipment(ShipmentInput{Invoice: "1", PickupDate: "2024-06-12"}), ErrInvalidTransition)
	})

	t.Run("Deleted container", func(t *testing.T) {
		c := &Container{Status: StatusDeleted}
		assert.ErrorIs(t, c.RegisterShipment(ShipmentInput{Invoice: "1", PickupDate: "2024-06-12"}), ErrContainerDeleted)
	})
}

func TestContainer_ConfirmReceipt(t *testing.T) {
	shipped := func(t *testing.T) *Container {
		c, err := NewContainer(validCreateInput())
		require.NoError(t, err)
		require.NoError(t, c.RegisterShipment(ShipmentInput{Invoice: "NF 9", PickupDate: "2024-06-12", ShippedQuantities: []string{"12", "4"}}))
		return c
	}

	t.Run("Moves transit to yard keeping shipment data", func(t *testing.T) {
		c := shipped(t)

		err := c.ConfirmReceipt(ShipmentInput{ArrivalDate: "25/07/2024", ShippedQuantities: []string{"11", "4"}})
		require.NoError(t, err)

		assert.Equal(t, StatusYard, c.Status)
		assert.Equal(t, "NF 9", c.Invoice)
		assert.Equal(t, "2024-06-12", c.PickupDate)
		assert.Equal(t, "25/07/2024", c.ArrivalDate)
		assert.Equal(t, "11", c.Items[0].ShippedQuantity)
	})

	t.Run("Receipt without extras keeps out-of-plan items", func(t *testing.T) {
		c := &Container{
			ID: "CONT-01-W3/25", Supplier: "Madeireira Sul", Status: StatusTransit,
			Invoice: "7", PickupDate: "2025-01-15",
			Items: []Item{
				{Description: "Plank A", RequestedQuantity: "10", ShippedQuantity: "10"},
				{Description: "Plank Z", ShippedQuantity: "2", ExplicitVolume: "0,4", IsExtra: true},
			},
		}

		require.NoError(t, c.ConfirmReceipt(ShipmentInput{ArrivalDate: "2025-01-20"}))

		assert.Equal(t, StatusYard, c.Status)
		require.Len(t, c.Items, 2)
		assert.Equal(t, "10", c.Items[0].ShippedQuantity)
		require.Len(t, c.ExtraItems(), 1)
		assert.Equal(t, Item{Description: "Plank Z", ShippedQuantity: "2", ExplicitVolume: "0,4", IsExtra: true}, c.ExtraItems()[0])
	})

	t.Run("Requires arrival date", func(t *testing.T) {
		c := shipped(t)
		assert.ErrorIs(t, c.ConfirmReceipt(ShipmentInput{}), ErrArrivalDateRequired)
		assert.Equal(t, StatusTransit, c.Status)
	})

	t.Run("Planning cannot skip transit", func(t *testing.T) {
		c, _ := NewContainer(validCreateInput())
		assert.ErrorIs(t, c.ConfirmReceipt(ShipmentInput{ArrivalDate: "2024-07-01"}), ErrInvalidTransition)
	})
}

func TestContainer_MarkDeleted(t *testing.T) {
	c := &Container{Status: StatusTransit}

	require.NoError(t, c.MarkDeleted())
	assert.Equal(t, StatusDeleted, c.Status)
	assert.False(t, c.Status.IsActive())
	assert.ErrorIs(t, c.MarkDeleted(), ErrContainerDeleted)
}
