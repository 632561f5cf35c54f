package domain

import (
	"errors"
	"fmt"
	"strings"

	"container-tracker/internal/core/calendar"
	"container-tracker/internal/core/textnorm"
)

var (
	// ErrSupplierRequired is returned when a container has no supplier.
	ErrSupplierRequired = errors.New("supplier is required")
	// ErrInvalidWindow is returned when the planned window is missing or inverted.
	ErrInvalidWindow = errors.New("planned window must have a start and an end not before the start")
	// ErrNoPlannedItems is returned when a container is created without material lines.
	ErrNoPlannedItems = errors.New("at least one planned item is required")
	// ErrDuplicateMaterial is returned when the same material is planned twice in one container.
	ErrDuplicateMaterial = errors.New("material planned more than once")
	// ErrInvoiceRequired is returned when a shipment is registered without an invoice number.
	ErrInvoiceRequired = errors.New("invoice number is required")
	// ErrPickupDateRequired is returned when a shipment has no readable pickup date.
	ErrPickupDateRequired = errors.New("pickup date is required")
	// ErrArrivalDateRequired is returned when a receipt has no readable arrival date.
	ErrArrivalDateRequired = errors.New("arrival date is required")
	// ErrInvalidTransition is returned when a status change would move backwards.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrContainerDeleted is returned when operating on a soft-deleted container.
	ErrContainerDeleted = errors.New("container is deleted")
)

// CreateInput carries the data needed to plan a new container.
type CreateInput struct {
	ID          string
	Supplier    string
	Priority    string
	WindowStart string
	WindowEnd   string
	Items       []Item
}

// ShipmentInput carries the data captured when a shipment is registered or received.
type ShipmentInput struct {
	Invoice     string
	PickupDate  string
	ArrivalDate string
	// ShippedQuantities are assigned to the planned items by position.
	ShippedQuantities []string
	// Extras replace the container's out-of-plan items. A nil slice keeps
	// the current ones; an empty one clears them.
	Extras []Item
}

// NewContainer validates in and returns a container in planning.
func NewContainer(in CreateInput) (*Container, error) {
	supplier := strings.TrimSpace(in.Supplier)
	if supplier == "" {
		return nil, ErrSupplierRequired
	}

	start, okStart := calendar.Parse(in.WindowStart)
	end, okEnd := calendar.Parse(in.WindowEnd)
	if !okStart || !okEnd || end.Before(start) {
		return nil, ErrInvalidWindow
	}

	seen := make(map[string]bool)
	var items []Item
	for _, item := range in.Items {
		desc := strings.TrimSpace(item.Description)
		if desc == "" {
			continue
		}
		key := textnorm.Key(desc)
		if seen[key] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMaterial, desc)
		}
		seen[key] = true
		items = append(items, Item{
			Description:       desc,
			RequestedQuantity: strings.TrimSpace(item.RequestedQuantity),
			ExplicitVolume:    strings.TrimSpace(item.ExplicitVolume),
		})
	}
	if len(items) == 0 {
		return nil, ErrNoPlannedItems
	}

	priority := strings.TrimSpace(in.Priority)
	if priority == "" {
		priority = DefaultPriority
	}

	return &Container{
		ID:          NormalizeID(in.ID),
		Supplier:    supplier,
		Status:      StatusPlanning,
		Priority:    priority,
		WindowStart: strings.TrimSpace(in.WindowStart),
		WindowEnd:   strings.TrimSpace(in.WindowEnd),
		Items:       items,
	}, nil
}

// RegisterShipment records the collection of the material and moves the container to transit.
// A container already in transit may be registered again to correct its data.
func (c *Container) RegisterShipment(in ShipmentInput) error {
	if err := c.transitionTo(StatusTransit); err != nil {
		return err
	}
	if strings.TrimSpace(in.Invoice) == "" {
		return ErrInvoiceRequired
	}
	if _, ok := calendar.Parse(in.PickupDate); !ok {
		return ErrPickupDateRequired
	}

	c.applyShipment(in)
	c.Status = StatusTransit
	return nil
}

// ConfirmReceipt records the delivery in the yard. The reconciliation
// fields may be corrected again; a delivered container may be re-confirmed.
func (c *Container) ConfirmReceipt(in ShipmentInput) error {
	if c.Status == StatusPlanning {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, StatusYard)
	}
	if err := c.transitionTo(StatusYard); err != nil {
		return err
	}
	if _, ok := calendar.Parse(in.ArrivalDate); !ok {
		return ErrArrivalDateRequired
	}
	if strings.TrimSpace(in.Invoice) == "" {
		in.Invoice = c.Invoice
	}
	if strings.TrimSpace(in.PickupDate) == "" {
		in.PickupDate = c.PickupDate
	}

	c.applyShipment(in)
	c.Status = StatusYard
	return nil
}

// MarkDeleted soft-deletes the container.
func (c *Container) MarkDeleted() error {
	if c.Status == StatusDeleted {
		return ErrContainerDeleted
	}
	c.Status = StatusDeleted
	return nil
}

func (c *Container) transitionTo(target Status) error {
	if c.Status == StatusDeleted {
		return ErrContainerDeleted
	}
	if c.Status.rank() > target.rank() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, target)
	}
	return nil
}

func (c *Container) applyShipment(in ShipmentInput) {
	c.Invoice = strings.TrimSpace(in.Invoice)
	c.PickupDate = strings.TrimSpace(in.PickupDate)
	c.ArrivalDate = strings.TrimSpace(in.ArrivalDate)

	items := make([]Item, 0, len(c.Items)+len(in.Extras))
	pos := 0
	for _, item := range c.Items {
		if item.IsExtra {
			if in.Extras == nil {
				items = append(items, item)
			}
			continue
		}
		if pos < len(in.ShippedQuantities) {
			item.ShippedQuantity = strings.TrimSpace(in.ShippedQuantities[pos])
		}
		pos++
		items = append(items, item)
	}
	for _, extra := range in.Extras {
		desc := strings.TrimSpace(extra.Description)
		if desc == "" {
			continue
		}
		shipped := strings.TrimSpace(extra.ShippedQuantity)
		if shipped == "" {
			shipped = strings.TrimSpace(extra.RequestedQuantity)
		}
		items = append(items, Item{
			Description:     desc,
			ShippedQuantity: shipped,
			ExplicitVolume:  strings.TrimSpace(extra.ExplicitVolume),
			IsExtra:         true,
		})
	}
	c.Items = items
}
