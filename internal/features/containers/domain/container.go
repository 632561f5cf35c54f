package domain

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Status represents where a container is in its lifecycle.
type Status string

const (
	// StatusPlanning indicates the shipment is scheduled but not collected yet.
	StatusPlanning Status = "planning"
	// StatusTransit indicates the material was collected and is on its way.
	StatusTransit Status = "transit"
	// StatusYard indicates the container was delivered.
	StatusYard Status = "yard"
	// StatusDeleted marks a soft-deleted container. It never reaches computation.
	StatusDeleted Status = "deleted"
)

// DefaultPriority is used when a container carries no priority.
const DefaultPriority = "Normal"

// IsActive reports whether s is one of the three lifecycle states.
func (s Status) IsActive() bool {
	return s == StatusPlanning || s == StatusTransit || s == StatusYard
}

// rank orders the active states; transitions may only move forward.
func (s Status) rank() int {
	switch s {
	case StatusPlanning:
		return 0
	case StatusTransit:
		return 1
	case StatusYard:
		return 2
	default:
		return -1
	}
}

// Item is one material line of a container.
type Item struct {
	// Description is free text and may embed dimensions in millimeters (e.g. "1000x200x20").
	Description string `json:"description"`
	// RequestedQuantity is the planned quantity. Empty for out-of-plan items.
	RequestedQuantity string `json:"requested_quantity,omitempty"`
	// ShippedQuantity is the quantity actually shipped or received.
	ShippedQuantity string `json:"shipped_quantity,omitempty"`
	// ExplicitVolume overrides the volume inferred from the description, in cubic meters.
	ExplicitVolume string `json:"explicit_volume,omitempty"`
	// IsExtra is true when the item was not part of the original plan.
	IsExtra bool `json:"is_extra"`
}

// Container is one tracked import shipment.
type Container struct {
	// ID is the normalized identifier (e.g. CONT-01-W1/25).
	ID string `json:"id"`
	// Supplier is the grouping key used by reconciliation.
	Supplier string `json:"supplier"`
	// Status is the lifecycle state.
	Status Status `json:"status"`
	// Priority is free text, "Normal" by default.
	Priority string `json:"priority"`
	// WindowStart is the first day of the planned collection week.
	WindowStart string `json:"window_start"`
	// WindowEnd is the last day of the planned collection week.
	WindowEnd string `json:"window_end"`
	// PickupDate is when the material was collected.
	PickupDate string `json:"pickup_date,omitempty"`
	// ArrivalDate is the delivery date in the yard, or its forecast while in transit.
	ArrivalDate string `json:"arrival_date,omitempty"`
	// Invoice is the invoice number (NF).
	Invoice string `json:"invoice,omitempty"`
	// Items holds planned lines first, then out-of-plan lines.
	Items []Item `json:"items"`
}

// PlannedItems returns the items that were part of the original plan.
func (c *Container) PlannedItems() []Item {
	var planned []Item
	for _, item := range c.Items {
		if !item.IsExtra {
			planned = append(planned, item)
		}
	}
	return planned
}

// ExtraItems returns the items shipped outside the original plan.
func (c *Container) ExtraItems() []Item {
	var extras []Item
	for _, item := range c.Items {
		if item.IsExtra {
			extras = append(extras, item)
		}
	}
	return extras
}

// TotalPlannedVolume sums the explicit volumes of the planned items.
func (c *Container) TotalPlannedVolume() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.PlannedItems() {
		if v, ok := parseDecimal(item.ExplicitVolume); ok {
			total = total.Add(v)
		}
	}
	return total
}

var whitespace = regexp.MustCompile(`\s+`)

// NormalizeID strips all whitespace from a container identifier and upper-cases it.
func NormalizeID(raw string) string {
	return strings.ToUpper(whitespace.ReplaceAllString(raw, ""))
}
