package domain

import (
	"time"

	containers "container-tracker/internal/features/containers/domain"

	"github.com/shopspring/decimal"
)

// Report reconciles what a supplier was asked to ship in a month against what it shipped.
type Report struct {
	// Supplier is the supplier the report was filtered on.
	Supplier string `json:"supplier"`
	// Year and Month identify the period.
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	// OrderCount is the number of containers in the period.
	OrderCount int `json:"order_count"`
	// SurplusVolume is the volume shipped above the requested quantities, in m³.
	SurplusVolume decimal.Decimal `json:"surplus_volume"`
	// OutOfPlanVolume is the volume of material shipped outside the plan, in m³.
	OutOfPlanVolume decimal.Decimal `json:"out_of_plan_volume"`
	// TotalImpactVolume is SurplusVolume plus OutOfPlanVolume.
	TotalImpactVolume decimal.Decimal `json:"total_impact_volume"`
	// Planned holds one row per planned material.
	Planned []PlannedRow `json:"planned"`
	// OutOfPlan holds every item shipped outside the plan.
	OutOfPlan []OutOfPlanRow `json:"out_of_plan"`
}

// PlannedRow is the reconciliation of one planned material.
type PlannedRow struct {
	// Material is the description as first written in the plan.
	Material string `json:"material"`
	// Key is the normalized description used to match items.
	Key string `json:"key"`
	// Requested is the total quantity requested in the period.
	Requested decimal.Decimal `json:"requested"`
	// Shipped is the total quantity shipped in the period.
	Shipped decimal.Decimal `json:"shipped"`
	// Delta is Shipped minus Requested; negative means a shortage.
	Delta decimal.Decimal `json:"delta"`
	// UnitVolume is the volume of one unit of the material, in m³.
	UnitVolume decimal.Decimal `json:"unit_volume"`
	// SurplusVolume is Delta times UnitVolume when Delta is positive, zero otherwise.
	SurplusVolume decimal.Decimal `json:"surplus_volume"`
}

// OutOfPlanRow is one item shipped outside the plan.
type OutOfPlanRow struct {
	// ContainerID identifies the container the item travelled in.
	ContainerID string `json:"container_id"`
	// Item is the full item record.
	Item containers.Item `json:"item"`
	// Volume is the computed volume of the item, in m³.
	Volume decimal.Decimal `json:"volume"`
}

// IsEmpty reports whether no container matched the period.
func (r *Report) IsEmpty() bool {
	return r.OrderCount == 0
}
