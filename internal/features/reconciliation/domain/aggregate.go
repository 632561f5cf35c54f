package domain

import (
	"sort"
	"time"

	"container-tracker/internal/core/calendar"
	"container-tracker/internal/core/textnorm"
	containers "container-tracker/internal/features/containers/domain"

	"github.com/shopspring/decimal"
)

// material accumulates the planned and shipped quantities of one material key.
type material struct {
	name       string
	requested  decimal.Decimal
	shipped    decimal.Decimal
	unitVolume decimal.Decimal
	// sources keeps the planned items in processing order so that a material
	// nobody actually requested can be demoted to out-of-plan.
	sources []sourcedItem
}

type sourcedItem struct {
	containerID string
	item        containers.Item
}

// Aggregate reconciles the containers of one supplier in one calendar month.
//
// A container belongs to the period when its window start, or its pickup date
// when the window start is unknown, falls in (year, month). Planned items are
// grouped by normalized description; every out-of-plan item is reported on
// its own even when its description matches a planned material. A material
// whose requested total is zero but which was shipped anyway is reported as
// out-of-plan as well.
//
// The result depends only on the snapshot contents: containers are visited
// in id order so that ties (which description names a material, which item
// supplies its unit volume) resolve the same way on every run.
func Aggregate(snapshot []containers.Container, supplier string, year int, month time.Month) Report {
	report := Report{
		Supplier:          supplier,
		Year:              year,
		Month:             month,
		SurplusVolume:     decimal.Zero,
		OutOfPlanVolume:   decimal.Zero,
		TotalImpactVolume: decimal.Zero,
		Planned:           []PlannedRow{},
		OutOfPlan:         []OutOfPlanRow{},
	}

	period := inPeriod(snapshot, supplier, year, month)
	report.OrderCount = len(period)

	materials := make(map[string]*material)
	var extras []sourcedItem

	for _, c := range period {
		for _, item := range c.Items {
			if item.IsExtra {
				extras = append(extras, sourcedItem{containerID: c.ID, item: item})
				continue
			}
			key := textnorm.Key(item.Description)
			m, ok := materials[key]
			if !ok {
				m = &material{name: item.Description, requested: decimal.Zero, shipped: decimal.Zero, unitVolume: decimal.Zero}
				materials[key] = m
			}
			m.requested = m.requested.Add(containers.ParseQuantity(item.RequestedQuantity))
			m.shipped = m.shipped.Add(containers.ParseQuantity(item.ShippedQuantity))
			if m.unitVolume.IsZero() {
				m.unitVolume = containers.UnitVolume(item)
			}
			m.sources = append(m.sources, sourcedItem{containerID: c.ID, item: item})
		}
	}

	keys := make([]string, 0, len(materials))
	for key := range materials {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var demoted []sourcedItem
	for _, key := range keys {
		m := materials[key]
		if m.requested.IsZero() {
			for _, src := range m.sources {
				if !containers.ParseQuantity(src.item.ShippedQuantity).IsZero() {
					demoted = append(demoted, src)
				}
			}
			continue
		}

		delta := m.shipped.Sub(m.requested)
		surplus := decimal.Zero
		if delta.IsPositive() {
			surplus = delta.Mul(m.unitVolume)
		}
		report.Planned = append(report.Planned, PlannedRow{
			Material:      m.name,
			Key:           key,
			Requested:     m.requested,
			Shipped:       m.shipped,
			Delta:         delta,
			UnitVolume:    m.unitVolume,
			SurplusVolume: surplus,
		})
		report.SurplusVolume = report.SurplusVolume.Add(surplus)
	}

	outOfPlan := append(demoted, extras...)
	sort.SliceStable(outOfPlan, func(i, j int) bool {
		return outOfPlan[i].containerID < outOfPlan[j].containerID
	})
	for _, src := range outOfPlan {
		v := containers.Volume(src.item)
		report.OutOfPlan = append(report.OutOfPlan, OutOfPlanRow{
			ContainerID: src.containerID,
			Item:        src.item,
			Volume:      v,
		})
		report.OutOfPlanVolume = report.OutOfPlanVolume.Add(v)
	}

	report.TotalImpactVolume = report.SurplusVolume.Add(report.OutOfPlanVolume)
	return report
}

// inPeriod filters the active containers of supplier whose relevant date is
// in (year, month), sorted by id.
func inPeriod(snapshot []containers.Container, supplier string, year int, month time.Month) []containers.Container {
	var period []containers.Container
	for _, c := range snapshot {
		if !c.Status.IsActive() || c.Supplier != supplier {
			continue
		}
		relevant := c.WindowStart
		if _, ok := calendar.Parse(relevant); !ok {
			relevant = c.PickupDate
		}
		d, ok := calendar.Parse(relevant)
		if !ok {
			continue
		}
		if d.Year() == year && d.Month() == month {
			period = append(period, c)
		}
	}
	sort.SliceStable(period, func(i, j int) bool {
		return period[i].ID < period[j].ID
	})
	return period
}

// Suppliers lists the distinct non-empty suppliers of the active containers, sorted.
func Suppliers(snapshot []containers.Container) []string {
	seen := make(map[string]bool)
	suppliers := []string{}
	for _, c := range snapshot {
		if !c.Status.IsActive() || c.Supplier == "" || seen[c.Supplier] {
			continue
		}
		seen[c.Supplier] = true
		suppliers = append(suppliers, c.Supplier)
	}
	sort.Strings(suppliers)
	return suppliers
}
