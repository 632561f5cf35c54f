package domain

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// dimensionPattern matches three millimeter dimensions such as "1000x200x20" or "2,5 * 100 X 40".
var dimensionPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*[xX*]\s*(\d+(?:[.,]\d+)?)\s*[xX*]\s*(\d+(?:[.,]\d+)?)`)

var millimetersPerMeter = decimal.NewFromInt(1000)

// Volume returns the volume of an item line in cubic meters.
// An explicit volume wins. Otherwise three dimensions found in the
// description are multiplied together (millimeters to meters) and by the
// line quantity. Anything unreadable yields zero.
func Volume(item Item) decimal.Decimal {
	if v, ok := parseDecimal(item.ExplicitVolume); ok {
		return v
	}
	unit, ok := dimensionVolume(item.Description)
	if !ok {
		return decimal.Zero
	}
	v := unit.Mul(lineQuantity(item))
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// UnitVolume returns the volume of a single unit of the item.
// An explicit volume was entered for the planned quantity, so it is shared
// evenly over the requested quantity (the shipped one when nothing was
// requested); a line without any quantity keeps the explicit value.
func UnitVolume(item Item) decimal.Decimal {
	if v, ok := parseDecimal(item.ExplicitVolume); ok {
		qty := ParseQuantity(item.RequestedQuantity)
		if qty.IsZero() {
			qty = ParseQuantity(item.ShippedQuantity)
		}
		if qty.IsZero() {
			return v
		}
		return v.Div(qty)
	}
	unit, ok := dimensionVolume(item.Description)
	if !ok {
		return decimal.Zero
	}
	return unit
}

func dimensionVolume(description string) (decimal.Decimal, bool) {
	m := dimensionPattern.FindStringSubmatch(description)
	if m == nil {
		return decimal.Zero, false
	}
	v := decimal.NewFromInt(1)
	for _, raw := range m[1:4] {
		d, ok := parseDecimal(raw)
		if !ok {
			return decimal.Zero, false
		}
		v = v.Mul(d.Div(millimetersPerMeter))
	}
	return v, true
}

// lineQuantity prefers the shipped quantity and falls back to the requested one.
func lineQuantity(item Item) decimal.Decimal {
	if v, ok := parseDecimal(item.ShippedQuantity); ok {
		return v
	}
	if v, ok := parseDecimal(item.RequestedQuantity); ok {
		return v
	}
	return decimal.Zero
}
