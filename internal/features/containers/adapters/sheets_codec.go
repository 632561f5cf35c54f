package adapter

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"container-tracker/internal/core/logger"
	"container-tracker/internal/core/textnorm"
	"container-tracker/internal/features/containers/domain"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// Status vocabulary of the spreadsheet. These strings are a contract with
// the store and must be sent byte-for-byte.
const (
	SheetStatusPlanning = "Planejamento"
	SheetStatusTransit  = "Em Trânsito"
	SheetStatusYard     = "Entregue"
	SheetStatusDeleted  = "Excluído"
)

// Column headers. Lookups are diacritic- and case-insensitive.
const (
	colID       = "Id"
	colSupplier = "Fornecedor"
	colStatus   = "Status"
	colPriority = "Prioridade"
	colStart    = "Data Inicio"
	colEnd      = "Data Fim"
	colPickup   = "Data Coleta"
	colArrival  = "Data Chegada"
	colInvoice  = "Nf"
	colExtras   = "Itens Extras"
	colTotalM3  = "Total M3"
)

// plannedSlots is the number of item column groups the sheet always carries.
// Unused slots are sent empty so stale values get cleared.
const plannedSlots = 3

var itemColumn = regexp.MustCompile(`^item (\d+) (desc|qtd|real|m3)$`)

// sheetRow is one spreadsheet row with its headers folded by textnorm.Key.
type sheetRow map[string]interface{}

func newSheetRow(raw map[string]interface{}) sheetRow {
	row := make(sheetRow, len(raw))
	for k, v := range raw {
		row[textnorm.Key(k)] = v
	}
	return row
}

// text returns the cell under header as trimmed text. Numbers keep their shortest form.
func (r sheetRow) text(header string) string {
	v, ok := r[textnorm.Key(header)]
	if !ok || v == nil {
		return ""
	}
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strings.TrimSpace(cast.ToString(v))
}

// extraRow is the JSON shape of one entry of the "Itens Extras" column.
type extraRow struct {
	Desc    interface{} `json:"desc"`
	Qtd     interface{} `json:"qtd"`
	Real    interface{} `json:"real"`
	M3      interface{} `json:"m3"`
	IsExtra bool        `json:"isExtra,omitempty"`
}

// decodeStatus maps the spreadsheet vocabulary onto the lifecycle.
// Unknown text is treated as planning.
func decodeStatus(raw string) domain.Status {
	switch textnorm.Key(raw) {
	case textnorm.Key(SheetStatusTransit):
		return domain.StatusTransit
	case textnorm.Key(SheetStatusYard):
		return domain.StatusYard
	case textnorm.Key(SheetStatusDeleted):
		return domain.StatusDeleted
	case textnorm.Key(SheetStatusPlanning), "":
		return domain.StatusPlanning
	default:
		logger.Named("sheets").Debug("Unknown status treated as planning", zap.String("status", raw))
		return domain.StatusPlanning
	}
}

func encodeStatus(s domain.Status) string {
	switch s {
	case domain.StatusTransit:
		return SheetStatusTransit
	case domain.StatusYard:
		return SheetStatusYard
	case domain.StatusDeleted:
		return SheetStatusDeleted
	default:
		return SheetStatusPlanning
	}
}

// decodeRows maps raw spreadsheet rows to containers, dropping rows without
// an id. Soft-deleted rows are kept: their ids stay taken.
func decodeRows(raw []map[string]interface{}) []domain.Container {
	out := make([]domain.Container, 0, len(raw))
	for _, r := range raw {
		c := decodeRow(newSheetRow(r))
		if c.ID == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

func decodeRow(row sheetRow) domain.Container {
	priority := row.text(colPriority)
	if priority == "" {
		priority = domain.DefaultPriority
	}

	c := domain.Container{
		ID:          domain.NormalizeID(row.text(colID)),
		Supplier:    row.text(colSupplier),
		Status:      decodeStatus(row.text(colStatus)),
		Priority:    priority,
		WindowStart: row.text(colStart),
		WindowEnd:   row.text(colEnd),
		PickupDate:  row.text(colPickup),
		ArrivalDate: row.text(colArrival),
		Invoice:     row.text(colInvoice),
	}

	c.Items = append(decodePlannedItems(row), decodeExtras(c.ID, row.text(colExtras), row[textnorm.Key(colExtras)])...)
	return c
}

// decodePlannedItems reads every "Item N Desc|Qtd|Real|M3" group, ordered by N.
func decodePlannedItems(row sheetRow) []domain.Item {
	slots := make(map[int]bool)
	for key := range row {
		if m := itemColumn.FindStringSubmatch(key); m != nil {
			n, _ := strconv.Atoi(m[1])
			slots[n] = true
		}
	}

	numbers := make([]int, 0, len(slots))
	for n := range slots {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	var items []domain.Item
	for _, n := range numbers {
		prefix := fmt.Sprintf("Item %d ", n)
		desc := row.text(prefix + "Desc")
		if desc == "" {
			continue
		}
		items = append(items, domain.Item{
			Description:       desc,
			RequestedQuantity: row.text(prefix + "Qtd"),
			ShippedQuantity:   row.text(prefix + "Real"),
			ExplicitVolume:    row.text(prefix + "M3"),
		})
	}
	return items
}

// decodeExtras reads the JSON array stored in the extras column. Anything
// that is not an array of objects is ignored.
func decodeExtras(containerID, text string, raw interface{}) []domain.Item {
	var payload []byte
	switch v := raw.(type) {
	case []interface{}:
		b, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		payload = b
	default:
		if !strings.HasPrefix(text, "[") {
			return nil
		}
		payload = []byte(text)
	}

	var rows []extraRow
	if err := json.Unmarshal(payload, &rows); err != nil {
		logger.Named("sheets").Warn("Failed to decode extra items",
			zap.String("container_id", containerID),
			zap.Error(err),
		)
		return nil
	}

	items := make([]domain.Item, 0, len(rows))
	for _, r := range rows {
		desc := strings.TrimSpace(cast.ToString(r.Desc))
		if desc == "" {
			continue
		}
		shipped := cellText(r.Real)
		if blankCell(r.Real) {
			shipped = cellText(r.Qtd)
		}
		items = append(items, domain.Item{
			Description:     desc,
			ShippedQuantity: shipped,
			ExplicitVolume:  cellText(r.M3),
			IsExtra:         true,
		})
	}
	return items
}

// blankCell reports whether a JSON cell carries no value: null, an empty
// string, false or the number zero. The text "0" is a value.
func blankCell(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case float64:
		return x == 0
	case bool:
		return !x
	default:
		return false
	}
}

func cellText(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strings.TrimSpace(cast.ToString(v))
}

// createPayload builds the "create" action for a new container.
func createPayload(c *domain.Container) map[string]interface{} {
	p := map[string]interface{}{
		"action":    "create",
		colID:       c.ID,
		colSupplier: c.Supplier,
		colPriority: c.Priority,
		colStart:    c.WindowStart,
		colEnd:      c.WindowEnd,
		colTotalM3:  c.TotalPlannedVolume().StringFixed(2),
		colStatus:   SheetStatusPlanning,
	}

	planned := c.PlannedItems()
	for i := 0; i < max(plannedSlots, len(planned)); i++ {
		prefix := fmt.Sprintf("Item %d ", i+1)
		var item domain.Item
		if i < len(planned) {
			item = planned[i]
		}
		p[prefix+"Desc"] = item.Description
		p[prefix+"Qtd"] = item.RequestedQuantity
		p[prefix+"M3"] = item.ExplicitVolume
	}
	return p
}

// updatePayload builds the "update" action carrying the shipment fields.
func updatePayload(c *domain.Container) (map[string]interface{}, error) {
	extras := c.ExtraItems()
	extrasText := ""
	if len(extras) > 0 {
		rows := make([]extraRow, 0, len(extras))
		for _, e := range extras {
			rows = append(rows, extraRow{
				Desc:    e.Description,
				Qtd:     e.ShippedQuantity,
				Real:    e.ShippedQuantity,
				M3:      e.ExplicitVolume,
				IsExtra: true,
			})
		}
		b, err := json.Marshal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to encode extra items: %w", err)
		}
		extrasText = string(b)
	}

	p := map[string]interface{}{
		"action":    "update",
		"id":        c.ID,
		colInvoice:  c.Invoice,
		colPickup:   c.PickupDate,
		colArrival:  c.ArrivalDate,
		colStatus:   encodeStatus(c.Status),
		colExtras:   extrasText,
	}

	planned := c.PlannedItems()
	for i := 0; i < max(plannedSlots, len(planned)); i++ {
		shipped := ""
		if i < len(planned) {
			shipped = planned[i].ShippedQuantity
		}
		p[fmt.Sprintf("Item %d Real", i+1)] = shipped
	}
	return p, nil
}

// deletePayload builds the soft-delete action.
func deletePayload(id string) map[string]interface{} {
	return map[string]interface{}{
		"action":  "delete",
		"id":      id,
		colStatus: SheetStatusDeleted,
	}
}
