package adapter

import (
	"testing"

	"container-tracker/internal/features/containers/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeRows verifies tolerant decoding of spreadsheet rows.
func TestDecodeRows(t *testing.T) {
	rows := []map[string]interface{}{
		{
			"Id":           " cont-01-w2/25 ",
			"Fornecedor":   "Madeireira Sul",
			"Status":       "Em Transito",
			"Data Início":  "2025-01-06",
			"Data Fim":     "2025-01-10T03:00:00.000Z",
			"Data Coleta":  "08/01/2025",
			"Nf":           float64(4521),
			"Item 1 Desc":  "Tábua 1000x200x20",
			"Item 1 Qtd":   float64(10),
			"Item 1 Real":  float64(12),
			"Item 2 Desc":  "",
			"Item 2 Qtd":   "",
			"Item 10 Desc": "Viga",
			"Item 10 Qtd":  "5",
			"Item 10 M3":   "1,25",
			"Itens Extras": `[{"desc":"Sarrafo","qtd":3,"real":0,"m3":"0,5"},{"desc":""}]`,
		},
		{
			"id":          "CONT-02-W2/25",
			"FORNECEDOR":  "Madeireira Sul",
			"status":      "EXCLUÍDO",
			"Item 1 Desc": "Viga",
		},
		{
			"Fornecedor": "Sem Id",
		},
	}

	got := decodeRows(rows)
	require.Len(t, got, 2)
	assert.Equal(t, "CONT-02-W2/25", got[1].ID)
	assert.Equal(t, domain.StatusDeleted, got[1].Status)

	c := got[0]
	assert.Equal(t, "CONT-01-W2/25", c.ID)
	assert.Equal(t, "Madeireira Sul", c.Supplier)
	assert.Equal(t, domain.StatusTransit, c.Status)
	assert.Equal(t, domain.DefaultPriority, c.Priority)
	assert.Equal(t, "2025-01-06", c.WindowStart)
	assert.Equal(t, "2025-01-10T03:00:00.000Z", c.WindowEnd)
	assert.Equal(t, "08/01/2025", c.PickupDate)
	assert.Equal(t, "4521", c.Invoice)

	require.Len(t, c.Items, 3)
	assert.Equal(t, domain.Item{
		Description:       "Tábua 1000x200x20",
		RequestedQuantity: "10",
		ShippedQuantity:   "12",
	}, c.Items[0])
	assert.Equal(t, domain.Item{
		Description:       "Viga",
		RequestedQuantity: "5",
		ExplicitVolume:    "1,25",
	}, c.Items[1])
	assert.Equal(t, domain.Item{
		Description:     "Sarrafo",
		ShippedQuantity: "3",
		ExplicitVolume:  "0,5",
		IsExtra:         true,
	}, c.Items[2])
}

func TestDecodeExtras(t *testing.T) {
	tests := []struct {
		name string
		text string
		raw  interface{}
		want int
	}{
		{name: "empty", text: "", raw: "", want: 0},
		{name: "not json", text: "nenhum", raw: "nenhum", want: 0},
		{name: "broken json", text: "[{", raw: "[{", want: 0},
		{name: "string", text: `[{"desc":"A","qtd":"2"}]`, raw: `[{"desc":"A","qtd":"2"}]`, want: 1},
		{
			name: "already parsed",
			raw:  []interface{}{map[string]interface{}{"desc": "A", "qtd": float64(2)}},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, decodeExtras("CONT-01-W2/25", tt.text, tt.raw), tt.want)
		})
	}
}

func TestDecodeExtras_ShippedFallback(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "real wins", text: `[{"desc":"A","qtd":"2","real":"3"}]`, want: "3"},
		{name: "text zero is kept", text: `[{"desc":"A","qtd":"2","real":"0"}]`, want: "0"},
		{name: "numeric zero falls back", text: `[{"desc":"A","qtd":"2","real":0}]`, want: "2"},
		{name: "empty falls back", text: `[{"desc":"A","qtd":"2","real":""}]`, want: "2"},
		{name: "null falls back", text: `[{"desc":"A","qtd":2,"real":null}]`, want: "2"},
		{name: "missing falls back", text: `[{"desc":"A","qtd":"2"}]`, want: "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := decodeExtras("CONT-01-W2/25", tt.text, tt.text)
			require.Len(t, items, 1)
			assert.Equal(t, tt.want, items[0].ShippedQuantity)
		})
	}
}

func TestStatusVocabulary(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.Status
	}{
		{"Planejamento", domain.StatusPlanning},
		{"Em Trânsito", domain.StatusTransit},
		{"em transito", domain.StatusTransit},
		{"Entregue", domain.StatusYard},
		{"Excluído", domain.StatusDeleted},
		{"", domain.StatusPlanning},
		{"Aguardando", domain.StatusPlanning},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeStatus(tt.raw))
		})
	}

	assert.Equal(t, "Em Trânsito", encodeStatus(domain.StatusTransit))
	assert.Equal(t, "Entregue", encodeStatus(domain.StatusYard))
	assert.Equal(t, "Planejamento", encodeStatus(domain.StatusPlanning))
	assert.Equal(t, "Excluído", encodeStatus(domain.StatusDeleted))
}

func sampleContainer() *domain.Container {
	return &domain.Container{
		ID:          "CONT-01-W2/25",
		Supplier:    "Madeireira Sul",
		Status:      domain.StatusTransit,
		Priority:    "Alta",
		WindowStart: "2025-01-06",
		WindowEnd:   "2025-01-10",
		PickupDate:  "2025-01-08",
		ArrivalDate: "2025-01-20",
		Invoice:     "4521",
		Items: []domain.Item{
			{Description: "Tábua", RequestedQuantity: "10", ShippedQuantity: "12", ExplicitVolume: "1,5"},
			{Description: "Sarrafo", ShippedQuantity: "3", ExplicitVolume: "0,5", IsExtra: true},
		},
	}
}

func TestCreatePayload(t *testing.T) {
	p := createPayload(sampleContainer())

	assert.Equal(t, "create", p["action"])
	assert.Equal(t, "CONT-01-W2/25", p["Id"])
	assert.Equal(t, "Madeireira Sul", p["Fornecedor"])
	assert.Equal(t, "Alta", p["Prioridade"])
	assert.Equal(t, "2025-01-06", p["Data Inicio"])
	assert.Equal(t, "2025-01-10", p["Data Fim"])
	assert.Equal(t, "1.50", p["Total M3"])
	assert.Equal(t, "Planejamento", p["Status"])
	assert.Equal(t, "Tábua", p["Item 1 Desc"])
	assert.Equal(t, "10", p["Item 1 Qtd"])
	assert.Equal(t, "1,5", p["Item 1 M3"])
	assert.Equal(t, "", p["Item 2 Desc"])
	assert.Equal(t, "", p["Item 3 Desc"])
	assert.NotContains(t, p, "Item 4 Desc")
}

func TestUpdatePayload(t *testing.T) {
	p, err := updatePayload(sampleContainer())
	require.NoError(t, err)

	assert.Equal(t, "update", p["action"])
	assert.Equal(t, "CONT-01-W2/25", p["id"])
	assert.Equal(t, "4521", p["Nf"])
	assert.Equal(t, "2025-01-08", p["Data Coleta"])
	assert.Equal(t, "2025-01-20", p["Data Chegada"])
	assert.Equal(t, "Em Trânsito", p["Status"])
	assert.Equal(t, "12", p["Item 1 Real"])
	assert.Equal(t, "", p["Item 2 Real"])
	assert.Equal(t, `[{"desc":"Sarrafo","qtd":"3","real":"3","m3":"0,5","isExtra":true}]`, p["Itens Extras"])

	c := sampleContainer()
	c.Items = c.Items[:1]
	p, err = updatePayload(c)
	require.NoError(t, err)
	assert.Equal(t, "", p["Itens Extras"])
}

func TestDeletePayload(t *testing.T) {
	p := deletePayload("CONT-01-W2/25")
	assert.Equal(t, map[string]interface{}{
		"action": "delete",
		"id":     "CONT-01-W2/25",
		"Status": "Excluído",
	}, p)
}
