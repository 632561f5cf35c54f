package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"container-tracker/internal/core/config"
	"container-tracker/internal/core/httpclient"
	"container-tracker/internal/core/logger"
	"container-tracker/internal/features/containers/domain"

	"go.uber.org/zap"
)

// ErrStoreRejected is returned when the spreadsheet answers without a success result.
var ErrStoreRejected = errors.New("spreadsheet rejected the request")

// SheetsAdapter implements the ContainerRepository port on top of the
// spreadsheet web app.
type SheetsAdapter struct {
	// client is the HTTP client used for web app requests.
	client *http.Client
	// url is the deployed web app endpoint.
	url string
}

// NewSheetsAdapter creates a new instance of SheetsAdapter.
func NewSheetsAdapter(cfg config.SheetsConfig) *SheetsAdapter {
	return &SheetsAdapter{
		client: httpclient.NewClient("sheets", cfg.Timeout()),
		url:    cfg.URL,
	}
}

type actionResponse struct {
	Result  string `json:"result"`
	Message string `json:"message"`
}

// List fetches every row and maps it to a container. Deleted rows are returned
// with StatusDeleted so their ids stay taken.
func (a *SheetsAdapter) List(ctx context.Context) ([]domain.Container, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spreadsheet returned status: %d", resp.StatusCode)
	}

	var body interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	list, ok := body.([]interface{})
	if !ok {
		logger.Named("sheets").Warn("Spreadsheet answered with a non-array body")
		return []domain.Container{}, nil
	}

	rows := make([]map[string]interface{}, 0, len(list))
	for _, item := range list {
		if row, ok := item.(map[string]interface{}); ok {
			rows = append(rows, row)
		}
	}

	return decodeRows(rows), nil
}

// Create appends a new planning row.
func (a *SheetsAdapter) Create(ctx context.Context, c *domain.Container) error {
	return a.post(ctx, c.ID, createPayload(c))
}

// Update writes the shipment and receipt fields of an existing row.
func (a *SheetsAdapter) Update(ctx context.Context, c *domain.Container) error {
	payload, err := updatePayload(c)
	if err != nil {
		return err
	}
	return a.post(ctx, c.ID, payload)
}

// Delete marks the row as deleted. Rows are never removed from the sheet.
func (a *SheetsAdapter) Delete(ctx context.Context, id string) error {
	return a.post(ctx, id, deletePayload(id))
}

// HealthCheck verifies that the web app is reachable.
func (a *SheetsAdapter) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}

	return nil
}

// post sends an action. The web app only accepts simple requests, so the
// JSON body travels as text/plain.
func (a *SheetsAdapter) post(ctx context.Context, id string, payload map[string]interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spreadsheet returned status: %d", resp.StatusCode)
	}

	var result actionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if result.Result != "success" {
		logger.Named("sheets").Warn("Spreadsheet rejected action",
			zap.String("action", fmt.Sprint(payload["action"])),
			zap.String("container_id", id),
			zap.String("message", result.Message),
		)
		return fmt.Errorf("%w: %s", ErrStoreRejected, result.Message)
	}

	return nil
}
