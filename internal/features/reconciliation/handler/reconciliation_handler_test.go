package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"container-tracker/internal/features/reconciliation/domain"
	"container-tracker/internal/features/reconciliation/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReconciliationService is a mock implementation of ports.ReconciliationService
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) Suppliers() []string {
	return m.Called().Get(0).([]string)
}

func (m *MockReconciliationService) Report(supplier, period string) (*domain.Report, error) {
	args := m.Called(supplier, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReconciliationService) Export(supplier, period string) (*domain.Report, []byte, error) {
	args := m.Called(supplier, period)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Report), args.Get(1).([]byte), args.Error(2)
}

func setupApp(svc *MockReconciliationService) *fiber.App {
	app := fiber.New()
	h := NewReconciliationHandler(svc)
	app.Get("/reconciliation/suppliers", h.ListSuppliers)
	app.Get("/reconciliation/export", h.ExportReport)
	app.Get("/reconciliation", h.GetReport)
	return app
}

func TestReconciliationHandler_ListSuppliers(t *testing.T) {
	svc := new(MockReconciliationService)
	app := setupApp(svc)

	svc.On("Suppliers").Return([]string{"Madeireira Sul", "Serraria Norte"}).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/reconciliation/suppliers", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `["Madeireira Sul","Serraria Norte"]`, string(body))
}

func TestReconciliationHandler_GetReport(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockReconciliationService)
		app := setupApp(svc)

		report := &domain.Report{Supplier: "Madeireira Sul", Year: 2025, Month: 1, OrderCount: 3}
		svc.On("Report", "Madeireira Sul", "2025-01").Return(report, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/reconciliation?supplier=Madeireira%20Sul&month=2025-01", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("InvalidPeriod", func(t *testing.T) {
		svc := new(MockReconciliationService)
		app := setupApp(svc)

		svc.On("Report", "", "jan").Return(nil, fmt.Errorf("%w: %q", service.ErrInvalidPeriod, "jan")).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/reconciliation?month=jan", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestReconciliationHandler_ExportReport(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockReconciliationService)
		app := setupApp(svc)

		report := &domain.Report{Supplier: "Madeireira São João", Year: 2025, Month: 1}
		svc.On("Export", "", "").Return(report, []byte("PK"), nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/reconciliation/export", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, xlsxContentType, resp.Header.Get("Content-Type"))
		assert.Equal(t, "attachment; filename=reconciliation_madeireira_sao_joao_2025-01.xlsx", resp.Header.Get("Content-Disposition"))

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "PK", string(body))
	})

	t.Run("ExporterError", func(t *testing.T) {
		svc := new(MockReconciliationService)
		app := setupApp(svc)

		svc.On("Export", "", "").Return(nil, nil, errors.New("service: failed to export report")).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/reconciliation/export", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "madeireira_sul", sanitizeFilename("Madeireira Sul"))
	assert.Equal(t, "acme_ltda_", sanitizeFilename("ACME Ltda."))
	assert.Equal(t, "all", sanitizeFilename(""))
}
