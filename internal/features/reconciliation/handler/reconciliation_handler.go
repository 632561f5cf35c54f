package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"container-tracker/internal/core/logger"
	"container-tracker/internal/core/textnorm"
	"container-tracker/internal/features/reconciliation/ports"
	"container-tracker/internal/features/reconciliation/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReconciliationHandler handles HTTP requests for supplier reconciliation.
type ReconciliationHandler struct {
	service ports.ReconciliationService
}

// NewReconciliationHandler creates a new instance of ReconciliationHandler.
func NewReconciliationHandler(s ports.ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{
		service: s,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// ListSuppliers handles GET /reconciliation/suppliers.
// @Summary List suppliers
// @Description Distinct suppliers of the active containers, sorted. The first one is the default report target.
// @Tags Reconciliation
// @Produce json
// @Success 200 {array} string
// @Router /reconciliation/suppliers [get]
func (h *ReconciliationHandler) ListSuppliers(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Suppliers())
}

// GetReport handles GET /reconciliation.
// @Summary Reconcile a supplier month
// @Description Compares requested and shipped quantities of one supplier in one month.
// @Tags Reconciliation
// @Produce json
// @Param supplier query string false "Supplier (defaults to the first one)"
// @Param month query string false "Period as YYYY-MM (defaults to the current month)"
// @Success 200 {object} domain.Report
// @Failure 400 {object} ErrorResponse
// @Router /reconciliation [get]
func (h *ReconciliationHandler) GetReport(c *fiber.Ctx) error {
	report, err := h.service.Report(c.Query("supplier"), c.Query("month"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(report)
}

// ExportReport handles GET /reconciliation/export.
// @Summary Export a reconciliation as XLSX
// @Tags Reconciliation
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param supplier query string false "Supplier (defaults to the first one)"
// @Param month query string false "Period as YYYY-MM (defaults to the current month)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reconciliation/export [get]
func (h *ReconciliationHandler) ExportReport(c *fiber.Ctx) error {
	report, data, err := h.service.Export(c.Query("supplier"), c.Query("month"))
	if err != nil {
		return h.fail(c, err)
	}

	filename := fmt.Sprintf("reconciliation_%s_%04d-%02d.xlsx", sanitizeFilename(report.Supplier), report.Year, int(report.Month))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Status(http.StatusOK).Send(data)
}

func (h *ReconciliationHandler) fail(c *fiber.Ctx, err error) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	if errors.Is(err, service.ErrInvalidPeriod) {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	}

	logger.Get().Error("Failed to build reconciliation",
		zap.String("supplier", c.Query("supplier")),
		zap.String("month", c.Query("month")),
		zap.String("ray_id", rayID),
		zap.Error(err),
	)
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Message: "Internal Server Error",
		RayID:   rayID,
	})
}

// sanitizeFilename folds the supplier to ASCII and keeps only letters and digits.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range textnorm.Key(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "all"
	}
	return b.String()
}
