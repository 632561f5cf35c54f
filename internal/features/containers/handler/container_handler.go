package handler

import (
	"errors"
	"net/http"
	"net/url"

	"container-tracker/internal/core/logger"
	"container-tracker/internal/features/containers/domain"
	"container-tracker/internal/features/containers/ports"
	"container-tracker/internal/features/containers/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ContainerHandler handles HTTP requests related to containers.
type ContainerHandler struct {
	service ports.ContainerService
}

// NewContainerHandler creates a new instance of ContainerHandler.
func NewContainerHandler(s ports.ContainerService) *ContainerHandler {
	return &ContainerHandler{
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

// ItemRequest is one planned material line.
type ItemRequest struct {
	Description       string `json:"description"`
	RequestedQuantity string `json:"requested_quantity"`
	ExplicitVolume    string `json:"explicit_volume"`
}

// CreateContainerRequest represents the request body for planning a container.
type CreateContainerRequest struct {
	// ID is optional; it is generated from the window start when empty.
	ID          string        `json:"id"`
	Supplier    string        `json:"supplier"`
	Priority    string        `json:"priority"`
	WindowStart string        `json:"window_start"`
	WindowEnd   string        `json:"window_end"`
	Items       []ItemRequest `json:"items"`
}

// ExtraRequest is one material shipped outside the plan.
type ExtraRequest struct {
	Description    string `json:"description"`
	Quantity       string `json:"quantity"`
	ExplicitVolume string `json:"explicit_volume"`
}

// ShipmentRequest represents the request body for shipments and receipts.
type ShipmentRequest struct {
	Invoice     string `json:"invoice"`
	PickupDate  string `json:"pickup_date"`
	ArrivalDate string `json:"arrival_date"`
	// ShippedQuantities follow the order of the planned items.
	ShippedQuantities []string       `json:"shipped_quantities"`
	// Extras is left out to keep the current out-of-plan items; [] clears them.
	Extras            []ExtraRequest `json:"extras"`
}

func (r CreateContainerRequest) toInput() domain.CreateInput {
	items := make([]domain.Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, domain.Item{
			Description:       it.Description,
			RequestedQuantity: it.RequestedQuantity,
			ExplicitVolume:    it.ExplicitVolume,
		})
	}
	return domain.CreateInput{
		ID:          r.ID,
		Supplier:    r.Supplier,
		Priority:    r.Priority,
		WindowStart: r.WindowStart,
		WindowEnd:   r.WindowEnd,
		Items:       items,
	}
}

func (r ShipmentRequest) toInput() domain.ShipmentInput {
	var extras []domain.Item
	if r.Extras != nil {
		extras = make([]domain.Item, 0, len(r.Extras))
	}
	for _, e := range r.Extras {
		extras = append(extras, domain.Item{
			Description:     e.Description,
			ShippedQuantity: e.Quantity,
			ExplicitVolume:  e.ExplicitVolume,
			IsExtra:         true,
		})
	}
	return domain.ShipmentInput{
		Invoice:           r.Invoice,
		PickupDate:        r.PickupDate,
		ArrivalDate:       r.ArrivalDate,
		ShippedQuantities: r.ShippedQuantities,
		Extras:            extras,
	}
}

// ListContainers handles GET /containers.
// @Summary List containers
// @Description Returns the board cards, optionally filtered by status, with deviation and collect-week flags.
// @Tags Containers
// @Produce json
// @Param status query string false "planning, transit or yard"
// @Success 200 {array} ports.Card
// @Failure 400 {object} ErrorResponse
// @Router /containers [get]
func (h *ContainerHandler) ListContainers(c *fiber.Ctx) error {
	cards, err := h.service.Board(domain.Status(c.Query("status")))
	if err != nil {
		return h.fail(c, err, "Failed to build board")
	}
	return c.Status(http.StatusOK).JSON(cards)
}

// GetContainer handles GET /containers/:id.
// @Summary Get container by ID
// @Description The id must be URL-encoded (CONT-01-W2%2F25).
// @Tags Containers
// @Produce json
// @Param id path string true "Container ID"
// @Success 200 {object} ports.Card
// @Failure 404 {object} ErrorResponse
// @Router /containers/{id} [get]
func (h *ContainerHandler) GetContainer(c *fiber.Ctx) error {
	card, err := h.service.Get(containerID(c))
	if err != nil {
		return h.fail(c, err, "Failed to get container")
	}
	return c.Status(http.StatusOK).JSON(card)
}

// NextID handles GET /containers/next-id.
// @Summary Preview the next container ID
// @Description Returns the identifier a container starting on the given date would receive.
// @Tags Containers
// @Produce json
// @Param start query string true "Window start (YYYY-MM-DD or DD/MM/YYYY)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /containers/next-id [get]
func (h *ContainerHandler) NextID(c *fiber.Ctx) error {
	id, err := h.service.NextID(c.Query("start"))
	if err != nil {
		return h.fail(c, err, "Failed to generate container id")
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"id": id})
}

// CreateContainer handles POST /containers.
// @Summary Plan a container
// @Tags Containers
// @Accept json
// @Produce json
// @Param container body CreateContainerRequest true "Container details"
// @Success 201 {object} domain.Container
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /containers [post]
func (h *ContainerHandler) CreateContainer(c *fiber.Ctx) error {
	var req CreateContainerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	container, err := h.service.Create(c.Context(), req.toInput())
	if err != nil {
		return h.fail(c, err, "Failed to create container")
	}
	return c.Status(http.StatusCreated).JSON(container)
}

// RegisterShipment handles POST /containers/:id/shipment.
// @Summary Register a shipment
// @Description Records invoice, pickup date and shipped quantities; moves the container to transit.
// @Tags Containers
// @Accept json
// @Produce json
// @Param id path string true "Container ID"
// @Param shipment body ShipmentRequest true "Shipment details"
// @Success 200 {object} domain.Container
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /containers/{id}/shipment [post]
func (h *ContainerHandler) RegisterShipment(c *fiber.Ctx) error {
	var req ShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	container, err := h.service.RegisterShipment(c.Context(), containerID(c), req.toInput())
	if err != nil {
		return h.fail(c, err, "Failed to register shipment")
	}
	return c.Status(http.StatusOK).JSON(container)
}

// ConfirmReceipt handles POST /containers/:id/receipt.
// @Summary Confirm receipt in the yard
// @Tags Containers
// @Accept json
// @Produce json
// @Param id path string true "Container ID"
// @Param receipt body ShipmentRequest true "Receipt details"
// @Success 200 {object} domain.Container
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /containers/{id}/receipt [post]
func (h *ContainerHandler) ConfirmReceipt(c *fiber.Ctx) error {
	var req ShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	container, err := h.service.ConfirmReceipt(c.Context(), containerID(c), req.toInput())
	if err != nil {
		return h.fail(c, err, "Failed to confirm receipt")
	}
	return c.Status(http.StatusOK).JSON(container)
}

// DeleteContainer handles DELETE /containers/:id.
// @Summary Delete a container
// @Tags Containers
// @Produce json
// @Param id path string true "Container ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /containers/{id} [delete]
func (h *ContainerHandler) DeleteContainer(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), containerID(c)); err != nil {
		return h.fail(c, err, "Failed to delete container")
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Container deleted successfully",
	})
}

// Refresh handles POST /containers/refresh.
// @Summary Reload the snapshot from the spreadsheet
// @Tags Containers
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 502 {object} ErrorResponse
// @Router /containers/refresh [post]
func (h *ContainerHandler) Refresh(c *fiber.Ctx) error {
	if err := h.service.Reload(c.Context()); err != nil {
		return h.fail(c, err, "Failed to refresh snapshot")
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message":      "Snapshot refreshed",
		"refreshed_at": h.service.LastRefresh(),
	})
}

// fail maps service and domain errors to HTTP responses.
func (h *ContainerHandler) fail(c *fiber.Ctx, err error, logMsg string) error {
	ray := rayID(c)
	status := statusFor(err)
	msg := err.Error()

	if status >= http.StatusInternalServerError {
		logger.Get().Error(logMsg,
			zap.String("container_id", containerID(c)),
			zap.String("ray_id", ray),
			zap.Error(err),
		)
		msg = "Record store unavailable"
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   ray,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrContainerNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrIDCollision),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrContainerDeleted):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidStartDate),
		errors.Is(err, domain.ErrSupplierRequired),
		errors.Is(err, domain.ErrInvalidWindow),
		errors.Is(err, domain.ErrNoPlannedItems),
		errors.Is(err, domain.ErrDuplicateMaterial),
		errors.Is(err, domain.ErrInvoiceRequired),
		errors.Is(err, domain.ErrPickupDateRequired),
		errors.Is(err, domain.ErrArrivalDateRequired):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func rayID(c *fiber.Ctx) string {
	ray, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return ray
}

// containerID returns the path id. Ids contain a slash, so clients send it escaped.
func containerID(c *fiber.Ctx) string {
	raw := c.Params("id")
	id, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return id
}
