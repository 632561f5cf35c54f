package ports

import (
	"context"
	"time"

	"container-tracker/internal/features/containers/domain"
)

// ContainerRepository defines the secondary port for the external record store.
// The store owns persistence and is the final arbiter of identifier uniqueness.
type ContainerRepository interface {
	// List returns every record of the store, soft-deleted ones included.
	List(ctx context.Context) ([]domain.Container, error)
	// Create submits a new container.
	Create(ctx context.Context, c *domain.Container) error
	// Update submits the shipment fields and status of an existing container.
	Update(ctx context.Context, c *domain.Container) error
	// Delete soft-deletes the container with the given normalized id.
	Delete(ctx context.Context, id string) error
}

// SnapshotInvalidator is implemented by repositories that keep their own copy
// of the store and can drop it on demand.
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context)
}

// Card is a container as shown on the board.
type Card struct {
	domain.Container
	// Deviation classifies the pickup against the planned window.
	Deviation domain.Deviation `json:"deviation"`
	// CollectWeek is true when the relevant date falls in the current ISO week.
	CollectWeek bool `json:"collect_week"`
	// TotalPlannedVolume is the sum of the planned explicit volumes, in m³.
	TotalPlannedVolume string `json:"total_planned_volume"`
	// Window is the planned window as DD/MM - DD/MM.
	Window string `json:"window"`
	// Pickup is the pickup date as DD/MM/YY, or N/D when missing.
	Pickup string `json:"pickup"`
}

// ContainerService defines the primary port for container operations.
type ContainerService interface {
	Board(status domain.Status) ([]Card, error)
	Get(id string) (*Card, error)
	Snapshot() []domain.Container
	NextID(start string) (string, error)
	Create(ctx context.Context, in domain.CreateInput) (*domain.Container, error)
	RegisterShipment(ctx context.Context, id string, in domain.ShipmentInput) (*domain.Container, error)
	ConfirmReceipt(ctx context.Context, id string, in domain.ShipmentInput) (*domain.Container, error)
	Delete(ctx context.Context, id string) error
	Refresh(ctx context.Context) error
	Reload(ctx context.Context) error
	LastRefresh() time.Time
}
