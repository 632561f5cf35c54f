package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"container-tracker/internal/core/calendar"
	"container-tracker/internal/core/logger"
	"container-tracker/internal/features/containers/domain"
	"container-tracker/internal/features/containers/ports"

	"go.uber.org/zap"
)

var (
	// ErrContainerNotFound is returned when no active container has the requested id.
	ErrContainerNotFound = errors.New("container not found")
	// ErrIDCollision is returned when the identifier is already taken, by a deleted record too.
	ErrIDCollision = errors.New("container id already in use")
	// ErrInvalidStatus is returned when a board filter is not an active status.
	ErrInvalidStatus = errors.New("invalid status filter")
	// ErrInvalidStartDate is returned when an identifier is requested for an unreadable date.
	ErrInvalidStartDate = errors.New("invalid window start date")
)

// ContainerServiceImpl implements ports.ContainerService.
// It holds the last snapshot read from the repository and replaces it
// wholesale on every refresh.
type ContainerServiceImpl struct {
	repo ports.ContainerRepository
	loc  *time.Location
	now  func() time.Time

	mu          sync.RWMutex
	snapshot    []domain.Container
	refreshedAt time.Time
}

// NewContainerService creates a new ContainerServiceImpl. Dates are
// interpreted in loc.
func NewContainerService(repo ports.ContainerRepository, loc *time.Location) *ContainerServiceImpl {
	if loc == nil {
		loc = time.Local
	}
	return &ContainerServiceImpl{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

func (s *ContainerServiceImpl) today() time.Time {
	return s.now().In(s.loc)
}

// Refresh reloads the snapshot from the repository.
func (s *ContainerServiceImpl) Refresh(ctx context.Context) error {
	snapshot, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to load containers: %w", err)
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.refreshedAt = s.now()
	s.mu.Unlock()

	logger.Named("snapshot").Info("Snapshot refreshed", zap.Int("containers", len(snapshot)))
	return nil
}

// Reload drops any copy of the store kept by the repository and refreshes
// the snapshot from the store itself.
func (s *ContainerServiceImpl) Reload(ctx context.Context) error {
	if inv, ok := s.repo.(ports.SnapshotInvalidator); ok {
		inv.Invalidate(ctx)
	}
	return s.Refresh(ctx)
}

// Run refreshes the snapshot every interval until ctx is cancelled.
// A non-positive interval disables the loop.
func (s *ContainerServiceImpl) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				logger.Named("snapshot").Error("Background refresh failed", zap.Error(err))
			}
		}
	}
}

// LastRefresh returns when the snapshot was last replaced.
func (s *ContainerServiceImpl) LastRefresh() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt
}

// Snapshot returns a copy of the active containers of the current snapshot.
func (s *ContainerServiceImpl) Snapshot() []domain.Container {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Container, 0, len(s.snapshot))
	for _, c := range s.snapshot {
		if c.Status.IsActive() {
			out = append(out, c)
		}
	}
	return out
}

// Board returns the cards for status, or for every active status when it is empty.
// Planning cards come first ordered by window end, then transit and yard ordered by id.
func (s *ContainerServiceImpl) Board(status domain.Status) ([]ports.Card, error) {
	if status != "" && !status.IsActive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	today := s.today()
	cards := make([]ports.Card, 0)
	for _, c := range s.Snapshot() {
		if !c.Status.IsActive() || (status != "" && c.Status != status) {
			continue
		}
		cards = append(cards, newCard(c, today))
	}

	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		if a.Status != b.Status {
			return boardOrder[a.Status] < boardOrder[b.Status]
		}
		if a.Status == domain.StatusPlanning {
			ea, okA := calendar.ParseIn(a.WindowEnd, s.loc)
			eb, okB := calendar.ParseIn(b.WindowEnd, s.loc)
			if okA != okB {
				return okA
			}
			if okA && !ea.Equal(eb) {
				return ea.Before(eb)
			}
		}
		return a.ID < b.ID
	})

	return cards, nil
}

var boardOrder = map[domain.Status]int{
	domain.StatusPlanning: 0,
	domain.StatusTransit:  1,
	domain.StatusYard:     2,
}

// Get returns the card of one container.
func (s *ContainerServiceImpl) Get(id string) (*ports.Card, error) {
	c, err := s.find(id)
	if err != nil {
		return nil, err
	}
	card := newCard(*c, s.today())
	return &card, nil
}

// NextID previews the identifier a container starting on start would receive.
func (s *ContainerServiceImpl) NextID(start string) (string, error) {
	d, ok := calendar.ParseIn(start, s.loc)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStartDate, start)
	}
	return domain.GenerateID(d, s.ids()), nil
}

// Create validates and submits a new container. An empty id is generated
// from the window start.
func (s *ContainerServiceImpl) Create(ctx context.Context, in domain.CreateInput) (*domain.Container, error) {
	c, err := domain.NewContainer(in)
	if err != nil {
		return nil, err
	}

	ids := s.ids()
	if c.ID == "" {
		start, _ := calendar.ParseIn(c.WindowStart, s.loc)
		c.ID = domain.GenerateID(start, ids)
	}
	for _, id := range ids {
		if id == c.ID {
			return nil, fmt.Errorf("%w: %s", ErrIDCollision, c.ID)
		}
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("service: failed to create container: %w", err)
	}

	logger.Named("containers").Info("Container created",
		zap.String("container_id", c.ID),
		zap.String("supplier", c.Supplier),
	)
	s.refreshAfterMutation(ctx)
	return c, nil
}

// RegisterShipment records the collection of a container.
func (s *ContainerServiceImpl) RegisterShipment(ctx context.Context, id string, in domain.ShipmentInput) (*domain.Container, error) {
	return s.update(ctx, id, "shipment", func(c *domain.Container) error {
		return c.RegisterShipment(in)
	})
}

// ConfirmReceipt records the delivery of a container in the yard.
func (s *ContainerServiceImpl) ConfirmReceipt(ctx context.Context, id string, in domain.ShipmentInput) (*domain.Container, error) {
	return s.update(ctx, id, "receipt", func(c *domain.Container) error {
		return c.ConfirmReceipt(in)
	})
}

func (s *ContainerServiceImpl) update(ctx context.Context, id, event string, apply func(*domain.Container) error) (*domain.Container, error) {
	c, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if err := apply(c); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("service: failed to update container: %w", err)
	}

	logger.Named("containers").Info("Container updated",
		zap.String("container_id", c.ID),
		zap.String("event", event),
		zap.String("status", string(c.Status)),
	)
	s.refreshAfterMutation(ctx)
	return c, nil
}

// Delete soft-deletes a container.
func (s *ContainerServiceImpl) Delete(ctx context.Context, id string) error {
	c, err := s.find(id)
	if err != nil {
		return err
	}
	if err := c.MarkDeleted(); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, c.ID); err != nil {
		return fmt.Errorf("service: failed to delete container: %w", err)
	}

	logger.Named("containers").Info("Container deleted", zap.String("container_id", c.ID))
	s.refreshAfterMutation(ctx)
	return nil
}

// refreshAfterMutation reloads the snapshot once the store accepted a change.
// The change already succeeded, so a failed reload is only logged.
func (s *ContainerServiceImpl) refreshAfterMutation(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		logger.Named("snapshot").Warn("Refresh after mutation failed", zap.Error(err))
	}
}

// find returns a private copy of the container with the given id.
func (s *ContainerServiceImpl) find(id string) (*domain.Container, error) {
	id = domain.NormalizeID(id)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.snapshot {
		if c.ID == id && c.Status.IsActive() {
			c.Items = append([]domain.Item(nil), c.Items...)
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrContainerNotFound, id)
}

// ids returns every identifier known to the store, deleted records included.
func (s *ContainerServiceImpl) ids() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.snapshot))
	for _, c := range s.snapshot {
		ids = append(ids, c.ID)
	}
	return ids
}

func newCard(c domain.Container, today time.Time) ports.Card {
	return ports.Card{
		Container:          c,
		Deviation:          domain.Classify(&c, today),
		CollectWeek:        domain.IsCollectWeek(&c, today),
		TotalPlannedVolume: c.TotalPlannedVolume().StringFixed(2),
		Window:             calendar.FormatShort(c.WindowStart, false) + " - " + calendar.FormatShort(c.WindowEnd, false),
		Pickup:             calendar.FormatShort(c.PickupDate, true),
	}
}
