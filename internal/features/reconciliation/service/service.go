package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"container-tracker/internal/core/textnorm"
	"container-tracker/internal/features/reconciliation/domain"
	"container-tracker/internal/features/reconciliation/ports"
)

// ErrInvalidPeriod is returned when a period is not written as YYYY-MM.
var ErrInvalidPeriod = errors.New("period must be written as YYYY-MM")

// ReconciliationServiceImpl implements ports.ReconciliationService.
type ReconciliationServiceImpl struct {
	source   ports.SnapshotSource
	exporter ports.ReportExporter
	loc      *time.Location
	now      func() time.Time
}

// NewReconciliationService creates a new ReconciliationServiceImpl. The
// current month is taken in loc.
func NewReconciliationService(source ports.SnapshotSource, exporter ports.ReportExporter, loc *time.Location) *ReconciliationServiceImpl {
	if loc == nil {
		loc = time.Local
	}
	return &ReconciliationServiceImpl{
		source:   source,
		exporter: exporter,
		loc:      loc,
		now:      time.Now,
	}
}

// Suppliers lists the suppliers that can be reconciled.
func (s *ReconciliationServiceImpl) Suppliers() []string {
	return domain.Suppliers(s.source.Snapshot())
}

// Report reconciles supplier over period (YYYY-MM). The supplier is matched
// ignoring case and accents, and an empty one selects the first supplier.
// An empty period selects the current month.
func (s *ReconciliationServiceImpl) Report(supplier, period string) (*domain.Report, error) {
	year, month, err := s.parsePeriod(period)
	if err != nil {
		return nil, err
	}

	snapshot := s.source.Snapshot()
	supplier = resolveSupplier(domain.Suppliers(snapshot), supplier)

	report := domain.Aggregate(snapshot, supplier, year, month)
	return &report, nil
}

// Export renders the report for supplier and period with the configured exporter.
func (s *ReconciliationServiceImpl) Export(supplier, period string) (*domain.Report, []byte, error) {
	report, err := s.Report(supplier, period)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.exporter.Export(*report)
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to export report: %w", err)
	}
	return report, data, nil
}

// resolveSupplier returns the known supplier written like name, ignoring case
// and accents. An empty name selects the first supplier.
func resolveSupplier(suppliers []string, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		if len(suppliers) > 0 {
			return suppliers[0]
		}
		return ""
	}
	for _, known := range suppliers {
		if textnorm.Equal(known, name) {
			return known
		}
	}
	return name
}

func (s *ReconciliationServiceImpl) parsePeriod(period string) (int, time.Month, error) {
	period = strings.TrimSpace(period)
	if period == "" {
		now := s.now().In(s.loc)
		return now.Year(), now.Month(), nil
	}

	t, err := time.Parse("2006-01", period)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	return t.Year(), t.Month(), nil
}
