package ports

import (
	containers "container-tracker/internal/features/containers/domain"
	"container-tracker/internal/features/reconciliation/domain"
)

// SnapshotSource provides the containers to reconcile.
type SnapshotSource interface {
	Snapshot() []containers.Container
}

// ReportExporter renders a report as a downloadable document.
type ReportExporter interface {
	Export(report domain.Report) ([]byte, error)
}

// ReconciliationService defines the primary port for reconciliation.
type ReconciliationService interface {
	Suppliers() []string
	Report(supplier, period string) (*domain.Report, error)
	Export(supplier, period string) (*domain.Report, []byte, error)
}
