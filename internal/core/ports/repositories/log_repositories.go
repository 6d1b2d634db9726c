package repositories

import (
	"context"

	"github.com/SscSPs/field_ops_app/internal/core/domain"
)

// LogReader defines read operations for the three log collections.
// Each list is returned in insertion order as a copy the caller may keep.
type LogReader interface {
	// FindLogByID retrieves a log of any kind by its id.
	FindLogByID(ctx context.Context, id string) (*domain.Log, error)

	// ListTimeEntries returns every time entry.
	ListTimeEntries(ctx context.Context) ([]domain.TimeEntry, error)

	// ListEquipmentEntries returns every equipment entry.
	ListEquipmentEntries(ctx context.Context) ([]domain.EquipmentEntry, error)

	// ListMaterialEntries returns every material entry.
	ListMaterialEntries(ctx context.Context) ([]domain.MaterialEntry, error)
}

// LogWriter defines write operations for logs.
type LogWriter interface {
	// CreateLog assigns a fresh id, sets status Pending and appends the log
	// to the collection matching its kind.
	CreateLog(ctx context.Context, log domain.Log) (domain.Log, error)

	// UpdateLog replaces the stored log with the same id and kind.
	// Id and status of the stored record are kept.
	UpdateLog(ctx context.Context, log domain.Log) error

	// SetLogStatus changes the status of every record carrying id.
	SetLogStatus(ctx context.Context, id string, status domain.Status) error
}

// LogObserver receives change notifications synchronously after each mutation.
type LogObserver func(event domain.ChangeEvent)

// LogNotifier lets consumers react to store changes.
type LogNotifier interface {
	// Subscribe registers fn and returns a function that removes it.
	Subscribe(fn LogObserver) (unsubscribe func())
}

// LogRepositoryFacade combines all log-related repository interfaces
// This is a facade for clients that need access to all operations
type LogRepositoryFacade interface {
	LogReader
	LogWriter
	LogNotifier
}
