package services

import (
	"context"
	"log/slog"
	"slices"

	"github.com/SscSPs/field_ops_app/internal/core/domain"
	portsrepo "github.com/SscSPs/field_ops_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/field_ops_app/internal/core/ports/services"
	"github.com/SscSPs/field_ops_app/internal/core/query"
)

// Dashboard keeps the reviewer's filtered view current. The view is
// recomputed synchronously on every store change and every SetCriteria.
type Dashboard struct {
	BaseService
	ctx         context.Context
	reader      portssvc.LogReaderSvc
	unsubscribe func()

	criteria query.Criteria
	logs     []domain.Log
	summary  query.Summary
	err      error
}

// NewDashboard computes the initial view and subscribes to notifier.
// The context is kept for logging during later recomputations.
func NewDashboard(ctx context.Context, reader portssvc.LogReaderSvc, notifier portsrepo.LogNotifier, criteria query.Criteria) (*Dashboard, error) {
	d := &Dashboard{ctx: ctx, reader: reader, criteria: criteria}
	if err := d.recompute(); err != nil {
		return nil, err
	}
	d.unsubscribe = notifier.Subscribe(d.onChange)
	return d, nil
}

func (d *Dashboard) onChange(event domain.ChangeEvent) {
	d.LogDebug(d.ctx, "Store changed, refreshing dashboard",
		slog.String("change", string(event.Type)),
		slog.String("log_id", event.ID))
	if err := d.recompute(); err != nil {
		d.LogWarn(d.ctx, "Dashboard view is stale", slog.String("log_id", event.ID))
	}
}

func (d *Dashboard) recompute() error {
	logs, err := d.reader.GetCombinedFiltered(d.ctx, d.criteria)
	if err != nil {
		d.LogError(d.ctx, err, "Failed to refresh dashboard")
		d.err = err
		return err
	}
	d.logs = logs
	d.summary = query.Summarize(logs)
	d.err = nil
	return nil
}

// SetCriteria replaces the filters and recomputes the view.
func (d *Dashboard) SetCriteria(criteria query.Criteria) error {
	d.criteria = criteria
	return d.recompute()
}

// Criteria returns the filters in effect.
func (d *Dashboard) Criteria() query.Criteria {
	return d.criteria
}

// Logs returns a copy of the current filtered view.
func (d *Dashboard) Logs() []domain.Log {
	return slices.Clone(d.logs)
}

// Summary returns the totals of the current view.
func (d *Dashboard) Summary() query.Summary {
	return d.summary
}

// Err returns the error of the last recomputation, if it failed.
func (d *Dashboard) Err() error {
	return d.err
}

// Close stops following store changes. It is safe to call more than once.
func (d *Dashboard) Close() {
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
}
