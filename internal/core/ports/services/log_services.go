package services

import (
	"context"

	"github.com/SscSPs/field_ops_app/internal/core/domain"
	"github.com/SscSPs/field_ops_app/internal/core/query"
	"github.com/SscSPs/field_ops_app/internal/dto"
)

// LogSubmitterSvc defines the submission side of the workflow.
type LogSubmitterSvc interface {
	// Submit validates fields and stores a new Pending log.
	// A rejected submission leaves the store untouched.
	Submit(ctx context.Context, fields dto.LogFields) (*domain.Log, error)
}

// LogReviewerSvc defines the reviewer actions.
type LogReviewerSvc interface {
	// SaveEdit replaces the stored log with the same id and kind.
	SaveEdit(ctx context.Context, log domain.Log) error

	// Approve marks every record with id as Approved.
	Approve(ctx context.Context, id string) error
}

// LogReaderSvc defines read operations for logs.
type LogReaderSvc interface {
	GetLog(ctx context.Context, id string) (*domain.Log, error)
	GetCombinedFiltered(ctx context.Context, criteria query.Criteria) ([]domain.Log, error)
	Summarize(ctx context.Context, criteria query.Criteria) (query.Summary, error)
	ListTimeEntries(ctx context.Context) ([]domain.TimeEntry, error)
	ListEquipmentEntries(ctx context.Context) ([]domain.EquipmentEntry, error)
	ListMaterialEntries(ctx context.Context) ([]domain.MaterialEntry, error)
}

// ReviewSvcFacade combines all review workflow interfaces
type ReviewSvcFacade interface {
	LogSubmitterSvc
	LogReviewerSvc
	LogReaderSvc
}
