package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/field_ops_app/internal/apperrors"
	"github.com/SscSPs/field_ops_app/internal/core/domain"
	portsrepo "github.com/SscSPs/field_ops_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/field_ops_app/internal/core/ports/services"
	"github.com/SscSPs/field_ops_app/internal/core/query"
	"github.com/SscSPs/field_ops_app/internal/dto"
)

type reviewService struct {
	BaseService
	logRepo portsrepo.LogRepositoryFacade
}

// NewReviewService creates the submit/edit/approve workflow over logRepo.
func NewReviewService(logRepo portsrepo.LogRepositoryFacade) portssvc.ReviewSvcFacade {
	return &reviewService{logRepo: logRepo}
}

var _ portssvc.ReviewSvcFacade = (*reviewService)(nil)

func (s *reviewService) Submit(ctx context.Context, fields dto.LogFields) (*domain.Log, error) {
	if err := dto.Validate(fields); err != nil {
		s.LogDebug(ctx, "Submission rejected", slog.String("error", err.Error()))
		return nil, err
	}

	log, err := fields.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	created, err := s.logRepo.CreateLog(ctx, log)
	if err != nil {
		s.LogError(ctx, err, "Failed to create log in repository", slog.String("kind", string(log.Kind())))
		return nil, fmt.Errorf("failed to submit %s log: %w", log.Kind(), err)
	}

	s.LogInfo(ctx, "Log submitted", slog.String("log_id", created.ID()), slog.String("kind", string(created.Kind())))
	return &created, nil
}

func (s *reviewService) SaveEdit(ctx context.Context, log domain.Log) error {
	err := s.logRepo.UpdateLog(ctx, log)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Edit ignored, no such log", slog.String("log_id", log.ID()), slog.String("kind", string(log.Kind())))
		return nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to update log in repository", slog.String("log_id", log.ID()))
		return fmt.Errorf("failed to save edit: %w", err)
	}

	s.LogInfo(ctx, "Log edited", slog.String("log_id", log.ID()))
	return nil
}

func (s *reviewService) Approve(ctx context.Context, id string) error {
	err := s.logRepo.SetLogStatus(ctx, id, domain.Approved)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Approval ignored, no such log", slog.String("log_id", id))
		return nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to approve log", slog.String("log_id", id))
		return fmt.Errorf("failed to approve log: %w", err)
	}

	s.LogInfo(ctx, "Log approved", slog.String("log_id", id))
	return nil
}

func (s *reviewService) GetLog(ctx context.Context, id string) (*domain.Log, error) {
	log, err := s.logRepo.FindLogByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find log by ID in repository", slog.String("log_id", id))
		}
		return nil, err
	}
	return log, nil
}

func (s *reviewService) GetCombinedFiltered(ctx context.Context, criteria query.Criteria) ([]domain.Log, error) {
	logs, err := s.combined(ctx)
	if err != nil {
		return nil, err
	}
	filtered := query.Filter(logs, criteria)
	s.LogDebug(ctx, "Combined view computed", slog.Int("total", len(logs)), slog.Int("matched", len(filtered)))
	return filtered, nil
}

func (s *reviewService) Summarize(ctx context.Context, criteria query.Criteria) (query.Summary, error) {
	logs, err := s.GetCombinedFiltered(ctx, criteria)
	if err != nil {
		return query.Summary{}, err
	}
	return query.Summarize(logs), nil
}

func (s *reviewService) ListTimeEntries(ctx context.Context) ([]domain.TimeEntry, error) {
	entries, err := s.logRepo.ListTimeEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	return entries, nil
}

func (s *reviewService) ListEquipmentEntries(ctx context.Context) ([]domain.EquipmentEntry, error) {
	entries, err := s.logRepo.ListEquipmentEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment entries: %w", err)
	}
	return entries, nil
}

func (s *reviewService) ListMaterialEntries(ctx context.Context) ([]domain.MaterialEntry, error) {
	entries, err := s.logRepo.ListMaterialEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list material entries: %w", err)
	}
	return entries, nil
}

func (s *reviewService) combined(ctx context.Context) ([]domain.Log, error) {
	times, err := s.ListTimeEntries(ctx)
	if err != nil {
		return nil, err
	}
	equipment, err := s.ListEquipmentEntries(ctx)
	if err != nil {
		return nil, err
	}
	materials, err := s.ListMaterialEntries(ctx)
	if err != nil {
		return nil, err
	}
	return query.Combine(times, equipment, materials), nil
}
