package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tracking_service/internal/access"
	"tracking_service/internal/errdefs"
	"tracking_service/internal/model"
)

func (s *TrackingService) ResolveVisibleDeadlines(ctx context.Context, actor *model.Actor, filter *model.DeadlineFilter) ([]*model.Deadline, error) {
	if filter != nil && filter.ExamType != nil && !filter.ExamType.IsValid() {
		return nil, fmt.Errorf("%w: unknown exam type %q", errdefs.ErrInvalidArgument, *filter.ExamType)
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	return tx.ListDeadlines(ctx, access.DeadlineScope(actor), filter)
}

// CalendarDeadlines lists the visible deadlines due within one calendar month.
func (s *TrackingService) CalendarDeadlines(ctx context.Context, actor *model.Actor, year, month int) ([]*model.Deadline, error) {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: invalid month %d-%d", errdefs.ErrInvalidArgument, year, month)
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	return s.ResolveVisibleDeadlines(ctx, actor, &model.DeadlineFilter{From: &from, To: &to})
}

func (s *TrackingService) GetDeadline(ctx context.Context, actor *model.Actor, id int64) (*model.Deadline, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	deadline, err := tx.GetDeadline(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanSeeDeadline(actor, deadline) {
		return nil, errdefs.ErrPermissionDenied
	}
	return deadline, nil
}

func validateDeadline(title, documentType string, examType *model.ExamType) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", errdefs.ErrInvalidArgument)
	}
	if strings.TrimSpace(documentType) == "" {
		return fmt.Errorf("%w: document_type is required", errdefs.ErrInvalidArgument)
	}
	if examType != nil && !examType.IsValid() {
		return fmt.Errorf("%w: unknown exam type %q", errdefs.ErrInvalidArgument, *examType)
	}
	return nil
}

func (s *TrackingService) CreateDeadline(ctx context.Context, actor *model.Actor, input *model.CreateDeadlineInput) (*model.Deadline, error) {
	if err := access.CanCreateDeadline(actor); err != nil {
		return nil, err
	}
	if err := validateDeadline(input.Title, input.DocumentType, input.ExamType); err != nil {
		return nil, err
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	deadline, err := tx.CreateDeadline(ctx, actor.Id, input)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return deadline, nil
}

func (s *TrackingService) UpdateDeadline(ctx context.Context, actor *model.Actor, id int64, input *model.UpdateDeadlineInput) (*model.Deadline, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", errdefs.ErrInvalidArgument)
	}
	if input.DocumentType != nil && strings.TrimSpace(*input.DocumentType) == "" {
		return nil, fmt.Errorf("%w: document_type cannot be empty", errdefs.ErrInvalidArgument)
	}
	if input.ExamType != nil && !input.ExamType.IsValid() {
		return nil, fmt.Errorf("%w: unknown exam type %q", errdefs.ErrInvalidArgument, *input.ExamType)
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	deadline, err := tx.GetDeadline(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.CanManageDeadline(actor, deadline); err != nil {
		return nil, err
	}

	updated, err := tx.UpdateDeadline(ctx, id, input)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteDeadline removes the deadline and, through the foreign key, its submissions.
func (s *TrackingService) DeleteDeadline(ctx context.Context, actor *model.Actor, id int64) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	deadline, err := tx.GetDeadline(ctx, id)
	if err != nil {
		return err
	}
	if err := access.CanManageDeadline(actor, deadline); err != nil {
		return err
	}

	if err := tx.DeleteDeadline(ctx, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
