package service

import (
	"context"
	"fmt"
	"strings"

	"tracking_service/internal/access"
	"tracking_service/internal/errdefs"
	"tracking_service/internal/model"
)

func (s *TrackingService) ListTeachers(ctx context.Context, actor *model.Actor) ([]*model.TeacherSummary, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	return tx.ListTeachers(ctx)
}

func (s *TrackingService) CreateTeacher(ctx context.Context, actor *model.Actor, input *model.CreateTeacherInput) (*model.Actor, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", errdefs.ErrInvalidArgument)
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	name := input.Name
	teacher, err := tx.CreateUser(ctx, &model.RepositoryCreateUserInput{
		Name:  &name,
		Email: input.Email,
		Role:  model.RoleTeacher,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return teacher, nil
}

// SetTeacherActive toggles a teacher account. A deactivated teacher is rejected
// when the gateway identity is resolved.
func (s *TrackingService) SetTeacherActive(ctx context.Context, actor *model.Actor, teacherId int64, active bool) (*model.Actor, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	teacher, err := tx.LockUserForUpdate(ctx, teacherId)
	if err != nil {
		return nil, err
	}
	if !teacher.IsTeacher() {
		return nil, fmt.Errorf("%w: user %d is not a teacher", errdefs.ErrNotFound, teacherId)
	}

	updated, err := tx.SetUserActive(ctx, teacherId, active)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *TrackingService) Stats(ctx context.Context, actor *model.Actor) (*model.Stats, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	return tx.GetStats(ctx)
}
