package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tracking_service/internal/access"
	"tracking_service/internal/errdefs"
	"tracking_service/internal/model"
)

func (s *TrackingService) ListStudents(ctx context.Context, actor *model.Actor) ([]*model.Actor, error) {
	if err := access.RequireStaff(actor); err != nil {
		return nil, err
	}

	var teacherId *int64
	if actor.IsTeacher() {
		teacherId = &actor.Id
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	return tx.ListStudents(ctx, teacherId)
}

func (s *TrackingService) GetStudent(ctx context.Context, actor *model.Actor, id int64) (*model.Actor, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	student, err := tx.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.CanSeeStudent(actor, student); err != nil {
		return nil, err
	}
	return student, nil
}

// lockTeacher share-locks the user a student is being linked to, so a
// concurrent DeleteTeacher cannot remove it before commit.
func lockTeacher(ctx context.Context, tx Tx, id int64) (*model.Actor, error) {
	teacher, err := tx.LockUserForShare(ctx, id)
	if errors.Is(err, errdefs.ErrNotFound) || (err == nil && !teacher.IsTeacher()) {
		return nil, fmt.Errorf("%w: user %d is not a teacher", errdefs.ErrInvalidArgument, id)
	}
	if err != nil {
		return nil, err
	}
	return teacher, nil
}

// CreateStudent registers a student. A teacher always becomes the owner; an
// admin may pick a teacher or leave the student orphan.
func (s *TrackingService) CreateStudent(ctx context.Context, actor *model.Actor, input *model.CreateStudentInput) (*model.Actor, error) {
	if err := access.RequireStaff(actor); err != nil {
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

	var teacherId *int64
	switch {
	case actor.IsTeacher():
		teacherId = &actor.Id
	case input.TeacherId != nil:
		teacher, err := lockTeacher(ctx, tx, *input.TeacherId)
		if err != nil {
			return nil, err
		}
		teacherId = &teacher.Id
	}

	name := input.Name
	student, err := tx.CreateUser(ctx, &model.RepositoryCreateUserInput{
		Name:      &name,
		Email:     input.Email,
		Role:      model.RoleStudent,
		TeacherId: teacherId,
		ClassName: input.ClassName,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return student, nil
}

// UpdateStudent edits a student row. Only an admin may move a student to
// another teacher, which is how an orphan gets linked again.
func (s *TrackingService) UpdateStudent(ctx context.Context, actor *model.Actor, id int64, input *model.UpdateStudentInput) (*model.Actor, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", errdefs.ErrInvalidArgument)
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	student, err := tx.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.CanManageStudent(actor, student); err != nil {
		return nil, err
	}
	if input.TeacherId != nil {
		if err := access.RequireAdmin(actor); err != nil {
			return nil, err
		}
		if _, err := lockTeacher(ctx, tx, *input.TeacherId); err != nil {
			return nil, err
		}
	}

	updated, err := tx.UpdateUser(ctx, id, input)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}
