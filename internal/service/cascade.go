package service

import (
	"context"
	"fmt"

	"tracking_service/internal/access"
	"tracking_service/internal/errdefs"
	"tracking_service/internal/events"
	"tracking_service/internal/model"
)

type purgePayload struct {
	StudentIds   []int64 `json:"student_ids"`
	DeletedCount int     `json:"deleted_count"`
}

// DeleteStudent removes one student with all of their submissions,
// evaluations and class links.
func (s *TrackingService) DeleteStudent(ctx context.Context, actor *model.Actor, id int64) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	student, err := tx.LockUserForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if err := access.CanManageStudent(actor, student); err != nil {
		return err
	}

	deleted, err := tx.DeleteStudents(ctx, []int64{student.Id})
	if err != nil {
		return fmt.Errorf("delete student %d: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("delete student %d: %w", id, err)
	}

	s.publish(ctx, events.New(events.StudentsPurged, actor.Id, student.Id, purgePayload{
		StudentIds:   []int64{student.Id},
		DeletedCount: int(deleted),
	}))
	return nil
}

// PurgeStudents removes every student in scope in one transaction. Either all
// of them go or none do.
func (s *TrackingService) PurgeStudents(ctx context.Context, actor *model.Actor, scope model.PurgeScope) (*model.PurgeResult, error) {
	if err := access.CanPurge(actor, scope); err != nil {
		return nil, err
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	if scope.TeacherId != nil {
		teacher, err := tx.GetUser(ctx, *scope.TeacherId)
		if err != nil {
			return nil, err
		}
		if !teacher.IsTeacher() {
			return nil, fmt.Errorf("%w: user %d is not a teacher", errdefs.ErrNotFound, teacher.Id)
		}
	}

	ids, err := tx.LockStudents(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("purge students: %w", err)
	}

	deleted, err := tx.DeleteStudents(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("purge students: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("purge students: %w", err)
	}

	result := &model.PurgeResult{DeletedCount: int(deleted)}
	if deleted > 0 {
		var key int64
		if scope.TeacherId != nil {
			key = *scope.TeacherId
		}
		s.publish(ctx, events.New(events.StudentsPurged, actor.Id, key, purgePayload{
			StudentIds:   ids,
			DeletedCount: result.DeletedCount,
		}))
	}
	return result, nil
}

// DeleteTeacher removes a teacher account. Their students become orphans and
// reviews they wrote keep their grade with the reviewer reference cleared.
func (s *TrackingService) DeleteTeacher(ctx context.Context, actor *model.Actor, teacherId int64) error {
	if err := access.RequireAdmin(actor); err != nil {
		return err
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	teacher, err := tx.LockUserForUpdate(ctx, teacherId)
	if err != nil {
		return err
	}
	if !teacher.IsTeacher() {
		return fmt.Errorf("%w: user %d is not a teacher", errdefs.ErrNotFound, teacherId)
	}

	if err := tx.DeleteTeacher(ctx, teacherId); err != nil {
		return fmt.Errorf("delete teacher %d: %w", teacherId, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("delete teacher %d: %w", teacherId, err)
	}

	s.publish(ctx, events.New(events.TeacherDeleted, actor.Id, teacherId, nil))
	return nil
}
