package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tracking_service/internal/access"
	"tracking_service/internal/errdefs"
	"tracking_service/internal/events"
	"tracking_service/internal/model"
)

const (
	syncAcademicYear = "2024-2025"
	syncDescription  = "Synchronized from student import"
)

func (s *TrackingService) CreateClass(ctx context.Context, actor *model.Actor, input *model.CreateClassInput) (*model.Class, error) {
	if err := access.CanCreateClass(actor); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: class name is required", errdefs.ErrInvalidArgument)
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	class, err := tx.CreateClass(ctx, &model.RepositoryCreateClassInput{
		Name:         input.Name,
		Description:  input.Description,
		TeacherId:    actor.Id,
		AcademicYear: input.AcademicYear,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *TrackingService) ListClasses(ctx context.Context, actor *model.Actor) ([]*model.Class, error) {
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

	return tx.ListClasses(ctx, teacherId)
}

// managedClass loads a class and checks that the actor may manage it.
func managedClass(ctx context.Context, tx Tx, actor *model.Actor, id int64) (*model.Class, error) {
	class, err := tx.GetClass(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.CanManageClass(actor, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *TrackingService) GetClass(ctx context.Context, actor *model.Actor, id int64) (*model.Class, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	return managedClass(ctx, tx, actor, id)
}

func (s *TrackingService) UpdateClass(ctx context.Context, actor *model.Actor, id int64, input *model.UpdateClassInput) (*model.Class, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, fmt.Errorf("%w: class name cannot be empty", errdefs.ErrInvalidArgument)
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	if _, err := managedClass(ctx, tx, actor, id); err != nil {
		return nil, err
	}

	class, err := tx.UpdateClass(ctx, id, input)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *TrackingService) DeleteClass(ctx context.Context, actor *model.Actor, id int64) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	if _, err := managedClass(ctx, tx, actor, id); err != nil {
		return err
	}
	if err := tx.DeleteClass(ctx, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *TrackingService) ListClassStudents(ctx context.Context, actor *model.Actor, classId int64) ([]*model.Actor, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	if _, err := managedClass(ctx, tx, actor, classId); err != nil {
		return nil, err
	}
	return tx.ListClassStudents(ctx, classId)
}

// AddStudentsToClass links the given students and returns how many links were
// created. Unknown ids, non-students and existing members are skipped.
func (s *TrackingService) AddStudentsToClass(ctx context.Context, actor *model.Actor, classId int64, studentIds []int64) (int, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return 0, err
	}
	defer rollback(ctx, tx)

	if _, err := managedClass(ctx, tx, actor, classId); err != nil {
		return 0, err
	}

	added := 0
	seen := make(map[int64]struct{}, len(studentIds))
	for _, id := range studentIds {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		ok, err := tx.AddClassMember(ctx, classId, id)
		if err != nil {
			return 0, err
		}
		if ok {
			added++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return added, nil
}

func (s *TrackingService) RemoveStudentFromClass(ctx context.Context, actor *model.Actor, classId, studentId int64) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	if _, err := managedClass(ctx, tx, actor, classId); err != nil {
		return err
	}
	if err := tx.RemoveClassMember(ctx, classId, studentId); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// SyncClassesFromLegacyNames turns the free-text class labels of the actor's
// students and of orphan students into classes owned by the actor. Orphans
// carrying a label are adopted by a teacher actor. Running it again changes
// nothing.
func (s *TrackingService) SyncClassesFromLegacyNames(ctx context.Context, actor *model.Actor) (*model.SyncResult, error) {
	if err := access.RequireStaff(actor); err != nil {
		return nil, err
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	names, err := tx.ListLegacyClassNames(ctx, actor.Id)
	if err != nil {
		return nil, err
	}

	result := &model.SyncResult{}
	for _, name := range names {
		class, err := tx.FindClassByName(ctx, actor.Id, name)
		if errors.Is(err, errdefs.ErrNotFound) {
			academicYear, description := syncAcademicYear, syncDescription
			class, err = tx.CreateClass(ctx, &model.RepositoryCreateClassInput{
				Name:         name,
				Description:  &description,
				TeacherId:    actor.Id,
				AcademicYear: &academicYear,
			})
			if err != nil {
				return nil, fmt.Errorf("create class %q: %w", name, err)
			}
			result.ClassesCreated++
		} else if err != nil {
			return nil, err
		}

		// users.teacher_id only ever points at a teacher, so an admin links
		// orphans to its classes without adopting them.
		if actor.IsTeacher() {
			if _, err := tx.AdoptOrphansByClassName(ctx, actor.Id, name); err != nil {
				return nil, fmt.Errorf("adopt students of %q: %w", name, err)
			}
		}

		studentIds, err := tx.ListStudentIdsByClassName(ctx, actor.Id, name)
		if err != nil {
			return nil, err
		}
		for _, studentId := range studentIds {
			ok, err := tx.AddClassMember(ctx, class.Id, studentId)
			if err != nil {
				return nil, fmt.Errorf("link student %d to %q: %w", studentId, name, err)
			}
			if ok {
				result.StudentsLinked++
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if result.ClassesCreated > 0 || result.StudentsLinked > 0 {
		s.publish(ctx, events.New(events.ClassesSynced, actor.Id, actor.Id, result))
	}
	return result, nil
}
