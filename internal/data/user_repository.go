package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"

	"tracking_service/internal/model"
)

const userColumns = `id, name, email, role, teacher_id, class_name, is_active, created_at`

func (r *Repository) GetUser(ctx context.Context, id int64) (*model.Actor, error) {
	query := `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
`
	var user model.Actor
	err := pgxscan.Get(ctx, r.db, &user, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

// LockUserForShare blocks a concurrent cascade from removing the user until the
// current transaction ends.
func (r *Repository) LockUserForShare(ctx context.Context, id int64) (*model.Actor, error) {
	query := `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
FOR SHARE
`
	var user model.Actor
	err := pgxscan.Get(ctx, r.db, &user, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *Repository) LockUserForUpdate(ctx context.Context, id int64) (*model.Actor, error) {
	query := `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
FOR UPDATE
`
	var user model.Actor
	err := pgxscan.Get(ctx, r.db, &user, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

// ListStudents returns every student, or only those linked to teacherId when set.
func (r *Repository) ListStudents(ctx context.Context, teacherId *int64) ([]*model.Actor, error) {
	query, args := buildListStudentsQuery(teacherId)
	var students []*model.Actor
	err := pgxscan.Select(ctx, r.db, &students, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return students, nil
}

func (r *Repository) CreateUser(ctx context.Context, input *model.RepositoryCreateUserInput) (*model.Actor, error) {
	query := `
INSERT INTO users (name, email, role, teacher_id, class_name)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + userColumns

	var user model.Actor
	err := pgxscan.Get(ctx, r.db, &user, query,
		input.Name,
		input.Email,
		input.Role,
		input.TeacherId,
		input.ClassName,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *Repository) UpdateUser(ctx context.Context, id int64, input *model.UpdateStudentInput) (*model.Actor, error) {
	query, args, err := buildUserUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	var user model.Actor
	err = pgxscan.Get(ctx, r.db, &user, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *Repository) SetUserActive(ctx context.Context, id int64, active bool) (*model.Actor, error) {
	query := `
UPDATE users
SET is_active = $1
WHERE id = $2
RETURNING ` + userColumns

	var user model.Actor
	err := pgxscan.Get(ctx, r.db, &user, query, active, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *Repository) ListTeachers(ctx context.Context) ([]*model.TeacherSummary, error) {
	query := `
SELECT
	u.id, u.name, u.email, u.role, u.teacher_id, u.class_name, u.is_active, u.created_at,
	(SELECT COUNT(*) FROM classes c WHERE c.teacher_id = u.id) AS class_count,
	(SELECT COUNT(*) FROM users s WHERE s.teacher_id = u.id) AS student_count
FROM users u
WHERE u.role = 'teacher'
ORDER BY u.name ASC NULLS LAST, u.id ASC
`
	var teachers []*model.TeacherSummary
	err := pgxscan.Select(ctx, r.db, &teachers, query)
	if err != nil {
		return nil, handleError(err)
	}
	return teachers, nil
}
