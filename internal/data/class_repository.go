package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"

	"tracking_service/internal/errdefs"
	"tracking_service/internal/model"
)

const classColumns = `
	c.id, c.name, c.description, c.teacher_id, c.academic_year, c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM class_students cs WHERE cs.class_id = c.id) AS student_count`

func (r *Repository) CreateClass(ctx context.Context, input *model.RepositoryCreateClassInput) (*model.Class, error) {
	query := `
INSERT INTO classes (name, description, teacher_id, academic_year)
VALUES ($1, $2, $3, $4)
RETURNING id, name, description, teacher_id, academic_year, created_at, updated_at, 0 AS student_count
`
	var class model.Class
	err := pgxscan.Get(ctx, r.db, &class, query,
		input.Name,
		input.Description,
		input.TeacherId,
		input.AcademicYear,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &class, nil
}

func (r *Repository) GetClass(ctx context.Context, id int64) (*model.Class, error) {
	query := `
SELECT ` + classColumns + `
FROM classes c
WHERE c.id = $1
`
	var class model.Class
	err := pgxscan.Get(ctx, r.db, &class, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &class, nil
}

func (r *Repository) FindClassByName(ctx context.Context, teacherId int64, name string) (*model.Class, error) {
	query := `
SELECT ` + classColumns + `
FROM classes c
WHERE c.teacher_id = $1 AND c.name = $2
ORDER BY c.id
LIMIT 1
`
	var class model.Class
	err := pgxscan.Get(ctx, r.db, &class, query, teacherId, name)
	if err != nil {
		return nil, handleError(err)
	}
	return &class, nil
}

// ListClasses returns every class, or only the classes owned by teacherId when set.
func (r *Repository) ListClasses(ctx context.Context, teacherId *int64) ([]*model.Class, error) {
	query, args := buildListClassesQuery(teacherId)
	var classes []*model.Class
	err := pgxscan.Select(ctx, r.db, &classes, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return classes, nil
}

func (r *Repository) UpdateClass(ctx context.Context, id int64, input *model.UpdateClassInput) (*model.Class, error) {
	query, args, err := buildClassUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	var class model.Class
	err = pgxscan.Get(ctx, r.db, &class, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return &class, nil
}

// DeleteClass removes the class; memberships go with it through ON DELETE CASCADE.
func (r *Repository) DeleteClass(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

func (r *Repository) ListClassStudents(ctx context.Context, classId int64) ([]*model.Actor, error) {
	query := `
SELECT u.id, u.name, u.email, u.role, u.teacher_id, u.class_name, u.is_active, u.created_at
FROM class_students cs
JOIN users u ON u.id = cs.student_id
WHERE cs.class_id = $1
ORDER BY u.name ASC NULLS LAST, u.id ASC
`
	var students []*model.Actor
	err := pgxscan.Select(ctx, r.db, &students, query, classId)
	if err != nil {
		return nil, handleError(err)
	}
	return students, nil
}

// AddClassMember links a student to a class. It reports false without an error
// when the user is missing, is not a student, or is already a member.
func (r *Repository) AddClassMember(ctx context.Context, classId, studentId int64) (bool, error) {
	query := `
INSERT INTO class_students (class_id, student_id)
SELECT $1, u.id
FROM users u
WHERE u.id = $2 AND u.role = 'student'
ON CONFLICT (class_id, student_id) DO NOTHING
`
	tag, err := r.db.Exec(ctx, query, classId, studentId)
	if err != nil {
		return false, handleError(err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) RemoveClassMember(ctx context.Context, classId, studentId int64) error {
	query := `DELETE FROM class_students WHERE class_id = $1 AND student_id = $2`
	tag, err := r.db.Exec(ctx, query, classId, studentId)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

// ListLegacyClassNames returns the distinct non-empty class labels carried by
// students linked to teacherId or not linked to anyone.
func (r *Repository) ListLegacyClassNames(ctx context.Context, teacherId int64) ([]string, error) {
	query := `
SELECT DISTINCT class_name
FROM users
WHERE role = 'student'
	AND (teacher_id = $1 OR teacher_id IS NULL)
	AND class_name IS NOT NULL
	AND class_name <> ''
ORDER BY class_name
`
	var names []string
	err := pgxscan.Select(ctx, r.db, &names, query, teacherId)
	if err != nil {
		return nil, handleError(err)
	}
	return names, nil
}

// AdoptOrphansByClassName links every orphan student carrying the label to teacherId.
func (r *Repository) AdoptOrphansByClassName(ctx context.Context, teacherId int64, name string) (int64, error) {
	query := `
UPDATE users
SET teacher_id = $1
WHERE role = 'student' AND teacher_id IS NULL AND class_name = $2
`
	tag, err := r.db.Exec(ctx, query, teacherId, name)
	if err != nil {
		return 0, handleError(err)
	}
	return tag.RowsAffected(), nil
}

// ListStudentIdsByClassName returns the students carrying the label that are
// linked to teacherId or not linked to anyone.
func (r *Repository) ListStudentIdsByClassName(ctx context.Context, teacherId int64, name string) ([]int64, error) {
	query := `
SELECT id
FROM users
WHERE role = 'student'
	AND (teacher_id = $1 OR teacher_id IS NULL)
	AND class_name = $2
ORDER BY id
`
	var ids []int64
	err := pgxscan.Select(ctx, r.db, &ids, query, teacherId, name)
	if err != nil {
		return nil, handleError(err)
	}
	return ids, nil
}
