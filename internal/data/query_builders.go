package data

import (
	"fmt"
	"strings"

	"tracking_service/internal/errdefs"
	"tracking_service/internal/model"
)

var ErrNoFieldsToUpdate = fmt.Errorf("%w: no fields to update", errdefs.ErrInvalidArgument)

type setBuilder struct {
	set  []string
	args []any
}

func (b *setBuilder) add(column string, value any) {
	b.args = append(b.args, value)
	b.set = append(b.set, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *setBuilder) next() int {
	return len(b.args) + 1
}

func buildUserUpdateQuery(input *model.UpdateStudentInput) (string, []any, error) {
	var b setBuilder
	if input.Name != nil {
		b.add("name", input.Name)
	}
	if input.Email != nil {
		b.add("email", input.Email)
	}
	if input.ClassName != nil {
		b.add("class_name", input.ClassName)
	}
	if input.TeacherId != nil {
		b.add("teacher_id", input.TeacherId)
	}

	if len(b.set) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}

	query := fmt.Sprintf(`
UPDATE users
SET %s
WHERE id = $%d
RETURNING `+userColumns,
		strings.Join(b.set, ", "),
		b.next(),
	)
	return query, b.args, nil
}

func buildClassUpdateQuery(input *model.UpdateClassInput) (string, []any, error) {
	var b setBuilder
	if input.Name != nil {
		b.add("name", input.Name)
	}
	if input.Description != nil {
		b.add("description", input.Description)
	}
	if input.AcademicYear != nil {
		b.add("academic_year", input.AcademicYear)
	}

	if len(b.set) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}

	query := fmt.Sprintf(`
WITH c AS (
	UPDATE classes
	SET %s, updated_at = now()
	WHERE id = $%d
	RETURNING *
)
SELECT `+classColumns+`
FROM c
`,
		strings.Join(b.set, ", "),
		b.next(),
	)
	return query, b.args, nil
}

func buildDeadlineUpdateQuery(input *model.UpdateDeadlineInput) (string, []any, error) {
	var b setBuilder
	if input.Title != nil {
		b.add("title", input.Title)
	}
	if input.Description != nil {
		b.add("description", input.Description)
	}
	if input.DocumentType != nil {
		b.add("document_type", input.DocumentType)
	}
	if input.DueDate != nil {
		b.add("due_date", input.DueDate)
	}
	if input.ExamType != nil {
		b.add("exam_type", input.ExamType)
	}
	if input.IsMandatory != nil {
		b.add("is_mandatory", input.IsMandatory)
	}

	if len(b.set) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}

	query := fmt.Sprintf(`
WITH d AS (
	UPDATE deadlines
	SET %s, updated_at = now()
	WHERE id = $%d
	RETURNING *
)
SELECT `+deadlineColumns+`
FROM d
`,
		strings.Join(b.set, ", "),
		b.next(),
	)
	return query, b.args, nil
}

type whereBuilder struct {
	where []string
	args  []any
}

// add appends a condition; every "?" in cond is replaced by the placeholder of value.
func (b *whereBuilder) add(cond string, value any) {
	b.args = append(b.args, value)
	b.where = append(b.where, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(b.args))))
}

func (b *whereBuilder) raw(cond string) {
	b.where = append(b.where, cond)
}

func (b *whereBuilder) clause() string {
	if len(b.where) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.where, " AND ") + "\n"
}

func buildListDeadlinesQuery(scope model.DeadlineScope, filter *model.DeadlineFilter) (string, []any) {
	var b whereBuilder

	switch {
	case scope.All:
	case scope.TeacherId != nil:
		b.add("d.teacher_id = ?", *scope.TeacherId)
	default:
		b.raw("FALSE")
	}

	if filter != nil {
		if filter.ExamType != nil {
			b.add("(d.exam_type = ? OR d.exam_type = 'ALL')", string(*filter.ExamType))
		}
		if filter.UpcomingOnly {
			b.raw("d.due_date >= CURRENT_DATE")
		}
		if filter.From != nil {
			b.add("d.due_date >= ?", *filter.From)
		}
		if filter.To != nil {
			b.add("d.due_date <= ?", *filter.To)
		}
	}

	query := `
SELECT ` + deadlineColumns + `
FROM deadlines d
` + b.clause() + `ORDER BY d.due_date ASC, d.id ASC
`
	return query, b.args
}

func buildListSubmissionsQuery(scope model.SubmissionScope, filter *model.SubmissionFilter) (string, []any) {
	var b whereBuilder

	switch {
	case scope.All:
	case scope.StudentId != nil:
		b.add("s.student_id = ?", *scope.StudentId)
	case scope.TeacherId != nil:
		b.add("(u.teacher_id = ? OR d.teacher_id = ?)", *scope.TeacherId)
	default:
		b.raw("FALSE")
	}

	if filter != nil {
		if filter.DeadlineId != nil {
			b.add("s.deadline_id = ?", *filter.DeadlineId)
		}
		if filter.StudentId != nil {
			b.add("s.student_id = ?", *filter.StudentId)
		}
		if filter.Status != nil {
			b.add("s.status = ?", string(*filter.Status))
		}
	}

	query := `
SELECT ` + submissionColumns + `
FROM submissions s
JOIN users u ON u.id = s.student_id
JOIN deadlines d ON d.id = s.deadline_id
` + b.clause() + `ORDER BY s.submitted_at DESC, s.id DESC
`
	return query, b.args
}

func buildListStudentsQuery(teacherId *int64) (string, []any) {
	var b whereBuilder
	b.raw("role = 'student'")
	if teacherId != nil {
		b.add("teacher_id = ?", *teacherId)
	}

	query := `
SELECT ` + userColumns + `
FROM users
` + b.clause() + `ORDER BY name ASC NULLS LAST, id ASC
`
	return query, b.args
}

func buildListClassesQuery(teacherId *int64) (string, []any) {
	var b whereBuilder
	if teacherId != nil {
		b.add("c.teacher_id = ?", *teacherId)
	}

	query := `
SELECT ` + classColumns + `
FROM classes c
` + b.clause() + `ORDER BY c.name ASC, c.id ASC
`
	return query, b.args
}

// buildLockStudentsQuery locks the student rows a purge removes.
func buildLockStudentsQuery(scope model.PurgeScope) (string, []any) {
	var b whereBuilder
	b.raw("role = 'student'")
	switch {
	case scope.All:
	case scope.TeacherId != nil:
		b.add("teacher_id = ?", *scope.TeacherId)
	default:
		b.raw("FALSE")
	}

	query := `
SELECT id
FROM users
` + b.clause() + `ORDER BY id
FOR UPDATE
`
	return query, b.args
}
