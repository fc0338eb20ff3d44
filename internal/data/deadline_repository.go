package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"

	"tracking_service/internal/errdefs"
	"tracking_service/internal/model"
)

const deadlineColumns = `
	d.id, d.teacher_id, d.title, d.description, d.document_type, d.due_date,
	d.exam_type, d.is_mandatory, d.created_at, d.updated_at,
	(SELECT COUNT(*) FROM submissions s WHERE s.deadline_id = d.id) AS submissions_count`

func (r *Repository) CreateDeadline(ctx context.Context, teacherId int64, input *model.CreateDeadlineInput) (*model.Deadline, error) {
	query := `
INSERT INTO deadlines (teacher_id, title, description, document_type, due_date, exam_type, is_mandatory)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING
	id, teacher_id, title, description, document_type, due_date,
	exam_type, is_mandatory, created_at, updated_at, 0 AS submissions_count
`
	var deadline model.Deadline
	err := pgxscan.Get(ctx, r.db, &deadline, query,
		teacherId,
		input.Title,
		input.Description,
		input.DocumentType,
		input.DueDate,
		input.ExamType,
		input.IsMandatory,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &deadline, nil
}

func (r *Repository) GetDeadline(ctx context.Context, id int64) (*model.Deadline, error) {
	query := `
SELECT ` + deadlineColumns + `
FROM deadlines d
WHERE d.id = $1
`
	var deadline model.Deadline
	err := pgxscan.Get(ctx, r.db, &deadline, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &deadline, nil
}

// LockDeadlineForShare keeps the deadline alive until the current transaction
// ends, so a submission is never attached to a deadline being deleted.
func (r *Repository) LockDeadlineForShare(ctx context.Context, id int64) (*model.Deadline, error) {
	query := `
SELECT ` + deadlineColumns + `
FROM deadlines d
WHERE d.id = $1
FOR SHARE OF d
`
	var deadline model.Deadline
	err := pgxscan.Get(ctx, r.db, &deadline, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &deadline, nil
}

func (r *Repository) ListDeadlines(ctx context.Context, scope model.DeadlineScope, filter *model.DeadlineFilter) ([]*model.Deadline, error) {
	query, args := buildListDeadlinesQuery(scope, filter)
	var deadlines []*model.Deadline
	err := pgxscan.Select(ctx, r.db, &deadlines, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return deadlines, nil
}

func (r *Repository) UpdateDeadline(ctx context.Context, id int64, input *model.UpdateDeadlineInput) (*model.Deadline, error) {
	query, args, err := buildDeadlineUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	var deadline model.Deadline
	err = pgxscan.Get(ctx, r.db, &deadline, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return &deadline, nil
}

func (r *Repository) DeleteDeadline(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM deadlines WHERE id = $1`, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
