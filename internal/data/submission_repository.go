package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"

	"tracking_service/internal/errdefs"
	"tracking_service/internal/model"
)

const submissionColumns = `
	s.id, s.student_id, s.deadline_id, s.file_url, s.file_name, s.submitted_at,
	s.status, s.grade, s.feedback, s.reviewed_at, s.reviewed_by,
	u.name AS student_name, d.title AS deadline_title`

type submissionOwnershipRow struct {
	model.Submission
	StudentTeacherId  *int64 `db:"student_teacher_id"`
	DeadlineTeacherId int64  `db:"deadline_teacher_id"`
}

func (row *submissionOwnershipRow) toModel() *model.SubmissionOwnership {
	submission := row.Submission
	return &model.SubmissionOwnership{
		Submission:        &submission,
		StudentTeacherId:  row.StudentTeacherId,
		DeadlineTeacherId: row.DeadlineTeacherId,
	}
}

func (r *Repository) SubmissionExists(ctx context.Context, studentId, deadlineId int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM submissions WHERE student_id = $1 AND deadline_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, studentId, deadlineId).Scan(&exists)
	if err != nil {
		return false, handleError(err)
	}
	return exists, nil
}

// CreateSubmission relies on uix_student_deadline to reject a concurrent
// duplicate; the violation surfaces as errdefs.ErrAlreadyExists.
func (r *Repository) CreateSubmission(ctx context.Context, input *model.RepositoryCreateSubmissionInput) (*model.Submission, error) {
	query := `
WITH s AS (
	INSERT INTO submissions (student_id, deadline_id, file_url, file_name, status)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING *
)
SELECT ` + submissionColumns + `
FROM s
JOIN users u ON u.id = s.student_id
JOIN deadlines d ON d.id = s.deadline_id
`
	var submission model.Submission
	err := pgxscan.Get(ctx, r.db, &submission, query,
		input.StudentId,
		input.DeadlineId,
		input.FileUrl,
		input.FileName,
		input.Status,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &submission, nil
}

func (r *Repository) getSubmissionOwnership(ctx context.Context, id int64, lock string) (*model.SubmissionOwnership, error) {
	query := `
SELECT ` + submissionColumns + `,
	u.teacher_id AS student_teacher_id,
	d.teacher_id AS deadline_teacher_id
FROM submissions s
JOIN users u ON u.id = s.student_id
JOIN deadlines d ON d.id = s.deadline_id
WHERE s.id = $1
` + lock

	var row submissionOwnershipRow
	err := pgxscan.Get(ctx, r.db, &row, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return row.toModel(), nil
}

// GetSubmissionOwnership loads a submission with both ends of its ownership paths.
func (r *Repository) GetSubmissionOwnership(ctx context.Context, id int64) (*model.SubmissionOwnership, error) {
	return r.getSubmissionOwnership(ctx, id, "")
}

// LockSubmissionOwnership is GetSubmissionOwnership holding the submission row
// for update, so the status and ownership checked are the ones written against.
func (r *Repository) LockSubmissionOwnership(ctx context.Context, id int64) (*model.SubmissionOwnership, error) {
	return r.getSubmissionOwnership(ctx, id, "FOR UPDATE OF s")
}

func (r *Repository) ListSubmissions(ctx context.Context, scope model.SubmissionScope, filter *model.SubmissionFilter) ([]*model.Submission, error) {
	query, args := buildListSubmissionsQuery(scope, filter)
	var submissions []*model.Submission
	err := pgxscan.Select(ctx, r.db, &submissions, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return submissions, nil
}

// ReviewSubmission only moves a pending submission; a submission that is no
// longer pending yields errdefs.ErrNotFound.
func (r *Repository) ReviewSubmission(ctx context.Context, id int64, input *model.RepositoryReviewSubmissionInput) (*model.Submission, error) {
	query := `
WITH s AS (
	UPDATE submissions
	SET status = $1, grade = $2, feedback = $3, reviewed_at = $4, reviewed_by = $5
	WHERE id = $6 AND status = 'pending'
	RETURNING *
)
SELECT ` + submissionColumns + `
FROM s
JOIN users u ON u.id = s.student_id
JOIN deadlines d ON d.id = s.deadline_id
`
	var submission model.Submission
	err := pgxscan.Get(ctx, r.db, &submission, query,
		input.Status,
		input.Grade,
		input.Feedback,
		input.ReviewedAt,
		input.ReviewedBy,
		id,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &submission, nil
}

func (r *Repository) ReopenSubmission(ctx context.Context, id int64) (*model.Submission, error) {
	query := `
WITH s AS (
	UPDATE submissions
	SET status = 'pending', grade = NULL, feedback = NULL, reviewed_at = NULL, reviewed_by = NULL
	WHERE id = $1
	RETURNING *
)
SELECT ` + submissionColumns + `
FROM s
JOIN users u ON u.id = s.student_id
JOIN deadlines d ON d.id = s.deadline_id
`
	var submission model.Submission
	err := pgxscan.Get(ctx, r.db, &submission, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &submission, nil
}

func (r *Repository) DeleteSubmission(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM submissions WHERE id = $1`, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
