package data

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"tracking_service/internal/errdefs"
	"tracking_service/internal/model"
)

// LockStudents takes row locks on every student a purge removes and returns
// their ids. Writers that lock a student FOR SHARE wait for the purge.
func (r *Repository) LockStudents(ctx context.Context, scope model.PurgeScope) ([]int64, error) {
	query, args := buildLockStudentsQuery(scope)
	var ids []int64
	err := pgxscan.Select(ctx, r.db, &ids, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return ids, nil
}

type cascadeStep struct {
	name  string
	query string
}

// Children first: nothing below relies on ON DELETE CASCADE.
var studentCascade = []cascadeStep{
	{"submissions", `DELETE FROM submissions WHERE student_id = ANY($1)`},
	{"evaluation scores", `
DELETE FROM evaluation_scores
WHERE evaluation_id IN (SELECT id FROM evaluations WHERE student_id = ANY($1))`},
	{"evaluation attachments", `
DELETE FROM evaluation_attachments
WHERE evaluation_id IN (SELECT id FROM evaluations WHERE student_id = ANY($1))`},
	{"evaluations", `DELETE FROM evaluations WHERE student_id = ANY($1)`},
	{"class memberships", `DELETE FROM class_students WHERE student_id = ANY($1)`},
	{"users", `DELETE FROM users WHERE role = 'student' AND id = ANY($1)`},
}

// DeleteStudents removes the students and everything hanging off them. The
// rows must already be locked by the calling transaction. It returns the
// number of users removed.
func (r *Repository) DeleteStudents(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var deleted int64
	for _, step := range studentCascade {
		tag, err := r.db.Exec(ctx, step.query, ids)
		if err != nil {
			return 0, fmt.Errorf("delete %s: %w", step.name, handleError(err))
		}
		deleted = tag.RowsAffected()
	}
	return deleted, nil
}

var teacherCascade = []cascadeStep{
	{"reviewer references", `UPDATE submissions SET reviewed_by = NULL WHERE reviewed_by = $1`},
	{"evaluator references", `UPDATE evaluations SET evaluator_id = NULL WHERE evaluator_id = $1`},
	{"student links", `UPDATE users SET teacher_id = NULL WHERE teacher_id = $1`},
	{"deadline submissions", `
DELETE FROM submissions
WHERE deadline_id IN (SELECT id FROM deadlines WHERE teacher_id = $1)`},
	{"class memberships", `
DELETE FROM class_students
WHERE class_id IN (SELECT id FROM classes WHERE teacher_id = $1)`},
	{"classes", `DELETE FROM classes WHERE teacher_id = $1`},
	{"deadlines", `DELETE FROM deadlines WHERE teacher_id = $1`},
}

// DeleteTeacher removes a teacher whose row is already locked. Students become
// orphans, reviews keep their grade with reviewed_by nulled, owned deadlines
// and classes go away together with their submissions and memberships.
func (r *Repository) DeleteTeacher(ctx context.Context, teacherId int64) error {
	for _, step := range teacherCascade {
		if _, err := r.db.Exec(ctx, step.query, teacherId); err != nil {
			return fmt.Errorf("detach %s: %w", step.name, handleError(err))
		}
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1 AND role = 'teacher'`, teacherId)
	if err != nil {
		return fmt.Errorf("delete teacher: %w", handleError(err))
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
