package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"

	"tracking_service/internal/model"
)

func (r *Repository) GetStats(ctx context.Context) (*model.Stats, error) {
	query := `
SELECT
	(SELECT COUNT(*) FROM users WHERE role = 'teacher') AS total_teachers,
	(SELECT COUNT(*) FROM users WHERE role = 'student') AS total_students,
	(SELECT COUNT(*) FROM users WHERE role = 'student' AND teacher_id IS NULL) AS orphan_students,
	(SELECT COUNT(*) FROM classes) AS total_classes,
	(SELECT COUNT(*) FROM deadlines) AS total_deadlines,
	(SELECT COUNT(*) FROM submissions) AS total_submissions,
	(SELECT COUNT(*) FROM submissions WHERE status = 'pending') AS pending_reviews,
	(SELECT AVG(grade)::float8 FROM submissions WHERE grade IS NOT NULL) AS average_grade
`
	var stats model.Stats
	err := pgxscan.Get(ctx, r.db, &stats, query)
	if err != nil {
		return nil, handleError(err)
	}
	return &stats, nil
}
