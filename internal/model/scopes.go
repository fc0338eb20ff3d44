package model

// DeadlineScope is the visibility predicate over deadlines. All wins over
// TeacherId; a zero scope matches nothing.
type DeadlineScope struct {
	All       bool
	TeacherId *int64
}

// SubmissionScope is the visibility predicate over submissions.
// TeacherId selects the union of submissions whose student is linked to the
// teacher and submissions whose deadline the teacher owns.
type SubmissionScope struct {
	All       bool
	StudentId *int64
	TeacherId *int64
}

func (s DeadlineScope) IsEmpty() bool {
	return !s.All && s.TeacherId == nil
}

func (s SubmissionScope) IsEmpty() bool {
	return !s.All && s.StudentId == nil && s.TeacherId == nil
}
