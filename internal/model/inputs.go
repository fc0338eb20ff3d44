package model

import "time"

type CreateDeadlineInput struct {
	Title        string
	Description  *string
	DocumentType string
	DueDate      time.Time
	ExamType     *ExamType
	IsMandatory  bool
}

type UpdateDeadlineInput struct {
	Title        *string
	Description  *string
	DocumentType *string
	DueDate      *time.Time
	ExamType     *ExamType
	IsMandatory  *bool
}

type DeadlineFilter struct {
	ExamType     *ExamType
	UpcomingOnly bool
	From         *time.Time
	To           *time.Time
}

type FileRef struct {
	FileUrl  *string
	FileName *string
}

type ReviewSubmissionInput struct {
	Status   SubmissionStatus
	Grade    *float64
	Feedback *string
}

type SubmissionFilter struct {
	DeadlineId *int64
	StudentId  *int64
	Status     *SubmissionStatus
}

type CreateClassInput struct {
	Name         string
	Description  *string
	AcademicYear *string
}

type UpdateClassInput struct {
	Name         *string
	Description  *string
	AcademicYear *string
}

type CreateStudentInput struct {
	Name      string
	Email     *string
	ClassName *string
	// TeacherId is honored for admins only; a teacher always creates its own students.
	TeacherId *int64
}

type UpdateStudentInput struct {
	Name      *string
	Email     *string
	ClassName *string
	// TeacherId re-links the student to another teacher. Admins only.
	TeacherId *int64
}

type CreateTeacherInput struct {
	Name  string
	Email *string
}

type SyncResult struct {
	ClassesCreated int `json:"classes_created"`
	StudentsLinked int `json:"students_linked"`
}

// PurgeScope selects the students removed by a purge: either every student of
// one teacher or, with All set, every student in the system.
type PurgeScope struct {
	TeacherId *int64
	All       bool
}

type PurgeResult struct {
	DeletedCount int `json:"deleted_count"`
}

// Repository inputs

type RepositoryCreateSubmissionInput struct {
	StudentId  int64
	DeadlineId int64
	FileUrl    *string
	FileName   *string
	Status     SubmissionStatus
}

type RepositoryReviewSubmissionInput struct {
	Status     SubmissionStatus
	Grade      *float64
	Feedback   *string
	ReviewedAt *time.Time
	ReviewedBy *int64
}

type RepositoryCreateClassInput struct {
	Name         string
	Description  *string
	TeacherId    int64
	AcademicYear *string
}

type RepositoryCreateUserInput struct {
	Name      *string
	Email     *string
	Role      Role
	TeacherId *int64
	ClassName *string
}
