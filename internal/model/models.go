package model

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleTeacher || r == RoleStudent
}

// ParseRole is the only way to turn an untrusted string into a Role.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}

// Actor is a row of the users table. TeacherID is only meaningful for students
// and always points from a student to a teacher.
type Actor struct {
	Id        int64     `db:"id" json:"id"`
	Name      *string   `db:"name" json:"name"`
	Email     *string   `db:"email" json:"email"`
	Role      Role      `db:"role" json:"role"`
	TeacherId *int64    `db:"teacher_id" json:"teacher_id"`
	ClassName *string   `db:"class_name" json:"class_name"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (a *Actor) IsAdmin() bool   { return a.Role == RoleAdmin }
func (a *Actor) IsTeacher() bool { return a.Role == RoleTeacher }
func (a *Actor) IsStudent() bool { return a.Role == RoleStudent }

// IsOrphan reports a student that has not been linked to a teacher yet.
func (a *Actor) IsOrphan() bool {
	return a.Role == RoleStudent && a.TeacherId == nil
}

// OwnedBy reports whether the student is linked to the given teacher.
func (a *Actor) OwnedBy(teacherId int64) bool {
	return a.TeacherId != nil && *a.TeacherId == teacherId
}

type Class struct {
	Id           int64      `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Description  *string    `db:"description" json:"description"`
	TeacherId    int64      `db:"teacher_id" json:"teacher_id"`
	AcademicYear *string    `db:"academic_year" json:"academic_year"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at"`
	StudentCount int64      `db:"student_count" json:"student_count"`
}

type ClassMembership struct {
	ClassId    int64     `db:"class_id" json:"class_id"`
	StudentId  int64     `db:"student_id" json:"student_id"`
	EnrolledAt time.Time `db:"enrolled_at" json:"enrolled_at"`
}

type ExamType string

const (
	ExamTypeE4  ExamType = "E4"
	ExamTypeE6  ExamType = "E6"
	ExamTypeAll ExamType = "ALL"
)

func (e ExamType) IsValid() bool {
	return e == ExamTypeE4 || e == ExamTypeE6 || e == ExamTypeAll
}

type Deadline struct {
	Id               int64      `db:"id" json:"id"`
	TeacherId        int64      `db:"teacher_id" json:"teacher_id"`
	Title            string     `db:"title" json:"title"`
	Description      *string    `db:"description" json:"description"`
	DocumentType     string     `db:"document_type" json:"document_type"`
	DueDate          time.Time  `db:"due_date" json:"due_date"`
	ExamType         *ExamType  `db:"exam_type" json:"exam_type"`
	IsMandatory      bool       `db:"is_mandatory" json:"is_mandatory"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at" json:"updated_at"`
	SubmissionsCount int64      `db:"submissions_count" json:"submissions_count"`
}

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusReviewed SubmissionStatus = "reviewed"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

func (s SubmissionStatus) String() string {
	return string(s)
}

func (s SubmissionStatus) IsValid() bool {
	return s == SubmissionStatusPending || s.IsTerminal()
}

// IsTerminal reports the states a review can move a submission into.
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionStatusReviewed || s == SubmissionStatusApproved || s == SubmissionStatusRejected
}

func SubmissionStatusFromString(s string) (SubmissionStatus, bool) {
	status := SubmissionStatus(s)
	return status, status.IsValid()
}

const (
	MinGrade = 0.0
	MaxGrade = 20.0
)

type Submission struct {
	Id            int64            `db:"id" json:"id"`
	StudentId     int64            `db:"student_id" json:"student_id"`
	DeadlineId    int64            `db:"deadline_id" json:"deadline_id"`
	FileUrl       *string          `db:"file_url" json:"file_url"`
	FileName      *string          `db:"file_name" json:"file_name"`
	SubmittedAt   time.Time        `db:"submitted_at" json:"submitted_at"`
	Status        SubmissionStatus `db:"status" json:"status"`
	Grade         *float64         `db:"grade" json:"grade"`
	Feedback      *string          `db:"feedback" json:"feedback"`
	ReviewedAt    *time.Time       `db:"reviewed_at" json:"reviewed_at"`
	ReviewedBy    *int64           `db:"reviewed_by" json:"reviewed_by"`
	StudentName   *string          `db:"student_name" json:"student_name"`
	DeadlineTitle *string          `db:"deadline_title" json:"deadline_title"`
}

// SubmissionOwnership is everything needed to authorize an action on a
// submission: the row itself plus both ends of the two ownership paths.
type SubmissionOwnership struct {
	Submission        *Submission
	StudentTeacherId  *int64
	DeadlineTeacherId int64
}

type TeacherSummary struct {
	Actor
	ClassCount   int64 `db:"class_count" json:"class_count"`
	StudentCount int64 `db:"student_count" json:"student_count"`
}

type Stats struct {
	TotalTeachers    int64    `db:"total_teachers" json:"total_teachers"`
	TotalStudents    int64    `db:"total_students" json:"total_students"`
	OrphanStudents   int64    `db:"orphan_students" json:"orphan_students"`
	TotalClasses     int64    `db:"total_classes" json:"total_classes"`
	TotalDeadlines   int64    `db:"total_deadlines" json:"total_deadlines"`
	TotalSubmissions int64    `db:"total_submissions" json:"total_submissions"`
	PendingReviews   int64    `db:"pending_reviews" json:"pending_reviews"`
	AverageGrade     *float64 `db:"average_grade" json:"average_grade"`
}
