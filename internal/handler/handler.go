//go:generate mockgen -source=handler.go -destination=mocks/handler_mocks.go -package=mocks

package handler

import (
	"context"

	"tracking_service/internal/model"
)

type IdentityService interface {
	ResolveActor(ctx context.Context, id int64, claimedRole model.Role) (*model.Actor, error)
}

type DeadlineService interface {
	ResolveVisibleDeadlines(ctx context.Context, actor *model.Actor, filter *model.DeadlineFilter) ([]*model.Deadline, error)
	CalendarDeadlines(ctx context.Context, actor *model.Actor, year, month int) ([]*model.Deadline, error)
	GetDeadline(ctx context.Context, actor *model.Actor, id int64) (*model.Deadline, error)
	CreateDeadline(ctx context.Context, actor *model.Actor, input *model.CreateDeadlineInput) (*model.Deadline, error)
	UpdateDeadline(ctx context.Context, actor *model.Actor, id int64, input *model.UpdateDeadlineInput) (*model.Deadline, error)
	DeleteDeadline(ctx context.Context, actor *model.Actor, id int64) error
}

type SubmissionService interface {
	ResolveVisibleSubmissions(ctx context.Context, actor *model.Actor, filter *model.SubmissionFilter) ([]*model.Submission, error)
	GetSubmission(ctx context.Context, actor *model.Actor, id int64) (*model.Submission, error)
	CreateSubmission(ctx context.Context, actor *model.Actor, deadlineId int64, file model.FileRef) (*model.Submission, error)
	ReviewSubmission(ctx context.Context, actor *model.Actor, id int64, input *model.ReviewSubmissionInput) (*model.Submission, error)
	ReopenSubmission(ctx context.Context, actor *model.Actor, id int64) (*model.Submission, error)
	DeleteSubmission(ctx context.Context, actor *model.Actor, id int64) error
}

type ClassService interface {
	CreateClass(ctx context.Context, actor *model.Actor, input *model.CreateClassInput) (*model.Class, error)
	ListClasses(ctx context.Context, actor *model.Actor) ([]*model.Class, error)
	GetClass(ctx context.Context, actor *model.Actor, id int64) (*model.Class, error)
	UpdateClass(ctx context.Context, actor *model.Actor, id int64, input *model.UpdateClassInput) (*model.Class, error)
	DeleteClass(ctx context.Context, actor *model.Actor, id int64) error
	ListClassStudents(ctx context.Context, actor *model.Actor, classId int64) ([]*model.Actor, error)
	AddStudentsToClass(ctx context.Context, actor *model.Actor, classId int64, studentIds []int64) (int, error)
	RemoveStudentFromClass(ctx context.Context, actor *model.Actor, classId, studentId int64) error
	SyncClassesFromLegacyNames(ctx context.Context, actor *model.Actor) (*model.SyncResult, error)
}

type StudentService interface {
	ListStudents(ctx context.Context, actor *model.Actor) ([]*model.Actor, error)
	GetStudent(ctx context.Context, actor *model.Actor, id int64) (*model.Actor, error)
	CreateStudent(ctx context.Context, actor *model.Actor, input *model.CreateStudentInput) (*model.Actor, error)
	UpdateStudent(ctx context.Context, actor *model.Actor, id int64, input *model.UpdateStudentInput) (*model.Actor, error)
	DeleteStudent(ctx context.Context, actor *model.Actor, id int64) error
	PurgeStudents(ctx context.Context, actor *model.Actor, scope model.PurgeScope) (*model.PurgeResult, error)
}

type AdminService interface {
	ListTeachers(ctx context.Context, actor *model.Actor) ([]*model.TeacherSummary, error)
	CreateTeacher(ctx context.Context, actor *model.Actor, input *model.CreateTeacherInput) (*model.Actor, error)
	SetTeacherActive(ctx context.Context, actor *model.Actor, teacherId int64, active bool) (*model.Actor, error)
	DeleteTeacher(ctx context.Context, actor *model.Actor, teacherId int64) error
	Stats(ctx context.Context, actor *model.Actor) (*model.Stats, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
