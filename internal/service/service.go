//go:generate mockgen -source=service.go -destination=mocks/service_mocks.go -package=mocks

package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tracking_service/internal/events"
	"tracking_service/internal/logging"
	"tracking_service/internal/model"
)

type Store interface {
	Begin(ctx context.Context) (Tx, error)
}

type UserRepository interface {
	GetUser(ctx context.Context, id int64) (*model.Actor, error)
	LockUserForShare(ctx context.Context, id int64) (*model.Actor, error)
	LockUserForUpdate(ctx context.Context, id int64) (*model.Actor, error)
	// ListStudents Set teacherId to nil to list every student
	ListStudents(ctx context.Context, teacherId *int64) ([]*model.Actor, error)
	CreateUser(ctx context.Context, input *model.RepositoryCreateUserInput) (*model.Actor, error)
	UpdateUser(ctx context.Context, id int64, input *model.UpdateStudentInput) (*model.Actor, error)
	SetUserActive(ctx context.Context, id int64, active bool) (*model.Actor, error)
	ListTeachers(ctx context.Context) ([]*model.TeacherSummary, error)
}

type ClassRepository interface {
	CreateClass(ctx context.Context, input *model.RepositoryCreateClassInput) (*model.Class, error)
	GetClass(ctx context.Context, id int64) (*model.Class, error)
	FindClassByName(ctx context.Context, teacherId int64, name string) (*model.Class, error)
	// ListClasses Set teacherId to nil to list every class
	ListClasses(ctx context.Context, teacherId *int64) ([]*model.Class, error)
	UpdateClass(ctx context.Context, id int64, input *model.UpdateClassInput) (*model.Class, error)
	DeleteClass(ctx context.Context, id int64) error
	ListClassStudents(ctx context.Context, classId int64) ([]*model.Actor, error)
	AddClassMember(ctx context.Context, classId, studentId int64) (bool, error)
	RemoveClassMember(ctx context.Context, classId, studentId int64) error
	ListLegacyClassNames(ctx context.Context, teacherId int64) ([]string, error)
	AdoptOrphansByClassName(ctx context.Context, teacherId int64, name string) (int64, error)
	ListStudentIdsByClassName(ctx context.Context, teacherId int64, name string) ([]int64, error)
}

type DeadlineRepository interface {
	CreateDeadline(ctx context.Context, teacherId int64, input *model.CreateDeadlineInput) (*model.Deadline, error)
	GetDeadline(ctx context.Context, id int64) (*model.Deadline, error)
	LockDeadlineForShare(ctx context.Context, id int64) (*model.Deadline, error)
	ListDeadlines(ctx context.Context, scope model.DeadlineScope, filter *model.DeadlineFilter) ([]*model.Deadline, error)
	UpdateDeadline(ctx context.Context, id int64, input *model.UpdateDeadlineInput) (*model.Deadline, error)
	DeleteDeadline(ctx context.Context, id int64) error
}

type SubmissionRepository interface {
	SubmissionExists(ctx context.Context, studentId, deadlineId int64) (bool, error)
	CreateSubmission(ctx context.Context, input *model.RepositoryCreateSubmissionInput) (*model.Submission, error)
	GetSubmissionOwnership(ctx context.Context, id int64) (*model.SubmissionOwnership, error)
	LockSubmissionOwnership(ctx context.Context, id int64) (*model.SubmissionOwnership, error)
	ListSubmissions(ctx context.Context, scope model.SubmissionScope, filter *model.SubmissionFilter) ([]*model.Submission, error)
	ReviewSubmission(ctx context.Context, id int64, input *model.RepositoryReviewSubmissionInput) (*model.Submission, error)
	ReopenSubmission(ctx context.Context, id int64) (*model.Submission, error)
	DeleteSubmission(ctx context.Context, id int64) error
}

type CascadeRepository interface {
	LockStudents(ctx context.Context, scope model.PurgeScope) ([]int64, error)
	DeleteStudents(ctx context.Context, ids []int64) (int64, error)
	DeleteTeacher(ctx context.Context, teacherId int64) error
}

type StatsRepository interface {
	GetStats(ctx context.Context) (*model.Stats, error)
}

// Tx is one database transaction. Every service operation runs inside exactly one.
type Tx interface {
	UserRepository
	ClassRepository
	DeadlineRepository
	SubmissionRepository
	CascadeRepository
	StatsRepository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type EventPublisher interface {
	Publish(ctx context.Context, evs ...events.Event) error
}

type TrackingService struct {
	store     Store
	publisher EventPublisher
	now       func() time.Time
}

func NewTrackingService(store Store, publisher EventPublisher) *TrackingService {
	return &TrackingService{store: store, publisher: publisher, now: time.Now}
}

func (s *TrackingService) begin(ctx context.Context) (Tx, error) {
	return s.store.Begin(ctx)
}

func rollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		logger, ok := logging.GetFromContext(ctx)
		if ok {
			logger.Error(ctx, "Failed to Rollback", zap.Error(err))
		}
	}
}

// publish runs after commit. The operation already happened, so a broker
// failure is only logged.
func (s *TrackingService) publish(ctx context.Context, evs ...events.Event) {
	if err := s.publisher.Publish(ctx, evs...); err != nil {
		logger, ok := logging.GetFromContext(ctx)
		if ok {
			logger.Warn(ctx, "Failed to publish events", zap.Error(err))
		}
	}
}
