package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracking_service/internal/access"
	"tracking_service/internal/errdefs"
	"tracking_service/internal/model"
)

func ptr[T any](v T) *T {
	return &v
}

func admin() *model.Actor {
	return &model.Actor{Id: 100, Role: model.RoleAdmin, IsActive: true}
}

func teacher(id int64) *model.Actor {
	return &model.Actor{Id: id, Role: model.RoleTeacher, IsActive: true}
}

func student(id int64, teacherId *int64) *model.Actor {
	return &model.Actor{Id: id, Role: model.RoleStudent, TeacherId: teacherId, IsActive: true}
}

func ownership(studentId int64, studentTeacher *int64, deadlineTeacher int64, status model.SubmissionStatus) *model.SubmissionOwnership {
	return &model.SubmissionOwnership{
		Submission:        &model.Submission{Id: 1, StudentId: studentId, DeadlineId: 5, Status: status},
		StudentTeacherId:  studentTeacher,
		DeadlineTeacherId: deadlineTeacher,
	}
}

func TestDeadlineScope(t *testing.T) {
	t.Run("Admin", func(t *testing.T) {
		scope := access.DeadlineScope(admin())
		assert.True(t, scope.All)
	})

	t.Run("Teacher", func(t *testing.T) {
		scope := access.DeadlineScope(teacher(1))
		assert.False(t, scope.All)
		require.NotNil(t, scope.TeacherId)
		assert.Equal(t, int64(1), *scope.TeacherId)
	})

	t.Run("OrphanStudentSeesEverything", func(t *testing.T) {
		scope := access.DeadlineScope(student(2, nil))
		assert.True(t, scope.All)
	})

	t.Run("LinkedStudentSeesTeacherDeadlines", func(t *testing.T) {
		scope := access.DeadlineScope(student(2, ptr(int64(7))))
		assert.False(t, scope.All)
		require.NotNil(t, scope.TeacherId)
		assert.Equal(t, int64(7), *scope.TeacherId)
	})

	t.Run("UnknownRoleSeesNothing", func(t *testing.T) {
		scope := access.DeadlineScope(&model.Actor{Id: 3, Role: model.Role("guest")})
		assert.True(t, scope.IsEmpty())
	})
}

func TestCanSeeDeadline(t *testing.T) {
	deadline := &model.Deadline{Id: 5, TeacherId: 1}

	assert.True(t, access.CanSeeDeadline(admin(), deadline))
	assert.True(t, access.CanSeeDeadline(teacher(1), deadline))
	assert.False(t, access.CanSeeDeadline(teacher(9), deadline))
	assert.True(t, access.CanSeeDeadline(student(2, nil), deadline))
	assert.True(t, access.CanSeeDeadline(student(2, ptr(int64(1))), deadline))
	assert.False(t, access.CanSeeDeadline(student(2, ptr(int64(9))), deadline))
}

func TestSubmissionScope(t *testing.T) {
	t.Run("TeacherGetsUnionScope", func(t *testing.T) {
		scope := access.SubmissionScope(teacher(1))
		assert.False(t, scope.All)
		assert.Nil(t, scope.StudentId)
		require.NotNil(t, scope.TeacherId)
		assert.Equal(t, int64(1), *scope.TeacherId)
	})

	t.Run("OrphanStudentHasNoFallback", func(t *testing.T) {
		scope := access.SubmissionScope(student(2, nil))
		assert.False(t, scope.All)
		require.NotNil(t, scope.StudentId)
		assert.Equal(t, int64(2), *scope.StudentId)
	})

	t.Run("Admin", func(t *testing.T) {
		assert.True(t, access.SubmissionScope(admin()).All)
	})
}

func TestCanSeeSubmission(t *testing.T) {
	t.Run("TeacherThroughDeadlineForOrphan", func(t *testing.T) {
		o := ownership(2, nil, 1, model.SubmissionStatusPending)
		assert.True(t, access.CanSeeSubmission(teacher(1), o))
	})

	t.Run("TeacherThroughStudent", func(t *testing.T) {
		o := ownership(2, ptr(int64(1)), 9, model.SubmissionStatusPending)
		assert.True(t, access.CanSeeSubmission(teacher(1), o))
	})

	t.Run("TeacherWithoutEitherPath", func(t *testing.T) {
		o := ownership(2, ptr(int64(8)), 9, model.SubmissionStatusPending)
		assert.False(t, access.CanSeeSubmission(teacher(1), o))
	})

	t.Run("StudentOnlyOwn", func(t *testing.T) {
		o := ownership(2, nil, 1, model.SubmissionStatusPending)
		assert.True(t, access.CanSeeSubmission(student(2, nil), o))
		assert.False(t, access.CanSeeSubmission(student(3, nil), o))
	})
}

func TestCanReview(t *testing.T) {
	t.Run("NotOwnedTeacherIsForbidden", func(t *testing.T) {
		o := ownership(2, ptr(int64(8)), 9, model.SubmissionStatusPending)
		err := access.CanReview(teacher(1), o)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("DeadlineOwner", func(t *testing.T) {
		o := ownership(2, nil, 1, model.SubmissionStatusPending)
		assert.NoError(t, access.CanReview(teacher(1), o))
	})

	t.Run("StudentIsForbidden", func(t *testing.T) {
		o := ownership(2, nil, 1, model.SubmissionStatusPending)
		assert.ErrorIs(t, access.CanReview(student(2, nil), o), errdefs.ErrPermissionDenied)
	})

	t.Run("Admin", func(t *testing.T) {
		o := ownership(2, ptr(int64(8)), 9, model.SubmissionStatusPending)
		assert.NoError(t, access.CanReview(admin(), o))
	})
}

func TestCanDeleteSubmission(t *testing.T) {
	t.Run("StudentWhilePending", func(t *testing.T) {
		o := ownership(2, nil, 1, model.SubmissionStatusPending)
		assert.NoError(t, access.CanDeleteSubmission(student(2, nil), o))
	})

	t.Run("StudentAfterReview", func(t *testing.T) {
		o := ownership(2, nil, 1, model.SubmissionStatusApproved)
		assert.ErrorIs(t, access.CanDeleteSubmission(student(2, nil), o), errdefs.ErrPermissionDenied)
	})

	t.Run("OtherStudent", func(t *testing.T) {
		o := ownership(2, nil, 1, model.SubmissionStatusPending)
		assert.ErrorIs(t, access.CanDeleteSubmission(student(3, nil), o), errdefs.ErrPermissionDenied)
	})

	t.Run("OwningTeacherAfterReview", func(t *testing.T) {
		o := ownership(2, ptr(int64(1)), 9, model.SubmissionStatusRejected)
		assert.NoError(t, access.CanDeleteSubmission(teacher(1), o))
	})

	t.Run("ForeignTeacher", func(t *testing.T) {
		o := ownership(2, ptr(int64(8)), 9, model.SubmissionStatusPending)
		assert.ErrorIs(t, access.CanDeleteSubmission(teacher(1), o), errdefs.ErrPermissionDenied)
	})
}

func TestCanCreateSubmission(t *testing.T) {
	assert.NoError(t, access.CanCreateSubmission(student(2, nil), 2))
	assert.ErrorIs(t, access.CanCreateSubmission(student(2, nil), 3), errdefs.ErrPermissionDenied)
	assert.ErrorIs(t, access.CanCreateSubmission(teacher(1), 1), errdefs.ErrPermissionDenied)
}

func TestCanManageDeadlineAndClass(t *testing.T) {
	deadline := &model.Deadline{Id: 5, TeacherId: 1}
	class := &model.Class{Id: 3, TeacherId: 1}

	assert.NoError(t, access.CanManageDeadline(teacher(1), deadline))
	assert.NoError(t, access.CanManageDeadline(admin(), deadline))
	assert.ErrorIs(t, access.CanManageDeadline(teacher(2), deadline), errdefs.ErrPermissionDenied)
	assert.ErrorIs(t, access.CanManageDeadline(student(4, ptr(int64(1))), deadline), errdefs.ErrPermissionDenied)

	assert.NoError(t, access.CanManageClass(teacher(1), class))
	assert.ErrorIs(t, access.CanManageClass(teacher(2), class), errdefs.ErrPermissionDenied)

	assert.ErrorIs(t, access.CanCreateDeadline(student(4, nil)), errdefs.ErrPermissionDenied)
	assert.ErrorIs(t, access.CanCreateClass(student(4, nil)), errdefs.ErrPermissionDenied)
}

func TestCanManageStudent(t *testing.T) {
	linked := student(2, ptr(int64(1)))
	orphan := student(3, nil)

	assert.NoError(t, access.CanManageStudent(teacher(1), linked))
	assert.NoError(t, access.CanManageStudent(admin(), orphan))
	assert.ErrorIs(t, access.CanManageStudent(teacher(1), orphan), errdefs.ErrPermissionDenied)
	assert.ErrorIs(t, access.CanManageStudent(admin(), teacher(9)), errdefs.ErrNotFound)

	assert.NoError(t, access.CanSeeStudent(linked, linked))
	assert.ErrorIs(t, access.CanSeeStudent(orphan, linked), errdefs.ErrPermissionDenied)
}

func TestCanPurge(t *testing.T) {
	t.Run("AdminAll", func(t *testing.T) {
		assert.NoError(t, access.CanPurge(admin(), model.PurgeScope{All: true}))
	})

	t.Run("TeacherOwnStudents", func(t *testing.T) {
		assert.NoError(t, access.CanPurge(teacher(1), model.PurgeScope{TeacherId: ptr(int64(1))}))
	})

	t.Run("TeacherOtherTeacher", func(t *testing.T) {
		err := access.CanPurge(teacher(1), model.PurgeScope{TeacherId: ptr(int64(2))})
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("TeacherAll", func(t *testing.T) {
		err := access.CanPurge(teacher(1), model.PurgeScope{All: true})
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("AmbiguousScope", func(t *testing.T) {
		err := access.CanPurge(admin(), model.PurgeScope{})
		assert.ErrorIs(t, err, errdefs.ErrInvalidArgument)

		err = access.CanPurge(admin(), model.PurgeScope{All: true, TeacherId: ptr(int64(1))})
		assert.ErrorIs(t, err, errdefs.ErrInvalidArgument)
	})
}
