package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tracking_service/internal/errdefs"
	"tracking_service/internal/model"
)

func ownership(id, studentId int64, studentTeacher *int64, deadlineTeacher int64, status model.SubmissionStatus) *model.SubmissionOwnership {
	return &model.SubmissionOwnership{
		Submission: &model.Submission{
			Id:         id,
			StudentId:  studentId,
			DeadlineId: 5,
			Status:     status,
		},
		StudentTeacherId:  studentTeacher,
		DeadlineTeacherId: deadlineTeacher,
	}
}

func TestResolveVisibleSubmissions(t *testing.T) {
	t.Run("TeacherUnionIncludesOrphanSubmission", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		orphanSubmission := &model.Submission{Id: 10, StudentId: 2, DeadlineId: 5, DeadlineTitle: ptr("Rapport")}
		scope := model.SubmissionScope{TeacherId: ptr(int64(1))}
		tx.EXPECT().ListSubmissions(gomock.Any(), scope, gomock.Nil()).Return([]*model.Submission{orphanSubmission}, nil)

		result, err := svc.ResolveVisibleSubmissions(context.Background(), teacher(1), nil)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, int64(2), result[0].StudentId)
	})

	t.Run("StudentOnlyOwn", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		filter := &model.SubmissionFilter{DeadlineId: ptr(int64(5))}
		scope := model.SubmissionScope{StudentId: ptr(int64(2))}
		tx.EXPECT().ListSubmissions(gomock.Any(), scope, filter).Return(nil, nil)

		result, err := svc.ResolveVisibleSubmissions(context.Background(), student(2, nil), filter)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("InvalidStatusFilter", func(t *testing.T) {
		svc, _, _, _ := setup(t)
		filter := &model.SubmissionFilter{Status: ptr(model.SubmissionStatus("lost"))}

		_, err := svc.ResolveVisibleSubmissions(context.Background(), admin(), filter)
		assert.ErrorIs(t, err, errdefs.ErrInvalidArgument)
	})
}

func TestGetSubmission(t *testing.T) {
	t.Run("TeacherThroughDeadline", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetSubmissionOwnership(gomock.Any(), int64(10)).
			Return(ownership(10, 2, nil, 1, model.SubmissionStatusPending), nil)

		s, err := svc.GetSubmission(context.Background(), teacher(1), 10)
		require.NoError(t, err)
		assert.Equal(t, int64(10), s.Id)
	})

	t.Run("OtherStudentForbidden", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetSubmissionOwnership(gomock.Any(), int64(10)).
			Return(ownership(10, 2, nil, 1, model.SubmissionStatusPending), nil)

		_, err := svc.GetSubmission(context.Background(), student(3, nil), 10)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}

func TestCreateSubmission(t *testing.T) {
	file := model.FileRef{FileUrl: ptr("https://files/rapport.pdf"), FileName: ptr("rapport.pdf")}
	deadline := &model.Deadline{Id: 5, TeacherId: 1, Title: "Rapport"}

	t.Run("OrphanStudentSubmits", func(t *testing.T) {
		svc, store, tx, publisher := setup(t)
		expectTx(store, tx)
		s := student(2, nil)

		tx.EXPECT().LockUserForShare(gomock.Any(), int64(2)).Return(s, nil)
		tx.EXPECT().LockDeadlineForShare(gomock.Any(), int64(5)).Return(deadline, nil)
		tx.EXPECT().SubmissionExists(gomock.Any(), int64(2), int64(5)).Return(false, nil)
		tx.EXPECT().CreateSubmission(gomock.Any(), &model.RepositoryCreateSubmissionInput{
			StudentId:  2,
			DeadlineId: 5,
			FileUrl:    file.FileUrl,
			FileName:   file.FileName,
			Status:     model.SubmissionStatusPending,
		}).Return(&model.Submission{Id: 10, StudentId: 2, DeadlineId: 5, Status: model.SubmissionStatusPending}, nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		result, err := svc.CreateSubmission(context.Background(), s, 5, file)
		require.NoError(t, err)
		assert.Equal(t, model.SubmissionStatusPending, result.Status)
	})

	t.Run("SecondSubmissionConflicts", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		s := student(2, nil)

		tx.EXPECT().LockUserForShare(gomock.Any(), int64(2)).Return(s, nil)
		tx.EXPECT().LockDeadlineForShare(gomock.Any(), int64(5)).Return(deadline, nil)
		tx.EXPECT().SubmissionExists(gomock.Any(), int64(2), int64(5)).Return(true, nil)

		_, err := svc.CreateSubmission(context.Background(), s, 5, file)
		assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	})

	t.Run("ConcurrentDuplicateHitsConstraint", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		s := student(2, nil)

		tx.EXPECT().LockUserForShare(gomock.Any(), int64(2)).Return(s, nil)
		tx.EXPECT().LockDeadlineForShare(gomock.Any(), int64(5)).Return(deadline, nil)
		tx.EXPECT().SubmissionExists(gomock.Any(), int64(2), int64(5)).Return(false, nil)
		tx.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).Return(nil, errdefs.ErrAlreadyExists)

		_, err := svc.CreateSubmission(context.Background(), s, 5, file)
		assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	})

	t.Run("StudentRemovedByCascade", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)

		tx.EXPECT().LockUserForShare(gomock.Any(), int64(2)).Return(nil, errdefs.ErrNotFound)

		_, err := svc.CreateSubmission(context.Background(), student(2, nil), 5, file)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("DeadlineOfAnotherTeacher", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		s := student(2, ptr(int64(7)))

		tx.EXPECT().LockUserForShare(gomock.Any(), int64(2)).Return(s, nil)
		tx.EXPECT().LockDeadlineForShare(gomock.Any(), int64(5)).Return(deadline, nil)

		_, err := svc.CreateSubmission(context.Background(), s, 5, file)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("TeacherCannotSubmit", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		_, err := svc.CreateSubmission(context.Background(), teacher(1), 5, file)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("PublishFailureDoesNotFail", func(t *testing.T) {
		svc, store, tx, publisher := setup(t)
		expectTx(store, tx)
		s := student(2, nil)

		tx.EXPECT().LockUserForShare(gomock.Any(), int64(2)).Return(s, nil)
		tx.EXPECT().LockDeadlineForShare(gomock.Any(), int64(5)).Return(deadline, nil)
		tx.EXPECT().SubmissionExists(gomock.Any(), int64(2), int64(5)).Return(false, nil)
		tx.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).Return(&model.Submission{Id: 10}, nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		_, err := svc.CreateSubmission(context.Background(), s, 5, file)
		assert.NoError(t, err)
	})
}

func TestReviewSubmission(t *testing.T) {
	t.Run("GradeOutOfRange", func(t *testing.T) {
		svc, _, _, _ := setup(t)
		input := &model.ReviewSubmissionInput{Status: model.SubmissionStatusApproved, Grade: ptr(21.0)}

		_, err := svc.ReviewSubmission(context.Background(), teacher(1), 10, input)
		assert.ErrorIs(t, err, errdefs.ErrInvalidArgument)
	})

	t.Run("NegativeGrade", func(t *testing.T) {
		svc, _, _, _ := setup(t)
		input := &model.ReviewSubmissionInput{Status: model.SubmissionStatusReviewed, Grade: ptr(-0.5)}

		_, err := svc.ReviewSubmission(context.Background(), teacher(1), 10, input)
		assert.ErrorIs(t, err, errdefs.ErrInvalidArgument)
	})

	t.Run("GradeWithThreeDecimals", func(t *testing.T) {
		svc, _, _, _ := setup(t)
		input := &model.ReviewSubmissionInput{Status: model.SubmissionStatusApproved, Grade: ptr(15.555)}

		_, err := svc.ReviewSubmission(context.Background(), teacher(1), 10, input)
		assert.ErrorIs(t, err, errdefs.ErrInvalidArgument)
	})

	t.Run("PendingIsNotAReviewStatus", func(t *testing.T) {
		svc, _, _, _ := setup(t)
		input := &model.ReviewSubmissionInput{Status: model.SubmissionStatusPending}

		_, err := svc.ReviewSubmission(context.Background(), teacher(1), 10, input)
		assert.ErrorIs(t, err, errdefs.ErrInvalidArgument)
	})

	t.Run("FractionalGradePersisted", func(t *testing.T) {
		svc, store, tx, publisher := setup(t)
		expectTx(store, tx)
		input := &model.ReviewSubmissionInput{
			Status:   model.SubmissionStatusApproved,
			Grade:    ptr(15.5),
			Feedback: ptr("Bien"),
		}

		tx.EXPECT().LockSubmissionOwnership(gomock.Any(), int64(10)).
			Return(ownership(10, 2, nil, 1, model.SubmissionStatusPending), nil)

		var got *model.RepositoryReviewSubmissionInput
		tx.EXPECT().ReviewSubmission(gomock.Any(), int64(10), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, in *model.RepositoryReviewSubmissionInput) (*model.Submission, error) {
				got = in
				return &model.Submission{Id: 10, Status: in.Status, Grade: in.Grade, ReviewedBy: in.ReviewedBy}, nil
			})
		tx.EXPECT().Commit(gomock.Any()).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		result, err := svc.ReviewSubmission(context.Background(), teacher(1), 10, input)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 15.5, *got.Grade)
		assert.Equal(t, int64(1), *got.ReviewedBy)
		assert.NotNil(t, got.ReviewedAt)
		assert.Equal(t, 15.5, *result.Grade)
		assert.Equal(t, model.SubmissionStatusApproved, result.Status)
	})

	t.Run("NotOwnedByTeacher", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		input := &model.ReviewSubmissionInput{Status: model.SubmissionStatusApproved}

		tx.EXPECT().LockSubmissionOwnership(gomock.Any(), int64(10)).
			Return(ownership(10, 2, ptr(int64(8)), 9, model.SubmissionStatusPending), nil)

		_, err := svc.ReviewSubmission(context.Background(), teacher(1), 10, input)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("AlreadyReviewed", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		input := &model.ReviewSubmissionInput{Status: model.SubmissionStatusRejected}

		tx.EXPECT().LockSubmissionOwnership(gomock.Any(), int64(10)).
			Return(ownership(10, 2, ptr(int64(1)), 1, model.SubmissionStatusApproved), nil)

		_, err := svc.ReviewSubmission(context.Background(), teacher(1), 10, input)
		assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	})

	t.Run("StudentForbidden", func(t *testing.T) {
		svc, _, _, _ := setup(t)
		input := &model.ReviewSubmissionInput{Status: model.SubmissionStatusApproved}

		_, err := svc.ReviewSubmission(context.Background(), student(2, nil), 10, input)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		input := &model.ReviewSubmissionInput{Status: model.SubmissionStatusApproved}

		tx.EXPECT().LockSubmissionOwnership(gomock.Any(), int64(10)).Return(nil, errdefs.ErrNotFound)

		_, err := svc.ReviewSubmission(context.Background(), admin(), 10, input)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}

func TestReopenSubmission(t *testing.T) {
	t.Run("AdminReopens", func(t *testing.T) {
		svc, store, tx, publisher := setup(t)
		expectTx(store, tx)

		tx.EXPECT().LockSubmissionOwnership(gomock.Any(), int64(10)).
			Return(ownership(10, 2, nil, 1, model.SubmissionStatusApproved), nil)
		tx.EXPECT().ReopenSubmission(gomock.Any(), int64(10)).
			Return(&model.Submission{Id: 10, Status: model.SubmissionStatusPending}, nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		result, err := svc.ReopenSubmission(context.Background(), admin(), 10)
		require.NoError(t, err)
		assert.Equal(t, model.SubmissionStatusPending, result.Status)
		assert.Nil(t, result.Grade)
	})

	t.Run("TeacherForbidden", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		_, err := svc.ReopenSubmission(context.Background(), teacher(1), 10)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("AlreadyPending", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)

		tx.EXPECT().LockSubmissionOwnership(gomock.Any(), int64(10)).
			Return(ownership(10, 2, nil, 1, model.SubmissionStatusPending), nil)

		_, err := svc.ReopenSubmission(context.Background(), admin(), 10)
		assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	})
}

func TestDeleteSubmission(t *testing.T) {
	t.Run("StudentDeletesPending", func(t *testing.T) {
		svc, store, tx, publisher := setup(t)
		expectTx(store, tx)

		tx.EXPECT().LockSubmissionOwnership(gomock.Any(), int64(10)).
			Return(ownership(10, 2, nil, 1, model.SubmissionStatusPending), nil)
		tx.EXPECT().DeleteSubmission(gomock.Any(), int64(10)).Return(nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.DeleteSubmission(context.Background(), student(2, nil), 10))
	})

	t.Run("StudentCannotDeleteApproved", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)

		tx.EXPECT().LockSubmissionOwnership(gomock.Any(), int64(10)).
			Return(ownership(10, 2, nil, 1, model.SubmissionStatusApproved), nil)

		err := svc.DeleteSubmission(context.Background(), student(2, nil), 10)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("OwningTeacherDeletesReviewed", func(t *testing.T) {
		svc, store, tx, publisher := setup(t)
		expectTx(store, tx)

		tx.EXPECT().LockSubmissionOwnership(gomock.Any(), int64(10)).
			Return(ownership(10, 2, ptr(int64(1)), 9, model.SubmissionStatusReviewed), nil)
		tx.EXPECT().DeleteSubmission(gomock.Any(), int64(10)).Return(nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.DeleteSubmission(context.Background(), teacher(1), 10))
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)

		tx.EXPECT().LockSubmissionOwnership(gomock.Any(), int64(10)).Return(nil, errdefs.ErrNotFound)

		err := svc.DeleteSubmission(context.Background(), admin(), 10)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}
