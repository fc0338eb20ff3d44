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

func TestDeleteStudent(t *testing.T) {
	t.Run("OwningTeacher", func(t *testing.T) {
		svc, store, tx, publisher := setup(t)
		expectTx(store, tx)

		gomock.InOrder(
			tx.EXPECT().LockUserForUpdate(gomock.Any(), int64(2)).Return(student(2, ptr(int64(1))), nil),
			tx.EXPECT().DeleteStudents(gomock.Any(), []int64{2}).Return(int64(1), nil),
			tx.EXPECT().Commit(gomock.Any()).Return(nil),
		)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.DeleteStudent(context.Background(), teacher(1), 2))
	})

	t.Run("OrphanForbiddenToTeacher", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().LockUserForUpdate(gomock.Any(), int64(2)).Return(student(2, nil), nil)

		err := svc.DeleteStudent(context.Background(), teacher(1), 2)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("NotAStudent", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().LockUserForUpdate(gomock.Any(), int64(1)).Return(teacher(1), nil)

		err := svc.DeleteStudent(context.Background(), admin(), 1)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("CascadeFailureIsReported", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().LockUserForUpdate(gomock.Any(), int64(2)).Return(student(2, nil), nil)
		tx.EXPECT().DeleteStudents(gomock.Any(), []int64{2}).Return(int64(0), errors.New("delete evaluations: boom"))

		err := svc.DeleteStudent(context.Background(), admin(), 2)
		assert.ErrorContains(t, err, "delete student 2")
	})
}

func TestPurgeStudents(t *testing.T) {
	t.Run("TeacherPurgesOwnStudents", func(t *testing.T) {
		svc, store, tx, publisher := setup(t)
		expectTx(store, tx)
		scope := model.PurgeScope{TeacherId: ptr(int64(1))}

		gomock.InOrder(
			tx.EXPECT().GetUser(gomock.Any(), int64(1)).Return(teacher(1), nil),
			tx.EXPECT().LockStudents(gomock.Any(), scope).Return([]int64{2, 4}, nil),
			tx.EXPECT().DeleteStudents(gomock.Any(), []int64{2, 4}).Return(int64(2), nil),
			tx.EXPECT().Commit(gomock.Any()).Return(nil),
		)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		result, err := svc.PurgeStudents(context.Background(), teacher(1), scope)
		require.NoError(t, err)
		assert.Equal(t, 2, result.DeletedCount)
	})

	t.Run("AdminPurgesAll", func(t *testing.T) {
		svc, store, tx, publisher := setup(t)
		expectTx(store, tx)
		scope := model.PurgeScope{All: true}

		tx.EXPECT().LockStudents(gomock.Any(), scope).Return([]int64{2, 3, 4}, nil)
		tx.EXPECT().DeleteStudents(gomock.Any(), []int64{2, 3, 4}).Return(int64(3), nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		result, err := svc.PurgeStudents(context.Background(), admin(), scope)
		require.NoError(t, err)
		assert.Equal(t, 3, result.DeletedCount)
	})

	t.Run("NothingToPurge", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		scope := model.PurgeScope{All: true}

		tx.EXPECT().LockStudents(gomock.Any(), scope).Return(nil, nil)
		tx.EXPECT().DeleteStudents(gomock.Any(), gomock.Nil()).Return(int64(0), nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)

		result, err := svc.PurgeStudents(context.Background(), admin(), scope)
		require.NoError(t, err)
		assert.Equal(t, 0, result.DeletedCount)
	})

	t.Run("TeacherCannotPurgeAll", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		_, err := svc.PurgeStudents(context.Background(), teacher(1), model.PurgeScope{All: true})
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("FailureRollsBackWithoutCommit", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		scope := model.PurgeScope{All: true}
		cause := errors.New("delete evaluation scores: timeout")

		tx.EXPECT().LockStudents(gomock.Any(), scope).Return([]int64{2}, nil)
		tx.EXPECT().DeleteStudents(gomock.Any(), []int64{2}).Return(int64(0), cause)

		_, err := svc.PurgeStudents(context.Background(), admin(), scope)
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.ErrorContains(t, err, "purge students")
	})

	t.Run("UnknownTeacher", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetUser(gomock.Any(), int64(7)).Return(nil, errdefs.ErrNotFound)

		_, err := svc.PurgeStudents(context.Background(), admin(), model.PurgeScope{TeacherId: ptr(int64(7))})
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}

func TestDeleteTeacher(t *testing.T) {
	t.Run("Admin", func(t *testing.T) {
		svc, store, tx, publisher := setup(t)
		expectTx(store, tx)

		gomock.InOrder(
			tx.EXPECT().LockUserForUpdate(gomock.Any(), int64(1)).Return(teacher(1), nil),
			tx.EXPECT().DeleteTeacher(gomock.Any(), int64(1)).Return(nil),
			tx.EXPECT().Commit(gomock.Any()).Return(nil),
		)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.DeleteTeacher(context.Background(), admin(), 1))
	})

	t.Run("TeacherForbidden", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		err := svc.DeleteTeacher(context.Background(), teacher(2), 1)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("TargetIsStudent", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().LockUserForUpdate(gomock.Any(), int64(2)).Return(student(2, nil), nil)

		err := svc.DeleteTeacher(context.Background(), admin(), 2)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("CascadeFailure", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().LockUserForUpdate(gomock.Any(), int64(1)).Return(teacher(1), nil)
		tx.EXPECT().DeleteTeacher(gomock.Any(), int64(1)).Return(errors.New("detach student links: boom"))

		err := svc.DeleteTeacher(context.Background(), admin(), 1)
		assert.ErrorContains(t, err, "delete teacher 1")
	})
}
