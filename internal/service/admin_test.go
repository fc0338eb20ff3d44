package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tracking_service/internal/errdefs"
	"tracking_service/internal/model"
)

func TestListTeachers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().ListTeachers(gomock.Any()).Return([]*model.TeacherSummary{
			{Actor: *teacher(1), ClassCount: 2, StudentCount: 30},
		}, nil)

		teachers, err := svc.ListTeachers(context.Background(), admin())
		require.NoError(t, err)
		require.Len(t, teachers, 1)
		assert.Equal(t, int64(30), teachers[0].StudentCount)
	})

	t.Run("TeacherForbidden", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		_, err := svc.ListTeachers(context.Background(), teacher(1))
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}

func TestCreateTeacher(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().CreateUser(gomock.Any(), &model.RepositoryCreateUserInput{
			Name:  ptr("Mme Martin"),
			Email: ptr("martin@school.fr"),
			Role:  model.RoleTeacher,
		}).Return(teacher(1), nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)

		created, err := svc.CreateTeacher(context.Background(), admin(), &model.CreateTeacherInput{
			Name:  "Mme Martin",
			Email: ptr("martin@school.fr"),
		})
		require.NoError(t, err)
		assert.Equal(t, model.RoleTeacher, created.Role)
	})

	t.Run("MissingName", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		_, err := svc.CreateTeacher(context.Background(), admin(), &model.CreateTeacherInput{})
		assert.ErrorIs(t, err, errdefs.ErrInvalidArgument)
	})
}

func TestSetTeacherActive(t *testing.T) {
	t.Run("Deactivate", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		inactive := teacher(1)
		inactive.IsActive = false

		tx.EXPECT().LockUserForUpdate(gomock.Any(), int64(1)).Return(teacher(1), nil)
		tx.EXPECT().SetUserActive(gomock.Any(), int64(1), false).Return(inactive, nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)

		result, err := svc.SetTeacherActive(context.Background(), admin(), 1, false)
		require.NoError(t, err)
		assert.False(t, result.IsActive)
	})

	t.Run("TargetIsStudent", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().LockUserForUpdate(gomock.Any(), int64(2)).Return(student(2, nil), nil)

		_, err := svc.SetTeacherActive(context.Background(), admin(), 2, true)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}

func TestStats(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetStats(gomock.Any()).Return(&model.Stats{TotalStudents: 10, OrphanStudents: 2}, nil)

		stats, err := svc.Stats(context.Background(), admin())
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.OrphanStudents)
	})

	t.Run("StudentForbidden", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		_, err := svc.Stats(context.Background(), student(2, nil))
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}
