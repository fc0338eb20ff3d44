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

func TestListStudents(t *testing.T) {
	t.Run("TeacherOwnStudents", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().ListStudents(gomock.Any(), ptr(int64(1))).Return([]*model.Actor{student(2, ptr(int64(1)))}, nil)

		students, err := svc.ListStudents(context.Background(), teacher(1))
		require.NoError(t, err)
		assert.Len(t, students, 1)
	})

	t.Run("StudentForbidden", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		_, err := svc.ListStudents(context.Background(), student(2, nil))
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}

func TestGetStudent(t *testing.T) {
	t.Run("Self", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		s := student(2, nil)
		tx.EXPECT().GetUser(gomock.Any(), int64(2)).Return(s, nil)

		result, err := svc.GetStudent(context.Background(), s, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Id)
	})

	t.Run("OrphanHiddenFromTeacher", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetUser(gomock.Any(), int64(2)).Return(student(2, nil), nil)

		_, err := svc.GetStudent(context.Background(), teacher(1), 2)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}

func TestCreateStudent(t *testing.T) {
	t.Run("TeacherBecomesOwner", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().CreateUser(gomock.Any(), &model.RepositoryCreateUserInput{
			Name:      ptr("Alice"),
			Role:      model.RoleStudent,
			TeacherId: ptr(int64(1)),
			ClassName: ptr("BTS1"),
		}).Return(student(2, ptr(int64(1))), nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)

		// The requested teacher id is ignored for teachers.
		input := &model.CreateStudentInput{Name: "Alice", ClassName: ptr("BTS1"), TeacherId: ptr(int64(7))}
		s, err := svc.CreateStudent(context.Background(), teacher(1), input)
		require.NoError(t, err)
		assert.True(t, s.OwnedBy(1))
	})

	t.Run("AdminCreatesOrphan", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().CreateUser(gomock.Any(), &model.RepositoryCreateUserInput{
			Name: ptr("Bob"),
			Role: model.RoleStudent,
		}).Return(student(3, nil), nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)

		s, err := svc.CreateStudent(context.Background(), admin(), &model.CreateStudentInput{Name: "Bob"})
		require.NoError(t, err)
		assert.True(t, s.IsOrphan())
	})

	t.Run("AdminWithNonTeacherOwner", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().LockUserForShare(gomock.Any(), int64(4)).Return(student(4, nil), nil)

		_, err := svc.CreateStudent(context.Background(), admin(), &model.CreateStudentInput{Name: "Bob", TeacherId: ptr(int64(4))})
		assert.ErrorIs(t, err, errdefs.ErrInvalidArgument)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, errdefs.ErrAlreadyExists)

		_, err := svc.CreateStudent(context.Background(), teacher(1), &model.CreateStudentInput{Name: "Alice", Email: ptr("a@b.c")})
		assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	})
}

func TestUpdateStudent(t *testing.T) {
	t.Run("OtherTeacherForbidden", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetUser(gomock.Any(), int64(2)).Return(student(2, ptr(int64(1))), nil)

		_, err := svc.UpdateStudent(context.Background(), teacher(9), 2, &model.UpdateStudentInput{ClassName: ptr("BTS2")})
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("Owner", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		input := &model.UpdateStudentInput{ClassName: ptr("BTS2")}
		tx.EXPECT().GetUser(gomock.Any(), int64(2)).Return(student(2, ptr(int64(1))), nil)
		tx.EXPECT().UpdateUser(gomock.Any(), int64(2), input).Return(student(2, ptr(int64(1))), nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)

		_, err := svc.UpdateStudent(context.Background(), teacher(1), 2, input)
		require.NoError(t, err)
	})

	t.Run("AdminRelinksOrphan", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		input := &model.UpdateStudentInput{TeacherId: ptr(int64(5))}
		tx.EXPECT().GetUser(gomock.Any(), int64(7)).Return(student(7, nil), nil)
		tx.EXPECT().LockUserForShare(gomock.Any(), int64(5)).Return(teacher(5), nil)
		tx.EXPECT().UpdateUser(gomock.Any(), int64(7), input).Return(student(7, ptr(int64(5))), nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)

		s, err := svc.UpdateStudent(context.Background(), admin(), 7, input)
		require.NoError(t, err)
		assert.True(t, s.OwnedBy(5))
	})

	t.Run("TeacherCannotRelink", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetUser(gomock.Any(), int64(2)).Return(student(2, ptr(int64(1))), nil)

		input := &model.UpdateStudentInput{TeacherId: ptr(int64(5))}
		_, err := svc.UpdateStudent(context.Background(), teacher(1), 2, input)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("RelinkTargetNotATeacher", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetUser(gomock.Any(), int64(7)).Return(student(7, nil), nil)
		tx.EXPECT().LockUserForShare(gomock.Any(), int64(8)).Return(student(8, nil), nil)

		input := &model.UpdateStudentInput{TeacherId: ptr(int64(8))}
		_, err := svc.UpdateStudent(context.Background(), admin(), 7, input)
		assert.ErrorIs(t, err, errdefs.ErrInvalidArgument)
	})

	t.Run("RelinkTargetMissing", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetUser(gomock.Any(), int64(7)).Return(student(7, nil), nil)
		tx.EXPECT().LockUserForShare(gomock.Any(), int64(9)).Return(nil, errdefs.ErrNotFound)

		input := &model.UpdateStudentInput{TeacherId: ptr(int64(9))}
		_, err := svc.UpdateStudent(context.Background(), admin(), 7, input)
		assert.ErrorIs(t, err, errdefs.ErrInvalidArgument)
	})
}
