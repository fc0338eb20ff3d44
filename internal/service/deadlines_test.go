package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tracking_service/internal/errdefs"
	"tracking_service/internal/model"
)

func TestResolveVisibleDeadlines(t *testing.T) {
	all := []*model.Deadline{{Id: 5, TeacherId: 1}, {Id: 6, TeacherId: 2}}

	t.Run("OrphanStudentSeesAllDeadlines", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().ListDeadlines(gomock.Any(), model.DeadlineScope{All: true}, gomock.Nil()).Return(all, nil)

		result, err := svc.ResolveVisibleDeadlines(context.Background(), student(2, nil), nil)
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("LinkedStudentSeesTeacherDeadlines", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		scope := model.DeadlineScope{TeacherId: ptr(int64(1))}
		tx.EXPECT().ListDeadlines(gomock.Any(), scope, gomock.Nil()).Return(all[:1], nil)

		result, err := svc.ResolveVisibleDeadlines(context.Background(), student(2, ptr(int64(1))), nil)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, int64(1), result[0].TeacherId)
	})

	t.Run("TeacherSeesOwnDeadlines", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		filter := &model.DeadlineFilter{UpcomingOnly: true}
		tx.EXPECT().ListDeadlines(gomock.Any(), model.DeadlineScope{TeacherId: ptr(int64(2))}, filter).Return(all[1:], nil)

		result, err := svc.ResolveVisibleDeadlines(context.Background(), teacher(2), filter)
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("InvalidExamType", func(t *testing.T) {
		svc, _, _, _ := setup(t)
		filter := &model.DeadlineFilter{ExamType: ptr(model.ExamType("E9"))}

		_, err := svc.ResolveVisibleDeadlines(context.Background(), teacher(1), filter)
		assert.ErrorIs(t, err, errdefs.ErrInvalidArgument)
	})
}

func TestCalendarDeadlines(t *testing.T) {
	t.Run("MonthBounds", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)

		var got *model.DeadlineFilter
		tx.EXPECT().ListDeadlines(gomock.Any(), model.DeadlineScope{All: true}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ model.DeadlineScope, f *model.DeadlineFilter) ([]*model.Deadline, error) {
				got = f
				return nil, nil
			})

		_, err := svc.CalendarDeadlines(context.Background(), admin(), 2024, 2)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *got.From)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *got.To)
	})

	t.Run("InvalidMonth", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		_, err := svc.CalendarDeadlines(context.Background(), admin(), 2024, 13)
		assert.ErrorIs(t, err, errdefs.ErrInvalidArgument)
	})
}

func TestGetDeadline(t *testing.T) {
	t.Run("HiddenFromOtherTeacher", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetDeadline(gomock.Any(), int64(5)).Return(&model.Deadline{Id: 5, TeacherId: 1}, nil)

		_, err := svc.GetDeadline(context.Background(), teacher(2), 5)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("OrphanStudent", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetDeadline(gomock.Any(), int64(5)).Return(&model.Deadline{Id: 5, TeacherId: 1}, nil)

		d, err := svc.GetDeadline(context.Background(), student(2, nil), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), d.Id)
	})
}

func TestCreateDeadline(t *testing.T) {
	input := &model.CreateDeadlineInput{
		Title:        "Rapport",
		DocumentType: "report",
		DueDate:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ExamType:     ptr(model.ExamTypeE4),
		IsMandatory:  true,
	}

	t.Run("Success", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().CreateDeadline(gomock.Any(), int64(1), input).Return(&model.Deadline{Id: 5, TeacherId: 1, Title: "Rapport"}, nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)

		d, err := svc.CreateDeadline(context.Background(), teacher(1), input)
		require.NoError(t, err)
		assert.Equal(t, int64(1), d.TeacherId)
	})

	t.Run("StudentForbidden", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		_, err := svc.CreateDeadline(context.Background(), student(2, nil), input)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("MissingTitle", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		_, err := svc.CreateDeadline(context.Background(), teacher(1), &model.CreateDeadlineInput{DocumentType: "report"})
		assert.ErrorIs(t, err, errdefs.ErrInvalidArgument)
	})
}

func TestUpdateDeadline(t *testing.T) {
	t.Run("OtherTeacherForbidden", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetDeadline(gomock.Any(), int64(5)).Return(&model.Deadline{Id: 5, TeacherId: 1}, nil)

		_, err := svc.UpdateDeadline(context.Background(), teacher(2), 5, &model.UpdateDeadlineInput{Title: ptr("New")})
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("Owner", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		input := &model.UpdateDeadlineInput{Title: ptr("New")}
		tx.EXPECT().GetDeadline(gomock.Any(), int64(5)).Return(&model.Deadline{Id: 5, TeacherId: 1}, nil)
		tx.EXPECT().UpdateDeadline(gomock.Any(), int64(5), input).Return(&model.Deadline{Id: 5, TeacherId: 1, Title: "New"}, nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)

		d, err := svc.UpdateDeadline(context.Background(), teacher(1), 5, input)
		require.NoError(t, err)
		assert.Equal(t, "New", d.Title)
	})
}

func TestDeleteDeadline(t *testing.T) {
	t.Run("Admin", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetDeadline(gomock.Any(), int64(5)).Return(&model.Deadline{Id: 5, TeacherId: 1}, nil)
		tx.EXPECT().DeleteDeadline(gomock.Any(), int64(5)).Return(nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)

		require.NoError(t, svc.DeleteDeadline(context.Background(), admin(), 5))
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetDeadline(gomock.Any(), int64(5)).Return(nil, errdefs.ErrNotFound)

		err := svc.DeleteDeadline(context.Background(), teacher(1), 5)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}
