package service_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"tracking_service/internal/model"
	"tracking_service/internal/service"
	"tracking_service/internal/service/mocks"
)

func setup(t *testing.T) (
	*service.TrackingService,
	*mocks.MockStore,
	*mocks.MockTx,
	*mocks.MockEventPublisher,
) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := mocks.NewMockStore(ctrl)
	tx := mocks.NewMockTx(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)
	svc := service.NewTrackingService(store, publisher)

	return svc, store, tx, publisher
}

// expectTx expects one transaction whose deferred Rollback always runs.
func expectTx(store *mocks.MockStore, tx *mocks.MockTx) {
	store.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().Rollback(gomock.Any()).Return(nil)
}

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
