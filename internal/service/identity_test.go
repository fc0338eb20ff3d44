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

func TestResolveActor(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetUser(gomock.Any(), int64(1)).Return(teacher(1), nil)

		actor, err := svc.ResolveActor(context.Background(), 1, model.RoleTeacher)
		require.NoError(t, err)
		assert.Equal(t, int64(1), actor.Id)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetUser(gomock.Any(), int64(9)).Return(nil, errdefs.ErrNotFound)

		_, err := svc.ResolveActor(context.Background(), 9, model.RoleStudent)
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	})

	t.Run("RoleMismatch", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetUser(gomock.Any(), int64(2)).Return(student(2, nil), nil)

		_, err := svc.ResolveActor(context.Background(), 2, model.RoleAdmin)
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	})

	t.Run("Deactivated", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		inactive := teacher(1)
		inactive.IsActive = false
		tx.EXPECT().GetUser(gomock.Any(), int64(1)).Return(inactive, nil)

		_, err := svc.ResolveActor(context.Background(), 1, model.RoleTeacher)
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	})
}

func TestGetActor(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		svc, store, tx, _ := setup(t)
		expectTx(store, tx)
		tx.EXPECT().GetUser(gomock.Any(), int64(5)).Return(nil, errdefs.ErrNotFound)

		_, err := svc.GetActor(context.Background(), 5)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}
