package service

import (
	"context"
	"errors"
	"fmt"

	"tracking_service/internal/errdefs"
	"tracking_service/internal/model"
)

func (s *TrackingService) GetActor(ctx context.Context, id int64) (*model.Actor, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	return tx.GetUser(ctx, id)
}

// ResolveActor turns the identity forwarded by the gateway into an Actor. The
// stored role must match the claimed one and the account must be active.
func (s *TrackingService) ResolveActor(ctx context.Context, id int64, claimedRole model.Role) (*model.Actor, error) {
	actor, err := s.GetActor(ctx, id)
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown user %d", errdefs.ErrAuthentication, id)
		}
		return nil, err
	}
	if actor.Role != claimedRole {
		return nil, fmt.Errorf("%w: role mismatch for user %d", errdefs.ErrAuthentication, id)
	}
	if !actor.IsActive {
		return nil, fmt.Errorf("%w: user %d is deactivated", errdefs.ErrAuthentication, id)
	}
	return actor, nil
}
