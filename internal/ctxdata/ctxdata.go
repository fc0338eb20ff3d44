package ctxdata

import (
	"context"

	"tracking_service/internal/model"
)

type traceIDKey struct{}
type actorKey struct{}

var (
	traceIDKeyInstance = traceIDKey{}
	actorKeyInstance   = actorKey{}
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKeyInstance, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	v := ctx.Value(traceIDKeyInstance)
	traceID, ok := v.(string)
	return traceID, ok
}

// WithActor stores the actor resolved by the transport layer. Handlers read it
// back once and pass it to services explicitly.
func WithActor(ctx context.Context, actor *model.Actor) context.Context {
	return context.WithValue(ctx, actorKeyInstance, actor)
}

func GetActor(ctx context.Context) (*model.Actor, bool) {
	v := ctx.Value(actorKeyInstance)
	actor, ok := v.(*model.Actor)
	return actor, ok && actor != nil
}
