// Package reqctx переносит данные аутентифицированного запроса через context.
package reqctx

import (
	"context"

	"food-delivery/internal/entities"
)

type actorKey struct{}

type metaKey struct{}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func Actor(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(entities.Actor)
	return actor, ok
}

func WithMeta(ctx context.Context, meta entities.RequestMeta) context.Context {
	return context.WithValue(ctx, metaKey{}, meta)
}

func Meta(ctx context.Context) entities.RequestMeta {
	meta, _ := ctx.Value(metaKey{}).(entities.RequestMeta)
	return meta
}
