package auth

import (
	"context"
	"strings"
)

// Actor identifies who is performing a request.
type Actor struct {
	UserID     string
	Email      string
	OrgCode    string
	SuperAdmin bool
}

// CanWriteOrg reports whether the actor may mutate records belonging
// to the given organization.
func (a Actor) CanWriteOrg(code string) bool {
	if a.SuperAdmin {
		return true
	}
	return a.OrgCode != "" && strings.EqualFold(a.OrgCode, code)
}

type actorKey struct{}

// WithActor returns a context carrying the actor.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext extracts the actor, reporting whether one is present.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	return actor, ok
}
