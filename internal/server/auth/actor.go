package auth

import (
	"context"

	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

// Actor is the authenticated user of a request.
type Actor struct {
	ID   string
	Name string
	Role models.Role
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

// DisplayName is the name shown on records the actor creates.
func (a Actor) DisplayName() string {
	return common.AuthorOr(a.Name, common.DefaultAuthorName)
}

// ActorFromProfile builds the actor for a stored profile.
func ActorFromProfile(p *models.Profile) Actor {
	return Actor{ID: p.ID, Name: p.Name, Role: p.Role}
}

type ctxKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// ActorFromContext returns the actor stored by WithActor, or
// common.ErrorUnauthorized if there is none.
func ActorFromContext(ctx context.Context) (Actor, error) {
	a, ok := ctx.Value(ctxKey{}).(Actor)
	if !ok || a.ID == "" {
		return Actor{}, common.ErrorUnauthorized
	}
	return a, nil
}
