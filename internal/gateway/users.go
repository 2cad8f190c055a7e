package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/taskdesk/taskdesk/internal/api"
	"github.com/taskdesk/taskdesk/internal/model"
	"github.com/taskdesk/taskdesk/internal/session"
)

// UserGateway maps profile operations onto /usuario endpoints. Like the task
// gateway, the user id is resolved per call from the session store.
type UserGateway struct {
	client  *api.Client
	session *session.Store
}

// NewUserGateway creates the user gateway
func NewUserGateway(client *api.Client, sess *session.Store) *UserGateway {
	return &UserGateway{client: client, session: sess}
}

func (g *UserGateway) userID() (int, error) {
	id, ok := g.session.UserID()
	if !ok {
		return 0, ErrNoSession
	}
	return id, nil
}

// Profile fetches the current user's profile.
func (g *UserGateway) Profile(ctx context.Context) (*api.Result[model.User], error) {
	userID, err := g.userID()
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/usuario/%d", userID)
	return api.Call[model.User](ctx, g.client, http.MethodGet, path, nil, nil)
}

// Update applies a partial profile update. Callers decide whether to refresh
// the session username afterwards.
func (g *UserGateway) Update(ctx context.Context, patch model.UserPatch) (*api.Result[model.User], error) {
	userID, err := g.userID()
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/usuario/actualizar/%d", userID)
	return api.Call[model.User](ctx, g.client, http.MethodPatch, path, nil, patch)
}

// DeleteAccount removes the current user's account.
func (g *UserGateway) DeleteAccount(ctx context.Context) (*api.Result[api.None], error) {
	userID, err := g.userID()
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/usuario/eliminar/%d", userID)
	return api.Call[api.None](ctx, g.client, http.MethodDelete, path, nil, nil)
}
