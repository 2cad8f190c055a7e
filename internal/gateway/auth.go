package gateway

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/taskdesk/taskdesk/internal/api"
	"github.com/taskdesk/taskdesk/internal/model"
	"github.com/taskdesk/taskdesk/internal/session"
)

// ErrNoSession is returned when a user-scoped call is attempted without an
// authenticated session.
var ErrNoSession = errors.New("gateway: no authenticated user")

// AuthGateway maps authentication operations onto /auth endpoints.
type AuthGateway struct {
	client  *api.Client
	session *session.Store
}

// NewAuthGateway creates the authentication gateway
func NewAuthGateway(client *api.Client, sess *session.Store) *AuthGateway {
	return &AuthGateway{client: client, session: sess}
}

// Register creates a new account. No session side effect regardless of outcome;
// the user must verify their email and log in afterwards.
func (g *AuthGateway) Register(ctx context.Context, reg model.Registration) (*api.Result[model.User], error) {
	return api.Call[model.User](ctx, g.client, http.MethodPost, "/auth/register", nil, reg)
}

// Verify confirms an email verification token.
func (g *AuthGateway) Verify(ctx context.Context, token string) (*api.Result[api.None], error) {
	query := url.Values{}
	query.Set("token", token)
	return api.Call[api.None](ctx, g.client, http.MethodGet, "/auth/verify", query, nil)
}

// Login authenticates the user. On a successful envelope with a payload the
// session store is updated; this is the only gateway call with a state side
// effect.
func (g *AuthGateway) Login(ctx context.Context, creds model.Credentials) (*api.Result[model.LoginPayload], error) {
	result, err := api.Call[model.LoginPayload](ctx, g.client, http.MethodPost, "/auth/login", nil, creds)
	if err != nil {
		return nil, err
	}
	if result.OK() && result.Object != nil {
		payload := result.Object
		g.session.Save(payload.Token, payload.Username, payload.UserID)
		log.Printf("gateway: login succeeded for %s", payload.Username)
	}
	return result, nil
}

// ForgotPassword requests a password recovery email.
func (g *AuthGateway) ForgotPassword(ctx context.Context, email string) (*api.Result[api.None], error) {
	query := url.Values{}
	query.Set("email", email)
	return api.Call[api.None](ctx, g.client, http.MethodPost, "/auth/forgot", query, nil)
}

// ResetPassword sets a new password using a recovery token.
func (g *AuthGateway) ResetPassword(ctx context.Context, token, newPassword string) (*api.Result[api.None], error) {
	query := url.Values{}
	query.Set("token", token)
	query.Set("newPassword", newPassword)
	return api.Call[api.None](ctx, g.client, http.MethodPost, "/auth/reset", query, nil)
}

// ChangePassword sets a new password for a logged-in user. Whether to force a
// re-login afterwards is the caller's decision.
func (g *AuthGateway) ChangePassword(ctx context.Context, username, newPassword string) (*api.Result[api.None], error) {
	query := url.Values{}
	query.Set("username", username)
	query.Set("newPassword", newPassword)
	return api.Call[api.None](ctx, g.client, http.MethodPost, "/auth/change-password", query, nil)
}

// Logout clears the local session. No network request is issued.
func (g *AuthGateway) Logout() {
	g.session.Clear()
}
